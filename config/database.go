package config

import (
	"fmt"
	"log"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// buildDSN lắp DSN postgres theo môi trường (DEV_/QC_/PROD_ prefix).
// TimeZone cố định UTC vì toàn bộ logic ngày của lưới availability so sánh theo UTC.
func buildDSN(env string) (string, error) {
	var prefix string
	switch env {
	case "dev":
		prefix = "DEV_"
	case "qc":
		prefix = "QC_"
	case "prod":
		prefix = "PROD_"
	default:
		return "", fmt.Errorf("môi trường không hợp lệ: %q", env)
	}

	sslMode := GetEnvDefault(prefix+"DB_SSLMODE", "require")
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		GetEnv(prefix+"DB_HOST"),
		GetEnv(prefix+"DB_USER"),
		GetEnv(prefix+"DB_PASSWORD"),
		GetEnv(prefix+"DB_NAME"),
		GetEnvDefault(prefix+"DB_PORT", "5432"),
		sslMode,
	)
	return dsn, nil
}

func ConnectDB() {
	env := strings.ToLower(GetEnvDefault("ENV", "dev"))
	dsn, err := buildDSN(env)
	if err != nil {
		log.Fatalf("Lỗi cấu hình database: %v", err)
	}

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Không kết nối được database: %v", err)
	}

	log.Println("Kết nối database thành công")
}
