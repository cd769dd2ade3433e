package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
)

var RedisClient *redis.Client

// InitApp dựng router gin, websocket hub cho editor và cron scheduler,
// đồng thời kết nối database và redis
func InitApp() (*gin.Engine, *melody.Melody, *cron.Cron, error) {
	router := gin.Default()

	configCors := cors.DefaultConfig()
	configCors.AddAllowHeaders("Authorization", "X-Session-ID")
	configCors.AllowCredentials = true
	configCors.AllowAllOrigins = false
	configCors.AllowOriginFunc = allowOrigin
	router.Use(cors.New(configCors))

	router.SetTrustedProxies(nil)

	if err := initComponents(); err != nil {
		return nil, nil, nil, fmt.Errorf("lỗi khởi tạo: %v", err)
	}

	m := melody.New()
	c := cron.New()

	return router, m, c, nil
}

// allowOrigin cho phép origin theo ALLOWED_ORIGINS (phân tách bằng dấu phẩy),
// để trống thì cho phép tất cả vì mỗi company có domain riêng
func allowOrigin(origin string) bool {
	allowed := GetEnv("ALLOWED_ORIGINS")
	if allowed == "" {
		return true
	}
	for _, o := range strings.Split(allowed, ",") {
		if strings.TrimSpace(o) == origin {
			return true
		}
	}
	return false
}

func initComponents() error {
	if err := LoadEnv(); err != nil {
		return fmt.Errorf("không nạp được file .env: %v", err)
	}

	ConnectDB()

	var err error
	RedisClient, err = ConnectRedis()
	if err != nil {
		return fmt.Errorf("không kết nối được Redis: %v", err)
	}

	log.Println("Khởi tạo xong toàn bộ component")
	return nil
}

// InitWebSocket gắn endpoint websocket cho editor realtime
func InitWebSocket(router *gin.Engine, m *melody.Melody) {
	router.GET("/ws/editor", func(c *gin.Context) {
		m.HandleRequest(c.Writer, c.Request)
	})
	log.Println("WebSocket của editor đã sẵn sàng")
}
