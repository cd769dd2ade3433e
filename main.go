package main

import (
	"log"
	"net/http"
	"os"

	"builder/config"
	"builder/jobs"
	"builder/models"
	"builder/routes"
	"builder/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/olahol/melody"
)

func migrateTables() {
	if os.Getenv("MIGRATE") != "true" {
		return
	}
	if err := config.DB.AutoMigrate(
		&models.Company{}, &models.User{}, &models.Customer{},
		&models.Room{}, &models.Reservation{}, &models.RoomAvailability{}, &models.RoomBlockPeriod{},
		&models.AvailabilityRule{},
		&models.Page{}, &models.Section{}, &models.ThemeSetting{}, &models.EditorHistory{},
		&models.ProductCategory{}, &models.Product{}, &models.Order{}, &models.OrderItem{},
		&models.Review{}, &models.WhatsAppMessage{},
	); err != nil {
		log.Fatalf("Failed to migrate tables: %v", err)
	}
}

func main() {

	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: không load được file .env, sử dụng biến môi trường có sẵn: %v", err)
	}

	router, m, c, err := config.InitApp()
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}

	migrateTables()

	historyService := services.NewHistoryService(config.DB)
	jobs.SetHistoryCleaner(historyService)

	if err := jobs.InitCronJobs(c, m); err != nil {
		log.Fatalf("Failed to initialize cron jobs: %v", err)
	}

	config.InitWebSocket(router, m)

	// Client kết nối websocket kèm token, gắn session vào channel của company
	m.HandleConnect(func(s *melody.Session) {
		token := s.Request.URL.Query().Get("token")
		if token == "" {
			s.Close()
			return
		}
		_, companyID, _, err := services.GetUserInfoFromToken(token)
		if err != nil {
			s.Close()
			return
		}
		services.RegisterEditorSession(s, companyID)
	})

	routes.SetupRoutes(router, config.DB, config.RedisClient, m)

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8083"
	}

	log.Println("Server starting on port " + port + "...")
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
