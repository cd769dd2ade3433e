package routes

import (
	"builder/constants"
	"builder/controllers"
	middlewares "builder/middleware"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client, m *melody.Melody) {

	editorController := controllers.NewEditorController(db, m)

	v1 := router.Group("/api/v1")
	v1.Use(middlewares.SessionMiddleware())

	v1.POST("/auth/register", controllers.Register)
	v1.POST("/auth/login", controllers.Login)
	v1.DELETE("/auth/logout", controllers.Logout)
	v1.GET("/profile", middlewares.AuthMiddleware(), controllers.GetCurrentUser)
	v1.PUT("/password", middlewares.AuthMiddleware(), controllers.ChangePassword)

	v1.GET("/company", middlewares.AuthMiddleware(), controllers.GetCompany)
	v1.PUT("/company", middlewares.AuthMiddleware(constants.RoleAdmin), controllers.UpdateCompany)

	v1.GET("/rooms", middlewares.AuthMiddleware(), controllers.GetRooms)
	v1.POST("/rooms", middlewares.AuthMiddleware(constants.RoleEditor, constants.RoleAdmin), controllers.CreateRoom)
	v1.PUT("/rooms", middlewares.AuthMiddleware(constants.RoleEditor, constants.RoleAdmin), controllers.UpdateRoom)

	v1.GET("/availability/grid", middlewares.AuthMiddleware(), controllers.GetAvailabilityGrid)
	v1.POST("/availability/check", middlewares.AuthMiddleware(), controllers.CheckAvailability)
	v1.GET("/availability/blocks", middlewares.AuthMiddleware(), controllers.GetBlockPeriods)
	v1.POST("/availability/blocks", middlewares.AuthMiddleware(constants.RoleEditor, constants.RoleAdmin), controllers.CreateBlockPeriod)
	v1.DELETE("/availability/blocks/:id", middlewares.AuthMiddleware(constants.RoleEditor, constants.RoleAdmin), controllers.DeleteBlockPeriod)
	v1.PUT("/availability/override", middlewares.AuthMiddleware(constants.RoleEditor, constants.RoleAdmin), controllers.UpsertOverride)
	v1.DELETE("/availability/override/:id", middlewares.AuthMiddleware(constants.RoleEditor, constants.RoleAdmin), controllers.DeleteOverride)

	v1.GET("/reservations", middlewares.AuthMiddleware(), controllers.GetReservations)
	v1.GET("/reservations/:id", middlewares.AuthMiddleware(), controllers.GetReservationDetail)
	v1.POST("/reservations", middlewares.AuthMiddleware(), controllers.CreateReservation)
	v1.PUT("/reservations/dates", middlewares.AuthMiddleware(), controllers.UpdateReservationDates)
	v1.PUT("/reservations/status", middlewares.AuthMiddleware(), controllers.ChangeReservationStatus)

	v1.GET("/rules", middlewares.AuthMiddleware(), controllers.GetRules)
	v1.POST("/rules", middlewares.AuthMiddleware(constants.RoleEditor, constants.RoleAdmin), controllers.CreateRule)
	v1.PUT("/rules", middlewares.AuthMiddleware(constants.RoleEditor, constants.RoleAdmin), controllers.UpdateRule)
	v1.DELETE("/rules/:id", middlewares.AuthMiddleware(constants.RoleEditor, constants.RoleAdmin), controllers.DeleteRule)
	v1.POST("/rules/evaluate", middlewares.AuthMiddleware(), controllers.EvaluateRules)

	v1.GET("/stats/occupancy", middlewares.AuthMiddleware(), controllers.GetOccupancyStats)

	v1.GET("/customers", middlewares.AuthMiddleware(), controllers.GetCustomers)
	v1.POST("/customers", middlewares.AuthMiddleware(), controllers.CreateCustomer)
	v1.PUT("/customers", middlewares.AuthMiddleware(), controllers.UpdateCustomer)
	v1.DELETE("/customers/:id", middlewares.AuthMiddleware(constants.RoleAdmin), controllers.DeleteCustomer)

	v1.GET("/products", middlewares.AuthMiddleware(), controllers.GetProducts)
	v1.GET("/products/search", middlewares.AuthMiddleware(), controllers.SearchProducts)
	v1.POST("/products", middlewares.AuthMiddleware(constants.RoleEditor, constants.RoleAdmin), controllers.CreateProduct)
	v1.PUT("/products", middlewares.AuthMiddleware(constants.RoleEditor, constants.RoleAdmin), controllers.UpdateProduct)
	v1.DELETE("/products/:id", middlewares.AuthMiddleware(constants.RoleAdmin), controllers.DeleteProduct)
	v1.GET("/categories", middlewares.AuthMiddleware(), controllers.GetCategories)
	v1.POST("/categories", middlewares.AuthMiddleware(constants.RoleEditor, constants.RoleAdmin), controllers.CreateCategory)

	v1.GET("/orders", middlewares.AuthMiddleware(), controllers.GetOrders)
	v1.GET("/orders/:id", middlewares.AuthMiddleware(), controllers.GetOrderDetail)
	v1.POST("/orders", middlewares.AuthMiddleware(), controllers.CreateOrder)
	v1.PUT("/orders/status", middlewares.AuthMiddleware(), controllers.ChangeOrderStatus)

	v1.GET("/reviews", middlewares.AuthMiddleware(), controllers.GetReviews)
	v1.POST("/reviews", middlewares.AuthMiddleware(), controllers.CreateReview)
	v1.PUT("/reviews/moderate", middlewares.AuthMiddleware(constants.RoleEditor, constants.RoleAdmin), controllers.ModerateReview)
	v1.GET("/reviews/summary/:id", middlewares.AuthMiddleware(), controllers.GetReviewSummary)

	editor := v1.Group("/editor")
	editor.Use(middlewares.AuthMiddleware(constants.RoleEditor, constants.RoleAdmin))
	editor.GET("/pages", editorController.GetPages)
	editor.GET("/pages/:id", editorController.GetPageDetail)
	editor.POST("/pages", editorController.CreatePage)
	editor.PUT("/pages", editorController.UpdatePage)
	editor.PUT("/pages/status", editorController.ChangePageStatus)
	editor.DELETE("/pages/:id", editorController.DeletePage)
	editor.POST("/sections", editorController.CreateSection)
	editor.PUT("/sections", editorController.UpdateSection)
	editor.DELETE("/sections/:id", editorController.DeleteSection)
	editor.PUT("/sections/reorder", editorController.ReorderSections)
	editor.GET("/theme", editorController.GetTheme)
	editor.PUT("/theme", editorController.UpdateTheme)
	editor.POST("/history", editorController.SaveHistory)
	editor.GET("/history", editorController.GetHistory)
	editor.POST("/history/undo", editorController.Undo)
	editor.POST("/history/redo", editorController.Redo)
	editor.POST("/history/restore", editorController.RestoreVersion)
}
