package router

import (
	"log"

	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"

	"github.com/hoangtv-dev/studenthub-backend/internal/handlers"
	"github.com/hoangtv-dev/studenthub-backend/internal/middleware"
	"github.com/hoangtv-dev/studenthub-backend/internal/models"
	"github.com/hoangtv-dev/studenthub-backend/internal/repositories"
	"github.com/hoangtv-dev/studenthub-backend/internal/services"
	"github.com/hoangtv-dev/studenthub-backend/pkg/config"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	log.Println("Global middleware configured.")
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, db *gorm.DB, cfg *config.Config) {
	err := db.AutoMigrate(
		&models.Student{},
		&models.Profile{},
		&models.Thread{},
		&models.Comment{},
		&models.Notification{},
		&models.Follower{},
	)
	if err != nil {
		log.Fatalf("Failed to auto migrate models: %v", err)
	}
	log.Println("Auto-migrations completed for all models.")

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// --- Initialize Repositories ---
	studentRepo := repositories.NewPostgresStudentRepository(db)
	threadRepo := repositories.NewPostgresThreadRepository(db)
	commentRepo := repositories.NewPostgresCommentRepository(db)
	notificationRepo := repositories.NewPostgresNotificationRepository(db)
	followerRepo := repositories.NewPostgresFollowerRepository(db)

	// --- Initialize Services ---
	pushService := services.NewPushService(cfg.FCMCredentialsPath, studentRepo, followerRepo)
	notificationService := services.NewNotificationService(notificationRepo, threadRepo, commentRepo, pushService)
	followerService := services.NewFollowerService(followerRepo)

	// --- Protected routes (require JWT authentication) ---
	api := e.Group("/api/v1")
	api.Use(middleware.JWTAuthMiddleware())
	log.Println("JWT authentication middleware applied to /api/v1 group.")

	// Notification routes
	notificationHandler := handlers.NewNotificationHandler(notificationService, studentRepo)
	notificationHandler.RegisterNotificationRoutes(api)
	log.Println("Notification routes configured.")

	// Follower routes
	followerHandler := handlers.NewFollowerHandler(followerService)
	followerHandler.RegisterFollowerRoutes(api)
	log.Println("Follower routes configured.")

	log.Println("All routes configured.")
}
