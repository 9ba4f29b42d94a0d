package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/thales-ken/CRM/internal/config"
	"github.com/thales-ken/CRM/internal/database"
	"github.com/thales-ken/CRM/internal/handlers"
	"github.com/thales-ken/CRM/internal/middleware"
	"github.com/thales-ken/CRM/internal/models"
	"github.com/thales-ken/CRM/internal/repository"
	"github.com/thales-ken/CRM/internal/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not loaded, continuing with environment variables")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		log.Fatalf("Failed to create upload directory: %v", err)
	}

	db := database.GetDB()
	userRepo := repository.NewUserRepository(db)
	contactRepo := repository.NewContactRepository(db)
	dealRepo := repository.NewDealRepository(db)
	activityRepo := repository.NewActivityRepository(db)

	tokenService := services.NewTokenService(cfg.JWTSecret, time.Duration(cfg.JWTExpiresHours)*time.Hour)
	authService := services.NewAuthService(userRepo, cfg.BcryptCost)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, tokenService)
	contactHandler := handlers.NewContactHandler(contactRepo)
	dealHandler := handlers.NewDealHandler(dealRepo)
	activityHandler := handlers.NewActivityHandler(activityRepo)
	uploadHandler := handlers.NewUploadHandler(cfg.UploadDir)

	// Initialize Gin router
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Serve uploaded files statically
	r.Static("/uploads", cfg.UploadDir)

	requireAuth := middleware.RequireAuth(tokenService)
	// viewer is read-only on activities
	canWrite := middleware.RequireRole(models.RoleAdmin, models.RoleManager, models.RoleSalesRep)

	// API routes
	api := r.Group("/api")
	{
		api.GET("/health", handlers.Health)

		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/register", authHandler.Register)
			auth.GET("/verify", requireAuth, authHandler.Verify)
			auth.GET("/me", requireAuth, authHandler.Me)
		}

		// Contact routes
		contacts := api.Group("/contacts")
		{
			contacts.GET("", contactHandler.ListContacts)
			contacts.POST("", contactHandler.CreateContact)
			contacts.GET("/:id", contactHandler.GetContact)
			contacts.PUT("/:id", contactHandler.UpdateContact)
			contacts.DELETE("/:id", contactHandler.DeleteContact)
		}

		// Deal routes
		deals := api.Group("/deals")
		{
			deals.GET("", dealHandler.ListDeals)
			deals.POST("", dealHandler.CreateDeal)
			deals.GET("/:id", dealHandler.GetDeal)
			deals.PUT("/:id", dealHandler.UpdateDeal)
			deals.DELETE("/:id", dealHandler.DeleteDeal)
		}

		// Activity routes (authenticated; mutation requires a writing role)
		activities := api.Group("/activities")
		activities.Use(requireAuth)
		{
			activities.GET("", activityHandler.ListActivities)
			activities.POST("", canWrite, activityHandler.CreateActivity)
			activities.GET("/:id", activityHandler.GetActivity)
			activities.PUT("/:id", canWrite, activityHandler.UpdateActivity)
			activities.DELETE("/:id", canWrite, activityHandler.DeleteActivity)
		}

		// Upload routes
		upload := api.Group("/upload")
		{
			upload.POST("/image", uploadHandler.UploadImage)
			upload.POST("/images", uploadHandler.UploadImages)
		}
	}

	// Start server
	log.Printf("Server starting on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
