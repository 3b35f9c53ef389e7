// @title           Heirloom Gallery Backend API
// @version         1.0.0
// @description     Backend API for a photography studio's client galleries: password-gated gallery access, batch photo uploads to Supabase Storage, and bulk ZIP downloads.

// @contact.name   API Support
// @contact.email  support@example.com

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

package main

import (
	"log"
	"net/http"
	"net/url"

	"heirloom-gallery-backend/docs"
	"heirloom-gallery-backend/internal/config"
	"heirloom-gallery-backend/internal/database"
	"heirloom-gallery-backend/internal/handlers"
	"heirloom-gallery-backend/internal/middleware"
	"heirloom-gallery-backend/internal/services"
	"heirloom-gallery-backend/internal/supabase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set Gin mode
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Update Swagger docs with dynamic base URL
	if cfg.BaseURL != "" {
		baseURL, err := url.Parse(cfg.BaseURL)
		if err == nil {
			docs.SwaggerInfo.Host = baseURL.Host
			if baseURL.Scheme == "https" {
				docs.SwaggerInfo.Schemes = []string{"https", "http"}
			} else {
				docs.SwaggerInfo.Schemes = []string{"http", "https"}
			}
		}
	}

	// Initialize Supabase clients
	supabaseClient, err := supabase.NewClient(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize Supabase client: %v", err)
	}

	storageClient, err := supabase.NewStorageClient(cfg.SupabaseURL, cfg.SupabasePublishableKey, cfg.SupabaseStorageBucket)
	if err != nil {
		log.Fatalf("Failed to initialize storage client: %v", err)
	}

	realtimeClient := supabase.NewRealtimeClient(supabaseClient.Supabase)

	// Create database client for direct queries
	var dbClient *supabase.DatabaseClient
	if cfg.DatabaseURL == "" {
		log.Println("Warning: DATABASE_URL not set. Migrations will be skipped.")
		log.Println("Please set DATABASE_URL environment variable with your Supabase PostgreSQL connection string")
	} else {
		dbClient, err = supabase.NewDatabaseClient(cfg.DatabaseURL)
		if err != nil {
			log.Printf("Warning: Failed to initialize database client: %v", err)
			log.Println("Database operations will be limited. Please configure DATABASE_URL properly.")
			dbClient = nil
		} else {
			defer dbClient.Close()

			// Run migrations
			migrator, err := database.NewMigrator(cfg.DatabaseURL)
			if err != nil {
				log.Printf("Warning: Failed to initialize migrator: %v", err)
			} else {
				defer migrator.Close()
				if err := migrator.Run(); err != nil {
					log.Printf("Warning: Migration failed: %v", err)
				} else {
					log.Println("Migrations completed successfully")
				}
			}
		}
	}

	// Initialize services (dbClient might be nil, handlers check for this)
	var store services.GalleryStore
	if dbClient != nil {
		store = dbClient
	}
	galleryService := services.NewGalleryService(store, storageClient)
	uploadService := services.NewUploadService(store, storageClient, realtimeClient)
	archiveService := services.NewArchiveService(nil)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(supabaseClient)
	publicHandler := handlers.NewPublicHandler(store, archiveService)
	galleriesHandler := handlers.NewGalleriesHandler(store, galleryService)
	photosHandler := handlers.NewPhotosHandler(store, uploadService, galleryService)

	// Setup router
	router := gin.Default()

	// Middleware
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check (no auth)
	router.GET("/health", handlers.HealthHandler)

	api := router.Group("/api/v1")

	// Auth routes
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/logout", authHandler.Logout)
	api.GET("/auth/session", authHandler.Session)

	// Public client-facing routes (password-gated per gallery, no account)
	api.GET("/galleries", publicHandler.ListActiveGalleries)
	api.GET("/galleries/:slug", publicHandler.GetGallery)
	api.POST("/galleries/:slug/unlock", publicHandler.Unlock)
	api.GET("/galleries/:slug/photos/:photo_id/download", publicHandler.DownloadPhoto)
	api.GET("/galleries/:slug/archive", publicHandler.DownloadArchive)

	// Admin routes
	admin := api.Group("/admin")
	admin.Use(middleware.AuthMiddleware(cfg))

	admin.POST("/galleries", galleriesHandler.CreateGallery)
	admin.GET("/galleries", galleriesHandler.ListGalleries)
	admin.GET("/galleries/:gallery_id", galleriesHandler.GetGallery)
	admin.PATCH("/galleries/:gallery_id", galleriesHandler.UpdateGallery)
	admin.DELETE("/galleries/:gallery_id", galleriesHandler.DeleteGallery)
	admin.POST("/galleries/:gallery_id/password", galleriesHandler.RegeneratePassword)
	admin.PUT("/galleries/:gallery_id/cover", galleriesHandler.SetCover)
	admin.POST("/galleries/:gallery_id/photos", photosHandler.Upload)
	admin.PATCH("/photos/:photo_id", photosHandler.UpdatePhoto)
	admin.DELETE("/photos/:photo_id", photosHandler.DeletePhoto)
	admin.GET("/stats", galleriesHandler.GetStats)

	// Start server
	port := cfg.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	if err := http.ListenAndServe(":"+port, router); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
