package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/llum/portfolio-api/internal/config"
	"github.com/llum/portfolio-api/internal/constants"
	"github.com/llum/portfolio-api/internal/database"
	"github.com/llum/portfolio-api/internal/handlers"
	"github.com/llum/portfolio-api/internal/middleware"
	"github.com/llum/portfolio-api/internal/repository"
	"github.com/llum/portfolio-api/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

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
	if err := database.AddIndexes(database.GetDB()); err != nil {
		log.Fatalf("Failed to create indexes: %v", err)
	}

	// Create the portfolio owner on first startup
	if err := database.ProvisionOwner(cfg); err != nil {
		log.Fatalf("Failed to provision owner: %v", err)
	}

	// Initialize repositories
	db := database.GetDB()
	userRepo := repository.NewUserRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	workRepo := repository.NewWorkRepository(db)
	sectionRepo := repository.NewWorkSectionRepository(db)
	imageRepo := repository.NewWorkSectionImageRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo, cfg.JWTSecret, constants.TokenTTL)
	userService := services.NewUserService(userRepo)
	publicService := services.NewPublicService(userRepo, categoryRepo, cfg.OwnerEmail)
	categoryService := services.NewCategoryService(categoryRepo, userRepo)
	workService := services.NewWorkService(workRepo, categoryRepo)
	sectionService := services.NewWorkSectionService(sectionRepo, workRepo)
	imageService := services.NewWorkSectionImageService(imageRepo, sectionService)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	publicHandler := handlers.NewPublicHandler(publicService)
	categoryHandler := handlers.NewCategoryHandler(categoryService, publicService)
	workHandler := handlers.NewWorkHandler(workService)
	sectionHandler := handlers.NewWorkSectionHandler(sectionService)
	imageHandler := handlers.NewWorkSectionImageHandler(imageService)

	// Initialize Gin router
	r := gin.Default()

	// The admin and public UIs are served from other origins
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Auth
	r.POST("/auth/login", authHandler.Login)

	// Public read surface
	r.GET("/public/user", publicHandler.GetUser)
	r.GET("/public/categories", publicHandler.ListCategories)
	r.GET("/users/:userId/categories", categoryHandler.ListByUser)
	r.GET("/categories", categoryHandler.List)
	r.GET("/categories/:categoryId/works", workHandler.ListByCategory)
	r.GET("/works/:workId/sections", sectionHandler.ListByWork)

	// Protected routes
	protected := r.Group("/")
	protected.Use(middleware.RequireAuth(cfg.JWTSecret))
	{
		protected.GET("/user/me", userHandler.GetMe)
		protected.PATCH("/user/me", userHandler.UpdateMe)

		protected.POST("/categories", categoryHandler.Create)
		protected.PATCH("/categories/:categoryId", categoryHandler.Update)
		protected.DELETE("/categories/:categoryId", categoryHandler.Delete)

		protected.GET("/works", workHandler.ListMine)
		protected.POST("/works", workHandler.Create)
		protected.PATCH("/works/:workId", workHandler.Update)
		protected.DELETE("/works/:workId", workHandler.Delete)

		protected.POST("/works/:workId/sections", sectionHandler.Create)
		protected.PATCH("/sections/:sectionId", sectionHandler.Update)
		protected.DELETE("/sections/:sectionId", sectionHandler.Delete)

		protected.POST("/sections/:sectionId/images", imageHandler.Create)
		protected.PATCH("/images/:imageId", imageHandler.Update)
		protected.DELETE("/images/:imageId", imageHandler.Delete)
	}

	// Start server
	log.Printf("Server starting on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
