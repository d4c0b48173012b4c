// main.go
package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/Weslleykacau1/AvatarForge/auth"
	"github.com/Weslleykacau1/AvatarForge/avatars"
	"github.com/Weslleykacau1/AvatarForge/gallery"
	"github.com/Weslleykacau1/AvatarForge/generate"
	"github.com/Weslleykacau1/AvatarForge/internal/platform"
	"github.com/Weslleykacau1/AvatarForge/models"
	"github.com/Weslleykacau1/AvatarForge/products"
	"github.com/Weslleykacau1/AvatarForge/scenes"
)

type Server struct {
	DB     *gorm.DB
	Redis  *redis.Client
	Router *gin.Engine
}

func NewServer() (*Server, error) {
	// Use the shared connection initializers
	db := platform.NewDBConnection()
	platform.AutoMigrate(db)
	rdb := platform.NewRedisClient()

	// Create Gin router with CORS middleware
	router := gin.Default()

	// Add CORS middleware for your frontend
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", os.Getenv("FRONTEND_URL"))
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	server := &Server{
		DB:     db,
		Redis:  rdb,
		Router: router,
	}

	// Setup routes
	server.setupRoutes()

	return server, nil
}

func (s *Server) setupRoutes() {
	// Health check (no auth required)
	s.Router.GET("/health", func(c *gin.Context) {
		// Check database connection
		sqlDB, err := s.DB.DB()
		if err != nil {
			c.JSON(500, gin.H{"status": "unhealthy", "error": err.Error()})
			return
		}

		if err := sqlDB.Ping(); err != nil {
			c.JSON(500, gin.H{"status": "unhealthy", "error": err.Error()})
			return
		}

		c.JSON(200, gin.H{
			"status":   "healthy",
			"database": "connected",
		})
	})

	// Create handlers
	authHandler := auth.NewHandler()
	avatarHandler := avatars.NewHandler(gallery.NewGormRepository[models.Avatar](s.DB))
	productHandler := products.NewHandler(gallery.NewGormRepository[models.Product](s.DB))
	sceneHandler := scenes.NewHandler(s.DB, s.Redis)
	generateHandler := generate.NewHandler()

	// Public routes
	// Root route - no auth needed
	s.Router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "AvatarForge API v1"})
	})

	// Auth routes (public - no auth middleware)
	s.Router.POST("/auth/token", authHandler.IssueToken)

	// Protected routes that require authentication
	protected := s.Router.Group("")
	protected.Use(auth.AuthMiddleware())
	{
		// Avatar gallery
		avatarRoutes := protected.Group("/avatars")
		{
			avatarRoutes.GET("", avatarHandler.ListAvatars)
			avatarRoutes.GET("/:id", avatarHandler.GetAvatar)
			avatarRoutes.POST("", avatarHandler.UpsertAvatar)
			avatarRoutes.DELETE("/:id", avatarHandler.DeleteAvatar)
			avatarRoutes.POST("/analyze", avatarHandler.AnalyzeImage)
			avatarRoutes.POST("/analyze-text", avatarHandler.AnalyzeText)
		}

		// Product gallery
		productRoutes := protected.Group("/products")
		{
			productRoutes.GET("", productHandler.ListProducts)
			productRoutes.GET("/:id", productHandler.GetProduct)
			productRoutes.POST("", productHandler.UpsertProduct)
			productRoutes.DELETE("/:id", productHandler.DeleteProduct)
			productRoutes.POST("/analyze", productHandler.AnalyzeImage)
		}

		// Scene gallery and render jobs
		sceneRoutes := protected.Group("/scenes")
		{
			sceneRoutes.GET("", sceneHandler.ListScenes)
			sceneRoutes.GET("/:id", sceneHandler.GetScene)
			sceneRoutes.POST("", sceneHandler.UpsertScene)
			sceneRoutes.DELETE("/:id", sceneHandler.DeleteScene)
			sceneRoutes.POST("/analyze", sceneHandler.AnalyzeImage)
			sceneRoutes.POST("/:id/render", sceneHandler.RenderScene)
		}

		protected.POST("/render", sceneHandler.RenderInline)
		protected.POST("/scripts/render", sceneHandler.RenderScript)
		protected.GET("/jobs/:id", sceneHandler.GetJob)

		// Synchronous generation flows
		generateRoutes := protected.Group("/generate")
		{
			generateRoutes.POST("/title", generateHandler.GenerateTitle)
			generateRoutes.POST("/action", generateHandler.GenerateAction)
			generateRoutes.POST("/dialogue", generateHandler.GenerateDialogue)
			generateRoutes.POST("/seo", generateHandler.GenerateSEO)
			generateRoutes.POST("/script", generateHandler.GenerateScript)
		}
	}
}

func (s *Server) Run() error {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	return s.Router.Run(":" + port)
}

func main() {
	server, err := NewServer()
	if err != nil {
		log.Fatal("Failed to create server:", err)
	}

	if err := server.Run(); err != nil {
		log.Fatal("Failed to run server:", err)
	}
}
