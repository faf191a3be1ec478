package main

import (
	"flag"

	"github.com/gin-gonic/gin"
	"github.com/okware/blog-management-api/internal/config"
	"github.com/okware/blog-management-api/internal/database"
	"github.com/okware/blog-management-api/internal/handlers"
	"github.com/okware/blog-management-api/internal/middleware"
	"github.com/okware/blog-management-api/internal/repository"
	"github.com/okware/blog-management-api/internal/services"
	"github.com/okware/blog-management-api/internal/storage"
	"github.com/sirupsen/logrus"
)

func main() {
	recount := flag.Bool("recount", false, "recompute every user's post counter from the posts table and exit")
	flag.Parse()

	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		logrus.Fatalf("Failed to run migrations: %v", err)
	}
	if err := database.AddIndexes(database.GetDB()); err != nil {
		logrus.Fatalf("Failed to add indexes: %v", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(database.GetDB())
	postRepo := repository.NewPostRepository(database.GetDB())

	// Maintenance mode: repair accumulated post-counter drift and exit.
	if *recount {
		if err := userRepo.RecountPosts(); err != nil {
			logrus.Fatalf("Failed to recount posts: %v", err)
		}
		logrus.Info("Post counters recomputed")
		return
	}

	// Initialize asset store
	assetStore, err := storage.NewDiskStore(cfg.UploadDir)
	if err != nil {
		logrus.Fatalf("Failed to initialize asset store: %v", err)
	}

	// Initialize services
	authService := services.NewAuthService(userRepo, assetStore, cfg.JWTSecret)
	postService := services.NewPostService(postRepo, userRepo, assetStore)

	// Initialize handlers
	userHandler := handlers.NewUserHandler(authService)
	postHandler := handlers.NewPostHandler(postService)

	// Initialize Gin router
	r := gin.Default()

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Blog Management API is running",
		})
	})

	requireAuth := middleware.RequireAuth(cfg.JWTSecret)

	// API routes
	api := r.Group("/api")
	{
		// Account routes (public)
		api.POST("/register", userHandler.Register)
		api.POST("/login", userHandler.Login)

		// User routes
		users := api.Group("/users")
		{
			users.GET("", userHandler.ListAuthors)
			users.GET("/:id", userHandler.GetUser)
			users.PUT("/change-avatar", requireAuth, userHandler.ChangeAvatar)
			users.PUT("/edit-user", requireAuth, userHandler.EditUser)
		}

		// Post routes
		posts := api.Group("/posts")
		{
			posts.GET("", postHandler.ListPosts)
			posts.POST("", requireAuth, postHandler.CreatePost)
			posts.GET("/:id", postHandler.GetPost)
			posts.GET("/categories/:category", postHandler.ListPostsByCategory)
			posts.GET("/users/:id", postHandler.ListPostsByAuthor)
			posts.PATCH("/:id", requireAuth, postHandler.UpdatePost)
			posts.DELETE("/:id", requireAuth, postHandler.DeletePost)
		}
	}

	// Start server
	logrus.Infof("Server starting on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		logrus.Fatalf("Failed to start server: %v", err)
	}
}
