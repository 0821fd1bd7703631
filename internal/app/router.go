package app

import (
	"github.com/gin-gonic/gin"

	"github.com/sjlutterbie/blog-api/internal/handlers"
	"github.com/sjlutterbie/blog-api/internal/middleware"
)

// NewRouter wires middleware, handlers and routes
func NewRouter(authorService handlers.AuthorService, postService handlers.PostService) *gin.Engine {
	router := gin.New()

	// Apply middleware
	router.Use(middleware.RequestLogger(), gin.Recovery())

	// Initialize handlers
	postHandler := handlers.NewPostHandler(postService)
	authorHandler := handlers.NewAuthorHandler(authorService)
	healthHandler := handlers.NewHealthHandler()
	notFoundHandler := handlers.NewNotFoundHandler()

	// Post routes
	posts := router.Group("/posts")
	{
		posts.GET("", postHandler.List)
		posts.GET("/:id", postHandler.Get)
		posts.POST("", postHandler.Create)
		posts.PUT("/:id", postHandler.Update)
		posts.DELETE("/:id", postHandler.Delete)
	}

	// Author routes
	authors := router.Group("/authors")
	{
		authors.GET("", authorHandler.List)
		authors.GET("/:id", authorHandler.Get)
		authors.GET("/userName/:userName", authorHandler.GetByUserName)
		authors.POST("", authorHandler.Create)
		authors.PUT("/:id", authorHandler.Update)
		authors.DELETE("/:id", authorHandler.Delete)
	}

	// Health check endpoint
	router.GET("/health", healthHandler.HealthCheck)

	// Catch-all for unmatched paths
	router.NoRoute(notFoundHandler.NotFound)

	return router
}
