package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"skilllink/cmd/api/handlers"
	"skilllink/cmd/api/middleware"
	"skilllink/cmd/api/services"
	_ "skilllink/docs"
)

// New wires the HTTP surface onto a gin engine. Services are injected so
// tests can run the full router against a temporary data directory.
func New(postSvc *services.PostService, authSvc *services.AuthService) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogging())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Posts
	r.GET("/posts", handlers.ViewPostsHandler(postSvc))
	r.PUT("/posts/:id", handlers.UpdatePostHandler(postSvc))
	r.DELETE("/posts/:id", handlers.DeletePostHandler(postSvc))
	r.POST("/offers", handlers.CreateOfferHandler(postSvc))
	r.POST("/requests", handlers.CreateRequestHandler(postSvc))

	// Auth
	r.POST("/register", handlers.RegisterHandler(authSvc))
	r.POST("/login", handlers.LoginHandler(authSvc))
	r.GET("/me", handlers.MeHandler(authSvc))

	return r
}
