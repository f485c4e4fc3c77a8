package routes

import (
	"net/http"

	"github.com/ashhalliday14/Bookstore-API/internal/controllers"
	"github.com/gin-gonic/gin"
)

// SetupRoutes registers all application routes.
func SetupRoutes(
	router *gin.Engine,
	sessionController *controllers.SessionController,
	userController *controllers.UserController,
	bookController *controllers.BookController,
	authMiddleware gin.HandlerFunc,
) {
	// Any non-matching method on a known route is a 405, not a 404.
	router.HandleMethodNotAllowed = true
	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{
			"success":  false,
			"messages": []string{"Request method not allowed"},
		})
	})
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"success":  false,
			"messages": []string{"Endpoint not found"},
		})
	})

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := router.Group("/v1")

	RegisterSessionRoutes(api.Group("/sessions"), sessionController)
	RegisterUserRoutes(api.Group("/users"), userController)
	RegisterBookRoutes(api.Group("/books"), bookController, authMiddleware)
}
