package routes

import (
	"github.com/ashhalliday14/Bookstore-API/internal/controllers"
	"github.com/gin-gonic/gin"
)

func RegisterBookRoutes(router *gin.RouterGroup, bookController *controllers.BookController, authMiddleware gin.HandlerFunc) {
	// All book routes sit behind the bearer-token gate.
	router.Use(authMiddleware)
	{
		router.POST("", bookController.CreateBook)
		router.GET("", bookController.ListBooks)
		router.GET("/:bookid", bookController.GetBook)
		router.PUT("/:bookid", bookController.UpdateBook)
		router.DELETE("/:bookid", bookController.DeleteBook)
	}
}
