package routes

import (
	"github.com/ashhalliday14/Bookstore-API/internal/controllers"
	"github.com/gin-gonic/gin"
)

func RegisterUserRoutes(router *gin.RouterGroup, userController *controllers.UserController) {
	// POST /users - Register a new account
	router.POST("", userController.Register)
}
