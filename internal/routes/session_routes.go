package routes

import (
	"github.com/ashhalliday14/Bookstore-API/internal/controllers"
	"github.com/gin-gonic/gin"
)

func RegisterSessionRoutes(router *gin.RouterGroup, sessionController *controllers.SessionController) {
	// POST /sessions - Log in, issue a token pair
	router.POST("", sessionController.CreateSession)

	// PATCH /sessions/:sessionid - Rotate the token pair
	router.PATCH("/:sessionid", sessionController.RefreshSession)

	// DELETE /sessions/:sessionid - Log out
	router.DELETE("/:sessionid", sessionController.DeleteSession)
}
