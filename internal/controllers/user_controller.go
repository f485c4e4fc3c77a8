package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/ashhalliday14/Bookstore-API/internal/services"
	"github.com/gin-gonic/gin"
)

type UserController struct {
	userService *services.UserService
}

func NewUserController(userService *services.UserService) *UserController {
	return &UserController{userService: userService}
}

type registerRequest struct {
	FullName *string `json:"full_name"`
	Username *string `json:"username"`
	Password *string `json:"password"`
}

// Register - Create a new user account
// POST /users
func (uc *UserController) Register(c *gin.Context) {
	if !requireJSON(c) {
		return
	}

	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Request body is not valid JSON")
		return
	}

	var messages []string
	if req.FullName == nil {
		messages = append(messages, "Full name not supplied")
	}
	if req.Username == nil {
		messages = append(messages, "Username not supplied")
	}
	if req.Password == nil {
		messages = append(messages, "Password not supplied")
	}
	if len(messages) > 0 {
		fail(c, http.StatusBadRequest, messages...)
		return
	}

	fullName, username, password := *req.FullName, *req.Username, *req.Password
	if fullName == "" {
		messages = append(messages, "Full name cannot be blank")
	}
	if len(fullName) > 255 {
		messages = append(messages, "Full name cannot be greater than 255 characters")
	}
	if username == "" {
		messages = append(messages, "Username cannot be blank")
	}
	if len(username) > 255 {
		messages = append(messages, "Username cannot be greater than 255 characters")
	}
	if password == "" {
		messages = append(messages, "Password cannot be blank")
	}
	if len(password) > 255 {
		messages = append(messages, "Password cannot be greater than 255 characters")
	}
	if len(messages) > 0 {
		fail(c, http.StatusBadRequest, messages...)
		return
	}

	user, err := uc.userService.Register(fullName, username, password)
	if err != nil {
		if errors.Is(err, services.ErrUserExists) {
			fail(c, http.StatusConflict, "Username already exists")
			return
		}
		log.Printf("user registration failed: %v", err)
		fail(c, http.StatusInternalServerError, "There was an issue creating a user account - please try again")
		return
	}

	ok(c, http.StatusCreated, gin.H{
		"user": gin.H{
			"id":        user.ID,
			"full_name": user.FullName,
			"username":  user.Username,
		},
	})
}
