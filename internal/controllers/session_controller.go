package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/ashhalliday14/Bookstore-API/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionController exposes the session lifecycle: login, token refresh
// and logout.
type SessionController struct {
	authService *services.AuthService
}

func NewSessionController(authService *services.AuthService) *SessionController {
	return &SessionController{authService: authService}
}

type loginRequest struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
}

type refreshRequest struct {
	RefreshToken *string `json:"refresh_token"`
}

// CreateSession - Log in and issue a new token pair
// POST /sessions
func (sc *SessionController) CreateSession(c *gin.Context) {
	// Throttle before any validation so malformed attempts pay the same
	// delay as real ones.
	sc.authService.ThrottleLoginAttempt()

	if !requireJSON(c) {
		return
	}

	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Request body is not valid JSON")
		return
	}

	var messages []string
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

	username, password := *req.Username, *req.Password
	if username == "" {
		messages = append(messages, "Username cannot be blank")
	}
	if len(username) > 255 {
		messages = append(messages, "Username must be less than 255 characters")
	}
	if password == "" {
		messages = append(messages, "Password cannot be blank")
	}
	if len(password) > 255 {
		messages = append(messages, "Password must be less than 255 characters")
	}
	if len(messages) > 0 {
		fail(c, http.StatusBadRequest, messages...)
		return
	}

	pair, err := sc.authService.Login(username, password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidCredentials),
			errors.Is(err, services.ErrAccountInactive),
			errors.Is(err, services.ErrAccountLocked):
			fail(c, http.StatusUnauthorized, capitalized(err))
		default:
			// Never log the submitted credentials.
			log.Printf("login failed for session creation: %v", err)
			fail(c, http.StatusInternalServerError, "There was an issue logging in - please try again")
		}
		return
	}

	ok(c, http.StatusCreated, gin.H{
		"session_id":               pair.SessionID,
		"access_token":             pair.AccessToken,
		"access_token_expires_in":  pair.AccessTokenExpiresIn,
		"refresh_token":            pair.RefreshToken,
		"refresh_token_expires_in": pair.RefreshTokenExpiresIn,
	})
}

// RefreshSession - Rotate the session's token pair
// PATCH /sessions/:sessionid
func (sc *SessionController) RefreshSession(c *gin.Context) {
	sessionID, authHeader, done := sc.sessionCredentials(c)
	if done {
		return
	}

	if !requireJSON(c) {
		return
	}

	var req refreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Request body is not valid JSON")
		return
	}
	if req.RefreshToken == nil {
		fail(c, http.StatusBadRequest, "Refresh Token not supplied")
		return
	}
	if *req.RefreshToken == "" {
		fail(c, http.StatusBadRequest, "Refresh Token cannot be blank")
		return
	}

	pair, err := sc.authService.Refresh(sessionID, authHeader, *req.RefreshToken)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidToken),
			errors.Is(err, services.ErrAccountInactive),
			errors.Is(err, services.ErrAccountLocked),
			errors.Is(err, services.ErrRefreshExpired),
			errors.Is(err, services.ErrRefreshConflict):
			fail(c, http.StatusUnauthorized, capitalized(err))
		default:
			log.Printf("refresh failed for session %s: %v", sessionID, err)
			fail(c, http.StatusInternalServerError, "There was an issue refreshing access token - please log in again")
		}
		return
	}

	ok(c, http.StatusOK, gin.H{
		"session_id":               pair.SessionID,
		"access_token":             pair.AccessToken,
		"access_token_expires_in":  pair.AccessTokenExpiresIn,
		"refresh_token":            pair.RefreshToken,
		"refresh_token_expires_in": pair.RefreshTokenExpiresIn,
	}, "Token refreshed")
}

// DeleteSession - Log out
// DELETE /sessions/:sessionid
func (sc *SessionController) DeleteSession(c *gin.Context) {
	sessionID, authHeader, done := sc.sessionCredentials(c)
	if done {
		return
	}

	if err := sc.authService.Logout(sessionID, authHeader); err != nil {
		if errors.Is(err, services.ErrLogoutFailed) {
			// Deliberately 400, not 404: the response must not confirm
			// whether the session ever existed.
			fail(c, http.StatusBadRequest, "Failed to log out of this session using access token provided")
			return
		}
		log.Printf("logout failed for session %s: %v", sessionID, err)
		fail(c, http.StatusInternalServerError, "There was an issue logging out - please try again")
		return
	}

	ok(c, http.StatusOK, gin.H{"session_id": sessionID}, "Logged out")
}

// sessionCredentials validates the session id path parameter and the
// Authorization header shared by the refresh and logout endpoints. The
// whole header value is the access token; there is no scheme prefix.
func (sc *SessionController) sessionCredentials(c *gin.Context) (uuid.UUID, string, bool) {
	sessionID, err := uuid.Parse(c.Param("sessionid"))
	if err != nil {
		fail(c, http.StatusBadRequest, "Session ID must be a valid UUID")
		return uuid.Nil, "", true
	}

	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		fail(c, http.StatusUnauthorized, "Access token is missing from the header")
		return uuid.Nil, "", true
	}

	return sessionID, authHeader, false
}

// capitalized upper-cases the first letter of a sentinel error for the
// client-facing message list.
func capitalized(err error) string {
	msg := err.Error()
	if msg == "" {
		return msg
	}
	if msg[0] >= 'a' && msg[0] <= 'z' {
		return string(msg[0]-'a'+'A') + msg[1:]
	}
	return msg
}
