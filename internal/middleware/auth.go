package middleware

import (
	"errors"
	"log"
	"net/http"

	"github.com/ashhalliday14/Bookstore-API/internal/services"
	"github.com/gin-gonic/gin"
)

// AuthMiddleware gates every protected route behind the bearer-token
// authenticator. The entire Authorization header value is the access
// token; there is no "Bearer" scheme prefix. On success the owning
// user's id is stored in the context under "userID".
func AuthMiddleware(authService *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("Authorization")

		userID, err := authService.Authenticate(token)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrMissingToken):
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"success":  false,
					"messages": []string{"Access token is missing from the header"},
				})
			case errors.Is(err, services.ErrInvalidToken),
				errors.Is(err, services.ErrAccountInactive),
				errors.Is(err, services.ErrAccountLocked),
				errors.Is(err, services.ErrTokenExpired):
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"success":  false,
					"messages": []string{authMessage(err)},
				})
			default:
				log.Printf("authentication check failed: %v", err)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"success":  false,
					"messages": []string{"There was an issue authenticating - please try again"},
				})
			}
			return
		}

		c.Set("userID", userID)
		c.Next()
	}
}

func authMessage(err error) string {
	switch {
	case errors.Is(err, services.ErrInvalidToken):
		return "Invalid access token"
	case errors.Is(err, services.ErrAccountInactive):
		return "User account is not active"
	case errors.Is(err, services.ErrAccountLocked):
		return "User account is currently locked out"
	case errors.Is(err, services.ErrTokenExpired):
		return "Access token has expired"
	}
	return "Unauthorized"
}
