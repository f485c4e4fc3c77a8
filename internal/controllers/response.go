package controllers

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// fail sends the standard error envelope: a status, success=false and a
// human-readable message list, then aborts the request. Raw storage
// errors never pass through here; callers log those and send a generic
// message instead.
func fail(c *gin.Context, status int, messages ...string) {
	c.AbortWithStatusJSON(status, gin.H{
		"success":  false,
		"messages": messages,
	})
}

func ok(c *gin.Context, status int, data gin.H, messages ...string) {
	body := gin.H{
		"success": true,
		"data":    data,
	}
	if len(messages) > 0 {
		body["messages"] = messages
	}
	c.JSON(status, body)
}

// requireJSON enforces a JSON content type on request bodies.
func requireJSON(c *gin.Context) bool {
	ct := c.GetHeader("Content-Type")
	if !strings.HasPrefix(ct, "application/json") {
		fail(c, 400, "Content Type header not set to JSON")
		return false
	}
	return true
}
