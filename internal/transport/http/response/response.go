package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// OK writes {"ok": true} merged with the payload fields at the top level.
func OK(c *gin.Context, data gin.H) {
	body := gin.H{"ok": true}
	for k, v := range data {
		body[k] = v
	}
	c.JSON(http.StatusOK, body)
}

// Error writes {"ok": false, "error": message}.
func Error(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"ok":    false,
		"error": message,
	})
}
