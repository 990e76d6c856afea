package respond

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// JSON writes a JSON response with the given status.
func JSON(c *gin.Context, status int, payload interface{}) {
	c.JSON(status, payload)
}

// OK writes a 200 OK JSON response.
func OK(c *gin.Context, payload interface{}) {
	JSON(c, http.StatusOK, payload)
}

// Message writes {"message": msg}, the shape the account endpoints use.
func Message(c *gin.Context, status int, msg string) {
	JSON(c, status, gin.H{"message": msg})
}
