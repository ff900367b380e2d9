package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the uniform JSON envelope returned by every endpoint.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Count   *int        `json:"count,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// SendSuccess sends a success envelope.
func SendSuccess(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// SendList sends a success envelope carrying a collection and its size.
func SendList(c *gin.Context, statusCode int, data interface{}, count int) {
	c.JSON(statusCode, Response{
		Success: true,
		Data:    data,
		Count:   &count,
	})
}

// SendError sends a failure envelope with a human-readable message.
func SendError(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, Response{
		Success: false,
		Message: message,
	})
}

// SendServerError sends the uniform 500 envelope: a generic message plus
// the underlying failure detail.
func SendServerError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, Response{
		Success: false,
		Message: "Server error",
		Error:   err.Error(),
	})
}
