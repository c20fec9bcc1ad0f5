package utils

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse writes the uniform error body {"message": ...}.
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"message": message})
}

// ServerErrorResponse logs the underlying failure and answers with an
// opaque 500. Internals never reach the client.
func ServerErrorResponse(c *gin.Context, errorCode string, err error) {
	Logger.Error("request failed",
		zap.String("code", errorCode),
		zap.String("path", c.Request.URL.Path),
		zap.Error(err),
	)
	c.JSON(500, gin.H{"message": "Internal server error"})
}
