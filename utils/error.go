package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse is the wire shape of every error the API returns.
type ErrorResponse struct {
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// ErrorHandler recovers from handler panics and converts them into a 500
// response, logging the failing route so the panic can be traced.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				GetLogger().Error("unhandled panic",
					zap.Any("error", err),
					zap.String("method", c.Request.Method),
					zap.String("path", c.Request.URL.Path))

				c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
					Message: "Internal Server Error",
					Details: "An unexpected error occurred. Please try again later.",
				})
			}
		}()
		c.Next()
	}
}

// JSONError rejects the request with a standardized error body and stops the
// handler chain.
func JSONError(c *gin.Context, status int, message string, details string) {
	GetLogger().Warn("request rejected",
		zap.Int("status", status),
		zap.String("path", c.Request.URL.Path),
		zap.String("message", message))
	c.AbortWithStatusJSON(status, ErrorResponse{Message: message, Details: details})
}
