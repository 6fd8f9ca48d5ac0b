package utils

import (
	"net/http"

	"disruptive/schema"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Rejection taxonomy codes carried in every error response.
const (
	CodeInvalidToken     = "INVALID_TOKEN"
	CodeForbidden        = "FORBIDDEN"
	CodeValidationError  = "VALIDATION_ERROR"
	CodeCategoryNotFound = "CATEGORY_NOT_FOUND"
	CodeFieldNotLicensed = "FIELD_NOT_LICENSED"
	CodeCategoryInUse    = "CATEGORY_IN_USE"
	CodeNotFound         = "NOT_FOUND"
	CodeInternal         = "INTERNAL"
)

// ErrorResponse defines the structure of error responses.
type ErrorResponse struct {
	Error   string               `json:"error"`
	Code    string               `json:"code,omitempty"`
	Reasons []schema.FieldReason `json:"reasons,omitempty"`
}

// ErrorHandler is a middleware to catch panics and return structured errors.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				GetLogger().Error("Unhandled panic", zap.Any("error", err))

				c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
					Error: "An unexpected error occurred. Please try again later.",
					Code:  CodeInternal,
				})
			}
		}()
		c.Next()
	}
}

// JSONError sends a standardized JSON error response.
func JSONError(c *gin.Context, status int, code, message string, reasons []schema.FieldReason) {
	GetLogger().Warn(message, zap.String("code", code), zap.Int("status", status))
	c.AbortWithStatusJSON(status, ErrorResponse{Error: message, Code: code, Reasons: reasons})
}
