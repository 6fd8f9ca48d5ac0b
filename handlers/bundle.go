package handlers

import (
	"disruptive/utils"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups the handlers and shared dependencies the route
// registration needs.
type HandlerBundle struct {
	TokenManager *utils.TokenManager

	// Auth endpoints.
	RegisterHandler gin.HandlerFunc
	LoginHandler    gin.HandlerFunc
	VerifyHandler   gin.HandlerFunc

	// Category endpoints (admin-only).
	ListCategoriesHandler gin.HandlerFunc
	GetCategoryHandler    gin.HandlerFunc
	CreateCategoryHandler gin.HandlerFunc
	UpdateCategoryHandler gin.HandlerFunc
	DeleteCategoryHandler gin.HandlerFunc

	// Permission vocabulary endpoint.
	ListPermissionsHandler gin.HandlerFunc

	// Content endpoints.
	ListContentHandler   gin.HandlerFunc
	GetContentHandler    gin.HandlerFunc
	CreateContentHandler gin.HandlerFunc
	UpdateContentHandler gin.HandlerFunc
	DeleteContentHandler gin.HandlerFunc

	// Storage endpoints.
	UploadCoverHandler gin.HandlerFunc
}
