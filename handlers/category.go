package handlers

import (
	"net/http"

	"disruptive/schema"
	"disruptive/services/category"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CategoryHandler handles the admin-only category endpoints.
type CategoryHandler struct {
	Service category.CategoryService
	Schemas *schema.Validator
}

// NewCategoryHandler creates a new CategoryHandler instance.
func NewCategoryHandler(svc category.CategoryService, schemas *schema.Validator) *CategoryHandler {
	return &CategoryHandler{Service: svc, Schemas: schemas}
}

// ListCategoriesHandler handles GET /api/categories.
func (h *CategoryHandler) ListCategoriesHandler(c *gin.Context) {
	cats, err := h.Service.GetAllCategories()
	if err != nil {
		getLogger().Error("Failed to list categories", zap.Error(err))
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, cats)
}

// GetCategoryHandler handles GET /api/categories/:id.
func (h *CategoryHandler) GetCategoryHandler(c *gin.Context) {
	cat, err := h.Service.GetCategoryByID(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, cat)
}

// CreateCategoryHandler handles POST /api/categories.
func (h *CategoryHandler) CreateCategoryHandler(c *gin.Context) {
	payload, err := h.Schemas.Validate(schema.KindCategory, c.Request.Body)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	cat, err := h.Service.CreateCategory(payload.(*schema.CategoryPayload))
	if err != nil {
		getLogger().Warn("Failed to create category", zap.Error(err))
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, cat)
}

// UpdateCategoryHandler handles PUT /api/categories/:id.
func (h *CategoryHandler) UpdateCategoryHandler(c *gin.Context) {
	payload, err := h.Schemas.Validate(schema.KindCategory, c.Request.Body)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	cat, err := h.Service.UpdateCategory(c.Param("id"), payload.(*schema.CategoryPayload))
	if err != nil {
		getLogger().Warn("Failed to update category", zap.String("id", c.Param("id")), zap.Error(err))
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, cat)
}

// DeleteCategoryHandler handles DELETE /api/categories/:id.
func (h *CategoryHandler) DeleteCategoryHandler(c *gin.Context) {
	if err := h.Service.DeleteCategory(c.Param("id")); err != nil {
		getLogger().Warn("Failed to delete category", zap.String("id", c.Param("id")), zap.Error(err))
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category deleted"})
}
