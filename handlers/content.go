package handlers

import (
	"net/http"

	"disruptive/middleware"
	"disruptive/schema"
	"disruptive/services/content"
	"disruptive/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ContentHandler handles the content endpoints.
type ContentHandler struct {
	Service content.ContentService
	Schemas *schema.Validator
}

// NewContentHandler creates a new ContentHandler instance.
func NewContentHandler(svc content.ContentService, schemas *schema.Validator) *ContentHandler {
	return &ContentHandler{Service: svc, Schemas: schemas}
}

// ListContentHandler handles GET /api/content.
func (h *ContentHandler) ListContentHandler(c *gin.Context) {
	items, err := h.Service.GetAllContent()
	if err != nil {
		getLogger().Error("Failed to list content", zap.Error(err))
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// GetContentHandler handles GET /api/content/:id.
func (h *ContentHandler) GetContentHandler(c *gin.Context) {
	item, err := h.Service.GetContentByID(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// CreateContentHandler handles POST /api/content. Shape validation runs
// first, then the service checks the populated fields against the referenced
// category's permission set.
func (h *ContentHandler) CreateContentHandler(c *gin.Context) {
	ident, ok := middleware.IdentityFrom(c)
	if !ok {
		utils.JSONError(c, http.StatusInternalServerError, utils.CodeInternal, "Content write reached without an authenticated identity", nil)
		return
	}

	payload, err := h.Schemas.Validate(schema.KindContent, c.Request.Body)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	item, err := h.Service.CreateContent(ident, payload.(*schema.ContentPayload))
	if err != nil {
		getLogger().Warn("Failed to create content", zap.Error(err))
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// UpdateContentHandler handles PUT /api/content/:id.
func (h *ContentHandler) UpdateContentHandler(c *gin.Context) {
	payload, err := h.Schemas.Validate(schema.KindContent, c.Request.Body)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	item, err := h.Service.UpdateContent(c.Param("id"), payload.(*schema.ContentPayload))
	if err != nil {
		getLogger().Warn("Failed to update content", zap.String("id", c.Param("id")), zap.Error(err))
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// DeleteContentHandler handles DELETE /api/content/:id.
func (h *ContentHandler) DeleteContentHandler(c *gin.Context) {
	if err := h.Service.DeleteContent(c.Param("id")); err != nil {
		getLogger().Warn("Failed to delete content", zap.String("id", c.Param("id")), zap.Error(err))
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Content deleted"})
}
