package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"disruptive/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// StorageHandler handles cover image uploads.
type StorageHandler struct {
	Covers *utils.CoverStorage
}

// NewStorageHandler creates a new StorageHandler instance. Covers may be nil
// when Cloudinary is not configured; uploads then return 503.
func NewStorageHandler(covers *utils.CoverStorage) *StorageHandler {
	return &StorageHandler{Covers: covers}
}

// UploadCoverHandler handles POST /api/storage/covers.
func (h *StorageHandler) UploadCoverHandler(c *gin.Context) {
	if h.Covers == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "cover storage is not configured"})
		return
	}

	fileHeader, err := c.FormFile("cover")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cover file not provided"})
		return
	}

	tempFilePath := filepath.Join(os.TempDir(), filepath.Base(fileHeader.Filename))
	if err := c.SaveUploadedFile(fileHeader, tempFilePath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save file"})
		return
	}
	defer os.Remove(tempFilePath)

	url, err := h.Covers.UploadCover(c, tempFilePath)
	if err != nil {
		getLogger().Error("Cover upload failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to upload cover image"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}
