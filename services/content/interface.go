package content

import (
	contentRepo "disruptive/database/repository/content"
	"disruptive/models"
	"disruptive/schema"
	"disruptive/services/category"
)

// ContentService owns content CRUD. Writes pass a semantic check of the
// payload's populated fields against the referenced category's permissions.
type ContentService interface {
	CreateContent(ident *models.Identity, payload *schema.ContentPayload) (*models.Content, error)
	UpdateContent(id string, payload *schema.ContentPayload) (*models.Content, error)
	DeleteContent(id string) error
	GetContentByID(id string) (*models.Content, error)
	GetAllContent() ([]models.Content, error)
}

// DefaultContentService is the production implementation.
type DefaultContentService struct {
	Repo       contentRepo.ContentRepository
	Categories category.CategoryService
}
