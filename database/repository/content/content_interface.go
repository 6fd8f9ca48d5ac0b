package contentRepo

import "disruptive/models"

// ContentRepository defines persistence operations for content items.
type ContentRepository interface {
	Create(content *models.Content) error
	Update(content *models.Content) error
	Delete(id string) error
	GetByID(id string) (*models.Content, error)
	GetAll() ([]models.Content, error)
	CountByCategoryID(categoryID string) (int64, error)
}
