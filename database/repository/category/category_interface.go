package categoryRepo

import "disruptive/models"

// CategoryRepository defines persistence operations for categories.
type CategoryRepository interface {
	Create(category *models.Category) error
	Update(category *models.Category) error
	Delete(id string) error
	GetByID(id string) (*models.Category, error)
	GetByName(name string) (*models.Category, error)
	GetAll() ([]models.Category, error)
}
