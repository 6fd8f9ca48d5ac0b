package category

import (
	categoryRepo "disruptive/database/repository/category"
	contentRepo "disruptive/database/repository/content"
	"disruptive/models"
	"disruptive/schema"

	"github.com/go-redis/redis/v8"
)

// CategoryService owns category CRUD and permission resolution.
type CategoryService interface {
	CreateCategory(payload *schema.CategoryPayload) (*models.Category, error)
	UpdateCategory(id string, payload *schema.CategoryPayload) (*models.Category, error)
	DeleteCategory(id string) error
	GetCategoryByID(id string) (*models.Category, error)
	GetAllCategories() ([]models.Category, error)

	// ResolveByName returns the category a content payload refers to, or a
	// CategoryNotFoundError. Content cannot be filed under a category that
	// does not exist.
	ResolveByName(name string) (*models.Category, error)
}

// DefaultCategoryService is the production implementation.
type DefaultCategoryService struct {
	Repo        categoryRepo.CategoryRepository
	ContentRepo contentRepo.ContentRepository
	Cache       *redis.Client
}
