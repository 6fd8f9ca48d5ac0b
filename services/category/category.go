package category

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"disruptive/models"
	"disruptive/schema"
	"disruptive/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const cacheTTL = 5 * time.Minute

func cacheKey(name string) string {
	return "category:name:" + name
}

// CreateCategory creates a category from a shape-validated payload.
func (s *DefaultCategoryService) CreateCategory(payload *schema.CategoryPayload) (*models.Category, error) {
	existing, err := s.Repo.GetByName(payload.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to check for existing category: %w", err)
	}
	if existing != nil {
		return nil, DuplicateCategoryError{Name: payload.Name}
	}

	cat := &models.Category{
		ID:          uuid.NewString(),
		Name:        payload.Name,
		Cover:       payload.Cover,
		Permissions: parsePermissions(payload.Permissions),
	}
	if err := s.Repo.Create(cat); err != nil {
		return nil, err
	}
	return cat, nil
}

// UpdateCategory replaces a category's name, cover and permission set.
func (s *DefaultCategoryService) UpdateCategory(id string, payload *schema.CategoryPayload) (*models.Category, error) {
	cat, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, CategoryNotFoundError{Ref: id}
	}

	if payload.Name != cat.Name {
		existing, err := s.Repo.GetByName(payload.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to check for existing category: %w", err)
		}
		if existing != nil {
			return nil, DuplicateCategoryError{Name: payload.Name}
		}
	}

	oldName := cat.Name
	cat.Name = payload.Name
	cat.Cover = payload.Cover
	cat.Permissions = parsePermissions(payload.Permissions)

	if err := s.Repo.Update(cat); err != nil {
		return nil, err
	}
	s.invalidate(oldName, cat.Name)
	return cat, nil
}

// DeleteCategory removes a category. Deletion is refused while content still
// references it.
func (s *DefaultCategoryService) DeleteCategory(id string) error {
	cat, err := s.Repo.GetByID(id)
	if err != nil {
		return err
	}
	if cat == nil {
		return CategoryNotFoundError{Ref: id}
	}

	count, err := s.ContentRepo.CountByCategoryID(id)
	if err != nil {
		return fmt.Errorf("failed to count content for category %s: %w", id, err)
	}
	if count > 0 {
		return CategoryInUseError{ID: id, Count: count}
	}

	if err := s.Repo.Delete(id); err != nil {
		return err
	}
	s.invalidate(cat.Name)
	return nil
}

// GetCategoryByID fetches a single category.
func (s *DefaultCategoryService) GetCategoryByID(id string) (*models.Category, error) {
	cat, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, CategoryNotFoundError{Ref: id}
	}
	return cat, nil
}

// GetAllCategories fetches every category.
func (s *DefaultCategoryService) GetAllCategories() ([]models.Category, error) {
	return s.Repo.GetAll()
}

// ResolveByName looks up a category by name, consulting the cache first. An
// unknown name is a hard rejection.
func (s *DefaultCategoryService) ResolveByName(name string) (*models.Category, error) {
	if cat := s.cachedLookup(name); cat != nil {
		return cat, nil
	}

	cat, err := s.Repo.GetByName(name)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, CategoryNotFoundError{Ref: name}
	}
	s.cacheStore(cat)
	return cat, nil
}

func (s *DefaultCategoryService) cachedLookup(name string) *models.Category {
	if s.Cache == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	raw, err := s.Cache.Get(ctx, cacheKey(name)).Result()
	if err != nil {
		if err != redis.Nil {
			utils.GetLogger().Warn("category cache lookup failed", zap.String("name", name), zap.Error(err))
		}
		return nil
	}
	var cat models.Category
	if err := json.Unmarshal([]byte(raw), &cat); err != nil {
		return nil
	}
	return &cat
}

func (s *DefaultCategoryService) cacheStore(cat *models.Category) {
	if s.Cache == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	raw, err := json.Marshal(cat)
	if err != nil {
		return
	}
	if err := s.Cache.Set(ctx, cacheKey(cat.Name), raw, cacheTTL).Err(); err != nil {
		utils.GetLogger().Warn("category cache store failed", zap.String("name", cat.Name), zap.Error(err))
	}
}

func (s *DefaultCategoryService) invalidate(names ...string) {
	if s.Cache == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	keys := make([]string, 0, len(names))
	for _, name := range names {
		keys = append(keys, cacheKey(name))
	}
	if err := s.Cache.Del(ctx, keys...).Err(); err != nil {
		utils.GetLogger().Warn("category cache invalidation failed", zap.Strings("names", names), zap.Error(err))
	}
}

// parsePermissions converts shape-validated tags into the closed vocabulary.
func parsePermissions(raw []string) []models.Permission {
	perms := make([]models.Permission, 0, len(raw))
	for _, tag := range raw {
		if p, ok := models.ParsePermission(tag); ok {
			perms = append(perms, p)
		}
	}
	return perms
}
