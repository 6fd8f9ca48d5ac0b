package category

import (
	"testing"

	"disruptive/models"
	"disruptive/schema"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCategoryRepo struct {
	byID map[string]*models.Category
}

func newFakeCategoryRepo(cats ...*models.Category) *fakeCategoryRepo {
	r := &fakeCategoryRepo{byID: make(map[string]*models.Category)}
	for _, c := range cats {
		cp := *c
		r.byID[c.ID] = &cp
	}
	return r
}

func (r *fakeCategoryRepo) Create(cat *models.Category) error {
	cp := *cat
	r.byID[cat.ID] = &cp
	return nil
}

func (r *fakeCategoryRepo) Update(cat *models.Category) error {
	cp := *cat
	r.byID[cat.ID] = &cp
	return nil
}

func (r *fakeCategoryRepo) Delete(id string) error {
	delete(r.byID, id)
	return nil
}

func (r *fakeCategoryRepo) GetByID(id string) (*models.Category, error) {
	if c, ok := r.byID[id]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeCategoryRepo) GetByName(name string) (*models.Category, error) {
	for _, c := range r.byID {
		if c.Name == name {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeCategoryRepo) GetAll() ([]models.Category, error) {
	out := make([]models.Category, 0, len(r.byID))
	for _, c := range r.byID {
		out = append(out, *c)
	}
	return out, nil
}

type fakeContentCounter struct {
	counts map[string]int64
}

func (r *fakeContentCounter) Create(*models.Content) error            { return nil }
func (r *fakeContentCounter) Update(*models.Content) error            { return nil }
func (r *fakeContentCounter) Delete(string) error                     { return nil }
func (r *fakeContentCounter) GetByID(string) (*models.Content, error) { return nil, nil }
func (r *fakeContentCounter) GetAll() ([]models.Content, error)       { return nil, nil }
func (r *fakeContentCounter) CountByCategoryID(categoryID string) (int64, error) {
	return r.counts[categoryID], nil
}

func newService(cats ...*models.Category) (*DefaultCategoryService, *fakeCategoryRepo, *fakeContentCounter) {
	repo := newFakeCategoryRepo(cats...)
	counter := &fakeContentCounter{counts: make(map[string]int64)}
	return &DefaultCategoryService{Repo: repo, ContentRepo: counter}, repo, counter
}

func TestCreateCategory(t *testing.T) {
	svc, repo, _ := newService()

	cat, err := svc.CreateCategory(&schema.CategoryPayload{
		Name:        "news",
		Cover:       "http://x/c.png",
		Permissions: []string{"text"},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, cat.ID)
	assert.Equal(t, []models.Permission{models.PermissionText}, cat.Permissions)

	stored, _ := repo.GetByName("news")
	require.NotNil(t, stored)
	assert.Equal(t, cat.ID, stored.ID)
}

func TestCreateCategoryDuplicateName(t *testing.T) {
	svc, _, _ := newService(&models.Category{ID: "c1", Name: "news"})

	_, err := svc.CreateCategory(&schema.CategoryPayload{
		Name:        "news",
		Cover:       "http://x/c.png",
		Permissions: []string{"text"},
	})
	var dup DuplicateCategoryError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "news", dup.Name)
}

func TestUpdateCategoryUnknownID(t *testing.T) {
	svc, _, _ := newService()

	_, err := svc.UpdateCategory("missing", &schema.CategoryPayload{
		Name:        "news",
		Cover:       "http://x/c.png",
		Permissions: []string{"text"},
	})
	var notFound CategoryNotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestUpdateCategoryRenameCollision(t *testing.T) {
	svc, _, _ := newService(
		&models.Category{ID: "c1", Name: "news"},
		&models.Category{ID: "c2", Name: "blog"},
	)

	_, err := svc.UpdateCategory("c1", &schema.CategoryPayload{
		Name:        "blog",
		Cover:       "http://x/c.png",
		Permissions: []string{"text"},
	})
	var dup DuplicateCategoryError
	assert.ErrorAs(t, err, &dup)
}

func TestDeleteCategoryRefusedWhileReferenced(t *testing.T) {
	svc, repo, counter := newService(&models.Category{ID: "c1", Name: "news"})
	counter.counts["c1"] = 3

	err := svc.DeleteCategory("c1")
	var inUse CategoryInUseError
	require.ErrorAs(t, err, &inUse)
	assert.Equal(t, int64(3), inUse.Count)

	// The category must survive a refused delete.
	stored, _ := repo.GetByID("c1")
	assert.NotNil(t, stored)
}

func TestDeleteCategoryUnreferenced(t *testing.T) {
	svc, repo, _ := newService(&models.Category{ID: "c1", Name: "news"})

	require.NoError(t, svc.DeleteCategory("c1"))
	stored, _ := repo.GetByID("c1")
	assert.Nil(t, stored)
}

func TestResolveByName(t *testing.T) {
	svc, _, _ := newService(&models.Category{
		ID:          "c1",
		Name:        "news",
		Permissions: []models.Permission{models.PermissionText},
	})

	cat, err := svc.ResolveByName("news")
	require.NoError(t, err)
	assert.Equal(t, "c1", cat.ID)
	assert.True(t, cat.Licenses(models.PermissionText))
}

func TestResolveByNameUnknownCategory(t *testing.T) {
	svc, _, _ := newService()

	_, err := svc.ResolveByName("ghost")
	var notFound CategoryNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "ghost", notFound.Ref)
}
