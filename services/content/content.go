package content

import (
	"disruptive/models"
	"disruptive/schema"

	"github.com/google/uuid"
)

// CreateContent resolves the referenced category, checks that every populated
// field is licensed, and persists the item. The category is stored by its
// immutable id; the display name is resolved again at read time.
func (s *DefaultContentService) CreateContent(ident *models.Identity, payload *schema.ContentPayload) (*models.Content, error) {
	cat, err := s.Categories.ResolveByName(payload.NameTheme)
	if err != nil {
		return nil, err
	}
	if offending := unlicensedFields(cat, payload); len(offending) > 0 {
		return nil, FieldNotLicensedError{Category: cat.Name, Fields: offending}
	}

	item := &models.Content{
		ID:          uuid.NewString(),
		CategoryID:  cat.ID,
		NameTheme:   cat.Name,
		URLImage:    payload.URLImage,
		URLVideo:    payload.URLVideo,
		ContentText: payload.ContentText,
		Credits:     payload.Credits,
		CreatedBy:   ident.Subject,
	}
	if err := s.Repo.Create(item); err != nil {
		return nil, err
	}
	return item, nil
}

// UpdateContent re-runs the full semantic check against the (possibly new)
// referenced category before persisting.
func (s *DefaultContentService) UpdateContent(id string, payload *schema.ContentPayload) (*models.Content, error) {
	item, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ContentNotFoundError{ID: id}
	}

	cat, err := s.Categories.ResolveByName(payload.NameTheme)
	if err != nil {
		return nil, err
	}
	if offending := unlicensedFields(cat, payload); len(offending) > 0 {
		return nil, FieldNotLicensedError{Category: cat.Name, Fields: offending}
	}

	item.CategoryID = cat.ID
	item.NameTheme = cat.Name
	item.URLImage = payload.URLImage
	item.URLVideo = payload.URLVideo
	item.ContentText = payload.ContentText
	item.Credits = payload.Credits

	if err := s.Repo.Update(item); err != nil {
		return nil, err
	}
	return item, nil
}

// DeleteContent removes a content item.
func (s *DefaultContentService) DeleteContent(id string) error {
	item, err := s.Repo.GetByID(id)
	if err != nil {
		return err
	}
	if item == nil {
		return ContentNotFoundError{ID: id}
	}
	return s.Repo.Delete(id)
}

// GetContentByID fetches one content item with its category name resolved.
func (s *DefaultContentService) GetContentByID(id string) (*models.Content, error) {
	item, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ContentNotFoundError{ID: id}
	}
	s.resolveNames(item)
	return item, nil
}

// GetAllContent fetches every content item with category names resolved.
func (s *DefaultContentService) GetAllContent() ([]models.Content, error) {
	items, err := s.Repo.GetAll()
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return items, nil
	}

	cats, err := s.Categories.GetAllCategories()
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(cats))
	for _, cat := range cats {
		names[cat.ID] = cat.Name
	}
	for i := range items {
		// An unknown id means the category was deleted out from under the
		// item; the orphan is tolerated and served with an empty name.
		items[i].NameTheme = names[items[i].CategoryID]
	}
	return items, nil
}

func (s *DefaultContentService) resolveNames(item *models.Content) {
	cat, err := s.Categories.GetCategoryByID(item.CategoryID)
	if err != nil || cat == nil {
		// Orphaned reference; serve the item with an empty name.
		return
	}
	item.NameTheme = cat.Name
}

// unlicensedFields lists every populated field whose permission tag is absent
// from the category's set. All offenders are reported, not just the first.
func unlicensedFields(cat *models.Category, payload *schema.ContentPayload) []string {
	var offending []string
	if payload.URLImage != "" && !cat.Licenses(models.PermissionImages) {
		offending = append(offending, models.FieldURLImage)
	}
	if payload.URLVideo != "" && !cat.Licenses(models.PermissionVideos) {
		offending = append(offending, models.FieldURLVideo)
	}
	if payload.ContentText != "" && !cat.LicensesText() {
		offending = append(offending, models.FieldContentText)
	}
	return offending
}
