package category

import "fmt"

// CategoryNotFoundError signals that the referenced category does not exist.
type CategoryNotFoundError struct {
	Ref string
}

func (e CategoryNotFoundError) Error() string {
	return fmt.Sprintf("category %q not found", e.Ref)
}

// DuplicateCategoryError signals a name collision on create or update.
type DuplicateCategoryError struct {
	Name string
}

func (e DuplicateCategoryError) Error() string {
	return fmt.Sprintf("category %q already exists", e.Name)
}

// CategoryInUseError signals that deletion was refused because content still
// references the category.
type CategoryInUseError struct {
	ID    string
	Count int64
}

func (e CategoryInUseError) Error() string {
	return fmt.Sprintf("category %s is referenced by %d content item(s) and cannot be deleted", e.ID, e.Count)
}
