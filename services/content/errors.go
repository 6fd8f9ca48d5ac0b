package content

import (
	"fmt"
	"strings"
)

// ContentNotFoundError signals that the requested content item does not exist.
type ContentNotFoundError struct {
	ID string
}

func (e ContentNotFoundError) Error() string {
	return fmt.Sprintf("content %s not found", e.ID)
}

// FieldNotLicensedError names every populated field the referenced category
// does not license.
type FieldNotLicensedError struct {
	Category string
	Fields   []string
}

func (e FieldNotLicensedError) Error() string {
	return fmt.Sprintf("category %q does not permit field(s): %s", e.Category, strings.Join(e.Fields, ", "))
}
