package models

import "time"

// Permission is one of the closed set of content-field kinds a category can
// license.
type Permission string

const (
	PermissionText   Permission = "text"
	PermissionImages Permission = "images"
	PermissionVideos Permission = "videos"
)

// Content field names licensed by the permission tags.
const (
	FieldContentText = "content_text"
	FieldURLImage    = "url_image"
	FieldURLVideo    = "url_video"
)

// ParsePermission maps a raw tag onto the closed vocabulary.
func ParsePermission(s string) (Permission, bool) {
	switch Permission(s) {
	case PermissionText, PermissionImages, PermissionVideos:
		return Permission(s), true
	}
	return "", false
}

// AllPermissions returns the full tag vocabulary in display order.
func AllPermissions() []Permission {
	return []Permission{PermissionText, PermissionImages, PermissionVideos}
}

// Field returns the content field a permission tag licenses.
func (p Permission) Field() string {
	switch p {
	case PermissionImages:
		return FieldURLImage
	case PermissionVideos:
		return FieldURLVideo
	default:
		return FieldContentText
	}
}

// Category groups content items and carries the permission tags that decide
// which content fields its items may populate.
type Category struct {
	ID          string       `bson:"id" json:"_id"`
	Name        string       `bson:"name" json:"name"`
	Cover       string       `bson:"cover" json:"cover"`
	Permissions []Permission `bson:"permissions" json:"permissions"`
	CreatedAt   time.Time    `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time    `bson:"updated_at" json:"updated_at"`
}

// Licenses reports whether the category carries the given tag.
func (c *Category) Licenses(p Permission) bool {
	for _, perm := range c.Permissions {
		if perm == p {
			return true
		}
	}
	return false
}

// LicensesText reports whether the text body may be populated. The text body
// is the implied default channel when the category licenses no media fields.
func (c *Category) LicensesText() bool {
	if c.Licenses(PermissionText) {
		return true
	}
	return !c.Licenses(PermissionImages) && !c.Licenses(PermissionVideos)
}

// AllowedFields lists the content fields the category licenses.
func (c *Category) AllowedFields() []string {
	var fields []string
	if c.LicensesText() {
		fields = append(fields, FieldContentText)
	}
	if c.Licenses(PermissionImages) {
		fields = append(fields, FieldURLImage)
	}
	if c.Licenses(PermissionVideos) {
		fields = append(fields, FieldURLVideo)
	}
	return fields
}
