package models

import "time"

// Content is a single content item filed under a category. The category is
// referenced by its immutable id; the display name is resolved at read time
// and never stored, so renaming a category cannot orphan content.
type Content struct {
	ID          string    `bson:"id" json:"_id"`
	CategoryID  string    `bson:"category_id" json:"category_id"`
	NameTheme   string    `bson:"-" json:"name_theme"`
	URLImage    string    `bson:"url_image,omitempty" json:"url_image,omitempty"`
	URLVideo    string    `bson:"url_video,omitempty" json:"url_video,omitempty"`
	ContentText string    `bson:"content_text,omitempty" json:"content_text,omitempty"`
	Credits     string    `bson:"credits" json:"credits"`
	CreatedBy   string    `bson:"created_by" json:"created_by"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}
