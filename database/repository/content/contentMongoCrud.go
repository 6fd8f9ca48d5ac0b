package contentRepo

import (
	"fmt"
	"time"

	"disruptive/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Create inserts a new content document.
func (r *MongoContentRepo) Create(content *models.Content) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	content.CreatedAt = now
	content.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, content)
	if err != nil {
		return fmt.Errorf("failed to create content: %w", err)
	}
	return nil
}

// Update replaces the mutable fields of an existing content document.
func (r *MongoContentRepo) Update(content *models.Content) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	content.UpdatedAt = time.Now()
	filter := bson.M{"id": content.ID}
	// Replace optional fields wholesale so a field cleared by the caller does
	// not survive from the previous revision.
	update := bson.M{"$set": bson.M{
		"category_id":  content.CategoryID,
		"url_image":    content.URLImage,
		"url_video":    content.URLVideo,
		"content_text": content.ContentText,
		"credits":      content.Credits,
		"updated_at":   content.UpdatedAt,
	}}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update content with id %s: %w", content.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("content with id %s not found", content.ID)
	}
	return nil
}

// Delete removes a content document by its ID.
func (r *MongoContentRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id}
	result, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to delete content with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("content with id %s not found", id)
	}
	return nil
}

// GetByID retrieves a content item by its unique ID. Returns (nil, nil) when
// no document exists.
func (r *MongoContentRepo) GetByID(id string) (*models.Content, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var content models.Content
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&content); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch content with id %s: %w", id, err)
	}
	return &content, nil
}

// GetAll retrieves all content items.
func (r *MongoContentRepo) GetAll() ([]models.Content, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve content: %w", err)
	}
	defer cursor.Close(ctx)

	var items []models.Content
	for cursor.Next(ctx) {
		var item models.Content
		if err := cursor.Decode(&item); err != nil {
			return nil, fmt.Errorf("failed to decode content: %w", err)
		}
		items = append(items, item)
	}
	return items, nil
}

// CountByCategoryID counts the content items filed under a category.
func (r *MongoContentRepo) CountByCategoryID(categoryID string) (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	count, err := r.coll.CountDocuments(ctx, bson.M{"category_id": categoryID})
	if err != nil {
		return 0, fmt.Errorf("failed to count content for category %s: %w", categoryID, err)
	}
	return count, nil
}
