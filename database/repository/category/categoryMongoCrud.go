package categoryRepo

import (
	"fmt"
	"time"

	"disruptive/models"

	"go.mongodb.org/mongo-driver/bson"
)

// Create inserts a new category document.
func (r *MongoCategoryRepo) Create(category *models.Category) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	category.CreatedAt = now
	category.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, category)
	if err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}

// Update modifies an existing category document.
func (r *MongoCategoryRepo) Update(category *models.Category) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	category.UpdatedAt = time.Now()
	filter := bson.M{"id": category.ID}
	update := bson.M{"$set": category}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update category with id %s: %w", category.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("category with id %s not found", category.ID)
	}
	return nil
}

// Delete removes a category document by its ID.
func (r *MongoCategoryRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id}
	result, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to delete category with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("category with id %s not found", id)
	}
	return nil
}
