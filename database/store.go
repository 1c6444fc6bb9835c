// store.go - Shared helpers behind the Store CRUD methods

package database // Declares the package name

import ( // Import required packages
	"context"
	"fmt"

	"gorm.io/gorm" // GORM ORM
)

// Entity names used in ValidationError and wrapped errors.
const (
	entityUser     = "user"
	entityRecipe   = "recipe"
	entityCart     = "cart"
	entityCartItem = "cart_item"
)

func notFound(entity string) error {
	return fmt.Errorf("%s: %w", entity, ErrNotFound)
}

// firstByID loads one row by primary key, applying preloads.
func firstByID[T any](ctx context.Context, db *gorm.DB, entity string, id uint, preloads ...string) (*T, error) {
	q := db.WithContext(ctx)
	for _, p := range preloads {
		q = q.Preload(p)
	}
	var row T // Zero value of the model, filled by First
	if err := q.First(&row, id).Error; err != nil {
		return nil, translate(entity, "get", err)
	}
	return &row, nil
}

// updateByID writes cols to the row with the given id. Columns not listed,
// such as created_at, are left untouched.
func updateByID[T any](ctx context.Context, db *gorm.DB, entity string, id uint, cols map[string]any) error {
	if id == 0 {
		return notFound(entity)
	}
	res := db.WithContext(ctx).Model(new(T)).Where("id = ?", id).Updates(cols) // Map keeps zero values
	if res.Error != nil {
		return translate(entity, "update", res.Error)
	}
	if res.RowsAffected == 0 {
		return notFound(entity)
	}
	return nil
}

// deleteByID hard-deletes one row; dependent rows go with it through ON DELETE CASCADE.
func deleteByID[T any](ctx context.Context, db *gorm.DB, entity string, id uint) error {
	res := db.WithContext(ctx).Delete(new(T), id)
	if res.Error != nil {
		return translate(entity, "delete", res.Error)
	}
	if res.RowsAffected == 0 {
		return notFound(entity)
	}
	return nil
}
