// recipes.go - Recipe CRUD

package database // Declares the package name

import ( // Import required packages
	"context"

	"recipe-cart-backend/models" // Schema models

	"gorm.io/gorm/clause" // Omit(clause.Associations)
)

// RecipeFilter narrows ListRecipes. Zero fields match everything.
type RecipeFilter struct {
	CreatedByID uint
}

// CreateRecipe inserts r. r.CreatedByID must reference an existing user.
func (s *Store) CreateRecipe(ctx context.Context, r *models.Recipe) error {
	if err := models.Validate(r); err != nil {
		return fromValidation(entityRecipe, err)
	}
	err := s.db.WithContext(ctx).Omit(clause.Associations).Create(r).Error
	return translate(entityRecipe, "create", err)
}

// GetRecipe loads a recipe with its owner.
func (s *Store) GetRecipe(ctx context.Context, id uint) (*models.Recipe, error) {
	return firstByID[models.Recipe](ctx, s.db, entityRecipe, id, "CreatedBy")
}

func (s *Store) ListRecipes(ctx context.Context, f RecipeFilter) ([]models.Recipe, error) {
	q := s.db.WithContext(ctx).Order("id")
	if f.CreatedByID != 0 {
		q = q.Where("created_by_id = ?", f.CreatedByID)
	}
	recipes := []models.Recipe{}
	if err := q.Find(&recipes).Error; err != nil {
		return nil, translate(entityRecipe, "list", err)
	}
	return recipes, nil
}

func (s *Store) UpdateRecipe(ctx context.Context, r *models.Recipe) error {
	if err := models.Validate(r); err != nil {
		return fromValidation(entityRecipe, err)
	}
	err := updateByID[models.Recipe](ctx, s.db, entityRecipe, r.ID, map[string]any{
		"title":         r.Title,
		"description":   r.Description,
		"ingredients":   r.Ingredients,
		"instructions":  r.Instructions,
		"created_by_id": r.CreatedByID, // Must still reference a user
	})
	if err != nil {
		return err
	}
	fresh, err := s.GetRecipe(ctx, r.ID)
	if err != nil {
		return err
	}
	*r = *fresh
	return nil
}

// DeleteRecipe removes the recipe and every cart item that references it.
func (s *Store) DeleteRecipe(ctx context.Context, id uint) error {
	return deleteByID[models.Recipe](ctx, s.db, entityRecipe, id)
}
