// users.go - User CRUD

package database // Declares the package name

import ( // Import required packages
	"context"

	"recipe-cart-backend/models" // Schema models

	"gorm.io/gorm/clause" // Omit(clause.Associations)
)

// UserFilter narrows ListUsers. Zero fields match everything.
type UserFilter struct {
	Username string
	Email    string
}

// CreateUser inserts u and fills in its ID and CreatedAt.
// u.Password must already be hashed.
func (s *Store) CreateUser(ctx context.Context, u *models.User) error {
	if err := models.Validate(u); err != nil {
		return fromValidation(entityUser, err)
	}
	err := s.db.WithContext(ctx).Omit(clause.Associations).Create(u).Error // Insert the user row only
	return translate(entityUser, "create", err)
}

func (s *Store) GetUser(ctx context.Context, id uint) (*models.User, error) {
	return firstByID[models.User](ctx, s.db, entityUser, id)
}

func (s *Store) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var u models.User
	if err := s.db.WithContext(ctx).Where("username = ?", username).First(&u).Error; err != nil {
		return nil, translate(entityUser, "get", err)
	}
	return &u, nil
}

func (s *Store) ListUsers(ctx context.Context, f UserFilter) ([]models.User, error) {
	q := s.db.WithContext(ctx).Order("id")
	if f.Username != "" {
		q = q.Where("username = ?", f.Username)
	}
	if f.Email != "" {
		q = q.Where("email = ?", f.Email)
	}
	users := []models.User{}
	if err := q.Find(&users).Error; err != nil {
		return nil, translate(entityUser, "list", err)
	}
	return users, nil
}

// UpdateUser rewrites username, email and password, then reloads u.
func (s *Store) UpdateUser(ctx context.Context, u *models.User) error {
	if err := models.Validate(u); err != nil {
		return fromValidation(entityUser, err)
	}
	err := updateByID[models.User](ctx, s.db, entityUser, u.ID, map[string]any{
		"username": u.Username,
		"email":    u.Email,
		"password": u.Password,
	})
	if err != nil {
		return err
	}
	fresh, err := s.GetUser(ctx, u.ID)
	if err != nil {
		return err
	}
	*u = *fresh // Hand back what was stored
	return nil
}

// DeleteUser removes the user together with its recipes, cart and cart items.
func (s *Store) DeleteUser(ctx context.Context, id uint) error {
	return deleteByID[models.User](ctx, s.db, entityUser, id)
}
