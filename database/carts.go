// carts.go - Cart and cart item CRUD

package database // Declares the package name

import ( // Import required packages
	"context"

	"recipe-cart-backend/models" // Schema models

	"gorm.io/gorm"        // GORM ORM
	"gorm.io/gorm/clause" // Omit(clause.Associations)
)

// CartFilter narrows ListCarts. Zero fields match everything.
type CartFilter struct {
	UserID uint
}

// CartItemFilter narrows ListCartItems. Zero fields match everything.
type CartItemFilter struct {
	CartID   uint
	RecipeID uint
}

// CreateCart inserts c. A second cart for the same user is a uniqueness violation.
func (s *Store) CreateCart(ctx context.Context, c *models.Cart) error {
	if err := models.Validate(c); err != nil {
		return fromValidation(entityCart, err)
	}
	err := s.db.WithContext(ctx).Omit(clause.Associations).Create(c).Error
	return translate(entityCart, "create", err)
}

// GetCart loads a cart with its owner and items, each item with its recipe.
func (s *Store) GetCart(ctx context.Context, id uint) (*models.Cart, error) {
	var c models.Cart
	if err := s.cartQuery(ctx).First(&c, id).Error; err != nil {
		return nil, translate(entityCart, "get", err)
	}
	return &c, nil
}

// GetCartByUser looks a cart up through its unique owner.
func (s *Store) GetCartByUser(ctx context.Context, userID uint) (*models.Cart, error) {
	var c models.Cart
	if err := s.cartQuery(ctx).Where("user_id = ?", userID).First(&c).Error; err != nil {
		return nil, translate(entityCart, "get", err)
	}
	return &c, nil
}

func (s *Store) cartQuery(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).
		Preload("User").
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Preload("Items.Recipe") // Nested preload for item recipes
}

func (s *Store) ListCarts(ctx context.Context, f CartFilter) ([]models.Cart, error) {
	q := s.db.WithContext(ctx).Order("id")
	if f.UserID != 0 {
		q = q.Where("user_id = ?", f.UserID)
	}
	carts := []models.Cart{}
	if err := q.Find(&carts).Error; err != nil {
		return nil, translate(entityCart, "list", err)
	}
	return carts, nil
}

// UpdateCart moves the cart to another owner.
func (s *Store) UpdateCart(ctx context.Context, c *models.Cart) error {
	if err := models.Validate(c); err != nil {
		return fromValidation(entityCart, err)
	}
	err := updateByID[models.Cart](ctx, s.db, entityCart, c.ID, map[string]any{"user_id": c.UserID})
	if err != nil {
		return err
	}
	fresh, err := s.GetCart(ctx, c.ID)
	if err != nil {
		return err
	}
	*c = *fresh
	return nil
}

// DeleteCart removes the cart and its items.
func (s *Store) DeleteCart(ctx context.Context, id uint) error {
	return deleteByID[models.Cart](ctx, s.db, entityCart, id)
}

// CreateCartItem inserts i. A zero quantity is stored as models.DefaultQuantity.
func (s *Store) CreateCartItem(ctx context.Context, i *models.CartItem) error {
	if i.Quantity == 0 { // Absent in the request
		i.Quantity = models.DefaultQuantity
	}
	if err := models.Validate(i); err != nil {
		return fromValidation(entityCartItem, err)
	}
	err := s.db.WithContext(ctx).Omit(clause.Associations).Create(i).Error
	return translate(entityCartItem, "create", err)
}

// GetCartItem loads an item with its recipe.
func (s *Store) GetCartItem(ctx context.Context, id uint) (*models.CartItem, error) {
	return firstByID[models.CartItem](ctx, s.db, entityCartItem, id, "Recipe")
}

func (s *Store) ListCartItems(ctx context.Context, f CartItemFilter) ([]models.CartItem, error) {
	q := s.db.WithContext(ctx).Preload("Recipe").Order("id")
	if f.CartID != 0 {
		q = q.Where("cart_id = ?", f.CartID)
	}
	if f.RecipeID != 0 {
		q = q.Where("recipe_id = ?", f.RecipeID)
	}
	items := []models.CartItem{}
	if err := q.Find(&items).Error; err != nil {
		return nil, translate(entityCartItem, "list", err)
	}
	return items, nil
}

// UpdateCartItem rewrites cart, recipe and quantity. Quantity must be at least 1.
func (s *Store) UpdateCartItem(ctx context.Context, i *models.CartItem) error {
	if err := models.Validate(i); err != nil {
		return fromValidation(entityCartItem, err)
	}
	err := updateByID[models.CartItem](ctx, s.db, entityCartItem, i.ID, map[string]any{
		"cart_id":   i.CartID,
		"recipe_id": i.RecipeID,
		"quantity":  i.Quantity,
	})
	if err != nil {
		return err
	}
	fresh, err := s.GetCartItem(ctx, i.ID)
	if err != nil {
		return err
	}
	*i = *fresh
	return nil
}

func (s *Store) DeleteCartItem(ctx context.Context, id uint) error {
	return deleteByID[models.CartItem](ctx, s.db, entityCartItem, id)
}
