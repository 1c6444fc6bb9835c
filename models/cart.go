// cart.go - Defines the Cart and CartItem models

package models

import (
	"fmt"
	"time"
)

// DefaultQuantity is stored when a cart item is created without a quantity.
const DefaultQuantity = 1

// Cart belongs to a single user; the unique index on UserID allows one cart per user.
type Cart struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	UserID    uint       `gorm:"not null;uniqueIndex" json:"user_id" validate:"required"`
	User      *User      `gorm:"constraint:OnDelete:CASCADE" json:"user,omitempty" validate:"-"`
	Items     []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items,omitempty" validate:"-"`
	CreatedAt time.Time  `gorm:"<-:create" json:"created_at"`
}

func (c Cart) String() string {
	if c.User == nil {
		return fmt.Sprintf("Cart of user %d", c.UserID)
	}
	return "Cart of " + c.User.String()
}

// CartItem links a cart to a recipe with a quantity.
type CartItem struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	CartID   uint    `gorm:"not null;index" json:"cart_id" validate:"required"`
	Cart     *Cart   `gorm:"constraint:OnDelete:CASCADE" json:"-" validate:"-"`
	RecipeID uint    `gorm:"not null;index" json:"recipe_id" validate:"required"`
	Recipe   *Recipe `gorm:"constraint:OnDelete:CASCADE" json:"recipe,omitempty" validate:"-"`
	Quantity int     `gorm:"not null;default:1" json:"quantity" validate:"gte=1"`
}

func (i CartItem) String() string {
	title := fmt.Sprintf("recipe %d", i.RecipeID)
	if i.Recipe != nil {
		title = i.Recipe.String()
	}
	return fmt.Sprintf("%d of %s in cart", i.Quantity, title)
}
