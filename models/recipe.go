// recipe.go - Defines the Recipe model

package models

import "time"

// Recipe is owned by exactly one User and disappears with it.
type Recipe struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Title        string    `gorm:"size:255;not null" json:"title" validate:"required,max=255"`
	Description  string    `gorm:"type:text;not null" json:"description" validate:"required"`
	Ingredients  string    `gorm:"type:text;not null" json:"ingredients" validate:"required"`
	Instructions string    `gorm:"type:text;not null" json:"instructions" validate:"required"`
	CreatedByID  uint      `gorm:"not null;index" json:"created_by_id" validate:"required"` // Owning user
	CreatedBy    *User     `gorm:"constraint:OnDelete:CASCADE" json:"created_by,omitempty" validate:"-"`
	CreatedAt    time.Time `gorm:"<-:create" json:"created_at"`

	CartItems []CartItem `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"-" validate:"-"`
}

func (r Recipe) String() string {
	return r.Title
}
