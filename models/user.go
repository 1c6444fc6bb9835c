// user.go - Defines the User model for the database

package models // Declares the package name

import "time"

// User is an identity record. Deleting a user cascades to its recipes and cart.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"size:150;uniqueIndex;not null" json:"username" validate:"required,max=150"`
	Email     string    `gorm:"size:254;uniqueIndex;not null" json:"email" validate:"required,email,max=254"`
	Password  string    `gorm:"size:128;not null" json:"-" validate:"required,max=128"` // Hashed password, never serialized
	CreatedAt time.Time `gorm:"<-:create" json:"created_at"`                            // Written on insert only

	Recipes []Recipe `gorm:"foreignKey:CreatedByID;constraint:OnDelete:CASCADE" json:"-" validate:"-"`
	Cart    *Cart    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-" validate:"-"`
}

func (u User) String() string {
	return u.Username
}
