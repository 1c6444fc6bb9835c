// user.go - Handles user registration and user records

package handlers // Declares the package name

import ( // Import required packages
	"net/http" // HTTP status codes

	"recipe-cart-backend/database" // Schema layer
	"recipe-cart-backend/models"   // User model

	"github.com/gin-gonic/gin" // Gin web framework
)

type CreateUserInput struct { // Struct for registration input
	Username string `json:"username" binding:"required"` // Username (required)
	Email    string `json:"email" binding:"required"`    // Email (required)
	Password string `json:"password" binding:"required"` // Plaintext password (required), hashed before storage
}

type UpdateUserInput struct { // Struct for user updates
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password"` // Optional, the stored hash is kept when empty
}

func (h *Handler) CreateUser(c *gin.Context) { // Handler for user registration
	var input CreateUserInput
	if err := c.ShouldBindJSON(&input); err != nil { // Parse JSON input
		badRequest(c, err)
		return
	}
	hash, err := h.hasher.Hash(input.Password) // Hash password
	if err != nil {
		h.respondError(c, err)
		return
	}
	user := models.User{Username: input.Username, Email: input.Email, Password: hash}
	if err := h.store.CreateUser(c.Request.Context(), &user); err != nil { // Save user to DB
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.store.ListUsers(c.Request.Context(), database.UserFilter{
		Username: c.Query("username"),
		Email:    c.Query("email"),
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *Handler) GetUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	user, err := h.store.GetUser(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *Handler) UpdateUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var input UpdateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err)
		return
	}
	user, err := h.store.GetUser(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	user.Username = input.Username
	user.Email = input.Email
	if input.Password != "" {
		if user.Password, err = h.hasher.Hash(input.Password); err != nil {
			h.respondError(c, err)
			return
		}
	}
	if err := h.store.UpdateUser(c.Request.Context(), user); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// DeleteUser also removes the user's recipes, cart and cart items.
func (h *Handler) DeleteUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.store.DeleteUser(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) GetUserCart(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	cart, err := h.store.GetCartByUser(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cart)
}
