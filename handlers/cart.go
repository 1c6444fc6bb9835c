// cart.go - HTTP handlers for cart and cart item endpoints

package handlers // Declares the package name

import ( // Import required packages
	"net/http"

	"recipe-cart-backend/database" // Store and list filters
	"recipe-cart-backend/models"   // Schema models

	"github.com/gin-gonic/gin" // Gin web framework
)

// CartInput is the request body for POST /carts.
type CartInput struct {
	UserID uint `json:"user_id" binding:"required"`
}

type CartItemInput struct {
	CartID   uint `json:"cart_id" binding:"required"`
	RecipeID uint `json:"recipe_id" binding:"required"`
	Quantity int  `json:"quantity"` // 0 or absent stores the default of 1
}

// UpdateCartItemInput fields left at zero keep their stored values, except Quantity.
type UpdateCartItemInput struct {
	CartID   uint `json:"cart_id"`   // keeps the current cart when 0
	RecipeID uint `json:"recipe_id"` // keeps the current recipe when 0
	Quantity int  `json:"quantity" binding:"required"`
}

func (h *Handler) CreateCart(c *gin.Context) {
	var input CartInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err)
		return
	}
	cart := models.Cart{UserID: input.UserID} // One cart per user, enforced by the store
	if err := h.store.CreateCart(c.Request.Context(), &cart); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, cart)
}

// ListCarts accepts ?user_id=<user id>.
func (h *Handler) ListCarts(c *gin.Context) {
	userID, ok := queryID(c, "user_id")
	if !ok {
		return
	}
	carts, err := h.store.ListCarts(c.Request.Context(), database.CartFilter{UserID: userID})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, carts)
}

func (h *Handler) GetCart(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	cart, err := h.store.GetCart(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cart)
}

func (h *Handler) DeleteCart(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.store.DeleteCart(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) CreateCartItem(c *gin.Context) {
	var input CartItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err)
		return
	}
	item := models.CartItem{CartID: input.CartID, RecipeID: input.RecipeID, Quantity: input.Quantity}
	if err := h.store.CreateCartItem(c.Request.Context(), &item); err != nil {
		h.respondError(c, err)
		return
	}
	// Reload so the response carries the recipe.
	created, err := h.store.GetCartItem(c.Request.Context(), item.ID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListCartItems accepts ?cart_id= and ?recipe_id=.
func (h *Handler) ListCartItems(c *gin.Context) {
	cartID, ok := queryID(c, "cart_id")
	if !ok {
		return
	}
	recipeID, ok := queryID(c, "recipe_id")
	if !ok {
		return
	}
	items, err := h.store.ListCartItems(c.Request.Context(), database.CartItemFilter{CartID: cartID, RecipeID: recipeID})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) GetCartItem(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	item, err := h.store.GetCartItem(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *Handler) UpdateCartItem(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var input UpdateCartItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err)
		return
	}
	item, err := h.store.GetCartItem(c.Request.Context(), id) // Load current values first
	if err != nil {
		h.respondError(c, err)
		return
	}
	if input.CartID != 0 {
		item.CartID = input.CartID
	}
	if input.RecipeID != 0 {
		item.RecipeID = input.RecipeID
	}
	item.Quantity = input.Quantity
	if err := h.store.UpdateCartItem(c.Request.Context(), item); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *Handler) DeleteCartItem(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.store.DeleteCartItem(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
