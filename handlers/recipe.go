// recipe.go - HTTP handlers for recipe endpoints

package handlers // Declares the package name

import ( // Import required packages
	"net/http"

	"recipe-cart-backend/database" // Store and list filters
	"recipe-cart-backend/models"   // Schema models

	"github.com/gin-gonic/gin" // Gin web framework
)

// RecipeInput is the request body for creating and replacing a recipe.
type RecipeInput struct {
	Title        string `json:"title" binding:"required"`
	Description  string `json:"description" binding:"required"`
	Ingredients  string `json:"ingredients" binding:"required"`
	Instructions string `json:"instructions" binding:"required"`
	CreatedByID  uint   `json:"created_by_id" binding:"required"`
}

func (in RecipeInput) apply(r *models.Recipe) {
	r.Title = in.Title
	r.Description = in.Description
	r.Ingredients = in.Ingredients
	r.Instructions = in.Instructions
	r.CreatedByID = in.CreatedByID
}

func (h *Handler) CreateRecipe(c *gin.Context) {
	var input RecipeInput
	if err := c.ShouldBindJSON(&input); err != nil { // Parse JSON body
		badRequest(c, err)
		return
	}
	var recipe models.Recipe
	input.apply(&recipe)
	if err := h.store.CreateRecipe(c.Request.Context(), &recipe); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, recipe)
}

// ListRecipes accepts ?created_by=<user id>.
func (h *Handler) ListRecipes(c *gin.Context) {
	owner, ok := queryID(c, "created_by")
	if !ok {
		return
	}
	recipes, err := h.store.ListRecipes(c.Request.Context(), database.RecipeFilter{CreatedByID: owner})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipes)
}

func (h *Handler) GetRecipe(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	recipe, err := h.store.GetRecipe(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipe)
}

func (h *Handler) UpdateRecipe(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var input RecipeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err)
		return
	}
	recipe := models.Recipe{ID: id} // created_at is never rewritten
	input.apply(&recipe)
	if err := h.store.UpdateRecipe(c.Request.Context(), &recipe); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipe)
}

// DeleteRecipe also removes every cart item pointing at the recipe.
func (h *Handler) DeleteRecipe(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.store.DeleteRecipe(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent) // Success, nothing to return
}
