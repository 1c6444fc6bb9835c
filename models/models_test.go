package models

import (
	"errors"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringForms(t *testing.T) {
	u := User{Username: "u1"}
	r := Recipe{Title: "Soup"}

	assert.Equal(t, "u1", u.String())
	assert.Equal(t, "Soup", r.String())
	assert.Equal(t, "Cart of u1", Cart{User: &u}.String())
	assert.Equal(t, "Cart of user 7", Cart{UserID: 7}.String())
	assert.Equal(t, "2 of Soup in cart", CartItem{Quantity: 2, Recipe: &r}.String())
	assert.Equal(t, "1 of recipe 3 in cart", CartItem{Quantity: 1, RecipeID: 3}.String())
}

// failedTags flattens validation errors into field:tag pairs.
func failedTags(t *testing.T, err error) []string {
	t.Helper()
	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs), "expected validation errors, got %v", err)
	out := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, fe.Field()+":"+fe.Tag())
	}
	return out
}

func TestValidateUser(t *testing.T) {
	ok := User{Username: "u1", Email: "e1@x.com", Password: "hash"}
	assert.NoError(t, Validate(&ok))

	err := Validate(&User{})
	assert.ElementsMatch(t, []string{"username:required", "email:required", "password:required"}, failedTags(t, err))

	err = Validate(&User{Username: strings.Repeat("a", 151), Email: "not-an-email", Password: strings.Repeat("p", 129)})
	assert.ElementsMatch(t, []string{"username:max", "email:email", "password:max"}, failedTags(t, err))
}

func TestValidateRecipe(t *testing.T) {
	ok := Recipe{Title: "Soup", Description: "d", Ingredients: "i", Instructions: "s", CreatedByID: 1}
	assert.NoError(t, Validate(&ok))

	err := Validate(&Recipe{Title: strings.Repeat("t", 256), Description: "d", Ingredients: "i", Instructions: "s"})
	assert.ElementsMatch(t, []string{"title:max", "created_by_id:required"}, failedTags(t, err))
}

func TestValidateCartItemQuantity(t *testing.T) {
	assert.NoError(t, Validate(&CartItem{CartID: 1, RecipeID: 1, Quantity: DefaultQuantity}))

	err := Validate(&CartItem{CartID: 1, RecipeID: 1, Quantity: -2})
	assert.Equal(t, []string{"quantity:gte"}, failedTags(t, err))

	err = Validate(&Cart{})
	assert.Equal(t, []string{"user_id:required"}, failedTags(t, err))
}
