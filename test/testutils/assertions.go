// Package testutils provides custom assertions and testing utilities
package testutils

import (
	"testing"

	"github.com/alchemorsel/recipebook/internal/domain/recipe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RecipeAssertions provides recipe-specific assertion methods
type RecipeAssertions struct {
	t *testing.T
}

// NewRecipeAssertions creates a new recipe assertions helper
func NewRecipeAssertions(t *testing.T) *RecipeAssertions {
	return &RecipeAssertions{t: t}
}

// Quantities returns ingredient name to quantity
func Quantities(r *recipe.Recipe) map[string]float64 {
	out := make(map[string]float64, r.IngredientCount())
	for _, ingredient := range r.Ingredients() {
		out[ingredient.Name] = ingredient.Quantity
	}
	return out
}

// HasIngredient asserts that a recipe holds the named ingredient with the given quantity
func (ra *RecipeAssertions) HasIngredient(r *recipe.Recipe, name string, quantity float64, msgAndArgs ...interface{}) {
	require.NotNil(ra.t, r, "Recipe should not be nil")
	ingredient, ok := r.Ingredient(name)
	require.True(ra.t, ok, "Recipe should contain ingredient %q", name)
	assert.InDelta(ra.t, quantity, ingredient.Quantity, 1e-9, msgAndArgs...)
}

// ScaledFrom asserts that every quantity of scaled equals the matching quantity
// of original multiplied by factor, and that the other fields are unchanged
func (ra *RecipeAssertions) ScaledFrom(original []recipe.NamedIngredient, scaled *recipe.Recipe, factor float64) {
	require.NotNil(ra.t, scaled, "Recipe should not be nil")
	require.Len(ra.t, scaled.Ingredients(), len(original))

	for _, before := range original {
		after, ok := scaled.Ingredient(before.Name)
		require.True(ra.t, ok, "Ingredient %q should survive scaling", before.Name)
		assert.InDelta(ra.t, before.Quantity*factor, after.Quantity, 1e-9, "quantity of %q", before.Name)
		assert.Equal(ra.t, before.Unit, after.Unit, "unit of %q", before.Name)
		assert.Equal(ra.t, before.CaloriesPerUnit, after.CaloriesPerUnit, "calories of %q", before.Name)
		assert.Equal(ra.t, before.FoodGroup, after.FoodGroup, "food group of %q", before.Name)
	}
}
