// Package recipe contains the core domain logic for recipe management.
package recipe

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Recipe is a named collection of ingredients and ordered preparation steps.
// Ingredient names are unique; the order they were added in is kept so that
// listings are stable.
type Recipe struct {
	id   uuid.UUID
	name string

	ingredients map[string]Ingredient
	order       []string
	steps       []string
}

// NewRecipe creates an empty recipe
func NewRecipe(name string) *Recipe {
	return &Recipe{
		id:          uuid.New(),
		name:        name,
		ingredients: make(map[string]Ingredient),
	}
}

// ID returns the recipe's unique identifier
func (r *Recipe) ID() uuid.UUID {
	return r.id
}

// Name returns the recipe's name
func (r *Recipe) Name() string {
	return r.name
}

// Steps returns the preparation steps in order
func (r *Recipe) Steps() []string {
	steps := make([]string, len(r.steps))
	copy(steps, r.steps)
	return steps
}

// Ingredients returns the ingredients in the order they were added
func (r *Recipe) Ingredients() []NamedIngredient {
	out := make([]NamedIngredient, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, NamedIngredient{Name: name, Ingredient: r.ingredients[name]})
	}
	return out
}

// Ingredient looks up a single ingredient by name
func (r *Recipe) Ingredient(name string) (Ingredient, bool) {
	ingredient, ok := r.ingredients[name]
	return ingredient, ok
}

// IngredientCount returns the number of ingredients
func (r *Recipe) IngredientCount() int {
	return len(r.order)
}

// AddIngredient adds a new ingredient to the recipe. An existing name is never
// overwritten.
func (r *Recipe) AddIngredient(name string, quantity float64, unit string, caloriesPerUnit float64, foodGroup string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidIngredient)
	}
	if _, exists := r.ingredients[name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateIngredient, name)
	}

	ingredient := Ingredient{
		Quantity:        quantity,
		Unit:            unit,
		CaloriesPerUnit: caloriesPerUnit,
		FoodGroup:       foodGroup,
	}
	if err := ingredient.Validate(); err != nil {
		return err
	}

	r.ingredients[name] = ingredient
	r.order = append(r.order, name)
	return nil
}

// AddStep appends a preparation step
func (r *Recipe) AddStep(text string) error {
	if strings.TrimSpace(text) == "" {
		return ErrEmptyStep
	}
	r.steps = append(r.steps, text)
	return nil
}

// TotalCalories sums quantity * calories per unit over all ingredients
func (r *Recipe) TotalCalories() float64 {
	var total float64
	for _, name := range r.order {
		total += r.ingredients[name].Calories()
	}
	return total
}

// Scale multiplies every ingredient quantity by factor in place. Recipes held
// by a manager are scaled through Manager.ScaleRecipe, which validates the
// factor and publishes the scaled event.
func (r *Recipe) Scale(factor float64) {
	for name, ingredient := range r.ingredients {
		r.ingredients[name] = ingredient.Scaled(factor)
	}
}
