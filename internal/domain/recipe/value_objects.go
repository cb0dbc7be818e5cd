package recipe

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Ingredient is the record stored under an ingredient name within a recipe
type Ingredient struct {
	Quantity        float64 `validate:"gt=0"`
	Unit            string
	CaloriesPerUnit float64 `validate:"gt=0"`
	FoodGroup       string
}

// Validate validates the ingredient
func (i Ingredient) Validate() error {
	if err := validate.Struct(i); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidIngredient, err)
	}
	return nil
}

// Calories returns quantity multiplied by calories per unit
func (i Ingredient) Calories() float64 {
	return i.Quantity * i.CaloriesPerUnit
}

// Scaled returns a copy with the quantity multiplied by factor
func (i Ingredient) Scaled(factor float64) Ingredient {
	i.Quantity *= factor
	return i
}

// NamedIngredient pairs an ingredient with its name for ordered listings
type NamedIngredient struct {
	Name string
	Ingredient
}
