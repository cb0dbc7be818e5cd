package recipe

import "errors"

// Domain errors for recipe operations

var (
	// Entity validation errors
	ErrInvalidIngredient = errors.New("ingredient requires a name and positive quantity and calories")
	ErrEmptyStep         = errors.New("step text must not be empty")
	ErrNilRecipe         = errors.New("recipe must not be nil")

	// Uniqueness violations
	ErrDuplicateIngredient = errors.New("ingredient already exists in recipe")
	ErrDuplicateRecipe     = errors.New("recipe already exists")

	ErrRecipeNotFound     = errors.New("recipe not found")
	ErrInvalidScaleFactor = errors.New("scale factor must be a finite number greater than 0")
)
