// Package inbound defines the interfaces for inbound ports (primary/driving adapters)
// These are the interfaces that the application exposes to the outside world
package inbound

import (
	"github.com/alchemorsel/recipebook/internal/domain/recipe"
)

// ThresholdObserver is notified with the recipe name when a newly added
// recipe's total calories exceed the manager's threshold
type ThresholdObserver func(recipeName string)

// RecipeManager defines the recipe management use cases.
// This is the port the console shell drives.
type RecipeManager interface {
	// Commands - operations that modify state
	AddRecipe(name string, r *recipe.Recipe) (float64, error)
	RemoveRecipe(name string)
	ScaleRecipe(name string, factor float64) error

	// Queries - operations that read state
	ListNamesSorted() []string
	GetRecipe(name string) (*recipe.Recipe, bool)

	// Notifications
	Subscribe(observer ThresholdObserver)
}
