package recipe

import (
	"time"

	"github.com/google/uuid"
)

// Domain Events - Events raised by the recipe manager

// RecipeAddedEvent is raised when a recipe is registered
type RecipeAddedEvent struct {
	RecipeID      uuid.UUID
	Name          string
	TotalCalories float64
	AddedAt       time.Time
}

func (e RecipeAddedEvent) EventName() string {
	return "recipe.added"
}

func (e RecipeAddedEvent) OccurredAt() time.Time {
	return e.AddedAt
}

// CalorieThresholdExceededEvent is raised when a registered recipe's total
// calories are above the manager's threshold
type CalorieThresholdExceededEvent struct {
	RecipeID      uuid.UUID
	Name          string
	TotalCalories float64
	Threshold     float64
	DetectedAt    time.Time
}

func (e CalorieThresholdExceededEvent) EventName() string {
	return "recipe.calories.exceeded"
}

func (e CalorieThresholdExceededEvent) OccurredAt() time.Time {
	return e.DetectedAt
}

// RecipeRemovedEvent is raised when a recipe is removed
type RecipeRemovedEvent struct {
	RecipeID  uuid.UUID
	Name      string
	RemovedAt time.Time
}

func (e RecipeRemovedEvent) EventName() string {
	return "recipe.removed"
}

func (e RecipeRemovedEvent) OccurredAt() time.Time {
	return e.RemovedAt
}

// RecipeScaledEvent is raised when a recipe's quantities are scaled
type RecipeScaledEvent struct {
	RecipeID uuid.UUID
	Name     string
	Factor   float64
	ScaledAt time.Time
}

func (e RecipeScaledEvent) EventName() string {
	return "recipe.scaled"
}

func (e RecipeScaledEvent) OccurredAt() time.Time {
	return e.ScaledAt
}
