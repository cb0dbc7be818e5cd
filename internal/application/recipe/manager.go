// Package recipe provides the application layer for recipe management
// This implements the use cases defined in the inbound ports
package recipe

import (
	"maps"
	"math"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/alchemorsel/recipebook/internal/domain/recipe"
	"github.com/alchemorsel/recipebook/internal/domain/shared"
	"github.com/alchemorsel/recipebook/internal/ports/inbound"
	"github.com/alchemorsel/recipebook/pkg/errors"
	"go.uber.org/zap"
)

// DefaultCalorieThreshold is the total above which observers are notified
const DefaultCalorieThreshold = 300.0

// Option configures a Manager
type Option func(*Manager)

// WithCalorieThreshold overrides DefaultCalorieThreshold
func WithCalorieThreshold(threshold float64) Option {
	return func(m *Manager) {
		m.threshold = threshold
	}
}

// WithStrictScaling rejects scale factors that are not finite and positive
func WithStrictScaling(strict bool) Option {
	return func(m *Manager) {
		m.strictScaling = strict
	}
}

// Manager owns a collection of named recipes. It is meant to be driven by a
// single caller; it does no locking.
type Manager struct {
	recipes       map[string]*recipe.Recipe
	registered    map[uuid.UUID]string
	threshold     float64
	strictScaling bool

	observers []inbound.ThresholdObserver
	handlers  []shared.EventHandler

	logger *zap.Logger
}

var _ inbound.RecipeManager = (*Manager)(nil)

// NewManager creates an empty recipe manager
func NewManager(logger *zap.Logger, opts ...Option) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	m := &Manager{
		recipes:    make(map[string]*recipe.Recipe),
		registered: make(map[uuid.UUID]string),
		threshold:  DefaultCalorieThreshold,
		logger:     logger.Named("recipe-manager"),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Subscribe registers an observer for the calorie threshold notification.
// Observers run in subscription order.
func (m *Manager) Subscribe(observer inbound.ThresholdObserver) {
	if observer == nil {
		return
	}
	m.observers = append(m.observers, observer)
}

// OnEvent registers a handler for every domain event the manager raises
func (m *Manager) OnEvent(handler shared.EventHandler) {
	if handler == nil {
		return
	}
	m.handlers = append(m.handlers, handler)
}

// CalorieThreshold returns the configured threshold
func (m *Manager) CalorieThreshold() float64 {
	return m.threshold
}

// Count returns the number of stored recipes
func (m *Manager) Count() int {
	return len(m.recipes)
}

// AddRecipe registers r under name and returns its total calories. Threshold
// observers have all been called by the time it returns. The manager takes
// ownership of r: a recipe is stored under one name only, and callers should
// go through the manager to change it afterwards.
func (m *Manager) AddRecipe(name string, r *recipe.Recipe) (float64, error) {
	if r == nil {
		return 0, errors.NewInvalidInputError("recipe", "recipe is required").WithCause(recipe.ErrNilRecipe)
	}
	if _, exists := m.recipes[name]; exists {
		m.logger.Warn("Rejected duplicate recipe", zap.String("recipe", name))
		return 0, errors.NewDuplicateNameError("recipe", name).WithCause(recipe.ErrDuplicateRecipe)
	}
	if existing, registered := m.registered[r.ID()]; registered {
		m.logger.Warn("Rejected recipe already stored under another name",
			zap.String("recipe", name),
			zap.String("registered_as", existing),
			zap.String("recipe_id", r.ID().String()),
		)
		return 0, errors.NewDuplicateNameError("recipe", name).
			WithCause(recipe.ErrDuplicateRecipe).
			WithMetadata("registered_as", existing)
	}

	m.recipes[name] = r
	m.registered[r.ID()] = name
	total := r.TotalCalories()

	m.logger.Info("Recipe added",
		zap.String("recipe", name),
		zap.String("recipe_id", r.ID().String()),
		zap.Int("ingredients", r.IngredientCount()),
		zap.Float64("total_calories", total),
	)

	now := time.Now()
	m.publish(recipe.RecipeAddedEvent{
		RecipeID:      r.ID(),
		Name:          name,
		TotalCalories: total,
		AddedAt:       now,
	})

	if total > m.threshold {
		m.logger.Warn("Recipe exceeds calorie threshold",
			zap.String("recipe", name),
			zap.Float64("total_calories", total),
			zap.Float64("threshold", m.threshold),
		)
		for _, observer := range m.observers {
			observer(name)
		}
		m.publish(recipe.CalorieThresholdExceededEvent{
			RecipeID:      r.ID(),
			Name:          name,
			TotalCalories: total,
			Threshold:     m.threshold,
			DetectedAt:    now,
		})
	}

	return total, nil
}

// RemoveRecipe deletes the named recipe. Removing an absent name is a no-op.
func (m *Manager) RemoveRecipe(name string) {
	r, exists := m.recipes[name]
	if !exists {
		m.logger.Debug("Remove skipped, recipe absent", zap.String("recipe", name))
		return
	}

	delete(m.recipes, name)
	delete(m.registered, r.ID())
	m.logger.Info("Recipe removed", zap.String("recipe", name))

	m.publish(recipe.RecipeRemovedEvent{
		RecipeID:  r.ID(),
		Name:      name,
		RemovedAt: time.Now(),
	})
}

// ListNamesSorted returns all recipe names in ascending order
func (m *Manager) ListNamesSorted() []string {
	return slices.Sorted(maps.Keys(m.recipes))
}

// GetRecipe returns the named recipe, or false when it is not stored
func (m *Manager) GetRecipe(name string) (*recipe.Recipe, bool) {
	r, ok := m.recipes[name]
	return r, ok
}

// ScaleRecipe multiplies every ingredient quantity of the named recipe by
// factor. Unless strict scaling is enabled the factor is taken as given.
func (m *Manager) ScaleRecipe(name string, factor float64) error {
	r, exists := m.recipes[name]
	if !exists {
		return errors.NewNotFoundError("recipe", name).WithCause(recipe.ErrRecipeNotFound)
	}

	if !isPositiveFinite(factor) {
		if m.strictScaling {
			return errors.NewInvalidInputError("scale factor", recipe.ErrInvalidScaleFactor.Error()).
				WithCause(recipe.ErrInvalidScaleFactor).
				WithMetadata("factor", factor)
		}
		m.logger.Warn("Scaling by a factor that is not finite and positive",
			zap.String("recipe", name),
			zap.Float64("factor", factor),
		)
	}

	r.Scale(factor)
	m.logger.Info("Recipe scaled",
		zap.String("recipe", name),
		zap.Float64("factor", factor),
	)

	m.publish(recipe.RecipeScaledEvent{
		RecipeID: r.ID(),
		Name:     name,
		Factor:   factor,
		ScaledAt: time.Now(),
	})
	return nil
}

// publish delivers event to every handler; handler failures are only logged
func (m *Manager) publish(event shared.DomainEvent) {
	for _, handler := range m.handlers {
		if err := handler(event); err != nil {
			m.logger.Error("Failed to handle event",
				zap.String("event", event.EventName()),
				zap.Error(err),
			)
		}
	}
}

func isPositiveFinite(f float64) bool {
	return f > 0 && !math.IsInf(f, 1)
}
