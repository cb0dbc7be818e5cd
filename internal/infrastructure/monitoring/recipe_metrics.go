// Package monitoring tracks recipe manager activity as Prometheus metrics
package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"

	"github.com/alchemorsel/recipebook/internal/domain/recipe"
	"github.com/alchemorsel/recipebook/internal/domain/shared"
)

const namespace = "recipebook"

// RecipeMetrics collects counters and distributions for recipe events
type RecipeMetrics struct {
	logger   *zap.Logger
	registry *prometheus.Registry

	recipesAdded      prometheus.Counter
	recipesRemoved    prometheus.Counter
	recipesScaled     prometheus.Counter
	thresholdExceeded prometheus.Counter
	totalCalories     prometheus.Histogram
}

// NewRecipeMetrics registers recipe metrics on a private registry, so
// several instances can coexist in one process
func NewRecipeMetrics(logger *zap.Logger) *RecipeMetrics {
	if logger == nil {
		logger = zap.NewNop()
	}
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &RecipeMetrics{
		logger:   logger.Named("metrics"),
		registry: registry,
		recipesAdded: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "recipes_added_total",
			Help:      "Total number of recipes added",
		}),
		recipesRemoved: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "recipes_removed_total",
			Help:      "Total number of recipes removed",
		}),
		recipesScaled: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "recipes_scaled_total",
			Help:      "Total number of recipe scaling operations",
		}),
		thresholdExceeded: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "calorie_threshold_exceeded_total",
			Help:      "Total number of recipes added above the calorie threshold",
		}),
		totalCalories: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "recipe_total_calories",
			Help:      "Total calories of recipes at the time they were added",
			Buckets:   []float64{100, 200, 300, 500, 800, 1200, 2000, 5000},
		}),
	}
}

// Registry exposes the underlying registry for gathering
func (m *RecipeMetrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handle records a domain event. Unknown events are ignored.
func (m *RecipeMetrics) Handle(event shared.DomainEvent) error {
	switch e := event.(type) {
	case recipe.RecipeAddedEvent:
		m.recipesAdded.Inc()
		m.totalCalories.Observe(e.TotalCalories)
	case recipe.RecipeRemovedEvent:
		m.recipesRemoved.Inc()
	case recipe.RecipeScaledEvent:
		m.recipesScaled.Inc()
	case recipe.CalorieThresholdExceededEvent:
		m.thresholdExceeded.Inc()
	}
	return nil
}

// LogSummary writes the current metric values at info level
func (m *RecipeMetrics) LogSummary() {
	families, err := m.registry.Gather()
	if err != nil {
		m.logger.Warn("Failed to gather metrics", zap.Error(err))
		return
	}

	fields := make([]zap.Field, 0, len(families))
	for _, family := range families {
		for _, metric := range family.GetMetric() {
			switch {
			case metric.GetCounter() != nil:
				fields = append(fields, zap.Float64(family.GetName(), metric.GetCounter().GetValue()))
			case metric.GetHistogram() != nil:
				fields = append(fields, zap.Uint64(family.GetName()+"_count", metric.GetHistogram().GetSampleCount()))
			}
		}
	}
	m.logger.Info("Session metrics", fields...)
}
