// Package container provides dependency injection using Uber FX
// This implements the Dependency Inversion Principle from SOLID
package container

import (
	"context"
	"io"
	"os"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/alchemorsel/recipebook/internal/application/recipe"
	"github.com/alchemorsel/recipebook/internal/infrastructure/config"
	"github.com/alchemorsel/recipebook/internal/infrastructure/console"
	"github.com/alchemorsel/recipebook/internal/infrastructure/monitoring"
	"github.com/alchemorsel/recipebook/internal/ports/inbound"
	"github.com/alchemorsel/recipebook/pkg/logger"
)

// Params carries command-line overrides and the terminal streams
type Params struct {
	ConfigPath string
	LogLevel   string
	NoColor    bool
	In         io.Reader
	Out        io.Writer
}

// Module provides all dependency injection modules
func Module(params Params) fx.Option {
	return fx.Options(
		// Infrastructure modules
		ConfigModule(params),
		LoggerModule,
		MetricsModule,

		// Service modules
		ManagerModule,

		// Presentation modules
		ConsoleModule(params),

		// Event wiring and lifecycle hooks
		LifecycleModule,
	)
}

// ConfigModule provides configuration with flag overrides applied
func ConfigModule(params Params) fx.Option {
	return fx.Provide(
		func() (*config.Config, error) {
			cfg, err := config.Load(params.ConfigPath)
			if err != nil {
				return nil, err
			}
			if params.LogLevel != "" {
				cfg.App.LogLevel = params.LogLevel
			}
			if params.NoColor {
				cfg.Console.Color = false
			}
			return cfg, nil
		},
	)
}

// LoggerModule provides logging
var LoggerModule = fx.Provide(
	func(cfg *config.Config, lc fx.Lifecycle) (*zap.Logger, error) {
		log, err := logger.New(logger.Config{
			Level:       cfg.App.LogLevel,
			Format:      cfg.App.LogFormat,
			Development: cfg.App.Debug,
			OutputPaths: []string{cfg.App.LogOutput},
		})
		if err != nil {
			return nil, err
		}
		lc.Append(fx.Hook{
			OnStop: func(context.Context) error {
				// Syncing stderr fails on some platforms, nothing to act on
				_ = log.Sync()
				return nil
			},
		})
		return log, nil
	},
)

// MetricsModule provides recipe metrics
var MetricsModule = fx.Provide(monitoring.NewRecipeMetrics)

// ManagerModule provides the recipe manager as itself and as the inbound port
var ManagerModule = fx.Provide(
	fx.Annotate(
		func(cfg *config.Config, log *zap.Logger) *recipe.Manager {
			return recipe.NewManager(log,
				recipe.WithCalorieThreshold(cfg.Recipes.CalorieThreshold),
				recipe.WithStrictScaling(cfg.Recipes.StrictScaling),
			)
		},
		fx.As(fx.Self()),
		fx.As(new(inbound.RecipeManager)),
	),
)

// ConsoleModule provides the interactive shell
func ConsoleModule(params Params) fx.Option {
	in, out := params.In, params.Out
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}

	return fx.Provide(
		func(manager inbound.RecipeManager, cfg *config.Config, log *zap.Logger) *console.Shell {
			return console.New(manager, in, out, console.Options{
				Color:       cfg.Console.Color,
				ClearScreen: cfg.Console.ClearScreen,
				Pause:       cfg.Console.Pause,
				Threshold:   cfg.Recipes.CalorieThreshold,
			}, log)
		},
	)
}

// LifecycleModule subscribes observers and handlers to the manager
var LifecycleModule = fx.Invoke(registerHooks)

func registerHooks(
	lc fx.Lifecycle,
	cfg *config.Config,
	manager *recipe.Manager,
	shell *console.Shell,
	metrics *monitoring.RecipeMetrics,
	log *zap.Logger,
) {
	manager.Subscribe(shell.WarnCalorieThreshold)
	manager.OnEvent(shell.HandleEvent)
	manager.OnEvent(metrics.Handle)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("Starting recipe book",
				zap.String("version", cfg.App.Version),
				zap.String("environment", cfg.App.Environment),
				zap.Float64("threshold", manager.CalorieThreshold()),
			)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			if err := shell.Close(); err != nil {
				log.Warn("Failed to close shell", zap.Error(err))
			}
			metrics.LogSummary()
			log.Info("Recipe book stopped")
			return nil
		},
	})
}
