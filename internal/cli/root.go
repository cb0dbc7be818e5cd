// Package cli exposes the recipe book as a cobra command
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/fx"

	"github.com/alchemorsel/recipebook/internal/infrastructure/console"
	"github.com/alchemorsel/recipebook/internal/infrastructure/container"
)

const name = "recipebook"

var (
	// overridden during build with ldflags
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// NewRootCommand builds the root command bound to the given streams
func NewRootCommand(in io.Reader, out io.Writer) *cobra.Command {
	var (
		cfgFile  string
		logLevel string
		noColor  bool
	)

	cmd := &cobra.Command{
		Use:   name,
		Short: "recipebook - interactive recipe manager",
		Long: fmt.Sprintf(`recipebook - interactive recipe manager

Version: %s
Commit:  %s
Built:   %s

Compose recipes from ingredients and steps, list them alphabetically,
scale quantities and get warned about recipes above the calorie threshold.`, version, commit, date),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), container.Params{
				ConfigPath: cfgFile,
				LogLevel:   logLevel,
				NoColor:    noColor,
				In:         in,
				Out:        out,
			})
		},
	}

	cmd.Flags().StringVar(&cfgFile, "config", "", "config file (default is ./recipebook.yaml or $HOME/.config/recipebook/recipebook.yaml)")
	cmd.Flags().StringVar(&logLevel, "log-level", "", "log level override (debug, info, warn, error)")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")
	cmd.SetIn(in)
	cmd.SetOut(out)

	return cmd
}

// run starts the container, serves the shell and stops the container
func run(ctx context.Context, params container.Params) error {
	var shell *console.Shell
	app := fx.New(
		container.Module(params),
		fx.NopLogger,
		fx.Populate(&shell),
	)
	if err := app.Err(); err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}

	startCtx, cancelStart := context.WithTimeout(context.Background(), app.StartTimeout())
	defer cancelStart()
	if err := app.Start(startCtx); err != nil {
		return fmt.Errorf("failed to start: %w", err)
	}

	runErr := shell.Run(ctx)
	if errors.Is(runErr, context.Canceled) {
		runErr = nil
	}

	stopCtx, cancel := context.WithTimeout(context.Background(), app.StopTimeout())
	defer cancel()
	if err := app.Stop(stopCtx); err != nil && runErr == nil {
		runErr = fmt.Errorf("failed to stop: %w", err)
	}
	return runErr
}

// Execute runs the root command against the process streams.
// This is called by main.main().
func Execute() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle SIGINT/SIGTERM for graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, "\nReceived interrupt signal, shutting down...")
		cancel()
	}()

	if err := NewRootCommand(os.Stdin, os.Stdout).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
