// Package console implements the interactive recipe shell on top of the
// inbound recipe manager port
package console

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/alchemorsel/recipebook/internal/domain/recipe"
	"github.com/alchemorsel/recipebook/internal/domain/shared"
	"github.com/alchemorsel/recipebook/internal/ports/inbound"
)

// Options controls presentation of the shell
type Options struct {
	Color       bool
	ClearScreen bool
	Pause       bool
	// Threshold is only used for the warning text; the manager decides
	// when the warning fires.
	Threshold float64
}

// Shell is a line-oriented menu driving a RecipeManager
type Shell struct {
	manager inbound.RecipeManager
	in      io.Reader
	out     io.Writer
	opts    Options
	palette palette
	logger  *zap.Logger

	// One reader serves every Run so no line is consumed by a stale
	// reader; Close stops it.
	startReader sync.Once
	closeOnce   sync.Once
	done        chan struct{}
	lines       <-chan string
}

// New creates a shell reading commands from in and writing to out
func New(manager inbound.RecipeManager, in io.Reader, out io.Writer, opts Options, logger *zap.Logger) *Shell {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Shell{
		manager: manager,
		in:      in,
		out:     out,
		opts:    opts,
		palette: newPalette(opts.Color),
		logger:  logger.Named("console"),
		done:    make(chan struct{}),
	}
}

// Close stops the input reader. A reader blocked on a read returns once the
// read completes.
func (s *Shell) Close() error {
	s.closeOnce.Do(func() {
		close(s.done)
	})
	return nil
}

// Run serves the menu until the user exits, input ends or ctx is cancelled.
// Exit and end of input return nil.
func (s *Shell) Run(ctx context.Context) error {
	s.startReader.Do(func() {
		s.lines = readLines(s.done, s.in)
	})
	s.logger.Debug("Shell started")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.clearScreen()
		s.printMenu()

		choice, err := s.readLine(ctx)
		if err != nil {
			return s.finish(err)
		}

		switch strings.TrimSpace(choice) {
		case "1":
			err = s.addRecipe(ctx)
		case "2":
			err = s.removeRecipe(ctx)
		case "3":
			err = s.displayRecipes(ctx)
		case "4":
			err = s.scaleRecipe(ctx)
		case "5":
			s.println("Exiting...")
			return nil
		default:
			s.palette.errorText.Fprintln(s.out, "Invalid choice. Please try again.")
		}
		if err != nil {
			return s.finish(err)
		}

		if err := s.pause(ctx); err != nil {
			return s.finish(err)
		}
	}
}

// WarnCalorieThreshold is the threshold observer registered with the manager
func (s *Shell) WarnCalorieThreshold(recipeName string) {
	s.palette.warning.Fprintf(s.out, "Warning: Recipe '%s' exceeds %s calories!\n", recipeName, formatNumber(s.opts.Threshold))
}

// HandleEvent is registered with the manager's event handlers. It reports
// the total of a newly added recipe and, once the threshold observers have
// run, a closing warning for recipes over the threshold.
func (s *Shell) HandleEvent(event shared.DomainEvent) error {
	switch e := event.(type) {
	case recipe.RecipeAddedEvent:
		s.palette.success.Fprintf(s.out, "Total Calories for %s: %s\n", e.Name, formatNumber(e.TotalCalories))
	case recipe.CalorieThresholdExceededEvent:
		s.palette.warning.Fprintf(s.out, "Warning: Total calories exceed %s!\n", formatNumber(e.Threshold))
	}
	return nil
}

// finish maps end of input to a normal exit
func (s *Shell) finish(err error) error {
	if errors.Is(err, io.EOF) {
		s.println("")
		s.println("Exiting...")
		s.logger.Debug("Input closed, leaving shell")
		return nil
	}
	return err
}

func (s *Shell) pause(ctx context.Context) error {
	if !s.opts.Pause {
		return nil
	}
	s.println("\nPress Enter to go back to the main menu...")
	_, err := s.readLine(ctx)
	return err
}
