package console

import (
	"fmt"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/alchemorsel/recipebook/internal/domain/recipe"
)

const clearSequence = "\033[H\033[2J"

var menuOptions = []string{
	"1. Add Recipe",
	"2. Remove Recipe",
	"3. Display Recipes",
	"4. Scale Recipe",
	"5. Exit",
}

type palette struct {
	title     *color.Color
	menu      []*color.Color
	prompt    *color.Color
	success   *color.Color
	warning   *color.Color
	errorText *color.Color
	heading   *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		title: color.New(color.FgHiWhite, color.Bold),
		menu: []*color.Color{
			color.New(color.BgBlue, color.FgHiWhite),
			color.New(color.BgMagenta, color.FgHiWhite),
			color.New(color.BgCyan, color.FgBlack),
			color.New(color.BgGreen, color.FgBlack),
			color.New(color.BgRed, color.FgHiWhite),
		},
		prompt:    color.New(color.FgHiCyan),
		success:   color.New(color.FgGreen),
		warning:   color.New(color.FgRed, color.Bold),
		errorText: color.New(color.FgYellow),
		heading:   color.New(color.FgHiYellow, color.Underline),
	}

	all := append([]*color.Color{p.title, p.prompt, p.success, p.warning, p.errorText, p.heading}, p.menu...)
	for _, c := range all {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (s *Shell) printMenu() {
	s.palette.title.Fprintln(s.out, "Choose an option:")
	for i, option := range menuOptions {
		s.palette.menu[i].Fprint(s.out, option)
		fmt.Fprintln(s.out)
	}
}

// clearScreen only emits the escape sequence on a real terminal
func (s *Shell) clearScreen() {
	if !s.opts.ClearScreen {
		return
	}
	f, ok := s.out.(*os.File)
	if !ok {
		return
	}
	if isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()) {
		fmt.Fprint(s.out, clearSequence)
	}
}

func (s *Shell) printNames(names []string) {
	s.palette.heading.Fprintln(s.out, "Recipes (Alphabetical Order):")
	if len(names) == 0 {
		s.println("No recipes stored.")
		return
	}
	for _, name := range names {
		fmt.Fprintf(s.out, "- %s\n", name)
	}
}

func (s *Shell) printRecipe(r *recipe.Recipe) {
	s.palette.heading.Fprintf(s.out, "Recipe: %s\n", r.Name())
	s.println("Ingredients:")
	for _, ing := range r.Ingredients() {
		fmt.Fprintf(s.out, "- %s: %s %s (%s, %s calories)\n",
			ing.Name,
			formatNumber(ing.Quantity),
			ing.Unit,
			ing.FoodGroup,
			formatNumber(ing.Calories()),
		)
	}
	fmt.Fprintf(s.out, "Total Calories: %s\n", formatNumber(r.TotalCalories()))
	s.println("Steps:")
	for i, step := range r.Steps() {
		fmt.Fprintf(s.out, "%d. %s\n", i+1, step)
	}
}

// formatNumber prints the shortest representation that round-trips
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
