package console

import (
	"context"
	stderrors "errors"

	"go.uber.org/zap"

	"github.com/alchemorsel/recipebook/internal/domain/recipe"
	"github.com/alchemorsel/recipebook/pkg/errors"
)

// addRecipe collects a recipe field by field. Any invalid answer abandons
// the recipe and returns to the menu; only input errors are returned.
func (s *Shell) addRecipe(ctx context.Context) error {
	name, err := s.ask(ctx, "Enter recipe name: ")
	if err != nil {
		return err
	}
	if name == "" {
		s.invalid("recipe name")
		return nil
	}
	r := recipe.NewRecipe(name)

	answer, err := s.ask(ctx, "Enter number of ingredients: ")
	if err != nil {
		return err
	}
	count, ok := parseCount(answer)
	if !ok {
		s.invalid("number of ingredients")
		return nil
	}

	for i := 1; i <= count; i++ {
		added, err := s.addIngredient(ctx, r, i)
		if err != nil || !added {
			return err
		}
	}

	answer, err = s.ask(ctx, "Enter number of steps: ")
	if err != nil {
		return err
	}
	count, ok = parseCount(answer)
	if !ok {
		s.invalid("number of steps")
		return nil
	}

	for i := 1; i <= count; i++ {
		text, err := s.ask(ctx, "Enter step %d: ", i)
		if err != nil {
			return err
		}
		if err := r.AddStep(text); err != nil {
			s.invalid("step")
			return nil
		}
	}

	// The total and any warnings are printed by HandleEvent and
	// WarnCalorieThreshold while AddRecipe runs.
	if _, err := s.manager.AddRecipe(name, r); err != nil {
		s.reportFailure(name, err)
	}
	return nil
}

// addIngredient reports false when the answer was rejected and the recipe
// should be abandoned
func (s *Shell) addIngredient(ctx context.Context, r *recipe.Recipe, index int) (bool, error) {
	name, err := s.ask(ctx, "Enter ingredient %d name: ", index)
	if err != nil {
		return false, err
	}
	if name == "" {
		s.invalid("ingredient name")
		return false, nil
	}

	answer, err := s.ask(ctx, "Enter quantity for %s: ", name)
	if err != nil {
		return false, err
	}
	quantity, ok := parsePositive(answer)
	if !ok {
		s.invalid("quantity")
		return false, nil
	}

	unit, err := s.ask(ctx, "Enter unit for %s: ", name)
	if err != nil {
		return false, err
	}

	answer, err = s.ask(ctx, "Enter calories for %s: ", name)
	if err != nil {
		return false, err
	}
	calories, ok := parsePositive(answer)
	if !ok {
		s.invalid("calories")
		return false, nil
	}

	foodGroup, err := s.ask(ctx, "Enter food group for %s: ", name)
	if err != nil {
		return false, err
	}

	if err := r.AddIngredient(name, quantity, unit, calories, foodGroup); err != nil {
		if stderrors.Is(err, recipe.ErrDuplicateIngredient) {
			s.palette.errorText.Fprintf(s.out, "Ingredient '%s' already exists in this recipe.\n", name)
		} else {
			s.palette.errorText.Fprintln(s.out, err.Error())
		}
		return false, nil
	}
	return true, nil
}

func (s *Shell) removeRecipe(ctx context.Context) error {
	name, err := s.ask(ctx, "Enter the name of the recipe to remove: ")
	if err != nil {
		return err
	}
	s.manager.RemoveRecipe(name)
	s.palette.success.Fprintf(s.out, "Recipe '%s' removed.\n", name)
	return nil
}

func (s *Shell) displayRecipes(ctx context.Context) error {
	s.printNames(s.manager.ListNamesSorted())

	name, err := s.ask(ctx, "Enter the name of the recipe to display: ")
	if err != nil {
		return err
	}
	r, ok := s.manager.GetRecipe(name)
	if !ok {
		s.notFound(name)
		return nil
	}
	s.printRecipe(r)
	return nil
}

func (s *Shell) scaleRecipe(ctx context.Context) error {
	s.printNames(s.manager.ListNamesSorted())

	name, err := s.ask(ctx, "Enter the name of the recipe to scale: ")
	if err != nil {
		return err
	}
	if _, ok := s.manager.GetRecipe(name); !ok {
		s.notFound(name)
		return nil
	}

	answer, err := s.ask(ctx, "Enter scale factor: ")
	if err != nil {
		return err
	}
	factor, ok := parseFinite(answer)
	if !ok {
		s.invalid("scale factor")
		return nil
	}

	if err := s.manager.ScaleRecipe(name, factor); err != nil {
		s.reportFailure(name, err)
		return nil
	}
	s.palette.success.Fprintf(s.out, "Recipe '%s' scaled by a factor of %s.\n", name, formatNumber(factor))
	return nil
}

func (s *Shell) notFound(name string) {
	s.palette.errorText.Fprintf(s.out, "Recipe '%s' not found.\n", name)
}

// reportFailure turns a manager error into a user-facing line
func (s *Shell) reportFailure(name string, err error) {
	switch errors.GetCode(err) {
	case errors.CodeDuplicateName:
		s.palette.errorText.Fprintf(s.out, "Recipe '%s' already exists.\n", name)
	case errors.CodeNotFound:
		s.notFound(name)
	case errors.CodeInvalidInput:
		if field, ok := errorField(err); ok {
			s.invalid(field)
			return
		}
		s.palette.errorText.Fprintln(s.out, err.Error())
	default:
		s.logger.Error("Unexpected manager failure", zap.String("recipe", name), zap.Error(err))
		s.palette.errorText.Fprintln(s.out, err.Error())
	}
}

func errorField(err error) (string, bool) {
	var appErr *errors.AppError
	if !stderrors.As(err, &appErr) {
		return "", false
	}
	field, ok := appErr.Metadata["field"].(string)
	return field, ok
}
