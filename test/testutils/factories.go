// Package testutils provides test data factories for consistent test data generation
package testutils

import (
	"fmt"

	"github.com/alchemorsel/recipebook/internal/domain/recipe"
	"github.com/brianvoe/gofakeit/v6"
)

var foodGroups = []string{"Grains", "Vegetables", "Fruits", "Protein", "Dairy", "Fats"}

var units = []string{"g", "ml", "cup", "tbsp", "tsp", "pieces"}

// IngredientSpec describes an ingredient to be added by a RecipeBuilder
type IngredientSpec struct {
	Name            string
	Quantity        float64
	Unit            string
	CaloriesPerUnit float64
	FoodGroup       string
}

// RecipeFactory provides methods to create test recipes
type RecipeFactory struct {
	faker *gofakeit.Faker
}

// NewRecipeFactory creates a new recipe factory with seeded faker
func NewRecipeFactory(seed int64) *RecipeFactory {
	return &RecipeFactory{
		faker: gofakeit.New(seed),
	}
}

// RecipeBuilder provides a fluent interface for building test recipes
type RecipeBuilder struct {
	name        string
	ingredients []IngredientSpec
	steps       []string
}

// NewRecipeBuilder creates a new recipe builder for the given name
func NewRecipeBuilder(name string) *RecipeBuilder {
	return &RecipeBuilder{name: name}
}

// WithIngredient appends an ingredient
func (rb *RecipeBuilder) WithIngredient(name string, quantity float64, unit string, caloriesPerUnit float64, foodGroup string) *RecipeBuilder {
	rb.ingredients = append(rb.ingredients, IngredientSpec{
		Name:            name,
		Quantity:        quantity,
		Unit:            unit,
		CaloriesPerUnit: caloriesPerUnit,
		FoodGroup:       foodGroup,
	})
	return rb
}

// WithIngredients appends several ingredients
func (rb *RecipeBuilder) WithIngredients(specs ...IngredientSpec) *RecipeBuilder {
	rb.ingredients = append(rb.ingredients, specs...)
	return rb
}

// WithSteps appends preparation steps
func (rb *RecipeBuilder) WithSteps(steps ...string) *RecipeBuilder {
	rb.steps = append(rb.steps, steps...)
	return rb
}

// Build constructs the recipe, returning the first domain error
func (rb *RecipeBuilder) Build() (*recipe.Recipe, error) {
	r := recipe.NewRecipe(rb.name)

	for _, spec := range rb.ingredients {
		if err := r.AddIngredient(spec.Name, spec.Quantity, spec.Unit, spec.CaloriesPerUnit, spec.FoodGroup); err != nil {
			return nil, err
		}
	}

	for _, step := range rb.steps {
		if err := r.AddStep(step); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// MustBuild is Build for fixtures that are known to be valid
func (rb *RecipeBuilder) MustBuild() *recipe.Recipe {
	r, err := rb.Build()
	if err != nil {
		panic(fmt.Sprintf("invalid test recipe %q: %v", rb.name, err))
	}
	return r
}

// RecipeFactory methods for creating common recipe types

// RandomIngredient returns a valid ingredient spec with a unique-suffixed name
func (rf *RecipeFactory) RandomIngredient(index int) IngredientSpec {
	return IngredientSpec{
		Name:            fmt.Sprintf("%s %d", rf.faker.Noun(), index),
		Quantity:        rf.faker.Float64Range(0.5, 500),
		Unit:            rf.faker.RandomString(units),
		CaloriesPerUnit: rf.faker.Float64Range(0.1, 9),
		FoodGroup:       rf.faker.RandomString(foodGroups),
	}
}

// CreateRecipe creates a recipe with the given number of random ingredients and steps
func (rf *RecipeFactory) CreateRecipe(name string, ingredients, steps int) *recipe.Recipe {
	builder := NewRecipeBuilder(name)
	for i := 0; i < ingredients; i++ {
		builder.WithIngredients(rf.RandomIngredient(i))
	}
	for i := 0; i < steps; i++ {
		builder.WithSteps(rf.faker.Sentence(6))
	}
	return builder.MustBuild()
}

// CreateLightRecipe creates a recipe whose total calories equal total.
// total must be positive.
func (rf *RecipeFactory) CreateLightRecipe(name string, total float64) *recipe.Recipe {
	return NewRecipeBuilder(name).
		WithIngredient(rf.faker.Noun(), 1, "portion", total, rf.faker.RandomString(foodGroups)).
		WithSteps(rf.faker.Sentence(5)).
		MustBuild()
}

// CreateSaladRecipe creates a low calorie recipe (118 calories)
func (rf *RecipeFactory) CreateSaladRecipe() *recipe.Recipe {
	return NewRecipeBuilder("Garden Salad").
		WithIngredient("Lettuce", 100, "g", 0.15, "Vegetables").
		WithIngredient("Tomato", 2, "pieces", 22, "Vegetables").
		WithIngredient("Olive Oil", 1, "tbsp", 59, "Fats").
		WithSteps("Wash the leaves", "Slice the tomatoes", "Dress and toss").
		MustBuild()
}

// CreatePancakeRecipe creates a recipe above the default threshold (994 calories)
func (rf *RecipeFactory) CreatePancakeRecipe() *recipe.Recipe {
	return NewRecipeBuilder("Pancakes").
		WithIngredient("Flour", 200, "g", 3.64, "Grains").
		WithIngredient("Milk", 300, "ml", 0.42, "Dairy").
		WithIngredient("Egg", 2, "pieces", 70, "Protein").
		WithSteps("Whisk the batter", "Rest for ten minutes", "Fry in a hot pan").
		MustBuild()
}
