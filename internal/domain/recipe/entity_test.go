package recipe

import (
	"errors"
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// RecipeTestSuite provides a test suite for Recipe entity
type RecipeTestSuite struct {
	suite.Suite
}

// TestRecipeCreation tests recipe creation scenarios
func (suite *RecipeTestSuite) TestRecipeCreation() {
	suite.Run("NewRecipe_ShouldStartEmpty", func() {
		recipe := NewRecipe("Pancakes")

		require.NotNil(suite.T(), recipe)
		assert.Equal(suite.T(), "Pancakes", recipe.Name())
		assert.NotEqual(suite.T(), uuid.Nil, recipe.ID())
		assert.Zero(suite.T(), recipe.IngredientCount())
		assert.Empty(suite.T(), recipe.Steps())
		assert.Zero(suite.T(), recipe.TotalCalories())
	})

	suite.Run("NewRecipe_ShouldAssignDistinctIDs", func() {
		assert.NotEqual(suite.T(), NewRecipe("A").ID(), NewRecipe("A").ID())
	})
}

// TestRecipeIngredients tests ingredient management
func (suite *RecipeTestSuite) TestRecipeIngredients() {
	suite.Run("AddValidIngredient_ShouldAdd", func() {
		recipe := NewRecipe("Omelette")

		err := recipe.AddIngredient("Egg", 3, "pieces", 78, "Protein")

		require.NoError(suite.T(), err)
		ingredient, ok := recipe.Ingredient("Egg")
		require.True(suite.T(), ok)
		assert.Equal(suite.T(), Ingredient{Quantity: 3, Unit: "pieces", CaloriesPerUnit: 78, FoodGroup: "Protein"}, ingredient)
	})

	suite.Run("AddDuplicateIngredient_ShouldRejectAndKeepOriginal", func() {
		recipe := NewRecipe("Omelette")
		require.NoError(suite.T(), recipe.AddIngredient("Egg", 3, "pieces", 78, "Protein"))

		err := recipe.AddIngredient("Egg", 5, "pieces", 90, "Protein")

		assert.ErrorIs(suite.T(), err, ErrDuplicateIngredient)
		ingredient, _ := recipe.Ingredient("Egg")
		assert.Equal(suite.T(), 3.0, ingredient.Quantity)
		assert.Equal(suite.T(), 1, recipe.IngredientCount())
	})

	suite.Run("AddInvalidIngredient_ShouldReturnError", func() {
		cases := []struct {
			name     string
			quantity float64
			calories float64
		}{
			{"", 1, 1},
			{"   ", 1, 1},
			{"Flour", 0, 1},
			{"Flour", -2, 1},
			{"Flour", 1, 0},
			{"Flour", 1, -5},
			{"Flour", math.NaN(), 1},
		}
		for _, tc := range cases {
			recipe := NewRecipe("Bread")
			err := recipe.AddIngredient(tc.name, tc.quantity, "g", tc.calories, "Grains")
			assert.ErrorIs(suite.T(), err, ErrInvalidIngredient, "name=%q quantity=%v calories=%v", tc.name, tc.quantity, tc.calories)
			assert.Zero(suite.T(), recipe.IngredientCount())
		}
	})

	suite.Run("Ingredients_ShouldKeepInsertionOrder", func() {
		recipe := NewRecipe("Salad")
		require.NoError(suite.T(), recipe.AddIngredient("Tomato", 2, "pieces", 22, "Vegetables"))
		require.NoError(suite.T(), recipe.AddIngredient("Cucumber", 1, "pieces", 45, "Vegetables"))
		require.NoError(suite.T(), recipe.AddIngredient("Basil", 5, "leaves", 1, "Herbs"))

		var names []string
		for _, ingredient := range recipe.Ingredients() {
			names = append(names, ingredient.Name)
		}

		assert.Equal(suite.T(), []string{"Tomato", "Cucumber", "Basil"}, names)
	})

	suite.Run("Ingredient_UnknownName_ShouldReportAbsence", func() {
		_, ok := NewRecipe("Salad").Ingredient("Olive")
		assert.False(suite.T(), ok)
	})
}

// TestRecipeSteps tests step management
func (suite *RecipeTestSuite) TestRecipeSteps() {
	suite.Run("AddSteps_ShouldKeepOrder", func() {
		recipe := NewRecipe("Tea")

		require.NoError(suite.T(), recipe.AddStep("Boil water"))
		require.NoError(suite.T(), recipe.AddStep("Steep leaves"))
		require.NoError(suite.T(), recipe.AddStep("Pour"))

		assert.Equal(suite.T(), []string{"Boil water", "Steep leaves", "Pour"}, recipe.Steps())
	})

	suite.Run("AddEmptyStep_ShouldReturnError", func() {
		recipe := NewRecipe("Tea")

		assert.ErrorIs(suite.T(), recipe.AddStep(""), ErrEmptyStep)
		assert.ErrorIs(suite.T(), recipe.AddStep(" \t"), ErrEmptyStep)
		assert.Empty(suite.T(), recipe.Steps())
	})

	suite.Run("Steps_ShouldReturnCopy", func() {
		recipe := NewRecipe("Tea")
		require.NoError(suite.T(), recipe.AddStep("Boil water"))

		steps := recipe.Steps()
		steps[0] = "changed"

		assert.Equal(suite.T(), []string{"Boil water"}, recipe.Steps())
	})
}

// TestTotalCalories tests calorie summation
func (suite *RecipeTestSuite) TestTotalCalories() {
	suite.Run("TwoIngredients_ShouldSumQuantityTimesCalories", func() {
		recipe := NewRecipe("Test")
		require.NoError(suite.T(), recipe.AddIngredient("Ingredient 1", 100, "grams", 50, "Food Group 1"))
		require.NoError(suite.T(), recipe.AddIngredient("Ingredient 2", 200, "grams", 75, "Food Group 2"))

		assert.Equal(suite.T(), float64(100*50+200*75), recipe.TotalCalories())
		assert.Equal(suite.T(), 20000.0, recipe.TotalCalories())
	})

	suite.Run("RepeatedCalls_ShouldNotChangeResult", func() {
		recipe := NewRecipe("Test")
		require.NoError(suite.T(), recipe.AddIngredient("Oats", 0.5, "cup", 300, "Grains"))

		assert.Equal(suite.T(), recipe.TotalCalories(), recipe.TotalCalories())
		assert.Equal(suite.T(), 150.0, recipe.TotalCalories())
	})
}

// TestRecipeScaling tests in-place scaling
func (suite *RecipeTestSuite) TestRecipeScaling() {
	suite.Run("Scale_ShouldOnlyChangeQuantities", func() {
		recipe := NewRecipe("Soup")
		require.NoError(suite.T(), recipe.AddIngredient("Carrot", 4, "pieces", 25, "Vegetables"))
		require.NoError(suite.T(), recipe.AddIngredient("Stock", 1, "litre", 40, "Liquids"))

		recipe.Scale(2.5)

		carrot, _ := recipe.Ingredient("Carrot")
		stock, _ := recipe.Ingredient("Stock")
		assert.Equal(suite.T(), Ingredient{Quantity: 10, Unit: "pieces", CaloriesPerUnit: 25, FoodGroup: "Vegetables"}, carrot)
		assert.Equal(suite.T(), Ingredient{Quantity: 2.5, Unit: "litre", CaloriesPerUnit: 40, FoodGroup: "Liquids"}, stock)
	})

	suite.Run("Scale_ShouldNotTouchSteps", func() {
		recipe := NewRecipe("Soup")
		require.NoError(suite.T(), recipe.AddStep("Chop"))

		recipe.Scale(3)

		assert.Equal(suite.T(), []string{"Chop"}, recipe.Steps())
	})
}

func TestIngredientValidate(t *testing.T) {
	assert.NoError(t, Ingredient{Quantity: 1, CaloriesPerUnit: 1}.Validate())

	err := Ingredient{Quantity: 0, CaloriesPerUnit: 1}.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidIngredient))
}

func TestIngredientCalories(t *testing.T) {
	ingredient := Ingredient{Quantity: 2, CaloriesPerUnit: 52.5}
	assert.Equal(t, 105.0, ingredient.Calories())
	assert.Equal(t, 210.0, ingredient.Scaled(2).Calories())
	assert.Equal(t, 2.0, ingredient.Quantity)
}

func TestEventNames(t *testing.T) {
	assert.Equal(t, "recipe.added", RecipeAddedEvent{}.EventName())
	assert.Equal(t, "recipe.calories.exceeded", CalorieThresholdExceededEvent{}.EventName())
	assert.Equal(t, "recipe.removed", RecipeRemovedEvent{}.EventName())
	assert.Equal(t, "recipe.scaled", RecipeScaledEvent{}.EventName())
}

// BenchmarkRecipeTotalCalories benchmarks calorie summation
func BenchmarkRecipeTotalCalories(b *testing.B) {
	recipe := NewRecipe("Benchmark Recipe")
	for i := 0; i < 20; i++ {
		if err := recipe.AddIngredient(string(rune('a'+i)), float64(i+1), "g", 10, "Test"); err != nil {
			b.Fatal(err)
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = recipe.TotalCalories()
	}
}

// TestRecipeTestSuite runs the recipe test suite
func TestRecipeTestSuite(t *testing.T) {
	suite.Run(t, new(RecipeTestSuite))
}
