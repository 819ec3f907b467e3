// Package testutils provides test data factories for consistent test data generation
package testutils

import (
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"

	"github.com/platewise/v1/internal/domain/plan"
	"github.com/platewise/v1/internal/domain/recipe"
)

// RecipeFactory provides methods to create catalog fixtures
type RecipeFactory struct {
	faker *gofakeit.Faker
}

// NewRecipeFactory creates a new recipe factory with seeded faker
func NewRecipeFactory(seed int64) *RecipeFactory {
	return &RecipeFactory{
		faker: gofakeit.New(seed),
	}
}

// Recipe creates one active recipe with the given nutrition profile
func (f *RecipeFactory) Recipe(caloriesPerPortion, portions int, slots ...plan.Slot) *recipe.Recipe {
	rec, err := recipe.NewRecipe(f.faker.Dinner(), caloriesPerPortion, portions, slots)
	if err != nil {
		panic(err)
	}
	return rec
}

// SingleServing creates a recipe that cannot form a multi-portion pair
func (f *RecipeFactory) SingleServing(caloriesPerPortion int, slots ...plan.Slot) *recipe.Recipe {
	return f.Recipe(caloriesPerPortion, 1, slots...)
}

// CatalogFor creates enough distinct recipes to fill every slot of a plan
// of the given length at the given slot targets, including pair-capable
// lunch and dinner entries. perSlot controls catalog breadth.
func (f *RecipeFactory) CatalogFor(targets map[plan.Slot]int, perSlot int) []*recipe.Recipe {
	var recipes []*recipe.Recipe
	for slot, target := range targets {
		for i := 0; i < perSlot; i++ {
			// spread calories inside the +-20% band
			calories := target - target/10 + (i*target)/(5*perSlot)
			if calories < 1 {
				calories = 1
			}
			portions := 1
			if slot.SupportsLeftovers() {
				portions = 4
			}
			recipes = append(recipes, f.Recipe(calories, portions, slot))
		}
	}
	return recipes
}

// PlanFactory provides methods to create plan fixtures
type PlanFactory struct {
	faker *gofakeit.Faker
}

// NewPlanFactory creates a new plan factory with seeded faker
func NewPlanFactory(seed int64) *PlanFactory {
	return &PlanFactory{
		faker: gofakeit.New(seed),
	}
}

// Skeleton creates an unassembled active plan starting tomorrow
func (f *PlanFactory) Skeleton(ownerID uuid.UUID, dailyCalories, lengthDays int) *plan.Plan {
	p, err := plan.NewPlan(ownerID, dailyCalories, lengthDays, Tomorrow())
	if err != nil {
		panic(err)
	}
	return p
}

// Tomorrow returns the first valid start date for a new plan
func Tomorrow() time.Time {
	return time.Now().AddDate(0, 0, 1)
}
