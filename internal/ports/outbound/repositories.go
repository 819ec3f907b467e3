// Package outbound defines the interfaces for outbound ports (secondary/driven adapters)
// These are the interfaces that the application uses to interact with external systems
package outbound

import (
	"context"

	"github.com/google/uuid"

	"github.com/platewise/v1/internal/domain/plan"
	"github.com/platewise/v1/internal/domain/recipe"
)

// RecipeRepository is the read-only catalog contract required by generation
// and swaps. FindCandidates must return only active recipes eligible for the
// slot whose calories per portion lie within [minCalories, maxCalories],
// excluding the given ids.
type RecipeRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*recipe.Recipe, error)
	FindCandidates(ctx context.Context, slot plan.Slot, minCalories, maxCalories int, exclude []uuid.UUID) ([]*recipe.Recipe, error)
}

// MealChange is the field set applied to one or more meals by a swap.
// PortionsToCook is applied to cook-day members only; leftover members keep
// their nil portions-to-cook.
type MealChange struct {
	RecipeID          uuid.UUID
	PortionMultiplier int
	CaloriesPlanned   int
	PortionsToCook    int
}

// CompletionStats summarizes meal completion for a plan
type CompletionStats struct {
	Total     int
	Completed int
}

// Fraction returns the completed share, 0 for an empty plan
func (s CompletionStats) Fraction() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Completed) / float64(s.Total)
}

// PlanRepository is the persistence contract for plans, days, slot targets
// and meals.
//
// CreatePlan persists the whole aggregate (plan, days, targets, meals) as
// one atomic unit and must re-validate the one-active-plan-per-owner
// invariant inside the same unit, returning an ACTIVE_PLAN_EXISTS conflict
// when violated. UpdateMeals must be atomic across the given id set and
// serialized against concurrent updates of the same rows.
type PlanRepository interface {
	CreatePlan(ctx context.Context, p *plan.Plan) error
	FindByID(ctx context.Context, id uuid.UUID) (*plan.Plan, error)
	// FindActiveByOwner returns (nil, nil) when the owner has no active plan
	FindActiveByOwner(ctx context.Context, ownerID uuid.UUID) (*plan.Plan, error)
	UpdateState(ctx context.Context, planID uuid.UUID, state plan.State) error

	FindMealByID(ctx context.Context, id uuid.UUID) (*plan.Meal, error)
	FindGroupMembers(ctx context.Context, groupID uuid.UUID) ([]*plan.Meal, error)
	GetSlotTarget(ctx context.Context, planDayID uuid.UUID, slot plan.Slot) (int, error)
	UpdateMeals(ctx context.Context, ids []uuid.UUID, change MealChange) ([]*plan.Meal, error)
	UpdateMealStatus(ctx context.Context, mealID uuid.UUID, status plan.MealStatus) (*plan.Meal, error)
	CountMealsByStatus(ctx context.Context, planID uuid.UUID) (CompletionStats, error)
}
