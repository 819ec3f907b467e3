// Package inbound defines the interfaces for inbound ports (primary/driving adapters)
// These are the interfaces that the application exposes to the outside world
package inbound

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/platewise/v1/internal/domain/plan"
)

// PlanService defines the use cases for meal-plan management.
// This is the primary port that the surrounding transport layer drives.
type PlanService interface {
	// Commands - operations that modify state
	CreatePlan(ctx context.Context, cmd CreatePlanCommand) (*PlanDTO, error)
	UpdatePlanState(ctx context.Context, cmd UpdatePlanStateCommand) (*PlanDTO, error)
	SwapMeal(ctx context.Context, cmd SwapMealCommand) ([]MealDTO, error)
	UpdateMealStatus(ctx context.Context, cmd UpdateMealStatusCommand) (*MealDTO, error)

	// Queries - operations that read state
	GetPlan(ctx context.Context, planID, ownerID uuid.UUID) (*PlanDTO, error)
	PlanProgress(ctx context.Context, planID, ownerID uuid.UUID) (*PlanProgressDTO, error)
}

// Command objects for operations

// CreatePlanCommand contains data for generating a new plan
type CreatePlanCommand struct {
	OwnerID        uuid.UUID `validate:"required"`
	DailyCalories  int       `validate:"required,gte=800,lte=6000"`
	PlanLengthDays int       `validate:"required,gte=1,lte=365"`
	StartDate      time.Time `validate:"required"`
}

// UpdatePlanStateCommand requests a lifecycle transition
type UpdatePlanStateCommand struct {
	PlanID   uuid.UUID `validate:"required"`
	OwnerID  uuid.UUID `validate:"required"`
	NewState string    `validate:"required,oneof=active archived cancelled"`
}

// SwapMealCommand requests a recipe substitution for one meal (or its
// whole multi-portion group when the meal is paired)
type SwapMealCommand struct {
	MealID      uuid.UUID `validate:"required"`
	OwnerID     uuid.UUID `validate:"required"`
	NewRecipeID uuid.UUID `validate:"required"`
}

// UpdateMealStatusCommand toggles a meal's completion status
type UpdateMealStatusCommand struct {
	MealID    uuid.UUID `validate:"required"`
	OwnerID   uuid.UUID `validate:"required"`
	NewStatus string    `validate:"required,oneof=planned completed skipped"`
}

// Data transfer objects

// PlanDTO is the full plan grid as returned to callers
type PlanDTO struct {
	ID            uuid.UUID    `json:"id"`
	OwnerID       uuid.UUID    `json:"owner_id"`
	State         string       `json:"state"`
	StartDate     time.Time    `json:"start_date"`
	EndDate       time.Time    `json:"end_date"`
	DailyCalories int          `json:"daily_calories"`
	Days          []PlanDayDTO `json:"days"`
	CreatedAt     time.Time    `json:"created_at"`
}

// PlanDayDTO is one day of the grid
type PlanDayDTO struct {
	ID      uuid.UUID      `json:"id"`
	Date    time.Time      `json:"date"`
	Targets map[string]int `json:"targets"`
	Meals   []MealDTO      `json:"meals"`
}

// MealDTO is a single meal assignment
type MealDTO struct {
	ID                  uuid.UUID  `json:"id"`
	PlanID              uuid.UUID  `json:"plan_id"`
	PlanDayID           uuid.UUID  `json:"plan_day_id"`
	Slot                string     `json:"slot"`
	Status              string     `json:"status"`
	RecipeID            uuid.UUID  `json:"recipe_id"`
	PortionMultiplier   int        `json:"portion_multiplier"`
	CaloriesPlanned     int        `json:"calories_planned"`
	IsLeftover          bool       `json:"is_leftover"`
	MultiPortionGroupID *uuid.UUID `json:"multi_portion_group_id,omitempty"`
	PortionsToCook      *int       `json:"portions_to_cook,omitempty"`
}

// PlanProgressDTO summarizes completion for the archival gate and dashboards
type PlanProgressDTO struct {
	PlanID            uuid.UUID `json:"plan_id"`
	TotalMeals        int       `json:"total_meals"`
	CompletedMeals    int       `json:"completed_meals"`
	CompletedFraction float64   `json:"completed_fraction"`
}

// State returns the command's target state as a domain value
func (c UpdatePlanStateCommand) State() plan.State {
	return plan.State(c.NewState)
}

// Status returns the command's target status as a domain value
func (c UpdateMealStatusCommand) Status() plan.MealStatus {
	return plan.MealStatus(c.NewStatus)
}
