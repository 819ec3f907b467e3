package plan

import (
	"time"

	"github.com/google/uuid"
)

// Meal is a single recipe assignment for one day and slot.
// Meals are created through the Plan aggregate during assembly and mutated
// only by status toggles and validated swaps afterwards.
type Meal struct {
	id                uuid.UUID
	planID            uuid.UUID
	planDayID         uuid.UUID
	slot              Slot
	status            MealStatus
	recipeID          uuid.UUID
	portionMultiplier int
	caloriesPlanned   int
	isLeftover        bool
	groupID           *uuid.UUID
	portionsToCook    *int
	createdAt         time.Time
	updatedAt         time.Time
}

// ID returns the meal's unique identifier
func (m *Meal) ID() uuid.UUID {
	return m.id
}

// PlanID returns the owning plan's identifier
func (m *Meal) PlanID() uuid.UUID {
	return m.planID
}

// PlanDayID returns the owning day's identifier
func (m *Meal) PlanDayID() uuid.UUID {
	return m.planDayID
}

// Slot returns the meal's slot
func (m *Meal) Slot() Slot {
	return m.slot
}

// Status returns the meal's completion status
func (m *Meal) Status() MealStatus {
	return m.status
}

// RecipeID returns the currently assigned recipe
func (m *Meal) RecipeID() uuid.UUID {
	return m.recipeID
}

// PortionMultiplier returns the integer count of recipe servings assigned
func (m *Meal) PortionMultiplier() int {
	return m.portionMultiplier
}

// CaloriesPlanned returns calories per portion times the multiplier
func (m *Meal) CaloriesPlanned() int {
	return m.caloriesPlanned
}

// IsLeftover reports whether this is the leftover half of a pair
func (m *Meal) IsLeftover() bool {
	return m.isLeftover
}

// GroupID returns the multi-portion group key, nil for single meals
func (m *Meal) GroupID() *uuid.UUID {
	return m.groupID
}

// PortionsToCook returns how many servings to cook on the cook day,
// nil for leftover meals
func (m *Meal) PortionsToCook() *int {
	return m.portionsToCook
}

// CreatedAt returns when the meal was created
func (m *Meal) CreatedAt() time.Time {
	return m.createdAt
}

// UpdatedAt returns when the meal was last modified
func (m *Meal) UpdatedAt() time.Time {
	return m.updatedAt
}

// IsGrouped reports whether the meal belongs to a multi-portion pair
func (m *Meal) IsGrouped() bool {
	return m.groupID != nil
}

// UpdateStatus applies a status toggle
func (m *Meal) UpdateStatus(target MealStatus) error {
	if !target.IsValid() {
		return ErrInvalidMealStatus
	}
	if !m.status.CanTransitionTo(target) {
		return ErrInvalidStatusTransition
	}
	m.status = target
	m.updatedAt = time.Now()
	return nil
}

// ApplySwap replaces the meal's recipe assignment. Leftover members keep a
// nil portions-to-cook; cook-day members take the new recipe's servings.
func (m *Meal) ApplySwap(recipeID uuid.UUID, multiplier, calories, portionsToCook int) {
	m.recipeID = recipeID
	m.portionMultiplier = multiplier
	m.caloriesPlanned = calories
	if !m.isLeftover {
		p := portionsToCook
		m.portionsToCook = &p
	}
	m.updatedAt = time.Now()
}

// ReconstituteMeal rebuilds a meal from persisted state without validation.
// Intended for repository adapters only.
func ReconstituteMeal(
	id, planID, planDayID uuid.UUID,
	slot Slot,
	status MealStatus,
	recipeID uuid.UUID,
	portionMultiplier, caloriesPlanned int,
	isLeftover bool,
	groupID *uuid.UUID,
	portionsToCook *int,
	createdAt, updatedAt time.Time,
) *Meal {
	return &Meal{
		id:                id,
		planID:            planID,
		planDayID:         planDayID,
		slot:              slot,
		status:            status,
		recipeID:          recipeID,
		portionMultiplier: portionMultiplier,
		caloriesPlanned:   caloriesPlanned,
		isLeftover:        isLeftover,
		groupID:           groupID,
		portionsToCook:    portionsToCook,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
	}
}
