package plan

import (
	"time"

	"github.com/google/uuid"
)

// Domain Events - Events that occur within the plan domain

// PlanGeneratedEvent is raised when a full plan has been assembled
type PlanGeneratedEvent struct {
	PlanID        uuid.UUID
	OwnerID       uuid.UUID
	DailyCalories int
	LengthDays    int
	GeneratedAt   time.Time
}

func (e PlanGeneratedEvent) EventName() string {
	return "plan.generated"
}

func (e PlanGeneratedEvent) OccurredAt() time.Time {
	return e.GeneratedAt
}

// PlanStateChangedEvent is raised on a lifecycle transition
type PlanStateChangedEvent struct {
	PlanID    uuid.UUID
	OldState  State
	NewState  State
	ChangedAt time.Time
}

func (e PlanStateChangedEvent) EventName() string {
	return "plan.state.changed"
}

func (e PlanStateChangedEvent) OccurredAt() time.Time {
	return e.ChangedAt
}

// MealSwappedEvent is raised after a validated swap has been applied
type MealSwappedEvent struct {
	PlanID      uuid.UUID
	MealIDs     []uuid.UUID
	OldRecipeID uuid.UUID
	NewRecipeID uuid.UUID
	SwappedAt   time.Time
}

func (e MealSwappedEvent) EventName() string {
	return "plan.meal.swapped"
}

func (e MealSwappedEvent) OccurredAt() time.Time {
	return e.SwappedAt
}

// MealStatusChangedEvent is raised when a meal status toggle is applied
type MealStatusChangedEvent struct {
	PlanID    uuid.UUID
	MealID    uuid.UUID
	OldStatus MealStatus
	NewStatus MealStatus
	ChangedAt time.Time
}

func (e MealStatusChangedEvent) EventName() string {
	return "plan.meal.status.changed"
}

func (e MealStatusChangedEvent) OccurredAt() time.Time {
	return e.ChangedAt
}
