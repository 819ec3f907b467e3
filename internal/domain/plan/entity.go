// Package plan contains the core domain logic for meal plans.
// This follows Domain-Driven Design principles with rich domain models.
package plan

import (
	"time"

	"github.com/google/uuid"

	"github.com/platewise/v1/internal/domain/shared"
)

// ArchivalThreshold is the minimum fraction of completed meals required
// before an active plan may be archived.
const ArchivalThreshold = 0.90

// Bounds accepted for plan creation
const (
	MinDailyCalories = 800
	MaxDailyCalories = 6000
	MinPlanLength    = 1
	MaxPlanLength    = 365
)

// Plan is the aggregate root for a multi-day meal plan. It owns its days,
// slot targets and meals; the meal grid is filled by the assembler through
// AssignMeal and AssignMealPair so the pairing invariants cannot be broken
// from outside the aggregate.
type Plan struct {
	id            uuid.UUID
	ownerID       uuid.UUID
	state         State
	startDate     time.Time
	endDate       time.Time
	dailyCalories int
	days          []*PlanDay
	createdAt     time.Time
	updatedAt     time.Time

	events []shared.DomainEvent
}

// PlanDay is one calendar day of a plan with its four slot targets and,
// once assembled, one meal per slot.
type PlanDay struct {
	id      uuid.UUID
	planID  uuid.UUID
	date    time.Time
	targets map[Slot]int
	meals   map[Slot]*Meal
}

// NewPlan creates an active plan skeleton: days and slot targets, no meals.
// The slot targets are derived once from the daily budget and are never
// recomputed afterwards.
func NewPlan(ownerID uuid.UUID, dailyCalories, lengthDays int, startDate time.Time) (*Plan, error) {
	if dailyCalories < MinDailyCalories || dailyCalories > MaxDailyCalories {
		return nil, ErrInvalidDailyCalories
	}
	if lengthDays < MinPlanLength || lengthDays > MaxPlanLength {
		return nil, ErrInvalidPlanLength
	}
	if !startsAfterToday(startDate) {
		return nil, ErrStartDateNotFuture
	}

	now := time.Now()
	startDate = truncateToDay(startDate)
	p := &Plan{
		id:            uuid.New(),
		ownerID:       ownerID,
		state:         StateActive,
		startDate:     startDate,
		endDate:       startDate.AddDate(0, 0, lengthDays-1),
		dailyCalories: dailyCalories,
		createdAt:     now,
		updatedAt:     now,
		events:        []shared.DomainEvent{},
	}

	targets := DistributeCalories(dailyCalories)
	p.days = make([]*PlanDay, lengthDays)
	for i := range p.days {
		dayTargets := make(map[Slot]int, len(targets))
		for slot, calories := range targets {
			dayTargets[slot] = calories
		}
		p.days[i] = &PlanDay{
			id:      uuid.New(),
			planID:  p.id,
			date:    startDate.AddDate(0, 0, i),
			targets: dayTargets,
			meals:   make(map[Slot]*Meal, len(targets)),
		}
	}

	p.addEvent(PlanGeneratedEvent{
		PlanID:        p.id,
		OwnerID:       ownerID,
		DailyCalories: dailyCalories,
		LengthDays:    lengthDays,
		GeneratedAt:   now,
	})

	return p, nil
}

// ID returns the plan's unique identifier
func (p *Plan) ID() uuid.UUID {
	return p.id
}

// OwnerID returns the owning user's identifier
func (p *Plan) OwnerID() uuid.UUID {
	return p.ownerID
}

// State returns the plan's lifecycle state
func (p *Plan) State() State {
	return p.state
}

// StartDate returns the plan's first day
func (p *Plan) StartDate() time.Time {
	return p.startDate
}

// EndDate returns the plan's last day
func (p *Plan) EndDate() time.Time {
	return p.endDate
}

// DailyCalories returns the daily calorie budget
func (p *Plan) DailyCalories() int {
	return p.dailyCalories
}

// Length returns the number of days in the plan
func (p *Plan) Length() int {
	return len(p.days)
}

// Days returns the plan's days in date order
func (p *Plan) Days() []*PlanDay {
	return p.days
}

// Day returns the day at the given zero-based index
func (p *Plan) Day(index int) (*PlanDay, error) {
	if index < 0 || index >= len(p.days) {
		return nil, ErrDayOutOfRange
	}
	return p.days[index], nil
}

// CreatedAt returns when the plan was created
func (p *Plan) CreatedAt() time.Time {
	return p.createdAt
}

// UpdatedAt returns when the plan was last modified
func (p *Plan) UpdatedAt() time.Time {
	return p.updatedAt
}

// Meals returns every meal across all days, in day and slot order
func (p *Plan) Meals() []*Meal {
	var meals []*Meal
	for _, day := range p.days {
		meals = append(meals, day.Meals()...)
	}
	return meals
}

// AssignMeal fills a single, non-grouped meal into the given day and slot
func (p *Plan) AssignMeal(dayIndex int, slot Slot, recipeID uuid.UUID, multiplier, calories, portionsToCook int) (*Meal, error) {
	day, err := p.Day(dayIndex)
	if err != nil {
		return nil, err
	}
	if day.HasMeal(slot) {
		return nil, ErrSlotAlreadyFilled
	}

	now := time.Now()
	cook := portionsToCook
	meal := &Meal{
		id:                uuid.New(),
		planID:            p.id,
		planDayID:         day.id,
		slot:              slot,
		status:            MealStatusPlanned,
		recipeID:          recipeID,
		portionMultiplier: multiplier,
		caloriesPlanned:   calories,
		portionsToCook:    &cook,
		createdAt:         now,
		updatedAt:         now,
	}
	day.meals[slot] = meal
	p.updatedAt = now
	return meal, nil
}

// AssignMealPair fills a cook-day meal on dayIndex and its leftover twin on
// the following day. Both meals share a fresh group id and identical
// multiplier and calories; only the cook-day meal carries portions to cook.
func (p *Plan) AssignMealPair(dayIndex int, slot Slot, recipeID uuid.UUID, multiplier, calories, portionsToCook int) (cook, leftover *Meal, err error) {
	if !slot.SupportsLeftovers() {
		return nil, nil, ErrInvalidSlot
	}
	cookDay, err := p.Day(dayIndex)
	if err != nil {
		return nil, nil, err
	}
	nextDay, err := p.Day(dayIndex + 1)
	if err != nil {
		return nil, nil, err
	}
	if cookDay.HasMeal(slot) || nextDay.HasMeal(slot) {
		return nil, nil, ErrSlotAlreadyFilled
	}

	now := time.Now()
	groupID := uuid.New()
	toCook := portionsToCook
	cook = &Meal{
		id:                uuid.New(),
		planID:            p.id,
		planDayID:         cookDay.id,
		slot:              slot,
		status:            MealStatusPlanned,
		recipeID:          recipeID,
		portionMultiplier: multiplier,
		caloriesPlanned:   calories,
		isLeftover:        false,
		groupID:           &groupID,
		portionsToCook:    &toCook,
		createdAt:         now,
		updatedAt:         now,
	}
	leftover = &Meal{
		id:                uuid.New(),
		planID:            p.id,
		planDayID:         nextDay.id,
		slot:              slot,
		status:            MealStatusPlanned,
		recipeID:          recipeID,
		portionMultiplier: multiplier,
		caloriesPlanned:   calories,
		isLeftover:        true,
		groupID:           &groupID,
		portionsToCook:    nil,
		createdAt:         now,
		updatedAt:         now,
	}
	cookDay.meals[slot] = cook
	nextDay.meals[slot] = leftover
	p.updatedAt = now
	return cook, leftover, nil
}

// GridComplete reports whether every day has exactly one meal per slot
func (p *Plan) GridComplete() bool {
	for _, day := range p.days {
		for _, slot := range Slots() {
			if !day.HasMeal(slot) {
				return false
			}
		}
	}
	return true
}

// Archive transitions the plan to archived, gated on the fraction of
// completed meals. Below the threshold the transition is a business-rule
// rejection, not a generic validation failure.
func (p *Plan) Archive(completedFraction float64) error {
	if !p.state.CanTransitionTo(StateArchived) {
		return ErrInvalidStateTransition
	}
	if completedFraction < ArchivalThreshold {
		return ErrArchivalThresholdNotMet
	}
	p.transition(StateArchived)
	return nil
}

// Cancel transitions the plan to cancelled; always allowed from active
func (p *Plan) Cancel() error {
	if !p.state.CanTransitionTo(StateCancelled) {
		return ErrInvalidStateTransition
	}
	p.transition(StateCancelled)
	return nil
}

// RecordMealSwap notes a validated recipe substitution applied to one of
// this plan's meals or to its whole multi-portion group
func (p *Plan) RecordMealSwap(mealIDs []uuid.UUID, oldRecipeID, newRecipeID uuid.UUID) {
	p.addEvent(MealSwappedEvent{
		PlanID:      p.id,
		MealIDs:     mealIDs,
		OldRecipeID: oldRecipeID,
		NewRecipeID: newRecipeID,
		SwappedAt:   time.Now(),
	})
}

// RecordMealStatusChange notes a status toggle applied to one of this
// plan's meals
func (p *Plan) RecordMealStatusChange(mealID uuid.UUID, oldStatus, newStatus MealStatus) {
	p.addEvent(MealStatusChangedEvent{
		PlanID:    p.id,
		MealID:    mealID,
		OldStatus: oldStatus,
		NewStatus: newStatus,
		ChangedAt: time.Now(),
	})
}

func (p *Plan) transition(target State) {
	old := p.state
	p.state = target
	p.updatedAt = time.Now()
	p.addEvent(PlanStateChangedEvent{
		PlanID:    p.id,
		OldState:  old,
		NewState:  target,
		ChangedAt: p.updatedAt,
	})
}

// addEvent adds a domain event to be dispatched
func (p *Plan) addEvent(event shared.DomainEvent) {
	p.events = append(p.events, event)
}

// Events returns and clears pending domain events
func (p *Plan) Events() []shared.DomainEvent {
	events := p.events
	p.events = []shared.DomainEvent{}
	return events
}

// ID returns the day's unique identifier
func (d *PlanDay) ID() uuid.UUID {
	return d.id
}

// PlanID returns the owning plan's identifier
func (d *PlanDay) PlanID() uuid.UUID {
	return d.planID
}

// Date returns the day's calendar date
func (d *PlanDay) Date() time.Time {
	return d.date
}

// Target returns the day's calorie target for a slot
func (d *PlanDay) Target(slot Slot) int {
	return d.targets[slot]
}

// Targets returns a copy of the day's slot targets
func (d *PlanDay) Targets() map[Slot]int {
	targets := make(map[Slot]int, len(d.targets))
	for slot, calories := range d.targets {
		targets[slot] = calories
	}
	return targets
}

// HasMeal reports whether a slot has been filled
func (d *PlanDay) HasMeal(slot Slot) bool {
	return d.meals[slot] != nil
}

// Meal returns the meal for a slot, nil when unfilled
func (d *PlanDay) Meal(slot Slot) *Meal {
	return d.meals[slot]
}

// Meals returns the day's meals in slot order
func (d *PlanDay) Meals() []*Meal {
	meals := make([]*Meal, 0, len(d.meals))
	for _, slot := range Slots() {
		if meal := d.meals[slot]; meal != nil {
			meals = append(meals, meal)
		}
	}
	return meals
}

// ReconstitutePlan rebuilds a plan aggregate from persisted state without
// validation or events. Intended for repository adapters only.
func ReconstitutePlan(
	id, ownerID uuid.UUID,
	state State,
	startDate, endDate time.Time,
	dailyCalories int,
	days []*PlanDay,
	createdAt, updatedAt time.Time,
) *Plan {
	return &Plan{
		id:            id,
		ownerID:       ownerID,
		state:         state,
		startDate:     startDate,
		endDate:       endDate,
		dailyCalories: dailyCalories,
		days:          days,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		events:        []shared.DomainEvent{},
	}
}

// ReconstitutePlanDay rebuilds a day with its targets and meals.
// Intended for repository adapters only.
func ReconstitutePlanDay(id, planID uuid.UUID, date time.Time, targets map[Slot]int, meals []*Meal) *PlanDay {
	day := &PlanDay{
		id:      id,
		planID:  planID,
		date:    date,
		targets: targets,
		meals:   make(map[Slot]*Meal, len(meals)),
	}
	for _, meal := range meals {
		day.meals[meal.slot] = meal
	}
	return day
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func startsAfterToday(t time.Time) bool {
	today := truncateToDay(time.Now())
	return truncateToDay(t).After(today)
}
