package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/platewise/v1/internal/domain/plan"
	"github.com/platewise/v1/internal/ports/outbound"
	"github.com/platewise/v1/pkg/errors"
)

// Row copies decouple stored state from the aggregates callers mutate,
// mirroring how the database adapters behave.

type planRow struct {
	id            uuid.UUID
	ownerID       uuid.UUID
	state         plan.State
	startDate     time.Time
	endDate       time.Time
	dailyCalories int
	createdAt     time.Time
	updatedAt     time.Time
}

type dayRow struct {
	id      uuid.UUID
	planID  uuid.UUID
	date    time.Time
	targets map[plan.Slot]int
}

type mealRow struct {
	id                uuid.UUID
	planID            uuid.UUID
	planDayID         uuid.UUID
	slot              plan.Slot
	status            plan.MealStatus
	recipeID          uuid.UUID
	portionMultiplier int
	caloriesPlanned   int
	isLeftover        bool
	groupID           *uuid.UUID
	portionsToCook    *int
	createdAt         time.Time
	updatedAt         time.Time
}

// PlanRepository implements plan persistence in memory with the same
// all-or-nothing semantics the transactional adapters provide. The Fail*
// hooks let tests inject storage failures and assert that no partial
// state becomes visible.
type PlanRepository struct {
	mu    sync.Mutex
	plans map[uuid.UUID]*planRow
	days  map[uuid.UUID]*dayRow
	meals map[uuid.UUID]*mealRow

	// Failure injection for atomicity tests
	FailCreate      error
	FailUpdateMeals error
}

// NewPlanRepository creates an empty in-memory plan store
func NewPlanRepository() *PlanRepository {
	return &PlanRepository{
		plans: make(map[uuid.UUID]*planRow),
		days:  make(map[uuid.UUID]*dayRow),
		meals: make(map[uuid.UUID]*mealRow),
	}
}

// CreatePlan persists the whole aggregate atomically, re-validating the
// one-active-plan-per-owner invariant under the same lock as the insert
func (r *PlanRepository) CreatePlan(ctx context.Context, p *plan.Plan) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.FailCreate != nil {
		return r.FailCreate
	}

	for _, row := range r.plans {
		if row.ownerID == p.OwnerID() && row.state == plan.StateActive {
			return errors.NewActivePlanExistsError(p.OwnerID().String())
		}
	}

	r.plans[p.ID()] = &planRow{
		id:            p.ID(),
		ownerID:       p.OwnerID(),
		state:         p.State(),
		startDate:     p.StartDate(),
		endDate:       p.EndDate(),
		dailyCalories: p.DailyCalories(),
		createdAt:     p.CreatedAt(),
		updatedAt:     p.UpdatedAt(),
	}
	for _, day := range p.Days() {
		r.days[day.ID()] = &dayRow{
			id:      day.ID(),
			planID:  p.ID(),
			date:    day.Date(),
			targets: day.Targets(),
		}
		for _, meal := range day.Meals() {
			r.meals[meal.ID()] = mealToRow(meal)
		}
	}
	return nil
}

// FindByID reconstitutes a plan aggregate, or returns (nil, nil)
func (r *PlanRepository) FindByID(ctx context.Context, id uuid.UUID) (*plan.Plan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	row, ok := r.plans[id]
	if !ok {
		return nil, nil
	}
	return r.reconstitute(row), nil
}

// FindActiveByOwner returns the owner's active plan or (nil, nil)
func (r *PlanRepository) FindActiveByOwner(ctx context.Context, ownerID uuid.UUID) (*plan.Plan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, row := range r.plans {
		if row.ownerID == ownerID && row.state == plan.StateActive {
			return r.reconstitute(row), nil
		}
	}
	return nil, nil
}

// UpdateState persists a lifecycle transition
func (r *PlanRepository) UpdateState(ctx context.Context, planID uuid.UUID, state plan.State) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	row, ok := r.plans[planID]
	if !ok {
		return errors.NewPlanNotFoundError(planID.String())
	}
	row.state = state
	row.updatedAt = time.Now()
	return nil
}

// FindMealByID returns a meal or (nil, nil)
func (r *PlanRepository) FindMealByID(ctx context.Context, id uuid.UUID) (*plan.Meal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	row, ok := r.meals[id]
	if !ok {
		return nil, nil
	}
	return rowToMeal(row), nil
}

// FindGroupMembers returns both members of a multi-portion group,
// cook day first
func (r *PlanRepository) FindGroupMembers(ctx context.Context, groupID uuid.UUID) ([]*plan.Meal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var members []*plan.Meal
	for _, row := range r.meals {
		if row.groupID != nil && *row.groupID == groupID {
			members = append(members, rowToMeal(row))
		}
	}
	sort.Slice(members, func(i, j int) bool {
		return !members[i].IsLeftover() && members[j].IsLeftover()
	})
	return members, nil
}

// GetSlotTarget returns the persisted calorie target for a day and slot
func (r *PlanRepository) GetSlotTarget(ctx context.Context, planDayID uuid.UUID, slot plan.Slot) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	day, ok := r.days[planDayID]
	if !ok {
		return 0, errors.NewNotFoundError("plan day")
	}
	return day.targets[slot], nil
}

// UpdateMeals applies the change to every id atomically: the rows are
// staged first and committed only when all of them resolve
func (r *PlanRepository) UpdateMeals(ctx context.Context, ids []uuid.UUID, change outbound.MealChange) ([]*plan.Meal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.FailUpdateMeals != nil {
		return nil, r.FailUpdateMeals
	}

	now := time.Now()
	staged := make([]*mealRow, 0, len(ids))
	for _, id := range ids {
		row, ok := r.meals[id]
		if !ok {
			return nil, errors.NewMealNotFoundError(id.String())
		}
		updated := *row
		updated.recipeID = change.RecipeID
		updated.portionMultiplier = change.PortionMultiplier
		updated.caloriesPlanned = change.CaloriesPlanned
		if !updated.isLeftover {
			toCook := change.PortionsToCook
			updated.portionsToCook = &toCook
		}
		updated.updatedAt = now
		staged = append(staged, &updated)
	}

	meals := make([]*plan.Meal, len(staged))
	for i, row := range staged {
		r.meals[row.id] = row
		meals[i] = rowToMeal(row)
	}
	return meals, nil
}

// UpdateMealStatus persists a status toggle
func (r *PlanRepository) UpdateMealStatus(ctx context.Context, mealID uuid.UUID, status plan.MealStatus) (*plan.Meal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	row, ok := r.meals[mealID]
	if !ok {
		return nil, errors.NewMealNotFoundError(mealID.String())
	}
	row.status = status
	row.updatedAt = time.Now()
	return rowToMeal(row), nil
}

// CountMealsByStatus returns completion statistics for the plan
func (r *PlanRepository) CountMealsByStatus(ctx context.Context, planID uuid.UUID) (outbound.CompletionStats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var stats outbound.CompletionStats
	for _, row := range r.meals {
		if row.planID != planID {
			continue
		}
		stats.Total++
		if row.status == plan.MealStatusCompleted {
			stats.Completed++
		}
	}
	return stats, nil
}

// MealCount reports how many meal rows exist for a plan. Test helper.
func (r *PlanRepository) MealCount(planID uuid.UUID) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	count := 0
	for _, row := range r.meals {
		if row.planID == planID {
			count++
		}
	}
	return count
}

// PlanCount reports how many plan rows exist. Test helper.
func (r *PlanRepository) PlanCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.plans)
}

func (r *PlanRepository) reconstitute(row *planRow) *plan.Plan {
	var dayRows []*dayRow
	for _, day := range r.days {
		if day.planID == row.id {
			dayRows = append(dayRows, day)
		}
	}
	sort.Slice(dayRows, func(i, j int) bool {
		return dayRows[i].date.Before(dayRows[j].date)
	})

	days := make([]*plan.PlanDay, len(dayRows))
	for i, day := range dayRows {
		var meals []*plan.Meal
		for _, meal := range r.meals {
			if meal.planDayID == day.id {
				meals = append(meals, rowToMeal(meal))
			}
		}
		targets := make(map[plan.Slot]int, len(day.targets))
		for slot, calories := range day.targets {
			targets[slot] = calories
		}
		days[i] = plan.ReconstitutePlanDay(day.id, day.planID, day.date, targets, meals)
	}

	return plan.ReconstitutePlan(
		row.id, row.ownerID, row.state,
		row.startDate, row.endDate, row.dailyCalories,
		days, row.createdAt, row.updatedAt,
	)
}

func mealToRow(m *plan.Meal) *mealRow {
	row := &mealRow{
		id:                m.ID(),
		planID:            m.PlanID(),
		planDayID:         m.PlanDayID(),
		slot:              m.Slot(),
		status:            m.Status(),
		recipeID:          m.RecipeID(),
		portionMultiplier: m.PortionMultiplier(),
		caloriesPlanned:   m.CaloriesPlanned(),
		isLeftover:        m.IsLeftover(),
		createdAt:         m.CreatedAt(),
		updatedAt:         m.UpdatedAt(),
	}
	if g := m.GroupID(); g != nil {
		groupID := *g
		row.groupID = &groupID
	}
	if p := m.PortionsToCook(); p != nil {
		toCook := *p
		row.portionsToCook = &toCook
	}
	return row
}

func rowToMeal(row *mealRow) *plan.Meal {
	var groupID *uuid.UUID
	if row.groupID != nil {
		g := *row.groupID
		groupID = &g
	}
	var portionsToCook *int
	if row.portionsToCook != nil {
		p := *row.portionsToCook
		portionsToCook = &p
	}
	return plan.ReconstituteMeal(
		row.id, row.planID, row.planDayID,
		row.slot, row.status, row.recipeID,
		row.portionMultiplier, row.caloriesPlanned,
		row.isLeftover, groupID, portionsToCook,
		row.createdAt, row.updatedAt,
	)
}
