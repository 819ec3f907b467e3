package testutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platewise/v1/internal/domain/plan"
)

// PlanAssertions bundles invariant checks shared across test packages
type PlanAssertions struct {
	t *testing.T
}

// NewPlanAssertions creates assertion helpers bound to the test
func NewPlanAssertions(t *testing.T) *PlanAssertions {
	return &PlanAssertions{t: t}
}

// AssertGridComplete verifies that every day has exactly one meal per slot
func (a *PlanAssertions) AssertGridComplete(p *plan.Plan) {
	for _, day := range p.Days() {
		require.Len(a.t, day.Meals(), 4, "day %s should have 4 meals", day.Date())
		for _, slot := range plan.Slots() {
			assert.True(a.t, day.HasMeal(slot), "day %s missing slot %s", day.Date(), slot)
		}
	}
}

// AssertGroupInvariants verifies every multi-portion group: exactly two
// members on consecutive days, same slot, identical multiplier and
// calories, and exactly one member carrying portions to cook
func (a *PlanAssertions) AssertGroupInvariants(p *plan.Plan) {
	groups := make(map[string][]*plan.Meal)
	dayDates := make(map[string]int) // day id -> index
	for i, day := range p.Days() {
		dayDates[day.ID().String()] = i
	}

	for _, meal := range p.Meals() {
		if g := meal.GroupID(); g != nil {
			groups[g.String()] = append(groups[g.String()], meal)
		}
	}

	for groupID, members := range groups {
		require.Len(a.t, members, 2, "group %s must have exactly 2 members", groupID)

		first, second := members[0], members[1]
		if first.IsLeftover() {
			first, second = second, first
		}

		assert.False(a.t, first.IsLeftover(), "group %s needs a cook-day member", groupID)
		assert.True(a.t, second.IsLeftover(), "group %s needs a leftover member", groupID)
		assert.Equal(a.t, first.Slot(), second.Slot(), "group %s spans slots", groupID)
		assert.Equal(a.t, first.PortionMultiplier(), second.PortionMultiplier())
		assert.Equal(a.t, first.CaloriesPlanned(), second.CaloriesPlanned())
		assert.Equal(a.t, first.RecipeID(), second.RecipeID())
		require.NotNil(a.t, first.PortionsToCook(), "cook-day member must have portions to cook")
		assert.Nil(a.t, second.PortionsToCook(), "leftover member must not have portions to cook")

		cookIndex := dayDates[first.PlanDayID().String()]
		leftoverIndex := dayDates[second.PlanDayID().String()]
		assert.Equal(a.t, cookIndex+1, leftoverIndex, "group %s must span consecutive days", groupID)
	}
}
