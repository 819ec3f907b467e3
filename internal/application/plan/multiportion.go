package plan

import (
	"github.com/platewise/v1/internal/domain/plan"
	"github.com/platewise/v1/internal/domain/recipe"
)

// MultiPortionPlanner owns the cook-once-eat-twice rule: while assembling
// day d, slot s, it decides whether the selected recipe becomes a two-day
// cook/leftover pair and applies the resulting meals to the aggregate.
type MultiPortionPlanner struct{}

// ShouldPair reports whether all pairing conditions hold: the slot is lunch
// or dinner, the recipe yields at least two portions, day d+1 exists within
// the plan, and slot s on day d+1 has not been filled by a previous pairing.
func (MultiPortionPlanner) ShouldPair(p *plan.Plan, dayIndex int, slot plan.Slot, rec *recipe.Recipe) bool {
	if !slot.SupportsLeftovers() || !rec.SupportsMultiPortion() {
		return false
	}
	next, err := p.Day(dayIndex + 1)
	if err != nil {
		return false
	}
	return !next.HasMeal(slot)
}

// Apply assigns the recipe to the day and slot, as a pair when eligible and
// as a single meal otherwise. Either way the cook-day meal carries the
// recipe's full portion count to cook.
func (mp MultiPortionPlanner) Apply(p *plan.Plan, dayIndex int, slot plan.Slot, rec *recipe.Recipe, targetCalories int) error {
	multiplier, calories := plan.ComputePortions(targetCalories, rec.CaloriesPerPortion())

	if mp.ShouldPair(p, dayIndex, slot, rec) {
		_, _, err := p.AssignMealPair(dayIndex, slot, rec.ID(), multiplier, calories, rec.Portions())
		return err
	}

	_, err := p.AssignMeal(dayIndex, slot, rec.ID(), multiplier, calories, rec.Portions())
	return err
}
