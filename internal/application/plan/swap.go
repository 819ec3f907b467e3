package plan

import (
	"fmt"

	"github.com/platewise/v1/internal/domain/plan"
	"github.com/platewise/v1/internal/domain/recipe"
	"github.com/platewise/v1/pkg/errors"
)

// swapTolerance is the fixed calorie tolerance for swaps. Unlike generation
// it never escalates.
const swapTolerance = 0.20

// SwapValidator checks a proposed recipe substitution against the meal's
// slot and its day's slot target. Checks run in order and short-circuit on
// the first failure; no mutation occurs here.
type SwapValidator struct{}

// Validate returns the recomputed portion multiplier and planned calories
// for the candidate, or a reason-coded SWAP_REJECTED error.
func (SwapValidator) Validate(meal *plan.Meal, targetCalories int, candidate *recipe.Recipe) (multiplier, calories int, err error) {
	if !candidate.EligibleFor(meal.Slot()) {
		return 0, 0, errors.NewSwapRejectedError(
			errors.SwapReasonSlotMismatch,
			fmt.Sprintf("recipe %s is not eligible for slot %s", candidate.ID(), meal.Slot()),
		)
	}

	multiplier, calories = plan.ComputePortions(targetCalories, candidate.CaloriesPerPortion())
	if multiplier > candidate.Portions() {
		return 0, 0, errors.NewSwapRejectedError(
			errors.SwapReasonPortionExceeded,
			fmt.Sprintf("required multiplier %d exceeds the recipe's %d portions", multiplier, candidate.Portions()),
		)
	}

	lower := float64(targetCalories) * (1 - swapTolerance)
	upper := float64(targetCalories) * (1 + swapTolerance)
	if float64(calories) < lower || float64(calories) > upper {
		return 0, 0, errors.NewSwapRejectedError(
			errors.SwapReasonCalorieOutOfRange,
			fmt.Sprintf("planned %d kcal is outside +-20%% of the %d kcal target", calories, targetCalories),
		)
	}

	return multiplier, calories, nil
}
