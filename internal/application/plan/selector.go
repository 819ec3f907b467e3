package plan

import (
	"context"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/platewise/v1/internal/domain/plan"
	"github.com/platewise/v1/internal/domain/recipe"
	"github.com/platewise/v1/internal/ports/outbound"
	"github.com/platewise/v1/pkg/errors"
)

// fallbackLevels is the escalating-tolerance ladder tried strictly in
// order: +-20% excluding used recipes, +-30% excluding used recipes, then
// +-30% allowing repeats. The first non-empty candidate set wins.
var fallbackLevels = []struct {
	tolerance    float64
	allowRepeats bool
}{
	{tolerance: 0.20, allowRepeats: false},
	{tolerance: 0.30, allowRepeats: false},
	{tolerance: 0.30, allowRepeats: true},
}

// RecipeSelector picks one recipe for a slot and calorie target, uniformly
// at random over whichever fallback level first yields candidates. The
// random source is injectable so tests can pin a seed.
type RecipeSelector struct {
	recipes outbound.RecipeRepository
	rng     *rand.Rand
}

// NewRecipeSelector creates a selector. A nil rng gets a time-seeded source.
func NewRecipeSelector(recipes outbound.RecipeRepository, rng *rand.Rand) *RecipeSelector {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &RecipeSelector{
		recipes: recipes,
		rng:     rng,
	}
}

// Select returns one eligible recipe for the slot and target, or an
// ALLOCATION_EXHAUSTED error when no fallback level yields a candidate.
// That error is fatal to the whole generation request; the selector never
// retries with different targets.
func (s *RecipeSelector) Select(ctx context.Context, slot plan.Slot, targetCalories int, used map[uuid.UUID]struct{}) (*recipe.Recipe, error) {
	for _, level := range fallbackLevels {
		minCalories := plan.RoundHalfUp(float64(targetCalories) * (1 - level.tolerance))
		maxCalories := plan.RoundHalfUp(float64(targetCalories) * (1 + level.tolerance))

		var exclude []uuid.UUID
		if !level.allowRepeats {
			exclude = make([]uuid.UUID, 0, len(used))
			for id := range used {
				exclude = append(exclude, id)
			}
		}

		candidates, err := s.recipes.FindCandidates(ctx, slot, minCalories, maxCalories, exclude)
		if err != nil {
			return nil, errors.NewDatabaseError("query recipe candidates", err)
		}
		if len(candidates) > 0 {
			return candidates[s.rng.Intn(len(candidates))], nil
		}
	}

	return nil, errors.NewAllocationExhaustedError(slot.String(), targetCalories)
}
