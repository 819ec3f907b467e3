package plan

import (
	"context"
	"math/rand"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platewise/v1/internal/domain/plan"
	"github.com/platewise/v1/internal/domain/recipe"
	"github.com/platewise/v1/internal/infrastructure/persistence/memory"
	"github.com/platewise/v1/pkg/errors"
	"github.com/platewise/v1/test/testutils"
)

func newSelector(seed int64, recipes ...*recipe.Recipe) *RecipeSelector {
	repo := memory.NewRecipeRepository()
	repo.Add(recipes...)
	return NewRecipeSelector(repo, rand.New(rand.NewSource(seed)))
}

func TestRecipeSelector_Select(t *testing.T) {
	ctx := context.Background()
	factory := testutils.NewRecipeFactory(7)

	t.Run("picks from the tight band first", func(t *testing.T) {
		// target 700, first band [560, 840]
		inBand := []*recipe.Recipe{
			factory.Recipe(600, 1, plan.SlotLunch),
			factory.Recipe(700, 1, plan.SlotLunch),
			factory.Recipe(800, 1, plan.SlotLunch),
		}
		outOfBand := factory.Recipe(520, 1, plan.SlotLunch)
		selector := newSelector(1, append(inBand, outOfBand)...)

		for i := 0; i < 20; i++ {
			rec, err := selector.Select(ctx, plan.SlotLunch, 700, nil)
			require.NoError(t, err)
			assert.Contains(t, []uuid.UUID{inBand[0].ID(), inBand[1].ID(), inBand[2].ID()}, rec.ID())
		}
	})

	t.Run("excludes already used recipes", func(t *testing.T) {
		a := factory.Recipe(650, 1, plan.SlotLunch)
		b := factory.Recipe(720, 1, plan.SlotLunch)
		selector := newSelector(1, a, b)

		used := map[uuid.UUID]struct{}{a.ID(): {}}
		rec, err := selector.Select(ctx, plan.SlotLunch, 700, used)
		require.NoError(t, err)
		assert.Equal(t, b.ID(), rec.ID())
	})

	t.Run("widens to thirty percent when the tight band is empty", func(t *testing.T) {
		// 520 misses [560, 840] but sits inside [490, 910]
		wide := factory.Recipe(520, 1, plan.SlotLunch)
		selector := newSelector(1, wide)

		rec, err := selector.Select(ctx, plan.SlotLunch, 700, nil)
		require.NoError(t, err)
		assert.Equal(t, wide.ID(), rec.ID())
	})

	t.Run("allows repeats as the final fallback", func(t *testing.T) {
		only := factory.Recipe(700, 1, plan.SlotLunch)
		selector := newSelector(1, only)

		used := map[uuid.UUID]struct{}{only.ID(): {}}
		rec, err := selector.Select(ctx, plan.SlotLunch, 700, used)
		require.NoError(t, err)
		assert.Equal(t, only.ID(), rec.ID())
	})

	t.Run("ignores recipes for other slots", func(t *testing.T) {
		dinnerOnly := factory.Recipe(700, 1, plan.SlotDinner)
		selector := newSelector(1, dinnerOnly)

		_, err := selector.Select(ctx, plan.SlotLunch, 700, nil)
		assert.Equal(t, errors.CodeAllocationExhausted, errors.GetCode(err))
	})

	t.Run("exhausted when every band is empty", func(t *testing.T) {
		// 300 misses even the +-30% band around 700
		farOff := factory.Recipe(300, 1, plan.SlotLunch)
		selector := newSelector(1, farOff)

		rec, err := selector.Select(ctx, plan.SlotLunch, 700, nil)
		assert.Nil(t, rec)
		assert.Equal(t, errors.CodeAllocationExhausted, errors.GetCode(err))
	})

	t.Run("exhausted on an empty catalog", func(t *testing.T) {
		selector := newSelector(1)

		_, err := selector.Select(ctx, plan.SlotSnack, 100, nil)
		assert.Equal(t, errors.CodeAllocationExhausted, errors.GetCode(err))
	})
}

func TestRecipeSelector_SeededRunsAreReproducible(t *testing.T) {
	factory := testutils.NewRecipeFactory(7)
	catalog := []*recipe.Recipe{
		factory.Recipe(600, 1, plan.SlotLunch),
		factory.Recipe(680, 1, plan.SlotLunch),
		factory.Recipe(760, 1, plan.SlotLunch),
	}

	first := newSelector(99, catalog...)
	second := newSelector(99, catalog...)

	for i := 0; i < 10; i++ {
		a, err := first.Select(context.Background(), plan.SlotLunch, 700, nil)
		require.NoError(t, err)
		b, err := second.Select(context.Background(), plan.SlotLunch, 700, nil)
		require.NoError(t, err)
		assert.Equal(t, a.ID(), b.ID())
	}
}
