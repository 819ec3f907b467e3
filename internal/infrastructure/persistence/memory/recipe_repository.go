// Package memory provides in-memory repository implementations.
// They back unit tests and local runs; the GORM adapters are the
// production path.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/platewise/v1/internal/domain/plan"
	"github.com/platewise/v1/internal/domain/recipe"
)

// RecipeRepository implements the recipe catalog in memory
type RecipeRepository struct {
	mu      sync.RWMutex
	recipes map[uuid.UUID]*recipe.Recipe
}

// NewRecipeRepository creates an empty in-memory catalog
func NewRecipeRepository() *RecipeRepository {
	return &RecipeRepository{
		recipes: make(map[uuid.UUID]*recipe.Recipe),
	}
}

// Add seeds catalog entries
func (r *RecipeRepository) Add(recipes ...*recipe.Recipe) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rec := range recipes {
		r.recipes[rec.ID()] = rec
	}
}

// FindByID returns a recipe or (nil, nil) when absent
func (r *RecipeRepository) FindByID(ctx context.Context, id uuid.UUID) (*recipe.Recipe, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.recipes[id], nil
}

// FindCandidates returns active, slot-eligible recipes whose calories per
// portion lie within [minCalories, maxCalories], excluding the given ids.
// Results are ordered by id for determinism.
func (r *RecipeRepository) FindCandidates(ctx context.Context, slot plan.Slot, minCalories, maxCalories int, exclude []uuid.UUID) ([]*recipe.Recipe, error) {
	excluded := make(map[uuid.UUID]struct{}, len(exclude))
	for _, id := range exclude {
		excluded[id] = struct{}{}
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var candidates []*recipe.Recipe
	for _, rec := range r.recipes {
		if !rec.IsActive() || !rec.EligibleFor(slot) {
			continue
		}
		if rec.CaloriesPerPortion() < minCalories || rec.CaloriesPerPortion() > maxCalories {
			continue
		}
		if _, ok := excluded[rec.ID()]; ok {
			continue
		}
		candidates = append(candidates, rec)
	}

	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].ID().String() < candidates[j].ID().String()
	})
	return candidates, nil
}
