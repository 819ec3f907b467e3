// Package recipe contains the read-only recipe catalog projection used by
// plan generation and swaps. The catalog itself is populated by an external
// ingestion pipeline; this core only reads it.
package recipe

import (
	"time"

	"github.com/google/uuid"

	"github.com/platewise/v1/internal/domain/plan"
)

// Recipe is a catalog entry as seen by the plan core: calories, servings
// and slot eligibility. Nothing here is ever mutated by this module.
type Recipe struct {
	id                 uuid.UUID
	name               string
	caloriesPerPortion int
	portions           int
	eligibleSlots      []plan.Slot
	active             bool
	createdAt          time.Time
}

// NewRecipe creates a catalog entry with validation. Used by fixtures and
// adapters that seed the catalog; production entries arrive via ingestion.
func NewRecipe(name string, caloriesPerPortion, portions int, eligibleSlots []plan.Slot) (*Recipe, error) {
	if name == "" {
		return nil, ErrNameRequired
	}
	if caloriesPerPortion <= 0 {
		return nil, ErrInvalidCalories
	}
	if portions <= 0 {
		return nil, ErrInvalidPortions
	}
	if len(eligibleSlots) == 0 {
		return nil, ErrNoEligibleSlots
	}
	for _, slot := range eligibleSlots {
		if !slot.IsValid() {
			return nil, ErrInvalidSlot
		}
	}

	return &Recipe{
		id:                 uuid.New(),
		name:               name,
		caloriesPerPortion: caloriesPerPortion,
		portions:           portions,
		eligibleSlots:      eligibleSlots,
		active:             true,
		createdAt:          time.Now(),
	}, nil
}

// ID returns the recipe's unique identifier
func (r *Recipe) ID() uuid.UUID {
	return r.id
}

// Name returns the recipe's display name
func (r *Recipe) Name() string {
	return r.name
}

// CaloriesPerPortion returns calories for a single serving
func (r *Recipe) CaloriesPerPortion() int {
	return r.caloriesPerPortion
}

// Portions returns the maximum number of servings the recipe yields
func (r *Recipe) Portions() int {
	return r.portions
}

// EligibleSlots returns the slots the recipe may be assigned to
func (r *Recipe) EligibleSlots() []plan.Slot {
	return r.eligibleSlots
}

// IsActive reports whether the recipe is available for assignment
func (r *Recipe) IsActive() bool {
	return r.active
}

// CreatedAt returns when the catalog entry was created
func (r *Recipe) CreatedAt() time.Time {
	return r.createdAt
}

// EligibleFor reports whether the recipe may be assigned to a slot
func (r *Recipe) EligibleFor(slot plan.Slot) bool {
	for _, s := range r.eligibleSlots {
		if s == slot {
			return true
		}
	}
	return false
}

// SupportsMultiPortion reports whether the recipe can feed a two-day pair
func (r *Recipe) SupportsMultiPortion() bool {
	return r.portions >= 2
}

// ReconstituteRecipe rebuilds a catalog entry from persisted state.
// Intended for repository adapters only.
func ReconstituteRecipe(
	id uuid.UUID,
	name string,
	caloriesPerPortion, portions int,
	eligibleSlots []plan.Slot,
	active bool,
	createdAt time.Time,
) *Recipe {
	return &Recipe{
		id:                 id,
		name:               name,
		caloriesPerPortion: caloriesPerPortion,
		portions:           portions,
		eligibleSlots:      eligibleSlots,
		active:             active,
		createdAt:          createdAt,
	}
}
