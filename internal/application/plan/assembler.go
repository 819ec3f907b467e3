package plan

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/platewise/v1/internal/domain/plan"
)

// PlanAssembler drives the day-by-slot iteration that fills a new plan's
// meal grid. It keeps the running used-recipe set for variety, skips slots
// already filled by a prior pairing, and fails the whole assembly on the
// first slot the selector cannot satisfy.
type PlanAssembler struct {
	selector *RecipeSelector
	portions MultiPortionPlanner
	logger   *zap.Logger
}

// NewPlanAssembler creates an assembler
func NewPlanAssembler(selector *RecipeSelector, logger *zap.Logger) *PlanAssembler {
	return &PlanAssembler{
		selector: selector,
		logger:   logger.Named("plan-assembler"),
	}
}

// Assemble fills every day and slot of the plan skeleton. On error the
// aggregate must be discarded; nothing has been persisted at this point.
func (a *PlanAssembler) Assemble(ctx context.Context, p *plan.Plan) error {
	used := make(map[uuid.UUID]struct{})

	for dayIndex, day := range p.Days() {
		for _, slot := range plan.Slots() {
			if day.HasMeal(slot) {
				// filled by a pairing on the previous day
				continue
			}

			rec, err := a.selector.Select(ctx, slot, day.Target(slot), used)
			if err != nil {
				a.logger.Warn("Plan assembly aborted",
					zap.String("plan_id", p.ID().String()),
					zap.Int("day", dayIndex),
					zap.String("slot", slot.String()),
					zap.Error(err),
				)
				return err
			}
			used[rec.ID()] = struct{}{}

			if err := a.portions.Apply(p, dayIndex, slot, rec, day.Target(slot)); err != nil {
				return err
			}
		}
	}

	a.logger.Debug("Plan assembled",
		zap.String("plan_id", p.ID().String()),
		zap.Int("days", p.Length()),
		zap.Int("meals", len(p.Meals())),
	)
	return nil
}
