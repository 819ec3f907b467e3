package gorm

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/platewise/v1/internal/domain/plan"
	"github.com/platewise/v1/internal/ports/outbound"
	apperrors "github.com/platewise/v1/pkg/errors"
)

// PlanRepository implements the plan repository interface using GORM
type PlanRepository struct {
	db *gorm.DB
}

// NewPlanRepository creates a new plan repository
func NewPlanRepository(db *gorm.DB) outbound.PlanRepository {
	return &PlanRepository{db: db}
}

// CreatePlan persists the whole aggregate in one transaction. The locked
// re-check catches an existing active plan early; the authoritative guard
// against two concurrent inserts is the partial unique index on
// (owner_id) WHERE state = 'active', whose violation maps to the
// ACTIVE_PLAN_EXISTS conflict.
func (r *PlanRepository) CreatePlan(ctx context.Context, p *plan.Plan) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing []PlanModel
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("owner_id = ? AND state = ?", p.OwnerID(), plan.StateActive.String()).
			Find(&existing).Error
		if err != nil {
			return err
		}
		if len(existing) > 0 {
			return apperrors.NewActivePlanExistsError(p.OwnerID().String())
		}

		if err := tx.Create(PlanToModel(p)).Error; err != nil {
			return translatePlanCreateError(p.OwnerID(), err)
		}
		return nil
	})
}

// translatePlanCreateError maps a unique violation on the active-plan
// index to the domain conflict. Requires TranslateError on the gorm
// connection so driver-specific violations surface as ErrDuplicatedKey.
func translatePlanCreateError(ownerID uuid.UUID, err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperrors.NewActivePlanExistsError(ownerID.String())
	}
	return err
}

// FindByID loads a plan aggregate with its days, targets and meals.
// Returns (nil, nil) when the plan does not exist.
func (r *PlanRepository) FindByID(ctx context.Context, id uuid.UUID) (*plan.Plan, error) {
	var model PlanModel
	err := r.db.WithContext(ctx).
		Preload("Days.SlotTargets").
		Preload("Days.Meals").
		First(&model, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return ModelToPlan(&model), nil
}

// FindActiveByOwner returns the owner's active plan or (nil, nil)
func (r *PlanRepository) FindActiveByOwner(ctx context.Context, ownerID uuid.UUID) (*plan.Plan, error) {
	var model PlanModel
	err := r.db.WithContext(ctx).
		Preload("Days.SlotTargets").
		Preload("Days.Meals").
		First(&model, "owner_id = ? AND state = ?", ownerID, plan.StateActive.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return ModelToPlan(&model), nil
}

// UpdateState persists a lifecycle transition
func (r *PlanRepository) UpdateState(ctx context.Context, planID uuid.UUID, state plan.State) error {
	result := r.db.WithContext(ctx).
		Model(&PlanModel{}).
		Where("id = ?", planID).
		Updates(map[string]interface{}{
			"state":      state.String(),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.NewPlanNotFoundError(planID.String())
	}
	return nil
}

// FindMealByID returns a meal or (nil, nil)
func (r *PlanRepository) FindMealByID(ctx context.Context, id uuid.UUID) (*plan.Meal, error) {
	var model MealModel
	err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return ModelToMeal(&model), nil
}

// FindGroupMembers returns both members of a multi-portion group,
// cook day first
func (r *PlanRepository) FindGroupMembers(ctx context.Context, groupID uuid.UUID) ([]*plan.Meal, error) {
	var models []MealModel
	err := r.db.WithContext(ctx).
		Where("multi_portion_group_id = ?", groupID).
		Order("is_leftover asc").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	meals := make([]*plan.Meal, len(models))
	for i := range models {
		meals[i] = ModelToMeal(&models[i])
	}
	return meals, nil
}

// GetSlotTarget returns the persisted calorie target for one day and slot
func (r *PlanRepository) GetSlotTarget(ctx context.Context, planDayID uuid.UUID, slot plan.Slot) (int, error) {
	var model SlotTargetModel
	err := r.db.WithContext(ctx).
		First(&model, "plan_day_id = ? AND slot = ?", planDayID, slot.String()).Error
	if err != nil {
		return 0, err
	}
	return model.CaloriesTarget, nil
}

// UpdateMeals applies the change to every id in one transaction. The rows
// are locked first (FOR UPDATE) so concurrent swaps of the same group
// serialize; a reader never observes one member updated and the other stale.
func (r *PlanRepository) UpdateMeals(ctx context.Context, ids []uuid.UUID, change outbound.MealChange) ([]*plan.Meal, error) {
	var updated []*plan.Meal

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var models []MealModel
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id IN ?", ids).
			Find(&models).Error
		if err != nil {
			return err
		}
		if len(models) != len(ids) {
			return apperrors.NewMealNotFoundError("one or more swap members")
		}

		now := time.Now()
		for i := range models {
			m := &models[i]
			m.RecipeID = change.RecipeID
			m.PortionMultiplier = change.PortionMultiplier
			m.CaloriesPlanned = change.CaloriesPlanned
			if !m.IsLeftover {
				toCook := change.PortionsToCook
				m.PortionsToCook = &toCook
			}
			m.UpdatedAt = now
			if err := tx.Save(m).Error; err != nil {
				return err
			}
		}

		updated = make([]*plan.Meal, len(models))
		for i := range models {
			updated[i] = ModelToMeal(&models[i])
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// UpdateMealStatus persists a status toggle
func (r *PlanRepository) UpdateMealStatus(ctx context.Context, mealID uuid.UUID, status plan.MealStatus) (*plan.Meal, error) {
	var model MealModel

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&model, "id = ?", mealID).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NewMealNotFoundError(mealID.String())
			}
			return err
		}
		model.Status = status.String()
		model.UpdatedAt = time.Now()
		return tx.Save(&model).Error
	})
	if err != nil {
		return nil, err
	}
	return ModelToMeal(&model), nil
}

// CountMealsByStatus returns completion statistics for the archival gate
func (r *PlanRepository) CountMealsByStatus(ctx context.Context, planID uuid.UUID) (outbound.CompletionStats, error) {
	var stats outbound.CompletionStats
	var total, completed int64

	err := r.db.WithContext(ctx).
		Model(&MealModel{}).
		Where("plan_id = ?", planID).
		Count(&total).Error
	if err != nil {
		return stats, err
	}

	err = r.db.WithContext(ctx).
		Model(&MealModel{}).
		Where("plan_id = ? AND status = ?", planID, plan.MealStatusCompleted.String()).
		Count(&completed).Error
	if err != nil {
		return stats, err
	}

	stats.Total = int(total)
	stats.Completed = int(completed)
	return stats, nil
}
