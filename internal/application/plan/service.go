// Package plan provides the application layer for meal-plan management.
// This implements the use cases defined in the inbound ports.
package plan

import (
	"context"
	stderrors "errors"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/platewise/v1/internal/domain/plan"
	"github.com/platewise/v1/internal/ports/inbound"
	"github.com/platewise/v1/internal/ports/outbound"
	"github.com/platewise/v1/pkg/errors"
)

// PlanService implements the plan use cases
type PlanService struct {
	planRepo   outbound.PlanRepository
	recipeRepo outbound.RecipeRepository
	assembler  *PlanAssembler
	swapRules  SwapValidator
	validate   *validator.Validate
	logger     *zap.Logger
}

// NewPlanService creates a new plan service
func NewPlanService(
	planRepo outbound.PlanRepository,
	recipeRepo outbound.RecipeRepository,
	assembler *PlanAssembler,
	logger *zap.Logger,
) inbound.PlanService {
	return &PlanService{
		planRepo:   planRepo,
		recipeRepo: recipeRepo,
		assembler:  assembler,
		validate:   validator.New(validator.WithRequiredStructEnabled()),
		logger:     logger.Named("plan-service"),
	}
}

// CreatePlan generates and persists a complete plan for the owner.
// The owner must not already have an active plan; the whole grid is
// persisted atomically or not at all.
func (s *PlanService) CreatePlan(ctx context.Context, cmd inbound.CreatePlanCommand) (*inbound.PlanDTO, error) {
	s.logger.Info("Generating meal plan",
		zap.String("owner_id", cmd.OwnerID.String()),
		zap.Int("daily_calories", cmd.DailyCalories),
		zap.Int("length_days", cmd.PlanLengthDays),
	)

	if err := s.validate.Struct(cmd); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	// Early conflict check for a friendly error; the repository re-validates
	// the invariant inside the same transaction as the insert.
	existing, err := s.planRepo.FindActiveByOwner(ctx, cmd.OwnerID)
	if err != nil {
		return nil, errors.NewDatabaseError("find active plan", err)
	}
	if existing != nil {
		return nil, errors.NewActivePlanExistsError(cmd.OwnerID.String())
	}

	p, err := plan.NewPlan(cmd.OwnerID, cmd.DailyCalories, cmd.PlanLengthDays, cmd.StartDate)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.assembler.Assemble(ctx, p); err != nil {
		return nil, err
	}

	if err := s.planRepo.CreatePlan(ctx, p); err != nil {
		if appErr, ok := err.(*errors.AppError); ok {
			return nil, appErr
		}
		return nil, errors.NewDatabaseError("persist plan", err)
	}

	s.drainEvents(p)
	s.logger.Info("Meal plan generated",
		zap.String("plan_id", p.ID().String()),
		zap.Int("meals", len(p.Meals())),
	)

	return planToDTO(p), nil
}

// UpdatePlanState applies a lifecycle transition. Archival is gated on the
// completed-meal fraction; cancellation is always allowed from active.
func (s *PlanService) UpdatePlanState(ctx context.Context, cmd inbound.UpdatePlanStateCommand) (*inbound.PlanDTO, error) {
	if err := s.validate.Struct(cmd); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	p, err := s.loadOwnedPlan(ctx, cmd.PlanID, cmd.OwnerID)
	if err != nil {
		return nil, err
	}

	switch cmd.State() {
	case plan.StateArchived:
		stats, err := s.planRepo.CountMealsByStatus(ctx, p.ID())
		if err != nil {
			return nil, errors.NewDatabaseError("count meals by status", err)
		}
		if err := p.Archive(stats.Fraction()); err != nil {
			if stderrors.Is(err, plan.ErrArchivalThresholdNotMet) {
				return nil, errors.NewArchivalThresholdError(stats.Fraction())
			}
			return nil, invalidTransition(p.State(), cmd.State())
		}
	case plan.StateCancelled:
		if err := p.Cancel(); err != nil {
			return nil, invalidTransition(p.State(), cmd.State())
		}
	default:
		return nil, invalidTransition(p.State(), cmd.State())
	}

	if err := s.planRepo.UpdateState(ctx, p.ID(), p.State()); err != nil {
		return nil, errors.NewDatabaseError("update plan state", err)
	}

	s.drainEvents(p)
	s.logger.Info("Plan state changed",
		zap.String("plan_id", p.ID().String()),
		zap.String("state", p.State().String()),
	)

	return planToDTO(p), nil
}

// SwapMeal substitutes the recipe of one meal, or of its whole multi-portion
// pair, after validating slot compatibility, the portion bound and the
// calorie tolerance. Grouped updates are atomic across both members.
func (s *PlanService) SwapMeal(ctx context.Context, cmd inbound.SwapMealCommand) ([]inbound.MealDTO, error) {
	if err := s.validate.Struct(cmd); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	meal, p, err := s.loadOwnedMeal(ctx, cmd.MealID, cmd.OwnerID)
	if err != nil {
		return nil, err
	}
	if p.State() != plan.StateActive {
		return nil, errors.NewConflictError("meals can only be swapped on an active plan")
	}

	candidate, err := s.recipeRepo.FindByID(ctx, cmd.NewRecipeID)
	if err != nil {
		return nil, errors.NewDatabaseError("find recipe", err)
	}
	if candidate == nil {
		return nil, errors.NewRecipeNotFoundError(cmd.NewRecipeID.String())
	}

	target, err := s.planRepo.GetSlotTarget(ctx, meal.PlanDayID(), meal.Slot())
	if err != nil {
		return nil, errors.NewDatabaseError("get slot target", err)
	}

	multiplier, calories, err := s.swapRules.Validate(meal, target, candidate)
	if err != nil {
		return nil, err
	}

	ids := []uuid.UUID{meal.ID()}
	if meal.IsGrouped() {
		members, err := s.planRepo.FindGroupMembers(ctx, *meal.GroupID())
		if err != nil {
			return nil, errors.NewDatabaseError("find group members", err)
		}
		ids = ids[:0]
		for _, member := range members {
			ids = append(ids, member.ID())
		}
	}

	updated, err := s.planRepo.UpdateMeals(ctx, ids, outbound.MealChange{
		RecipeID:          candidate.ID(),
		PortionMultiplier: multiplier,
		CaloriesPlanned:   calories,
		PortionsToCook:    candidate.Portions(),
	})
	if err != nil {
		return nil, errors.NewDatabaseError("update meals", err)
	}

	p.RecordMealSwap(ids, meal.RecipeID(), candidate.ID())
	s.drainEvents(p)
	s.logger.Info("Meal swapped",
		zap.String("meal_id", meal.ID().String()),
		zap.String("recipe_id", candidate.ID().String()),
		zap.Int("meals_updated", len(updated)),
	)

	dtos := make([]inbound.MealDTO, len(updated))
	for i, m := range updated {
		dtos[i] = mealToDTO(m)
	}
	return dtos, nil
}

// UpdateMealStatus applies a planned/completed/skipped toggle to one meal
func (s *PlanService) UpdateMealStatus(ctx context.Context, cmd inbound.UpdateMealStatusCommand) (*inbound.MealDTO, error) {
	if err := s.validate.Struct(cmd); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	meal, p, err := s.loadOwnedMeal(ctx, cmd.MealID, cmd.OwnerID)
	if err != nil {
		return nil, err
	}
	if p.State() != plan.StateActive {
		return nil, errors.NewConflictError("meal status can only change on an active plan")
	}

	oldStatus := meal.Status()
	if err := meal.UpdateStatus(cmd.Status()); err != nil {
		return nil, errors.NewAppError(
			errors.CodeInvalidStatusTransition,
			"Invalid meal status transition",
			err.Error(),
		)
	}

	updated, err := s.planRepo.UpdateMealStatus(ctx, meal.ID(), meal.Status())
	if err != nil {
		return nil, errors.NewDatabaseError("update meal status", err)
	}

	p.RecordMealStatusChange(meal.ID(), oldStatus, meal.Status())
	s.drainEvents(p)

	dto := mealToDTO(updated)
	return &dto, nil
}

// GetPlan returns the full plan grid for its owner
func (s *PlanService) GetPlan(ctx context.Context, planID, ownerID uuid.UUID) (*inbound.PlanDTO, error) {
	p, err := s.loadOwnedPlan(ctx, planID, ownerID)
	if err != nil {
		return nil, err
	}
	return planToDTO(p), nil
}

// PlanProgress returns completion statistics for the plan
func (s *PlanService) PlanProgress(ctx context.Context, planID, ownerID uuid.UUID) (*inbound.PlanProgressDTO, error) {
	p, err := s.loadOwnedPlan(ctx, planID, ownerID)
	if err != nil {
		return nil, err
	}

	stats, err := s.planRepo.CountMealsByStatus(ctx, p.ID())
	if err != nil {
		return nil, errors.NewDatabaseError("count meals by status", err)
	}

	return &inbound.PlanProgressDTO{
		PlanID:            p.ID(),
		TotalMeals:        stats.Total,
		CompletedMeals:    stats.Completed,
		CompletedFraction: stats.Fraction(),
	}, nil
}

func (s *PlanService) loadOwnedPlan(ctx context.Context, planID, ownerID uuid.UUID) (*plan.Plan, error) {
	p, err := s.planRepo.FindByID(ctx, planID)
	if err != nil {
		return nil, errors.NewDatabaseError("find plan", err)
	}
	if p == nil {
		return nil, errors.NewPlanNotFoundError(planID.String())
	}
	if p.OwnerID() != ownerID {
		return nil, errors.NewForbiddenError("plan belongs to another owner")
	}
	return p, nil
}

func (s *PlanService) loadOwnedMeal(ctx context.Context, mealID, ownerID uuid.UUID) (*plan.Meal, *plan.Plan, error) {
	meal, err := s.planRepo.FindMealByID(ctx, mealID)
	if err != nil {
		return nil, nil, errors.NewDatabaseError("find meal", err)
	}
	if meal == nil {
		return nil, nil, errors.NewMealNotFoundError(mealID.String())
	}

	p, err := s.planRepo.FindByID(ctx, meal.PlanID())
	if err != nil {
		return nil, nil, errors.NewDatabaseError("find plan", err)
	}
	if p == nil {
		return nil, nil, errors.NewPlanNotFoundError(meal.PlanID().String())
	}
	if p.OwnerID() != ownerID {
		return nil, nil, errors.NewForbiddenError("meal belongs to another owner")
	}
	return meal, p, nil
}

// drainEvents empties pending domain events. No message bus is wired in
// this core; the surrounding shell dispatches from the same hook.
func (s *PlanService) drainEvents(p *plan.Plan) {
	for _, event := range p.Events() {
		s.logger.Debug("Domain event",
			zap.String("event", event.EventName()),
			zap.Time("occurred_at", event.OccurredAt()),
		)
	}
}

func invalidTransition(from plan.State, to plan.State) *errors.AppError {
	return errors.NewAppError(
		errors.CodeInvalidStateTransition,
		"Invalid plan state transition",
		string(from)+" -> "+string(to),
	)
}
