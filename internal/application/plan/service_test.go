package plan

import (
	"context"
	stderrors "errors"
	"math/rand"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/platewise/v1/internal/domain/plan"
	"github.com/platewise/v1/internal/infrastructure/persistence/memory"
	"github.com/platewise/v1/internal/ports/inbound"
	"github.com/platewise/v1/pkg/errors"
	"github.com/platewise/v1/test/testutils"
)

type PlanServiceTestSuite struct {
	suite.Suite
	ctx        context.Context
	planRepo   *memory.PlanRepository
	recipeRepo *memory.RecipeRepository
	service    inbound.PlanService
	factory    *testutils.RecipeFactory
	ownerID    uuid.UUID
}

func (s *PlanServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.planRepo = memory.NewPlanRepository()
	s.recipeRepo = memory.NewRecipeRepository()
	selector := NewRecipeSelector(s.recipeRepo, rand.New(rand.NewSource(42)))
	assembler := NewPlanAssembler(selector, zap.NewNop())
	s.service = NewPlanService(s.planRepo, s.recipeRepo, assembler, zap.NewNop())
	s.factory = testutils.NewRecipeFactory(42)
	s.ownerID = uuid.New()
}

func (s *PlanServiceTestSuite) seedCatalog(dailyCalories, perSlot int) {
	s.recipeRepo.Add(s.factory.CatalogFor(plan.DistributeCalories(dailyCalories), perSlot)...)
}

func (s *PlanServiceTestSuite) createPlan(lengthDays int) *inbound.PlanDTO {
	dto, err := s.service.CreatePlan(s.ctx, inbound.CreatePlanCommand{
		OwnerID:        s.ownerID,
		DailyCalories:  2000,
		PlanLengthDays: lengthDays,
		StartDate:      testutils.Tomorrow(),
	})
	s.Require().NoError(err)
	return dto
}

func (s *PlanServiceTestSuite) allMeals(dto *inbound.PlanDTO) []inbound.MealDTO {
	var meals []inbound.MealDTO
	for _, day := range dto.Days {
		meals = append(meals, day.Meals...)
	}
	return meals
}

func (s *PlanServiceTestSuite) completeMeal(mealID uuid.UUID) {
	_, err := s.service.UpdateMealStatus(s.ctx, inbound.UpdateMealStatusCommand{
		MealID:    mealID,
		OwnerID:   s.ownerID,
		NewStatus: "completed",
	})
	s.Require().NoError(err)
}

func (s *PlanServiceTestSuite) TestCreatePlan_Success() {
	s.seedCatalog(2000, 8)

	dto := s.createPlan(7)

	s.Equal(s.ownerID, dto.OwnerID)
	s.Equal("active", dto.State)
	s.Equal(2000, dto.DailyCalories)
	s.Require().Len(dto.Days, 7)
	for _, day := range dto.Days {
		s.Len(day.Meals, 4)
		s.Equal(700, day.Targets["lunch"])
	}
	s.Len(s.allMeals(dto), 28)

	s.Equal(1, s.planRepo.PlanCount())
	s.Equal(28, s.planRepo.MealCount(dto.ID))
}

func (s *PlanServiceTestSuite) TestCreatePlan_ValidationFailures() {
	s.seedCatalog(2000, 4)

	tests := []struct {
		name string
		cmd  inbound.CreatePlanCommand
	}{
		{"calories too low", inbound.CreatePlanCommand{OwnerID: s.ownerID, DailyCalories: 500, PlanLengthDays: 7, StartDate: testutils.Tomorrow()}},
		{"calories too high", inbound.CreatePlanCommand{OwnerID: s.ownerID, DailyCalories: 6500, PlanLengthDays: 7, StartDate: testutils.Tomorrow()}},
		{"zero length", inbound.CreatePlanCommand{OwnerID: s.ownerID, DailyCalories: 2000, PlanLengthDays: 0, StartDate: testutils.Tomorrow()}},
		{"missing start date", inbound.CreatePlanCommand{OwnerID: s.ownerID, DailyCalories: 2000, PlanLengthDays: 7}},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			dto, err := s.service.CreatePlan(s.ctx, tt.cmd)
			s.Nil(dto)
			s.Equal(errors.CodeValidationFailed, errors.GetCode(err))
		})
	}
	s.Equal(0, s.planRepo.PlanCount())
}

func (s *PlanServiceTestSuite) TestCreatePlan_SecondActivePlanConflicts() {
	s.seedCatalog(2000, 8)
	s.createPlan(3)

	dto, err := s.service.CreatePlan(s.ctx, inbound.CreatePlanCommand{
		OwnerID:        s.ownerID,
		DailyCalories:  1800,
		PlanLengthDays: 5,
		StartDate:      testutils.Tomorrow(),
	})
	s.Nil(dto)
	s.Equal(errors.CodeActivePlanExists, errors.GetCode(err))
	s.Equal(1, s.planRepo.PlanCount())
}

func (s *PlanServiceTestSuite) TestCreatePlan_OtherOwnersUnaffected() {
	s.seedCatalog(2000, 8)
	s.createPlan(3)

	dto, err := s.service.CreatePlan(s.ctx, inbound.CreatePlanCommand{
		OwnerID:        uuid.New(),
		DailyCalories:  2000,
		PlanLengthDays: 3,
		StartDate:      testutils.Tomorrow(),
	})
	s.Require().NoError(err)
	s.NotNil(dto)
	s.Equal(2, s.planRepo.PlanCount())
}

func (s *PlanServiceTestSuite) TestCreatePlan_AllowedAfterCancellation() {
	s.seedCatalog(2000, 8)
	first := s.createPlan(3)

	_, err := s.service.UpdatePlanState(s.ctx, inbound.UpdatePlanStateCommand{
		PlanID:   first.ID,
		OwnerID:  s.ownerID,
		NewState: "cancelled",
	})
	s.Require().NoError(err)

	second := s.createPlan(3)
	s.NotEqual(first.ID, second.ID)
	s.Equal(2, s.planRepo.PlanCount())
}

func (s *PlanServiceTestSuite) TestCreatePlan_ExhaustionPersistsNothing() {
	// no dinner recipes at all
	targets := plan.DistributeCalories(2000)
	delete(targets, plan.SlotDinner)
	s.recipeRepo.Add(s.factory.CatalogFor(targets, 4)...)

	dto, err := s.service.CreatePlan(s.ctx, inbound.CreatePlanCommand{
		OwnerID:        s.ownerID,
		DailyCalories:  2000,
		PlanLengthDays: 7,
		StartDate:      testutils.Tomorrow(),
	})
	s.Nil(dto)
	s.Equal(errors.CodeAllocationExhausted, errors.GetCode(err))
	s.Equal(0, s.planRepo.PlanCount())
}

func (s *PlanServiceTestSuite) TestCreatePlan_StorageFailurePersistsNothing() {
	s.seedCatalog(2000, 8)
	s.planRepo.FailCreate = stderrors.New("connection reset")

	dto, err := s.service.CreatePlan(s.ctx, inbound.CreatePlanCommand{
		OwnerID:        s.ownerID,
		DailyCalories:  2000,
		PlanLengthDays: 3,
		StartDate:      testutils.Tomorrow(),
	})
	s.Nil(dto)
	s.Equal(errors.CodeDatabaseError, errors.GetCode(err))
	s.Equal(0, s.planRepo.PlanCount())
}

func (s *PlanServiceTestSuite) TestUpdatePlanState_ArchiveBelowThresholdRejected() {
	s.seedCatalog(2000, 4)
	dto := s.createPlan(1)
	meals := s.allMeals(dto)
	s.Require().Len(meals, 4)

	// 3 of 4 completed is 0.75, below the archival gate
	for _, meal := range meals[:3] {
		s.completeMeal(meal.ID)
	}

	updated, err := s.service.UpdatePlanState(s.ctx, inbound.UpdatePlanStateCommand{
		PlanID:   dto.ID,
		OwnerID:  s.ownerID,
		NewState: "archived",
	})
	s.Nil(updated)
	s.Equal(errors.CodeArchivalThreshold, errors.GetCode(err))

	stored, err := s.planRepo.FindByID(s.ctx, dto.ID)
	s.Require().NoError(err)
	s.Equal(plan.StateActive, stored.State())
}

func (s *PlanServiceTestSuite) TestUpdatePlanState_ArchiveAtThresholdSucceeds() {
	s.seedCatalog(2000, 4)
	dto := s.createPlan(1)
	for _, meal := range s.allMeals(dto) {
		s.completeMeal(meal.ID)
	}

	updated, err := s.service.UpdatePlanState(s.ctx, inbound.UpdatePlanStateCommand{
		PlanID:   dto.ID,
		OwnerID:  s.ownerID,
		NewState: "archived",
	})
	s.Require().NoError(err)
	s.Equal("archived", updated.State)

	stored, err := s.planRepo.FindByID(s.ctx, dto.ID)
	s.Require().NoError(err)
	s.Equal(plan.StateArchived, stored.State())
}

func (s *PlanServiceTestSuite) TestUpdatePlanState_CancelAlwaysAllowed() {
	s.seedCatalog(2000, 4)
	dto := s.createPlan(2)

	updated, err := s.service.UpdatePlanState(s.ctx, inbound.UpdatePlanStateCommand{
		PlanID:   dto.ID,
		OwnerID:  s.ownerID,
		NewState: "cancelled",
	})
	s.Require().NoError(err)
	s.Equal("cancelled", updated.State)
}

func (s *PlanServiceTestSuite) TestUpdatePlanState_TerminalStatesAreFinal() {
	s.seedCatalog(2000, 4)
	dto := s.createPlan(1)

	_, err := s.service.UpdatePlanState(s.ctx, inbound.UpdatePlanStateCommand{
		PlanID: dto.ID, OwnerID: s.ownerID, NewState: "cancelled",
	})
	s.Require().NoError(err)

	for _, target := range []string{"cancelled", "archived", "active"} {
		_, err := s.service.UpdatePlanState(s.ctx, inbound.UpdatePlanStateCommand{
			PlanID: dto.ID, OwnerID: s.ownerID, NewState: target,
		})
		s.Equal(errors.CodeInvalidStateTransition, errors.GetCode(err), "transition to %s", target)
	}
}

func (s *PlanServiceTestSuite) TestUpdatePlanState_UnknownStateFailsValidation() {
	s.seedCatalog(2000, 4)
	dto := s.createPlan(1)

	_, err := s.service.UpdatePlanState(s.ctx, inbound.UpdatePlanStateCommand{
		PlanID: dto.ID, OwnerID: s.ownerID, NewState: "paused",
	})
	s.Equal(errors.CodeValidationFailed, errors.GetCode(err))
}

func (s *PlanServiceTestSuite) TestUpdateMealStatus_Toggles() {
	s.seedCatalog(2000, 4)
	dto := s.createPlan(1)
	mealID := s.allMeals(dto)[0].ID

	updated, err := s.service.UpdateMealStatus(s.ctx, inbound.UpdateMealStatusCommand{
		MealID: mealID, OwnerID: s.ownerID, NewStatus: "completed",
	})
	s.Require().NoError(err)
	s.Equal("completed", updated.Status)

	updated, err = s.service.UpdateMealStatus(s.ctx, inbound.UpdateMealStatusCommand{
		MealID: mealID, OwnerID: s.ownerID, NewStatus: "planned",
	})
	s.Require().NoError(err)
	s.Equal("planned", updated.Status)

	updated, err = s.service.UpdateMealStatus(s.ctx, inbound.UpdateMealStatusCommand{
		MealID: mealID, OwnerID: s.ownerID, NewStatus: "skipped",
	})
	s.Require().NoError(err)
	s.Equal("skipped", updated.Status)
}

func (s *PlanServiceTestSuite) TestUpdateMealStatus_CompletedToSkippedRejected() {
	s.seedCatalog(2000, 4)
	dto := s.createPlan(1)
	mealID := s.allMeals(dto)[0].ID
	s.completeMeal(mealID)

	_, err := s.service.UpdateMealStatus(s.ctx, inbound.UpdateMealStatusCommand{
		MealID: mealID, OwnerID: s.ownerID, NewStatus: "skipped",
	})
	s.Equal(errors.CodeInvalidStatusTransition, errors.GetCode(err))
}

func (s *PlanServiceTestSuite) TestUpdateMealStatus_RejectedOnInactivePlan() {
	s.seedCatalog(2000, 4)
	dto := s.createPlan(1)
	mealID := s.allMeals(dto)[0].ID

	_, err := s.service.UpdatePlanState(s.ctx, inbound.UpdatePlanStateCommand{
		PlanID: dto.ID, OwnerID: s.ownerID, NewState: "cancelled",
	})
	s.Require().NoError(err)

	_, err = s.service.UpdateMealStatus(s.ctx, inbound.UpdateMealStatusCommand{
		MealID: mealID, OwnerID: s.ownerID, NewStatus: "completed",
	})
	s.Equal(errors.CodeConflict, errors.GetCode(err))
}

func (s *PlanServiceTestSuite) TestSwapMeal_SingleMeal() {
	s.seedCatalog(2000, 4)
	dto := s.createPlan(1)

	var breakfast *inbound.MealDTO
	for _, meal := range s.allMeals(dto) {
		if meal.Slot == "breakfast" {
			m := meal
			breakfast = &m
			break
		}
	}
	s.Require().NotNil(breakfast)

	candidate := s.factory.SingleServing(480, plan.SlotBreakfast)
	s.recipeRepo.Add(candidate)

	updated, err := s.service.SwapMeal(s.ctx, inbound.SwapMealCommand{
		MealID:      breakfast.ID,
		OwnerID:     s.ownerID,
		NewRecipeID: candidate.ID(),
	})
	s.Require().NoError(err)
	s.Require().Len(updated, 1)
	s.Equal(candidate.ID(), updated[0].RecipeID)
	s.Equal(1, updated[0].PortionMultiplier)
	s.Equal(480, updated[0].CaloriesPlanned)

	stored, err := s.planRepo.FindMealByID(s.ctx, breakfast.ID)
	s.Require().NoError(err)
	s.Equal(candidate.ID(), stored.RecipeID())
}

func (s *PlanServiceTestSuite) TestSwapMeal_GroupUpdatesBothMembers() {
	original := s.factory.Recipe(300, 4, plan.SlotLunch)
	candidate := s.factory.Recipe(310, 4, plan.SlotLunch)
	s.recipeRepo.Add(original, candidate)

	// daily 1714 puts the lunch target at exactly 600
	p := testutils.NewPlanFactory(42).Skeleton(s.ownerID, 1714, 2)
	cook, leftover, err := p.AssignMealPair(0, plan.SlotLunch, original.ID(), 2, 600, 4)
	s.Require().NoError(err)
	s.Require().NoError(s.planRepo.CreatePlan(s.ctx, p))

	updated, err := s.service.SwapMeal(s.ctx, inbound.SwapMealCommand{
		MealID:      cook.ID(),
		OwnerID:     s.ownerID,
		NewRecipeID: candidate.ID(),
	})
	s.Require().NoError(err)
	s.Require().Len(updated, 2)

	byID := make(map[uuid.UUID]inbound.MealDTO, 2)
	for _, meal := range updated {
		s.Equal(candidate.ID(), meal.RecipeID)
		s.Equal(2, meal.PortionMultiplier)
		s.Equal(620, meal.CaloriesPlanned)
		byID[meal.ID] = meal
	}

	cookDTO := byID[cook.ID()]
	s.False(cookDTO.IsLeftover)
	s.Require().NotNil(cookDTO.PortionsToCook)
	s.Equal(4, *cookDTO.PortionsToCook)

	leftoverDTO := byID[leftover.ID()]
	s.True(leftoverDTO.IsLeftover)
	s.Nil(leftoverDTO.PortionsToCook)
}

func (s *PlanServiceTestSuite) TestSwapMeal_LeftoverMemberSwapsWholeGroup() {
	original := s.factory.Recipe(300, 4, plan.SlotLunch)
	candidate := s.factory.Recipe(310, 4, plan.SlotLunch)
	s.recipeRepo.Add(original, candidate)

	p := testutils.NewPlanFactory(42).Skeleton(s.ownerID, 1714, 2)
	_, leftover, err := p.AssignMealPair(0, plan.SlotLunch, original.ID(), 2, 600, 4)
	s.Require().NoError(err)
	s.Require().NoError(s.planRepo.CreatePlan(s.ctx, p))

	updated, err := s.service.SwapMeal(s.ctx, inbound.SwapMealCommand{
		MealID:      leftover.ID(),
		OwnerID:     s.ownerID,
		NewRecipeID: candidate.ID(),
	})
	s.Require().NoError(err)
	s.Len(updated, 2)
}

func (s *PlanServiceTestSuite) TestSwapMeal_RejectionLeavesMealsUntouched() {
	original := s.factory.Recipe(300, 4, plan.SlotLunch)
	wrongSlot := s.factory.SingleServing(600, plan.SlotBreakfast)
	s.recipeRepo.Add(original, wrongSlot)

	p := testutils.NewPlanFactory(42).Skeleton(s.ownerID, 1714, 2)
	cook, _, err := p.AssignMealPair(0, plan.SlotLunch, original.ID(), 2, 600, 4)
	s.Require().NoError(err)
	s.Require().NoError(s.planRepo.CreatePlan(s.ctx, p))

	_, err = s.service.SwapMeal(s.ctx, inbound.SwapMealCommand{
		MealID:      cook.ID(),
		OwnerID:     s.ownerID,
		NewRecipeID: wrongSlot.ID(),
	})
	reason, ok := errors.SwapReasonOf(err)
	s.Require().True(ok)
	s.Equal(errors.SwapReasonSlotMismatch, reason)

	stored, err := s.planRepo.FindMealByID(s.ctx, cook.ID())
	s.Require().NoError(err)
	s.Equal(original.ID(), stored.RecipeID())
	s.Equal(600, stored.CaloriesPlanned())
}

func (s *PlanServiceTestSuite) TestSwapMeal_StorageFailureLeavesGroupIntact() {
	original := s.factory.Recipe(300, 4, plan.SlotLunch)
	candidate := s.factory.Recipe(310, 4, plan.SlotLunch)
	s.recipeRepo.Add(original, candidate)

	p := testutils.NewPlanFactory(42).Skeleton(s.ownerID, 1714, 2)
	cook, leftover, err := p.AssignMealPair(0, plan.SlotLunch, original.ID(), 2, 600, 4)
	s.Require().NoError(err)
	s.Require().NoError(s.planRepo.CreatePlan(s.ctx, p))

	s.planRepo.FailUpdateMeals = stderrors.New("connection reset")

	_, err = s.service.SwapMeal(s.ctx, inbound.SwapMealCommand{
		MealID:      cook.ID(),
		OwnerID:     s.ownerID,
		NewRecipeID: candidate.ID(),
	})
	s.Equal(errors.CodeDatabaseError, errors.GetCode(err))

	for _, id := range []uuid.UUID{cook.ID(), leftover.ID()} {
		stored, err := s.planRepo.FindMealByID(s.ctx, id)
		s.Require().NoError(err)
		s.Equal(original.ID(), stored.RecipeID())
		s.Equal(600, stored.CaloriesPlanned())
	}
}

func (s *PlanServiceTestSuite) TestSwapMeal_RejectedOnInactivePlan() {
	s.seedCatalog(2000, 4)
	dto := s.createPlan(1)
	mealID := s.allMeals(dto)[0].ID

	_, err := s.service.UpdatePlanState(s.ctx, inbound.UpdatePlanStateCommand{
		PlanID: dto.ID, OwnerID: s.ownerID, NewState: "cancelled",
	})
	s.Require().NoError(err)

	candidate := s.factory.SingleServing(480, plan.SlotBreakfast)
	s.recipeRepo.Add(candidate)

	_, err = s.service.SwapMeal(s.ctx, inbound.SwapMealCommand{
		MealID: mealID, OwnerID: s.ownerID, NewRecipeID: candidate.ID(),
	})
	s.Equal(errors.CodeConflict, errors.GetCode(err))
}

func (s *PlanServiceTestSuite) TestSwapMeal_UnknownRecipe() {
	s.seedCatalog(2000, 4)
	dto := s.createPlan(1)
	mealID := s.allMeals(dto)[0].ID

	_, err := s.service.SwapMeal(s.ctx, inbound.SwapMealCommand{
		MealID: mealID, OwnerID: s.ownerID, NewRecipeID: uuid.New(),
	})
	s.Equal(errors.CodeRecipeNotFound, errors.GetCode(err))
}

func (s *PlanServiceTestSuite) TestOwnershipEnforced() {
	s.seedCatalog(2000, 4)
	dto := s.createPlan(1)
	mealID := s.allMeals(dto)[0].ID
	stranger := uuid.New()

	_, err := s.service.GetPlan(s.ctx, dto.ID, stranger)
	s.Equal(errors.CodeForbidden, errors.GetCode(err))

	_, err = s.service.UpdatePlanState(s.ctx, inbound.UpdatePlanStateCommand{
		PlanID: dto.ID, OwnerID: stranger, NewState: "cancelled",
	})
	s.Equal(errors.CodeForbidden, errors.GetCode(err))

	_, err = s.service.UpdateMealStatus(s.ctx, inbound.UpdateMealStatusCommand{
		MealID: mealID, OwnerID: stranger, NewStatus: "completed",
	})
	s.Equal(errors.CodeForbidden, errors.GetCode(err))
}

func (s *PlanServiceTestSuite) TestNotFound() {
	_, err := s.service.GetPlan(s.ctx, uuid.New(), s.ownerID)
	s.Equal(errors.CodePlanNotFound, errors.GetCode(err))

	_, err = s.service.UpdateMealStatus(s.ctx, inbound.UpdateMealStatusCommand{
		MealID: uuid.New(), OwnerID: s.ownerID, NewStatus: "completed",
	})
	s.Equal(errors.CodeMealNotFound, errors.GetCode(err))
}

func (s *PlanServiceTestSuite) TestGetPlan() {
	s.seedCatalog(2000, 8)
	created := s.createPlan(3)

	fetched, err := s.service.GetPlan(s.ctx, created.ID, s.ownerID)
	s.Require().NoError(err)
	s.Equal(created.ID, fetched.ID)
	s.Require().Len(fetched.Days, 3)
	for i, day := range fetched.Days {
		s.Len(day.Meals, 4)
		if i > 0 {
			s.True(day.Date.After(fetched.Days[i-1].Date))
		}
	}
}

func (s *PlanServiceTestSuite) TestPlanProgress() {
	s.seedCatalog(2000, 4)
	dto := s.createPlan(1)
	meals := s.allMeals(dto)
	s.Require().Len(meals, 4)

	for _, meal := range meals[:2] {
		s.completeMeal(meal.ID)
	}

	progress, err := s.service.PlanProgress(s.ctx, dto.ID, s.ownerID)
	s.Require().NoError(err)
	s.Equal(4, progress.TotalMeals)
	s.Equal(2, progress.CompletedMeals)
	s.InDelta(0.5, progress.CompletedFraction, 1e-9)
}

func (s *PlanServiceTestSuite) TestMealMutationsEmitDomainEvents() {
	core, logs := observer.New(zap.DebugLevel)
	logger := zap.New(core)
	selector := NewRecipeSelector(s.recipeRepo, rand.New(rand.NewSource(42)))
	service := NewPlanService(s.planRepo, s.recipeRepo, NewPlanAssembler(selector, logger), logger)

	s.seedCatalog(2000, 4)
	dto, err := service.CreatePlan(s.ctx, inbound.CreatePlanCommand{
		OwnerID:        s.ownerID,
		DailyCalories:  2000,
		PlanLengthDays: 1,
		StartDate:      testutils.Tomorrow(),
	})
	s.Require().NoError(err)

	var breakfast *inbound.MealDTO
	for _, meal := range s.allMeals(dto) {
		if meal.Slot == "breakfast" {
			m := meal
			breakfast = &m
			break
		}
	}
	s.Require().NotNil(breakfast)

	candidate := s.factory.SingleServing(480, plan.SlotBreakfast)
	s.recipeRepo.Add(candidate)

	_, err = service.SwapMeal(s.ctx, inbound.SwapMealCommand{
		MealID:      breakfast.ID,
		OwnerID:     s.ownerID,
		NewRecipeID: candidate.ID(),
	})
	s.Require().NoError(err)

	_, err = service.UpdateMealStatus(s.ctx, inbound.UpdateMealStatusCommand{
		MealID:    breakfast.ID,
		OwnerID:   s.ownerID,
		NewStatus: "completed",
	})
	s.Require().NoError(err)

	var names []string
	for _, entry := range logs.FilterMessage("Domain event").All() {
		for _, field := range entry.Context {
			if field.Key == "event" {
				names = append(names, field.String)
			}
		}
	}
	s.Contains(names, "plan.generated")
	s.Contains(names, "plan.meal.swapped")
	s.Contains(names, "plan.meal.status.changed")
}

func TestPlanServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PlanServiceTestSuite))
}
