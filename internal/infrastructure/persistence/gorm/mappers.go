package gorm

// Mapping between domain entities and GORM models

import (
	"sort"

	"github.com/platewise/v1/internal/domain/plan"
	"github.com/platewise/v1/internal/domain/recipe"
)

// RecipeToModel converts a catalog recipe to a GORM model
func RecipeToModel(r *recipe.Recipe) *RecipeModel {
	model := &RecipeModel{
		ID:                 r.ID(),
		Name:               r.Name(),
		CaloriesPerPortion: r.CaloriesPerPortion(),
		Portions:           r.Portions(),
		Active:             r.IsActive(),
		CreatedAt:          r.CreatedAt(),
	}
	for _, slot := range r.EligibleSlots() {
		model.Slots = append(model.Slots, RecipeSlotModel{
			RecipeID: r.ID(),
			Slot:     slot.String(),
		})
	}
	return model
}

// ModelToRecipe reconstitutes a catalog recipe from its model
func ModelToRecipe(model *RecipeModel) *recipe.Recipe {
	slots := make([]plan.Slot, len(model.Slots))
	for i, s := range model.Slots {
		slots[i] = plan.Slot(s.Slot)
	}
	return recipe.ReconstituteRecipe(
		model.ID,
		model.Name,
		model.CaloriesPerPortion,
		model.Portions,
		slots,
		model.Active,
		model.CreatedAt,
	)
}

// PlanToModel converts a plan aggregate, including days, slot targets and
// meals, to nested GORM models for a single associated create
func PlanToModel(p *plan.Plan) *PlanModel {
	model := &PlanModel{
		ID:            p.ID(),
		OwnerID:       p.OwnerID(),
		State:         p.State().String(),
		StartDate:     p.StartDate(),
		EndDate:       p.EndDate(),
		DailyCalories: p.DailyCalories(),
		CreatedAt:     p.CreatedAt(),
		UpdatedAt:     p.UpdatedAt(),
	}

	for _, day := range p.Days() {
		dayModel := PlanDayModel{
			ID:     day.ID(),
			PlanID: p.ID(),
			Date:   day.Date(),
		}
		for slot, calories := range day.Targets() {
			dayModel.SlotTargets = append(dayModel.SlotTargets, SlotTargetModel{
				PlanDayID:      day.ID(),
				Slot:           slot.String(),
				CaloriesTarget: calories,
			})
		}
		for _, meal := range day.Meals() {
			dayModel.Meals = append(dayModel.Meals, *MealToModel(meal))
		}
		model.Days = append(model.Days, dayModel)
	}

	return model
}

// ModelToPlan reconstitutes a plan aggregate from its model tree
func ModelToPlan(model *PlanModel) *plan.Plan {
	days := make([]*plan.PlanDay, len(model.Days))
	sort.Slice(model.Days, func(i, j int) bool {
		return model.Days[i].Date.Before(model.Days[j].Date)
	})
	for i, dayModel := range model.Days {
		targets := make(map[plan.Slot]int, len(dayModel.SlotTargets))
		for _, target := range dayModel.SlotTargets {
			targets[plan.Slot(target.Slot)] = target.CaloriesTarget
		}
		meals := make([]*plan.Meal, len(dayModel.Meals))
		for j := range dayModel.Meals {
			meals[j] = ModelToMeal(&dayModel.Meals[j])
		}
		days[i] = plan.ReconstitutePlanDay(dayModel.ID, model.ID, dayModel.Date, targets, meals)
	}

	return plan.ReconstitutePlan(
		model.ID,
		model.OwnerID,
		plan.State(model.State),
		model.StartDate,
		model.EndDate,
		model.DailyCalories,
		days,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

// MealToModel converts a meal entity to a GORM model
func MealToModel(m *plan.Meal) *MealModel {
	return &MealModel{
		ID:                  m.ID(),
		PlanID:              m.PlanID(),
		PlanDayID:           m.PlanDayID(),
		Slot:                m.Slot().String(),
		Status:              m.Status().String(),
		RecipeID:            m.RecipeID(),
		PortionMultiplier:   m.PortionMultiplier(),
		CaloriesPlanned:     m.CaloriesPlanned(),
		IsLeftover:          m.IsLeftover(),
		MultiPortionGroupID: m.GroupID(),
		PortionsToCook:      m.PortionsToCook(),
		CreatedAt:           m.CreatedAt(),
		UpdatedAt:           m.UpdatedAt(),
	}
}

// ModelToMeal reconstitutes a meal entity from its model
func ModelToMeal(model *MealModel) *plan.Meal {
	return plan.ReconstituteMeal(
		model.ID,
		model.PlanID,
		model.PlanDayID,
		plan.Slot(model.Slot),
		plan.MealStatus(model.Status),
		model.RecipeID,
		model.PortionMultiplier,
		model.CaloriesPlanned,
		model.IsLeftover,
		model.MultiPortionGroupID,
		model.PortionsToCook,
		model.CreatedAt,
		model.UpdatedAt,
	)
}
