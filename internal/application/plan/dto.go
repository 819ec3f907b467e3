package plan

import (
	"github.com/platewise/v1/internal/domain/plan"
	"github.com/platewise/v1/internal/ports/inbound"
)

// Mapping between domain entities and transfer objects

func planToDTO(p *plan.Plan) *inbound.PlanDTO {
	dto := &inbound.PlanDTO{
		ID:            p.ID(),
		OwnerID:       p.OwnerID(),
		State:         p.State().String(),
		StartDate:     p.StartDate(),
		EndDate:       p.EndDate(),
		DailyCalories: p.DailyCalories(),
		Days:          make([]inbound.PlanDayDTO, 0, p.Length()),
		CreatedAt:     p.CreatedAt(),
	}

	for _, day := range p.Days() {
		dayDTO := inbound.PlanDayDTO{
			ID:      day.ID(),
			Date:    day.Date(),
			Targets: make(map[string]int, 4),
			Meals:   make([]inbound.MealDTO, 0, 4),
		}
		for slot, calories := range day.Targets() {
			dayDTO.Targets[slot.String()] = calories
		}
		for _, meal := range day.Meals() {
			dayDTO.Meals = append(dayDTO.Meals, mealToDTO(meal))
		}
		dto.Days = append(dto.Days, dayDTO)
	}

	return dto
}

func mealToDTO(m *plan.Meal) inbound.MealDTO {
	return inbound.MealDTO{
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
	}
}
