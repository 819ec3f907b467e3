package gorm

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/platewise/v1/internal/domain/plan"
	"github.com/platewise/v1/internal/domain/recipe"
	"github.com/platewise/v1/internal/ports/outbound"
)

// RecipeRepository implements the read-only catalog interface using GORM
type RecipeRepository struct {
	db *gorm.DB
}

// NewRecipeRepository creates a new recipe repository
func NewRecipeRepository(db *gorm.DB) outbound.RecipeRepository {
	return &RecipeRepository{db: db}
}

// FindByID returns a recipe or (nil, nil) when absent
func (r *RecipeRepository) FindByID(ctx context.Context, id uuid.UUID) (*recipe.Recipe, error) {
	var model RecipeModel
	err := r.db.WithContext(ctx).
		Preload("Slots").
		First(&model, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return ModelToRecipe(&model), nil
}

// FindCandidates returns active, slot-eligible recipes within the calorie
// band, excluding the given ids
func (r *RecipeRepository) FindCandidates(ctx context.Context, slot plan.Slot, minCalories, maxCalories int, exclude []uuid.UUID) ([]*recipe.Recipe, error) {
	query := r.db.WithContext(ctx).
		Joins("JOIN recipe_slots ON recipe_slots.recipe_id = recipes.id").
		Where("recipe_slots.slot = ?", slot.String()).
		Where("recipes.active = ?", true).
		Where("recipes.calories_per_portion BETWEEN ? AND ?", minCalories, maxCalories)

	if len(exclude) > 0 {
		query = query.Where("recipes.id NOT IN ?", exclude)
	}

	var models []RecipeModel
	if err := query.Preload("Slots").Find(&models).Error; err != nil {
		return nil, err
	}

	recipes := make([]*recipe.Recipe, len(models))
	for i := range models {
		recipes[i] = ModelToRecipe(&models[i])
	}
	return recipes, nil
}
