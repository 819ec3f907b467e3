// Package gorm provides GORM model definitions and repository
// implementations for the application
package gorm

import (
	"time"

	"github.com/google/uuid"
)

// RecipeModel represents the GORM model for catalog recipes
type RecipeModel struct {
	ID                 uuid.UUID `gorm:"type:char(36);primaryKey"`
	Name               string    `gorm:"type:varchar(255);not null;index"`
	CaloriesPerPortion int       `gorm:"not null;index"`
	Portions           int       `gorm:"not null"`
	Active             bool      `gorm:"default:true;index"`
	CreatedAt          time.Time
	UpdatedAt          time.Time

	// Relationships
	Slots []RecipeSlotModel `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for recipes
func (RecipeModel) TableName() string {
	return "recipes"
}

// RecipeSlotModel is one slot a recipe may be assigned to. Slot
// eligibility is a join table so candidate queries stay plain SQL.
type RecipeSlotModel struct {
	RecipeID uuid.UUID `gorm:"type:char(36);primaryKey"`
	Slot     string    `gorm:"type:varchar(20);primaryKey;index"`
}

// TableName specifies the table name for recipe slot eligibility
func (RecipeSlotModel) TableName() string {
	return "recipe_slots"
}

// PlanModel represents the GORM model for plans. Besides the composite
// lookup index declared here, Migrate adds a partial unique index on
// (owner_id) WHERE state = 'active' that enforces the single-active-plan
// invariant.
type PlanModel struct {
	ID            uuid.UUID `gorm:"type:char(36);primaryKey"`
	OwnerID       uuid.UUID `gorm:"type:char(36);not null;index:idx_plans_owner_state"`
	State         string    `gorm:"type:varchar(20);not null;index:idx_plans_owner_state"`
	StartDate     time.Time `gorm:"type:date;not null"`
	EndDate       time.Time `gorm:"type:date;not null"`
	DailyCalories int       `gorm:"not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Relationships
	Days []PlanDayModel `gorm:"foreignKey:PlanID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for plans
func (PlanModel) TableName() string {
	return "plans"
}

// PlanDayModel represents one calendar day of a plan
type PlanDayModel struct {
	ID     uuid.UUID `gorm:"type:char(36);primaryKey"`
	PlanID uuid.UUID `gorm:"type:char(36);not null;index"`
	Date   time.Time `gorm:"type:date;not null"`

	// Relationships
	SlotTargets []SlotTargetModel `gorm:"foreignKey:PlanDayID;constraint:OnDelete:CASCADE"`
	Meals       []MealModel       `gorm:"foreignKey:PlanDayID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for plan days
func (PlanDayModel) TableName() string {
	return "plan_days"
}

// SlotTargetModel is the persisted calorie target for one day and slot,
// derived once at generation time and never recomputed
type SlotTargetModel struct {
	PlanDayID      uuid.UUID `gorm:"type:char(36);primaryKey"`
	Slot           string    `gorm:"type:varchar(20);primaryKey"`
	CaloriesTarget int       `gorm:"not null"`
}

// TableName specifies the table name for slot targets
func (SlotTargetModel) TableName() string {
	return "slot_targets"
}

// MealModel represents the GORM model for meals
type MealModel struct {
	ID                  uuid.UUID  `gorm:"type:char(36);primaryKey"`
	PlanID              uuid.UUID  `gorm:"type:char(36);not null;index"`
	PlanDayID           uuid.UUID  `gorm:"type:char(36);not null;index:idx_meals_day_slot,unique"`
	Slot                string     `gorm:"type:varchar(20);not null;index:idx_meals_day_slot,unique"`
	Status              string     `gorm:"type:varchar(20);not null;default:'planned';index"`
	RecipeID            uuid.UUID  `gorm:"type:char(36);not null;index"`
	PortionMultiplier   int        `gorm:"not null"`
	CaloriesPlanned     int        `gorm:"not null"`
	IsLeftover          bool       `gorm:"not null;default:false"`
	MultiPortionGroupID *uuid.UUID `gorm:"type:char(36);index"`
	PortionsToCook      *int
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// TableName specifies the table name for meals
func (MealModel) TableName() string {
	return "meals"
}
