package plan

import "errors"

// Domain errors for plan operations

var (
	// Entity validation errors
	ErrInvalidDailyCalories = errors.New("daily calories must be between 800 and 6000")
	ErrInvalidPlanLength    = errors.New("plan length must be between 1 and 365 days")
	ErrStartDateNotFuture   = errors.New("plan start date must be in the future")
	ErrInvalidSlot          = errors.New("unknown meal slot")
	ErrInvalidMealStatus    = errors.New("unknown meal status")

	// Assembly errors
	ErrSlotAlreadyFilled = errors.New("slot already has a meal for this day")
	ErrDayOutOfRange     = errors.New("day index outside the plan range")

	// State transition errors
	ErrInvalidStateTransition  = errors.New("invalid plan state transition")
	ErrInvalidStatusTransition = errors.New("invalid meal status transition")
	ErrArchivalThresholdNotMet = errors.New("plan completion below archival threshold")
)
