package recipe

import "errors"

// Domain errors for recipe catalog entries

var (
	ErrNameRequired    = errors.New("recipe name is required")
	ErrInvalidCalories = errors.New("calories per portion must be greater than 0")
	ErrInvalidPortions = errors.New("portions must be greater than 0")
	ErrNoEligibleSlots = errors.New("recipe must be eligible for at least one slot")
	ErrInvalidSlot     = errors.New("unknown slot in eligible slots")
)
