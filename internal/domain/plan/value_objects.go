package plan

// Value Objects - closed enumerations used throughout the plan domain

// Slot is one of the four fixed daily meal categories
type Slot string

const (
	SlotBreakfast Slot = "breakfast"
	SlotLunch     Slot = "lunch"
	SlotDinner    Slot = "dinner"
	SlotSnack     Slot = "snack"
)

// Slots returns all slots in assembly order. The order is fixed so that
// multi-portion pairing on lunch and dinner is deterministic across days.
func Slots() []Slot {
	return []Slot{SlotBreakfast, SlotLunch, SlotDinner, SlotSnack}
}

// IsValid reports whether the slot is one of the four known values
func (s Slot) IsValid() bool {
	switch s {
	case SlotBreakfast, SlotLunch, SlotDinner, SlotSnack:
		return true
	}
	return false
}

func (s Slot) String() string {
	return string(s)
}

// SupportsLeftovers reports whether a slot participates in the
// cook-once-eat-twice pairing rule
func (s Slot) SupportsLeftovers() bool {
	return s == SlotLunch || s == SlotDinner
}

// State is the lifecycle state of a plan
type State string

const (
	StateActive    State = "active"
	StateArchived  State = "archived"
	StateCancelled State = "cancelled"
)

// IsValid reports whether the state is a known value
func (s State) IsValid() bool {
	switch s {
	case StateActive, StateArchived, StateCancelled:
		return true
	}
	return false
}

func (s State) String() string {
	return string(s)
}

// IsTerminal reports whether no transitions are defined out of the state
func (s State) IsTerminal() bool {
	return s == StateArchived || s == StateCancelled
}

// CanTransitionTo reports whether the state machine permits the transition.
// Archival additionally requires the completion threshold, which is checked
// by Plan.Archive; this covers shape only.
func (s State) CanTransitionTo(target State) bool {
	if s != StateActive {
		return false
	}
	return target == StateArchived || target == StateCancelled
}

// MealStatus is the per-meal completion status
type MealStatus string

const (
	MealStatusPlanned   MealStatus = "planned"
	MealStatusCompleted MealStatus = "completed"
	MealStatusSkipped   MealStatus = "skipped"
)

// IsValid reports whether the status is a known value
func (s MealStatus) IsValid() bool {
	switch s {
	case MealStatusPlanned, MealStatusCompleted, MealStatusSkipped:
		return true
	}
	return false
}

func (s MealStatus) String() string {
	return string(s)
}

// CanTransitionTo reports whether the status toggle is allowed.
// planned <-> completed and planned <-> skipped are simple toggles;
// completed and skipped do not convert into each other directly.
func (s MealStatus) CanTransitionTo(target MealStatus) bool {
	switch s {
	case MealStatusPlanned:
		return target == MealStatusCompleted || target == MealStatusSkipped
	case MealStatusCompleted, MealStatusSkipped:
		return target == MealStatusPlanned
	}
	return false
}
