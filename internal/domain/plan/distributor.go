package plan

import "math"

// Slot calorie split used during generation: 25/35/35/5.
// Each share is rounded independently, so the four targets may drift from
// the daily budget by up to three calories in total.
var slotShares = map[Slot]float64{
	SlotBreakfast: 0.25,
	SlotLunch:     0.35,
	SlotDinner:    0.35,
	SlotSnack:     0.05,
}

// DistributeCalories turns a daily calorie budget into one target per slot.
// Pure function; rounding is round-half-up per slot.
func DistributeCalories(dailyCalories int) map[Slot]int {
	targets := make(map[Slot]int, len(slotShares))
	for slot, share := range slotShares {
		targets[slot] = RoundHalfUp(float64(dailyCalories) * share)
	}
	return targets
}

// RoundHalfUp rounds to the nearest integer with halves rounding up
func RoundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}

// ComputePortions derives the portion multiplier and planned calories for
// assigning a recipe with the given calories per portion to a slot target.
// The multiplier is a positive integer.
func ComputePortions(targetCalories, caloriesPerPortion int) (multiplier, caloriesPlanned int) {
	multiplier = RoundHalfUp(float64(targetCalories) / float64(caloriesPerPortion))
	if multiplier < 1 {
		multiplier = 1
	}
	return multiplier, caloriesPerPortion * multiplier
}
