// Package carbon estimates a personal monthly carbon footprint in kg CO2e
// from transport, home energy and diet inputs.
package carbon

const (
	// DaysPerMonth normalizes a daily cadence onto a monthly basis.
	DaysPerMonth = 30.0

	// WeeksPerMonth normalizes a weekly cadence onto a monthly basis.
	WeeksPerMonth = 4.0

	// DefaultCadenceMultiplier is applied when a frequency or period is not
	// recognized. It treats the input as a single monthly occurrence.
	DefaultCadenceMultiplier = 1.0

	// DefaultPassengers is the occupant count assumed when none is supplied.
	DefaultPassengers = 1

	// RenewableEnergyFactor scales the emission factor of renewable-sourced
	// energy (an 80% discount).
	RenewableEnergyFactor = 0.2

	// LocalFoodMaxReduction is the diet reduction for 100% locally sourced food.
	LocalFoodMaxReduction = 0.2

	// FoodWasteMaxPenalty is the diet increase for 100% food waste.
	FoodWasteMaxPenalty = 0.1

	// MaxPercentage is the upper bound for percentage inputs.
	MaxPercentage = 100.0
)
