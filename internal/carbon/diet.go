package carbon

import (
	"fmt"
	"strings"
)

// ComputeDietEmissions returns the monthly kg CO2e of a diet.
//
// The calculation:
//  1. Base = meat factor + dairy factor (daily)
//  2. Base = Base × (1 − LocalFoodPercentage/100 × 0.2)
//  3. Base = Base × (1 + WastePercentage/100 × 0.1)
//  4. Emissions = Base × 30
//
// Returns an error wrapping ErrInvalidInput for an unknown consumption level
// or a percentage outside [0, 100].
func ComputeDietEmissions(in DietInput) (float64, error) {
	meat, ok := GetMeatFactor(in.MeatConsumption)
	if !ok {
		return 0, unknownLevel("meatConsumption", in.MeatConsumption)
	}
	dairy, ok := GetDairyFactor(in.DairyConsumption)
	if !ok {
		return 0, unknownLevel("dairyConsumption", in.DairyConsumption)
	}

	base := meat + dairy

	if err := checkPercentage("localFoodPercentage", in.LocalFoodPercentage); err != nil {
		return 0, err
	}
	base *= 1 - (in.LocalFoodPercentage/MaxPercentage)*LocalFoodMaxReduction

	if err := checkPercentage("wastePercentage", in.WastePercentage); err != nil {
		return 0, err
	}
	base *= 1 + (in.WastePercentage/MaxPercentage)*FoodWasteMaxPenalty

	return base * DaysPerMonth, nil
}

func unknownLevel(field string, level ConsumptionLevel) error {
	return fmt.Errorf("%w: unknown %s %q (want one of %s)",
		ErrInvalidInput, field, level, strings.Join(ValidConsumptionLevels(), ", "))
}

// DescribeDiet returns a human-readable description of a diet input.
func DescribeDiet(in DietInput) string {
	return "Diet meat " + string(in.MeatConsumption) +
		", dairy " + string(in.DairyConsumption) +
		", " + formatFloat(in.LocalFoodPercentage) + "% local" +
		", " + formatFloat(in.WastePercentage) + "% waste"
}
