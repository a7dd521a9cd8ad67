package carbon

import (
	"fmt"
	"strings"
)

// ComputeEnergyEmissions returns the monthly kg CO2e of home energy use.
//
// The calculation:
//  1. Factor = energy factor for Type
//  2. Factor = Factor × 0.2 when Renewable
//  3. Multiplier = periods per month for Period (1 if unrecognized)
//  4. Emissions = Factor × Amount × Multiplier
//
// Unit is not used. Returns an error wrapping ErrInvalidInput for an unknown
// energy type or a negative amount.
func ComputeEnergyEmissions(in EnergyInput) (float64, error) {
	factor, ok := GetEnergyFactor(in.Type)
	if !ok {
		return 0, fmt.Errorf("%w: unknown energy type %q (want one of %s)",
			ErrInvalidInput, in.Type, strings.Join(ValidEnergyTypes(), ", "))
	}

	if in.Renewable {
		factor *= RenewableEnergyFactor
	}

	if err := checkQuantity("amount", in.Amount); err != nil {
		return 0, err
	}

	multiplier := GetPeriodMultiplier(in.Period)

	return factor * in.Amount * multiplier, nil
}

// DescribeEnergy returns a human-readable description of an energy input.
func DescribeEnergy(in EnergyInput) string {
	source := "grid"
	if in.Renewable {
		source = "renewable"
	}
	detail := "Energy " + string(in.Type) + ", " + formatFloat(in.Amount)
	if in.Unit != "" {
		detail += " " + in.Unit
	}
	return detail + " " + string(in.Period) + ", " + source
}
