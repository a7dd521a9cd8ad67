package greenops

import (
	"math"
	"strings"
)

// unitFactors maps lower-cased unit names to their kilogram conversion.
var unitFactors = map[string]float64{
	"g":      GramsToKg,
	"gco2e":  GramsToKg,
	"kg":     KgToKg,
	"kgco2e": KgToKg,
	"t":      TonsToKg,
	"tco2e":  TonsToKg,
	"lb":     PoundsToKg,
	"lbco2e": PoundsToKg,
}

// NormalizeToKg converts a carbon quantity to kilograms.
// Recognized units are g, kg, t and lb, each optionally suffixed with CO2e,
// matched case-insensitively. An empty unit means kg.
func NormalizeToKg(value float64, unit string) (float64, error) {
	if math.IsInf(value, 0) || math.IsNaN(value) {
		return 0, ErrCalculationOverflow
	}
	if value < 0 {
		return 0, ErrNegativeValue
	}

	if unit == "" {
		unit = "kg"
	}
	factor, ok := unitFactors[strings.ToLower(unit)]
	if !ok {
		return 0, ErrInvalidUnit
	}

	kg := value * factor
	if math.IsInf(kg, 0) {
		return 0, ErrCalculationOverflow
	}
	return kg, nil
}

// IsRecognizedUnit reports whether unit is accepted by NormalizeToKg.
func IsRecognizedUnit(unit string) bool {
	_, ok := unitFactors[strings.ToLower(unit)]
	return ok
}
