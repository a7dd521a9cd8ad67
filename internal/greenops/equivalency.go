package greenops

import (
	"fmt"
	"math"
	"strings"
)

type equivalency struct {
	typ    EquivalencyType
	factor float64
	label  string
}

// equivalencies are listed in display priority order.
var equivalencies = []equivalency{
	{EquivalencyMilesDriven, MilesDrivenFactor, "miles driven"},
	{EquivalencySmartphonesCharged, SmartphoneChargeFactor, "smartphones charged"},
	{EquivalencyTreeSeedlings, TreeSeedlingFactor, "tree seedlings grown for 10 years"},
	{EquivalencyHomeDays, HomeDayFactor, "days of home electricity"},
}

// Calculate converts a carbon quantity into equivalencies.
//
// The input is normalized to kg first; normalization errors are returned with
// an empty output. Inputs below MinEquivalencyThresholdKg produce an empty
// output carrying only InputKg.
func Calculate(input CarbonInput) (EquivalencyOutput, error) {
	kg, err := NormalizeToKg(input.Value, input.Unit)
	if err != nil {
		return EquivalencyOutput{IsEmpty: true}, err
	}

	if kg < MinEquivalencyThresholdKg {
		return EquivalencyOutput{InputKg: kg, IsEmpty: true}, nil
	}

	results := make([]EquivalencyResult, 0, len(equivalencies))
	for _, eq := range equivalencies {
		v := kg / eq.factor
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return EquivalencyOutput{IsEmpty: true}, ErrCalculationOverflow
		}
		results = append(results, EquivalencyResult{
			Type:           eq.typ,
			Value:          v,
			FormattedValue: formatEquivalencyValue(v),
			Label:          eq.label,
		})
	}

	miles := results[EquivalencyMilesDriven].FormattedValue
	phones := results[EquivalencySmartphonesCharged].FormattedValue
	seedlings := formatEquivalencyValue(math.Ceil(results[EquivalencyTreeSeedlings].Value))

	return EquivalencyOutput{
		InputKg:     kg,
		Results:     results,
		DisplayText: fmt.Sprintf("Equivalent to driving %s miles or charging %s smartphones",
			approximate(miles), approximate(phones)),
		OffsetText:  fmt.Sprintf("Offsetting this takes %s tree seedlings grown for 10 years", seedlings),
	}, nil
}

// formatEquivalencyValue rounds small values to an integer with separators
// and abbreviates values of a million or more.
func formatEquivalencyValue(v float64) string {
	if v >= LargeNumberThreshold {
		return FormatLarge(v)
	}
	return FormatNumber(int64(math.Round(v)))
}

// approximate marks a formatted value as approximate, once.
func approximate(s string) string {
	if strings.HasPrefix(s, "~") {
		return s
	}
	return "~" + s
}
