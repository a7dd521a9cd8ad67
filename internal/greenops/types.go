package greenops

import "fmt"

// EquivalencyType is a category of real-world equivalency.
type EquivalencyType int

const (
	EquivalencyMilesDriven EquivalencyType = iota
	EquivalencySmartphonesCharged
	EquivalencyTreeSeedlings
	EquivalencyHomeDays
)

// String returns the JSON name of the equivalency type.
func (e EquivalencyType) String() string {
	switch e {
	case EquivalencyMilesDriven:
		return "milesDriven"
	case EquivalencySmartphonesCharged:
		return "smartphonesCharged"
	case EquivalencyTreeSeedlings:
		return "treeSeedlings"
	case EquivalencyHomeDays:
		return "homeDays"
	default:
		return fmt.Sprintf("EquivalencyType(%d)", int(e))
	}
}

// MarshalText encodes the type by name.
func (e EquivalencyType) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

// CarbonInput is a carbon quantity with its unit.
type CarbonInput struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

// EquivalencyResult is a single calculated equivalency.
type EquivalencyResult struct {
	Type           EquivalencyType `json:"type"`
	Value          float64         `json:"value"`
	FormattedValue string          `json:"formattedValue"`
	Label          string          `json:"label"`
}

// EquivalencyOutput holds every equivalency of one input.
type EquivalencyOutput struct {
	// InputKg is the normalized input in kg CO2e.
	InputKg float64 `json:"inputKg"`

	Results []EquivalencyResult `json:"results"`

	// DisplayText is a one-line summary, e.g.
	// "Equivalent to driving ~1,505 miles or charging ~35,158 smartphones".
	DisplayText string `json:"displayText"`

	// OffsetText tells how many seedlings would absorb the input over 10 years.
	OffsetText string `json:"offsetText"`

	// IsEmpty is true when the input was below MinEquivalencyThresholdKg.
	IsEmpty bool `json:"isEmpty"`
}
