package greenops

// EPA equivalency factors (2024 edition), in kg CO2e per unit of activity.
// Source: https://www.epa.gov/energy/greenhouse-gas-equivalencies-calculator
//
//	equivalency = kg_CO2e / factor
const (
	// MilesDrivenFactor is kg CO2e per mile of an average passenger vehicle.
	MilesDrivenFactor = 0.192

	// SmartphoneChargeFactor is kg CO2e per full smartphone charge.
	SmartphoneChargeFactor = 0.00822

	// TreeSeedlingFactor is kg CO2e absorbed by one tree seedling grown for 10 years.
	TreeSeedlingFactor = 60.0

	// HomeDayFactor is kg CO2e of one day of average US home electricity.
	HomeDayFactor = 18.3
)

// Unit conversion factors to kilograms.
const (
	GramsToKg  = 0.001
	KgToKg     = 1.0
	TonsToKg   = 1000.0
	PoundsToKg = 0.453592
)

const (
	// MinEquivalencyThresholdKg is the smallest footprint that gets equivalencies.
	// Below it the numbers are too small to mean anything.
	MinEquivalencyThresholdKg = 1.0

	// LargeNumberThreshold switches display to "~X.X million".
	LargeNumberThreshold = 1_000_000

	// BillionThreshold switches display to "~X.X billion".
	BillionThreshold = 1_000_000_000

	// TrillionThreshold switches display to "~X.X trillion".
	TrillionThreshold = 1_000_000_000_000

	// ScientificThreshold switches display to scientific notation.
	ScientificThreshold = 1e15
)
