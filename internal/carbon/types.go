package carbon

// TransportMode is the means of travel for a transport input.
type TransportMode string

// Recognized transport modes.
const (
	ModeCar   TransportMode = "car"
	ModeBus   TransportMode = "bus"
	ModeTrain TransportMode = "train"
	ModePlane TransportMode = "plane"
	ModeBike  TransportMode = "bike"
	ModeWalk  TransportMode = "walk"
)

// FuelType is the fuel a car runs on. It only matters when the mode is car.
type FuelType string

// Recognized car fuel types.
const (
	FuelGasoline FuelType = "gasoline"
	FuelDiesel   FuelType = "diesel"
	FuelElectric FuelType = "electric"
	FuelHybrid   FuelType = "hybrid"
)

// Frequency is how often a trip is made.
type Frequency string

// Recognized trip frequencies.
const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
	FrequencyOnce    Frequency = "once"
)

// EnergyType is the kind of home energy consumed.
type EnergyType string

// Recognized energy types.
const (
	EnergyElectricity EnergyType = "electricity"
	EnergyHeating     EnergyType = "heating"
	EnergyCooling     EnergyType = "cooling"
)

// Period is the reporting period of an energy amount.
type Period string

// Recognized energy reporting periods.
const (
	PeriodDaily   Period = "daily"
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
)

// ConsumptionLevel grades meat or dairy consumption.
type ConsumptionLevel string

// Recognized consumption levels.
const (
	ConsumptionHigh   ConsumptionLevel = "high"
	ConsumptionMedium ConsumptionLevel = "medium"
	ConsumptionLow    ConsumptionLevel = "low"
	ConsumptionNone   ConsumptionLevel = "none"
)

// TransportInput describes one recurring trip.
type TransportInput struct {
	// Mode is the means of travel.
	Mode TransportMode

	// DistanceKm is the distance of a single trip in kilometres.
	DistanceKm float64

	// Frequency is how often the trip is made. Unrecognized values count once.
	Frequency Frequency

	// Passengers is the number of occupants sharing the trip (>= 1).
	Passengers int

	// FuelType is required when Mode is ModeCar and ignored otherwise.
	FuelType FuelType
}

// EnergyInput describes home energy consumption over a period.
type EnergyInput struct {
	// Type is the kind of energy consumed.
	Type EnergyType

	// Amount is the consumed quantity in the unit of Unit.
	Amount float64

	// Unit is informational only (e.g. "kWh").
	Unit string

	// Renewable reports whether the energy comes from a renewable source.
	Renewable bool

	// Period is the reporting period of Amount. Unrecognized values count once.
	Period Period
}

// DietInput describes eating habits.
type DietInput struct {
	MeatConsumption     ConsumptionLevel
	DairyConsumption    ConsumptionLevel
	LocalFoodPercentage float64
	WastePercentage     float64
}

// EmissionBreakdown is a monthly footprint split by category, in kg CO2e.
type EmissionBreakdown struct {
	Transport float64
	Energy    float64
	Diet      float64

	// Other is always zero today; it is kept as an extension point.
	Other float64

	// Total is the sum of the four categories.
	Total float64
}
