package carbon

import (
	"maps"
	"slices"
)

// Emission factor tables. Values approximate the per-km or per-unit
// emission intensity in kg CO2e. They are never mutated after init.
var (
	// carFuelFactors is kg CO2e per km for a car, by fuel type.
	carFuelFactors = map[FuelType]float64{
		FuelGasoline: 0.20,
		FuelDiesel:   0.22,
		FuelElectric: 0.05,
		FuelHybrid:   0.12,
	}

	// modeFactors is kg CO2e per km for every non-car mode.
	modeFactors = map[TransportMode]float64{
		ModeBus:   0.08,
		ModeTrain: 0.04,
		ModePlane: 0.25,
		ModeBike:  0,
		ModeWalk:  0,
	}

	// energyFactors is kg CO2e per unit of energy consumed.
	energyFactors = map[EnergyType]float64{
		EnergyElectricity: 0.40,
		EnergyHeating:     0.20,
		EnergyCooling:     0.30,
	}

	// meatFactors is the daily kg CO2e contribution of meat consumption.
	meatFactors = map[ConsumptionLevel]float64{
		ConsumptionHigh:   3.3,
		ConsumptionMedium: 2.5,
		ConsumptionLow:    1.7,
		ConsumptionNone:   1.0,
	}

	// dairyFactors is the daily kg CO2e contribution of dairy consumption.
	dairyFactors = map[ConsumptionLevel]float64{
		ConsumptionHigh:   1.5,
		ConsumptionMedium: 1.0,
		ConsumptionLow:    0.5,
		ConsumptionNone:   0.1,
	}

	// frequencyMultipliers maps a trip frequency onto occurrences per month.
	frequencyMultipliers = map[Frequency]float64{
		FrequencyDaily:   DaysPerMonth,
		FrequencyWeekly:  WeeksPerMonth,
		FrequencyMonthly: 1,
		FrequencyOnce:    1,
	}

	// periodMultipliers maps an energy reporting period onto a month.
	periodMultipliers = map[Period]float64{
		PeriodDaily:   DaysPerMonth,
		PeriodWeekly:  WeeksPerMonth,
		PeriodMonthly: 1,
	}
)

// GetCarFuelFactor returns the per-km factor of a car running on fuel.
// Returns (0, false) if the fuel type is not recognized.
func GetCarFuelFactor(fuel FuelType) (float64, bool) {
	f, ok := carFuelFactors[fuel]
	return f, ok
}

// GetModeFactor returns the per-km factor of a non-car transport mode.
// Returns (0, false) for ModeCar, whose factor depends on the fuel type,
// and for unrecognized modes.
func GetModeFactor(mode TransportMode) (float64, bool) {
	f, ok := modeFactors[mode]
	return f, ok
}

// GetEnergyFactor returns the per-unit factor of an energy type.
func GetEnergyFactor(t EnergyType) (float64, bool) {
	f, ok := energyFactors[t]
	return f, ok
}

// GetMeatFactor returns the daily factor of a meat consumption level.
func GetMeatFactor(level ConsumptionLevel) (float64, bool) {
	f, ok := meatFactors[level]
	return f, ok
}

// GetDairyFactor returns the daily factor of a dairy consumption level.
func GetDairyFactor(level ConsumptionLevel) (float64, bool) {
	f, ok := dairyFactors[level]
	return f, ok
}

// LookupFrequencyMultiplier reports the monthly multiplier of a trip frequency.
// ok is false for unrecognized frequencies; see GetFrequencyMultiplier.
func LookupFrequencyMultiplier(freq Frequency) (multiplier float64, ok bool) {
	m, ok := frequencyMultipliers[freq]
	return m, ok
}

// GetFrequencyMultiplier returns the monthly multiplier of a trip frequency,
// or DefaultCadenceMultiplier when the frequency is not recognized.
//
// The fallback is intentional. Frequency is the one transport field that is
// never rejected, and tightening it would change existing estimates.
func GetFrequencyMultiplier(freq Frequency) float64 {
	if m, ok := LookupFrequencyMultiplier(freq); ok {
		return m
	}
	return DefaultCadenceMultiplier
}

// LookupPeriodMultiplier reports the monthly multiplier of an energy period.
func LookupPeriodMultiplier(period Period) (multiplier float64, ok bool) {
	m, ok := periodMultipliers[period]
	return m, ok
}

// GetPeriodMultiplier returns the monthly multiplier of an energy period,
// or DefaultCadenceMultiplier when the period is not recognized. It is lenient
// in the same way as GetFrequencyMultiplier.
func GetPeriodMultiplier(period Period) float64 {
	if m, ok := LookupPeriodMultiplier(period); ok {
		return m
	}
	return DefaultCadenceMultiplier
}

// FactorTable is a snapshot of every emission factor and multiplier table.
type FactorTable struct {
	CarFuel     map[string]float64 `json:"carFuel"`
	Mode        map[string]float64 `json:"mode"`
	Energy      map[string]float64 `json:"energy"`
	Meat        map[string]float64 `json:"meat"`
	Dairy       map[string]float64 `json:"dairy"`
	Frequency   map[string]float64 `json:"frequency"`
	Period      map[string]float64 `json:"period"`
	Renewable   float64            `json:"renewableFactor"`
	LocalFood   float64            `json:"localFoodMaxReduction"`
	FoodWaste   float64            `json:"foodWasteMaxPenalty"`
	DaysInMonth float64            `json:"daysPerMonth"`
}

// Factors returns a copy of the factor tables. Mutating the result does not
// affect estimation.
func Factors() FactorTable {
	return FactorTable{
		CarFuel:     copyTable(carFuelFactors),
		Mode:        copyTable(modeFactors),
		Energy:      copyTable(energyFactors),
		Meat:        copyTable(meatFactors),
		Dairy:       copyTable(dairyFactors),
		Frequency:   copyTable(frequencyMultipliers),
		Period:      copyTable(periodMultipliers),
		Renewable:   RenewableEnergyFactor,
		LocalFood:   LocalFoodMaxReduction,
		FoodWaste:   FoodWasteMaxPenalty,
		DaysInMonth: DaysPerMonth,
	}
}

// ValidModes returns the recognized transport modes in sorted order.
func ValidModes() []string {
	modes := append(sortedKeys(modeFactors), string(ModeCar))
	slices.Sort(modes)
	return modes
}

// ValidFuelTypes returns the recognized car fuel types in sorted order.
func ValidFuelTypes() []string {
	return sortedKeys(carFuelFactors)
}

// ValidEnergyTypes returns the recognized energy types in sorted order.
func ValidEnergyTypes() []string {
	return sortedKeys(energyFactors)
}

// ValidConsumptionLevels returns the recognized meat and dairy levels in sorted order.
func ValidConsumptionLevels() []string {
	return sortedKeys(meatFactors)
}

func copyTable[K ~string](m map[K]float64) map[string]float64 {
	out := make(map[string]float64, len(m))
	for k, v := range m {
		out[string(k)] = v
	}
	return out
}

func sortedKeys[K ~string](m map[K]float64) []string {
	keys := make([]string, 0, len(m)+1)
	for _, k := range slices.Sorted(maps.Keys(m)) {
		keys = append(keys, string(k))
	}
	return keys
}
