package carbon

// FootprintEstimator estimates a monthly carbon footprint.
type FootprintEstimator interface {
	// Estimate returns the rounded per-category breakdown of the inputs.
	// Any invalid category aborts the estimate; no partial result is returned.
	Estimate(transport TransportInput, energy EnergyInput, diet DietInput) (EmissionBreakdown, error)
}

// Estimator implements FootprintEstimator with the package factor tables.
// It holds no state and is safe for concurrent use.
type Estimator struct{}

// NewEstimator creates a new footprint estimator.
func NewEstimator() *Estimator {
	return &Estimator{}
}

// Estimate calls the package-level Estimate.
func (e *Estimator) Estimate(transport TransportInput, energy EnergyInput, diet DietInput) (EmissionBreakdown, error) {
	return Estimate(transport, energy, diet)
}

// Estimate computes the monthly footprint of the three categories.
//
// Each category is computed independently; the first failure is returned and
// the breakdown is discarded. Inputs whose product overflows float64 are
// rejected with ErrInvalidInput. Other is always zero. Every field, including
// Total, is rounded to 2 decimal places.
func Estimate(transport TransportInput, energy EnergyInput, diet DietInput) (EmissionBreakdown, error) {
	b, err := EstimateExact(transport, energy, diet)
	if err != nil {
		return EmissionBreakdown{}, err
	}
	return b.Rounded(), nil
}

// EstimateExact is Estimate without presentation rounding.
func EstimateExact(transport TransportInput, energy EnergyInput, diet DietInput) (EmissionBreakdown, error) {
	t, err := ComputeTransportEmissions(transport)
	if err != nil {
		return EmissionBreakdown{}, err
	}
	e, err := ComputeEnergyEmissions(energy)
	if err != nil {
		return EmissionBreakdown{}, err
	}
	d, err := ComputeDietEmissions(diet)
	if err != nil {
		return EmissionBreakdown{}, err
	}

	b := EmissionBreakdown{
		Transport: t,
		Energy:    e,
		Diet:      d,
		Other:     0,
	}
	b.Total = b.Transport + b.Energy + b.Diet + b.Other

	for _, c := range []struct {
		name string
		v    float64
	}{
		{"transport", b.Transport},
		{"energy", b.Energy},
		{"diet", b.Diet},
		{"total", b.Total},
	} {
		if err := checkFinite(c.name, c.v); err != nil {
			return EmissionBreakdown{}, err
		}
	}
	return b, nil
}

// Rounded returns a copy of b with every field rounded to 2 decimal places.
// Total is rounded from the exact sum, not summed from rounded parts.
func (b EmissionBreakdown) Rounded() EmissionBreakdown {
	return EmissionBreakdown{
		Transport: RoundKg(b.Transport),
		Energy:    RoundKg(b.Energy),
		Diet:      RoundKg(b.Diet),
		Other:     RoundKg(b.Other),
		Total:     RoundKg(b.Total),
	}
}
