package carbon

import (
	"fmt"
	"strings"
)

// ComputeTransportEmissions returns the monthly kg CO2e of a recurring trip.
//
// The calculation:
//  1. Factor = car fuel factor when Mode is car, otherwise the mode factor
//  2. Factor = Factor / Passengers (emissions are shared between occupants)
//  3. Multiplier = occurrences per month for Frequency (1 if unrecognized)
//  4. Emissions = Factor × DistanceKm × Multiplier
//
// The passenger split applies to every mode, including public transport.
// Returns an error wrapping ErrInvalidInput for an unknown mode or fuel type,
// fewer than one passenger, or a negative distance.
func ComputeTransportEmissions(in TransportInput) (float64, error) {
	factor, err := transportFactor(in.Mode, in.FuelType)
	if err != nil {
		return 0, err
	}

	if in.Passengers < 1 {
		return 0, fmt.Errorf("%w: passengers must be at least 1, got %d", ErrInvalidInput, in.Passengers)
	}
	factor /= float64(in.Passengers)

	multiplier := GetFrequencyMultiplier(in.Frequency)

	if err := checkQuantity("distanceKm", in.DistanceKm); err != nil {
		return 0, err
	}

	return factor * in.DistanceKm * multiplier, nil
}

// transportFactor resolves the per-km factor for a mode, consulting the fuel
// type only for cars.
func transportFactor(mode TransportMode, fuel FuelType) (float64, error) {
	if mode == ModeCar {
		if fuel == "" {
			return 0, fmt.Errorf("%w: fuelType is required when mode is %q", ErrInvalidInput, ModeCar)
		}
		factor, ok := GetCarFuelFactor(fuel)
		if !ok {
			return 0, fmt.Errorf("%w: unknown fuelType %q (want one of %s)",
				ErrInvalidInput, fuel, strings.Join(ValidFuelTypes(), ", "))
		}
		return factor, nil
	}

	factor, ok := GetModeFactor(mode)
	if !ok {
		return 0, fmt.Errorf("%w: unknown mode %q (want one of %s)",
			ErrInvalidInput, mode, strings.Join(ValidModes(), ", "))
	}
	return factor, nil
}

// DescribeTransport returns a human-readable description of a transport input.
func DescribeTransport(in TransportInput) string {
	mode := string(in.Mode)
	if in.Mode == ModeCar && in.FuelType != "" {
		mode += " (" + string(in.FuelType) + ")"
	}
	return "Transport " + mode + ", " +
		formatFloat(in.DistanceKm) + " km " + string(in.Frequency) + ", " +
		formatInt(in.Passengers) + " passenger(s)"
}
