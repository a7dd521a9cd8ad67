package carbon

import (
	"fmt"
	"math"
)

// exactFloatLimit is 2^52; float64 values at or above it have no fractional part.
const exactFloatLimit = 1 << 52

// RoundKg rounds a kg CO2e value to 2 decimal places for presentation.
// Values of magnitude 2^52 or more are already integral and returned as is.
func RoundKg(v float64) float64 {
	if math.Abs(v) >= exactFloatLimit || math.IsNaN(v) {
		return v
	}
	return math.Round(v*100) / 100
}

// checkFinite rejects a computed emission that overflowed float64.
func checkFinite(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: %s estimate is not a finite number", ErrInvalidInput, field)
	}
	return nil
}

// checkQuantity rejects negative or non-finite physical quantities.
func checkQuantity(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: %s must be a finite number", ErrInvalidInput, field)
	}
	if v < 0 {
		return fmt.Errorf("%w: %s must not be negative, got %s", ErrInvalidInput, field, formatFloat(v))
	}
	return nil
}

// checkPercentage rejects values outside [0, 100].
func checkPercentage(field string, v float64) error {
	if math.IsNaN(v) || v < 0 || v > MaxPercentage {
		return fmt.Errorf("%w: %s must be between 0 and 100, got %s", ErrInvalidInput, field, formatFloat(v))
	}
	return nil
}

// formatFloat formats a float for display.
// If the float is an integer, it is formatted as an integer.
// Otherwise, it is formatted with 2 decimal places.
func formatFloat(f float64) string {
	if f == math.Trunc(f) && math.Abs(f) < 1e15 {
		return fmt.Sprintf("%d", int64(f))
	}
	return fmt.Sprintf("%.2f", f)
}

// formatInt formats an integer for display.
func formatInt(i int) string {
	return fmt.Sprintf("%d", i)
}
