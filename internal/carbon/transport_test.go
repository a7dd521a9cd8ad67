package carbon

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeTransportEmissions(t *testing.T) {
	tests := []struct {
		name  string
		input TransportInput
		want  float64
	}{
		{
			name:  "gasoline car single trip",
			input: TransportInput{Mode: ModeCar, DistanceKm: 100, Frequency: FrequencyOnce, Passengers: 1, FuelType: FuelGasoline},
			want:  20.0,
		},
		{
			name:  "gasoline car shared by two",
			input: TransportInput{Mode: ModeCar, DistanceKm: 100, Frequency: FrequencyOnce, Passengers: 2, FuelType: FuelGasoline},
			want:  10.0,
		},
		{
			name:  "diesel car weekly",
			input: TransportInput{Mode: ModeCar, DistanceKm: 50, Frequency: FrequencyWeekly, Passengers: 1, FuelType: FuelDiesel},
			want:  0.22 * 50 * 4,
		},
		{
			name:  "electric car daily",
			input: TransportInput{Mode: ModeCar, DistanceKm: 20, Frequency: FrequencyDaily, Passengers: 1, FuelType: FuelElectric},
			want:  0.05 * 20 * 30,
		},
		{
			name:  "hybrid car monthly",
			input: TransportInput{Mode: ModeCar, DistanceKm: 300, Frequency: FrequencyMonthly, Passengers: 3, FuelType: FuelHybrid},
			want:  0.12 / 3 * 300,
		},
		{
			name:  "bus daily",
			input: TransportInput{Mode: ModeBus, DistanceKm: 10, Frequency: FrequencyDaily, Passengers: 1},
			want:  0.08 * 10 * 30,
		},
		{
			name:  "passenger split applies to public transport",
			input: TransportInput{Mode: ModeTrain, DistanceKm: 100, Frequency: FrequencyOnce, Passengers: 4},
			want:  0.04 / 4 * 100,
		},
		{
			name:  "plane once",
			input: TransportInput{Mode: ModePlane, DistanceKm: 1200, Frequency: FrequencyOnce, Passengers: 1},
			want:  0.25 * 1200,
		},
		{
			name:  "fuel type ignored for non-car modes",
			input: TransportInput{Mode: ModeBus, DistanceKm: 10, Frequency: FrequencyOnce, Passengers: 1, FuelType: "kerosene"},
			want:  0.8,
		},
		{
			name:  "zero distance",
			input: TransportInput{Mode: ModeCar, DistanceKm: 0, Frequency: FrequencyDaily, Passengers: 1, FuelType: FuelGasoline},
			want:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputeTransportEmissions(tt.input)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestComputeTransportEmissions_ActiveModesAreZero(t *testing.T) {
	for _, mode := range []TransportMode{ModeBike, ModeWalk} {
		for _, freq := range []Frequency{FrequencyDaily, FrequencyWeekly, FrequencyMonthly, FrequencyOnce, "fortnightly"} {
			for _, passengers := range []int{1, 2, 7} {
				got, err := ComputeTransportEmissions(TransportInput{
					Mode:       mode,
					DistanceKm: 42.5,
					Frequency:  freq,
					Passengers: passengers,
				})
				require.NoError(t, err)
				assert.Equal(t, 0.0, got, "%s/%s/%d", mode, freq, passengers)
			}
		}
	}
}

func TestComputeTransportEmissions_MorePassengersLowerEmissions(t *testing.T) {
	modes := []TransportInput{
		{Mode: ModeCar, FuelType: FuelGasoline},
		{Mode: ModeCar, FuelType: FuelElectric},
		{Mode: ModeBus},
		{Mode: ModePlane},
	}

	for _, base := range modes {
		t.Run(string(base.Mode)+"/"+string(base.FuelType), func(t *testing.T) {
			prev := math.Inf(1)
			for passengers := 1; passengers <= 6; passengers++ {
				in := base
				in.DistanceKm = 100
				in.Frequency = FrequencyWeekly
				in.Passengers = passengers

				got, err := ComputeTransportEmissions(in)
				require.NoError(t, err)
				assert.Less(t, got, prev, "passengers=%d", passengers)
				prev = got
			}
		})
	}
}

// Unrecognized frequencies are not rejected: they count as a single trip.
// This leniency is deliberate and covered here so a change is noticed.
func TestComputeTransportEmissions_UnknownFrequencyDefaultsToOnce(t *testing.T) {
	in := TransportInput{Mode: ModeCar, DistanceKm: 100, Passengers: 1, FuelType: FuelGasoline}

	for _, freq := range []Frequency{"fortnightly", "", "DAILY", "yearly"} {
		in.Frequency = freq
		got, err := ComputeTransportEmissions(in)
		require.NoError(t, err, "frequency %q", freq)
		assert.InDelta(t, 20.0, got, 1e-9, "frequency %q", freq)
	}
}

func TestComputeTransportEmissions_InvalidInput(t *testing.T) {
	valid := TransportInput{Mode: ModeCar, DistanceKm: 10, Frequency: FrequencyDaily, Passengers: 1, FuelType: FuelGasoline}

	tests := []struct {
		name    string
		mutate  func(in *TransportInput)
		wantMsg string
	}{
		{"unknown fuel type", func(in *TransportInput) { in.FuelType = "kerosene" }, "fuelType"},
		{"missing fuel type for car", func(in *TransportInput) { in.FuelType = "" }, "fuelType is required"},
		{"unknown mode", func(in *TransportInput) { in.Mode = "rocket" }, "unknown mode"},
		{"empty mode", func(in *TransportInput) { in.Mode = "" }, "unknown mode"},
		{"mode is case sensitive", func(in *TransportInput) { in.Mode = "Car" }, "unknown mode"},
		{"zero passengers", func(in *TransportInput) { in.Passengers = 0 }, "passengers"},
		{"negative passengers", func(in *TransportInput) { in.Passengers = -2 }, "passengers"},
		{"negative distance", func(in *TransportInput) { in.DistanceKm = -1 }, "distanceKm"},
		{"NaN distance", func(in *TransportInput) { in.DistanceKm = math.NaN() }, "distanceKm"},
		{"infinite distance", func(in *TransportInput) { in.DistanceKm = math.Inf(1) }, "distanceKm"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.mutate(&in)

			got, err := ComputeTransportEmissions(in)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Contains(t, err.Error(), tt.wantMsg)
			assert.Equal(t, 0.0, got)
		})
	}
}

func TestDescribeTransport(t *testing.T) {
	got := DescribeTransport(TransportInput{
		Mode: ModeCar, DistanceKm: 12.5, Frequency: FrequencyDaily, Passengers: 2, FuelType: FuelHybrid,
	})
	assert.Equal(t, "Transport car (hybrid), 12.50 km daily, 2 passenger(s)", got)

	got = DescribeTransport(TransportInput{Mode: ModeTrain, DistanceKm: 40, Frequency: FrequencyWeekly, Passengers: 1})
	assert.Equal(t, "Transport train, 40 km weekly, 1 passenger(s)", got)
}
