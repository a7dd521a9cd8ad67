package api

import (
	"fmt"
	"strings"

	"github.com/carboncompass/footprint/internal/carbon"
	"github.com/carboncompass/footprint/internal/greenops"
)

// CalculateRequest is the body of POST /api/v1/footprint/calculate.
// Pointer fields distinguish an omitted value from a literal zero.
type CalculateRequest struct {
	Transport *TransportRequest `json:"transport"`
	Energy    *EnergyRequest    `json:"energy"`
	Diet      *DietRequest      `json:"diet"`
}

type TransportRequest struct {
	Mode       *string  `json:"mode"`
	DistanceKm *float64 `json:"distanceKm"`
	Frequency  *string  `json:"frequency"`
	Passengers *int     `json:"passengers,omitempty"`
	FuelType   string   `json:"fuelType,omitempty"`
}

type EnergyRequest struct {
	Type      *string  `json:"type"`
	Amount    *float64 `json:"amount"`
	Unit      string   `json:"unit"`
	Renewable bool     `json:"renewable"`
	Period    *string  `json:"period"`
}

type DietRequest struct {
	MeatConsumption     *string  `json:"meatConsumption"`
	DairyConsumption    *string  `json:"dairyConsumption"`
	LocalFoodPercentage *float64 `json:"localFoodPercentage"`
	WastePercentage     *float64 `json:"wastePercentage"`
}

// inputs converts the request into estimator inputs. Missing sections or
// mandatory fields are reported together in one errIncompleteInput error.
func (r CalculateRequest) inputs() (carbon.TransportInput, carbon.EnergyInput, carbon.DietInput, error) {
	var (
		missing   []string
		transport carbon.TransportInput
		energy    carbon.EnergyInput
		diet      carbon.DietInput
	)

	if t := r.Transport; t == nil {
		missing = append(missing, "transport")
	} else {
		if t.Mode == nil {
			missing = append(missing, "transport.mode")
		}
		if t.DistanceKm == nil {
			missing = append(missing, "transport.distanceKm")
		}
		if t.Frequency == nil {
			missing = append(missing, "transport.frequency")
		}
		transport = carbon.TransportInput{
			Mode:       carbon.TransportMode(deref(t.Mode)),
			DistanceKm: deref(t.DistanceKm),
			Frequency:  carbon.Frequency(deref(t.Frequency)),
			Passengers: carbon.DefaultPassengers,
			FuelType:   carbon.FuelType(t.FuelType),
		}
		if t.Passengers != nil {
			transport.Passengers = *t.Passengers
		}
	}

	if e := r.Energy; e == nil {
		missing = append(missing, "energy")
	} else {
		if e.Type == nil {
			missing = append(missing, "energy.type")
		}
		if e.Amount == nil {
			missing = append(missing, "energy.amount")
		}
		if e.Period == nil {
			missing = append(missing, "energy.period")
		}
		energy = carbon.EnergyInput{
			Type:      carbon.EnergyType(deref(e.Type)),
			Amount:    deref(e.Amount),
			Unit:      e.Unit,
			Renewable: e.Renewable,
			Period:    carbon.Period(deref(e.Period)),
		}
	}

	if d := r.Diet; d == nil {
		missing = append(missing, "diet")
	} else {
		if d.MeatConsumption == nil {
			missing = append(missing, "diet.meatConsumption")
		}
		if d.DairyConsumption == nil {
			missing = append(missing, "diet.dairyConsumption")
		}
		diet = carbon.DietInput{
			MeatConsumption:     carbon.ConsumptionLevel(deref(d.MeatConsumption)),
			DairyConsumption:    carbon.ConsumptionLevel(deref(d.DairyConsumption)),
			LocalFoodPercentage: deref(d.LocalFoodPercentage),
			WastePercentage:     deref(d.WastePercentage),
		}
	}

	if len(missing) > 0 {
		return carbon.TransportInput{}, carbon.EnergyInput{}, carbon.DietInput{},
			fmt.Errorf("%w: missing %s", errIncompleteInput, strings.Join(missing, ", "))
	}
	return transport, energy, diet, nil
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

// Response is the envelope of every API response.
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// BreakdownResponse is the per-category part of a footprint.
type BreakdownResponse struct {
	Transport float64 `json:"transport"`
	Energy    float64 `json:"energy"`
	Diet      float64 `json:"diet"`
	Other     float64 `json:"other"`
}

// CalculateResponse is the data of a successful calculation.
type CalculateResponse struct {
	TotalEmissions float64           `json:"totalEmissions"`
	Breakdown      BreakdownResponse `json:"breakdown"`
	Timestamp      string            `json:"timestamp"`
}

func newCalculateResponse(b carbon.EmissionBreakdown, ts string) CalculateResponse {
	return CalculateResponse{
		TotalEmissions: b.Total,
		Breakdown: BreakdownResponse{
			Transport: b.Transport,
			Energy:    b.Energy,
			Diet:      b.Diet,
			Other:     b.Other,
		},
		Timestamp: ts,
	}
}

// HistoryEntry is one stored calculation.
type HistoryEntry struct {
	ID string `json:"id"`
	CalculateResponse
}

// HistoryResponse lists a user's stored calculations, newest first.
type HistoryResponse struct {
	UserID  string         `json:"userId"`
	Entries []HistoryEntry `json:"entries"`
}

// PointsResponse is a user's points balance.
type PointsResponse struct {
	UserID  string `json:"userId"`
	Balance int64  `json:"balance"`
}

// HealthResponse reports liveness.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// FactorsResponse publishes the emission factor tables and accepted values.
type FactorsResponse struct {
	Factors           carbon.FactorTable `json:"factors"`
	Modes             []string           `json:"modes"`
	FuelTypes         []string           `json:"fuelTypes"`
	EnergyTypes       []string           `json:"energyTypes"`
	ConsumptionLevels []string           `json:"consumptionLevels"`
}

// EquivalentsRequest is the body of POST /api/v1/footprint/equivalents.
type EquivalentsRequest = greenops.CarbonInput
