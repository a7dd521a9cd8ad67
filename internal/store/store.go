// Package store persists calculated footprints and the points ledger.
package store

import (
	"context"
	"time"

	"github.com/carboncompass/footprint/internal/carbon"
)

// PointsPerCalculation is credited to a user for each stored footprint.
const PointsPerCalculation = 10

// ReasonCalculation is the ledger reason recorded for a footprint calculation.
const ReasonCalculation = "footprint_calculation"

// Record is a stored footprint calculation.
type Record struct {
	ID        string
	UserID    string
	Breakdown carbon.EmissionBreakdown

	// Input is the raw JSON request that produced the breakdown.
	Input []byte

	CreatedAt time.Time
}

// Store is the persistence surface used by the HTTP layer.
type Store interface {
	// RecordCalculation stores rec and credits points to rec.UserID in one
	// transaction, returning the new balance. Nothing is stored on error.
	RecordCalculation(ctx context.Context, rec Record, points int64) (int64, error)

	// ListFootprints returns up to limit records of a user, newest first.
	ListFootprints(ctx context.Context, userID string, limit int) ([]Record, error)

	// Balance returns the current points balance of a user.
	Balance(ctx context.Context, userID string) (int64, error)
}
