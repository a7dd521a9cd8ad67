package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/goccy/go-json"

	"github.com/carboncompass/footprint/internal/carbon"
	"github.com/carboncompass/footprint/internal/config"
	"github.com/carboncompass/footprint/internal/greenops"
	"github.com/carboncompass/footprint/internal/metrics"
	"github.com/carboncompass/footprint/internal/store"
)

// maxHistoryLimit caps the limit query parameter of the history route.
const maxHistoryLimit = 500

type pinger interface {
	Ping(ctx context.Context) error
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	resp := HealthResponse{
		Status:    "healthy",
		Timestamp: s.now().UTC().Format(time.RFC3339),
	}
	if p, ok := s.store.(pinger); ok {
		if err := p.Ping(r.Context()); err != nil {
			s.logger.Error().Err(err).Msg("store health check failed")
			resp.Status = "unhealthy"
			respondWithData(w, http.StatusServiceUnavailable, resp)
			return
		}
	}
	respondWithData(w, http.StatusOK, resp)
}

func (s *Server) handleFactors(w http.ResponseWriter, _ *http.Request) {
	respondWithData(w, http.StatusOK, FactorsResponse{
		Factors:           carbon.Factors(),
		Modes:             carbon.ValidModes(),
		FuelTypes:         carbon.ValidFuelTypes(),
		EnergyTypes:       carbon.ValidEnergyTypes(),
		ConsumptionLevels: carbon.ValidConsumptionLevels(),
	})
}

func (s *Server) handleCalculate(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	ctx := r.Context()
	userID := UserIDFromContext(ctx)
	log := s.logger.With().
		Str(config.FieldTraceID, RequestIDFromContext(ctx)).
		Str(config.FieldUserID, userID).
		Str(config.FieldOperation, "Calculate").
		Logger()

	body, ok := s.readBody(w, r)
	if !ok {
		return
	}

	var req CalculateRequest
	if err := json.Unmarshal(body, &req); err != nil {
		log.Debug().Err(err).Msg("malformed calculate payload")
		respondWithError(w, http.StatusBadRequest, msgInvalidPayload)
		return
	}

	transport, energy, diet, err := req.inputs()
	if err != nil {
		metrics.RecordEstimate(metrics.OutcomeInvalidInput)
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	log.Debug().
		Str("transport", carbon.DescribeTransport(transport)).
		Str("energy", carbon.DescribeEnergy(energy)).
		Str("diet", carbon.DescribeDiet(diet)).
		Msg("estimating footprint")

	breakdown, err := s.estimator.Estimate(transport, energy, diet)
	if err != nil {
		if errors.Is(err, carbon.ErrInvalidInput) {
			metrics.RecordEstimate(metrics.OutcomeInvalidInput)
			log.Debug().Err(err).Msg("estimate rejected")
			respondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		metrics.RecordEstimate(metrics.OutcomeError)
		log.Error().Err(err).Msg("estimate failed")
		respondWithError(w, http.StatusInternalServerError, msgInternalError)
		return
	}
	metrics.RecordEstimate(metrics.OutcomeSuccess)
	metrics.ObserveBreakdown(breakdown.Transport, breakdown.Energy, breakdown.Diet, breakdown.Total)

	now := s.now().UTC()
	balance, err := s.store.RecordCalculation(ctx, store.Record{
		UserID:    userID,
		Breakdown: breakdown,
		Input:     body,
		CreatedAt: now,
	}, s.points)
	if err != nil {
		log.Error().Err(err).Msg("failed to persist footprint")
		respondWithError(w, http.StatusInternalServerError, msgInternalError)
		return
	}
	metrics.RecordPointsCredited(s.points)

	log.Info().
		Float64("total_kg", breakdown.Total).
		Int64("balance", balance).
		Int64(config.FieldDurationMs, time.Since(start).Milliseconds()).
		Msg("footprint calculated")

	respondWithData(w, http.StatusOK, newCalculateResponse(breakdown, now.Format(time.RFC3339)))
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := UserIDFromContext(ctx)

	limit := store.DefaultListLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxHistoryLimit {
			respondWithError(w, http.StatusBadRequest, msgInvalidLimit)
			return
		}
		limit = n
	}

	records, err := s.store.ListFootprints(ctx, userID, limit)
	if err != nil {
		s.logger.Error().Err(err).
			Str(config.FieldTraceID, RequestIDFromContext(ctx)).
			Str(config.FieldUserID, userID).
			Msg("failed to list footprints")
		respondWithError(w, http.StatusInternalServerError, msgInternalError)
		return
	}

	entries := make([]HistoryEntry, 0, len(records))
	for _, rec := range records {
		entries = append(entries, HistoryEntry{
			ID:                rec.ID,
			CalculateResponse: newCalculateResponse(rec.Breakdown, rec.CreatedAt.UTC().Format(time.RFC3339)),
		})
	}
	respondWithData(w, http.StatusOK, HistoryResponse{UserID: userID, Entries: entries})
}

func (s *Server) handlePoints(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := UserIDFromContext(ctx)

	balance, err := s.store.Balance(ctx, userID)
	if err != nil {
		s.logger.Error().Err(err).
			Str(config.FieldTraceID, RequestIDFromContext(ctx)).
			Str(config.FieldUserID, userID).
			Msg("failed to read points balance")
		respondWithError(w, http.StatusInternalServerError, msgInternalError)
		return
	}
	respondWithData(w, http.StatusOK, PointsResponse{UserID: userID, Balance: balance})
}

func (s *Server) handleEquivalents(w http.ResponseWriter, r *http.Request) {
	body, ok := s.readBody(w, r)
	if !ok {
		return
	}

	var req EquivalentsRequest
	if err := json.Unmarshal(body, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, msgInvalidPayload)
		return
	}

	out, err := greenops.Calculate(req)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondWithData(w, http.StatusOK, out)
}

// readBody reads the whole request body, answering 413 when it exceeds the
// configured limit and 400 on other read errors.
func (s *Server) readBody(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondWithError(w, http.StatusRequestEntityTooLarge, msgBodyTooLarge)
			return nil, false
		}
		respondWithError(w, http.StatusBadRequest, msgInvalidPayload)
		return nil, false
	}
	return body, true
}
