package api

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/carboncompass/footprint/internal/carbon"
	"github.com/carboncompass/footprint/internal/store"
)

const (
	testToken = "test-token"
	testUser  = "user-1"
)

var fixedNow = time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

type fakeStore struct {
	mu       sync.Mutex
	records  []store.Record
	balances map[string]int64
	err      error
	pingErr  error
}

func newFakeStore() *fakeStore {
	return &fakeStore{balances: map[string]int64{}}
}

func (f *fakeStore) RecordCalculation(_ context.Context, rec store.Record, points int64) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return 0, f.err
	}
	if rec.ID == "" {
		rec.ID = "rec-" + string(rune('a'+len(f.records)))
	}
	f.records = append(f.records, rec)
	f.balances[rec.UserID] += points
	return f.balances[rec.UserID], nil
}

func (f *fakeStore) ListFootprints(_ context.Context, userID string, limit int) ([]store.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	var out []store.Record
	for i := len(f.records) - 1; i >= 0 && len(out) < limit; i-- {
		if f.records[i].UserID == userID {
			out = append(out, f.records[i])
		}
	}
	return out, nil
}

func (f *fakeStore) Balance(_ context.Context, userID string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return 0, f.err
	}
	return f.balances[userID], nil
}

func (f *fakeStore) Ping(context.Context) error {
	return f.pingErr
}

// failingEstimator returns a fixed error.
type failingEstimator struct {
	err error
}

func (f failingEstimator) Estimate(carbon.TransportInput, carbon.EnergyInput, carbon.DietInput) (carbon.EmissionBreakdown, error) {
	return carbon.EmissionBreakdown{}, f.err
}

var errBoom = errors.New("boom")

func newTestServer(t *testing.T, mutate func(*Options)) (*Server, *fakeStore) {
	t.Helper()
	fs := newFakeStore()
	opts := Options{
		Store:                fs,
		Logger:               zerolog.Nop(),
		Tokens:               map[string]string{testToken: testUser},
		PointsPerCalculation: store.PointsPerCalculation,
		MaxBodyBytes:         1 << 20,
		RequestsPerSecond:    1000,
		Burst:                1000,
		Now:                  func() time.Time { return fixedNow },
	}
	if mutate != nil {
		mutate(&opts)
	}
	srv := NewServer(opts)
	t.Cleanup(srv.Close)
	return srv, fs
}

func doRequest(t *testing.T, h http.Handler, method, path, token string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.RemoteAddr = "192.0.2.1:1234"
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return env
}

const scenarioBody = `{
	"transport": {"mode": "car", "distanceKm": 50, "frequency": "weekly", "passengers": 1, "fuelType": "gasoline"},
	"energy": {"type": "electricity", "amount": 300, "unit": "kWh", "renewable": false, "period": "monthly"},
	"diet": {"meatConsumption": "high", "dairyConsumption": "medium", "localFoodPercentage": 0, "wastePercentage": 0}
}`
