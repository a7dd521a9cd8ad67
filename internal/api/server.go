package api

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/carboncompass/footprint/internal/carbon"
	"github.com/carboncompass/footprint/internal/config"
	"github.com/carboncompass/footprint/internal/store"
)

// Options configures a Server.
type Options struct {
	Estimator carbon.FootprintEstimator
	Store     store.Store
	Logger    zerolog.Logger

	// Tokens maps bearer tokens to user IDs.
	Tokens map[string]string

	PointsPerCalculation int64
	MaxBodyBytes         int64

	RequestsPerSecond float64
	Burst             int

	// TrustProxyHeaders makes the rate limiter key clients by proxy headers.
	TrustProxyHeaders bool

	CORS config.CORSConfig

	// TestMode logs request details at debug level.
	TestMode bool

	// Now overrides the clock used for timestamps.
	Now func() time.Time
}

// Server holds the HTTP handlers and their collaborators.
type Server struct {
	estimator carbon.FootprintEstimator
	store     store.Store
	logger    zerolog.Logger
	auth      *tokenAuth
	limiter   *RateLimiter
	cors      config.CORSConfig
	points    int64
	maxBody   int64
	testMode  bool
	now       func() time.Time
}

// NewServer creates a Server. A nil Estimator uses carbon.NewEstimator.
// Call Close to stop the rate limiter's background cleanup.
func NewServer(opts Options) *Server {
	est := opts.Estimator
	if est == nil {
		est = carbon.NewEstimator()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	rps := opts.RequestsPerSecond
	if rps <= 0 {
		rps = float64(rate.Inf)
	}
	burst := opts.Burst
	if burst <= 0 {
		burst = 1
	}

	limiter := NewRateLimiter(rate.Limit(rps), burst)
	limiter.TrustProxyHeaders = opts.TrustProxyHeaders

	logger := config.ComponentLogger(opts.Logger, "api")
	return &Server{
		estimator: est,
		store:     opts.Store,
		logger:    logger,
		auth:      newTokenAuth(opts.Tokens),
		limiter:   limiter,
		cors:      opts.CORS,
		points:    opts.PointsPerCalculation,
		maxBody:   opts.MaxBodyBytes,
		testMode:  opts.TestMode,
		now:       now,
	}
}

// Close releases background resources.
func (s *Server) Close() {
	s.limiter.Stop()
}

// Router returns the route table. Route middleware covers metrics and
// authentication only; see Handler for the full chain.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		respondWithError(w, http.StatusNotFound, msgNotFound)
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		respondWithError(w, http.StatusMethodNotAllowed, msgMethodNotAllow)
	})
	r.Use(metricsMiddleware)

	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	v1 := r.PathPrefix("/api/v1").Subrouter()
	v1.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	v1.HandleFunc("/factors", s.handleFactors).Methods(http.MethodGet)
	v1.HandleFunc("/footprint/equivalents", s.handleEquivalents).Methods(http.MethodPost)

	protected := v1.NewRoute().Subrouter()
	protected.Use(s.authMiddleware)
	protected.HandleFunc("/footprint/calculate", s.handleCalculate).Methods(http.MethodPost)
	protected.HandleFunc("/footprint/history", s.handleHistory).Methods(http.MethodGet)
	protected.HandleFunc("/points", s.handlePoints).Methods(http.MethodGet)

	return r
}

// Handler returns the router wrapped in request-scoped middleware,
// outermost first: request ID, access log, CORS, rate limit, body limit.
func (s *Server) Handler() http.Handler {
	var h http.Handler = s.Router()
	h = bodyLimitMiddleware(s.maxBody)(h)
	h = s.limiter.Middleware(h)
	h = s.corsMiddleware(h)
	h = s.loggingMiddleware(h)
	h = requestIDMiddleware(h)
	return h
}
