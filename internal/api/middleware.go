package api

import (
	"context"
	"crypto/subtle"
	"net/http"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/carboncompass/footprint/internal/config"
	"github.com/carboncompass/footprint/internal/metrics"
)

type contextKey string

const (
	requestIDKey contextKey = "request_id"
	userIDKey    contextKey = "user_id"
)

// HeaderRequestID carries the request ID in both directions.
const HeaderRequestID = "X-Request-ID"

// RequestIDFromContext returns the request ID set by the middleware.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// UserIDFromContext returns the authenticated user ID.
func UserIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(userIDKey).(string)
	return id
}

func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(HeaderRequestID)
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}
		w.Header().Set(HeaderRequestID, id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey, id)))
	})
}

func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapped := newResponseWriter(w)

		if s.testMode {
			s.logger.Debug().
				Str(config.FieldTraceID, RequestIDFromContext(r.Context())).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Str("remote_addr", clientIP(r, s.limiter.TrustProxyHeaders)).
				Str("user_agent", r.UserAgent()).
				Int64("content_length", r.ContentLength).
				Msg("http request")
		}

		next.ServeHTTP(wrapped, r)

		var evt *zerolog.Event
		switch {
		case wrapped.statusCode >= http.StatusInternalServerError:
			evt = s.logger.Error()
		case wrapped.statusCode >= http.StatusBadRequest:
			evt = s.logger.Warn()
		default:
			evt = s.logger.Info()
		}
		evt.
			Str(config.FieldTraceID, RequestIDFromContext(r.Context())).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int(config.FieldStatus, wrapped.statusCode).
			Int64("bytes", wrapped.bytesWritten).
			Int64(config.FieldDurationMs, time.Since(start).Milliseconds()).
			Msg("http response")
	})
}

func metricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapped := newResponseWriter(w)

		next.ServeHTTP(wrapped, r)

		route := r.URL.Path
		if cur := mux.CurrentRoute(r); cur != nil {
			if tpl, err := cur.GetPathTemplate(); err == nil {
				route = tpl
			}
		}
		metrics.RecordHTTPRequest(route, r.Method, wrapped.statusCode, time.Since(start))
	})
}

var (
	corsAllowMethods = strings.Join([]string{http.MethodGet, http.MethodPost, http.MethodOptions}, ", ")
	corsAllowHeaders = strings.Join([]string{"Authorization", "Content-Type", HeaderRequestID}, ", ")
)

func (s *Server) corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin == "" || !s.cors.Enabled() {
			next.ServeHTTP(w, r)
			return
		}

		allowed := s.cors.AllowAll || slices.Contains(s.cors.AllowedOrigins, origin)
		preflight := r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != ""

		if !allowed {
			if preflight {
				respondWithError(w, http.StatusForbidden, msgOriginForbidden)
				return
			}
			next.ServeHTTP(w, r)
			return
		}

		h := w.Header()
		h.Add("Vary", "Origin")
		if s.cors.AllowAll {
			h.Set("Access-Control-Allow-Origin", "*")
		} else {
			h.Set("Access-Control-Allow-Origin", origin)
		}
		if s.cors.AllowCredentials {
			h.Set("Access-Control-Allow-Credentials", "true")
		}
		h.Set("Access-Control-Expose-Headers", HeaderRequestID)

		if preflight {
			h.Set("Access-Control-Allow-Methods", corsAllowMethods)
			h.Set("Access-Control-Allow-Headers", corsAllowHeaders)
			h.Set("Access-Control-Max-Age", strconv.Itoa(s.cors.MaxAge))
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// bodyLimitMiddleware caps request bodies at maxBytes. Zero disables it.
func bodyLimitMiddleware(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if maxBytes <= 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

// tokenAuth resolves bearer tokens to user IDs.
type tokenAuth struct {
	tokens []tokenEntry
}

type tokenEntry struct {
	token  []byte
	userID string
}

func newTokenAuth(tokens map[string]string) *tokenAuth {
	a := &tokenAuth{tokens: make([]tokenEntry, 0, len(tokens))}
	for token, user := range tokens {
		if token == "" || user == "" {
			continue
		}
		a.tokens = append(a.tokens, tokenEntry{token: []byte(token), userID: user})
	}
	return a
}

// lookup compares against every configured token so the time taken does not
// depend on which one matched.
func (a *tokenAuth) lookup(token string) (string, bool) {
	if token == "" {
		return "", false
	}
	candidate := []byte(token)
	var userID string
	for _, e := range a.tokens {
		if subtle.ConstantTimeCompare(candidate, e.token) == 1 {
			userID = e.userID
		}
	}
	return userID, userID != ""
}

func bearerToken(r *http.Request) string {
	const prefix = "bearer "
	h := r.Header.Get("Authorization")
	if len(h) <= len(prefix) || !strings.EqualFold(h[:len(prefix)], prefix) {
		return ""
	}
	return strings.TrimSpace(h[len(prefix):])
}

func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := s.auth.lookup(bearerToken(r))
		if !ok {
			s.logger.Debug().
				Str(config.FieldTraceID, RequestIDFromContext(r.Context())).
				Str("path", r.URL.Path).
				Msg("rejected unauthenticated request")
			respondWithError(w, http.StatusUnauthorized, msgUnauthorized)
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userIDKey, userID)))
	})
}

// responseWriter records the status code and body size of a response.
type responseWriter struct {
	http.ResponseWriter
	statusCode    int
	bytesWritten  int64
	headerWritten bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(code int) {
	if !rw.headerWritten {
		rw.statusCode = code
		rw.headerWritten = true
		rw.ResponseWriter.WriteHeader(code)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.headerWritten {
		rw.WriteHeader(http.StatusOK)
	}
	n, err := rw.ResponseWriter.Write(b)
	rw.bytesWritten += int64(n)
	return n, err
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}
