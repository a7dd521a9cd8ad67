package config

import (
	"errors"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

// CORS environment variables.
const (
	EnvCORSAllowedOrigins   = EnvPrefix + "CORS_ALLOWED_ORIGINS"
	EnvCORSAllowCredentials = EnvPrefix + "CORS_ALLOW_CREDENTIALS"
	EnvCORSMaxAge           = EnvPrefix + "CORS_MAX_AGE"
)

// DefaultCORSMaxAge is the preflight cache lifetime in seconds.
const DefaultCORSMaxAge = 86400

// CORSConfig controls cross-origin access for the single-page frontend.
type CORSConfig struct {
	// AllowedOrigins lists explicit origins. AllowAll is set instead for "*".
	AllowedOrigins   []string
	AllowAll         bool
	AllowCredentials bool
	MaxAge           int
}

// Enabled reports whether any origin is allowed.
func (c CORSConfig) Enabled() bool {
	return c.AllowAll || len(c.AllowedOrigins) > 0
}

// ParseCORSConfig reads CORS settings from the environment.
// A wildcard origin combined with credentials is rejected.
func ParseCORSConfig(logger zerolog.Logger) (CORSConfig, error) {
	cfg := CORSConfig{MaxAge: DefaultCORSMaxAge}

	if origins := os.Getenv(EnvCORSAllowedOrigins); origins != "" {
		for _, o := range strings.Split(origins, ",") {
			trimmed := strings.TrimSpace(o)
			switch trimmed {
			case "":
			case "*":
				cfg.AllowAll = true
			default:
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, trimmed)
			}
		}
		if cfg.AllowAll {
			logger.Warn().Msg("CORS wildcard origin (*) is insecure; use specific origins in production")
		}
	}

	if strings.EqualFold(os.Getenv(EnvCORSAllowCredentials), "true") {
		cfg.AllowCredentials = true
	}

	if cfg.AllowAll && cfg.AllowCredentials {
		return CORSConfig{}, errors.New("cannot enable credentials with wildcard origin (*); security risk")
	}

	if v := os.Getenv(EnvCORSMaxAge); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			cfg.MaxAge = parsed
		} else {
			logger.Warn().Str("value", v).Msg("invalid " + EnvCORSMaxAge + ", using default")
		}
	}

	logger.Debug().
		Strs("allowed_origins", cfg.AllowedOrigins).
		Bool("allow_all", cfg.AllowAll).
		Int("max_age", cfg.MaxAge).
		Msg("CORS configuration applied")

	return cfg, nil
}
