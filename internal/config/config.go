// Package config loads service configuration from YAML and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/carboncompass/footprint/internal/store"
)

// EnvPrefix prefixes every environment variable read by the service.
const EnvPrefix = "CARBON_COMPASS_"

// Environment variable names.
const (
	EnvListenAddr = EnvPrefix + "LISTEN_ADDR"
	EnvDBPath     = EnvPrefix + "DB_PATH"
	EnvLogLevel   = EnvPrefix + "LOG_LEVEL"
	EnvLogFormat  = EnvPrefix + "LOG_FORMAT"
	EnvAPIToken   = EnvPrefix + "API_TOKEN"
	EnvAPIUser    = EnvPrefix + "API_USER"
	EnvRateLimit  = EnvPrefix + "RATE_LIMIT_RPS"
)

// Config is the complete service configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Database  DatabaseConfig  `yaml:"database"`
	Logging   LoggingConfig   `yaml:"logging"`
	Auth      AuthConfig      `yaml:"auth"`
	Points    PointsConfig    `yaml:"points"`
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	ListenAddr      string        `yaml:"listen_addr"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	MaxBodyBytes    int64         `yaml:"max_body_bytes"`

	// TrustProxyHeaders keys rate limiting by X-Forwarded-For / X-Real-IP.
	TrustProxyHeaders bool `yaml:"trust_proxy_headers"`
}

// RateLimitConfig configures per-client request limiting.
type RateLimitConfig struct {
	RequestsPerSecond float64 `yaml:"requests_per_second"`
	Burst             int     `yaml:"burst"`
}

// DatabaseConfig configures the footprint store.
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// LoggingConfig configures the zerolog logger.
type LoggingConfig struct {
	// Level is a zerolog level name (debug, info, warn, error).
	Level string `yaml:"level"`

	// Format is "console" or "json".
	Format string `yaml:"format"`
}

// AuthConfig maps bearer tokens to user IDs.
type AuthConfig struct {
	Tokens map[string]string `yaml:"tokens"`
}

// PointsConfig configures gamification rewards.
type PointsConfig struct {
	PerCalculation int64 `yaml:"per_calculation"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			ListenAddr:      ":8080",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    10 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			MaxBodyBytes:    1 << 20,
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 10,
			Burst:             20,
		},
		Database: DatabaseConfig{
			Path: "carbon-compass.db",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Auth: AuthConfig{
			Tokens: map[string]string{},
		},
		Points: PointsConfig{
			PerCalculation: store.PointsPerCalculation,
		},
	}
}

// Load reads the YAML file at path over the defaults. An empty path returns
// the defaults. Environment overrides are not applied; see ApplyEnv.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Auth.Tokens == nil {
		cfg.Auth.Tokens = map[string]string{}
	}
	return cfg, nil
}

// ApplyEnv overrides cfg with CARBON_COMPASS_* environment variables.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv(EnvListenAddr); v != "" {
		c.Server.ListenAddr = v
	}
	if v := os.Getenv(EnvDBPath); v != "" {
		c.Database.Path = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		c.Logging.Format = v
	}
	if v := os.Getenv(EnvRateLimit); v != "" {
		rps, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvRateLimit, v, err)
		}
		c.RateLimit.RequestsPerSecond = rps
	}
	if token := os.Getenv(EnvAPIToken); token != "" {
		user := os.Getenv(EnvAPIUser)
		if user == "" {
			return fmt.Errorf("%s is set but %s is empty", EnvAPIToken, EnvAPIUser)
		}
		c.Auth.Tokens[token] = user
	}
	return nil
}

// Validate reports configuration errors.
func (c *Config) Validate() error {
	var errs []error
	if c.Server.ListenAddr == "" {
		errs = append(errs, errors.New("server.listen_addr is required"))
	}
	if c.Server.MaxBodyBytes < 0 {
		errs = append(errs, errors.New("server.max_body_bytes must not be negative"))
	}
	if c.RateLimit.RequestsPerSecond <= 0 {
		errs = append(errs, errors.New("rate_limit.requests_per_second must be positive"))
	}
	if c.RateLimit.Burst <= 0 {
		errs = append(errs, errors.New("rate_limit.burst must be positive"))
	}
	if c.Database.Path == "" {
		errs = append(errs, errors.New("database.path is required"))
	}
	if c.Points.PerCalculation < 0 {
		errs = append(errs, errors.New("points.per_calculation must not be negative"))
	}
	switch c.Logging.Format {
	case "", "console", "json":
	default:
		errs = append(errs, fmt.Errorf("logging.format %q must be console or json", c.Logging.Format))
	}
	for token, user := range c.Auth.Tokens {
		if token == "" || user == "" {
			errs = append(errs, errors.New("auth.tokens entries need a token and a user id"))
			break
		}
	}
	return errors.Join(errs...)
}
