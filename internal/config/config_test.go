package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carboncompass/footprint/internal/store"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, ":8080", cfg.Server.ListenAddr)
	assert.Equal(t, int64(1<<20), cfg.Server.MaxBodyBytes)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, 10.0, cfg.RateLimit.RequestsPerSecond)
	assert.Equal(t, 20, cfg.RateLimit.Burst)
	assert.Equal(t, "carbon-compass.db", cfg.Database.Path)
	assert.Equal(t, int64(store.PointsPerCalculation), cfg.Points.PerCalculation)
	assert.False(t, cfg.Server.TrustProxyHeaders)
	assert.NotNil(t, cfg.Auth.Tokens)
	require.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  listen_addr: "127.0.0.1:9090"
  read_timeout: 5s
  max_body_bytes: 4096
  trust_proxy_headers: true
rate_limit:
  requests_per_second: 2.5
  burst: 5
database:
  path: /tmp/footprints.db
logging:
  level: debug
  format: json
auth:
  tokens:
    secret-token: user-1
points:
  per_calculation: 25
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9090", cfg.Server.ListenAddr)
	assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 10*time.Second, cfg.Server.WriteTimeout, "unset fields keep defaults")
	assert.Equal(t, int64(4096), cfg.Server.MaxBodyBytes)
	assert.True(t, cfg.Server.TrustProxyHeaders)
	assert.Equal(t, 2.5, cfg.RateLimit.RequestsPerSecond)
	assert.Equal(t, 5, cfg.RateLimit.Burst)
	assert.Equal(t, "/tmp/footprints.db", cfg.Database.Path)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, map[string]string{"secret-token": "user-1"}, cfg.Auth.Tokens)
	assert.Equal(t, int64(25), cfg.Points.PerCalculation)
}

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config")

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [unclosed"), 0o600))
	_, err = Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvListenAddr, ":7000")
	t.Setenv(EnvDBPath, "/data/cc.db")
	t.Setenv(EnvLogLevel, "warn")
	t.Setenv(EnvLogFormat, "json")
	t.Setenv(EnvRateLimit, "3")
	t.Setenv(EnvAPIToken, "env-token")
	t.Setenv(EnvAPIUser, "env-user")

	cfg := Default()
	require.NoError(t, cfg.ApplyEnv())

	assert.Equal(t, ":7000", cfg.Server.ListenAddr)
	assert.Equal(t, "/data/cc.db", cfg.Database.Path)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, 3.0, cfg.RateLimit.RequestsPerSecond)
	assert.Equal(t, "env-user", cfg.Auth.Tokens["env-token"])
}

func TestApplyEnv_Errors(t *testing.T) {
	t.Run("bad rate", func(t *testing.T) {
		t.Setenv(EnvRateLimit, "fast")
		require.Error(t, Default().ApplyEnv())
	})

	t.Run("token without user", func(t *testing.T) {
		t.Setenv(EnvAPIToken, "orphan")
		t.Setenv(EnvAPIUser, "")
		err := Default().ApplyEnv()
		require.Error(t, err)
		assert.Contains(t, err.Error(), EnvAPIUser)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantMsg string
	}{
		{"empty listen addr", func(c *Config) { c.Server.ListenAddr = "" }, "listen_addr"},
		{"negative body limit", func(c *Config) { c.Server.MaxBodyBytes = -1 }, "max_body_bytes"},
		{"zero rate", func(c *Config) { c.RateLimit.RequestsPerSecond = 0 }, "requests_per_second"},
		{"zero burst", func(c *Config) { c.RateLimit.Burst = 0 }, "burst"},
		{"empty db path", func(c *Config) { c.Database.Path = "" }, "database.path"},
		{"negative points", func(c *Config) { c.Points.PerCalculation = -1 }, "per_calculation"},
		{"unknown log format", func(c *Config) { c.Logging.Format = "xml" }, "logging.format"},
		{"token without user", func(c *Config) { c.Auth.Tokens["t"] = "" }, "auth.tokens"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}
