package config

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCORSConfig(t *testing.T) {
	tests := []struct {
		name        string
		origins     string
		credentials string
		maxAge      string
		want        CORSConfig
		wantErr     bool
	}{
		{
			name: "unset disables CORS",
			want: CORSConfig{MaxAge: DefaultCORSMaxAge},
		},
		{
			name:    "explicit origins trimmed",
			origins: " http://localhost:3000 , https://app.example.com,,",
			want: CORSConfig{
				AllowedOrigins: []string{"http://localhost:3000", "https://app.example.com"},
				MaxAge:         DefaultCORSMaxAge,
			},
		},
		{
			name:    "wildcard",
			origins: "*",
			maxAge:  "600",
			want:    CORSConfig{AllowAll: true, MaxAge: 600},
		},
		{
			name:    "wildcard mixed with explicit origins",
			origins: "foo.com, *, bar.com",
			want: CORSConfig{
				AllowedOrigins: []string{"foo.com", "bar.com"},
				AllowAll:       true,
				MaxAge:         DefaultCORSMaxAge,
			},
		},
		{
			name:        "credentials with explicit origin",
			origins:     "https://app.example.com",
			credentials: "TRUE",
			want: CORSConfig{
				AllowedOrigins:   []string{"https://app.example.com"},
				AllowCredentials: true,
				MaxAge:           DefaultCORSMaxAge,
			},
		},
		{
			name:        "wildcard with credentials rejected",
			origins:     "*",
			credentials: "true",
			wantErr:     true,
		},
		{
			name:    "invalid max age keeps default",
			origins: "https://a.example.com",
			maxAge:  "-5",
			want: CORSConfig{
				AllowedOrigins: []string{"https://a.example.com"},
				MaxAge:         DefaultCORSMaxAge,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvCORSAllowedOrigins, tt.origins)
			t.Setenv(EnvCORSAllowCredentials, tt.credentials)
			t.Setenv(EnvCORSMaxAge, tt.maxAge)

			got, err := ParseCORSConfig(zerolog.Nop())
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCORSConfig_Enabled(t *testing.T) {
	assert.False(t, CORSConfig{}.Enabled())
	assert.True(t, CORSConfig{AllowAll: true}.Enabled())
	assert.True(t, CORSConfig{AllowedOrigins: []string{"https://a.example.com"}}.Enabled())
}
