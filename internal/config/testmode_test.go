package config

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestIsTestMode(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"true", true},
		{"false", false},
		{"", false},
		{"TRUE", false},
		{"1", false},
		{"yes", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv(EnvTestMode, tt.value)
			assert.Equal(t, tt.want, IsTestMode())
		})
	}
}

func TestValidateTestModeEnv(t *testing.T) {
	tests := []struct {
		value    string
		wantWarn bool
	}{
		{"", false},
		{"true", false},
		{"false", false},
		{"1", true},
		{"TRUE", true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv(EnvTestMode, tt.value)
			var buf bytes.Buffer
			ValidateTestModeEnv(zerolog.New(&buf))

			if tt.wantWarn {
				assert.Contains(t, buf.String(), "Invalid")
			} else {
				assert.Empty(t, buf.String())
			}
		})
	}
}
