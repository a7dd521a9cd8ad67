package config

import (
	"os"

	"github.com/rs/zerolog"
)

// EnvTestMode enables verbose request logging when set to exactly "true".
const EnvTestMode = EnvPrefix + "TEST_MODE"

// IsTestMode reports whether test mode is enabled.
// Only the exact string "true" enables it.
func IsTestMode() bool {
	return os.Getenv(EnvTestMode) == "true"
}

// ValidateTestModeEnv warns when the test mode variable holds a value other
// than "true", "false" or empty. Such values are treated as disabled.
func ValidateTestModeEnv(logger zerolog.Logger) {
	val := os.Getenv(EnvTestMode)
	if val != "" && val != "true" && val != "false" {
		logger.Warn().
			Str("env_var", EnvTestMode).
			Str("value", val).
			Msg("Invalid " + EnvTestMode + " value; treating as disabled")
	}
}
