package bot

import (
	"os"
	"strconv"
)

// Config holds responder configuration.
type Config struct {
	// ExpectedDailyHours is the assumed workload per calendar day used
	// by the forecast response to derive the month's expected total.
	ExpectedDailyHours float64
	// LogTurns enables the turn observer on stderr.
	LogTurns bool
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		ExpectedDailyHours: 8.75,
		LogTurns:           false,
	}
}

// LoadConfig reads responder configuration from environment variables,
// falling back to defaults for any unset or invalid values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("ZEITBOT_EXPECTED_DAILY_HOURS"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			cfg.ExpectedDailyHours = f
		}
	}
	if v := os.Getenv("ZEITBOT_LOG_TURNS"); v != "" {
		cfg.LogTurns, _ = strconv.ParseBool(v)
	}

	return cfg
}
