package config

import (
	"os"
	"time"

	"github.com/jmvisser/kamerdata/internal/tk"
)

// Config holds application configuration
type Config struct {
	BaseURL   string
	OutputDir string

	// Pauses between pages, to avoid overloading the API
	VotePause   time.Duration
	MotionPause time.Duration

	// Per-request timeout on the Document endpoint
	MotionTimeout time.Duration
}

// Load reads configuration from environment variables. Every value has a
// default matching the fixed constants of the analysis, so an empty
// environment reproduces the canonical run.
func Load() *Config {
	return &Config{
		BaseURL:   getEnv("TK_BASE_URL", tk.DefaultBaseURL),
		OutputDir: getEnv("OUTPUT_DIR", "data"),

		VotePause:   getDuration("TK_VOTE_PAUSE", 100*time.Millisecond),
		MotionPause: getDuration("TK_MOTION_PAUSE", 200*time.Millisecond),

		MotionTimeout: getDuration("TK_MOTION_TIMEOUT", 60*time.Second),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
