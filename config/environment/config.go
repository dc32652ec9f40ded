package environment

import (
	"errors"
	"os"
	"strconv"
	"time"
)

// Config holds the process-wide settings, read once at startup and never
// mutated afterwards.
type Config struct {
	OpenAIKey       string
	OpenAIBaseURL   string
	Port            string
	UpstreamTimeout time.Duration
	UpstreamRetries int
}

// Load builds the configuration from environment variables. The OpenAI API
// key is mandatory; everything else falls back to a default.
func Load() (*Config, error) {
	key := os.Getenv("OPENAI_API_KEY")
	if key == "" {
		return nil, errors.New("OPENAI_API_KEY environment variable is missing")
	}

	cfg := &Config{
		OpenAIKey:       key,
		OpenAIBaseURL:   os.Getenv("OPENAI_BASE_URL"),
		Port:            os.Getenv("PORT"),
		UpstreamTimeout: 30 * time.Second,
		UpstreamRetries: 2,
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if v := os.Getenv("UPSTREAM_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.UpstreamTimeout = time.Duration(n) * time.Second
		}
	}
	if v := os.Getenv("UPSTREAM_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.UpstreamRetries = n
		}
	}

	return cfg, nil
}
