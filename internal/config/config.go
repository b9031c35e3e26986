// Package config loads and validates application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:5173"] (Vite dev server).
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// OpenAIAPIKey authenticates the AI gateway. Required.
	OpenAIAPIKey string

	// OpenAIBaseURL overrides the AI endpoint (e.g. a proxy or a test
	// fake). Empty means the provider default.
	OpenAIBaseURL string

	// Model names per AI call. The optimizer defaults to the heavyweight
	// reasoning model; generation and recommendations to the fast one.
	GenerationModel     string
	RecommendationModel string
	OptimizationModel   string

	// SessionTTL is how long an untouched planning session survives before
	// its trip is evicted. Defaults to 2h.
	SessionTTL time.Duration

	// OfferLatency is the simulated network delay of the mock hotel-offer
	// backend. Defaults to 800ms.
	OfferLatency time.Duration
}

// Load reads configuration from environment variables and returns a Config.
// Returns an error listing any required variables that are not set.
func Load() (Config, error) {
	cfg := Config{
		Port:                getEnv("PORT", "8080"),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
		CORSOrigins:         splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173")),
		OpenAIBaseURL:       os.Getenv("OPENAI_BASE_URL"),
		GenerationModel:     getEnv("GENERATION_MODEL", "gpt-5-mini"),
		RecommendationModel: getEnv("RECOMMENDATION_MODEL", "gpt-5-mini"),
		OptimizationModel:   getEnv("OPTIMIZATION_MODEL", "gpt-5"),
	}

	var err error
	if cfg.SessionTTL, err = getDuration("SESSION_TTL", 2*time.Hour); err != nil {
		return Config{}, err
	}
	if cfg.OfferLatency, err = getDuration("OFFER_LATENCY", 800*time.Millisecond); err != nil {
		return Config{}, err
	}

	var missing []string

	cfg.OpenAIAPIKey = os.Getenv("OPENAI_API_KEY")
	if cfg.OpenAIAPIKey == "" {
		missing = append(missing, "OPENAI_API_KEY")
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("required environment variables not set: %s", strings.Join(missing, ", "))
	}

	return cfg, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// getDuration parses the environment variable named by key as a Go duration
// string ("90s", "2h"), or returns fallback when unset or empty.
func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
