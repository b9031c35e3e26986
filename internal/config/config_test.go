package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voyageai/backend/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "test-key")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.CORSOrigins)
	assert.Equal(t, "test-key", cfg.OpenAIAPIKey)
	assert.Empty(t, cfg.OpenAIBaseURL)
	assert.Equal(t, "gpt-5-mini", cfg.GenerationModel)
	assert.Equal(t, "gpt-5-mini", cfg.RecommendationModel)
	assert.Equal(t, "gpt-5", cfg.OptimizationModel)
	assert.Equal(t, 2*time.Hour, cfg.SessionTTL)
	assert.Equal(t, 800*time.Millisecond, cfg.OfferLatency)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "test-key")
	t.Setenv("PORT", "9999")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CORS_ORIGINS", "https://app.example.com, https://staging.example.com")
	t.Setenv("OPENAI_BASE_URL", "http://localhost:4000/v1/")
	t.Setenv("OPTIMIZATION_MODEL", "gpt-5-pro")
	t.Setenv("SESSION_TTL", "30m")
	t.Setenv("OFFER_LATENCY", "0s")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "9999", cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, []string{"https://app.example.com", "https://staging.example.com"}, cfg.CORSOrigins)
	assert.Equal(t, "http://localhost:4000/v1/", cfg.OpenAIBaseURL)
	assert.Equal(t, "gpt-5-pro", cfg.OptimizationModel)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
	assert.Equal(t, time.Duration(0), cfg.OfferLatency)
}

func TestLoad_MissingAPIKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	_, err := config.Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "OPENAI_API_KEY")
}

func TestLoad_InvalidDuration(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "test-key")
	t.Setenv("SESSION_TTL", "soon")

	_, err := config.Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "SESSION_TTL")
}
