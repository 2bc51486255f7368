package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 120*time.Minute, cfg.Session.TTL)
	assert.Equal(t, 10*time.Minute, cfg.Session.CleanupInterval)
	assert.Equal(t, "CHF", cfg.Pricing.Currency)
	assert.Equal(t, 6, cfg.Suggest.Candidates)
	assert.Equal(t, "info", cfg.Logger.Level)

	assert.InDelta(t, 3.5, cfg.Scoring.PriorMean, 1e-9)
	assert.InDelta(t, 0.5, cfg.Scoring.RatingWeight, 1e-9)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9091")
	t.Setenv("SESSION_TTL_MINUTES", "15")
	t.Setenv("PRICE_CURRENCY", "EUR")
	t.Setenv("SUGGEST_CANDIDATES", "3")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9091", cfg.Server.Port)
	assert.Equal(t, 15*time.Minute, cfg.Session.TTL)
	assert.Equal(t, "EUR", cfg.Pricing.Currency)
	assert.Equal(t, 3, cfg.Suggest.Candidates)
	assert.Equal(t, "debug", cfg.Logger.Level)
}

func TestLoadScoringOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scoring.yaml")
	content := []byte("prior_mean: 3.0\nrating_weight: 0.6\nprice_weight: 0.25\ncalories_weight: 0.15\n")
	require.NoError(t, os.WriteFile(path, content, 0o644))
	t.Setenv("SCORING_CONFIG", path)

	cfg, err := Load()
	require.NoError(t, err)

	assert.InDelta(t, 3.0, cfg.Scoring.PriorMean, 1e-9)
	assert.InDelta(t, 0.6, cfg.Scoring.RatingWeight, 1e-9)
	assert.InDelta(t, 0.25, cfg.Scoring.PriceWeight, 1e-9)
	assert.InDelta(t, 0.15, cfg.Scoring.CaloriesWeight, 1e-9)

	// Fields the file leaves out keep their defaults.
	assert.InDelta(t, 5.0, cfg.Scoring.PriorWeight, 1e-9)
	assert.InDelta(t, 4.5, cfg.Scoring.PremiumThreshold, 1e-9)
}

func TestLoadRejectsBadScoringConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scoring.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rating_weight: 0.9\n"), 0o644))
	t.Setenv("SCORING_CONFIG", path)

	// 0.9 + 0.3 + 0.2 does not sum to 1.0.
	_, err := Load()
	assert.Error(t, err)
}

func TestLoadMissingScoringFile(t *testing.T) {
	t.Setenv("SCORING_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))

	_, err := Load()
	assert.Error(t, err)
}
