package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "heuristic", cfg.Gemini.Strategy)
	assert.Equal(t, "gemini-1.5-flash", cfg.Gemini.Model)
	assert.Equal(t, 1000, cfg.Gemini.CallDelayMS)
	assert.Equal(t, "invoices", cfg.Storage.Bucket)
	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.False(t, cfg.Database.Enabled)
	assert.Empty(t, cfg.Lookup.URL)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("SERVER_PORT", "9001")
	t.Setenv("GEMINI_STRATEGY", "assisted")
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("LOOKUP_URL", "http://localhost:9999/table.json")
	t.Setenv("DATABASE_ENABLED", "true")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "9001", cfg.Server.Port)
	assert.Equal(t, "assisted", cfg.Gemini.Strategy)
	assert.Equal(t, "test-key", cfg.Gemini.APIKey)
	assert.Equal(t, "http://localhost:9999/table.json", cfg.Lookup.URL)
	assert.True(t, cfg.Database.Enabled)
}
