package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"ADDRESS", "GEMINI_API_KEY", "DEFAULT_MODEL", "MAX_IMAGE_BYTES", "LOG_LEVEL"} {
		t.Setenv(key, "") // register restore
		os.Unsetenv(key)
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Address)
	assert.Equal(t, "models/gemini-1.5-flash", cfg.DefaultModel)
	assert.Equal(t, int64(5<<20), cfg.MaxImageBytes)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_ReadsEnvironment(t *testing.T) {
	t.Setenv("ADDRESS", ":9090")
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("DEFAULT_MODEL", "models/gemini-1.5-pro")
	t.Setenv("MAX_IMAGE_BYTES", "1048576")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Address)
	assert.Equal(t, "test-key", cfg.GeminiAPIKey)
	assert.Equal(t, "models/gemini-1.5-pro", cfg.DefaultModel)
	assert.Equal(t, int64(1<<20), cfg.MaxImageBytes)
}
