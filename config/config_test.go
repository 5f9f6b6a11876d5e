package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWithoutEnvFile(t *testing.T) {
	cfg, err := load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "development", cfg.App.Env)
	assert.True(t, cfg.IsDev())
	assert.Equal(t, "./data/nutriclinic.db", cfg.DB.Path)
	assert.Equal(t, []string{"gemini-1.5-flash", "gemini-pro"}, cfg.GenAI.Models)
	assert.Equal(t, 60*time.Second, cfg.GenAI.Timeout)
	assert.Equal(t, 24*time.Hour, cfg.Redis.TTL)
	assert.False(t, cfg.Redis.Enabled())
}

func TestLoad_ReadsEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "APP_PORT=9090\nDB_PATH=/tmp/clinic.db\nGENAI_MODELS= model-a , ,model-b\nGENAI_TIMEOUT=bogus\nREDIS_HOST=localhost\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := load(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.App.Port)
	assert.Equal(t, "/tmp/clinic.db", cfg.DB.Path)
	assert.Equal(t, []string{"model-a", "model-b"}, cfg.GenAI.Models)
	assert.Equal(t, 60*time.Second, cfg.GenAI.Timeout, "unparseable timeout falls back")
	assert.True(t, cfg.Redis.Enabled())
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("GENAI_API_KEY=from-file\n"), 0o600))
	t.Setenv("GENAI_API_KEY", "from-env")

	cfg, err := load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.GenAI.APIKey)
	assert.True(t, cfg.GenAI.Enabled())
}
