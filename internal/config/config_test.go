package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("IDEABOARD_CONFIG", "")
	t.Setenv("IDEABOARD_API_URL", "")
	os.Unsetenv("IDEABOARD_API_URL")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/api", cfg.API.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.API.Timeout)
	assert.Equal(t, 50, cfg.TUI.PageSize)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("IDEABOARD_API_URL", "https://ideas.example.com/api")
	t.Setenv("IDEABOARD_API_TIMEOUT", "5s")
	t.Setenv("IDEABOARD_PAGE_SIZE", "25")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://ideas.example.com/api", cfg.API.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.API.Timeout)
	assert.Equal(t, 25, cfg.TUI.PageSize)
}

func TestLoad_YAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	body := "api:\n  base_url: https://board.internal/api\n  timeout: 10s\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	t.Setenv("IDEABOARD_CONFIG", path)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://board.internal/api", cfg.API.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.API.Timeout)
}

func TestLoad_MissingConfigFileFallsBackToEnv(t *testing.T) {
	t.Setenv("IDEABOARD_CONFIG", filepath.Join(t.TempDir(), "absent.yaml"))
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/api", cfg.API.BaseURL)
}
