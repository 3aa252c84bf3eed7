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
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.Env)
	assert.False(t, cfg.IsProd())
	assert.Equal(t, SERVER_DEFAULT_ADDRESS, cfg.Server.Address)
	assert.Equal(t, SERVER_DEFAULT_REQUEST_TIMEOUT, cfg.Server.RequestTimeout)
	assert.Equal(t, HERE_DISCOVER_ENDPOINT_BASE_V1, cfg.Here.BaseURL)
	assert.Equal(t, HERE_DISCOVER_RESULT_LIMIT, cfg.Here.ResultLimit)
	assert.Equal(t, HERE_DEFAULT_CONCURRENCY, cfg.Here.Concurrency)
	assert.Equal(t, OPENAI_DEFAULT_MODEL, cfg.OpenAI.Model)
	assert.Equal(t, NOMINATIM_DEFAULT_USER_AGENT, cfg.Nominatim.UserAgent)
	assert.Equal(t, REVIEW_DEFAULT_LANGUAGE, cfg.Review.Language)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("APP_ENV", ENV_PROD)
	t.Setenv("HERE_API_KEY", "here-key")
	t.Setenv("HERE_CONCURRENCY", "4")
	t.Setenv("OPENAI_API_KEY", "openai-key")

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.True(t, cfg.IsProd())
	assert.Equal(t, "here-key", cfg.Here.APIKey)
	assert.Equal(t, 4, cfg.Here.Concurrency)
	assert.Equal(t, "openai-key", cfg.OpenAI.APIKey)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	yaml := `
server:
  address: ":9090"
  request_timeout: 30s
here:
  result_limit: 5
review:
  language: English
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644))

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Address)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 5, cfg.Here.ResultLimit)
	assert.Equal(t, "English", cfg.Review.Language)
	assert.Equal(t, OPENAI_DEFAULT_MODEL, cfg.OpenAI.Model)
}

func TestLoad_InvalidConcurrency(t *testing.T) {
	t.Setenv("HERE_CONCURRENCY", "0")

	_, err := Load(t.TempDir())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
	assert.Contains(t, err.Error(), "Concurrency")
}

func TestLoad_InvalidLogFormat(t *testing.T) {
	t.Setenv("LOG_FORMAT", "xml")

	_, err := Load(t.TempDir())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Format")
}

func TestGetResourcePath_ResolvesFromProjectRoot(t *testing.T) {
	path := GetResourcePath(DISCOVER_RESPONSE_RESOURCE)

	_, err := os.Stat(path)
	assert.NoError(t, err)
}
