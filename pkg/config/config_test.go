package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
app:
  env: test
  port: "9000"
  service_name: api_gateway
backend:
  query_url: http://rag:5000/query
directory:
  address: directory:9090
  lookup_timeout_ms: 250
`

// inTempConfigDir writes files under ./config/<service> in a fresh working
// directory.
func inTempConfigDir(t *testing.T, service string, files map[string]string) {
	t.Helper()

	dir := t.TempDir()
	cfgDir := filepath.Join(dir, "config", service)
	require.NoError(t, os.MkdirAll(cfgDir, 0o755))
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(cfgDir, name), []byte(content), 0o644))
	}
	t.Chdir(dir)
}

func TestInit_ReadsFileAndDefaults(t *testing.T) {
	inTempConfigDir(t, "api_gateway", map[string]string{"config.yaml": sampleConfig})

	var cfg ServiceConfig
	used, err := Init("", "api_gateway", &cfg)

	require.NoError(t, err)
	assert.Contains(t, used, "config.yaml")
	assert.Equal(t, "9000", cfg.App.Port)
	assert.Equal(t, "http://rag:5000/query", cfg.Backend.QueryURL)
	assert.Equal(t, 250*time.Millisecond, cfg.GetDirectoryLookupTimeout())
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, 30*time.Second, cfg.GetShutdownTimeout())
}

func TestInit_EnvSpecificFile(t *testing.T) {
	inTempConfigDir(t, "api_gateway", map[string]string{
		"config.yaml":      sampleConfig,
		"config.prod.yaml": "app:\n  port: \"80\"\n",
	})

	var cfg ServiceConfig
	used, err := Init("prod", "api_gateway", &cfg)

	require.NoError(t, err)
	assert.Contains(t, used, "config.prod.yaml")
	assert.Equal(t, "80", cfg.App.Port)
}

func TestInit_EnvironmentOverride(t *testing.T) {
	inTempConfigDir(t, "api_gateway", map[string]string{"config.yaml": sampleConfig})
	t.Setenv("BACKEND_QUERY_URL", "http://override/query")

	var cfg ServiceConfig
	_, err := Init("", "api_gateway", &cfg)

	require.NoError(t, err)
	assert.Equal(t, "http://override/query", cfg.Backend.QueryURL)
}

func TestInit_MissingFile(t *testing.T) {
	inTempConfigDir(t, "api_gateway", nil)

	var cfg ServiceConfig
	_, err := Init("staging", "api_gateway", &cfg)

	assert.Error(t, err)
}
