package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	path := writeConfig(t, `
auth:
  jwt_secret: test-secret
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, SourceStatic, cfg.Catalog.Source)
	assert.Equal(t, ProviderMock, cfg.Auth.Provider)
	assert.Equal(t, "168h", cfg.Session.TokenTTL)
	assert.Equal(t, "75s", cfg.Session.PendingTTL)
	assert.Equal(t, "60s", cfg.Session.ResendCooldown)
	assert.False(t, cfg.IsProduction())
}

func TestLoadConfig_YAMLOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
server:
  port: "9090"
  mode: production
auth:
  jwt_secret: test-secret
logging:
  level: debug
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadConfig_EnvOverridesYAML(t *testing.T) {
	path := writeConfig(t, `
server:
  port: "9090"
auth:
  jwt_secret: test-secret
`)
	t.Setenv("SERVER_PORT", "7070")
	t.Setenv("CATALOG_SOURCE", "static")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "7070", cfg.Server.Port)
}

func TestLoadConfig_MockProviderNeedsSecret(t *testing.T) {
	path := writeConfig(t, `
auth:
  provider: mock
`)

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfig_APIVariantsNeedBaseURLs(t *testing.T) {
	path := writeConfig(t, `
catalog:
  source: api
auth:
  jwt_secret: test-secret
`)
	_, err := LoadConfig(path)
	assert.Error(t, err, "api catalog source requires a base URL")

	path = writeConfig(t, `
auth:
  provider: api
`)
	_, err = LoadConfig(path)
	assert.Error(t, err, "api auth provider requires a base URL")
}

func TestLoadConfig_RejectsUnknownVariants(t *testing.T) {
	path := writeConfig(t, `
catalog:
  source: database
auth:
  jwt_secret: test-secret
`)

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfig_BadDuration(t *testing.T) {
	path := writeConfig(t, `
auth:
  jwt_secret: test-secret
session:
  token_ttl: sometimes
`)

	_, err := LoadConfig(path)
	assert.Error(t, err)
}
