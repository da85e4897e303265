package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
env = "local"

[log]
level = 1

[api]
base_url = "https://api.unipoint.vn"
timeout_seconds = 10

[auth]
authority = "https://id.unipoint.vn"
client_id = "unipoint-app"
redirect_url = "http://localhost:8765/callback"
storage_dir = "/tmp/unipoint"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "local", cfg.Env)
	require.Equal(t, "https://api.unipoint.vn", cfg.API.BaseURL)
	require.Equal(t, 10*time.Second, cfg.API.Timeout())
	require.Equal(t, "unipoint-app", cfg.Auth.ClientID)
}

func TestLoad_EnvOverride(t *testing.T) {
	path := writeConfig(t, `
[api]
base_url = "https://api.unipoint.vn"
`)

	t.Setenv("UNIPOINT_API_BASE_URL", "https://staging.unipoint.vn")
	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "https://staging.unipoint.vn", cfg.API.BaseURL)
}

func TestLoad_MissingBaseURL(t *testing.T) {
	path := writeConfig(t, `env = "local"`)

	_, err := Load(path)
	require.Error(t, err)
}

func TestTimeout_Default(t *testing.T) {
	require.Equal(t, 30*time.Second, APIConfigs{}.Timeout())
}
