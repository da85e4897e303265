package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

type Configs struct {
	Env string `toml:"env"`

	Log  LogConfigs  `toml:"log"`
	API  APIConfigs  `toml:"api"`
	Auth AuthConfigs `toml:"auth"`
}

type LogConfigs struct {
	Level int `toml:"level"`
}

type APIConfigs struct {
	BaseURL        string `toml:"base_url"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

func (c APIConfigs) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 30 * time.Second
	}

	return time.Duration(c.TimeoutSeconds) * time.Second
}

type AuthConfigs struct {
	// Authority is the OIDC issuer URL of the identity provider.
	Authority   string `toml:"authority"`
	ClientID    string `toml:"client_id"`
	RedirectURL string `toml:"redirect_url"`

	// StorageDir holds the cached token file. The file inside is keyed as
	// oidc.user:<authority>:<client_id>, cleared on forced re-login.
	StorageDir string `toml:"storage_dir"`
}

// Load reads the TOML file at path. Secrets can be overridden through
// environment variables so they never need to live in the file.
func Load(path string) (Configs, error) {
	var cfg Configs
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Configs{}, fmt.Errorf("cannot decode config file %s: %w", path, err)
	}

	if baseURL := os.Getenv("UNIPOINT_API_BASE_URL"); baseURL != "" {
		cfg.API.BaseURL = baseURL
	}

	if authority := os.Getenv("UNIPOINT_AUTH_AUTHORITY"); authority != "" {
		cfg.Auth.Authority = authority
	}

	if clientID := os.Getenv("UNIPOINT_AUTH_CLIENT_ID"); clientID != "" {
		cfg.Auth.ClientID = clientID
	}

	if cfg.API.BaseURL == "" {
		return Configs{}, fmt.Errorf("missing api.base_url in %s", path)
	}

	return cfg, nil
}
