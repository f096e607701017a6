package cli

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the CLI's yaml configuration, read from --config or
// ~/.freeconnect.yaml when present. Flags override file values.
type Config struct {
	// APIBase is the backend base URL, e.g. "http://localhost:8080/api".
	APIBase string `yaml:"api_base"`
	// Database is the path of the local credential database. Empty means
	// the default under the user's home directory; "none" disables durable
	// storage entirely.
	Database string `yaml:"database"`
	// ServerLogout makes logout call POST /logout before clearing local
	// state.
	ServerLogout bool `yaml:"server_logout"`
}

const defaultAPIBase = "http://localhost:8080/api"

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".freeconnect.yaml")
}

func defaultDatabasePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".freeconnect", "credentials.db")
}

// loadConfig reads path if it exists. A missing file yields defaults; a
// malformed file is an error.
func loadConfig(path string) (Config, error) {
	cfg := Config{APIBase: defaultAPIBase}

	if path == "" {
		path = defaultConfigPath()
	}
	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, err
	}
	if cfg.APIBase == "" {
		cfg.APIBase = defaultAPIBase
	}
	return cfg, nil
}
