package treeforge

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// ConfigFile is looked up in the working directory.
const ConfigFile = ".treeforge.toml"

// Config are the file-configurable defaults. Flags override all of them.
type Config struct {
	Marker    string            `toml:"marker"`    // comment marker, default "#"
	Unit      int               `toml:"unit"`      // indent unit override, 0 = auto
	GitInit   bool              `toml:"git_init"`  // init a git repo in the generated root
	Templates map[string]string `toml:"templates"` // extension -> starter content overrides
	NoColor   bool              `toml:"no_color"`  // disable styled preview
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{Marker: "#"}
}

// LoadConfig reads path, falling back to defaults when the file does not
// exist. A present-but-broken config is an error, not a silent default.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if cfg.Marker == "" {
		cfg.Marker = "#"
	}
	return cfg, nil
}
