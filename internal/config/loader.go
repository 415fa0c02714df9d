package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the game configuration.
// Search order: customPath -> ~/.invaders/config.yaml -> ./configs/invaders.yaml -> embedded default
//
// Files are decoded over the defaults, so a file only needs the keys it
// changes.
func Load(customPath string) (Config, error) {
	base := embeddedDefault()

	// Try custom path first
	if customPath != "" {
		cfg := base
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := decode(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then the local configs directory
	for _, path := range []string{userConfigPath("config.yaml"), filepath.Join("configs", "invaders.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		cfg := base
		if err := decode(data, &cfg); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	return base, nil
}

// embeddedDefault parses the embedded YAML, falling back to the hardcoded
// config if it is broken.
func embeddedDefault() Config {
	cfg := DefaultConfig()
	if err := decode(defaultInvadersYAML, &cfg); err != nil {
		return DefaultConfig()
	}
	return cfg
}

// decode unmarshals data over cfg. Maps are copied first so the overlay
// never writes into a shared default.
func decode(data []byte, cfg *Config) error {
	cfg.Palette = cloneMap(cfg.Palette)
	cfg.Audio.Effects = cloneMap(cfg.Audio.Effects)
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return err
	}
	cfg.Keys.normalize()
	return nil
}

func (k *KeysConfig) normalize() {
	for _, keys := range []*[]string{&k.Left, &k.Right, &k.Shoot, &k.Pierce, &k.Confirm, &k.Quit} {
		for i, name := range *keys {
			if name == "space" {
				(*keys)[i] = " "
			}
		}
	}
}

func cloneMap[V any](m map[string]V) map[string]V {
	out := make(map[string]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".invaders", filename)
}
