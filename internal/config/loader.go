package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the configuration file looked up in the search path.
const FileName = "blockfall.yaml"

// Load returns the game configuration. A custom path must exist and parse.
// Otherwise the first readable file among ~/.blockfall/configs/blockfall.yaml
// and ./configs/blockfall.yaml wins, then the embedded default YAML, then
// the hardcoded default. Files are decoded over the defaults, so a partial
// file only overrides the keys it sets.
func Load(customPath string) (GameConfig, error) {
	if customPath != "" {
		return loadFile(customPath)
	}

	for _, path := range searchPaths() {
		if cfg, err := loadFile(path); err == nil {
			return cfg, nil
		}
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return DefaultConfig(), nil
	}
	return cfg, nil
}

func loadFile(path string) (GameConfig, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

func searchPaths() []string {
	var paths []string
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".blockfall", "configs", FileName))
	}
	return append(paths, filepath.Join("configs", FileName))
}

// Marshal renders the configuration as YAML.
func Marshal(cfg GameConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}
