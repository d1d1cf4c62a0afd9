package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the runner configuration.
// Search order: customPath -> ~/.temprun/config.yaml -> ./configs/runner.yaml
// -> embedded default. Only an explicitly requested file that cannot be read
// or parsed is an error; everything else falls through to the next source.
func Load(customPath string) (Config, error) {
	var cfg Config

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userPath := userConfigPath(); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile("configs/runner.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	if err := yaml.Unmarshal(defaultRunnerYAML, &cfg); err != nil {
		return Default(), nil
	}
	return cfg, nil
}

// userConfigPath returns the path to the user config file, or empty if the
// home directory is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".temprun", "config.yaml")
}
