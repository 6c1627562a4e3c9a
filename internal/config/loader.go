package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadBarrage loads the configuration for a barrage variant.
// Search order: customPath -> ~/.barrage/configs/<variant>.yaml -> ./configs/<variant>.yaml -> embedded default.
// Files only need to set the keys they change; everything else keeps the variant default.
func LoadBarrage(customPath, variant string) (BarrageConfig, error) {
	base, ok := Default(variant)
	if !ok {
		return BarrageConfig{}, fmt.Errorf("config: unknown variant %q", variant)
	}

	// Try custom path first
	if customPath != "" {
		cfg := base
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	filename := variant + ".yaml"

	// Try user config directory, then the local configs directory
	for _, path := range []string{userConfigPath(filename), filepath.Join("configs", filename)} {
		if path == "" {
			continue
		}
		if cfg, ok := tryLoad(path, base); ok {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg := base
	if err := yaml.Unmarshal(GetDefaultYAML(variant), &cfg); err != nil || cfg.Validate() != nil {
		return base, nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tryLoad reads an optional config file; unreadable or invalid files are skipped.
func tryLoad(path string, base BarrageConfig) (BarrageConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, false
	}
	cfg := base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return base, false
	}
	if err := cfg.Validate(); err != nil {
		return base, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".barrage", "configs", filename)
}
