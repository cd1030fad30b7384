package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const fileName = "tileswap.yaml"

// Load loads the tileswap configuration.
// Search order: customPath -> ~/.tileswap/configs/tileswap.yaml ->
// ./configs/tileswap.yaml -> embedded default -> hardcoded default.
// Only an explicit customPath can fail; broken files elsewhere are skipped.
func Load(customPath string) (TileswapConfig, error) {
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return TileswapConfig{}, err
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(fileName); userCfgPath != "" {
		if cfg, err := loadFile(userCfgPath); err == nil {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, err := loadFile(filepath.Join("configs", fileName)); err == nil {
		return cfg, nil
	}

	// Use embedded default YAML
	cfg, err := parse(defaultTileswapYAML)
	if err != nil {
		return DefaultTileswapConfig(), nil
	}
	return cfg, nil
}

func loadFile(path string) (TileswapConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return TileswapConfig{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := parse(data)
	if err != nil {
		return TileswapConfig{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// parse decodes YAML on top of the hardcoded defaults, so partial files
// only override what they name.
func parse(data []byte) (TileswapConfig, error) {
	cfg := DefaultTileswapConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return TileswapConfig{}, err
	}
	cfg.Normalize()
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tileswap", "configs", filename)
}

// WriteDefault writes the embedded default YAML to path, creating parent
// directories. An existing file is left untouched.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config: %s already exists", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: create dir: %w", err)
	}
	if err := os.WriteFile(path, defaultTileswapYAML, 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}

// UserPath returns the per-user config file location.
func UserPath() string {
	return userConfigPath(fileName)
}
