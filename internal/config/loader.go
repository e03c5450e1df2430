package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// EnvConfigDir overrides the per-user config directory.
const EnvConfigDir = "MINIGAMES_CONFIG_DIR"

// Source names where a configuration came from.
type Source string

const (
	SourceCustom   Source = "custom"
	SourceUser     Source = "user"
	SourceLocal    Source = "local"
	SourceEmbedded Source = "embedded"
	SourceBuiltin  Source = "builtin"
)

type validator interface {
	Validate() error
}

// load resolves a game config.
// Search order: customPath -> user config dir -> ./configs -> embedded default -> fallback.
// Only a custom path turns read or parse failures into errors; broken files
// elsewhere are skipped like missing ones.
func load[T validator](gameID, customPath string, fallback T) (T, Source, error) {
	filename := gameID + ".yaml"

	if customPath != "" {
		var cfg T
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, SourceCustom, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, SourceCustom, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, SourceCustom, fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, SourceCustom, nil
	}

	candidates := []struct {
		path   string
		source Source
	}{
		{userConfigPath(filename), SourceUser},
		{filepath.Join("configs", filename), SourceLocal},
	}
	for _, c := range candidates {
		if c.path == "" {
			continue
		}
		if cfg, ok := parseFile[T](c.path); ok {
			return cfg, c.source, nil
		}
	}

	var cfg T
	if err := yaml.Unmarshal(GetDefaultYAML(gameID), &cfg); err == nil && cfg.Validate() == nil {
		return cfg, SourceEmbedded, nil
	}
	return fallback, SourceBuiltin, nil
}

func parseFile[T validator](path string) (T, bool) {
	var cfg T
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	if err := cfg.Validate(); err != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the per-user config file path, or empty if no home
// directory is available.
func userConfigPath(filename string) string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return filepath.Join(dir, filename)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".minigames", "configs", filename)
}

// LoadSnake loads the Snake configuration.
func LoadSnake(customPath string) (SnakeConfig, Source, error) {
	return load("snake", customPath, DefaultSnakeConfig())
}

// LoadHotCold loads the Hot/Cold configuration.
func LoadHotCold(customPath string) (HotColdConfig, Source, error) {
	return load("hotcold", customPath, DefaultHotColdConfig())
}

// LoadCalculator loads the calculator configuration.
func LoadCalculator(customPath string) (CalculatorConfig, Source, error) {
	return load("calculator", customPath, DefaultCalculatorConfig())
}

// Effective loads the config for gameID and renders it back to YAML.
func Effective(gameID, customPath string) ([]byte, Source, error) {
	var (
		cfg any
		src Source
		err error
	)
	switch gameID {
	case "snake":
		cfg, src, err = LoadSnake(customPath)
	case "hotcold":
		cfg, src, err = LoadHotCold(customPath)
	case "calculator":
		cfg, src, err = LoadCalculator(customPath)
	default:
		return nil, "", fmt.Errorf("config: no configuration for game %q", gameID)
	}
	if err != nil {
		return nil, src, err
	}
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, src, fmt.Errorf("config: cannot encode %s config: %w", gameID, err)
	}
	return out, src, nil
}
