package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

//go:embed defaults/hotcold.yaml
var defaultHotColdYAML []byte

//go:embed defaults/calculator.yaml
var defaultCalculatorYAML []byte

// DefaultSnakeConfig returns the built-in Snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		CellSize:     20,
		WinScore:     20,
		TickMS:       100,
		DefaultBoard: "classic",
		Boards: []BoardPreset{
			{Name: "classic", Title: "Classic (30x20)", Width: 600, Height: 400},
			{Name: "small", Title: "Small (15x10)", Width: 300, Height: 200},
			{Name: "square", Title: "Square (20x20)", Width: 400, Height: 400},
		},
	}
}

// DefaultHotColdConfig returns the built-in Hot/Cold configuration.
func DefaultHotColdConfig() HotColdConfig {
	return HotColdConfig{Min: 1, Max: 100}
}

// DefaultCalculatorConfig returns the built-in calculator configuration.
func DefaultCalculatorConfig() CalculatorConfig {
	return CalculatorConfig{MaxDigits: 10}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "snake":
		return defaultSnakeYAML
	case "hotcold":
		return defaultHotColdYAML
	case "calculator":
		return defaultCalculatorYAML
	default:
		return nil
	}
}
