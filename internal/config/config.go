// Package config provides YAML-based game configuration loading and
// validation for the minigames platform.
package config

import "fmt"

// SnakeConfig contains all configuration for the Snake game.
type SnakeConfig struct {
	CellSize     int           `yaml:"cell_size"`
	WinScore     int           `yaml:"win_score"`
	TickMS       int           `yaml:"tick_ms"` // Wall-clock interval between snake moves
	DefaultBoard string        `yaml:"default_board"`
	Boards       []BoardPreset `yaml:"boards"`
}

// BoardPreset is a named board size, in the same units as CellSize.
type BoardPreset struct {
	Name   string `yaml:"name"`
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// Board returns the preset with the given name. An empty name selects
// DefaultBoard.
func (c SnakeConfig) Board(name string) (BoardPreset, error) {
	if name == "" {
		name = c.DefaultBoard
	}
	for _, b := range c.Boards {
		if b.Name == name {
			return b, nil
		}
	}
	return BoardPreset{}, fmt.Errorf("config: unknown snake board %q", name)
}

// HotColdConfig contains configuration for the Hot/Cold guessing game.
type HotColdConfig struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// CalculatorConfig contains configuration for the calculator.
type CalculatorConfig struct {
	MaxDigits int `yaml:"max_digits"`
}
