package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// snakeSpawnCells is the length of a freshly spawned snake.
const snakeSpawnCells = 3

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}

// Validate checks that every board is usable by the snake simulation.
func (c SnakeConfig) Validate() error {
	if c.CellSize <= 0 {
		return invalid("snake cell_size must be positive, got %d", c.CellSize)
	}
	if c.TickMS <= 0 {
		return invalid("snake tick_ms must be positive, got %d", c.TickMS)
	}
	if c.WinScore <= 0 {
		return invalid("snake win_score must be positive, got %d", c.WinScore)
	}
	if len(c.Boards) == 0 {
		return invalid("snake needs at least one board")
	}
	if _, err := c.Board(""); err != nil {
		return invalid("snake default_board %q is not defined", c.DefaultBoard)
	}

	seen := make(map[string]bool, len(c.Boards))
	for _, b := range c.Boards {
		if b.Name == "" {
			return invalid("snake board without a name")
		}
		if seen[b.Name] {
			return invalid("snake board %q defined twice", b.Name)
		}
		seen[b.Name] = true

		if b.Width <= 0 || b.Height <= 0 {
			return invalid("snake board %q has non-positive size %dx%d", b.Name, b.Width, b.Height)
		}
		if b.Width%c.CellSize != 0 || b.Height%c.CellSize != 0 {
			return invalid("snake board %q size %dx%d is not a multiple of cell_size %d",
				b.Name, b.Width, b.Height, c.CellSize)
		}
		cols, rows := b.Width/c.CellSize, b.Height/c.CellSize
		// The head spawns at column cols/2 with the body trailing to its left.
		if cols/2 < snakeSpawnCells-1 {
			return invalid("snake board %q is %d cells wide, need at least %d",
				b.Name, cols, 2*(snakeSpawnCells-1))
		}
		// The dot always needs a free cell until the win is reached.
		if free := cols*rows - snakeSpawnCells; c.WinScore >= free {
			return invalid("snake win_score %d must be below the %d free cells of board %q",
				c.WinScore, free, b.Name)
		}
	}
	return nil
}

// Validate checks the guessing range.
func (c HotColdConfig) Validate() error {
	if c.Min >= c.Max {
		return invalid("hotcold min (%d) must be below max (%d)", c.Min, c.Max)
	}
	return nil
}

// Validate checks the display width.
func (c CalculatorConfig) Validate() error {
	if c.MaxDigits <= 0 || c.MaxDigits > 15 {
		return invalid("calculator max_digits must be in 1..15, got %d", c.MaxDigits)
	}
	return nil
}
