// Package snake implements the tick-driven Snake simulation: a snake that
// moves one cell per tick on a fixed board, grows by eating a dot, and ends
// the game on wall or self collision or when the target score is reached.
//
// Positions are in board units (pixels of a 600x400 window by default), always a
// multiple of the board's cell size. Rendering, input and timing live in the
// platform layer, which drives Game through Arcade.
package snake

import "fmt"

// Direction is the snake's heading.
type Direction int

const (
	Right Direction = iota
	Down
	Left
	Up
)

// Opposite returns the 180 degree reverse of d.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "UP"
	case Down:
		return "DOWN"
	case Left:
		return "LEFT"
	case Right:
		return "RIGHT"
	default:
		return "UNKNOWN"
	}
}

// ParseDirection converts "UP", "DOWN", "LEFT" or "RIGHT" into a Direction.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "UP", "up":
		return Up, nil
	case "DOWN", "down":
		return Down, nil
	case "LEFT", "left":
		return Left, nil
	case "RIGHT", "right":
		return Right, nil
	}
	return 0, fmt.Errorf("snake: unknown direction %q", s)
}

// Position is a grid-aligned point on the board.
type Position struct {
	X, Y int
}

// Offset returns the position one step away in direction d.
func (p Position) Offset(d Direction, step int) Position {
	switch d {
	case Up:
		return Position{X: p.X, Y: p.Y - step}
	case Down:
		return Position{X: p.X, Y: p.Y + step}
	case Left:
		return Position{X: p.X - step, Y: p.Y}
	default:
		return Position{X: p.X + step, Y: p.Y}
	}
}

// Board is the playing field: Width x Height units split into square cells.
// Dimensions are not validated here; config.SnakeConfig.Validate does that.
type Board struct {
	Width    int
	Height   int
	CellSize int
}

// Cols returns the number of cell columns.
func (b Board) Cols() int { return b.Width / b.CellSize }

// Rows returns the number of cell rows.
func (b Board) Rows() int { return b.Height / b.CellSize }

// Cells returns the total number of cells.
func (b Board) Cells() int { return b.Cols() * b.Rows() }

// Contains reports whether p lies inside [0, Width) x [0, Height).
func (b Board) Contains(p Position) bool {
	return p.X >= 0 && p.X < b.Width && p.Y >= 0 && p.Y < b.Height
}

// Center returns the grid-aligned center cell.
func (b Board) Center() Position {
	return Position{
		X: b.Cols() / 2 * b.CellSize,
		Y: b.Rows() / 2 * b.CellSize,
	}
}

// Cell converts a position to column/row indices.
func (b Board) Cell(p Position) (col, row int) {
	return p.X / b.CellSize, p.Y / b.CellSize
}
