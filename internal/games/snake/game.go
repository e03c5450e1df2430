package snake

import (
	"errors"
	"math/rand"
	"time"
)

// State is the game's lifecycle state.
type State int

const (
	StatePaused State = iota
	StateRunning
	StateGameOver
	StateWon
)

func (s State) String() string {
	switch s {
	case StatePaused:
		return "PAUSED"
	case StateRunning:
		return "RUNNING"
	case StateGameOver:
		return "GAME_OVER"
	case StateWon:
		return "WON"
	default:
		return "UNKNOWN"
	}
}

// Terminal reports whether the state only leaves via Start.
func (s State) Terminal() bool {
	return s == StateGameOver || s == StateWon
}

// Event describes what a single Update did.
type Event int

const (
	EventNone     Event = iota // not running, nothing happened
	EventMoved                 // plain move
	EventAte                   // dot eaten, game continues
	EventCollided              // wall or self collision, game over
	EventWon                   // dot eaten and win score reached
)

func (e Event) String() string {
	switch e {
	case EventNone:
		return "none"
	case EventMoved:
		return "moved"
	case EventAte:
		return "ate"
	case EventCollided:
		return "collided"
	case EventWon:
		return "won"
	default:
		return "unknown"
	}
}

// Options configures a Game.
type Options struct {
	Board    Board
	WinScore int
	// Rand places the dot. Nil means a time-seeded source.
	Rand Rand
}

// Game owns one Snake, one Dot, the score and the state machine.
// It advances by exactly one cell per Update call.
type Game struct {
	board    Board
	winScore int
	rng      Rand

	snake *Snake
	dot   *Dot
	score int
	state State
}

// NewGame creates a paused game with a fresh snake and dot.
func NewGame(opts Options) *Game {
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	g := &Game{
		board:    opts.Board,
		winScore: opts.WinScore,
		rng:      opts.Rand,
		snake:    NewSnake(opts.Board),
		dot:      NewDot(opts.Board, opts.Rand),
		state:    StatePaused,
	}
	//nolint:errcheck // a full board is caught again by Start
	g.dot.Reposition(g.snake.segments)
	return g
}

// Start resets snake, dot and score and begins running. Valid from any state.
func (g *Game) Start() {
	g.snake = NewSnake(g.board)
	g.dot = NewDot(g.board, g.rng)
	g.score = 0
	g.state = StateRunning
	if err := g.dot.Reposition(g.snake.segments); err != nil {
		// A board no larger than the snake has nothing to eat.
		g.state = StateWon
	}
}

// Update advances one tick. It is a no-op unless the game is running.
func (g *Game) Update() Event {
	if g.state != StateRunning {
		return EventNone
	}

	g.snake.Move()
	if g.snake.CheckCollision() {
		g.state = StateGameOver
		return EventCollided
	}

	if g.snake.Head() != g.dot.Position() {
		return EventMoved
	}

	g.score++
	g.snake.Grow()
	err := g.dot.Reposition(g.snake.segments)
	if errors.Is(err, ErrBoardFull) || g.score >= g.winScore {
		g.state = StateWon
		return EventWon
	}
	return EventAte
}

// ChangeDirection steers the snake; ignored unless running.
func (g *Game) ChangeDirection(d Direction) {
	if g.state == StateRunning {
		g.snake.ChangeDirection(d)
	}
}

// TogglePause switches between running and paused. Terminal states are kept.
func (g *Game) TogglePause() {
	switch g.state {
	case StateRunning:
		g.state = StatePaused
	case StatePaused:
		g.state = StateRunning
	}
}

// Snake returns the current snake.
func (g *Game) Snake() *Snake { return g.snake }

// Dot returns the current dot.
func (g *Game) Dot() *Dot { return g.dot }

// Score returns the number of dots eaten since Start.
func (g *Game) Score() int { return g.score }

// State returns the lifecycle state.
func (g *Game) State() State { return g.state }

// Board returns the board dimensions.
func (g *Game) Board() Board { return g.board }

// WinScore returns the score that ends the game with a win.
func (g *Game) WinScore() int { return g.winScore }
