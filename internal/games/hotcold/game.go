// Package hotcold implements a number guessing game: each miss is judged
// hot or cold against the previous guess's distance to the target.
package hotcold

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrNotANumber is returned for guesses that are not integers.
var ErrNotANumber = errors.New("hotcold: guess is not a number")

// RangeError reports a guess outside [Min, Max].
type RangeError struct {
	Guess    int
	Min, Max int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("hotcold: guess %d must be between %d and %d", e.Guess, e.Min, e.Max)
}

// Message returns the player-facing text for a Validate or Check error.
func Message(err error) string {
	var rangeErr *RangeError
	switch {
	case errors.As(err, &rangeErr):
		return fmt.Sprintf("Guess must be between %d and %d", rangeErr.Min, rangeErr.Max)
	case errors.Is(err, ErrNotANumber):
		return "Please enter a valid number"
	case err != nil:
		return err.Error()
	}
	return ""
}

// Feedback is the verdict for a valid guess.
type Feedback int

const (
	FeedbackStart  Feedback = iota // first miss, nothing to compare with
	FeedbackHot                    // closer than the previous guess
	FeedbackCold                   // same distance or farther
	FeedbackWinner                 // exact hit
)

func (f Feedback) String() string {
	switch f {
	case FeedbackStart:
		return "Start guessing!"
	case FeedbackHot:
		return "hot"
	case FeedbackCold:
		return "cold"
	case FeedbackWinner:
		return "WINNER"
	default:
		return "unknown"
	}
}

// Rand is the random source for target selection.
type Rand interface {
	Intn(n int) int
}

// Game holds the target and the distance of the last miss.
type Game struct {
	min, max int
	rng      Rand

	target   int
	prevDist int
	hasPrev  bool
	guesses  int
	won      bool
}

// NewGame creates a game with a target drawn from [lo, hi].
func NewGame(lo, hi int, rng Rand) *Game {
	g := &Game{min: lo, max: hi, rng: rng}
	g.Reset()
	return g
}

// Reset draws a new target and forgets all previous guesses.
func (g *Game) Reset() {
	g.target = g.min + g.rng.Intn(g.max-g.min+1)
	g.prevDist = 0
	g.hasPrev = false
	g.guesses = 0
	g.won = false
}

// Validate parses guess and checks it is within range.
func (g *Game) Validate(guess string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(guess))
	if err != nil {
		return 0, ErrNotANumber
	}
	if n < g.min || n > g.max {
		return 0, &RangeError{Guess: n, Min: g.min, Max: g.max}
	}
	return n, nil
}

// Check judges a guess. Invalid guesses return an error and do not count.
func (g *Game) Check(guess string) (Feedback, error) {
	n, err := g.Validate(guess)
	if err != nil {
		return 0, err
	}
	g.guesses++

	if n == g.target {
		g.won = true
		return FeedbackWinner, nil
	}

	dist := abs(n - g.target)
	fb := FeedbackCold
	switch {
	case !g.hasPrev:
		fb = FeedbackStart
	case dist < g.prevDist:
		fb = FeedbackHot
	}
	g.prevDist = dist
	g.hasPrev = true
	return fb, nil
}

// Target returns the number to guess.
func (g *Game) Target() int { return g.target }

// Guesses returns the number of valid guesses since Reset.
func (g *Game) Guesses() int { return g.guesses }

// Won reports whether the target has been hit.
func (g *Game) Won() bool { return g.won }

// Min returns the lowest valid guess.
func (g *Game) Min() int { return g.min }

// Max returns the highest valid guess.
func (g *Game) Max() int { return g.max }

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
