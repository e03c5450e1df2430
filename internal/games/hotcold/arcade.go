package hotcold

import (
	"math/rand"
	"strconv"
	"unicode"

	"github.com/vovakirdan/minigames/internal/config"
	"github.com/vovakirdan/minigames/internal/core"
	"github.com/vovakirdan/minigames/internal/registry"
)

const historySize = 8

// guess is one submitted guess and its verdict.
type guess struct {
	value    int
	feedback Feedback
}

// Arcade is the terminal front end: digits go into an entry line, Enter
// submits it, and the last few verdicts are listed under it.
type Arcade struct {
	game    *Game
	rng     *rand.Rand
	entry   []rune
	maxLen  int
	message string
	msgErr  bool
	history []guess
	frame   uint64
	loadErr error
}

// New creates an unstarted Hot/Cold game.
func New() *Arcade {
	return &Arcade{}
}

func init() {
	registry.Register("hotcold", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (a *Arcade) ID() string { return "hotcold" }

// Title returns the display name.
func (a *Arcade) Title() string { return "Hot/Cold" }

// Blurb returns a one-line description for menus.
func (a *Arcade) Blurb() string { return "Guess the number; each miss is hotter or colder" }

// Reset loads the range and draws a target.
func (a *Arcade) Reset(cfg core.RuntimeConfig) {
	hc, _, err := config.LoadHotCold(cfg.ConfigPath)
	a.loadErr = err
	if err != nil {
		hc = config.DefaultHotColdConfig()
	}

	a.rng = rand.New(rand.NewSource(cfg.Seed))
	a.game = NewGame(hc.Min, hc.Max, a.rng)
	a.maxLen = max(len(strconv.Itoa(hc.Min)), len(strconv.Itoa(hc.Max)))
	a.frame = 0
	a.restart()
}

func (a *Arcade) restart() {
	a.game.Reset()
	a.entry = a.entry[:0]
	a.history = a.history[:0]
	a.message = FeedbackStart.String()
	a.msgErr = false
}

// Game exposes the underlying game logic.
func (a *Arcade) Game() *Game {
	return a.game
}

// Entry returns the text typed so far.
func (a *Arcade) Entry() string {
	return string(a.entry)
}

// Message returns the current verdict or error text.
func (a *Arcade) Message() string {
	return a.message
}

// Step applies typed digits and editing actions, submitting on Confirm.
func (a *Arcade) Step(in core.InputFrame) core.StepResult {
	a.frame++
	var events []string

	if a.game.Won() {
		if in.Has(core.ActionRestart) || in.Has(core.ActionConfirm) {
			a.restart()
			events = append(events, "restart")
		}
		return core.StepResult{State: a.State(), Events: events}
	}

	for _, r := range in.Text {
		if (unicode.IsDigit(r) || (r == '-' && len(a.entry) == 0)) && len(a.entry) < a.maxLen+1 {
			a.entry = append(a.entry, r)
		}
	}
	if in.Has(core.ActionBackspace) && len(a.entry) > 0 {
		a.entry = a.entry[:len(a.entry)-1]
	}
	if in.Has(core.ActionClear) {
		a.entry = a.entry[:0]
	}
	if in.Has(core.ActionConfirm) && len(a.entry) > 0 {
		if ev := a.submit(); ev != "" {
			events = append(events, ev)
		}
	}

	return core.StepResult{State: a.State(), Events: events}
}

// submit checks the entry line and returns an event name.
func (a *Arcade) submit() string {
	text := string(a.entry)
	a.entry = a.entry[:0]

	fb, err := a.game.Check(text)
	if err != nil {
		a.message = Message(err)
		a.msgErr = true
		return "invalid"
	}

	n, _ := strconv.Atoi(text)
	a.history = append(a.history, guess{value: n, feedback: fb})
	if len(a.history) > historySize {
		a.history = a.history[len(a.history)-historySize:]
	}
	a.msgErr = false
	if fb == FeedbackWinner {
		a.message = "WINNER! The number was " + strconv.Itoa(a.game.Target())
		return "won"
	}
	a.message = fb.String()
	return "guess:" + fb.String()
}

// State reports the guess count as the score; a win ends the round.
func (a *Arcade) State() core.GameState {
	if a.game == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    a.game.Guesses(),
		GameOver: a.game.Won(),
	}
}
