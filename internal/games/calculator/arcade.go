package calculator

import (
	"github.com/vovakirdan/minigames/internal/config"
	"github.com/vovakirdan/minigames/internal/core"
	"github.com/vovakirdan/minigames/internal/registry"
)

// Arcade drives a Calculator from typed keys: digits, operators and '='.
type Arcade struct {
	calc    *Calculator
	display string
	tape    []string
	frame   uint64
	loadErr error
}

const tapeSize = 6

// New creates an unstarted calculator.
func New() *Arcade {
	return &Arcade{}
}

func init() {
	registry.Register("calculator", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (a *Arcade) ID() string { return "calculator" }

// Title returns the display name.
func (a *Arcade) Title() string { return "Calculator" }

// Blurb returns a one-line description for menus.
func (a *Arcade) Blurb() string { return "Four-function calculator, evaluated left to right" }

// Reset loads the digit limit and clears the display.
func (a *Arcade) Reset(cfg core.RuntimeConfig) {
	cc, _, err := config.LoadCalculator(cfg.ConfigPath)
	a.loadErr = err
	if err != nil {
		cc = config.DefaultCalculatorConfig()
	}
	a.calc = NewCalculator(cc.MaxDigits)
	a.display = "0"
	a.tape = a.tape[:0]
	a.frame = 0
}

// Calculator exposes the underlying state machine.
func (a *Arcade) Calculator() *Calculator {
	return a.calc
}

// Display returns the text currently shown.
func (a *Arcade) Display() string {
	return a.display
}

// Step feeds typed characters in order, then Enter and Clear actions.
func (a *Arcade) Step(in core.InputFrame) core.StepResult {
	a.frame++
	var events []string

	for _, r := range in.Text {
		switch {
		case r >= '0' && r <= '9':
			a.display = a.calc.Digit(r)
		case r == '=':
			events = a.equals(events)
		default:
			if op, ok := ParseOperator(r); ok {
				a.display = a.calc.Operator(op)
				if a.calc.Err() {
					events = append(events, "error")
				}
			}
		}
	}
	if in.Has(core.ActionConfirm) {
		events = a.equals(events)
	}
	if in.Has(core.ActionClear) || in.Has(core.ActionRestart) {
		a.calc.Clear()
		a.display = "0"
		events = append(events, "clear")
	}

	return core.StepResult{State: a.State(), Events: events}
}

func (a *Arcade) equals(events []string) []string {
	wasPending := a.calc.Pending() != OpNone && !a.calc.newNumber
	a.display = a.calc.Equals()
	if a.calc.Err() {
		return append(events, "error")
	}
	if wasPending {
		a.tape = append(a.tape, a.display)
		if len(a.tape) > tapeSize {
			a.tape = a.tape[len(a.tape)-tapeSize:]
		}
		events = append(events, "result")
	}
	return events
}

// State is constant: the calculator has no score and never ends.
func (a *Arcade) State() core.GameState {
	return core.GameState{}
}
