package hotcold

import (
	"slices"
	"strconv"
	"strings"
	"testing"

	"github.com/vovakirdan/minigames/internal/config"
	"github.com/vovakirdan/minigames/internal/core"
)

func newTestArcade(t *testing.T) *Arcade {
	t.Helper()
	t.Setenv(config.EnvConfigDir, t.TempDir())
	a := New()
	a.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 9})
	return a
}

// typeGuess types text and presses Enter in a single frame.
func typeGuess(a *Arcade, text string) core.StepResult {
	in := core.NewInputFrame()
	for _, r := range text {
		in.Type(r)
	}
	in.Set(core.ActionConfirm)
	return a.Step(in)
}

func TestArcadeEntryEditing(t *testing.T) {
	a := newTestArcade(t)

	in := core.NewInputFrame()
	for _, r := range "4x2" {
		in.Type(r)
	}
	a.Step(in)
	if a.Entry() != "42" {
		t.Fatalf("Entry() = %q, expected 42", a.Entry())
	}

	a.Step(frame(core.ActionBackspace))
	if a.Entry() != "4" {
		t.Errorf("Entry() after backspace = %q, expected 4", a.Entry())
	}

	a.Step(frame(core.ActionClear))
	if a.Entry() != "" {
		t.Errorf("Entry() after clear = %q, expected empty", a.Entry())
	}
}

func TestArcadeEntryLengthCap(t *testing.T) {
	a := newTestArcade(t)

	in := core.NewInputFrame()
	for _, r := range "123456" {
		in.Type(r)
	}
	a.Step(in)

	if a.Entry() != "1234" {
		t.Errorf("Entry() = %q, expected 1234", a.Entry())
	}
}

func TestArcadeInvalidGuess(t *testing.T) {
	a := newTestArcade(t)

	res := typeGuess(a, "500")
	if !slices.Contains(res.Events, "invalid") {
		t.Errorf("Events = %v, expected invalid", res.Events)
	}
	if a.Message() != "Guess must be between 1 and 100" {
		t.Errorf("Message() = %q", a.Message())
	}
	if a.State().Score != 0 {
		t.Errorf("Score = %d, invalid guesses must not count", a.State().Score)
	}
	if a.Entry() != "" {
		t.Errorf("Entry() = %q, expected cleared after submit", a.Entry())
	}
}

func TestArcadePlayToWin(t *testing.T) {
	a := newTestArcade(t)
	target := a.Game().Target()

	miss := 1
	if target == 1 {
		miss = 2
	}
	res := typeGuess(a, strconv.Itoa(miss))
	if !slices.Contains(res.Events, "guess:Start guessing!") {
		t.Errorf("Events = %v, expected first verdict", res.Events)
	}

	res = typeGuess(a, strconv.Itoa(target))
	if !slices.Contains(res.Events, "won") {
		t.Fatalf("Events = %v, expected won", res.Events)
	}
	if !res.State.GameOver || res.State.Score != 2 {
		t.Errorf("State = %+v, expected game over after 2 guesses", res.State)
	}

	scr := core.NewScreen(80, 24)
	a.Render(scr)
	if !strings.Contains(scr.String(), "WINNER! The number was "+strconv.Itoa(target)) {
		t.Errorf("screen missing win message:\n%s", scr.String())
	}

	res = a.Step(frame(core.ActionRestart))
	if !slices.Contains(res.Events, "restart") || a.State().GameOver {
		t.Errorf("restart failed: events %v, state %+v", res.Events, a.State())
	}
}

func TestArcadeSameSeedSameTarget(t *testing.T) {
	a1 := newTestArcade(t)
	a2 := newTestArcade(t)

	if a1.Game().Target() != a2.Game().Target() {
		t.Errorf("targets differ for the same seed: %d vs %d", a1.Game().Target(), a2.Game().Target())
	}
}

func TestArcadeRender(t *testing.T) {
	a := newTestArcade(t)
	a.Step(func() core.InputFrame {
		in := core.NewInputFrame()
		in.Type('7')
		return in
	}())

	scr := core.NewScreen(80, 24)
	a.Render(scr)

	out := scr.String()
	for _, want := range []string{"Guesses: 0", "Guess a number between 1 and 100", "7_", "Start guessing!"} {
		if !strings.Contains(out, want) {
			t.Errorf("screen missing %q:\n%s", want, out)
		}
	}
}

func frame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, act := range actions {
		in.Set(act)
	}
	return in
}
