package calculator

import (
	"slices"
	"strings"
	"testing"

	"github.com/vovakirdan/minigames/internal/config"
	"github.com/vovakirdan/minigames/internal/core"
)

func newTestArcade(t *testing.T) *Arcade {
	t.Helper()
	t.Setenv(config.EnvConfigDir, t.TempDir())
	a := New()
	a.Reset(core.DefaultConfig())
	return a
}

func typed(text string, actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, r := range text {
		in.Type(r)
	}
	for _, act := range actions {
		in.Set(act)
	}
	return in
}

func TestArcadeTypedExpression(t *testing.T) {
	a := newTestArcade(t)

	res := a.Step(typed("12+30="))
	if a.Display() != "42" {
		t.Errorf("Display() = %q, expected 42", a.Display())
	}
	if !slices.Contains(res.Events, "result") {
		t.Errorf("Events = %v, expected result", res.Events)
	}
}

func TestArcadeEnterEvaluates(t *testing.T) {
	a := newTestArcade(t)

	a.Step(typed("6*7"))
	a.Step(typed("", core.ActionConfirm))
	if a.Display() != "42" {
		t.Errorf("Display() = %q, expected 42", a.Display())
	}
}

func TestArcadeClear(t *testing.T) {
	a := newTestArcade(t)

	a.Step(typed("9+"))
	a.Step(typed("", core.ActionClear))
	if a.Display() != "0" || a.Calculator().Pending() != OpNone {
		t.Errorf("after clear: Display() = %q, Pending() = %v", a.Display(), a.Calculator().Pending())
	}
}

func TestArcadeError(t *testing.T) {
	a := newTestArcade(t)

	res := a.Step(typed("1/0="))
	if !slices.Contains(res.Events, "error") {
		t.Errorf("Events = %v, expected error", res.Events)
	}

	scr := core.NewScreen(80, 24)
	a.Render(scr)
	if !strings.Contains(scr.String(), "Error: Division by zero") {
		t.Errorf("screen missing error:\n%s", scr.String())
	}
	if cell := scr.GetCell(strings.Index(scr.Row(4), "E"), 4); cell.Color != core.ColorBrightRed {
		t.Errorf("error text color = %v, expected bright red", cell.Color)
	}
}

func TestArcadeRender(t *testing.T) {
	a := newTestArcade(t)
	a.Step(typed("5+"))

	scr := core.NewScreen(80, 24)
	a.Render(scr)

	out := scr.String()
	for _, want := range []string{"Calculator", "7  8  9  /", "C  0  =  +"} {
		if !strings.Contains(out, want) {
			t.Errorf("screen missing %q:\n%s", want, out)
		}
	}
	if !strings.Contains(scr.Row(4), "+") || !strings.Contains(scr.Row(4), "5") {
		t.Errorf("display row = %q, expected pending + and 5", scr.Row(4))
	}
	if a.State() != (core.GameState{}) {
		t.Errorf("State() = %+v, expected zero value", a.State())
	}
}
