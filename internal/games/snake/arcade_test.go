package snake

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/vovakirdan/minigames/internal/config"
	"github.com/vovakirdan/minigames/internal/core"
)

const tinyConfig = `cell_size: 20
win_score: 5
tick_ms: 100
default_board: tiny
boards:
  - name: tiny
    title: Tiny (5x5)
    width: 100
    height: 100
`

func newTestArcade(t *testing.T, seed int64) *Arcade {
	t.Helper()
	t.Setenv(config.EnvConfigDir, t.TempDir())

	path := filepath.Join(t.TempDir(), "snake.yaml")
	if err := os.WriteFile(path, []byte(tinyConfig), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	a := New()
	a.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed, ConfigPath: path})
	return a
}

func frameWith(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, act := range actions {
		in.Set(act)
	}
	return in
}

func TestArcadeReset(t *testing.T) {
	a := newTestArcade(t, 1)

	if a.loadErr != nil {
		t.Fatalf("unexpected config error: %v", a.loadErr)
	}
	if a.framesPerMove != 6 {
		t.Errorf("framesPerMove = %d, expected 6", a.framesPerMove)
	}
	snap := a.Snapshot()
	if snap.State != StateRunning {
		t.Errorf("State = %v, expected RUNNING", snap.State)
	}
	if snap.Head != (Position{40, 40}) || snap.SnakeLen != 3 {
		t.Errorf("Head/Len = %v/%d, expected (40,40)/3", snap.Head, snap.SnakeLen)
	}
	if a.Game().WinScore() != 5 {
		t.Errorf("WinScore() = %d, expected 5", a.Game().WinScore())
	}
}

func TestArcadeDefaultBoard(t *testing.T) {
	t.Setenv(config.EnvConfigDir, t.TempDir())

	a := New()
	a.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1})

	b := a.Game().Board()
	if b.Width != 600 || b.Height != 400 || b.CellSize != 20 {
		t.Errorf("Board() = %+v, expected 600x400 cells of 20", b)
	}
	if a.tooSmall {
		t.Error("an 80x24 terminal should fit the classic board")
	}
	a.Resize(80, 22)
	if !a.tooSmall {
		t.Error("80x22 cannot fit 20 rows plus border and status line")
	}
	a.Resize(80, 23)
	if a.tooSmall {
		t.Error("80x23 should fit the classic board")
	}

	a.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1, Variant: "small"})
	if a.Game().Board().Width != 300 {
		t.Errorf("Variant small: Width = %d, expected 300", a.Game().Board().Width)
	}
}

func TestArcadeMovesEveryFewFrames(t *testing.T) {
	a := newTestArcade(t, 1)
	a.Game().Dot().Place(Position{0, 0})

	for i := range 5 {
		a.Step(core.NewInputFrame())
		if a.Snapshot().Tick != 0 {
			t.Fatalf("frame %d: snake moved before the tick interval", i+1)
		}
	}
	a.Step(core.NewInputFrame())

	snap := a.Snapshot()
	if snap.Tick != 1 {
		t.Fatalf("Tick = %d, expected 1 after 6 frames", snap.Tick)
	}
	if snap.Head != (Position{60, 40}) {
		t.Errorf("Head = %v, expected (60,40)", snap.Head)
	}
}

func TestArcadeDirectionInput(t *testing.T) {
	a := newTestArcade(t, 1)

	a.Step(frameWith(core.ActionUp))
	if a.Snapshot().Dir != Up {
		t.Errorf("Dir = %v, expected UP", a.Snapshot().Dir)
	}

	// Down is a reversal of Up and is dropped; Left still applies.
	in := core.NewInputFrame()
	in.Set(core.ActionDown)
	in.Set(core.ActionLeft)
	a.Step(in)
	if a.Snapshot().Dir != Left {
		t.Errorf("Dir = %v, expected LEFT", a.Snapshot().Dir)
	}
}

func TestArcadeAppliesEveryArrowInOrder(t *testing.T) {
	a := newTestArcade(t, 100)

	// Heading right: Down is accepted first, which makes Left legal.
	in := core.NewInputFrame()
	in.Set(core.ActionDown)
	in.Set(core.ActionLeft)
	a.Step(in)
	if a.Snapshot().Dir != Left {
		t.Errorf("Dir = %v, expected LEFT", a.Snapshot().Dir)
	}
}

func TestArcadePause(t *testing.T) {
	a := newTestArcade(t, 1)

	res := a.Step(frameWith(core.ActionPause))
	if !res.State.Paused {
		t.Fatal("State().Paused = false after pause")
	}
	if !slices.Contains(res.Events, "pause:PAUSED") {
		t.Errorf("Events = %v, expected pause:PAUSED", res.Events)
	}

	for range 20 {
		a.Step(core.NewInputFrame())
	}
	if a.Snapshot().Tick != 0 {
		t.Error("paused game advanced")
	}

	a.Step(frameWith(core.ActionPause))
	if a.Snapshot().State != StateRunning {
		t.Errorf("State = %v, expected RUNNING", a.Snapshot().State)
	}
}

func TestArcadeRestartOnlyWhenOver(t *testing.T) {
	a := newTestArcade(t, 1)
	a.Game().score = 3

	a.Step(frameWith(core.ActionRestart))
	if a.Game().Score() != 3 {
		t.Fatal("restart should be ignored while running")
	}

	a.Game().state = StateGameOver
	res := a.Step(frameWith(core.ActionRestart))
	if !slices.Contains(res.Events, "restart") {
		t.Errorf("Events = %v, expected restart", res.Events)
	}
	if a.Game().State() != StateRunning || a.Game().Score() != 0 {
		t.Errorf("after restart: State/Score = %v/%d, expected RUNNING/0", a.Game().State(), a.Game().Score())
	}
}

func TestArcadeReportsCollision(t *testing.T) {
	a := newTestArcade(t, 1)
	a.Game().Dot().Place(Position{0, 0})

	var events []string
	for range 6 * 3 {
		res := a.Step(core.NewInputFrame())
		events = append(events, res.Events...)
	}

	if !slices.Contains(events, "collided") {
		t.Errorf("Events = %v, expected collided", events)
	}
	if !a.State().GameOver {
		t.Error("State().GameOver = false after hitting the wall")
	}
}

func TestArcadeDeterminism(t *testing.T) {
	a1 := newTestArcade(t, 12345)
	a2 := newTestArcade(t, 12345)
	script := []core.Action{core.ActionUp, core.ActionLeft, core.ActionDown, core.ActionRight}

	for i := range 600 {
		var in core.InputFrame
		if i%15 == 0 {
			in = frameWith(script[(i/15)%len(script)])
		} else {
			in = core.NewInputFrame()
		}
		if i%200 == 199 {
			in.Set(core.ActionRestart)
		}
		a1.Step(in)
		a2.Step(in.Clone())

		if s1, s2 := a1.Snapshot(), a2.Snapshot(); s1 != s2 {
			t.Fatalf("frame %d: states diverged\n%+v\n%+v", i, s1, s2)
		}
	}
}

func TestArcadeRender(t *testing.T) {
	a := newTestArcade(t, 1)
	a.Game().Dot().Place(Position{0, 0})
	scr := core.NewScreen(80, 24)

	a.Render(scr)

	if !strings.Contains(scr.Row(0), "Score: 0/5") {
		t.Errorf("HUD = %q, expected score", scr.Row(0))
	}
	// Board box is 12x7 centered at x=34 below the HUD.
	if got := scr.Get(34, 1); got != '┌' {
		t.Errorf("board corner = %q, expected '┌'", got)
	}
	head := scr.GetCell(39, 4)
	if head.Rune != '█' || head.Color != core.ColorBrightGreen {
		t.Errorf("head cell = %+v, expected bright green block", head)
	}
	if scr.GetCell(35, 2).Rune != '●' {
		t.Errorf("dot cell = %q, expected '●'", scr.GetCell(35, 2).Rune)
	}
}

func TestArcadeRenderOverlays(t *testing.T) {
	tests := []struct {
		state    State
		expected string
	}{
		{StatePaused, "PAUSED - Press SPACE to continue"},
		{StateGameOver, "GAME OVER - Press R to restart"},
		{StateWon, "YOU WIN! - Press R to play again"},
	}

	for _, tc := range tests {
		t.Run(tc.state.String(), func(t *testing.T) {
			a := newTestArcade(t, 1)
			a.Game().state = tc.state
			scr := core.NewScreen(80, 24)

			a.Render(scr)
			if !strings.Contains(scr.String(), tc.expected) {
				t.Errorf("screen missing %q:\n%s", tc.expected, scr.String())
			}
		})
	}
}

func TestArcadeTooSmall(t *testing.T) {
	t.Setenv(config.EnvConfigDir, t.TempDir())
	a := New()
	a.Reset(core.RuntimeConfig{ScreenW: 30, ScreenH: 10, TickRate: 60, Seed: 1})

	for range 30 {
		a.Step(core.NewInputFrame())
	}
	if a.Snapshot().Tick != 0 {
		t.Error("game advanced while the window is too small")
	}

	scr := core.NewScreen(30, 10)
	a.Render(scr)
	if !strings.Contains(scr.String(), "Window too small") {
		t.Errorf("expected too-small notice:\n%s", scr.String())
	}
}
