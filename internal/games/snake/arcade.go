package snake

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/minigames/internal/config"
	"github.com/vovakirdan/minigames/internal/core"
	"github.com/vovakirdan/minigames/internal/registry"
)

const (
	hudHeight  = 1 // status line
	cellWidth  = 2 // terminal columns per board cell, keeps cells roughly square
	borderSize = 1
)

// Arcade adapts Game to the platform: it maps input actions onto the
// simulation, runs one Update every few frames, and renders the board.
type Arcade struct {
	cfg    config.SnakeConfig
	preset config.BoardPreset
	game   *Game
	rng    *rand.Rand

	frame         uint64 // platform frames seen
	tick          uint64 // simulation ticks run
	framesPerMove int
	moveTicker    int

	screenW  int
	screenH  int
	tooSmall bool
	loadErr  error
}

// New creates an unstarted Snake arcade game.
func New() *Arcade {
	return &Arcade{}
}

func init() {
	registry.Register("snake", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (a *Arcade) ID() string { return "snake" }

// Title returns the display name.
func (a *Arcade) Title() string { return "Snake" }

// Blurb returns a one-line description for menus.
func (a *Arcade) Blurb() string { return "Eat dots, grow longer, avoid walls and your own tail" }

// Reset loads the config, builds the board and starts a fresh game.
func (a *Arcade) Reset(cfg core.RuntimeConfig) {
	a.frame = 0
	a.tick = 0
	a.moveTicker = 0
	a.loadErr = nil

	sc, _, err := config.LoadSnake(cfg.ConfigPath)
	if err != nil {
		a.loadErr = err
		sc = config.DefaultSnakeConfig()
	}
	preset, err := sc.Board(cfg.Variant)
	if err != nil {
		a.loadErr = err
		preset, _ = sc.Board("")
	}
	a.cfg = sc
	a.preset = preset
	a.framesPerMove = cfg.FramesPer(sc.TickMS)

	board := Board{Width: preset.Width, Height: preset.Height, CellSize: sc.CellSize}
	a.rng = rand.New(rand.NewSource(cfg.Seed))
	a.game = NewGame(Options{Board: board, WinScore: sc.WinScore, Rand: a.rng})
	a.game.Start()
	a.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize records the terminal size. The game keeps its state; it is
// frozen while the board does not fit.
func (a *Arcade) Resize(w, h int) {
	a.screenW = w
	a.screenH = h
	if a.game == nil {
		return
	}
	b := a.game.Board()
	requiredW := b.Cols()*cellWidth + 2*borderSize
	requiredH := b.Rows() + 2*borderSize + hudHeight
	a.tooSmall = w < requiredW || h < requiredH
}

// Game exposes the underlying simulation.
func (a *Arcade) Game() *Game {
	return a.game
}

// Step handles one platform frame: arrows are applied in arrival order, and the
// simulation advances once every framesPerMove frames.
func (a *Arcade) Step(in core.InputFrame) core.StepResult {
	a.frame++
	if a.tooSmall || a.game == nil {
		return core.StepResult{State: a.State()}
	}

	var events []string
	if in.Has(core.ActionRestart) && a.game.State().Terminal() {
		a.game.Start()
		a.moveTicker = 0
		events = append(events, "restart")
	}
	if in.Has(core.ActionPause) {
		a.game.TogglePause()
		events = append(events, "pause:"+a.game.State().String())
	}
	for _, m := range in.Moves {
		if d, ok := directionFor(m); ok {
			a.game.ChangeDirection(d)
		}
	}

	if a.game.State() == StateRunning {
		a.moveTicker++
		if a.moveTicker >= a.framesPerMove {
			a.moveTicker = 0
			a.tick++
			switch ev := a.game.Update(); ev {
			case EventAte, EventCollided, EventWon:
				events = append(events, ev.String())
			}
		}
	}

	return core.StepResult{State: a.State(), Events: events}
}

func directionFor(a core.Action) (Direction, bool) {
	switch a {
	case core.ActionUp:
		return Up, true
	case core.ActionDown:
		return Down, true
	case core.ActionLeft:
		return Left, true
	case core.ActionRight:
		return Right, true
	}
	return 0, false
}

// State returns the platform view of the game.
func (a *Arcade) State() core.GameState {
	if a.game == nil {
		return core.GameState{}
	}
	s := a.game.State()
	return core.GameState{
		Score:    a.game.Score(),
		GameOver: s.Terminal(),
		Paused:   s == StatePaused,
	}
}

// Render draws HUD, board, snake, dot and any state overlay.
func (a *Arcade) Render(dst *core.Screen) {
	dst.Clear()
	if a.game == nil {
		return
	}
	a.renderHUD(dst)

	if a.tooSmall {
		dst.DrawOverlay(core.ColorYellow, "Window too small", "Resize to continue")
		return
	}

	area := a.boardRect(dst)
	dst.DrawBox(area, core.ColorGray)
	a.renderDot(dst, area)
	a.renderSnake(dst, area)

	switch a.game.State() {
	case StatePaused:
		dst.DrawOverlay(core.ColorBrightWhite, "PAUSED - Press SPACE to continue")
	case StateGameOver:
		dst.DrawOverlay(core.ColorBrightRed, "GAME OVER - Press R to restart", fmt.Sprintf("Score: %d", a.game.Score()))
	case StateWon:
		dst.DrawOverlay(core.ColorBrightYellow, "YOU WIN! - Press R to play again", fmt.Sprintf("Score: %d", a.game.Score()))
	}
}

func (a *Arcade) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Snake - Score: %d/%d  Length: %d  Board: %s",
		a.game.Score(), a.game.WinScore(), a.game.Snake().Len(), a.preset.Title)
	if a.loadErr != nil {
		hud += "  (config error, using defaults)"
	}
	dst.DrawText(0, 0, hud)
}

// boardRect returns the bordered board area, centered horizontally below the HUD.
func (a *Arcade) boardRect(dst *core.Screen) core.Rect {
	b := a.game.Board()
	w := b.Cols()*cellWidth + 2*borderSize
	h := b.Rows() + 2*borderSize
	return core.NewRect((dst.Width()-w)/2, hudHeight, w, h)
}

// plot draws one board cell; positions off the board are skipped.
func (a *Arcade) plot(dst *core.Screen, area core.Rect, p Position, r rune, c core.Color) {
	b := a.game.Board()
	if !b.Contains(p) {
		return
	}
	col, row := b.Cell(p)
	x := area.X + borderSize + col*cellWidth
	y := area.Y + borderSize + row
	for i := range cellWidth {
		dst.SetColor(x+i, y, r, c)
	}
}

func (a *Arcade) renderSnake(dst *core.Screen, area core.Rect) {
	segs := a.game.Snake().Segments()
	// Body first so the head stays visible when it overlaps the body.
	for i := len(segs) - 1; i >= 1; i-- {
		a.plot(dst, area, segs[i], '█', core.ColorGreen)
	}
	headColor := core.ColorBrightGreen
	if a.game.State() == StateGameOver {
		headColor = core.ColorBrightRed
	}
	a.plot(dst, area, segs[0], '█', headColor)
}

func (a *Arcade) renderDot(dst *core.Screen, area core.Rect) {
	a.plot(dst, area, a.game.Dot().Position(), '●', core.ColorRed)
}
