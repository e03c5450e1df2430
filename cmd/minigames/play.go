package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/minigames/internal/config"
	"github.com/vovakirdan/minigames/internal/core"
	"github.com/vovakirdan/minigames/internal/platform/tui"
	"github.com/vovakirdan/minigames/internal/registry"
)

var (
	flagConfig string
	flagBoard  string
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Snake controls:
  Arrows/WASD  - Steer
  Space/P      - Pause and resume
  R            - Restart (after game over or a win)

Hot/Cold and calculator controls:
  0-9 + - * /  - Type
  Enter / =    - Submit or evaluate
  Backspace/C  - Delete or clear

Everywhere:
  Esc/B        - Back to the menu
  Q/Ctrl+C     - Quit

Without --board, Snake asks for a board first.

Examples:
  minigames play snake
  minigames play snake --board square --seed 7
  minigames play hotcold
  minigames play snake --config ./my-snake.yaml`,
	Args:        cobra.ExactArgs(1),
	Annotations: map[string]string{tuiAnnotation: "true"},
	RunE:        runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagBoard, "board", "", "Snake board preset (see 'minigames config snake')")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := args[0]

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q; run 'minigames list' to see available games", gameID)
	}

	cfg := runtimeConfig()
	cfg.ConfigPath = flagConfig
	cfg.Variant = flagBoard

	if gameID == "snake" && flagBoard == "" {
		res, err := tui.RunBoardSelector(cfg)
		if err != nil {
			return err
		}
		if res.Quit || res.Back {
			return nil
		}
		cfg.Variant = res.Board
	}

	_, err := playGame(gameID, cfg)
	return err
}

// runtimeConfig builds the frame-loop config from flags and terminal size.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// playGame creates and runs one game session. It reports whether the
// player asked to go back to the menu.
func playGame(gameID string, cfg core.RuntimeConfig) (back bool, err error) {
	game, err := registry.Create(gameID)
	if err != nil {
		return false, err
	}
	if _, src, cfgErr := config.Effective(gameID, cfg.ConfigPath); cfgErr != nil {
		app.logger.Warn("config rejected, using defaults", "game", gameID, "error", cfgErr)
	} else {
		app.logger.Info("config loaded", "game", gameID, "source", src)
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	back, err = tui.Run(app.ctx, game, cfg, app.logger)
	if err != nil {
		return false, fmt.Errorf("running %s: %w", gameID, err)
	}
	return back, nil
}
