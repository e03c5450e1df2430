package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/minigames/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a game picker menu",
	Long: `Start minigames in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a game.
Press Esc or B in a game to return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select game
  Q/Esc        - Quit

Examples:
  minigames menu
  minigames menu --fps 30
  minigames menu --log-file ./minigames.log --log-level debug`,
	Annotations: map[string]string{tuiAnnotation: "true"},
	RunE:        runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	cfg := runtimeConfig()

	for {
		menuResult, err := tui.RunMenu(cfg)
		if err != nil {
			return err
		}
		// Keep any size change seen by the menu
		cfg = menuResult.Config
		if menuResult.Quit {
			return nil
		}

		gameCfg := cfg
		if menuResult.GameID == "snake" {
			res, err := tui.RunBoardSelector(gameCfg)
			if err != nil {
				app.logger.Error("board selector failed", "error", err)
				continue
			}
			if res.Quit {
				return nil
			}
			if res.Back {
				continue
			}
			gameCfg.Variant = res.Board
		}

		back, err := playGame(menuResult.GameID, gameCfg)
		if err != nil {
			return err
		}
		if !back {
			return nil
		}
	}
}
