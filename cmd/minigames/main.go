// minigames is a terminal arcade of small games built around a tick-driven
// Snake.
//
// Usage:
//
//	minigames list             - List available games
//	minigames play <game>      - Play a game
//	minigames menu             - Start menu to pick games interactively
//	minigames config <game>    - Print the effective YAML config of a game
//
// Global flags:
//
//	--fps <rate>          - Set frame rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--log-file <path>     - Write logs to a file (TUI commands log nowhere otherwise)
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/minigames/internal/games/calculator"
	_ "github.com/vovakirdan/minigames/internal/games/hotcold"
	_ "github.com/vovakirdan/minigames/internal/games/snake"
	"github.com/vovakirdan/minigames/internal/logging"
	"github.com/vovakirdan/minigames/internal/telemetry"
)

// tuiAnnotation marks commands that take over the terminal; they must not
// log to stderr.
const tuiAnnotation = "tui"

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagLogFile  string
	flagLogLevel string
)

// app holds what the persistent pre-run sets up for every command.
var app struct {
	ctx      context.Context
	logger   *log.Logger
	closeLog func() error
	shutdown func(context.Context) error
}

func main() {
	// Optional: OTEL_* and MINIGAMES_* variables may come from a .env file.
	envErr := godotenv.Load()

	err := rootCmd.ExecuteContext(context.Background())
	if app.logger != nil {
		if envErr != nil {
			app.logger.Debug(".env file not loaded", "error", envErr)
		}
		teardown()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "minigames",
	Short: "Minigames - Snake and friends in your terminal",
	Long: `Minigames is a terminal arcade: a classic Snake, a Hot/Cold number
guessing game and a four-function calculator.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  config   - Print a game's effective configuration

Examples:
  minigames list
  minigames play snake
  minigames play snake --board small --seed 42
  minigames menu --log-file ./minigames.log`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(configCmd)
}

// setup builds the logger and tracer provider for the command being run.
func setup(cmd *cobra.Command, _ []string) error {
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}

	opts := logging.Options{
		Level:  flagLogLevel,
		File:   flagLogFile,
		Prefix: "minigames",
	}
	if _, isTUI := cmd.Annotations[tuiAnnotation]; !isTUI {
		opts.Writer = os.Stderr
	}
	logger, closeLog, err := logging.New(opts)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		logger.Warn("telemetry setup failed, running without tracing", "error", err)
		shutdown = func(context.Context) error { return nil }
	}

	app.ctx = ctx
	app.logger = logger
	app.closeLog = closeLog
	app.shutdown = shutdown
	return nil
}

// teardown flushes spans and closes the log file.
func teardown() {
	if err := app.shutdown(app.ctx); err != nil {
		app.logger.Warn("telemetry shutdown failed", "error", err)
	}
	if err := app.closeLog(); err != nil {
		fmt.Fprintln(os.Stderr, "closing log file:", err)
	}
}
