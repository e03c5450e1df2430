package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/minigames/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config <game>",
	Short: "Print the effective configuration of a game",
	Long: `Prints the YAML configuration a game would use, after applying the
search order: --config, $MINIGAMES_CONFIG_DIR or ~/.minigames/configs,
./configs, then the built-in defaults.

Redirect the output to a file to start a custom configuration:

  minigames config snake > ~/.minigames/configs/snake.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

func runConfig(cmd *cobra.Command, args []string) error {
	data, source, err := config.Effective(args[0], flagConfig)
	if err != nil {
		return err
	}
	app.logger.Debug("config resolved", "game", args[0], "source", source)

	fmt.Fprintf(cmd.OutOrStdout(), "# source: %s\n", source)
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
