package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/minigames/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows a list of all games registered in minigames.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, _ []string) {
	games := registry.List()
	out := cmd.OutOrStdout()

	if len(games) == 0 {
		fmt.Fprintln(out, "No games available.")
		return
	}

	fmt.Fprintln(out, "Available games:")
	fmt.Fprintln(out)

	// Calculate column widths
	maxIDLen, maxTitleLen := 2, 5 // "ID", "Title" headers
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
		maxTitleLen = max(maxTitleLen, len(g.Title))
	}

	fmt.Fprintf(out, "  %-*s  %-*s  %s\n", maxIDLen, "ID", maxTitleLen, "Title", "Description")
	fmt.Fprintf(out, "  %-*s  %-*s  %s\n", maxIDLen, "--", maxTitleLen, "-----", "-----------")
	for _, g := range games {
		fmt.Fprintf(out, "  %-*s  %-*s  %s\n", maxIDLen, g.ID, maxTitleLen, g.Title, g.Blurb)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'minigames play <id>' to play a game.")
}
