package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/power-crisis/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List game variants",
	Long:  `Shows every registered game variant.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()
	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	width := len("ID")
	for _, g := range games {
		width = max(width, len(g.ID))
	}

	fmt.Println("Game variants:")
	fmt.Println()
	fmt.Printf("  %-*s  %s\n", width, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", width, "--", "-----")
	for _, g := range games {
		fmt.Printf("  %-*s  %s\n", width, g.ID, g.Title)
	}
	fmt.Println()
	fmt.Println("Run 'powercrisis play <id>' to play.")
}
