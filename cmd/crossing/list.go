package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bug-crossing/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List games and selectable characters",
	Long:  `Shows every registered game together with the characters it offers.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	for _, g := range games {
		fmt.Printf("%s (%s)\n", g.Title, g.ID)
		fmt.Println()

		if len(g.Characters) == 0 {
			continue
		}

		// Calculate column widths
		maxNameLen := 4 // "Name" header
		for _, c := range g.Characters {
			if len(c.Name) > maxNameLen {
				maxNameLen = len(c.Name)
			}
		}

		// Print header
		fmt.Printf("  %-*s  %s\n", maxNameLen, "Name", "Character")
		fmt.Printf("  %-*s  %s\n", maxNameLen, "----", "---------")

		// Print characters
		for _, c := range g.Characters {
			fmt.Printf("  %-*s  %s\n", maxNameLen, c.Name, c.Title)
		}
		fmt.Println()
	}

	fmt.Println("Run 'crossing play --character <name>' to play.")
}
