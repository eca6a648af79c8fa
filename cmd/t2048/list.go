package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tile2048/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all board variants",
	Long:  `Shows every board variant registered with the engine.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	variants := registry.List()

	if len(variants) == 0 {
		fmt.Println("No variants available.")
		return
	}

	fmt.Println("Available variants:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, v := range variants {
		if len(v.ID) > maxIDLen {
			maxIDLen = len(v.ID)
		}
	}

	fmt.Printf("  %-*s  %-4s  %s\n", maxIDLen, "ID", "Size", "Title")
	fmt.Printf("  %-*s  %-4s  %s\n", maxIDLen, "--", "----", "-----")

	for _, v := range variants {
		fmt.Printf("  %-*s  %-4d  %s\n", maxIDLen, v.ID, v.Size, v.Title)
	}

	fmt.Println()
	fmt.Println("Run 't2048 new <id>' to start a game.")
}
