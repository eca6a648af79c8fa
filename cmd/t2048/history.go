package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history <id>",
	Short: "Show the move journal of a game",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistory,
}

func runHistory(cmd *cobra.Command, args []string) error {
	id, err := parseGameID(args[0])
	if err != nil {
		return err
	}

	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	if _, err := a.loadGame(id); err != nil {
		return err
	}

	moves, err := a.store.Moves(id)
	if err != nil {
		return err
	}

	if len(moves) == 0 {
		fmt.Printf("Game %d has no moves.\n", id)
		return nil
	}

	fmt.Printf("  %-4s  %-6s  %-7s  %-8s  %s\n", "#", "Dir", "Changed", "Spawned", "Score")
	fmt.Printf("  %-4s  %-6s  %-7s  %-8s  %s\n", "-", "---", "-------", "-------", "-----")

	for _, m := range moves {
		spawned := "-"
		if m.Spawned != nil {
			spawned = fmt.Sprintf("%d,%d", m.Spawned.X, m.Spawned.Y)
		}
		fmt.Printf("  %-4d  %-6s  %-7t  %-8s  %d\n", m.Seq, m.Direction, m.Changed, spawned, m.Score)
	}
	return nil
}
