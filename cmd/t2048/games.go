package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var flagLimit int

var gamesCmd = &cobra.Command{
	Use:   "games",
	Short: "List saved games",
	Long: `Show the most recently played saved games.

Examples:
  t2048 games
  t2048 games --limit 5`,
	Args: cobra.NoArgs,
	RunE: runGames,
}

func init() {
	gamesCmd.Flags().IntVar(&flagLimit, "limit", 20, "Maximum number of games to show")
}

func runGames(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	games, err := a.store.ListGames(flagLimit)
	if err != nil {
		return err
	}

	if len(games) == 0 {
		fmt.Println("No saved games yet.")
		fmt.Println()
		fmt.Println("Run 't2048 new' to start one.")
		return nil
	}

	fmt.Printf("  %-5s  %-10s  %-5s  %-8s  %-7s  %-9s  %s\n", "ID", "Variant", "Size", "Score", "Max", "State", "Updated")
	fmt.Printf("  %-5s  %-10s  %-5s  %-8s  %-7s  %-9s  %s\n", "--", "-------", "----", "-----", "---", "-----", "-------")

	for _, g := range games {
		fmt.Printf("  %-5d  %-10s  %-5d  %-8d  %-7d  %-9s  %s\n",
			g.ID, g.Variant, g.Size, g.Score, g.MaxTile, g.State, g.UpdatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}
