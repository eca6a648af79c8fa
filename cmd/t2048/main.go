// t2048 is a command-line front end for the tile2048 board engine.
// Each invocation plays whole turns against a saved game; there is no interactive loop.
//
// Usage:
//
//	t2048 list                   - List board variants
//	t2048 new [variant]          - Start and save a new game
//	t2048 move <id> <dir>...     - Play one or more moves on a saved game
//	t2048 show <id>              - Draw a saved game
//	t2048 games                  - List saved games
//	t2048 history <id>           - Show the move journal of a game
//	t2048 delete <id>            - Delete a saved game
//
// Global flags:
//
//	--config <path>     - Config YAML (default search: ~/.t2048/config.yaml, ./configs/t2048.yaml)
//	--seed <value>      - RNG seed for reproducible spawns
//	--db <path>         - Database path (default: ~/.t2048/games.db)
//	--log-level <lvl>   - debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "t2048",
	Short: "tile2048 - a 2048 board engine for the terminal",
	Long: `t2048 drives the tile2048 board engine from the command line.

Games are saved in a SQLite database; every command loads a game,
applies whole turns and saves it again.

Available commands:
  list     - Show board variants
  new      - Start a new game
  move     - Play moves on a saved game
  show     - Draw a saved game
  games    - List saved games
  history  - Show a game's move journal
  delete   - Delete a saved game

Examples:
  t2048 new
  t2048 new 2048_big --seed 42
  t2048 new --board "2,2,0,0/0,0,0,0/0,0,4,0/0,0,0,0"
  t2048 move 1 left up up right
  t2048 show 1`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = config value or time based)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to games database (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(moveCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(gamesCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(deleteCmd)
}
