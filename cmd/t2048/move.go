package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tile2048/internal/games/t2048"
)

var moveCmd = &cobra.Command{
	Use:   "move <id> <direction>...",
	Short: "Play moves on a saved game",
	Long: `Apply one or more moves to a saved game, in order.

Each move shifts the board; if anything changed a new tile is spawned.
Moves stop early once the game is over.

Directions:
  up    | w | k
  down  | s | j
  left  | a | h
  right | d | l

Examples:
  t2048 move 1 left
  t2048 move 1 up up left down`,
	Args: cobra.MinimumNArgs(2),
	RunE: runMove,
}

func runMove(cmd *cobra.Command, args []string) error {
	id, err := parseGameID(args[0])
	if err != nil {
		return err
	}

	// Parse every direction before touching the game.
	dirs := make([]t2048.Direction, 0, len(args)-1)
	for _, arg := range args[1:] {
		dir, err := t2048.ParseDirection(arg)
		if err != nil {
			return err
		}
		dirs = append(dirs, dir)
	}

	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	session, err := a.loadSession(id)
	if err != nil {
		return err
	}

	journal, err := a.store.Moves(id)
	if err != nil {
		return err
	}
	seq := len(journal)

	for _, dir := range dirs {
		if session.GameOver() {
			a.logger.Warn("game is over, skipping remaining moves", "id", id)
			break
		}

		res, err := session.Move(dir)
		if err != nil {
			return err
		}

		seq++
		if err := a.store.SaveTurn(id, seq, session.Snapshot(), res); err != nil {
			return err
		}

		if !res.Changed {
			a.logger.Info("move changed nothing", "dir", dir)
			continue
		}
		if res.Spawned != nil {
			a.logger.Debug("moved", "dir", dir, "spawn_x", res.Spawned.X, "spawn_y", res.Spawned.Y, "score", res.Score)
		}
	}

	fmt.Printf("Game %d\n\n", id)
	draw(session)
	return nil
}
