package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tile2048/internal/games/t2048"
	"github.com/vovakirdan/tile2048/internal/registry"
)

var (
	flagBoard string
	flagSize  int
)

var newCmd = &cobra.Command{
	Use:   "new [variant]",
	Short: "Start and save a new game",
	Long: `Create a new game and save it.

Without --board the game starts empty with two random tiles.
With --board the given values are loaded exactly as written:
rows separated by '/', cells by ','.

Examples:
  t2048 new
  t2048 new 2048_mini
  t2048 new --size 8
  t2048 new --board "2,0,0,2/0,4,0,0/0,0,0,0/8,0,0,0"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runNew,
}

func init() {
	newCmd.Flags().StringVar(&flagBoard, "board", "", "Exact starting board, e.g. \"2,0/0,4\"")
	newCmd.Flags().IntVar(&flagSize, "size", 0, "Board size, overrides the variant")
}

func runNew(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	if len(args) == 1 {
		if !registry.Exists(args[0]) {
			return fmt.Errorf("unknown variant %q (run 't2048 list')", args[0])
		}
		a.cfg.Board.Variant = args[0]
		a.cfg.Board.Size = 0
	}
	if flagSize != 0 {
		a.cfg.Board.Size = flagSize
	}

	session, err := startSession(a)
	if err != nil {
		return err
	}

	id, err := a.store.CreateGame(session.Snapshot())
	if err != nil {
		return err
	}

	a.logger.Info("game created", "id", id, "variant", session.Variant(), "size", session.Grid().Size())
	fmt.Printf("Game %d\n\n", id)
	draw(session)
	return nil
}

// startSession builds the first board from --board or from the configured size.
func startSession(a *app) (*t2048.Session, error) {
	if flagBoard != "" {
		values, err := t2048.ParseBoard(flagBoard)
		if err != nil {
			return nil, err
		}
		g, err := t2048.FromValues(values, a.source())
		if err != nil {
			return nil, err
		}
		return t2048.NewSession(t2048.VariantForSize(g.Size()), g), nil
	}

	rt, err := a.cfg.Runtime()
	if err != nil {
		return nil, err
	}

	variant := a.cfg.Board.Variant
	if v, err := registry.Lookup(variant); err != nil || v.Size != rt.Size {
		variant = t2048.VariantForSize(rt.Size)
	}

	g, err := t2048.NewGrid(rt.Size, t2048.NewSource(rt.Seed))
	if err != nil {
		return nil, err
	}
	return t2048.NewSession(variant, g), nil
}
