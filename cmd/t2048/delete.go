package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a saved game and its journal",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

func runDelete(cmd *cobra.Command, args []string) error {
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
	if err := a.store.DeleteGame(id); err != nil {
		return err
	}

	a.logger.Info("game deleted", "id", id)
	fmt.Printf("Deleted game %d\n", id)
	return nil
}
