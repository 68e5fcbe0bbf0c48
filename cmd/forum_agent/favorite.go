package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jonathan/forum-agent/internal/favorites"
)

var favoriteCommand = &cobra.Command{
	Use:   "favorite <add|remove> <offer-id>",
	Short: "Mark or unmark an offer as a favorite",
	Long: `Updates the candidate's favorite flag for one offer. The change is applied
locally first and confirmed with the backend; a failed confirmation leaves the
flag as it was.`,
	Args: cobra.ExactArgs(2),
	RunE: runFavoriteCmd,
}

var favoriteConfigPath string

func init() {
	addClientFlags(favoriteCommand)
	favoriteCommand.Flags().StringVar(&favoriteConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	rootCmd.AddCommand(favoriteCommand)
}

func runFavoriteCmd(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	action := args[0]
	if action != "add" && action != "remove" {
		return fmt.Errorf("unknown action %q, expected add or remove", action)
	}
	offerID, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid offer id %q", args[1])
	}

	cfg, err := resolveConfig(cmd, favoriteConfigPath)
	if err != nil {
		return err
	}

	log := newLogger(cfg)
	client, err := newClient(cfg, log)
	if err != nil {
		return err
	}

	// Seed the list so Toggle moves in the requested direction
	var seed []int
	if action == "remove" {
		seed = []int{offerID}
	}
	list := favorites.NewList(client, seed)

	if err := list.Toggle(ctx, offerID); err != nil {
		return fmt.Errorf("failed to %s favorite for offer %d: %w", action, offerID, err)
	}

	if action == "add" {
		fmt.Printf("Offer %d added to favorites.\n", offerID)
	} else {
		fmt.Printf("Offer %d removed from favorites.\n", offerID)
	}
	return nil
}
