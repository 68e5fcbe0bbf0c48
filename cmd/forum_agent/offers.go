package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var offersCommand = &cobra.Command{
	Use:   "offers",
	Short: "List the offers published in a forum",
	RunE:  runOffersCmd,
}

var (
	offersConfigPath string
	offersForumID    int
)

func init() {
	addClientFlags(offersCommand)
	offersCommand.Flags().StringVar(&offersConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	offersCommand.Flags().IntVarP(&offersForumID, "forum", "f", 0, "Forum ID (required)")

	_ = offersCommand.MarkFlagRequired("forum")

	rootCmd.AddCommand(offersCommand)
}

func runOffersCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := resolveConfig(cmd, offersConfigPath)
	if err != nil {
		return err
	}

	log := newLogger(cfg)
	client, err := newClient(cfg, log)
	if err != nil {
		return err
	}

	offers, err := client.ListOffers(ctx, offersForumID)
	if err != nil {
		return fmt.Errorf("failed to list offers for forum %d: %w", offersForumID, err)
	}

	if len(offers) == 0 {
		fmt.Println("No offers published in this forum.")
		return nil
	}

	for _, offer := range offers {
		fmt.Printf("#%-5d %s", offer.ID, offer.Title)
		if offer.Company != "" {
			fmt.Printf("  (%s)", offer.Company)
		}
		fmt.Println()
		if offer.ContractType != "" || offer.Location != "" {
			fmt.Printf("       %s", offer.ContractType)
			if offer.Location != "" {
				fmt.Printf("  %s", offer.Location)
			}
			fmt.Println()
		}
	}
	fmt.Printf("\n%d offers.\n", len(offers))
	return nil
}
