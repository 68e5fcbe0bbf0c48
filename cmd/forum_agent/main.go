// Package main provides the entry point for the forum agent CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "forum_agent",
	Short: "Candidate CLI for virtual recruitment forums",
	Long:  "forum_agent lets a candidate browse a virtual forum's offers and agenda, fill in offer questionnaires, pick an interview slot and submit an application from the terminal.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
