package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/forum-agent/internal/agenda"
	"github.com/jonathan/forum-agent/internal/observability"
)

var agendaCommand = &cobra.Command{
	Use:   "agenda",
	Short: "Show a forum's interview slots and programme",
	Long: `Fetches the forum agenda and prints the bookable interview slots grouped
by day. Past and already-booked slots are filtered out. --programmes switches
to the talks and events schedule instead.`,
	RunE: runAgendaCmd,
}

var (
	agendaConfigPath string
	agendaForumID    int
	agendaProgrammes bool
	agendaAll        bool
)

func init() {
	addClientFlags(agendaCommand)
	agendaCommand.Flags().StringVar(&agendaConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	agendaCommand.Flags().IntVarP(&agendaForumID, "forum", "f", 0, "Forum ID (required)")
	agendaCommand.Flags().BoolVar(&agendaProgrammes, "programmes", false, "Show the programme of talks instead of interview slots")
	agendaCommand.Flags().BoolVar(&agendaAll, "all", false, "Include past and booked slots")

	_ = agendaCommand.MarkFlagRequired("forum")

	rootCmd.AddCommand(agendaCommand)
}

func runAgendaCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := resolveConfig(cmd, agendaConfigPath)
	if err != nil {
		return err
	}

	log := newLogger(cfg)
	client, err := newClient(cfg, log)
	if err != nil {
		return err
	}

	result, err := client.GetAgenda(ctx, agendaForumID)
	if err != nil {
		return fmt.Errorf("failed to fetch agenda for forum %d: %w", agendaForumID, err)
	}

	printer := observability.NewPrinter(os.Stdout)

	if agendaProgrammes {
		days := agenda.GroupProgrammesByDay(result.Programmes)
		if len(days) == 0 {
			fmt.Println("No programme entries.")
			return nil
		}
		printer.PrintProgrammeDays(days)
		return nil
	}

	slots := result.Slots
	if !agendaAll {
		slots = agenda.FilterFutureAvailable(slots, time.Now())
	}
	printer.PrintAgendaDays(agenda.Days(agenda.GroupByDate(slots)))
	return nil
}
