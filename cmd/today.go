package cmd

import (
	"github.com/spf13/cobra"

	"github.com/worklog/agenda/internal/calendar"
)

func newTodayCmd() *cobra.Command {
	var (
		calendarName string
		maxResults   int64
	)

	cmd := &cobra.Command{
		Use:   "today",
		Short: "List events scheduled for today",
		Long: `List events in a calendar for the current local day, midnight through
23:59:59, ordered by start time.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, shutdown, err := setup(ctx)
			if err != nil {
				return err
			}
			defer shutdown()

			id := a.cfg.Registry.Resolve(calendarName)

			events, err := fetchEvents(a.logger, func() ([]calendar.Event, error) {
				return a.client.ListTodaysEvents(ctx, id, maxResults)
			})
			if err != nil {
				return err
			}
			printEvents(cmd.OutOrStdout(), events)

			return nil
		},
	}

	cmd.Flags().StringVar(&calendarName, "calendar", "primary", "Calendar name or ID to query")
	cmd.Flags().Int64Var(&maxResults, "max", calendar.DefaultMaxResults, "Maximum number of events to list")
	return cmd
}
