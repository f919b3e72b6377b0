package cmd

import (
	"github.com/spf13/cobra"

	"github.com/worklog/agenda/internal/calendar"
)

func newEventsCmd() *cobra.Command {
	var (
		calendarName string
		from         string
		to           string
		maxResults   int64
	)

	cmd := &cobra.Command{
		Use:   "events",
		Short: "List upcoming events in a time window",
		Long: `List events in a calendar within a time window, ordered by start time.

Bounds are datetime strings of the form 2006-01-02T15:04:05Z. An unset
lower bound means "now"; an unset upper bound means the far future.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, shutdown, err := setup(ctx)
			if err != nil {
				return err
			}
			defer shutdown()

			id := a.cfg.Registry.Resolve(calendarName)
			window := calendar.Window{Start: from, End: to}

			events, err := fetchEvents(a.logger, func() ([]calendar.Event, error) {
				return a.client.ListEvents(ctx, id, window, maxResults)
			})
			if err != nil {
				return err
			}
			printEvents(cmd.OutOrStdout(), events)

			return nil
		},
	}

	cmd.Flags().StringVar(&calendarName, "calendar", "primary", "Calendar name or ID to query")
	cmd.Flags().StringVar(&from, "from", "", "Lower bound datetime (default: now)")
	cmd.Flags().StringVar(&to, "to", "", "Upper bound datetime (default: far future)")
	cmd.Flags().Int64Var(&maxResults, "max", calendar.DefaultMaxResults, "Maximum number of events to list")
	return cmd
}
