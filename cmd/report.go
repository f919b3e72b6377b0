package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/worklog/agenda/internal/calendar"
)

func newReportCmd() *cobra.Command {
	var (
		calendarName string
		maxResults   int64
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print upcoming events and today's schedule",
		Long: `Run two queries against a calendar and print both results: upcoming
events from now on, and events scheduled for the current local day.

This is the default command when no subcommand is specified.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, shutdown, err := setup(ctx)
			if err != nil {
				return err
			}
			defer shutdown()

			id := a.cfg.Registry.Resolve(calendarName)
			out := cmd.OutOrStdout()

			fmt.Fprintf(out, "upcoming %s events:\n", calendarName)
			events, err := fetchEvents(a.logger, func() ([]calendar.Event, error) {
				return a.client.ListEvents(ctx, id, calendar.Window{}, maxResults)
			})
			if err != nil {
				return err
			}
			printEvents(out, events)

			fmt.Fprintf(out, "upcoming today's %s events:\n", calendarName)
			events, err = fetchEvents(a.logger, func() ([]calendar.Event, error) {
				return a.client.ListTodaysEvents(ctx, id, maxResults)
			})
			if err != nil {
				return err
			}
			printEvents(out, events)

			return nil
		},
	}

	cmd.Flags().StringVar(&calendarName, "calendar", "primary", "Calendar name or ID to query")
	cmd.Flags().Int64Var(&maxResults, "max", calendar.DefaultMaxResults, "Maximum number of events per query")
	return cmd
}
