package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCalendarsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calendars",
		Short: "List calendars accessible to the authorized account",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, shutdown, err := setup(ctx)
			if err != nil {
				return err
			}
			defer shutdown()

			calendars, err := a.client.ListCalendars(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, c := range calendars {
				marker := ""
				if c.Primary {
					marker = " (primary)"
				}
				fmt.Fprintf(out, "%s\t%s\t%s%s\n", c.ID, c.Summary, c.AccessRole, marker)
			}
			return nil
		},
	}

	return cmd
}
