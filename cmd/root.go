package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command for the agenda application
var rootCmd = &cobra.Command{
	Use:   "agenda",
	Short: "Lists Google Calendar events from the command line",
	Long: `agenda authenticates against the Google Calendar API with OAuth2 and
prints event lists to standard output.

The first run opens a browser for authorization; the resulting token is
persisted and refreshed transparently on later runs.`,
	SilenceUsage: true,
}

// version will be set by main
var version = "dev"

// logLevel controls log verbosity for all commands
var logLevel string

// SetVersion sets the version for the root command
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// Execute is the main entry point for the CLI application
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "agenda version %s\n" .Version}}`)

	// If no subcommand is provided, run the report command by default
	if len(os.Args) == 1 {
		os.Args = append(os.Args, "report")
	}

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(newReportCmd())
	rootCmd.AddCommand(newEventsCmd())
	rootCmd.AddCommand(newTodayCmd())
	rootCmd.AddCommand(newAuthCmd())
	rootCmd.AddCommand(newCalendarsCmd())
	rootCmd.AddCommand(newVersionCmd())
}
