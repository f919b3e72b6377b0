// Package cmd implements the command-line interface for agenda.
//
// This package provides the following commands:
//   - report: Print upcoming events and today's schedule (the default)
//   - events: List upcoming events in a time window
//   - today: List events scheduled for the current local day
//   - auth: Run the interactive authorization flow and persist the token
//   - calendars: List calendars accessible to the authorized account
//   - version: Display version information
//
// The report command is the default command when no subcommand is specified.
package cmd
