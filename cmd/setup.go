package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/worklog/agenda/internal/calendar"
	"github.com/worklog/agenda/internal/config"
	"github.com/worklog/agenda/internal/google"
	"github.com/worklog/agenda/internal/instrumentation"
	"github.com/worklog/agenda/internal/logging"
)

// app bundles the wired pieces a command operates on.
type app struct {
	cfg      *config.Config
	client   *calendar.Client
	provider *instrumentation.Provider
	logger   *slog.Logger
}

// setup loads configuration, initializes logging and instrumentation,
// and builds an authenticated Calendar client. The interactive
// authorization flow may run here when no persisted token is usable.
// Callers must invoke the returned shutdown function when done.
func setup(ctx context.Context) (*app, func(), error) {
	logger := logging.Setup(logLevel)

	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	instrConfig := instrumentation.DefaultConfig()
	instrConfig.ServiceVersion = version
	provider, err := instrumentation.NewProvider(ctx, instrConfig)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize instrumentation: %w", err)
	}
	shutdown := func() {
		if err := provider.Shutdown(context.Background()); err != nil {
			logger.Warn("instrumentation shutdown failed", logging.Err(err))
		}
	}

	conf, err := google.NewOAuthConfig(cfg.ClientSecretPath)
	if err != nil {
		shutdown()
		return nil, nil, err
	}

	manager := google.NewManager(conf, cfg.TokenPath, google.NewBrowserFlow(conf))
	manager.SetMetrics(provider.Metrics())

	httpClient, err := manager.Client(ctx)
	if err != nil {
		shutdown()
		return nil, nil, err
	}

	client, err := calendar.NewClient(ctx, httpClient)
	if err != nil {
		shutdown()
		return nil, nil, err
	}
	client.SetMetrics(provider.Metrics())

	return &app{
		cfg:      cfg,
		client:   client,
		provider: provider,
		logger:   logger,
	}, shutdown, nil
}

// fetchEvents runs a query and downgrades a failed remote call to an
// empty result so the command still prints its section. The failure
// remains visible in the log.
func fetchEvents(logger *slog.Logger, query func() ([]calendar.Event, error)) ([]calendar.Event, error) {
	events, err := query()
	if err != nil {
		var queryErr *calendar.QueryError
		if errors.As(err, &queryErr) {
			logger.Error("calendar query failed",
				logging.Calendar(queryErr.CalendarID),
				logging.Err(queryErr.Err))
			return nil, nil
		}
		return nil, err
	}
	return events, nil
}

// printEvents writes one line per event, the start value followed by the
// summary. An empty list prints a notice instead.
func printEvents(w io.Writer, events []calendar.Event) {
	if len(events) == 0 {
		fmt.Fprintln(w, "No upcoming events found.")
		return
	}
	for _, ev := range events {
		fmt.Fprintf(w, "%s %s\n", ev.Start, ev.Summary)
	}
}
