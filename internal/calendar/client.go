package calendar

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	calendar "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/worklog/agenda/internal/instrumentation"
	"github.com/worklog/agenda/internal/logging"
)

// Query defaults.
const (
	DefaultCalendarID = "primary"
	DefaultMaxResults = 10
)

// QueryError reports a failed remote query. Callers can distinguish "the
// query failed" from "no events scheduled"; the CLI layer chooses to
// downgrade it to empty output.
type QueryError struct {
	CalendarID string
	Err        error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("query on calendar %s failed: %v", e.CalendarID, e.Err)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

// Client wraps the Google Calendar service
type Client struct {
	svc     *calendar.Service
	metrics *instrumentation.Metrics
	logger  *slog.Logger

	// now is the clock used for window defaulting; replaceable in tests.
	now func() time.Time
}

// NewClient creates a Calendar client on top of an authenticated HTTP
// client. Additional options (e.g. an endpoint override) are appended
// after the HTTP client option.
func NewClient(ctx context.Context, httpClient *http.Client, opts ...option.ClientOption) (*Client, error) {
	all := append([]option.ClientOption{option.WithHTTPClient(httpClient)}, opts...)

	svc, err := calendar.NewService(ctx, all...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Calendar service: %w", err)
	}

	return &Client{
		svc:    svc,
		logger: slog.Default(),
		now:    time.Now,
	}, nil
}

// SetMetrics attaches a metrics recorder for API operations.
func (c *Client) SetMetrics(metrics *instrumentation.Metrics) {
	c.metrics = metrics
}

// ListEvents lists events in a calendar within a time window, expanded to
// single events and ordered by start time ascending, capped at
// maxResults. Empty calendarID and non-positive maxResults fall back to
// the defaults; a zero window means "now" through the far-future
// sentinel.
func (c *Client) ListEvents(ctx context.Context, calendarID string, window Window, maxResults int64) ([]Event, error) {
	if calendarID == "" {
		calendarID = DefaultCalendarID
	}
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}
	if err := window.Validate(); err != nil {
		return nil, err
	}

	ctx, span := instrumentation.StartCalendarSpan(ctx, instrumentation.OperationListEvents, calendarID)
	defer span.End()

	timeMin, timeMax := window.bounds(c.now)
	logger := logging.WithCalendar(c.logger, calendarID)
	logger.Debug("fetching events", "time_min", timeMin, "time_max", timeMax, "max_results", maxResults)

	started := time.Now()
	res, err := c.svc.Events.List(calendarID).
		TimeMin(timeMin).
		TimeMax(timeMax).
		MaxResults(maxResults).
		SingleEvents(true).
		OrderBy("startTime").
		Context(ctx).
		Do()
	duration := time.Since(started)

	if err != nil {
		c.metrics.RecordCalendarOperation(ctx, instrumentation.OperationListEvents, calendarID, instrumentation.StatusError, duration)
		instrumentation.SetSpanError(span, err)
		return nil, &QueryError{CalendarID: calendarID, Err: err}
	}
	c.metrics.RecordCalendarOperation(ctx, instrumentation.OperationListEvents, calendarID, instrumentation.StatusSuccess, duration)
	instrumentation.SetSpanSuccess(span)

	events := make([]Event, 0, len(res.Items))
	for _, item := range res.Items {
		events = append(events, toEvent(item))
	}

	logger.Debug("fetched events", "count", len(events))
	return events, nil
}

// ListTodaysEvents lists events for the current local calendar day,
// midnight through 23:59:59, delegating to ListEvents.
func (c *Client) ListTodaysEvents(ctx context.Context, calendarID string, maxResults int64) ([]Event, error) {
	return c.ListEvents(ctx, calendarID, dayWindow(c.now()), maxResults)
}

// ListCalendars lists all calendars accessible to the user.
func (c *Client) ListCalendars(ctx context.Context) ([]CalendarInfo, error) {
	ctx, span := instrumentation.StartCalendarSpan(ctx, instrumentation.OperationListCalendars, "")
	defer span.End()

	started := time.Now()
	list, err := c.svc.CalendarList.List().Context(ctx).Do()
	duration := time.Since(started)

	if err != nil {
		c.metrics.RecordCalendarOperation(ctx, instrumentation.OperationListCalendars, "", instrumentation.StatusError, duration)
		instrumentation.SetSpanError(span, err)
		return nil, fmt.Errorf("failed to list calendars: %w", err)
	}
	c.metrics.RecordCalendarOperation(ctx, instrumentation.OperationListCalendars, "", instrumentation.StatusSuccess, duration)
	instrumentation.SetSpanSuccess(span)

	calendars := make([]CalendarInfo, 0, len(list.Items))
	for _, entry := range list.Items {
		calendars = append(calendars, toCalendarInfo(entry))
	}

	return calendars, nil
}
