package calendar

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// newStubClient builds a Client pointed at a stub Calendar API. The
// returned values capture the last request seen by the stub.
func newStubClient(t *testing.T, handler http.HandlerFunc) (*Client, *url.Values) {
	t.Helper()

	lastQuery := &url.Values{}
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*lastQuery = r.URL.Query()
		handler(w, r)
	}))
	t.Cleanup(ts.Close)

	client, err := NewClient(context.Background(), ts.Client(), option.WithEndpoint(ts.URL))
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}

	return client, lastQuery
}

func eventsJSON(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(body))
}

func TestListEvents_RequestsWindowVerbatim(t *testing.T) {
	client, query := newStubClient(t, func(w http.ResponseWriter, r *http.Request) {
		eventsJSON(w, `{"kind":"calendar#events","items":[]}`)
	})

	window := Window{Start: "2024-06-01T00:00:00Z", End: "2024-06-30T23:59:59Z"}
	_, err := client.ListEvents(context.Background(), "primary", window, 25)
	if err != nil {
		t.Fatalf("ListEvents() error = %v", err)
	}

	if got := query.Get("timeMin"); got != window.Start {
		t.Errorf("timeMin = %q, want %q", got, window.Start)
	}
	if got := query.Get("timeMax"); got != window.End {
		t.Errorf("timeMax = %q, want %q", got, window.End)
	}
	if got := query.Get("maxResults"); got != "25" {
		t.Errorf("maxResults = %q, want 25", got)
	}
	if got := query.Get("singleEvents"); got != "true" {
		t.Errorf("singleEvents = %q, want true", got)
	}
	if got := query.Get("orderBy"); got != "startTime" {
		t.Errorf("orderBy = %q, want startTime", got)
	}
}

func TestListEvents_DefaultBounds(t *testing.T) {
	client, query := newStubClient(t, func(w http.ResponseWriter, r *http.Request) {
		eventsJSON(w, `{"kind":"calendar#events","items":[]}`)
	})
	client.now = func() time.Time {
		return time.Date(2024, 6, 15, 14, 30, 45, 0, time.UTC)
	}

	_, err := client.ListEvents(context.Background(), "", Window{}, 0)
	if err != nil {
		t.Fatalf("ListEvents() error = %v", err)
	}

	if got := query.Get("timeMin"); got != "2024-06-15T14:30:45Z" {
		t.Errorf("default timeMin = %q, want now at call time", got)
	}
	if got := query.Get("timeMax"); got != "2038-12-31T23:59:59Z" {
		t.Errorf("default timeMax = %q, want far-future sentinel", got)
	}
	if got := query.Get("maxResults"); got != "10" {
		t.Errorf("default maxResults = %q, want 10", got)
	}
}

func TestListEvents_ParsesEvents(t *testing.T) {
	client, _ := newStubClient(t, func(w http.ResponseWriter, r *http.Request) {
		eventsJSON(w, `{"kind":"calendar#events","items":[
			{"id":"ev1","summary":"Standup","start":{"dateTime":"2024-06-15T10:00:00Z"},"end":{"dateTime":"2024-06-15T10:30:00Z"}},
			{"id":"ev2","summary":"Holiday","start":{"date":"2024-06-15"},"end":{"date":"2024-06-16"}}
		]}`)
	})

	events, err := client.ListEvents(context.Background(), "primary", Window{}, 10)
	if err != nil {
		t.Fatalf("ListEvents() error = %v", err)
	}

	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}

	// Order must be preserved as returned by the service
	if events[0].Summary != "Standup" || events[1].Summary != "Holiday" {
		t.Errorf("event order changed: %q, %q", events[0].Summary, events[1].Summary)
	}
	if events[0].Start != "2024-06-15T10:00:00Z" {
		t.Errorf("timed event Start = %q", events[0].Start)
	}
	if !events[1].AllDay || events[1].Start != "2024-06-15" {
		t.Errorf("all-day event not recognized: %+v", events[1])
	}
}

func TestListEvents_EmptyResult(t *testing.T) {
	client, _ := newStubClient(t, func(w http.ResponseWriter, r *http.Request) {
		eventsJSON(w, `{"kind":"calendar#events","items":[]}`)
	})

	events, err := client.ListEvents(context.Background(), "primary", Window{}, 10)
	if err != nil {
		t.Fatalf("ListEvents() error = %v", err)
	}
	if len(events) != 0 {
		t.Errorf("got %d events, want 0", len(events))
	}
}

func TestListEvents_RemoteError(t *testing.T) {
	client, _ := newStubClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":{"code":403,"message":"forbidden"}}`))
	})

	events, err := client.ListEvents(context.Background(), "nope", Window{}, 10)
	if err == nil {
		t.Fatal("expected an error from the remote failure")
	}
	if events != nil {
		t.Errorf("expected no events alongside the error, got %v", events)
	}

	var queryErr *QueryError
	if !errors.As(err, &queryErr) {
		t.Fatalf("error should be a *QueryError, got %T", err)
	}
	if queryErr.CalendarID != "nope" {
		t.Errorf("QueryError.CalendarID = %q", queryErr.CalendarID)
	}

	var apiErr *googleapi.Error
	if !errors.As(err, &apiErr) {
		t.Fatal("QueryError should wrap the underlying googleapi error")
	}
	if apiErr.Code != http.StatusForbidden {
		t.Errorf("wrapped code = %d, want 403", apiErr.Code)
	}
}

func TestListEvents_InvalidWindow(t *testing.T) {
	client, _ := newStubClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no remote call expected for an invalid window")
	})

	_, err := client.ListEvents(context.Background(), "primary",
		Window{Start: "2024-06-16T00:00:00Z", End: "2024-06-15T00:00:00Z"}, 10)
	if err == nil {
		t.Fatal("expected a validation error")
	}

	var queryErr *QueryError
	if errors.As(err, &queryErr) {
		t.Error("validation failures are not remote query errors")
	}
}

func TestListTodaysEvents_Bounds(t *testing.T) {
	client, query := newStubClient(t, func(w http.ResponseWriter, r *http.Request) {
		eventsJSON(w, `{"kind":"calendar#events","items":[]}`)
	})
	jst := time.FixedZone("JST", 9*60*60)
	client.now = func() time.Time {
		return time.Date(2024, 6, 15, 14, 30, 0, 0, jst)
	}

	_, err := client.ListTodaysEvents(context.Background(), "primary", 10)
	if err != nil {
		t.Fatalf("ListTodaysEvents() error = %v", err)
	}

	if got := query.Get("timeMin"); got != "2024-06-15T00:00:00Z" {
		t.Errorf("timeMin = %q, want start of local day", got)
	}
	if got := query.Get("timeMax"); got != "2024-06-15T23:59:59Z" {
		t.Errorf("timeMax = %q, want 23:59:59 of local day", got)
	}
}

func TestListCalendars(t *testing.T) {
	client, _ := newStubClient(t, func(w http.ResponseWriter, r *http.Request) {
		eventsJSON(w, `{"kind":"calendar#calendarList","items":[
			{"id":"primary","summary":"My calendar","primary":true,"accessRole":"owner"},
			{"id":"team@group.calendar.google.com","summary":"Team","accessRole":"reader"}
		]}`)
	})

	calendars, err := client.ListCalendars(context.Background())
	if err != nil {
		t.Fatalf("ListCalendars() error = %v", err)
	}

	if len(calendars) != 2 {
		t.Fatalf("got %d calendars, want 2", len(calendars))
	}
	if !calendars[0].Primary || calendars[0].ID != "primary" {
		t.Errorf("unexpected first calendar: %+v", calendars[0])
	}
}
