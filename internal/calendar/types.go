package calendar

import (
	"time"

	calendar "google.golang.org/api/calendar/v3"
)

// Event represents a single calendar occurrence as returned by the remote
// service. Start and End keep the raw wire values (an RFC3339 date-time,
// or a bare date for all-day events) so output matches what the API
// returned; StartTime/EndTime hold the parsed equivalents.
type Event struct {
	ID          string
	Summary     string
	Description string
	Location    string
	Status      string
	Organizer   string

	Start     string
	End       string
	StartTime time.Time
	EndTime   time.Time
	AllDay    bool
}

// CalendarInfo represents information about a calendar
type CalendarInfo struct {
	ID          string
	Summary     string
	Description string
	TimeZone    string
	Primary     bool
	AccessRole  string // "owner", "writer", "reader", "freeBusyReader"
}

// toEvent converts a Google Calendar event to an Event
func toEvent(item *calendar.Event) Event {
	if item == nil {
		return Event{}
	}

	ev := Event{
		ID:          item.Id,
		Summary:     item.Summary,
		Description: item.Description,
		Location:    item.Location,
		Status:      item.Status,
	}

	if item.Organizer != nil {
		ev.Organizer = item.Organizer.Email
	}

	ev.Start, ev.StartTime, ev.AllDay = parseEventTime(item.Start)
	ev.End, ev.EndTime, _ = parseEventTime(item.End)

	return ev
}

// parseEventTime extracts the raw wire value and parsed time from an
// event boundary. All-day events carry a bare date instead of a
// date-time.
func parseEventTime(edt *calendar.EventDateTime) (raw string, parsed time.Time, allDay bool) {
	if edt == nil {
		return "", time.Time{}, false
	}

	if edt.DateTime != "" {
		if t, err := time.Parse(time.RFC3339, edt.DateTime); err == nil {
			parsed = t
		}
		return edt.DateTime, parsed, false
	}

	if edt.Date != "" {
		if t, err := time.Parse("2006-01-02", edt.Date); err == nil {
			parsed = t
		}
		return edt.Date, parsed, true
	}

	return "", time.Time{}, false
}

// toCalendarInfo converts a Google Calendar list entry to CalendarInfo
func toCalendarInfo(entry *calendar.CalendarListEntry) CalendarInfo {
	if entry == nil {
		return CalendarInfo{}
	}
	return CalendarInfo{
		ID:          entry.Id,
		Summary:     entry.Summary,
		Description: entry.Description,
		TimeZone:    entry.TimeZone,
		Primary:     entry.Primary,
		AccessRole:  entry.AccessRole,
	}
}
