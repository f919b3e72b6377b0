package calendar

import (
	"fmt"
	"time"
)

const (
	// timeFormat is the wire format for query bounds. The trailing Z is a
	// literal designator, not a zone directive; see Window.
	timeFormat = "2006-01-02T15:04:05Z"

	// sentinelEnd is the upper bound used when none is given. Chosen to
	// stay within signed 32-bit time representations.
	sentinelEnd = "2038-12-31T23:59:59Z"
)

// Window is a query time window of wire-format timestamp strings
// (YYYY-MM-DDTHH:MM:SSZ). A zero Start means the current timestamp at
// call time; a zero End means sentinelEnd.
//
// Historical quirk, kept deliberately: bounds derived from the local
// clock are wall-clock values serialized with a "Z" designator. Day
// windows therefore describe the local day even though they read as UTC.
type Window struct {
	Start string
	End   string
}

// Validate checks that any explicit bounds parse and that Start does not
// come after End.
func (w Window) Validate() error {
	var start, end time.Time
	var err error

	if w.Start != "" {
		if start, err = time.Parse(timeFormat, w.Start); err != nil {
			return fmt.Errorf("invalid start time %q: %w", w.Start, err)
		}
	}
	if w.End != "" {
		if end, err = time.Parse(timeFormat, w.End); err != nil {
			return fmt.Errorf("invalid end time %q: %w", w.End, err)
		}
	}
	if w.Start != "" && w.End != "" && start.After(end) {
		return fmt.Errorf("start time %s is after end time %s", w.Start, w.End)
	}

	return nil
}

// bounds resolves the window's defaults against the given clock.
func (w Window) bounds(now func() time.Time) (timeMin, timeMax string) {
	timeMin = w.Start
	if timeMin == "" {
		timeMin = now().Format(timeFormat)
	}

	timeMax = w.End
	if timeMax == "" {
		timeMax = sentinelEnd
	}

	return timeMin, timeMax
}

// dayWindow bounds the calendar day containing now, from midnight to
// 23:59:59, in now's location.
func dayWindow(now time.Time) Window {
	year, month, day := now.Date()
	start := time.Date(year, month, day, 0, 0, 0, 0, now.Location())
	end := time.Date(year, month, day, 23, 59, 59, 0, now.Location())

	return Window{
		Start: start.Format(timeFormat),
		End:   end.Format(timeFormat),
	}
}
