// Package calendar provides a read-only client for the Google Calendar API.
//
// The client fetches event lists for a calendar within a time window,
// expanding recurring events and ordering by start time as the remote
// service returns them. Query bounds are wire-format timestamp strings; a
// missing lower bound means "now" and a missing upper bound means a fixed
// far-future sentinel.
//
// Example usage:
//
//	ctx := context.Background()
//	httpClient, err := manager.Client(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	client, err := calendar.NewClient(ctx, httpClient)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// List upcoming events
//	events, err := client.ListEvents(ctx, "primary", calendar.Window{}, 10)
package calendar
