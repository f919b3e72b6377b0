package google

import (
	"fmt"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	calendar "google.golang.org/api/calendar/v3"
)

// AuthError describes a credential failure: a missing or malformed
// client-secret file, a failed refresh, or an interactive flow that could
// not complete.
type AuthError struct {
	Op  string // "client-secret", "refresh", "flow", "persist"
	Err error
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("auth %s: %v", e.Op, e.Err)
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// NewOAuthConfig builds the OAuth2 configuration from a client-secret JSON
// file (the credentials file downloaded from the Google Cloud Console),
// requesting read-only calendar access.
func NewOAuthConfig(clientSecretPath string) (*oauth2.Config, error) {
	b, err := os.ReadFile(clientSecretPath)
	if err != nil {
		return nil, &AuthError{Op: "client-secret", Err: fmt.Errorf("unable to read client secret file: %w", err)}
	}

	conf, err := google.ConfigFromJSON(b, calendar.CalendarReadonlyScope)
	if err != nil {
		return nil, &AuthError{Op: "client-secret", Err: fmt.Errorf("unable to parse client secret file: %w", err)}
	}

	return conf, nil
}
