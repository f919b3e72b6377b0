// Package google provides OAuth2 authentication and token management for
// the Google Calendar API.
//
// Credentials are produced by a Manager that tries, in order: the
// persisted token file (refreshing an expired token when a refresh token
// is present), then an interactive browser-based consent flow with a local
// callback listener. Whenever a new or refreshed token is obtained it is
// persisted back to the configured token path.
//
// The TokenProvider interface allows the interactive step to be replaced,
// e.g. with a pre-provisioned token source in non-interactive
// environments.
package google
