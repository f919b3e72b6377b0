// Package config loads the process configuration for the agenda CLI.
//
// Configuration comes from environment variables (optionally via a .env
// file): the OAuth2 client-secret path, the token persistence path, and an
// optional calendar-id registry file mapping logical calendar names to
// Google calendar ids.
package config
