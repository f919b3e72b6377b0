// Package logging provides structured logging utilities for the agenda CLI.
//
// This package centralizes logging patterns to ensure consistent, structured
// logging throughout the codebase using the standard library's slog package:
// handler setup from a level name, shared attribute keys, and helpers for
// attaching operation, calendar, status, and error attributes.
package logging
