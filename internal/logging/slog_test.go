package logging

import (
	"errors"
	"log/slog"
	"testing"
)

func TestSetup(t *testing.T) {
	tests := []struct {
		name  string
		level string
	}{
		{"debug", "debug"},
		{"info", "info"},
		{"warn", "warn"},
		{"error", "error"},
		{"mixed case", "DEBUG"},
		{"unknown falls back to info", "verbose"},
		{"empty falls back to info", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := Setup(tt.level)
			if logger == nil {
				t.Fatal("Setup returned nil")
			}
			if slog.Default() != logger {
				t.Error("Setup should install the logger as default")
			}
		})
	}
}

func TestWithOperation(t *testing.T) {
	logger := slog.Default()
	result := WithOperation(logger, "events.list")
	if result == nil {
		t.Error("WithOperation returned nil")
	}
}

func TestWithCalendar(t *testing.T) {
	logger := slog.Default()
	result := WithCalendar(logger, "primary")
	if result == nil {
		t.Error("WithCalendar returned nil")
	}
}

func TestOperationAttr(t *testing.T) {
	attr := Operation("events.list")
	if attr.Key != KeyOperation {
		t.Errorf("Operation key = %q, want %q", attr.Key, KeyOperation)
	}
	if attr.Value.String() != "events.list" {
		t.Errorf("Operation value = %q, want %q", attr.Value.String(), "events.list")
	}
}

func TestCalendarAttr(t *testing.T) {
	attr := Calendar("primary")
	if attr.Key != KeyCalendar {
		t.Errorf("Calendar key = %q, want %q", attr.Key, KeyCalendar)
	}
	if attr.Value.String() != "primary" {
		t.Errorf("Calendar value = %q, want %q", attr.Value.String(), "primary")
	}
}

func TestStatusAttr(t *testing.T) {
	attr := Status(StatusSuccess)
	if attr.Key != KeyStatus {
		t.Errorf("Status key = %q, want %q", attr.Key, KeyStatus)
	}
	if attr.Value.String() != StatusSuccess {
		t.Errorf("Status value = %q, want %q", attr.Value.String(), StatusSuccess)
	}
}

func TestErrAttr(t *testing.T) {
	err := errors.New("boom")
	attr := Err(err)
	if attr.Key != KeyError {
		t.Errorf("Err key = %q, want %q", attr.Key, KeyError)
	}
	if attr.Value.String() != "boom" {
		t.Errorf("Err value = %q, want %q", attr.Value.String(), "boom")
	}
}

func TestErrAttr_Nil(t *testing.T) {
	attr := Err(nil)
	// Empty group attributes are omitted by slog
	if attr.Key != "" {
		t.Errorf("Err(nil) key = %q, want empty", attr.Key)
	}
}

func TestSanitizeToken(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  string
	}{
		{"empty token", "", "<empty>"},
		{"short token", "abc", "[token:3 chars]"},
		{"long token", "ya29.a0AfH6SMBx7cE2qk", "[token:21 chars]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeToken(tt.token); got != tt.want {
				t.Errorf("SanitizeToken(%q) = %q, want %q", tt.token, got, tt.want)
			}
		})
	}
}
