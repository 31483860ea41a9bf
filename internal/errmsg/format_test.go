package errmsg

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/llehouerou/storesearch/internal/itunes"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpSearch,
			err:      nil,
			expected: "",
		},
		{
			name:     "search operation",
			op:       OpSearch,
			err:      errors.New("connection reset by peer"),
			expected: "Failed to search the store: connection reset by peer",
		},
		{
			name:     "history operation",
			op:       OpHistorySave,
			err:      errors.New("database is locked"),
			expected: "Failed to save search: database is locked",
		},
		{
			name:     "artwork operation",
			op:       OpArtworkLoad,
			err:      errors.New("timeout"),
			expected: "Failed to load artwork: timeout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Format(tt.op, tt.err)
			if result != tt.expected {
				t.Errorf("Format(%q, %v) = %q, want %q", tt.op, tt.err, result, tt.expected)
			}
		})
	}
}

func TestFormatWith(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		context  string
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpSearch,
			context:  "abba",
			err:      nil,
			expected: "",
		},
		{
			name:     "with context",
			op:       OpSearch,
			context:  "abba",
			err:      errors.New("connection refused"),
			expected: "Failed to search the store 'abba': connection refused",
		},
		{
			name:     "empty context falls back to Format",
			op:       OpOpenStore,
			context:  "",
			err:      errors.New("xdg-open not found"),
			expected: "Failed to open store page: xdg-open not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatWith(tt.op, tt.context, tt.err)
			if result != tt.expected {
				t.Errorf("FormatWith(%q, %q, %v) = %q, want %q", tt.op, tt.context, tt.err, result, tt.expected)
			}
		})
	}
}

type timeoutErr struct{}

func (timeoutErr) Error() string   { return "i/o timeout" }
func (timeoutErr) Timeout() bool   { return true }
func (timeoutErr) Temporary() bool { return true }

func TestCause(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"server error", &itunes.StatusError{Code: 503}, "store unavailable (503)"},
		{"wrapped server error", fmt.Errorf("search: %w", &itunes.StatusError{Code: 500}), "store unavailable (500)"},
		{"rate limited", &itunes.StatusError{Code: 429}, "store is rate limiting requests, try again in a minute"},
		{"client error", &itunes.StatusError{Code: 404}, "store answered 404 Not Found"},
		{"deadline", fmt.Errorf("fetch: %w", context.DeadlineExceeded), "request timed out"},
		{"net timeout", timeoutErr{}, "request timed out"},
		{"other", errors.New("no such host"), "no such host"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Cause(tt.err); got != tt.want {
				t.Errorf("Cause(%v) = %q, want %q", tt.err, got, tt.want)
			}
		})
	}
}
