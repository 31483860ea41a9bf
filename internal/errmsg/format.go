// Package errmsg turns errors into the one-line messages shown in the status
// line.
package errmsg

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/llehouerou/storesearch/internal/itunes"
)

// Op names what the user was trying to do.
type Op string

const (
	OpSearch Op = "search the store"

	OpHistoryLoad  Op = "load recent searches"
	OpHistorySave  Op = "save search"
	OpHistoryClear Op = "clear recent searches"

	OpArtworkLoad Op = "load artwork"
	OpOpenStore   Op = "open store page"

	OpInitialize Op = "initialize application"
)

// Format renders "Failed to <op>: <cause>", or "" for a nil error.
func Format(op Op, err error) string {
	return FormatWith(op, "", err)
}

// FormatWith is Format with the subject of the operation (a query, a URL)
// quoted after the op.
func FormatWith(op Op, subject string, err error) string {
	if err == nil {
		return ""
	}
	if subject != "" {
		return fmt.Sprintf("Failed to %s '%s': %s", op, subject, Cause(err))
	}
	return fmt.Sprintf("Failed to %s: %s", op, Cause(err))
}

// Cause describes err for the status line. Store status codes and timeouts
// get a fixed wording; everything else is err.Error().
func Cause(err error) string {
	var status *itunes.StatusError
	var timeout interface{ Timeout() bool }
	switch {
	case errors.As(err, &status):
		switch {
		case status.Code == http.StatusTooManyRequests:
			return "store is rate limiting requests, try again in a minute"
		case status.Code >= 500:
			return fmt.Sprintf("store unavailable (%d)", status.Code)
		default:
			return fmt.Sprintf("store answered %d %s", status.Code, http.StatusText(status.Code))
		}
	case errors.Is(err, context.DeadlineExceeded),
		errors.As(err, &timeout) && timeout.Timeout():
		return "request timed out"
	default:
		return err.Error()
	}
}
