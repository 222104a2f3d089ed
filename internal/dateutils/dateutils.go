// Package dateutils provides the date handling used by the ETL. The raw
// exports carry calendar dates only; there is no timezone handling anywhere.
package dateutils

import (
	"fmt"
	"strings"
	"time"

	"github.com/hansinirajesh92/finances-tracker-dashboard/internal/etlerror"
)

// Date format constants used throughout the application.
const (
	// DateLayoutSource is the month/day/4-digit-year format of the raw exports.
	DateLayoutSource = "01/02/2006"
	// DateLayoutISO is the canonical output format.
	DateLayoutISO = "2006-01-02"
)

// ParseSourceDate parses a raw export date ("01/02/2026", surrounding
// whitespace tolerated). It rejects text in any other shape and invalid
// calendar dates such as month 13.
func ParseSourceDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayoutSource, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("expected MM/DD/YYYY: %w", err)
	}
	return t, nil
}

// ToISODate formats a time as an ISO calendar date (YYYY-MM-DD).
func ToISODate(t time.Time) string {
	return t.Format(DateLayoutISO)
}

// ToSourceFormat formats a time back into the raw export format.
func ToSourceFormat(t time.Time) string {
	return t.Format(DateLayoutSource)
}

// NormalizeDate converts raw date text into an ISO calendar-date string.
// On failure it returns a ParseError naming the originating column.
func NormalizeDate(column, value string) (string, error) {
	t, err := ParseSourceDate(value)
	if err != nil {
		return "", &etlerror.ParseError{Field: column, Value: value, Err: err}
	}
	return ToISODate(t), nil
}
