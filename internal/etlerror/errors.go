// Package etlerror defines the typed errors surfaced by the ETL pipeline.
// All of them are fatal to a run: the pipeline is fail-fast and writes no
// partial primary output.
package etlerror

import "fmt"

// SourceNotFoundError indicates a configured raw input file is absent.
type SourceNotFoundError struct {
	Path      string
	AccountID string
}

func (e *SourceNotFoundError) Error() string {
	return fmt.Sprintf("missing source file for %s: %s (check the filename and the raw data directory)",
		e.AccountID, e.Path)
}

// ParseError indicates date text that does not match the expected source
// format or denotes an invalid calendar date.
type ParseError struct {
	Field string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s=%q: %v", e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// FieldError indicates a required column is absent from a raw record, or a
// present value (such as the amount) is not usable.
type FieldError struct {
	Column string
	Value  string
	Reason string
}

func (e *FieldError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("column %q: %s", e.Column, e.Reason)
	}
	return fmt.Sprintf("column %q with value %q: %s", e.Column, e.Value, e.Reason)
}
