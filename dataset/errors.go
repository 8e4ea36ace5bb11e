package dataset

import (
	"errors"
	"fmt"
)

var (
	// ErrIO indicates that the dataset file could not be opened, read, or decompressed.
	ErrIO = errors.New("dataset I/O error")

	// ErrMalformedRecord indicates a line rejected by the strict parser.
	// Returned errors are *ParseError values.
	ErrMalformedRecord = errors.New("malformed record")

	// ErrTooManySamples indicates that the input holds more samples than allowed.
	ErrTooManySamples = errors.New("too many samples")
)

// ParseError locates a malformed record.
type ParseError struct {
	// Line is the 1-based line number.
	Line int
	// Token is the offending token, or the whole line for a field-count error.
	Token string
	// Reason describes the problem.
	Reason string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s: %q", e.Line, e.Reason, e.Token)
}

// Unwrap returns ErrMalformedRecord.
func (e *ParseError) Unwrap() error {
	return ErrMalformedRecord
}
