package regression

import (
	"errors"
	"fmt"
	"strconv"
)

// =============================================================================
// SENTINEL ERRORS
// =============================================================================

var (
	// ErrEmptyDataset indicates that the sample set has no points.
	ErrEmptyDataset = errors.New("empty dataset")

	// ErrDataLengthMismatch indicates that x and y have different lengths.
	// Returned errors are *DataLengthMismatchError values.
	ErrDataLengthMismatch = errors.New("x and y lengths differ")

	// ErrDegenerateInput indicates that the closed-form solution is undefined,
	// typically because every x value is identical.
	// Returned errors are *DegenerateInputError values.
	ErrDegenerateInput = errors.New("degenerate input")

	// ErrLogDomain indicates that a non-positive value was fed to a logarithm.
	// Returned errors are *LogDomainError values.
	ErrLogDomain = errors.New("logarithm of non-positive value")

	// ErrZeroVariance indicates that every y value is identical, so R² is undefined.
	// Returned errors are *ZeroVarianceError values.
	ErrZeroVariance = errors.New("zero variance in y")

	// ErrUnknownKind indicates an unrecognized regression type selector.
	ErrUnknownKind = errors.New("unknown regression type")
)

// =============================================================================
// ERROR TYPES
// =============================================================================

// DataLengthMismatchError reports the lengths of the mismatched sequences.
type DataLengthMismatchError struct {
	XLen int
	YLen int
}

// Error implements the error interface.
func (e *DataLengthMismatchError) Error() string {
	return fmt.Sprintf("x and y lengths differ: %d vs %d", e.XLen, e.YLen)
}

// Unwrap returns ErrDataLengthMismatch.
func (e *DataLengthMismatchError) Unwrap() error {
	return ErrDataLengthMismatch
}

// DegenerateInputError describes why the least-squares solution is undefined.
type DegenerateInputError struct {
	Reason string
}

// Error implements the error interface.
func (e *DegenerateInputError) Error() string {
	return "degenerate input: " + e.Reason
}

// Unwrap returns ErrDegenerateInput.
func (e *DegenerateInputError) Unwrap() error {
	return ErrDegenerateInput
}

// LogDomainError identifies the first value that cannot be log-transformed.
type LogDomainError struct {
	// Kind is the fit that required the transform.
	Kind Kind
	// Axis is "x" or "y".
	Axis string
	// Index is the position of the offending sample.
	Index int
	// Value is the offending value.
	Value float64
}

// Error implements the error interface.
func (e *LogDomainError) Error() string {
	return "ln(" + e.Axis + "[" + strconv.Itoa(e.Index) + "]) is undefined for " +
		strconv.FormatFloat(e.Value, 'g', -1, 64)
}

// Unwrap returns ErrLogDomain.
func (e *LogDomainError) Unwrap() error {
	return ErrLogDomain
}

// ZeroVarianceError reports the constant y value that made R² undefined.
type ZeroVarianceError struct {
	Value float64
	N     int
}

// Error implements the error interface.
func (e *ZeroVarianceError) Error() string {
	return fmt.Sprintf("zero variance in y: all %d values equal %g", e.N, e.Value)
}

// Unwrap returns ErrZeroVariance.
func (e *ZeroVarianceError) Unwrap() error {
	return ErrZeroVariance
}

// validatePairs checks the shape shared by every operation: equal, non-zero lengths.
func validatePairs(x, y []float64) error {
	if len(x) != len(y) {
		return &DataLengthMismatchError{XLen: len(x), YLen: len(y)}
	}
	if len(x) == 0 {
		return ErrEmptyDataset
	}

	return nil
}
