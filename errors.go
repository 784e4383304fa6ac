package pivotline

import (
	"errors"
	"fmt"
)

// ErrMissingField is returned when a row lacks a cell for a field or pivot key.
var ErrMissingField = errors.New("missing field")

// ErrNotInitialized is returned when rendering a chart that has no surface yet.
var ErrNotInitialized = errors.New("chart not initialized")

// ConfigurationError is shown to the user by the host when the query or configuration cannot be charted.
type ConfigurationError struct {
	Title   string
	Message string
}

func (e ConfigurationError) Error() string {
	return e.Title + ": " + e.Message
}

// ErrorReporter is the host channel that displays configuration errors.
type ErrorReporter interface {
	AddError(ConfigurationError)
}

// ErrorReporterFunc adapts a function to an ErrorReporter.
type ErrorReporterFunc func(ConfigurationError)

// AddError calls f(err).
func (f ErrorReporterFunc) AddError(err ConfigurationError) {
	f(err)
}

var errShape = ConfigurationError{
	Title:   "No Dimensions, Measures, or Pivots",
	Message: "This visualization requires a dimension, a measure, and a pivot.",
}

// LookupError is returned when row Row has no cell for Field, or when its pivoted cell has no entry for Pivot.
type LookupError struct {
	Row   int
	Field string
	Pivot string
}

func (e *LookupError) Error() string {
	if e.Pivot != "" {
		return fmt.Sprintf("row %d: %v: field %q has no value for pivot %q", e.Row, ErrMissingField, e.Field, e.Pivot)
	}
	return fmt.Sprintf("row %d: %v: %q", e.Row, ErrMissingField, e.Field)
}

func (e *LookupError) Unwrap() error {
	return ErrMissingField
}

// ValueError is returned when a cell value cannot be used as a date or number.
type ValueError struct {
	Row   int
	Field string
	Value interface{}
	Err   error
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("row %d: field %q: bad value %v: %v", e.Row, e.Field, e.Value, e.Err)
}

func (e *ValueError) Unwrap() error {
	return e.Err
}
