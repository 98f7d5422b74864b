package engine

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a record id is not part of the dataset.
var ErrNotFound = errors.New("record not found")

// InputLoadError means the raw text could not be read at all.
type InputLoadError struct {
	Source string
	Err    error
}

func (e *InputLoadError) Error() string {
	return fmt.Sprintf("load %s: %v", e.Source, e.Err)
}

func (e *InputLoadError) Unwrap() error { return e.Err }

// MalformedInputError means a table boundary marker is missing.
type MalformedInputError struct {
	Marker string
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("malformed input: marker %q not found", e.Marker)
}

// MalformedRowError points at the zero-based line of the cleaned text.
type MalformedRowError struct {
	Line   int
	Reason string
}

func (e *MalformedRowError) Error() string {
	return fmt.Sprintf("malformed row %d: %s", e.Line, e.Reason)
}
