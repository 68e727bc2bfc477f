package catalog

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingCollection indicates the document lacks the top-level collection key.
	ErrMissingCollection = errors.New("missing top-level collection key")

	// ErrNotCollection indicates the collection key does not map to an array.
	ErrNotCollection = errors.New("collection is not an array")

	// ErrNotRecord indicates a collection entry is not a JSON object.
	ErrNotRecord = errors.New("record is not an object")

	// ErrMissingField indicates a record lacks a required field.
	ErrMissingField = errors.New("missing required field")
)

// LoadError reports a catalog source that could not be read or parsed
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load catalog %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// RecordShapeError identifies a malformed catalog entry
type RecordShapeError struct {
	Source string
	Index  int
	Field  string
	Err    error
}

func (e *RecordShapeError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("catalog %s: record %d: %v", e.Source, e.Index, e.Err)
	}
	return fmt.Sprintf("catalog %s: record %d: field %q: %v", e.Source, e.Index, e.Field, e.Err)
}

func (e *RecordShapeError) Unwrap() error {
	return e.Err
}
