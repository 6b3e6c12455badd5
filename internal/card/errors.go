package card

import (
	"errors"
	"fmt"
)

var (
	// ErrSchema matches every SchemaError via errors.Is
	ErrSchema = errors.New("unrecognized card layout")
	// ErrShape matches every ShapeError via errors.Is
	ErrShape = errors.New("card does not match its layout")
)

// SchemaError reports a record whose layout is missing or unknown
type SchemaError struct {
	Index  int
	Name   string
	Layout string
}

func (e *SchemaError) Error() string {
	if e.Layout == "" {
		return fmt.Sprintf("record %d (%s): missing layout", e.Index, e.Name)
	}
	return fmt.Sprintf("record %d (%s): unrecognized layout %q", e.Index, e.Name, e.Layout)
}

func (e *SchemaError) Is(target error) bool { return target == ErrSchema }

// ShapeError reports a record with a known layout that lacks a required
// field, has the wrong number of faces, or has a field of the wrong type.
type ShapeError struct {
	Index  int
	Name   string
	Layout Layout
	Field  string
	Reason string
	Err    error
}

func (e *ShapeError) Error() string {
	msg := fmt.Sprintf("record %d (%s, %s): %s", e.Index, e.Name, e.Layout, e.Reason)
	if e.Field != "" {
		msg = fmt.Sprintf("record %d (%s, %s): %s: %s", e.Index, e.Name, e.Layout, e.Field, e.Reason)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ShapeError) Is(target error) bool { return target == ErrShape }

func (e *ShapeError) Unwrap() error { return e.Err }
