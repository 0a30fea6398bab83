package varmask

import (
	"errors"
	"strings"
)

// ErrMissingVariable is returned when a required placeholder is absent from a
// candidate rewrite. Use errors.Is to detect it; the concrete error is a
// *MissingVariableError carrying the full list of missing names.
var ErrMissingVariable = errors.New("missing required variable")

// MissingVariableError reports every required variable absent from an input.
type MissingVariableError struct {
	// Vars holds the missing variable names, sorted, without braces.
	Vars []string
}

// Error implements the error interface.
func (e *MissingVariableError) Error() string {
	return "missing required variable: " + strings.Join(e.Vars, ", ")
}

// Unwrap makes errors.Is(err, ErrMissingVariable) work.
func (e *MissingVariableError) Unwrap() error {
	return ErrMissingVariable
}
