package generator

import (
	"errors"
	"fmt"
)

// ErrUnknownClass is the sentinel behind every ClassGenerationError
var ErrUnknownClass = errors.New("unknown utility class")

// ErrUnknownBreakpoint is returned by AddResponsiveClass
var ErrUnknownBreakpoint = errors.New("unknown breakpoint")

// ClassGenerationError reports a token that no utility parser accepts.
type ClassGenerationError struct {
	Token string // Full token as given, variants included
	Base  string // Base token after variant resolution
}

func (e *ClassGenerationError) Error() string {
	return fmt.Sprintf("unknown utility class %q", e.Token)
}

func (e *ClassGenerationError) Unwrap() error {
	return ErrUnknownClass
}
