package schedule

import (
	"errors"
	"fmt"
)

// ErrAdvanceRunaway is returned when time advancement exceeds the safety
// bound without consuming the requested duration. It signals corrupt input
// (a duration or shift policy no calendar walk can satisfy), never a valid
// schedule.
var ErrAdvanceRunaway = errors.New("schedule: time advancement exceeded safety bound")

// ValidationError reports rejected input before any scheduling work begins.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("schedule: invalid %s: %s", e.Field, e.Reason)
}

func invalidf(field, format string, args ...interface{}) *ValidationError {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
