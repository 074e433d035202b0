package models

import "fmt"

// InvalidInputError reports a spec field that failed validation. It is
// surfaced to the user before any curve, ratio or XML generation runs.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input %q: %s", e.Field, e.Reason)
}
