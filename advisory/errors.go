package advisory

import "fmt"

// ValidationError is returned for requests that are rejected before the provider is called.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid advisory request: %s %s", e.Field, e.Reason)
}

// AdvisoryError is returned when the provider fails or its reply does not fit the result shape.
type AdvisoryError struct {
	Err error
}

func (e *AdvisoryError) Error() string {
	return fmt.Sprintf("resale advisory failed: %s", e.Err)
}

func (e *AdvisoryError) Unwrap() error {
	return e.Err
}
