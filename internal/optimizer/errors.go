// Package optimizer orchestrates the CV optimization pipeline.
package optimizer

import "fmt"

// InputError represents an unrecoverable problem with the caller's input:
// a missing profile, a missing job profile, or content that cannot be
// optimized. It aborts the run; there is no fallback.
type InputError struct {
	Message string
	Cause   error
}

func (e *InputError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("input error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("input error: %s", e.Message)
}

func (e *InputError) Unwrap() error {
	return e.Cause
}
