package simulator

import "fmt"

// AttemptError represents an answer that cannot be scored
type AttemptError struct {
	Message string
	Cause   error
}

func (e *AttemptError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("attempt error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("attempt error: %s", e.Message)
}

func (e *AttemptError) Unwrap() error {
	return e.Cause
}
