package toggle

import "fmt"

// NotFoundError represents a key that matches no item in the list
type NotFoundError struct {
	Message string
	Cause   error
}

func (e *NotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("not found: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("not found: %s", e.Message)
}

func (e *NotFoundError) Unwrap() error {
	return e.Cause
}
