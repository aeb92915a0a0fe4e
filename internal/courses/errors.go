package courses

import "fmt"

// QueryError represents an invalid course query
type QueryError struct {
	Message string
	Cause   error
}

func (e *QueryError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("query error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("query error: %s", e.Message)
}

func (e *QueryError) Unwrap() error {
	return e.Cause
}
