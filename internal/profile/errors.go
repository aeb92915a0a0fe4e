package profile

import "fmt"

// LoadError represents an error reading or writing a profile document
type LoadError struct {
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("load error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("load error: %s", e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// EditError represents an onboarding edit that cannot be applied
type EditError struct {
	Message string
	Cause   error
}

func (e *EditError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("edit error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("edit error: %s", e.Message)
}

func (e *EditError) Unwrap() error {
	return e.Cause
}
