package assessment

import "fmt"

// LoadError represents an error reading an answers file
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

// AnswerError represents an answer that does not name a question or option
type AnswerError struct {
	Message string
	Cause   error
}

func (e *AnswerError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("answer error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("answer error: %s", e.Message)
}

func (e *AnswerError) Unwrap() error {
	return e.Cause
}
