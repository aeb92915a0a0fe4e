// Package resume extracts plain resume text from uploaded documents so it can
// feed the classifier alongside the onboarding fields.
package resume

import "fmt"

// UnsupportedFormatError represents a file type with no extractor
type UnsupportedFormatError struct {
	Format string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported resume format: %q", e.Format)
}

// ExtractionError represents a failure reading or decoding a document
type ExtractionError struct {
	Message string
	Cause   error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("extraction error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("extraction error: %s", e.Message)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}
