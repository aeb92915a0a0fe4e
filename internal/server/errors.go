package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/skillsync/internal/assessment"
	"github.com/jonathan/skillsync/internal/courses"
	"github.com/jonathan/skillsync/internal/profile"
	"github.com/jonathan/skillsync/internal/resume"
	"github.com/jonathan/skillsync/internal/schemas"
	"github.com/jonathan/skillsync/internal/simulator"
	"github.com/jonathan/skillsync/internal/toggle"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrNotOnboarded indicates the session has no profile yet
type ErrNotOnboarded struct{}

func (e *ErrNotOnboarded) Error() string {
	return "onboarding has not been completed"
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		notFound     *toggle.NotFoundError
		notOnboarded *ErrNotOnboarded
		unsupported  *resume.UnsupportedFormatError
		extraction   *resume.ExtractionError
	)

	switch {
	case err == nil:
		return http.StatusInternalServerError
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &notOnboarded):
		return http.StatusConflict
	case errors.As(err, &unsupported):
		return http.StatusUnsupportedMediaType
	case errors.As(err, &extraction):
		return http.StatusUnprocessableEntity
	case isBadRequest(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func isBadRequest(err error) bool {
	var (
		validation *ErrValidation
		fields     validator.ValidationErrors
		schema     *schemas.ValidationError
		answer     *assessment.AnswerError
		query      *courses.QueryError
		attempt    *simulator.AttemptError
		edit       *profile.EditError
	)
	return errors.As(err, &validation) ||
		errors.As(err, &fields) ||
		errors.As(err, &schema) ||
		errors.As(err, &answer) ||
		errors.As(err, &query) ||
		errors.As(err, &attempt) ||
		errors.As(err, &edit)
}
