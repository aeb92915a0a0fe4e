//nolint:revive // types is a standard Go package name pattern
package types

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// OnboardingRequest is the submitted onboarding form.
// GPA is kept as entered; unparsable text becomes 0 on the profile.
type OnboardingRequest struct {
	Name       string    `json:"name" validate:"required"`
	Education  string    `json:"education"`
	Major      string    `json:"major" validate:"required"`
	GPA        string    `json:"gpa"`
	Skills     []string  `json:"skills" validate:"dive,max=100"`
	Interests  []string  `json:"interests" validate:"dive,max=100"`
	Projects   []Project `json:"projects" validate:"dive"`
	ResumeText string    `json:"resume_text"`
}

// AnswerRequest carries assessment answers keyed by 0-based question index.
type AnswerRequest struct {
	Answers map[int]string `json:"answers" validate:"dive,keys,min=0,max=7,endkeys,oneof=A B C D"`
}

// Normalize upper-cases answer letters and trims surrounding space, so the
// request accepts the same letters as an answers document.
func (r *AnswerRequest) Normalize() {
	for idx, letter := range r.Answers {
		r.Answers[idx] = strings.ToUpper(strings.TrimSpace(letter))
	}
}

// AttemptRequest is a submitted answer to a simulator scenario.
type AttemptRequest struct {
	OptionID string `json:"option_id" validate:"required,oneof=a b c d"`
}

// SkillToggleRequest names a pathway skill to flip.
type SkillToggleRequest struct {
	Name string `json:"name" validate:"required"`
}

// Validate validates the OnboardingRequest using the validator.
func (r *OnboardingRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the AnswerRequest using the validator.
func (r *AnswerRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the AttemptRequest using the validator.
func (r *AttemptRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the SkillToggleRequest using the validator.
func (r *SkillToggleRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
