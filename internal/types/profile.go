// Package types provides type definitions for structured data used throughout the skillsync system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Profile is one student's onboarding input plus the results derived from it.
// CareerField, PersonalityType and CareerMatches are either all empty (before
// onboarding is submitted) or all populated.
type Profile struct {
	Name       string    `json:"name"`
	Education  string    `json:"education"`
	Major      string    `json:"major"`
	GPA        float64   `json:"gpa"`
	Skills     []string  `json:"skills"`
	Interests  []string  `json:"interests"`
	Projects   []Project `json:"projects"`
	ResumeText string    `json:"resume_text"`

	CareerField        string      `json:"career_field,omitempty"`
	PersonalityType    string      `json:"personality_type,omitempty"`
	CareerMatches      []RoleMatch `json:"career_matches,omitempty"`
	AssessmentComplete bool        `json:"assessment_complete"`
}

// Project is a project the student has already completed
type Project struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
}

// RoleMatch is a single suggested role. Match is a curated percentage (0-100).
type RoleMatch struct {
	Role        string `json:"role"`
	Match       int    `json:"match"`
	Description string `json:"description"`
	AvgSalary   string `json:"avg_salary"`
	Growth      string `json:"growth"`
}

// TopMatch returns the first career match, or nil before classification.
func (p *Profile) TopMatch() *RoleMatch {
	if p == nil || len(p.CareerMatches) == 0 {
		return nil
	}
	return &p.CareerMatches[0]
}

// IsFinalized reports whether classification results are present.
func (p *Profile) IsFinalized() bool {
	return p != nil && p.CareerField != "" && p.PersonalityType != "" && len(p.CareerMatches) > 0
}
