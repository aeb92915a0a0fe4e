// Package profile manages the lifecycle of a student Profile: incremental
// onboarding edits, finalization by the keyword classifier, and the optional
// re-finalization by the psychometric assessment.
package profile

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jonathan/skillsync/internal/classifier"
	"github.com/jonathan/skillsync/internal/types"
)

// New returns an empty profile ready for onboarding edits.
func New() *types.Profile {
	return &types.Profile{
		Skills:    []string{},
		Interests: []string{},
		Projects:  []types.Project{},
	}
}

// FromRequest builds an unfinalized profile from a submitted onboarding form.
// Blank and repeated skills or interests are dropped, incomplete projects are
// skipped, and the GPA text is parsed with ParseGPA.
func FromRequest(req *types.OnboardingRequest) *types.Profile {
	p := New()
	p.Name = strings.TrimSpace(req.Name)
	p.Education = strings.TrimSpace(req.Education)
	p.Major = strings.TrimSpace(req.Major)
	p.GPA = ParseGPA(req.GPA)
	p.ResumeText = req.ResumeText
	for _, s := range req.Skills {
		AddSkill(p, s)
	}
	for _, i := range req.Interests {
		AddInterest(p, i)
	}
	for _, pr := range req.Projects {
		_ = AddProject(p, pr.Title, pr.Description)
	}
	return p
}

// AddSkill appends skill unless it is blank or already present.
// It reports whether the profile changed.
func AddSkill(p *types.Profile, skill string) bool {
	added := false
	p.Skills, added = addUnique(p.Skills, skill)
	return added
}

// RemoveSkill removes every occurrence of skill.
func RemoveSkill(p *types.Profile, skill string) {
	p.Skills = without(p.Skills, skill)
}

// AddInterest appends interest unless it is blank or already present.
func AddInterest(p *types.Profile, interest string) bool {
	added := false
	p.Interests, added = addUnique(p.Interests, interest)
	return added
}

// RemoveInterest removes every occurrence of interest.
func RemoveInterest(p *types.Profile, interest string) {
	p.Interests = without(p.Interests, interest)
}

// AddProject appends a project. Both title and description are required.
func AddProject(p *types.Profile, title, description string) error {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)
	if title == "" || description == "" {
		return &EditError{Message: "project needs both a title and a description"}
	}
	p.Projects = append(p.Projects, types.Project{Title: title, Description: description})
	return nil
}

// RemoveProject removes the project at index.
func RemoveProject(p *types.Profile, index int) error {
	if index < 0 || index >= len(p.Projects) {
		return &EditError{Message: fmt.Sprintf("project index %d out of range", index)}
	}
	projects := make([]types.Project, 0, len(p.Projects)-1)
	projects = append(projects, p.Projects[:index]...)
	p.Projects = append(projects, p.Projects[index+1:]...)
	return nil
}

// ParseGPA reads the leading decimal number of text, so "8.5/10" is 8.5.
// Text without a leading number yields 0.
func ParseGPA(text string) float64 {
	text = strings.TrimSpace(text)
	end := 0
	dot := false
	for end < len(text) {
		c := text[end]
		if c == '.' && !dot {
			dot = true
		} else if c < '0' || c > '9' {
			if !(end == 0 && (c == '+' || c == '-')) {
				break
			}
		}
		end++
	}
	for end > 0 {
		if v, err := strconv.ParseFloat(text[:end], 64); err == nil {
			return v
		}
		end--
	}
	return 0
}

// Validate checks that p carries what onboarding requires: a name, a major
// and well-formed skills, interests and projects.
func Validate(p *types.Profile) error {
	req := types.OnboardingRequest{
		Name:      p.Name,
		Major:     p.Major,
		Skills:    p.Skills,
		Interests: p.Interests,
		Projects:  p.Projects,
	}
	if err := req.Validate(); err != nil {
		return &EditError{Message: "profile is incomplete", Cause: err}
	}
	return nil
}

// Finalize classifies the onboarding fields and stores the analysis on p.
func Finalize(p *types.Profile) types.CareerAnalysis {
	analysis := classifier.ClassifyProfile(p)
	p.CareerField = analysis.CareerField
	p.PersonalityType = analysis.PersonalityType
	p.CareerMatches = analysis.CareerMatches
	p.AssessmentComplete = true
	return analysis
}

// ApplyAssessment overwrites the personality type and career matches with
// the assessment result. CareerField is left as the classifier set it, so p
// must be finalized first.
func ApplyAssessment(p *types.Profile, result types.AssessmentResult) error {
	if !p.IsFinalized() {
		return &EditError{Message: "profile must be classified before applying an assessment"}
	}
	p.PersonalityType = result.PersonalityType
	p.CareerMatches = append([]types.RoleMatch(nil), result.CareerMatches...)
	p.AssessmentComplete = true
	return nil
}

func addUnique(values []string, value string) ([]string, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return values, false
	}
	for _, v := range values {
		if v == value {
			return values, false
		}
	}
	return append(values, value), true
}

func without(values []string, value string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v != value {
			out = append(out, v)
		}
	}
	return out
}
