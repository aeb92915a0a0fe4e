// Package dashboard renders the student's home view from a finalized profile.
package dashboard

import (
	"strings"

	"github.com/jonathan/skillsync/internal/ranking"
	"github.com/jonathan/skillsync/internal/types"
)

// PreviewLimit caps the skills and interests shown on the dashboard
const PreviewLimit = 5

// View is the dashboard content
type View struct {
	Name            string           `json:"name"`
	PersonalityType string           `json:"personality_type"`
	CareerField     string           `json:"career_field"`
	Education       string           `json:"education"`
	Major           string           `json:"major"`
	GPA             float64          `json:"gpa"`
	TopCareer       *types.RoleMatch `json:"top_career,omitempty"`
	Careers         []CareerCard     `json:"careers"`
	Skills          []string         `json:"skills"`
	Interests       []string         `json:"interests"`
	Projects        int              `json:"projects"`
}

// CareerCard is a compact career match with the salary floor only
type CareerCard struct {
	Role        string `json:"role"`
	Match       int    `json:"match"`
	Description string `json:"description"`
	SalaryFrom  string `json:"salary_from"`
	Growth      string `json:"growth"`
}

// Build renders p. A profile that was never finalized has no top career.
func Build(p *types.Profile) View {
	if p == nil {
		return View{Careers: []CareerCard{}, Skills: []string{}, Interests: []string{}}
	}
	v := View{
		Name:            p.Name,
		PersonalityType: p.PersonalityType,
		CareerField:     p.CareerField,
		Education:       p.Education,
		Major:           p.Major,
		GPA:             p.GPA,
		Careers:         make([]CareerCard, 0, len(p.CareerMatches)),
		Skills:          ranking.Top(p.Skills, PreviewLimit),
		Interests:       ranking.Top(p.Interests, PreviewLimit),
		Projects:        len(p.Projects),
	}
	if top := p.TopMatch(); top != nil {
		match := *top
		v.TopCareer = &match
	}
	for _, m := range p.CareerMatches {
		v.Careers = append(v.Careers, CareerCard{
			Role:        m.Role,
			Match:       m.Match,
			Description: m.Description,
			SalaryFrom:  SalaryFloor(m.AvgSalary),
			Growth:      m.Growth,
		})
	}
	return v
}

// SalaryFloor returns the lower bound of a "low - high" salary range.
func SalaryFloor(salary string) string {
	low, _, _ := strings.Cut(salary, " - ")
	return low
}
