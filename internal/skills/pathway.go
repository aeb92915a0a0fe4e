// Package skills builds the student's skill pathway: the recommended skills
// with completion state, the high-demand priorities and the learning roadmap.
package skills

import (
	"github.com/jonathan/skillsync/internal/catalog"
	"github.com/jonathan/skillsync/internal/ranking"
	"github.com/jonathan/skillsync/internal/toggle"
	"github.com/jonathan/skillsync/internal/types"
)

const (
	// HighDemandThreshold is the minimum demand for a priority skill
	HighDemandThreshold = 90
	// MaxPriorities caps the priority list
	MaxPriorities = 4
	// DefaultTopCareer is shown when the profile has no career matches
	DefaultTopCareer = "Software Engineer"
)

var completed = toggle.Flag[types.Skill, string]{
	Name: "skill",
	Key:  func(s types.Skill) string { return s.Name },
	Get:  func(s types.Skill) bool { return s.Completed },
	Set: func(s types.Skill, v bool) types.Skill {
		s.Completed = v
		return s
	},
}

// Pathway is the rendered skill pathway view
type Pathway struct {
	TopCareer  string               `json:"top_career"`
	Skills     []types.Skill        `json:"skills"`
	Technical  []types.Skill        `json:"technical"`
	Soft       []types.Skill        `json:"soft"`
	Completed  int                  `json:"completed"`
	Completion int                  `json:"completion"`
	Priorities []types.Skill        `json:"priorities"`
	Roadmap    []types.RoadmapPhase `json:"roadmap"`
}

// Seed returns the pathway skills with completion pre-set for every skill
// whose seed appears exactly in profileSkills.
func Seed(profileSkills []string) []types.Skill {
	have := make(map[string]bool, len(profileSkills))
	for _, s := range profileSkills {
		have[s] = true
	}

	skills := catalog.PathwaySkills()
	for i := range skills {
		if seed, ok := catalog.PathwaySeed(skills[i].Name); ok && have[seed] {
			skills[i].Completed = true
		}
	}
	return skills
}

// Toggle flips completion of the skill called name.
func Toggle(skills []types.Skill, name string) ([]types.Skill, error) {
	return completed.Toggle(skills, name)
}

// Complete marks the skill called name as completed. Completing it twice
// is the same as completing it once.
func Complete(skills []types.Skill, name string) ([]types.Skill, error) {
	return completed.SetTo(skills, name, true)
}

// Priorities returns incomplete high-demand skills in pathway order.
func Priorities(skills []types.Skill) []types.Skill {
	open := ranking.Filter(skills, func(s types.Skill) bool {
		return !s.Completed && s.Demand >= HighDemandThreshold
	})
	return ranking.Top(open, MaxPriorities)
}

// TopCareer returns the headline role for p.
func TopCareer(p *types.Profile) string {
	if top := p.TopMatch(); top != nil && top.Role != "" {
		return top.Role
	}
	return DefaultTopCareer
}

// Build renders the pathway view for p from the current skill state.
func Build(p *types.Profile, skills []types.Skill) Pathway {
	done := ranking.Count(skills, func(s types.Skill) bool { return s.Completed })
	return Pathway{
		TopCareer:  TopCareer(p),
		Skills:     skills,
		Technical:  byCategory(skills, types.SkillCategoryTechnical),
		Soft:       byCategory(skills, types.SkillCategorySoft),
		Completed:  done,
		Completion: ranking.Percent(done, len(skills)),
		Priorities: Priorities(skills),
		Roadmap:    catalog.Roadmap(),
	}
}

func byCategory(skills []types.Skill, category types.SkillCategory) []types.Skill {
	return ranking.FilterByEnum(skills, category, "", func(s types.Skill) types.SkillCategory { return s.Category })
}
