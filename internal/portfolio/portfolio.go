// Package portfolio tracks progress through the guided portfolio projects.
package portfolio

import (
	"github.com/jonathan/skillsync/internal/catalog"
	"github.com/jonathan/skillsync/internal/ranking"
	"github.com/jonathan/skillsync/internal/toggle"
	"github.com/jonathan/skillsync/internal/types"
)

var completed = toggle.Flag[types.ProjectTemplate, string]{
	Name: "project",
	Key:  func(p types.ProjectTemplate) string { return p.ID },
	Get:  func(p types.ProjectTemplate) bool { return p.Completed },
	Set: func(p types.ProjectTemplate, v bool) types.ProjectTemplate {
		p.Completed = v
		return p
	},
}

// Board is the portfolio view: guided projects next to the student's own.
type Board struct {
	Projects    []types.ProjectTemplate `json:"projects"`
	Completed   int                     `json:"completed"`
	Completion  int                     `json:"completion"`
	OwnProjects []types.Project         `json:"own_projects"`
}

// Templates returns the guided projects, none completed.
func Templates() []types.ProjectTemplate {
	return catalog.ProjectTemplates()
}

// Toggle flips completion of the project with id.
func Toggle(projects []types.ProjectTemplate, id string) ([]types.ProjectTemplate, error) {
	return completed.Toggle(projects, id)
}

// Steps returns the step list of the project with id.
func Steps(projects []types.ProjectTemplate, id string) ([]string, error) {
	p, err := completed.Lookup(projects, id)
	if err != nil {
		return nil, err
	}
	return append([]string(nil), p.Steps...), nil
}

// ByCategory returns projects in category, or all when category is empty.
func ByCategory(projects []types.ProjectTemplate, category string) []types.ProjectTemplate {
	return ranking.FilterByEnum(projects, category, "", func(p types.ProjectTemplate) string { return p.Category })
}

// Build renders the board from the project state and the profile.
func Build(p *types.Profile, projects []types.ProjectTemplate) Board {
	done := ranking.Count(projects, func(pr types.ProjectTemplate) bool { return pr.Completed })
	board := Board{
		Projects:    projects,
		Completed:   done,
		Completion:  ranking.Percent(done, len(projects)),
		OwnProjects: []types.Project{},
	}
	if p != nil {
		board.OwnProjects = append(board.OwnProjects, p.Projects...)
	}
	return board
}
