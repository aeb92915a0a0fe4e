// Package simulator scores answers to the workplace scenarios of the career
// simulator and summarises the attempt history.
package simulator

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/jonathan/skillsync/internal/catalog"
	"github.com/jonathan/skillsync/internal/ranking"
	"github.com/jonathan/skillsync/internal/toggle"
	"github.com/jonathan/skillsync/internal/types"
)

// Summary aggregates the attempt history
type Summary struct {
	Attempts     int      `json:"attempts"`
	AverageScore int      `json:"average_score"`
	BestScore    int      `json:"best_score"`
	Completed    []string `json:"completed"`
}

// Scenarios returns the simulator scenarios.
func Scenarios() []types.Scenario {
	return catalog.Scenarios()
}

// Get returns the scenario with id.
func Get(id string) (types.Scenario, error) {
	for _, s := range catalog.Scenarios() {
		if s.ID == id {
			return s, nil
		}
	}
	return types.Scenario{}, &toggle.NotFoundError{Message: fmt.Sprintf("scenario %s", id)}
}

// Submit scores optionID on the scenario with id. Every call gets a fresh
// attempt id; resubmitting the same scenario is allowed.
func Submit(scenarioID, optionID string) (types.SimulationResult, error) {
	scenario, err := Get(scenarioID)
	if err != nil {
		return types.SimulationResult{}, err
	}
	for _, opt := range scenario.Options {
		if opt.ID == optionID {
			return types.SimulationResult{
				AttemptID:      uuid.New().String(),
				ScenarioID:     scenario.ID,
				SelectedOption: opt.ID,
				Score:          opt.Score,
				TotalScore:     catalog.ScenarioTotalScore,
				IsCorrect:      opt.IsCorrect,
				Outcome:        opt.Outcome,
			}, nil
		}
	}
	return types.SimulationResult{}, &AttemptError{
		Message: fmt.Sprintf("scenario %s has no option %q", scenarioID, optionID),
	}
}

// Summarize aggregates results. Scores are 0 when there are no results.
func Summarize(results []types.SimulationResult) Summary {
	score := func(r types.SimulationResult) int { return r.Score }
	return Summary{
		Attempts:     len(results),
		AverageScore: ranking.Average(results, score),
		BestScore:    ranking.Max(results, score),
		Completed:    completedIDs(results),
	}
}

// IsCompleted reports whether any result exists for the scenario.
func IsCompleted(results []types.SimulationResult, scenarioID string) bool {
	return ranking.Count(results, func(r types.SimulationResult) bool { return r.ScenarioID == scenarioID }) > 0
}

func completedIDs(results []types.SimulationResult) []string {
	ids := []string{}
	seen := make(map[string]bool)
	for _, r := range results {
		if !seen[r.ScenarioID] {
			seen[r.ScenarioID] = true
			ids = append(ids, r.ScenarioID)
		}
	}
	return ids
}
