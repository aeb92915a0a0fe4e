// Package classifier assigns a career category to onboarding input by
// counting catalog keywords found in the combined, lower-cased text.
//
// Matching is plain substring containment with no word boundaries, so short
// keywords such as "it" or "ai" also match inside longer words.
package classifier

import (
	"strings"

	"github.com/jonathan/skillsync/internal/catalog"
	"github.com/jonathan/skillsync/internal/types"
)

// Input is the onboarding text the classifier scores.
type Input struct {
	Major      string
	Skills     []string
	Interests  []string
	ResumeText string
}

// Blob builds the lower-cased text the keywords are matched against.
func Blob(in Input) string {
	parts := []string{
		in.Major,
		strings.Join(in.Skills, " "),
		strings.Join(in.Interests, " "),
		in.ResumeText,
	}
	return strings.ToLower(strings.Join(parts, " "))
}

// ScoreCategories scores every catalog category against the input, in
// catalog order. Each keyword counts at most once.
func ScoreCategories(in Input) []types.CategoryScore {
	blob := Blob(in)
	categories := catalog.CareerCategories()

	scores := make([]types.CategoryScore, 0, len(categories))
	for _, c := range categories {
		scores = append(scores, scoreCategory(c, blob))
	}
	return scores
}

func scoreCategory(c types.CareerCategory, blob string) types.CategoryScore {
	score := types.CategoryScore{Key: c.Key, Matched: []string{}}
	for _, kw := range c.Keywords {
		if strings.Contains(blob, kw) {
			score.Score++
			score.Matched = append(score.Matched, kw)
		}
	}
	return score
}

// Classify picks the category with the strictly highest keyword count.
// The default category holds the lead at zero, so ties and empty input keep
// the earliest category seen.
func Classify(in Input) types.CareerAnalysis {
	bestKey := catalog.DefaultCareerKey
	bestScore := 0
	for _, s := range ScoreCategories(in) {
		if s.Score > bestScore {
			bestKey = s.Key
			bestScore = s.Score
		}
	}

	category, _ := catalog.CareerCategory(bestKey)
	return types.CareerAnalysis{
		CareerField:     category.Key,
		PersonalityType: category.PersonalityType,
		CareerMatches:   category.Roles,
	}
}

// FromProfile collects the onboarding fields of p that feed classification.
func FromProfile(p *types.Profile) Input {
	if p == nil {
		return Input{}
	}
	return Input{
		Major:      p.Major,
		Skills:     p.Skills,
		Interests:  p.Interests,
		ResumeText: p.ResumeText,
	}
}

// ClassifyProfile classifies the onboarding fields of p.
func ClassifyProfile(p *types.Profile) types.CareerAnalysis {
	return Classify(FromProfile(p))
}
