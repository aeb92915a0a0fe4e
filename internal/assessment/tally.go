// Package assessment scores the psychometric questionnaire: each answer
// counts toward one trait, and the dominant trait selects a personality
// profile from the catalog.
package assessment

import (
	"sort"

	"github.com/jonathan/skillsync/internal/catalog"
	"github.com/jonathan/skillsync/internal/types"
)

// Questions returns the questionnaire in presentation order.
func Questions() []types.Question {
	return catalog.Questions()
}

// Tally counts the trait of each answered option and maps the dominant trait
// to its profile. Answers are keyed by 0-based question index; indexes or
// letters that match no option are skipped.
//
// Ties go to the trait that was counted first while walking the questions in
// order. No answers, or a dominant trait without a profile, yields the
// DefaultTrait profile.
func Tally(answers map[int]string) types.AssessmentResult {
	counts := countTraits(catalog.Questions(), answers)

	dominant := catalog.DefaultTrait
	if len(counts) > 0 {
		sort.SliceStable(counts, func(i, j int) bool {
			return counts[i].Count > counts[j].Count
		})
		dominant = counts[0].Trait
	}

	profile, _ := catalog.TraitProfile(dominant)
	return types.AssessmentResult{
		DominantTrait:   dominant,
		PersonalityType: profile.PersonalityType,
		CareerMatches:   profile.Careers,
		TraitCounts:     counts,
	}
}

// countTraits returns trait counts in order of first increment.
func countTraits(questions []types.Question, answers map[int]string) []types.TraitCount {
	counts := []types.TraitCount{}
	index := make(map[string]int)

	for i, q := range questions {
		letter, ok := answers[i]
		if !ok {
			continue
		}
		trait, ok := optionTrait(q, letter)
		if !ok {
			continue
		}
		if pos, seen := index[trait]; seen {
			counts[pos].Count++
			continue
		}
		index[trait] = len(counts)
		counts = append(counts, types.TraitCount{Trait: trait, Count: 1})
	}
	return counts
}

func optionTrait(q types.Question, letter string) (string, bool) {
	for _, opt := range q.Options {
		if opt.Value == letter {
			return opt.Trait, true
		}
	}
	return "", false
}
