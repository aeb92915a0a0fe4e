package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCareerCategories_Shape(t *testing.T) {
	categories := CareerCategories()
	require.Len(t, categories, 8)
	assert.Equal(t, DefaultCareerKey, categories[0].Key)

	seen := make(map[string]bool)
	for _, c := range categories {
		assert.False(t, seen[c.Key], "duplicate category key %q", c.Key)
		seen[c.Key] = true
		assert.Len(t, c.Roles, 3, "category %q", c.Key)
		assert.NotEmpty(t, c.PersonalityType)
		for _, kw := range c.Keywords {
			assert.Equal(t, strings.ToLower(kw), kw, "keyword %q must be lower-case", kw)
		}
	}
}

func TestCareerCategories_ReturnsCopies(t *testing.T) {
	first := CareerCategories()
	first[0].Roles[0].Role = "mutated"
	first[0].Keywords[0] = "mutated"

	second := CareerCategories()
	assert.Equal(t, "Software Engineer", second[0].Roles[0].Role)
	assert.Equal(t, "computer", second[0].Keywords[0])
}

func TestCareerCategory_Lookup(t *testing.T) {
	law, ok := CareerCategory("law")
	require.True(t, ok)
	assert.Equal(t, "The Legal Advocate", law.PersonalityType)

	fallback, ok := CareerCategory("astronomy")
	assert.False(t, ok)
	assert.Equal(t, DefaultCareerKey, fallback.Key)
}

func TestQuestions_Shape(t *testing.T) {
	qs := Questions()
	require.Len(t, qs, 8)
	for i, q := range qs {
		assert.Equal(t, i+1, q.ID)
		require.Len(t, q.Options, 4)
		for j, opt := range q.Options {
			assert.Equal(t, string(rune('A'+j)), opt.Value)
			assert.NotEmpty(t, opt.Trait)
		}
	}
}

func TestTraitProfile_Fallback(t *testing.T) {
	p, ok := TraitProfile("empathetic")
	require.True(t, ok)
	assert.Equal(t, "The Empathetic Helper", p.PersonalityType)

	p, ok = TraitProfile("collaborative")
	assert.False(t, ok)
	assert.Equal(t, DefaultTrait, p.Trait)
	assert.Len(t, p.Careers, 3)
}

func TestTraitProfiles_AllHaveThreeCareers(t *testing.T) {
	for _, p := range TraitProfiles() {
		assert.Len(t, p.Careers, 3, "trait %q", p.Trait)
	}
}

func TestStaticLists_Sizes(t *testing.T) {
	assert.Len(t, Courses(), 12)
	assert.Len(t, Mentors(), 10)
	assert.Len(t, PathwaySkills(), 10)
	assert.Len(t, Roadmap(), 3)
	assert.Len(t, ProjectTemplates(), 6)
	assert.Len(t, Scenarios(), 5)
	assert.Len(t, CareerTrends(), 6)
	assert.Len(t, SkillGaps(), 6)
	assert.Len(t, Departments(), 5)
	assert.Len(t, CareerPaths(), 5)
	assert.Len(t, CurriculumRecommendations(), 3)
}

func TestSuggestions(t *testing.T) {
	assert.Len(t, SuggestedSkills(), 12)
	assert.Len(t, SuggestedInterests(), 12)
	assert.Len(t, PreferredFields(), 10)
	assert.Equal(t, "Python", SuggestedSkills()[0])
	assert.Equal(t, "Technology", SuggestedInterests()[0])

	skills := SuggestedSkills()
	skills[0] = "changed"
	assert.Equal(t, "Python", SuggestedSkills()[0])
}

func TestMentors_NoneConnected(t *testing.T) {
	for _, m := range Mentors() {
		assert.False(t, m.IsConnected, "mentor %s", m.ID)
	}
}

func TestScenarios_SingleCorrectOptionScoresTotal(t *testing.T) {
	for _, s := range Scenarios() {
		require.Len(t, s.Options, 4)
		correct := 0
		for _, o := range s.Options {
			if o.IsCorrect {
				correct++
				assert.Equal(t, ScenarioTotalScore, o.Score)
			}
			assert.LessOrEqual(t, o.Score, ScenarioTotalScore)
		}
		assert.Equal(t, 1, correct, "scenario %s", s.ID)
	}
}

func TestProjectTemplates_FiveSteps(t *testing.T) {
	for _, p := range ProjectTemplates() {
		assert.Len(t, p.Steps, 5, "project %s", p.ID)
		assert.False(t, p.Completed)
	}
}

func TestPathwaySeed(t *testing.T) {
	seed, ok := PathwaySeed("Python Programming")
	require.True(t, ok)
	assert.Equal(t, "Python", seed)

	_, ok = PathwaySeed("Problem Solving")
	assert.False(t, ok)
}

func TestRoadmap_NamesPathwaySkills(t *testing.T) {
	names := make(map[string]bool)
	for _, s := range PathwaySkills() {
		names[s.Name] = true
	}
	for _, phase := range Roadmap() {
		for _, s := range phase.Skills {
			assert.True(t, names[s], "roadmap skill %q not in pathway", s)
		}
	}
}
