package assessment

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/skillsync/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTally_EmptyAnswersFallsBackToAnalytical(t *testing.T) {
	got := Tally(map[int]string{})

	assert.Equal(t, "analytical", got.DominantTrait)
	assert.Equal(t, "The Analyst", got.PersonalityType)
	assert.Len(t, got.CareerMatches, 3)
	assert.Empty(t, got.TraitCounts)

	assert.Equal(t, got, Tally(nil))
}

func TestTally_MajorityTraitWins(t *testing.T) {
	// 0:A analytical, 5:D empathetic, 6:B empathetic, 7:C empathetic
	got := Tally(map[int]string{0: "A", 5: "D", 6: "B", 7: "C"})

	assert.Equal(t, "empathetic", got.DominantTrait)
	assert.Equal(t, "The Empathetic Helper", got.PersonalityType)
	require.Len(t, got.CareerMatches, 3)
	assert.Equal(t, "Clinical Psychologist", got.CareerMatches[0].Role)
}

func TestTally_TieGoesToFirstCountedTrait(t *testing.T) {
	tests := []struct {
		name    string
		answers map[int]string
		want    string
	}{
		{
			// analytical, leadership, technical, structured: one each
			name:    "all singletons",
			answers: map[int]string{0: "A", 1: "A", 2: "A", 3: "B"},
			want:    "analytical",
		},
		{
			// 1:C technical, 2:A technical, 5:A research, 7:D research
			name:    "two-way tie",
			answers: map[int]string{1: "C", 2: "A", 5: "A", 7: "D"},
			want:    "technical",
		},
		{
			// 5:B and 7:A artistic, 1:C and 4:C technical
			name:    "tie decided by question order not map order",
			answers: map[int]string{5: "B", 7: "A", 1: "C", 4: "C"},
			want:    "technical",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i < 20; i++ {
				assert.Equal(t, tt.want, Tally(tt.answers).DominantTrait)
			}
		})
	}
}

func TestTally_TraitWithoutProfileFallsBack(t *testing.T) {
	// 0:D collaborative, 3:D collaborative; no collaborative profile exists
	got := Tally(map[int]string{0: "D", 3: "D"})

	assert.Equal(t, "collaborative", got.DominantTrait)
	assert.Equal(t, "The Analyst", got.PersonalityType)
}

func TestTally_SkipsUnknownIndexesAndLetters(t *testing.T) {
	got := Tally(map[int]string{0: "Z", 42: "A", -1: "B", 6: "C"})

	assert.Equal(t, "advocate", got.DominantTrait)
	require.Len(t, got.TraitCounts, 1)
	assert.Equal(t, 1, got.TraitCounts[0].Count)
}

func TestTally_TraitCountsSortedDescending(t *testing.T) {
	got := Tally(map[int]string{0: "A", 4: "A", 1: "C", 5: "A", 6: "B", 7: "C"})

	require.NotEmpty(t, got.TraitCounts)
	for i := 1; i < len(got.TraitCounts); i++ {
		assert.GreaterOrEqual(t, got.TraitCounts[i-1].Count, got.TraitCounts[i].Count)
	}
	assert.Equal(t, "analytical", got.DominantTrait)
}

func TestQuestions(t *testing.T) {
	assert.Equal(t, catalog.Questions(), Questions())
}

func TestParseAnswers(t *testing.T) {
	got, err := ParseAnswers(map[string]string{"0": "a", " 7 ": "D"})
	require.NoError(t, err)
	assert.Equal(t, map[int]string{0: "A", 7: "D"}, got)
}

func TestParseAnswers_Errors(t *testing.T) {
	tests := []struct {
		name string
		raw  map[string]string
	}{
		{"non-numeric key", map[string]string{"first": "A"}},
		{"index out of range", map[string]string{"8": "A"}},
		{"negative index", map[string]string{"-1": "A"}},
		{"unknown letter", map[string]string{"2": "E"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseAnswers(tt.raw)
			var answerErr *AnswerError
			assert.True(t, errors.As(err, &answerErr), "got %v", err)
		})
	}
}

func TestLoadAnswers(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "answers.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"0":"A","1":"C"}`), 0o644))

	got, err := LoadAnswers(path)
	require.NoError(t, err)
	assert.Equal(t, map[int]string{0: "A", 1: "C"}, got)
}

func TestLoadAnswers_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadAnswers(filepath.Join(dir, "missing.json"))
	var loadErr *LoadError
	assert.True(t, errors.As(err, &loadErr))

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`[1,2]`), 0o644))
	_, err = LoadAnswers(bad)
	assert.True(t, errors.As(err, &loadErr))
}

func TestProgress(t *testing.T) {
	assert.Equal(t, 0, Progress(nil))
	assert.Equal(t, 38, Progress(map[int]string{0: "A", 1: "B", 2: "C"}))
	assert.Equal(t, 100, Progress(map[int]string{0: "A", 1: "A", 2: "A", 3: "A", 4: "A", 5: "A", 6: "A", 7: "A"}))
}

func TestLoadAnswers_SchemaViolation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "answers.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"0":"Z"}`), 0o644))

	_, err := LoadAnswers(path)
	var answerErr *AnswerError
	assert.True(t, errors.As(err, &answerErr))
}
