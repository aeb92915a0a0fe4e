package assessment

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/jonathan/skillsync/internal/catalog"
	"github.com/jonathan/skillsync/internal/ranking"
	"github.com/jonathan/skillsync/internal/schemas"
)

// ParseAnswers converts answers keyed by question index text ("0".."7") into
// the form Tally expects. Letters are upper-cased before checking.
func ParseAnswers(raw map[string]string) (map[int]string, error) {
	questions := catalog.Questions()
	answers := make(map[int]string, len(raw))

	for key, value := range raw {
		idx, err := strconv.Atoi(strings.TrimSpace(key))
		if err != nil {
			return nil, &AnswerError{
				Message: fmt.Sprintf("question key %q is not an index", key),
				Cause:   err,
			}
		}
		if idx < 0 || idx >= len(questions) {
			return nil, &AnswerError{
				Message: fmt.Sprintf("question index %d out of range 0-%d", idx, len(questions)-1),
			}
		}
		letter := strings.ToUpper(strings.TrimSpace(value))
		if _, ok := optionTrait(questions[idx], letter); !ok {
			return nil, &AnswerError{
				Message: fmt.Sprintf("question %d has no option %q", idx, value),
			}
		}
		answers[idx] = letter
	}
	return answers, nil
}

// LoadAnswers reads a JSON object of index to option letter from path.
func LoadAnswers(path string) (map[int]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("failed to read file %s", path),
			Cause:   err,
		}
	}

	var raw map[string]string
	if err := json.Unmarshal(content, &raw); err != nil {
		return nil, &LoadError{
			Message: "failed to unmarshal JSON",
			Cause:   err,
		}
	}
	if err := schemas.ValidateDocument(schemas.AnswersSchema, content); err != nil {
		return nil, &AnswerError{
			Message: fmt.Sprintf("answers in %s do not match schema", path),
			Cause:   err,
		}
	}

	return ParseAnswers(raw)
}

// Progress returns how many questions have an answer, as a rounded
// percentage of the questionnaire.
func Progress(answers map[int]string) int {
	total := len(catalog.Questions())
	answered := 0
	for i := 0; i < total; i++ {
		if _, ok := answers[i]; ok {
			answered++
		}
	}
	return ranking.Percent(answered, total)
}
