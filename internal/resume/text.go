package resume

import (
	"regexp"
	"strings"
)

var spaceRun = regexp.MustCompile(`[ \t\f\v\x{00a0}]+`)

// CleanText normalizes line endings, collapses runs of spaces, and drops
// blank lines.
func CleanText(content string) string {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(spaceRun.ReplaceAllString(line, " "))
		if line != "" {
			cleaned = append(cleaned, line)
		}
	}
	return strings.Join(cleaned, "\n")
}
