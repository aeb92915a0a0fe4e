// Package observability provides formatted output utilities for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/skillsync/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for the CLI commands
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to at most n runes, marking the cut with "..."
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

func writeMore(sb *strings.Builder, total, shown int, noun string) {
	if total > shown {
		sb.WriteString(fmt.Sprintf("  ... and %d more %s\n", total-shown, noun))
	}
}

func writeRoles(sb *strings.Builder, roles []types.RoleMatch) {
	count := min(len(roles), maxItemsToShow)
	for i := 0; i < count; i++ {
		role := roles[i]
		sb.WriteString(fmt.Sprintf("#%d  %s (%d%%)\n", i+1, role.Role, role.Match))
		if role.AvgSalary != "" || role.Growth != "" {
			sb.WriteString(fmt.Sprintf("    %s · %s growth\n", role.AvgSalary, role.Growth))
		}
	}
	writeMore(sb, len(roles), count, "roles")
}

// PrintAnalysis outputs the career field, personality label and suggested roles.
func (p *Printer) PrintAnalysis(analysis *types.CareerAnalysis, scores []types.CategoryScore) {
	if analysis == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Field:        %s\n", analysis.CareerField))
	sb.WriteString(fmt.Sprintf("Personality:  %s\n", analysis.PersonalityType))
	sb.WriteString("\n")

	if len(scores) > 0 {
		sb.WriteString("Keyword hits:\n")
		for _, s := range scores {
			if s.Score == 0 {
				continue
			}
			sb.WriteString(fmt.Sprintf("  • %s: %d (%s)\n", s.Key, s.Score, strings.Join(s.Matched, ", ")))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("Career matches:\n")
	writeRoles(&sb, analysis.CareerMatches)

	p.printBox("CAREER ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintQuestion outputs one assessment question with its lettered options.
func (p *Printer) PrintQuestion(q types.Question, progress int) {
	var sb strings.Builder
	sb.WriteString(q.Question + "\n\n")
	for _, opt := range q.Options {
		sb.WriteString(fmt.Sprintf("  %s) %s\n", opt.Value, opt.Text))
	}
	sb.WriteString(fmt.Sprintf("\nProgress: %d%%", progress))

	p.printBox(fmt.Sprintf("QUESTION %d", q.ID), sb.String())
}

// PrintAssessment outputs the dominant trait and the roles it suggests.
func (p *Printer) PrintAssessment(result *types.AssessmentResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Dominant trait: %s\n", result.DominantTrait))
	sb.WriteString(fmt.Sprintf("Personality:    %s\n", result.PersonalityType))
	sb.WriteString("\n")

	if len(result.TraitCounts) > 0 {
		sb.WriteString("Traits:\n")
		for _, tc := range result.TraitCounts {
			sb.WriteString(fmt.Sprintf("  • %-14s %s\n", tc.Trait, strings.Repeat("■", tc.Count)))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("Career matches:\n")
	writeRoles(&sb, result.CareerMatches)

	p.printBox("ASSESSMENT RESULT", strings.TrimSuffix(sb.String(), "\n"))
}
