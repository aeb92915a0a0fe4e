package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jonathan/skillsync/internal/courses"
	"github.com/jonathan/skillsync/internal/dashboard"
	"github.com/jonathan/skillsync/internal/institutional"
	"github.com/jonathan/skillsync/internal/mentorship"
	"github.com/jonathan/skillsync/internal/portfolio"
	"github.com/jonathan/skillsync/internal/profile"
	"github.com/jonathan/skillsync/internal/simulator"
	"github.com/jonathan/skillsync/internal/skills"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintCourses(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintCourses(courses.Search(courses.Query{}), courses.CatalogStats())
	output := buf.String()

	assert.Contains(t, output, "COURSES (")
	assert.Contains(t, output, "avg match 89%")
	assert.Contains(t, output, "12 certificates")
}

func TestPrintCourses_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintCourses(nil, courses.CatalogStats())

	assert.Contains(t, buf.String(), "No courses match")
}

func TestPrintMentors(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	mentors := mentorship.Directory()
	mentors, err := mentorship.Connect(mentors, mentors[0].ID)
	require.NoError(t, err)

	shown := append(mentorship.Connected(mentors), mentorship.Recommended(mentors)...)
	p.PrintMentors(shown, mentorship.ComputeStats(mentors))
	output := buf.String()

	assert.Contains(t, output, "MENTORS")
	assert.Contains(t, output, "connected: 1")
	assert.Contains(t, output, "[connected]")
	assert.Equal(t, 1, strings.Count(output, "[connected]"))
}

func TestPrintMentors_RecommendedOnly(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	mentors, err := mentorship.Connect(mentorship.Directory(), "1")
	require.NoError(t, err)

	p.PrintMentors(mentorship.Recommended(mentors), mentorship.ComputeStats(mentors))

	assert.NotContains(t, buf.String(), "[connected]")
}

func TestPrintPathway(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	prof := profile.New()
	prof.Skills = []string{"Python"}
	pathway := skills.Build(prof, skills.Seed(prof.Skills))

	p.PrintPathway(&pathway)
	output := buf.String()

	assert.Contains(t, output, "SKILL PATHWAY")
	assert.Contains(t, output, "Target: Software Engineer")
	assert.Contains(t, output, "[✓] Python Programming")
	assert.Contains(t, output, "Roadmap:")
}

func TestPrintPortfolio(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	templates := portfolio.Templates()
	templates, err := portfolio.Toggle(templates, templates[0].ID)
	require.NoError(t, err)

	prof := profile.New()
	require.NoError(t, profile.AddProject(prof, "Chat bot", "Answers FAQs"))
	board := portfolio.Build(prof, templates)

	p.PrintPortfolio(&board)
	output := buf.String()

	assert.Contains(t, output, "PORTFOLIO")
	assert.Contains(t, output, "Completed: 1/6")
	assert.Contains(t, output, "Chat bot")
}

func TestPrintScenarioAndResult(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	scenario := simulator.Scenarios()[0]
	p.PrintScenario(scenario)
	assert.Contains(t, buf.String(), scenario.Role)

	buf.Reset()
	result, err := simulator.Submit(scenario.ID, scenario.Options[0].ID)
	require.NoError(t, err)
	p.PrintSimulationResult(&result)

	assert.Contains(t, buf.String(), "SIMULATION RESULT")
	assert.Contains(t, buf.String(), "/100")
}

func TestPrintSimulationSummary_NoAttempts(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	summary := simulator.Summarize(nil)
	p.PrintSimulationSummary(&summary)

	assert.Empty(t, buf.String())
}

func TestPrintDashboard(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	prof := profile.New()
	prof.Name = "Meera"
	prof.Major = "Computer Science"
	profile.Finalize(prof)
	view := dashboard.Build(prof)

	p.PrintDashboard(&view)
	output := buf.String()

	assert.Contains(t, output, "Welcome back, Meera")
	assert.Contains(t, output, "Top career:")
}

func TestPrintInstitutional(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	report := institutional.Build()
	p.PrintInstitutional(&report)
	output := buf.String()

	assert.Contains(t, output, "INSTITUTIONAL ANALYTICS")
	assert.Contains(t, output, "Machine Learning")
	assert.Contains(t, output, "Computer Science: 34%")
}
