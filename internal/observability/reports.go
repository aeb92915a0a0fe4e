package observability

import (
	"fmt"
	"strings"

	"github.com/jonathan/skillsync/internal/courses"
	"github.com/jonathan/skillsync/internal/dashboard"
	"github.com/jonathan/skillsync/internal/institutional"
	"github.com/jonathan/skillsync/internal/mentorship"
	"github.com/jonathan/skillsync/internal/portfolio"
	"github.com/jonathan/skillsync/internal/simulator"
	"github.com/jonathan/skillsync/internal/skills"
	"github.com/jonathan/skillsync/internal/types"
)

func check(done bool) string {
	if done {
		return "✓"
	}
	return " "
}

// PrintCourses outputs the filtered courses under the catalog-wide stats.
func (p *Printer) PrintCourses(list []types.Course, stats courses.Stats) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Catalog: %d courses · avg match %d%% · %d certificates · %d online\n\n",
		stats.Total, stats.AvgMatch, stats.Certificates, stats.Online))

	if len(list) == 0 {
		sb.WriteString("No courses match the current filters.")
		p.printBox("COURSES", sb.String())
		return
	}

	for i, c := range list {
		sb.WriteString(fmt.Sprintf("%s (%d%%)\n", c.Title, c.MatchScore))
		sb.WriteString(fmt.Sprintf("  %s · %s · %s · %s\n", c.Provider, c.Type, c.Duration, c.Price))
		if i < len(list)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox(fmt.Sprintf("COURSES (%d shown)", len(list)), strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMentors outputs the recommended mentors and the connection count.
func (p *Printer) PrintMentors(list []types.Mentor, stats mentorship.Stats) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Recommended: %d · connected: %d · avg match %d%% · top %d%%\n\n",
		stats.Recommended, stats.Connected, stats.AvgMatch, stats.TopMatch))

	for i, m := range list {
		status := ""
		if m.IsConnected {
			status = " [connected]"
		}
		sb.WriteString(fmt.Sprintf("[%s] %s (%d%%)%s\n", mentorship.Initials(m.Name), m.Name, m.MatchScore, status))
		sb.WriteString(fmt.Sprintf("  %s @ %s · %s\n", m.Role, m.Company, m.Availability))
		sb.WriteString(fmt.Sprintf("  id: %s\n", m.ID))
		if i < len(list)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("MENTORS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintPathway outputs the skill pathway, its priorities and the roadmap.
func (p *Printer) PrintPathway(pathway *skills.Pathway) {
	if pathway == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Target: %s\n", pathway.TopCareer))
	sb.WriteString(fmt.Sprintf("Progress: %d/%d skills (%d%%)\n\n", pathway.Completed, len(pathway.Skills), pathway.Completion))

	for _, group := range []struct {
		title string
		items []types.Skill
	}{{"Technical", pathway.Technical}, {"Soft", pathway.Soft}} {
		sb.WriteString(group.title + ":\n")
		for _, s := range group.items {
			sb.WriteString(fmt.Sprintf("  [%s] %s · %s · %d%% demand\n", check(s.Completed), s.Name, s.TimeToLearn, s.Demand))
		}
		sb.WriteString("\n")
	}

	if len(pathway.Priorities) > 0 {
		sb.WriteString("Priorities:\n")
		for _, s := range pathway.Priorities {
			sb.WriteString(fmt.Sprintf("  • %s\n", s.Name))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("Roadmap:\n")
	for _, phase := range pathway.Roadmap {
		sb.WriteString(fmt.Sprintf("  %s: %s\n", phase.Period, strings.Join(phase.Skills, ", ")))
	}

	p.printBox("SKILL PATHWAY", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintPortfolio outputs the guided projects with completion marks.
func (p *Printer) PrintPortfolio(board *portfolio.Board) {
	if board == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Completed: %d/%d (%d%%)\n\n", board.Completed, len(board.Projects), board.Completion))
	for _, proj := range board.Projects {
		sb.WriteString(fmt.Sprintf("[%s] %s (%s)\n", check(proj.Completed), proj.Title, proj.ID))
		sb.WriteString(fmt.Sprintf("    %s · %s · %s\n", proj.Category, proj.Difficulty, proj.Duration))
	}

	if len(board.OwnProjects) > 0 {
		sb.WriteString("\nYour projects:\n")
		count := min(len(board.OwnProjects), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", board.OwnProjects[i].Title))
		}
		writeMore(&sb, len(board.OwnProjects), count, "projects")
	}

	p.printBox("PORTFOLIO", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintScenario outputs a scenario's situation and response options.
func (p *Printer) PrintScenario(s types.Scenario) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s · %s · %s\n\n", s.Role, s.Difficulty, s.Duration))
	sb.WriteString(s.Situation + "\n\n")
	for _, opt := range s.Options {
		sb.WriteString(fmt.Sprintf("  %s) %s\n", opt.ID, opt.Text))
	}

	p.printBox(strings.ToUpper(s.Title), strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSimulationResult outputs the outcome of one scenario attempt.
func (p *Printer) PrintSimulationResult(result *types.SimulationResult) {
	if result == nil {
		return
	}

	verdict := "✗ Not the best choice"
	if result.IsCorrect {
		verdict = "✓ Best choice"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s\n", verdict))
	sb.WriteString(fmt.Sprintf("Score: %d/%d\n\n", result.Score, result.TotalScore))
	sb.WriteString(result.Outcome)

	p.printBox("SIMULATION RESULT", sb.String())
}

// PrintSimulationSummary outputs aggregate attempt statistics.
func (p *Printer) PrintSimulationSummary(summary *simulator.Summary) {
	if summary == nil || summary.Attempts == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Attempts:  %d\n", summary.Attempts))
	sb.WriteString(fmt.Sprintf("Average:   %d\n", summary.AverageScore))
	sb.WriteString(fmt.Sprintf("Best:      %d\n", summary.BestScore))
	sb.WriteString(fmt.Sprintf("Completed: %s", strings.Join(summary.Completed, ", ")))

	p.printBox("SIMULATION SUMMARY", sb.String())
}

// PrintDashboard outputs the student dashboard.
func (p *Printer) PrintDashboard(view *dashboard.View) {
	if view == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Welcome back, %s\n", view.Name))
	if view.PersonalityType != "" {
		sb.WriteString(fmt.Sprintf("%s · %s\n", view.PersonalityType, view.CareerField))
	}
	sb.WriteString(fmt.Sprintf("%s in %s · GPA %.1f\n\n", view.Education, view.Major, view.GPA))

	if view.TopCareer != nil {
		sb.WriteString(fmt.Sprintf("Top career: %s (%d%%)\n\n", view.TopCareer.Role, view.TopCareer.Match))
	}

	if len(view.Careers) > 0 {
		sb.WriteString("Career matches:\n")
		for _, c := range view.Careers {
			sb.WriteString(fmt.Sprintf("  • %s (%d%%) from %s\n", c.Role, c.Match, c.SalaryFrom))
		}
		sb.WriteString("\n")
	}

	sb.WriteString(fmt.Sprintf("Skills:    %s\n", strings.Join(view.Skills, ", ")))
	sb.WriteString(fmt.Sprintf("Interests: %s\n", strings.Join(view.Interests, ", ")))
	sb.WriteString(fmt.Sprintf("Projects:  %d", view.Projects))

	p.printBox("DASHBOARD", sb.String())
}

// PrintInstitutional outputs the institution-wide analytics report.
func (p *Printer) PrintInstitutional(report *institutional.Report) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Students:   %d\n", report.Stats.Total))
	sb.WriteString(fmt.Sprintf("Active:     %d (%d%%)\n", report.Stats.ActiveUsers, report.EngagementRate))
	sb.WriteString(fmt.Sprintf("Assessed:   %d (%d%%)\n", report.Stats.AssessmentsCompleted, report.CompletionRate))
	sb.WriteString(fmt.Sprintf("Avg match:  %d%%\n\n", report.Stats.AvgMatchScore))

	sb.WriteString("Critical skill gaps:\n")
	for _, g := range report.CriticalGaps {
		sb.WriteString(fmt.Sprintf("  ⚠ %s: demand %d, supply %d\n", g.Skill, g.Demand, g.Supply))
	}
	sb.WriteString("\n")

	sb.WriteString("Departments:\n")
	for _, d := range report.Departments {
		sb.WriteString(fmt.Sprintf("  • %s: %d%%\n", d.Name, d.Share))
	}
	sb.WriteString("\n")

	sb.WriteString("Popular paths:\n")
	count := min(len(report.CareerPaths), maxItemsToShow)
	for i := 0; i < count; i++ {
		cp := report.CareerPaths[i]
		sb.WriteString(fmt.Sprintf("  • %s: %d students (%s)\n", cp.Role, cp.Students, cp.Growth))
	}

	p.printBox("INSTITUTIONAL ANALYTICS", strings.TrimSuffix(sb.String(), "\n"))
}
