// Package institutional computes the analytics shown to placement cells and
// faculty: engagement, skill gaps against industry demand, department mix.
package institutional

import (
	"github.com/jonathan/skillsync/internal/catalog"
	"github.com/jonathan/skillsync/internal/ranking"
	"github.com/jonathan/skillsync/internal/types"
)

// HighlightedGaps is how many of the widest skill gaps are called out
const HighlightedGaps = 3

// DepartmentShare is a department with its share of all students
type DepartmentShare struct {
	types.Department
	Share int `json:"share"`
}

// Report is the full institutional dashboard
type Report struct {
	Stats           types.StudentStats               `json:"stats"`
	EngagementRate  int                              `json:"engagement_rate"`
	CompletionRate  int                              `json:"completion_rate"`
	Trends          []types.CareerTrend              `json:"trends"`
	CareerPaths     []types.CareerPath               `json:"career_paths"`
	SkillGaps       []types.SkillGap                 `json:"skill_gaps"`
	CriticalGaps    []types.SkillGap                 `json:"critical_gaps"`
	Departments     []DepartmentShare                `json:"departments"`
	Recommendations []types.CurriculumRecommendation `json:"recommendations"`
}

// Build assembles the report from the catalog analytics.
func Build() Report {
	stats := catalog.StudentStats()
	gaps := RankGaps(catalog.SkillGaps())
	return Report{
		Stats:           stats,
		EngagementRate:  ranking.Percent(stats.ActiveUsers, stats.Total),
		CompletionRate:  ranking.Percent(stats.AssessmentsCompleted, stats.ActiveUsers),
		Trends:          catalog.CareerTrends(),
		CareerPaths:     catalog.CareerPaths(),
		SkillGaps:       gaps,
		CriticalGaps:    ranking.Top(gaps, HighlightedGaps),
		Departments:     Shares(catalog.Departments()),
		Recommendations: catalog.CurriculumRecommendations(),
	}
}

// RankGaps orders gaps widest first; equal gaps keep their input order.
func RankGaps(gaps []types.SkillGap) []types.SkillGap {
	return ranking.SortByScoreDesc(gaps, func(g types.SkillGap) int { return g.Gap })
}

// Shares computes each department's rounded percentage of the total.
func Shares(departments []types.Department) []DepartmentShare {
	total := 0
	for _, d := range departments {
		total += d.Value
	}
	out := make([]DepartmentShare, len(departments))
	for i, d := range departments {
		out[i] = DepartmentShare{Department: d, Share: ranking.Percent(d.Value, total)}
	}
	return out
}
