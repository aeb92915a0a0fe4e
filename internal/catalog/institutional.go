package catalog

import "github.com/jonathan/skillsync/internal/types"

var studentStats = types.StudentStats{Total: 1247, ActiveUsers: 892, AssessmentsCompleted: 645, AvgMatchScore: 87}

var careerTrends = []types.CareerTrend{
	{Month: "Jan", DataScience: 45, Software: 62, Product: 28, Design: 35},
	{Month: "Feb", DataScience: 52, Software: 68, Product: 31, Design: 38},
	{Month: "Mar", DataScience: 58, Software: 75, Product: 35, Design: 42},
	{Month: "Apr", DataScience: 65, Software: 82, Product: 40, Design: 45},
	{Month: "May", DataScience: 72, Software: 88, Product: 45, Design: 48},
	{Month: "Jun", DataScience: 78, Software: 95, Product: 50, Design: 52},
}

var skillGaps = []types.SkillGap{
	{Skill: "Machine Learning", Demand: 95, Supply: 42, Gap: 53},
	{Skill: "Cloud Computing", Demand: 88, Supply: 35, Gap: 53},
	{Skill: "Data Analysis", Demand: 92, Supply: 58, Gap: 34},
	{Skill: "UX Design", Demand: 75, Supply: 48, Gap: 27},
	{Skill: "Product Management", Demand: 82, Supply: 38, Gap: 44},
	{Skill: "System Design", Demand: 85, Supply: 45, Gap: 40},
}

var departments = []types.Department{
	{Name: "Computer Science", Value: 420, Color: "#3b82f6"},
	{Name: "Engineering", Value: 315, Color: "#8b5cf6"},
	{Name: "Business", Value: 245, Color: "#10b981"},
	{Name: "Design", Value: 180, Color: "#f59e0b"},
	{Name: "Other", Value: 87, Color: "#6b7280"},
}

var careerPaths = []types.CareerPath{
	{Role: "Software Engineer", Students: 285, Growth: "+12%"},
	{Role: "Data Scientist", Students: 198, Growth: "+24%"},
	{Role: "Product Manager", Students: 156, Growth: "+18%"},
	{Role: "UX Designer", Students: 142, Growth: "+15%"},
	{Role: "DevOps Engineer", Students: 118, Growth: "+20%"},
}

var curriculumRecommendations = []types.CurriculumRecommendation{
	{Category: "High Demand Skills", Recommendations: []string{"Introduce Advanced Machine Learning course", "Add Cloud Architecture certification program", "Expand Data Science curriculum"}},
	{Category: "Industry Alignment", Recommendations: []string{"Partner with tech companies for internships", "Update software development practices", "Include more hands-on project work"}},
	{Category: "Emerging Trends", Recommendations: []string{"Add AI Ethics and Responsible AI module", "Introduce Web3 and Blockchain fundamentals", "Expand Cybersecurity offerings"}},
}

// StudentStats returns headline institution counts.
func StudentStats() types.StudentStats { return studentStats }

// CareerTrends returns monthly interest per career path.
func CareerTrends() []types.CareerTrend { return append([]types.CareerTrend(nil), careerTrends...) }

// SkillGaps returns industry demand versus student supply per skill.
func SkillGaps() []types.SkillGap { return append([]types.SkillGap(nil), skillGaps...) }

// Departments returns the student distribution by department.
func Departments() []types.Department { return append([]types.Department(nil), departments...) }

// CareerPaths returns the most popular target roles.
func CareerPaths() []types.CareerPath { return append([]types.CareerPath(nil), careerPaths...) }

// CurriculumRecommendations returns suggested curriculum changes by category.
func CurriculumRecommendations() []types.CurriculumRecommendation {
	out := make([]types.CurriculumRecommendation, len(curriculumRecommendations))
	for i, r := range curriculumRecommendations {
		r.Recommendations = append([]string(nil), r.Recommendations...)
		out[i] = r
	}
	return out
}
