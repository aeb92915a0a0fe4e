//nolint:revive // types is a standard Go package name pattern
package types

// StudentStats are headline counts for an institution
type StudentStats struct {
	Total                int `json:"total"`
	ActiveUsers          int `json:"active_users"`
	AssessmentsCompleted int `json:"assessments_completed"`
	AvgMatchScore        int `json:"avg_match_score"`
}

// CareerTrend is monthly student interest per career path
type CareerTrend struct {
	Month       string `json:"month"`
	DataScience int    `json:"data_science"`
	Software    int    `json:"software"`
	Product     int    `json:"product"`
	Design      int    `json:"design"`
}

// SkillGap compares industry demand with student proficiency
type SkillGap struct {
	Skill  string `json:"skill"`
	Demand int    `json:"demand"`
	Supply int    `json:"supply"`
	Gap    int    `json:"gap"`
}

// Department is a share of the student body
type Department struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
	Color string `json:"color"`
}

// CareerPath is a popular target role among students
type CareerPath struct {
	Role     string `json:"role"`
	Students int    `json:"students"`
	Growth   string `json:"growth"`
}

// CurriculumRecommendation groups suggested curriculum changes
type CurriculumRecommendation struct {
	Category        string   `json:"category"`
	Recommendations []string `json:"recommendations"`
}
