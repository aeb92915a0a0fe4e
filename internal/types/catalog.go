//nolint:revive // types is a standard Go package name pattern
package types

// CourseType is the delivery mode of a course
type CourseType string

// Course delivery modes. CourseTypeAll selects every course when filtering.
const (
	CourseTypeAll     CourseType = "all"
	CourseTypeOnline  CourseType = "online"
	CourseTypeOffline CourseType = "offline"
	CourseTypeHybrid  CourseType = "hybrid"
)

// Level is a learning difficulty level shared by courses, skills and projects
type Level string

// Difficulty levels
const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

// Course is a learning resource in the course catalog
type Course struct {
	Title       string     `json:"title"`
	Provider    string     `json:"provider"`
	Type        CourseType `json:"type"`
	Rating      float64    `json:"rating"`
	Students    string     `json:"students"`
	Duration    string     `json:"duration"`
	Price       string     `json:"price"`
	Level       Level      `json:"level"`
	Skills      []string   `json:"skills"`
	Certificate bool       `json:"certificate"`
	MatchScore  int        `json:"match_score"`
}

// Mentor is an industry professional the student can connect with
type Mentor struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Role         string   `json:"role"`
	Company      string   `json:"company"`
	Location     string   `json:"location"`
	Experience   string   `json:"experience"`
	Rating       float64  `json:"rating"`
	Sessions     int      `json:"sessions"`
	Expertise    []string `json:"expertise"`
	Availability string   `json:"availability"`
	MatchScore   int      `json:"match_score"`
	Bio          string   `json:"bio"`
	IsConnected  bool     `json:"is_connected"`
}

// SkillCategory separates technical from soft skills
type SkillCategory string

// Skill categories
const (
	SkillCategoryTechnical SkillCategory = "technical"
	SkillCategorySoft      SkillCategory = "soft"
)

// Skill is a recommended skill on the learning pathway
type Skill struct {
	Name        string        `json:"name"`
	Category    SkillCategory `json:"category"`
	Difficulty  Level         `json:"difficulty"`
	TimeToLearn string        `json:"time_to_learn"`
	Demand      int           `json:"demand"`
	Completed   bool          `json:"completed"`
}

// RoadmapPhase groups pathway skills into a time window
type RoadmapPhase struct {
	Period string   `json:"period"`
	Skills []string `json:"skills"`
}

// ProjectTemplate is a guided portfolio project
type ProjectTemplate struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Difficulty  Level    `json:"difficulty"`
	Duration    string   `json:"duration"`
	Skills      []string `json:"skills"`
	Category    string   `json:"category"`
	Steps       []string `json:"steps"`
	Completed   bool     `json:"completed"`
}

// ScenarioDifficulty grades a simulated workplace scenario
type ScenarioDifficulty string

// Scenario difficulties
const (
	ScenarioEasy   ScenarioDifficulty = "easy"
	ScenarioMedium ScenarioDifficulty = "medium"
	ScenarioHard   ScenarioDifficulty = "hard"
)

// Scenario is a simulated workplace decision for a given role
type Scenario struct {
	ID          string             `json:"id"`
	Role        string             `json:"role"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Difficulty  ScenarioDifficulty `json:"difficulty"`
	Duration    string             `json:"duration"`
	Skills      []string           `json:"skills"`
	Situation   string             `json:"situation"`
	Options     []ScenarioOption   `json:"options"`
}

// ScenarioOption is one possible response to a scenario
type ScenarioOption struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Outcome   string `json:"outcome"`
	Score     int    `json:"score"`
	IsCorrect bool   `json:"is_correct"`
}

// SimulationResult records one submitted scenario answer
type SimulationResult struct {
	AttemptID      string `json:"attempt_id"`
	ScenarioID     string `json:"scenario_id"`
	SelectedOption string `json:"selected_option"`
	Score          int    `json:"score"`
	TotalScore     int    `json:"total_score"`
	IsCorrect      bool   `json:"is_correct"`
	Outcome        string `json:"outcome"`
}
