package catalog

import "github.com/jonathan/skillsync/internal/types"

var pathwaySkills = []types.Skill{
	{Name: "Python Programming", Category: types.SkillCategoryTechnical, Difficulty: types.LevelBeginner, TimeToLearn: "3-4 months", Demand: 95},
	{Name: "Data Structures & Algorithms", Category: types.SkillCategoryTechnical, Difficulty: types.LevelIntermediate, TimeToLearn: "4-6 months", Demand: 92},
	{Name: "Machine Learning Fundamentals", Category: types.SkillCategoryTechnical, Difficulty: types.LevelIntermediate, TimeToLearn: "5-7 months", Demand: 98},
	{Name: "SQL & Database Management", Category: types.SkillCategoryTechnical, Difficulty: types.LevelBeginner, TimeToLearn: "2-3 months", Demand: 88},
	{Name: "Cloud Computing (AWS/Azure)", Category: types.SkillCategoryTechnical, Difficulty: types.LevelAdvanced, TimeToLearn: "6-8 months", Demand: 94},
	{Name: "Data Visualization", Category: types.SkillCategoryTechnical, Difficulty: types.LevelIntermediate, TimeToLearn: "2-3 months", Demand: 85},
	{Name: "Communication Skills", Category: types.SkillCategorySoft, Difficulty: types.LevelBeginner, TimeToLearn: "Ongoing", Demand: 90},
	{Name: "Leadership & Team Management", Category: types.SkillCategorySoft, Difficulty: types.LevelIntermediate, TimeToLearn: "Ongoing", Demand: 87},
	{Name: "Problem Solving", Category: types.SkillCategorySoft, Difficulty: types.LevelIntermediate, TimeToLearn: "Ongoing", Demand: 95},
	{Name: "Presentation & Public Speaking", Category: types.SkillCategorySoft, Difficulty: types.LevelIntermediate, TimeToLearn: "Ongoing", Demand: 82},
}

// pathwaySeeds maps a pathway skill to the exact profile skill that marks it
// as already mastered.
var pathwaySeeds = map[string]string{
	"Python Programming":            "Python",
	"Machine Learning Fundamentals": "Machine Learning",
	"Data Visualization":            "Data Analysis",
	"Communication Skills":          "Communication",
	"Leadership & Team Management":  "Leadership",
}

var roadmap = []types.RoadmapPhase{
	{Period: "Months 1-2", Skills: []string{"Python Programming", "SQL & Database Management"}},
	{Period: "Months 3-4", Skills: []string{"Data Structures & Algorithms", "Data Visualization"}},
	{Period: "Months 5-6", Skills: []string{"Machine Learning Fundamentals", "Communication Skills"}},
}

// PathwaySkills returns the recommended skills, none marked completed.
func PathwaySkills() []types.Skill {
	return append([]types.Skill(nil), pathwaySkills...)
}

// PathwaySeed returns the profile skill that pre-completes the named pathway skill.
func PathwaySeed(name string) (string, bool) {
	seed, ok := pathwaySeeds[name]
	return seed, ok
}

// Roadmap returns the fixed learning roadmap.
func Roadmap() []types.RoadmapPhase {
	out := make([]types.RoadmapPhase, len(roadmap))
	for i, p := range roadmap {
		p.Skills = append([]string(nil), p.Skills...)
		out[i] = p
	}
	return out
}
