package catalog

import "github.com/jonathan/skillsync/internal/types"

var projectTemplates = []types.ProjectTemplate{
	{
		ID:          "1",
		Title:       "Predictive Analytics Dashboard",
		Description: "Build an interactive dashboard that visualizes and predicts business metrics using historical data",
		Difficulty:  types.LevelIntermediate,
		Duration:    "4-6 weeks",
		Skills:      []string{"Python", "Data Visualization", "Machine Learning"},
		Category:    "Data Science",
		Steps:       []string{"Collect and clean dataset", "Perform exploratory data analysis", "Build predictive models", "Create interactive visualizations", "Deploy dashboard"},
	},
	{
		ID:          "2",
		Title:       "E-commerce Recommendation System",
		Description: "Develop a machine learning model that recommends products based on user behavior and preferences",
		Difficulty:  types.LevelAdvanced,
		Duration:    "6-8 weeks",
		Skills:      []string{"Machine Learning", "Python", "Data Analysis"},
		Category:    "Machine Learning",
		Steps:       []string{"Design system architecture", "Implement collaborative filtering", "Build content-based filtering", "Create hybrid model", "Evaluate and optimize"},
	},
	{
		ID:          "3",
		Title:       "Personal Portfolio Website",
		Description: "Create a responsive portfolio website to showcase your projects and achievements",
		Difficulty:  types.LevelBeginner,
		Duration:    "2-3 weeks",
		Skills:      []string{"HTML", "CSS", "JavaScript"},
		Category:    "Web Development",
		Steps:       []string{"Design wireframes", "Set up project structure", "Build responsive layouts", "Add interactive features", "Deploy to hosting"},
	},
	{
		ID:          "4",
		Title:       "Mobile App UI/UX Design",
		Description: "Design a complete mobile app interface with user flows and interactive prototypes",
		Difficulty:  types.LevelIntermediate,
		Duration:    "3-4 weeks",
		Skills:      []string{"UI/UX Design", "Figma", "User Research"},
		Category:    "Design",
		Steps:       []string{"Conduct user research", "Create user personas", "Design user flows", "Build wireframes", "Create high-fidelity mockups"},
	},
	{
		ID:          "5",
		Title:       "Automated Data Pipeline",
		Description: "Build an ETL pipeline that automates data collection, transformation, and loading",
		Difficulty:  types.LevelAdvanced,
		Duration:    "5-7 weeks",
		Skills:      []string{"Python", "SQL", "Cloud Computing"},
		Category:    "Data Engineering",
		Steps:       []string{"Design pipeline architecture", "Set up data sources", "Build transformation logic", "Implement error handling", "Deploy and monitor"},
	},
	{
		ID:          "6",
		Title:       "Sentiment Analysis Tool",
		Description: "Create a tool that analyzes sentiment from social media or customer reviews",
		Difficulty:  types.LevelIntermediate,
		Duration:    "4-5 weeks",
		Skills:      []string{"Python", "NLP", "Machine Learning"},
		Category:    "Natural Language Processing",
		Steps:       []string{"Gather text data", "Preprocess and clean data", "Train sentiment model", "Build API interface", "Create visualization dashboard"},
	},
}

// ProjectTemplates returns the portfolio roadmap, none completed.
func ProjectTemplates() []types.ProjectTemplate {
	out := make([]types.ProjectTemplate, len(projectTemplates))
	for i, p := range projectTemplates {
		p.Skills = append([]string(nil), p.Skills...)
		p.Steps = append([]string(nil), p.Steps...)
		out[i] = p
	}
	return out
}
