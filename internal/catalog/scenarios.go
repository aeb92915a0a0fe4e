package catalog

import "github.com/jonathan/skillsync/internal/types"

// ScenarioTotalScore is the maximum score of any scenario option.
const ScenarioTotalScore = 100

var scenarios = []types.Scenario{
	{
		ID:          "1",
		Role:        "Data Scientist",
		Title:       "Model Performance Issue",
		Description: "Your machine learning model is underperforming in production",
		Difficulty:  types.ScenarioMedium,
		Duration:    "5 min",
		Skills:      []string{"Machine Learning", "Problem Solving", "Data Analysis"},
		Situation:   "You deployed a customer churn prediction model that performed well in testing (92% accuracy), but stakeholders report it's only 65% accurate in production. What's your first step?",
		Options: []types.ScenarioOption{
			{ID: "a", Text: "Immediately retrain the model with more data", Outcome: "While more data can help, you haven't identified the root cause. The model might be suffering from data drift or feature issues.", Score: 40},
			{ID: "b", Text: "Investigate data distribution differences between training and production", Outcome: "Excellent! You identified data drift as a potential issue. This is the most systematic approach to diagnose the problem.", Score: 100, IsCorrect: true},
			{ID: "c", Text: "Tune hyperparameters to improve performance", Outcome: "Hyperparameter tuning won't help if there's a fundamental issue with data quality or distribution.", Score: 30},
			{ID: "d", Text: "Switch to a different algorithm", Outcome: "Changing algorithms without understanding the problem could waste time and resources.", Score: 20},
		},
	},
	{
		ID:          "2",
		Role:        "Product Manager",
		Title:       "Feature Prioritization",
		Description: "Conflicting stakeholder requests for your product roadmap",
		Difficulty:  types.ScenarioHard,
		Duration:    "7 min",
		Skills:      []string{"Product Strategy", "Communication", "Decision Making"},
		Situation:   "Sales wants a feature to close a big deal, Engineering wants to fix technical debt, and Users are requesting improved UX. You have capacity for only one this quarter. What do you prioritize?",
		Options: []types.ScenarioOption{
			{ID: "a", Text: "Prioritize the sales feature to generate revenue", Outcome: "Short-term thinking. While revenue is important, ignoring technical debt and user needs can hurt long-term growth.", Score: 50},
			{ID: "b", Text: "Gather data on user impact, revenue potential, and technical risk, then decide", Outcome: "Perfect! Data-driven decision making that balances all stakeholder needs is the mark of a great PM.", Score: 100, IsCorrect: true},
			{ID: "c", Text: "Fix technical debt to prevent future problems", Outcome: "While important, technical debt should be balanced with user and business needs.", Score: 60},
			{ID: "d", Text: "Improve UX based on user feedback", Outcome: "User-centric thinking is good, but you need to consider all factors including business impact.", Score: 65},
		},
	},
	{
		ID:          "3",
		Role:        "UX Designer",
		Title:       "Design Critique Challenge",
		Description: "Receiving conflicting feedback on your design",
		Difficulty:  types.ScenarioMedium,
		Duration:    "6 min",
		Skills:      []string{"UX Design", "Communication", "User Research"},
		Situation:   "Your CEO wants a flashy redesign with more colors and animations, but user testing shows users prefer the current minimal design. How do you handle this?",
		Options: []types.ScenarioOption{
			{ID: "a", Text: "Follow the CEO's direction since they're the boss", Outcome: "Ignoring user research to please leadership can lead to poor user experience and product failure.", Score: 30},
			{ID: "b", Text: "Present user research data and propose a compromise that addresses concerns", Outcome: "Excellent! You're advocating for users while being diplomatic with stakeholders. This is ideal.", Score: 100, IsCorrect: true},
			{ID: "c", Text: "Ignore the feedback and stick with your original design", Outcome: "Being inflexible can damage relationships and limit collaboration.", Score: 20},
			{ID: "d", Text: "Create two versions and A/B test them", Outcome: "A/B testing is good, but you should first try to align stakeholders with user research.", Score: 70},
		},
	},
	{
		ID:          "4",
		Role:        "Software Engineer",
		Title:       "Production Bug Crisis",
		Description: "Critical bug affecting users in production",
		Difficulty:  types.ScenarioHard,
		Duration:    "8 min",
		Skills:      []string{"Problem Solving", "System Design", "Communication"},
		Situation:   "A critical bug is causing payment failures for 20% of users. Your team lead is unavailable. What's your immediate action?",
		Options: []types.ScenarioOption{
			{ID: "a", Text: "Quickly push a fix without testing to resolve it fast", Outcome: "Rushing untested code to production could make things worse and affect more users.", Score: 25},
			{ID: "b", Text: "Roll back to the last stable version while investigating the root cause", Outcome: "Perfect! Minimizing user impact while maintaining system stability shows excellent judgment.", Score: 100, IsCorrect: true},
			{ID: "c", Text: "Wait for your team lead to return before taking action", Outcome: "Delaying action during a critical issue shows lack of initiative and hurts users.", Score: 15},
			{ID: "d", Text: "Disable the payment feature entirely until fixed", Outcome: "While safe, completely disabling payments might be too drastic when 80% of transactions work.", Score: 60},
		},
	},
	{
		ID:          "5",
		Role:        "Business Analyst",
		Title:       "Data-Driven Decision",
		Description: "Stakeholders want different conclusions from the same data",
		Difficulty:  types.ScenarioMedium,
		Duration:    "6 min",
		Skills:      []string{"Data Analysis", "Communication", "Critical Thinking"},
		Situation:   "Your analysis shows declining user engagement, but marketing claims their campaigns are successful. How do you present your findings?",
		Options: []types.ScenarioOption{
			{ID: "a", Text: "Present only the negative trends to emphasize the problem", Outcome: "Cherry-picking data can undermine your credibility and create defensive stakeholders.", Score: 40},
			{ID: "b", Text: "Present complete analysis with both positive and negative trends, then recommend actions", Outcome: "Excellent! Balanced, objective analysis with actionable recommendations builds trust.", Score: 100, IsCorrect: true},
			{ID: "c", Text: "Adjust your analysis to support marketing's claims", Outcome: "Manipulating data to please stakeholders destroys your credibility as an analyst.", Score: 10},
			{ID: "d", Text: "Let stakeholders interpret the data themselves", Outcome: "As an analyst, providing interpretation and recommendations is part of your value.", Score: 50},
		},
	},
}

// Scenarios returns the career simulator scenarios.
func Scenarios() []types.Scenario {
	out := make([]types.Scenario, len(scenarios))
	for i, s := range scenarios {
		s.Skills = append([]string(nil), s.Skills...)
		s.Options = append([]types.ScenarioOption(nil), s.Options...)
		out[i] = s
	}
	return out
}
