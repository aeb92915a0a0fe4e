package catalog

import "github.com/jonathan/skillsync/internal/types"

// DefaultTrait is used when no answers were recorded or the dominant trait
// has no profile.
const DefaultTrait = "analytical"

var questions = []types.Question{
	{
		ID:       1,
		Question: "When solving a problem, I prefer to:",
		Options: []types.Option{
			{Value: "A", Text: "Use data and analytics to find solutions", Trait: "analytical"},
			{Value: "B", Text: "Brainstorm creative alternatives", Trait: "creative"},
			{Value: "C", Text: "Follow proven methodologies", Trait: "structured"},
			{Value: "D", Text: "Collaborate with others for ideas", Trait: "collaborative"},
		},
	},
	{
		ID:       2,
		Question: "In a team project, I naturally:",
		Options: []types.Option{
			{Value: "A", Text: "Take the lead and organize tasks", Trait: "leadership"},
			{Value: "B", Text: "Support others and ensure harmony", Trait: "supportive"},
			{Value: "C", Text: "Focus on technical execution", Trait: "technical"},
			{Value: "D", Text: "Generate innovative ideas", Trait: "innovative"},
		},
	},
	{
		ID:       3,
		Question: "I feel most energized when:",
		Options: []types.Option{
			{Value: "A", Text: "Working with cutting-edge technology", Trait: "technical"},
			{Value: "B", Text: "Designing user experiences", Trait: "design"},
			{Value: "C", Text: "Analyzing market trends", Trait: "business"},
			{Value: "D", Text: "Mentoring and teaching others", Trait: "mentoring"},
		},
	},
	{
		ID:       4,
		Question: "My ideal work environment is:",
		Options: []types.Option{
			{Value: "A", Text: "Fast-paced startup culture", Trait: "dynamic"},
			{Value: "B", Text: "Structured corporate setting", Trait: "structured"},
			{Value: "C", Text: "Remote and flexible", Trait: "flexible"},
			{Value: "D", Text: "Collaborative open office", Trait: "collaborative"},
		},
	},
	{
		ID:       5,
		Question: "I prefer projects that:",
		Options: []types.Option{
			{Value: "A", Text: "Have clear measurable outcomes", Trait: "analytical"},
			{Value: "B", Text: "Allow creative freedom", Trait: "creative"},
			{Value: "C", Text: "Involve building systems", Trait: "technical"},
			{Value: "D", Text: "Make social impact", Trait: "impact"},
		},
	},
	{
		ID:       6,
		Question: "What type of content do you enjoy most?",
		Options: []types.Option{
			{Value: "A", Text: "Research papers and academic journals", Trait: "research"},
			{Value: "B", Text: "Art, fashion, and design magazines", Trait: "artistic"},
			{Value: "C", Text: "Legal case studies and policy documents", Trait: "legal"},
			{Value: "D", Text: "Human behavior and psychology articles", Trait: "empathetic"},
		},
	},
	{
		ID:       7,
		Question: "Your approach to helping others is:",
		Options: []types.Option{
			{Value: "A", Text: "Provide practical solutions", Trait: "practical"},
			{Value: "B", Text: "Listen and understand emotions", Trait: "empathetic"},
			{Value: "C", Text: "Advocate for their rights", Trait: "advocate"},
			{Value: "D", Text: "Express through creative means", Trait: "artistic"},
		},
	},
	{
		ID:       8,
		Question: "What motivates you the most?",
		Options: []types.Option{
			{Value: "A", Text: "Creating beautiful, aesthetic work", Trait: "artistic"},
			{Value: "B", Text: "Fighting for justice and fairness", Trait: "advocate"},
			{Value: "C", Text: "Understanding human psychology", Trait: "empathetic"},
			{Value: "D", Text: "Discovering new knowledge", Trait: "research"},
		},
	},
}

var traitProfiles = []types.TraitProfile{
	{
		Trait:           "analytical",
		PersonalityType: "The Analyst",
		Careers: []types.RoleMatch{
			{Role: "Data Scientist", Match: 95, Description: "Analyze complex datasets to drive business decisions", AvgSalary: "₹10,00,000 - ₹25,00,000", Growth: "+36% (2024-2034)"},
			{Role: "Business Analyst", Match: 90, Description: "Bridge technology and business strategy", AvgSalary: "₹6,00,000 - ₹15,00,000", Growth: "+11% (2024-2034)"},
			{Role: "Financial Analyst", Match: 85, Description: "Evaluate financial data and market trends", AvgSalary: "₹5,50,000 - ₹12,00,000", Growth: "+9% (2024-2034)"},
		},
	},
	{
		Trait:           "creative",
		PersonalityType: "The Innovator",
		Careers: []types.RoleMatch{
			{Role: "UX Designer", Match: 94, Description: "Create intuitive user experiences", AvgSalary: "₹7,00,000 - ₹18,00,000", Growth: "+16% (2024-2034)"},
			{Role: "Product Designer", Match: 92, Description: "Design end-to-end product experiences", AvgSalary: "₹8,00,000 - ₹20,00,000", Growth: "+13% (2024-2034)"},
			{Role: "Creative Director", Match: 88, Description: "Lead creative vision and strategy", AvgSalary: "₹12,00,000 - ₹30,00,000", Growth: "+10% (2024-2034)"},
		},
	},
	{
		Trait:           "technical",
		PersonalityType: "The Builder",
		Careers: []types.RoleMatch{
			{Role: "Software Engineer", Match: 96, Description: "Build scalable software systems", AvgSalary: "₹8,00,000 - ₹22,00,000", Growth: "+25% (2024-2034)"},
			{Role: "DevOps Engineer", Match: 91, Description: "Automate and optimize infrastructure", AvgSalary: "₹9,00,000 - ₹24,00,000", Growth: "+27% (2024-2034)"},
			{Role: "Cloud Architect", Match: 89, Description: "Design cloud infrastructure solutions", AvgSalary: "₹15,00,000 - ₹35,00,000", Growth: "+22% (2024-2034)"},
		},
	},
	{
		Trait:           "leadership",
		PersonalityType: "The Leader",
		Careers: []types.RoleMatch{
			{Role: "Product Manager", Match: 93, Description: "Drive product strategy and execution", AvgSalary: "₹12,00,000 - ₹28,00,000", Growth: "+14% (2024-2034)"},
			{Role: "Project Manager", Match: 90, Description: "Lead cross-functional project teams", AvgSalary: "₹8,00,000 - ₹18,00,000", Growth: "+8% (2024-2034)"},
			{Role: "Engineering Manager", Match: 87, Description: "Manage technical teams and deliverables", AvgSalary: "₹18,00,000 - ₹40,00,000", Growth: "+11% (2024-2034)"},
		},
	},
	{
		Trait:           "artistic",
		PersonalityType: "The Creative Artist",
		Careers: []types.RoleMatch{
			{Role: "Fashion Designer", Match: 96, Description: "Design clothing, accessories, and fashion collections", AvgSalary: "₹4,00,000 - ₹15,00,000", Growth: "+18% (2024-2034)"},
			{Role: "Textile Designer", Match: 92, Description: "Create patterns and designs for fabrics", AvgSalary: "₹3,50,000 - ₹10,00,000", Growth: "+12% (2024-2034)"},
			{Role: "Fashion Stylist", Match: 88, Description: "Curate looks for clients, photoshoots, and events", AvgSalary: "₹3,00,000 - ₹12,00,000", Growth: "+15% (2024-2034)"},
		},
	},
	{
		Trait:           "advocate",
		PersonalityType: "The Advocate",
		Careers: []types.RoleMatch{
			{Role: "Corporate Lawyer", Match: 95, Description: "Advise on business law, mergers, and compliance", AvgSalary: "₹8,00,000 - ₹30,00,000", Growth: "+10% (2024-2034)"},
			{Role: "Criminal Lawyer", Match: 90, Description: "Defend or prosecute in criminal cases", AvgSalary: "₹5,00,000 - ₹25,00,000", Growth: "+8% (2024-2034)"},
			{Role: "Public Policy Analyst", Match: 87, Description: "Research and develop policy recommendations", AvgSalary: "₹6,00,000 - ₹18,00,000", Growth: "+12% (2024-2034)"},
		},
	},
	{
		Trait:           "empathetic",
		PersonalityType: "The Empathetic Helper",
		Careers: []types.RoleMatch{
			{Role: "Clinical Psychologist", Match: 96, Description: "Provide therapy and mental health support", AvgSalary: "₹5,00,000 - ₹15,00,000", Growth: "+20% (2024-2034)"},
			{Role: "Counseling Psychologist", Match: 93, Description: "Help individuals cope with life challenges", AvgSalary: "₹4,00,000 - ₹12,00,000", Growth: "+18% (2024-2034)"},
			{Role: "Organizational Psychologist", Match: 88, Description: "Improve workplace culture and employee well-being", AvgSalary: "₹6,00,000 - ₹18,00,000", Growth: "+14% (2024-2034)"},
		},
	},
	{
		Trait:           "research",
		PersonalityType: "The Scholar",
		Careers: []types.RoleMatch{
			{Role: "Research Scientist", Match: 94, Description: "Conduct research in academic or industrial settings", AvgSalary: "₹6,00,000 - ₹20,00,000", Growth: "+15% (2024-2034)"},
			{Role: "University Professor", Match: 91, Description: "Teach and conduct research in higher education", AvgSalary: "₹8,00,000 - ₹25,00,000", Growth: "+10% (2024-2034)"},
			{Role: "Social Researcher", Match: 87, Description: "Study human behavior and social phenomena", AvgSalary: "₹5,00,000 - ₹15,00,000", Growth: "+12% (2024-2034)"},
		},
	},
}

// Questions returns the assessment questions in presentation order.
func Questions() []types.Question {
	out := make([]types.Question, len(questions))
	for i, q := range questions {
		q.Options = append([]types.Option(nil), q.Options...)
		out[i] = q
	}
	return out
}

// TraitProfiles returns every trait that has a personality profile.
func TraitProfiles() []types.TraitProfile {
	out := make([]types.TraitProfile, len(traitProfiles))
	for i, p := range traitProfiles {
		p.Careers = copyRoles(p.Careers)
		out[i] = p
	}
	return out
}

// TraitProfile returns the profile for trait, falling back to the
// DefaultTrait profile. ok reports whether trait had its own entry.
func TraitProfile(trait string) (types.TraitProfile, bool) {
	for _, p := range traitProfiles {
		if p.Trait == trait {
			p.Careers = copyRoles(p.Careers)
			return p, true
		}
	}
	fallback, _ := TraitProfile(DefaultTrait)
	return fallback, false
}
