// Package catalog holds the static, read-only tables the career engine scores against.
// Accessors return copies so callers can reshape results without touching the tables.
package catalog

import "github.com/jonathan/skillsync/internal/types"

// DefaultCareerKey is the category selected when no keyword matches.
const DefaultCareerKey = "technology"

var careerCategories = []types.CareerCategory{
	{
		Key:      "technology",
		Keywords: []string{"computer", "software", "programming", "coding", "tech", "it", "development", "web", "app", "data", "ml", "ai", "python", "java", "javascript"},
		Roles: []types.RoleMatch{
			{Role: "Software Engineer", Match: 95, Description: "Build scalable software systems and applications", AvgSalary: "₹8,00,000 - ₹22,00,000", Growth: "+25% (2024-2034)"},
			{Role: "Data Scientist", Match: 92, Description: "Analyze complex datasets to drive business decisions", AvgSalary: "₹10,00,000 - ₹25,00,000", Growth: "+36% (2024-2034)"},
			{Role: "Full Stack Developer", Match: 90, Description: "Develop both frontend and backend applications", AvgSalary: "₹7,00,000 - ₹20,00,000", Growth: "+22% (2024-2034)"},
		},
		PersonalityType: "The Tech Innovator",
	},
	{
		Key:      "design",
		Keywords: []string{"design", "ux", "ui", "creative", "visual", "graphic", "figma", "sketch", "adobe", "user experience", "interface"},
		Roles: []types.RoleMatch{
			{Role: "UX Designer", Match: 96, Description: "Create intuitive user experiences for digital products", AvgSalary: "₹7,00,000 - ₹18,00,000", Growth: "+16% (2024-2034)"},
			{Role: "Product Designer", Match: 93, Description: "Design end-to-end product experiences", AvgSalary: "₹8,00,000 - ₹20,00,000", Growth: "+13% (2024-2034)"},
			{Role: "UI Developer", Match: 88, Description: "Build beautiful and responsive user interfaces", AvgSalary: "₹6,00,000 - ₹15,00,000", Growth: "+18% (2024-2034)"},
		},
		PersonalityType: "The Creative Designer",
	},
	{
		Key:      "fashion",
		Keywords: []string{"fashion", "textile", "apparel", "clothing", "styling", "garment", "fabric", "trend", "boutique", "retail fashion"},
		Roles: []types.RoleMatch{
			{Role: "Fashion Designer", Match: 96, Description: "Design clothing, accessories, and fashion collections", AvgSalary: "₹4,00,000 - ₹15,00,000", Growth: "+18% (2024-2034)"},
			{Role: "Textile Designer", Match: 92, Description: "Create patterns and designs for fabrics", AvgSalary: "₹3,50,000 - ₹10,00,000", Growth: "+12% (2024-2034)"},
			{Role: "Fashion Stylist", Match: 88, Description: "Curate looks for clients, photoshoots, and events", AvgSalary: "₹3,00,000 - ₹12,00,000", Growth: "+15% (2024-2034)"},
		},
		PersonalityType: "The Fashion Visionary",
	},
	{
		Key:      "law",
		Keywords: []string{"law", "legal", "advocate", "attorney", "litigation", "corporate law", "policy", "constitution", "judiciary", "court"},
		Roles: []types.RoleMatch{
			{Role: "Corporate Lawyer", Match: 95, Description: "Advise on business law, mergers, and compliance", AvgSalary: "₹8,00,000 - ₹30,00,000", Growth: "+10% (2024-2034)"},
			{Role: "Criminal Lawyer", Match: 90, Description: "Defend or prosecute in criminal cases", AvgSalary: "₹5,00,000 - ₹25,00,000", Growth: "+8% (2024-2034)"},
			{Role: "Public Policy Analyst", Match: 87, Description: "Research and develop policy recommendations", AvgSalary: "₹6,00,000 - ₹18,00,000", Growth: "+12% (2024-2034)"},
		},
		PersonalityType: "The Legal Advocate",
	},
	{
		Key:      "psychology",
		Keywords: []string{"psychology", "counseling", "therapy", "mental health", "clinical", "behavioral", "cognitive", "psychologist"},
		Roles: []types.RoleMatch{
			{Role: "Clinical Psychologist", Match: 96, Description: "Provide therapy and mental health support", AvgSalary: "₹5,00,000 - ₹15,00,000", Growth: "+20% (2024-2034)"},
			{Role: "Counseling Psychologist", Match: 93, Description: "Help individuals cope with life challenges", AvgSalary: "₹4,00,000 - ₹12,00,000", Growth: "+18% (2024-2034)"},
			{Role: "Organizational Psychologist", Match: 88, Description: "Improve workplace culture and employee well-being", AvgSalary: "₹6,00,000 - ₹18,00,000", Growth: "+14% (2024-2034)"},
		},
		PersonalityType: "The Empathetic Healer",
	},
	{
		Key:      "humanities",
		Keywords: []string{"humanities", "sociology", "history", "literature", "philosophy", "research", "social science", "anthropology", "professor", "teaching"},
		Roles: []types.RoleMatch{
			{Role: "Research Scholar", Match: 94, Description: "Conduct research in social sciences and humanities", AvgSalary: "₹6,00,000 - ₹20,00,000", Growth: "+15% (2024-2034)"},
			{Role: "University Professor", Match: 91, Description: "Teach and conduct research in higher education", AvgSalary: "₹8,00,000 - ₹25,00,000", Growth: "+10% (2024-2034)"},
			{Role: "Content Writer", Match: 87, Description: "Create compelling content for various media", AvgSalary: "₹4,00,000 - ₹12,00,000", Growth: "+12% (2024-2034)"},
		},
		PersonalityType: "The Scholarly Thinker",
	},
	{
		Key:      "business",
		Keywords: []string{"business", "management", "mba", "marketing", "finance", "commerce", "consulting", "entrepreneur", "sales", "strategy"},
		Roles: []types.RoleMatch{
			{Role: "Product Manager", Match: 93, Description: "Drive product strategy and execution", AvgSalary: "₹12,00,000 - ₹28,00,000", Growth: "+14% (2024-2034)"},
			{Role: "Business Analyst", Match: 90, Description: "Bridge technology and business strategy", AvgSalary: "₹6,00,000 - ₹15,00,000", Growth: "+11% (2024-2034)"},
			{Role: "Marketing Manager", Match: 87, Description: "Develop and execute marketing strategies", AvgSalary: "₹7,00,000 - ₹18,00,000", Growth: "+10% (2024-2034)"},
		},
		PersonalityType: "The Business Strategist",
	},
	{
		Key:      "arts",
		Keywords: []string{"art", "fine arts", "painting", "sculpture", "illustration", "animation", "media", "film", "photography", "creative arts"},
		Roles: []types.RoleMatch{
			{Role: "Graphic Designer", Match: 95, Description: "Create visual content for brands and media", AvgSalary: "₹4,00,000 - ₹12,00,000", Growth: "+13% (2024-2034)"},
			{Role: "3D Artist", Match: 90, Description: "Create 3D models and animations", AvgSalary: "₹5,00,000 - ₹15,00,000", Growth: "+16% (2024-2034)"},
			{Role: "Art Director", Match: 88, Description: "Lead creative vision for projects", AvgSalary: "₹8,00,000 - ₹20,00,000", Growth: "+11% (2024-2034)"},
		},
		PersonalityType: "The Creative Artist",
	},
}

// CareerCategories returns the career categories in definition order.
// Definition order is the classifier's scan order and decides ties.
func CareerCategories() []types.CareerCategory {
	out := make([]types.CareerCategory, len(careerCategories))
	for i, c := range careerCategories {
		out[i] = copyCategory(c)
	}
	return out
}

// CareerCategory returns the category for key. Unknown keys fall back to the
// default category and ok reports whether key was found.
func CareerCategory(key string) (types.CareerCategory, bool) {
	for _, c := range careerCategories {
		if c.Key == key {
			return copyCategory(c), true
		}
	}
	return copyCategory(careerCategories[0]), false
}

func copyCategory(c types.CareerCategory) types.CareerCategory {
	c.Keywords = append([]string(nil), c.Keywords...)
	c.Roles = copyRoles(c.Roles)
	return c
}

func copyRoles(roles []types.RoleMatch) []types.RoleMatch {
	return append([]types.RoleMatch(nil), roles...)
}
