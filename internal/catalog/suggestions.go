package catalog

var suggestedSkills = []string{"Python", "JavaScript", "Data Analysis", "Machine Learning", "UI/UX Design", "Project Management", "Communication", "Leadership", "Fashion Design", "Legal Research", "Counseling", "Writing"}

var suggestedInterests = []string{"Technology", "Business", "Design", "Healthcare", "Finance", "Education", "Marketing", "Research", "Fashion", "Law", "Psychology", "Arts"}

var preferredFields = []string{"Technology/IT", "Fashion & Design", "Law", "Psychology", "Humanities & Social Sciences", "Business & Management", "Arts & Media", "Engineering", "Healthcare", "Other"}

// SuggestedSkills returns the quick-pick skills offered during onboarding.
func SuggestedSkills() []string { return append([]string(nil), suggestedSkills...) }

// SuggestedInterests returns the quick-pick interests offered during onboarding.
func SuggestedInterests() []string { return append([]string(nil), suggestedInterests...) }

// PreferredFields returns the career fields a student may state a preference for.
// The preference is informational; classification ignores it.
func PreferredFields() []string { return append([]string(nil), preferredFields...) }
