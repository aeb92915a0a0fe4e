//nolint:revive // types is a standard Go package name pattern
package types

// CareerCategory is a domain of work matched by keyword containment.
// Keywords are lower-case; Roles are in curated order with index 0 the top match.
type CareerCategory struct {
	Key             string      `json:"key"`
	Keywords        []string    `json:"keywords"`
	Roles           []RoleMatch `json:"roles"`
	PersonalityType string      `json:"personality_type"`
}

// CareerAnalysis is the classifier output merged into a Profile on onboarding.
type CareerAnalysis struct {
	CareerField     string      `json:"career_field"`
	PersonalityType string      `json:"personality_type"`
	CareerMatches   []RoleMatch `json:"career_matches"`
}

// CategoryScore is the number of distinct keywords of a category found in the input text.
type CategoryScore struct {
	Key     string   `json:"key"`
	Score   int      `json:"score"`
	Matched []string `json:"matched"`
}

// Question is one psychometric assessment question with exactly four options.
type Question struct {
	ID       int      `json:"id"`
	Question string   `json:"question"`
	Options  []Option `json:"options"`
}

// Option is an answer choice; Value is the option letter (A-D).
type Option struct {
	Value string `json:"value"`
	Text  string `json:"text"`
	Trait string `json:"trait"`
}

// TraitProfile maps a dominant trait to a personality label and role list.
type TraitProfile struct {
	Trait           string      `json:"trait"`
	PersonalityType string      `json:"personality_type"`
	Careers         []RoleMatch `json:"careers"`
}

// AssessmentResult is the trait tally output merged into a Profile.
type AssessmentResult struct {
	DominantTrait   string       `json:"dominant_trait"`
	PersonalityType string       `json:"personality_type"`
	CareerMatches   []RoleMatch  `json:"career_matches"`
	TraitCounts     []TraitCount `json:"trait_counts"`
}

// TraitCount is the number of answers that selected a trait.
type TraitCount struct {
	Trait string `json:"trait"`
	Count int    `json:"count"`
}
