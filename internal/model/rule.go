package model

// RuleDefinition is the source form of a classification rule.
// Pattern is a regular expression searched for anywhere in the normalized
// description; it anchors only if it says so itself.
type RuleDefinition struct {
	ID          string `json:"id" yaml:"id"`
	Pattern     string `json:"pattern" yaml:"pattern"`
	Category    string `json:"category" yaml:"category"`
	Subcategory string `json:"subcategory" yaml:"subcategory"`
}
