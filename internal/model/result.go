package model

// Method records which tier produced a classification.
type Method string

// Method constants.
const (
	MethodRules    Method = "rules"
	MethodML       Method = "ml"
	MethodFallback Method = "fallback"
)

// CategoryUnknown is the reserved category for unclassified transactions.
const CategoryUnknown = "UNKNOWN"

// ClassificationResult is the outcome of classifying one transaction.
// Subcategory is nil only for the UNKNOWN fallback; RuleID is set only when
// Method is MethodRules.
type ClassificationResult struct {
	Subcategory *string `json:"subcategory"`
	RuleID      *string `json:"rule_id"`
	Category    string  `json:"category"`
	Method      Method  `json:"method"`
	Confidence  float64 `json:"confidence"`
}

// IsUnknown reports whether the result is the fallback sentinel.
func (r ClassificationResult) IsUnknown() bool {
	return r.Category == CategoryUnknown && r.Method == MethodFallback
}

// SubcategoryOrEmpty returns the subcategory, or "" when absent.
func (r ClassificationResult) SubcategoryOrEmpty() string {
	if r.Subcategory == nil {
		return ""
	}
	return *r.Subcategory
}

// RuleIDOrEmpty returns the matching rule ID, or "" when absent.
func (r ClassificationResult) RuleIDOrEmpty() string {
	if r.RuleID == nil {
		return ""
	}
	return *r.RuleID
}

// UnknownResult returns the terminal fallback result.
func UnknownResult() ClassificationResult {
	return ClassificationResult{
		Category:   CategoryUnknown,
		Confidence: 0.0,
		Method:     MethodFallback,
	}
}
