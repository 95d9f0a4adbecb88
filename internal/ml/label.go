package ml

import "strings"

// LabelSeparator joins category and subcategory in a model label.
const LabelSeparator = " / "

// SplitLabel splits a combined label on the first separator. A label without
// a separator is all category with an empty subcategory.
func SplitLabel(label string) (category, subcategory string) {
	category, subcategory, found := strings.Cut(label, LabelSeparator)
	if !found {
		return label, ""
	}
	return category, subcategory
}
