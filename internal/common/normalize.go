package common

import "strings"

// NormalizeDescription canonicalizes a bank description for matching: it trims
// the text, upper-cases it and collapses every whitespace run into one space.
func NormalizeDescription(text string) string {
	return strings.Join(strings.Fields(strings.ToUpper(text)), " ")
}

// NormalizeDescriptionPtr is NormalizeDescription for optional text; nil
// normalizes to the empty string.
func NormalizeDescriptionPtr(text *string) string {
	if text == nil {
		return ""
	}
	return NormalizeDescription(*text)
}
