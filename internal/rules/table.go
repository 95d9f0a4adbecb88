// Package rules provides the ordered rule table used to classify transactions
// by their description.
package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Veraticus/txcat/internal/common"
	"github.com/Veraticus/txcat/internal/model"
)

// Rule is a compiled, immutable classification rule.
type Rule struct {
	re *regexp.Regexp
	model.RuleDefinition
}

// Matches reports whether the rule's pattern occurs in the normalized description.
func (r Rule) Matches(normalized string) bool {
	return r.re.MatchString(normalized)
}

// Match is the outcome of a successful rule lookup.
type Match struct {
	RuleID      string
	Category    string
	Subcategory string
}

// Table is an ordered list of rules. Order is priority: the first rule that
// matches decides. A Table is never modified after NewTable returns, so it
// can be shared between goroutines.
type Table struct {
	rules []Rule
}

// NewTable compiles the definitions in the order given. Patterns are matched
// case-insensitively. Duplicate or empty IDs and invalid patterns are errors.
func NewTable(defs []model.RuleDefinition) (*Table, error) {
	compiled := make([]Rule, 0, len(defs))
	seen := make(map[string]int, len(defs))

	for i, def := range defs {
		id := strings.TrimSpace(def.ID)
		if id == "" {
			return nil, fmt.Errorf("rule at position %d: %w", i, common.ErrEmptyRuleID)
		}
		if prev, ok := seen[id]; ok {
			return nil, fmt.Errorf("%w: %s at positions %d and %d", common.ErrDuplicateRuleID, id, prev, i)
		}
		seen[id] = i

		regexStr := def.Pattern
		if !strings.HasPrefix(regexStr, "(?i)") {
			regexStr = "(?i)" + regexStr
		}

		re, err := regexp.Compile(regexStr)
		if err != nil {
			return nil, fmt.Errorf("%w: rule %s: %v", common.ErrInvalidPattern, id, err)
		}

		def.ID = id
		compiled = append(compiled, Rule{RuleDefinition: def, re: re})
	}

	return &Table{rules: compiled}, nil
}

// MustDefault compiles the built-in table and panics if it is inconsistent.
func MustDefault() *Table {
	t, err := NewTable(Default())
	if err != nil {
		panic(fmt.Sprintf("built-in rule table: %v", err))
	}
	return t
}

// Match scans the table in order and returns the first rule whose pattern is
// found in the normalized description.
func (t *Table) Match(normalized string) (Match, bool) {
	for _, rule := range t.rules {
		if rule.Matches(normalized) {
			return Match{
				RuleID:      rule.ID,
				Category:    rule.Category,
				Subcategory: rule.Subcategory,
			}, true
		}
	}
	return Match{}, false
}

// MatchDescription normalizes a raw description and matches it.
func (t *Table) MatchDescription(description string) (Match, bool) {
	return t.Match(common.NormalizeDescription(description))
}

// MatchAll returns every rule matching the normalized description, in table
// order. The first element is the rule Match would return; the rest are
// shadowed by it.
func (t *Table) MatchAll(normalized string) []Rule {
	var matches []Rule
	for _, rule := range t.rules {
		if rule.Matches(normalized) {
			matches = append(matches, rule)
		}
	}
	return matches
}

// Rules returns a copy of the table's rules in order.
func (t *Table) Rules() []Rule {
	out := make([]Rule, len(t.rules))
	copy(out, t.rules)
	return out
}

// Definitions returns the source definitions in order.
func (t *Table) Definitions() []model.RuleDefinition {
	out := make([]model.RuleDefinition, len(t.rules))
	for i, r := range t.rules {
		out[i] = r.RuleDefinition
	}
	return out
}

// Len returns the number of rules.
func (t *Table) Len() int {
	return len(t.rules)
}
