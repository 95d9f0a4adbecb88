package rules

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Veraticus/txcat/internal/common"
	"github.com/Veraticus/txcat/internal/model"
	"gopkg.in/yaml.v3"
)

// fileFormat is the YAML layout of a rule table file:
//
//	rules:
//	  - id: R001
//	    pattern: '^\s*PASS\s*$'
//	    category: CHARGES_VARIABLES
//	    subcategory: TRANSPORTS_COMMUN
//
// A sequence keeps declaration order.
type fileFormat struct {
	Rules []model.RuleDefinition `yaml:"rules"`
}

// LoadYAML reads a rule table from r. A file without rules is rejected like
// an empty rule store.
func LoadYAML(r io.Reader) (*Table, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f fileFormat
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty rule file", common.ErrEmptyRuleTable)
		}
		return nil, fmt.Errorf("failed to parse rule file: %w", err)
	}
	if len(f.Rules) == 0 {
		return nil, fmt.Errorf("%w: rule file lists no rules", common.ErrEmptyRuleTable)
	}

	return NewTable(f.Rules)
}

// LoadYAMLFile reads a rule table from the YAML file at path.
func LoadYAMLFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open rule file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return LoadYAML(f)
}

// WriteYAML writes the table's definitions to w in the LoadYAML format.
func WriteYAML(w io.Writer, t *Table) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(fileFormat{Rules: t.Definitions()}); err != nil {
		return fmt.Errorf("failed to encode rules: %w", err)
	}
	return enc.Close()
}
