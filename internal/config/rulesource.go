package config

import (
	"context"
	"fmt"

	"github.com/Veraticus/txcat/internal/rules"
	"github.com/Veraticus/txcat/internal/storage"
)

// Rule table sources.
const (
	SourceBuiltin = "builtin"
	SourceFile    = "file"
	SourceDB      = "db"
)

// Source names the configured rule table source.
func (c RulesConfig) Source() string {
	switch {
	case c.File != "":
		return SourceFile
	case c.DB != "":
		return SourceDB
	default:
		return SourceBuiltin
	}
}

// Origin identifies the configured table for provenance records, for
// example "builtin" or "file:/etc/txcat/rules.yaml".
func (c RulesConfig) Origin() string {
	switch c.Source() {
	case SourceFile:
		return SourceFile + ":" + c.File
	case SourceDB:
		return SourceDB + ":" + c.DB
	default:
		return SourceBuiltin
	}
}

// DescribeRuleSource renders where the active table comes from. For a rule
// store it includes the origin recorded when the store was exported.
func DescribeRuleSource(ctx context.Context, c RulesConfig) (string, error) {
	if c.Source() != SourceDB {
		return c.Origin(), nil
	}

	store, err := storage.NewSQLiteStorage(c.DB)
	if err != nil {
		return "", fmt.Errorf("failed to open rule store: %w", err)
	}
	defer func() { _ = store.Close() }()

	if err := store.Migrate(ctx); err != nil {
		return "", fmt.Errorf("failed to run migrations: %w", err)
	}
	exported, err := store.RuleSource(ctx)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s, exported from %s", c.Origin(), exported), nil
}

// LoadRuleTable builds the rule table from the configured source. Any
// error here is a defect in the table and must abort startup.
func LoadRuleTable(ctx context.Context, c RulesConfig) (*rules.Table, error) {
	switch c.Source() {
	case SourceFile:
		table, err := rules.LoadYAMLFile(c.File)
		if err != nil {
			return nil, fmt.Errorf("failed to load rules from %s: %w", c.File, err)
		}
		return table, nil

	case SourceDB:
		store, err := storage.NewSQLiteStorage(c.DB)
		if err != nil {
			return nil, fmt.Errorf("failed to open rule store: %w", err)
		}
		defer func() { _ = store.Close() }()

		if err := store.Migrate(ctx); err != nil {
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
		table, err := store.LoadTable(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load rules from %s: %w", c.DB, err)
		}
		return table, nil

	default:
		return rules.NewTable(rules.Default())
	}
}
