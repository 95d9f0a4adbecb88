package storage

import (
	"context"
	"fmt"
	"strings"

	"github.com/Veraticus/txcat/internal/common"
	"github.com/Veraticus/txcat/internal/model"
	"github.com/Veraticus/txcat/internal/rules"
)

// SaveRules replaces the stored rule table with defs, keeping their order.
func (s *SQLiteStorage) SaveRules(ctx context.Context, defs []model.RuleDefinition, source string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	seen := make(map[string]bool, len(defs))
	for _, def := range defs {
		id := strings.TrimSpace(def.ID)
		if id == "" {
			return common.ErrEmptyRuleID
		}
		if seen[id] {
			return fmt.Errorf("%w: %s", common.ErrDuplicateRuleID, id)
		}
		seen[id] = true
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM rules`); err != nil {
		return fmt.Errorf("failed to clear rules: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO rules (position, id, pattern, category, subcategory)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for i, def := range defs {
		if _, err := stmt.ExecContext(ctx, i, strings.TrimSpace(def.ID), def.Pattern, def.Category, def.Subcategory); err != nil {
			return fmt.Errorf("failed to save rule %s: %w", def.ID, err)
		}
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO rule_table_meta (key, value, updated_at) VALUES ('source', ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`, source); err != nil {
		return fmt.Errorf("failed to record rule source: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit rules: %w", err)
	}
	return nil
}

// LoadRules returns the stored rule definitions in table order.
func (s *SQLiteStorage) LoadRules(ctx context.Context) ([]model.RuleDefinition, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, pattern, category, subcategory
		FROM rules
		ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query rules: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var defs []model.RuleDefinition
	for rows.Next() {
		var def model.RuleDefinition
		if err := rows.Scan(&def.ID, &def.Pattern, &def.Category, &def.Subcategory); err != nil {
			return nil, fmt.Errorf("failed to scan rule: %w", err)
		}
		defs = append(defs, def)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read rules: %w", err)
	}

	return defs, nil
}

// RuleSource returns the provenance recorded by the last SaveRules.
func (s *SQLiteStorage) RuleSource(ctx context.Context) (string, error) {
	var source string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM rule_table_meta WHERE key = 'source'`).Scan(&source)
	if err != nil {
		return "", fmt.Errorf("failed to read rule source: %w", err)
	}
	return source, nil
}

// LoadTable compiles the stored rules into a table. An empty store is an
// error so that a missing export does not silently disable every rule.
func (s *SQLiteStorage) LoadTable(ctx context.Context) (*rules.Table, error) {
	defs, err := s.LoadRules(ctx)
	if err != nil {
		return nil, err
	}
	if len(defs) == 0 {
		return nil, fmt.Errorf("%w: %s", common.ErrEmptyRuleTable, s.dbPath)
	}
	return rules.NewTable(defs)
}
