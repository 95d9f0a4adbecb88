package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/Veraticus/txcat/internal/common"
	"github.com/Veraticus/txcat/internal/model"
	"github.com/Veraticus/txcat/internal/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// createTestStorage opens a migrated database in a temp directory.
func createTestStorage(t *testing.T) *SQLiteStorage {
	t.Helper()

	store, err := NewSQLiteStorage(filepath.Join(t.TempDir(), "rules.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	require.NoError(t, store.Migrate(context.Background()))
	return store
}

func TestMigrate_Idempotent(t *testing.T) {
	store := createTestStorage(t)
	require.NoError(t, store.Migrate(context.Background()))
}

func TestSaveAndLoadRules_KeepsOrder(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	defs := rules.Default()
	require.NoError(t, store.SaveRules(ctx, defs, "builtin"))

	loaded, err := store.LoadRules(ctx)
	require.NoError(t, err)
	assert.Equal(t, defs, loaded)

	source, err := store.RuleSource(ctx)
	require.NoError(t, err)
	assert.Equal(t, "builtin", source)
}

func TestSaveRules_Replaces(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.SaveRules(ctx, rules.Default(), "builtin"))
	replacement := []model.RuleDefinition{
		{ID: "B", Pattern: `PASS`, Category: "OTHER", Subcategory: "ANY"},
		{ID: "A", Pattern: `^PASS$`, Category: "TRANSPORT", Subcategory: "PASS"},
	}
	require.NoError(t, store.SaveRules(ctx, replacement, "rules.yaml"))

	table, err := store.LoadTable(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, table.Len())

	m, ok := table.Match("PASS")
	require.True(t, ok)
	assert.Equal(t, "B", m.RuleID)

	source, err := store.RuleSource(ctx)
	require.NoError(t, err)
	assert.Equal(t, "rules.yaml", source)
}

func TestSaveRules_RejectsDuplicates(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	err := store.SaveRules(ctx, []model.RuleDefinition{
		{ID: "R1", Pattern: "A"},
		{ID: "R1", Pattern: "B"},
	}, "test")
	require.ErrorIs(t, err, common.ErrDuplicateRuleID)

	loaded, err := store.LoadRules(ctx)
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestLoadTable_Empty(t *testing.T) {
	store := createTestStorage(t)

	_, err := store.LoadTable(context.Background())
	require.ErrorIs(t, err, common.ErrEmptyRuleTable)
}

func TestLoadTable_InvalidPattern(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.SaveRules(ctx, []model.RuleDefinition{{ID: "R1", Pattern: "("}}, "test"))

	_, err := store.LoadTable(ctx)
	require.ErrorIs(t, err, common.ErrInvalidPattern)
}

func TestNewSQLiteStorage_EmptyPath(t *testing.T) {
	_, err := NewSQLiteStorage("  ")
	require.ErrorIs(t, err, ErrEmptyString)
}
