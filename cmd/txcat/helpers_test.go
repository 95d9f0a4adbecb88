package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Veraticus/txcat/internal/common"
	"github.com/Veraticus/txcat/internal/config"
	"github.com/Veraticus/txcat/internal/model"
	"github.com/Veraticus/txcat/internal/rules"
	"github.com/Veraticus/txcat/internal/storage"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string {
	return &s
}

func testBatch() ([]model.TransactionInput, []model.ClassificationResult) {
	inputs := []model.TransactionInput{
		{Date: "2024-01-15", Description: "PASS", Amount: "2,10", Sense: model.SenseDebit},
		{Description: "???"},
	}
	results := []model.ClassificationResult{
		{Category: "CHARGES_VARIABLES", Subcategory: strPtr("TRANSPORTS_COMMUN"), Confidence: 1, Method: model.MethodRules, RuleID: strPtr("R001")},
		model.UnknownResult(),
	}
	return inputs, results
}

func TestWriteResults(t *testing.T) {
	inputs, results := testBatch()

	tests := []struct {
		check  func(t *testing.T, out string)
		format string
	}{
		{
			format: "table",
			check: func(t *testing.T, out string) {
				assert.Contains(t, out, "DESCRIPTION")
				assert.Contains(t, out, "R001")
			},
		},
		{
			format: "CSV",
			check: func(t *testing.T, out string) {
				assert.True(t, strings.HasPrefix(out, "Date;Type;Description;Montant;Sens;Category"))
			},
		},
		{
			format: "json",
			check: func(t *testing.T, out string) {
				lines := strings.Split(strings.TrimSpace(out), "\n")
				require.Len(t, lines, 2)
				var first map[string]any
				require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
				assert.Equal(t, "R001", first["rule_id"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, writeResults(&buf, tt.format, inputs, results))
			tt.check(t, buf.String())
		})
	}
}

func TestWriteResults_UnknownFormat(t *testing.T) {
	inputs, results := testBatch()

	err := writeResults(&bytes.Buffer{}, "xml", inputs, results)
	var userErr *common.UserError
	require.ErrorAs(t, err, &userErr)
}

func TestExpandFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.ofx", "b.ofx", "c.qfx"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o600))
	}

	files, err := expandFiles([]string{filepath.Join(dir, "*.ofx"), filepath.Join(dir, "c.qfx")})
	require.NoError(t, err)
	assert.Len(t, files, 3)

	_, err = expandFiles([]string{filepath.Join(dir, "*.csv")})
	require.Error(t, err)
}

func TestPrintRuleTest(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printRuleTest(&buf, rules.MustDefault(), "amazon prime fr 2469664"))

	out := buf.String()
	assert.Contains(t, out, "AMAZON PRIME FR 2469664")
	assert.Contains(t, out, "R092")

	buf.Reset()
	require.NoError(t, printRuleTest(&buf, rules.MustDefault(), "nothing at all"))
	assert.Contains(t, buf.String(), "No rule matches")
}

func TestPrintRuleTest_Shadowed(t *testing.T) {
	table, err := rules.NewTable([]model.RuleDefinition{
		{ID: "EXACT", Pattern: `^PASS$`, Category: "T", Subcategory: "P"},
		{ID: "BROAD", Pattern: `PASS`, Category: "O", Subcategory: "A"},
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, printRuleTest(&buf, table, "pass"))
	out := buf.String()
	assert.Contains(t, out, "EXACT")
	assert.Contains(t, out, "shadowed: BROAD")
}

func TestExportRules(t *testing.T) {
	table := rules.MustDefault()
	dir := t.TempDir()

	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	yamlPath := filepath.Join(dir, "rules.yaml")
	require.NoError(t, exportRules(cmd, table, config.SourceBuiltin, yamlPath, ""))
	loaded, err := rules.LoadYAMLFile(yamlPath)
	require.NoError(t, err)
	assert.Equal(t, table.Definitions(), loaded.Definitions())

	dbPath := filepath.Join(dir, "rules.db")
	require.NoError(t, exportRules(cmd, table, config.SourceBuiltin, "", dbPath))

	source, err := config.DescribeRuleSource(context.Background(), config.RulesConfig{DB: dbPath})
	require.NoError(t, err)
	assert.Equal(t, "db:"+dbPath+", exported from builtin", source)

	store, err := storage.NewSQLiteStorage(dbPath)
	require.NoError(t, err)
	defer func() { _ = store.Close() }()
	fromDB, err := store.LoadTable(context.Background())
	require.NoError(t, err)
	assert.Equal(t, table.Definitions(), fromDB.Definitions())

	require.Error(t, exportRules(cmd, table, config.SourceBuiltin, yamlPath, dbPath))
	require.Error(t, exportRules(cmd, table, config.SourceBuiltin, "", ""))
}

func TestBuildEngine_RulesOnly(t *testing.T) {
	cfg := config.Config{
		Model: config.ModelConfig{Path: filepath.Join(t.TempDir(), "missing.bayes")},
		Batch: config.BatchConfig{Concurrency: 2},
	}

	e, err := buildEngine(context.Background(), cfg)
	require.NoError(t, err)
	assert.False(t, e.ModelAvailable())
	assert.Equal(t, 95, e.Rules().Len())
}

func TestBuildEngine_BadRules(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rules:\n  - {id: R1, pattern: '('}\n"), 0o600))

	_, err := buildEngine(context.Background(), config.Config{Rules: config.RulesConfig{File: path}})
	require.ErrorIs(t, err, common.ErrInvalidPattern)
}
