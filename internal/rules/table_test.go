package rules

import (
	"testing"

	"github.com/Veraticus/txcat/internal/common"
	"github.com/Veraticus/txcat/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTable(t *testing.T) {
	tests := []struct {
		wantErr error
		name    string
		defs    []model.RuleDefinition
		wantLen int
	}{
		{
			name: "valid rules",
			defs: []model.RuleDefinition{
				{ID: "A", Pattern: `^PASS$`, Category: "C1", Subcategory: "S1"},
				{ID: "B", Pattern: `PASS`, Category: "C2", Subcategory: "S2"},
			},
			wantLen: 2,
		},
		{
			name:    "empty table",
			defs:    nil,
			wantLen: 0,
		},
		{
			name: "duplicate id",
			defs: []model.RuleDefinition{
				{ID: "R1", Pattern: `FOO`},
				{ID: "R2", Pattern: `BAR`},
				{ID: "R1", Pattern: `BAZ`},
			},
			wantErr: common.ErrDuplicateRuleID,
		},
		{
			name: "blank id",
			defs: []model.RuleDefinition{
				{ID: "  ", Pattern: `FOO`},
			},
			wantErr: common.ErrEmptyRuleID,
		},
		{
			name: "invalid regex",
			defs: []model.RuleDefinition{
				{ID: "R1", Pattern: `[invalid regex`},
			},
			wantErr: common.ErrInvalidPattern,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := NewTable(tt.defs)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, table)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantLen, table.Len())
		})
	}
}

func TestTable_FirstMatchWins(t *testing.T) {
	table, err := NewTable([]model.RuleDefinition{
		{ID: "EXACT", Pattern: `^\s*PASS\s*$`, Category: "TRANSPORT", Subcategory: "PASS"},
		{ID: "BROAD", Pattern: `PASS`, Category: "OTHER", Subcategory: "ANY"},
	})
	require.NoError(t, err)

	m, ok := table.Match("PASS")
	require.True(t, ok)
	assert.Equal(t, "EXACT", m.RuleID)
	assert.Equal(t, "TRANSPORT", m.Category)
	assert.Equal(t, "PASS", m.Subcategory)

	m, ok = table.Match("PASSAGE DU NORD")
	require.True(t, ok)
	assert.Equal(t, "BROAD", m.RuleID)

	all := table.MatchAll("PASS")
	require.Len(t, all, 2)
	assert.Equal(t, "EXACT", all[0].ID)
	assert.Equal(t, "BROAD", all[1].ID)
}

func TestTable_OrderIsDeclarationOrder(t *testing.T) {
	// The broad rule comes first, so it shadows the exact one.
	table, err := NewTable([]model.RuleDefinition{
		{ID: "BROAD", Pattern: `PASS`, Category: "OTHER"},
		{ID: "EXACT", Pattern: `^PASS$`, Category: "TRANSPORT"},
	})
	require.NoError(t, err)

	m, ok := table.Match("PASS")
	require.True(t, ok)
	assert.Equal(t, "BROAD", m.RuleID)

	ids := make([]string, 0, table.Len())
	for _, r := range table.Rules() {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []string{"BROAD", "EXACT"}, ids)
}

func TestTable_NoMatch(t *testing.T) {
	table := MustDefault()

	_, ok := table.Match("")
	assert.False(t, ok, "empty description must not match")

	_, ok = table.Match("SOME UNKNOWN MERCHANT 123")
	assert.False(t, ok)
}

func TestTable_CaseInsensitive(t *testing.T) {
	table, err := NewTable([]model.RuleDefinition{
		{ID: "R1", Pattern: `Interest payment`, Category: "BANQUE", Subcategory: "INTERETS"},
	})
	require.NoError(t, err)

	m, ok := table.MatchDescription("  interest   PAYMENT ")
	require.True(t, ok)
	assert.Equal(t, "R1", m.RuleID)
}

func TestTable_RulesReturnsCopy(t *testing.T) {
	table, err := NewTable([]model.RuleDefinition{{ID: "R1", Pattern: `FOO`, Category: "C"}})
	require.NoError(t, err)

	rules := table.Rules()
	rules[0] = Rule{}

	m, ok := table.Match("FOO")
	require.True(t, ok)
	assert.Equal(t, "R1", m.RuleID)
}

func TestDefaultTable(t *testing.T) {
	table := MustDefault()
	assert.Equal(t, 95, table.Len())

	defs := table.Definitions()
	assert.Equal(t, "R001", defs[0].ID)
	assert.Equal(t, "R095", defs[len(defs)-1].ID)

	tests := []struct {
		description string
		wantID      string
		wantCat     string
		wantSub     string
	}{
		{"AMAZON.FR*XZ1234", "R005", "ACHATS", "DIVERS"},
		{"Amazon.fr*ZX9NA3KU4", "R005", "ACHATS", "DIVERS"},
		{"PASS", "R001", "CHARGES_VARIABLES", "TRANSPORTS_COMMUN"},
		{"  pass  ", "R001", "CHARGES_VARIABLES", "TRANSPORTS_COMMUN"},
		{"TOTAL MARKETING FRANCE", "R002", "CHARGES_VARIABLES", "CARBURANT"},
		{"Apple.com/bill", "R057", "CHARGES_FIXES", "ABONNEMENTS_FIXES"},
		{"AMAZON PRIME FR 2469664", "R092", "CHARGES_FIXES", "ABONNEMENTS_FIXES"},
		{"Interest payment", "R048", "BANQUE", "INTERETS"},
		{"ZENPARK MAILLERIE", "R095", "CHARGES_VARIABLES", "STATIONNEMENT_PEAGES"},
		{"Incoming transfer from M PAUL DENHEZ (FR7616275500000412664270831)", "R003", "DIVERS", "AJUSTEMENTS_ERREURS"},
		{"Paiement accepté: FR7616275500000412664270831 à DE74502109007020623696", "R004", "DIVERS", "AJUSTEMENTS_ERREURS"},
		{"SNP*SPEED PIZZA LILLE", "R050", "ALIMENTATION", "RESTAURANTS"},
		{"SPEED PIZZA LILLE", "R072", "ALIMENTATION", "RESTAURANTS"},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			m, ok := table.MatchDescription(tt.description)
			require.True(t, ok)
			assert.Equal(t, tt.wantID, m.RuleID)
			assert.Equal(t, tt.wantCat, m.Category)
			assert.Equal(t, tt.wantSub, m.Subcategory)
		})
	}
}

func TestDefaultTable_UniqueIDs(t *testing.T) {
	seen := make(map[string]bool)
	for _, def := range Default() {
		assert.False(t, seen[def.ID], "duplicate id %s", def.ID)
		seen[def.ID] = true
	}
}
