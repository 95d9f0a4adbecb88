package ml

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/Veraticus/txcat/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdapter_Classify(t *testing.T) {
	tests := []struct {
		model Model
		name  string
		want  Prediction
		ok    bool
	}{
		{
			name:  "label with probability",
			model: stubProbModel{stubModel: stubModel{label: "ALIMENTATION / RESTAURANTS"}, prob: 0.8},
			want:  Prediction{Category: "ALIMENTATION", Subcategory: "RESTAURANTS", Confidence: 0.8},
			ok:    true,
		},
		{
			name:  "label without separator",
			model: stubProbModel{stubModel: stubModel{label: "DIVERS"}, prob: 0.4},
			want:  Prediction{Category: "DIVERS", Subcategory: "", Confidence: 0.4},
			ok:    true,
		},
		{
			name:  "no probability support",
			model: stubModel{label: "ACHATS / DIVERS"},
			want:  Prediction{Category: "ACHATS", Subcategory: "DIVERS", Confidence: 0},
			ok:    true,
		},
		{
			name:  "low confidence is kept",
			model: stubProbModel{stubModel: stubModel{label: "ACHATS / DIVERS"}, prob: 0.01},
			want:  Prediction{Category: "ACHATS", Subcategory: "DIVERS", Confidence: 0.01},
			ok:    true,
		},
		{
			name:  "probability error falls back to zero",
			model: stubProbModel{stubModel: stubModel{label: "ACHATS / DIVERS"}, probErr: errStub},
			want:  Prediction{Category: "ACHATS", Subcategory: "DIVERS", Confidence: 0},
			ok:    true,
		},
		{
			name:  "out of range probability is clamped",
			model: stubProbModel{stubModel: stubModel{label: "ACHATS / DIVERS"}, prob: 1.5},
			want:  Prediction{Category: "ACHATS", Subcategory: "DIVERS", Confidence: 1},
			ok:    true,
		},
		{
			name:  "empty label is no result",
			model: stubModel{label: ""},
		},
		{
			name:  "predict error is no result",
			model: stubModel{err: errStub},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewAdapter(tt.model, nil)
			assert.True(t, a.Available())

			got, ok := a.Classify(model.TransactionInput{Description: "SOMETHING"})
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUnavailable(t *testing.T) {
	var c Classifier = Unavailable{Reason: "missing"}
	assert.False(t, c.Available())

	got, ok := c.Classify(model.TransactionInput{Description: "RESTAURANT"})
	assert.False(t, ok)
	assert.Equal(t, Prediction{}, got)
}

func TestLoad(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	c := Load(writeTestModel(t), logger)
	require.True(t, c.Available())
	assert.Contains(t, buf.String(), "Loaded classifier model")

	got, ok := c.Classify(model.TransactionInput{
		Description: "BRASSERIE LA PAIX",
		Type:        "CARD",
		Amount:      "38,50",
		Sense:       model.SenseDebit,
	})
	require.True(t, ok)
	assert.Equal(t, "ALIMENTATION", got.Category)
	assert.Equal(t, "RESTAURANTS", got.Subcategory)
	assert.Greater(t, got.Confidence, 0.0)
	assert.LessOrEqual(t, got.Confidence, 1.0)
}

func TestLoad_Unavailable(t *testing.T) {
	dir := t.TempDir()
	corrupt := filepath.Join(dir, "corrupt.bayes")
	require.NoError(t, os.WriteFile(corrupt, []byte{0x00, 0x01, 0x02}, 0o600))

	tests := []struct {
		name    string
		path    string
		wantLog string
	}{
		{name: "not configured", path: "", wantLog: "not configured"},
		{name: "missing file", path: filepath.Join(dir, "missing.bayes"), wantLog: "not found"},
		{name: "corrupt file", path: corrupt, wantLog: "Failed to load"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&buf, nil))

			c := Load(tt.path, logger)
			assert.False(t, c.Available())
			assert.IsType(t, Unavailable{}, c)
			assert.Contains(t, buf.String(), tt.wantLog)
		})
	}
}
