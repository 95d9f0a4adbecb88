package ml

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/jbrukh/bayesian"
	"github.com/stretchr/testify/require"
)

// stubModel returns a fixed label.
type stubModel struct {
	err   error
	label string
}

func (s stubModel) Predict(Features) (string, error) {
	return s.label, s.err
}

// stubProbModel returns a fixed label and probability.
type stubProbModel struct {
	probErr error
	stubModel
	prob float64
}

func (s stubProbModel) MaxProbability(Features) (float64, error) {
	return s.prob, s.probErr
}

var errStub = errors.New("stub failure")

const (
	labelRestaurants = "ALIMENTATION / RESTAURANTS"
	labelCourses     = "ALIMENTATION / COURSES"
	labelTransport   = "CHARGES_VARIABLES / TRANSPORTS_COMMUN"
)

// trainTestClassifier builds a small classifier from hand-written examples.
func trainTestClassifier(t *testing.T) *bayesian.Classifier {
	t.Helper()

	clf := bayesian.NewClassifier(labelRestaurants, labelCourses, labelTransport)

	examples := []struct {
		label bayesian.Class
		f     Features
	}{
		{labelRestaurants, Features{Description: "RESTAURANT LE PETIT BISTROT", Type: "CARD", Sense: "DEBIT", Amount: 32}},
		{labelRestaurants, Features{Description: "PIZZERIA NAPOLI RESTAURANT", Type: "CARD", Sense: "DEBIT", Amount: 28}},
		{labelRestaurants, Features{Description: "BRASSERIE DU CENTRE", Type: "CARD", Sense: "DEBIT", Amount: 41}},
		{labelCourses, Features{Description: "CARREFOUR MARKET LILLE", Type: "CARD", Sense: "DEBIT", Amount: 85}},
		{labelCourses, Features{Description: "AUCHAN SUPERMARCHE", Type: "CARD", Sense: "DEBIT", Amount: 120}},
		{labelCourses, Features{Description: "LIDL MARKET", Type: "CARD", Sense: "DEBIT", Amount: 64}},
		{labelTransport, Features{Description: "SNCF VOYAGEURS BILLET", Type: "CARD", Sense: "DEBIT", Amount: 45}},
		{labelTransport, Features{Description: "RATP NAVIGO METRO", Type: "CARD", Sense: "DEBIT", Amount: 86}},
		{labelTransport, Features{Description: "TRANSPOLE METRO LILLE", Type: "CARD", Sense: "DEBIT", Amount: 2}},
	}
	for _, ex := range examples {
		clf.Learn(Tokens(ex.f), ex.label)
	}

	return clf
}

// writeTestModel trains a classifier and writes it to a temporary file.
func writeTestModel(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "tx_model.bayes")
	require.NoError(t, trainTestClassifier(t).WriteToFile(path))
	return path
}
