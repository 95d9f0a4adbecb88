package ml

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/Veraticus/txcat/internal/common"
	"github.com/jbrukh/bayesian"
)

// Model is the capability the externally trained classifier must provide.
type Model interface {
	// Predict returns the combined "CATEGORY / SUBCATEGORY" label.
	Predict(f Features) (string, error)
}

// ProbabilityEstimator is implemented by models that expose class
// probabilities.
type ProbabilityEstimator interface {
	// MaxProbability returns the probability of the most likely class.
	MaxProbability(f Features) (float64, error)
}

// BayesModel serves a naive Bayes classifier whose classes are combined labels.
type BayesModel struct {
	clf *bayesian.Classifier
}

// NewBayesModel wraps an already trained classifier.
func NewBayesModel(clf *bayesian.Classifier) (*BayesModel, error) {
	if clf == nil || len(clf.Classes) < 2 {
		return nil, fmt.Errorf("%w: classifier needs at least two classes", common.ErrModelCorrupt)
	}
	return &BayesModel{clf: clf}, nil
}

// LoadBayesModel reads a serialized classifier from path.
func LoadBayesModel(path string) (m *BayesModel, err error) {
	if _, statErr := os.Stat(path); statErr != nil {
		if errors.Is(statErr, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", common.ErrModelNotFound, path)
		}
		return nil, fmt.Errorf("failed to stat model: %w", statErr)
	}

	// The decoder panics on some malformed inputs.
	defer func() {
		if r := recover(); r != nil {
			m = nil
			err = fmt.Errorf("%w: %v", common.ErrModelCorrupt, r)
		}
	}()

	clf, err := bayesian.NewClassifierFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrModelCorrupt, err)
	}
	return NewBayesModel(clf)
}

// Classes returns the labels the model can produce.
func (m *BayesModel) Classes() []string {
	out := make([]string, len(m.clf.Classes))
	for i, c := range m.clf.Classes {
		out[i] = string(c)
	}
	return out
}

// Predict returns the most likely label.
func (m *BayesModel) Predict(f Features) (string, error) {
	probs, inx, err := m.posterior(f)
	if err != nil {
		return "", err
	}
	if inx < 0 || inx >= len(probs) {
		return "", nil
	}
	return string(m.clf.Classes[inx]), nil
}

// MaxProbability returns the posterior probability of the most likely label.
func (m *BayesModel) MaxProbability(f Features) (float64, error) {
	probs, inx, err := m.posterior(f)
	if err != nil {
		return 0, err
	}
	if inx < 0 || inx >= len(probs) {
		return 0, nil
	}
	return probs[inx], nil
}

// posterior normalizes the model's log scores into probabilities. Working
// from log scores keeps long descriptions from underflowing.
func (m *BayesModel) posterior(f Features) (probs []float64, inx int, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("bayesian classifier: %v", r)
		}
	}()

	scores, inx, _ := m.clf.LogScores(Tokens(f))
	if len(scores) == 0 {
		return nil, -1, nil
	}

	top := math.Inf(-1)
	for _, s := range scores {
		if s > top {
			top = s
		}
	}
	if math.IsInf(top, -1) || math.IsNaN(top) {
		return nil, -1, nil
	}

	probs = make([]float64, len(scores))
	var sum float64
	for i, s := range scores {
		probs[i] = math.Exp(s - top)
		sum += probs[i]
	}
	for i := range probs {
		probs[i] /= sum
	}

	return probs, inx, nil
}
