package ml

import (
	"errors"
	"log/slog"
	"math"

	"github.com/Veraticus/txcat/internal/common"
	"github.com/Veraticus/txcat/internal/model"
)

// Prediction is a label produced by the probabilistic tier.
type Prediction struct {
	Category    string
	Subcategory string
	Confidence  float64
}

// Classifier is the probabilistic tier as seen by the engine. It is either a
// working *Adapter or an Unavailable value, decided once at startup.
type Classifier interface {
	// Available reports whether a model is loaded.
	Available() bool
	// Classify returns a prediction, or false when the model has no answer.
	Classify(txn model.TransactionInput) (Prediction, bool)
}

// Adapter wraps a loaded Model.
type Adapter struct {
	model  Model
	logger *slog.Logger
}

// NewAdapter creates an adapter over a loaded model.
func NewAdapter(m Model, logger *slog.Logger) *Adapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Adapter{model: m, logger: logger}
}

// Available always reports true.
func (a *Adapter) Available() bool {
	return true
}

// Classify assembles the feature record, queries the model and splits its
// label. Low confidence is not rejected.
func (a *Adapter) Classify(txn model.TransactionInput) (Prediction, bool) {
	f := FeaturesFrom(txn)

	label, err := a.model.Predict(f)
	if err != nil {
		a.logger.Debug("Classifier prediction failed", "error", err)
		return Prediction{}, false
	}
	if label == "" {
		return Prediction{}, false
	}

	confidence := 0.0
	if pe, ok := a.model.(ProbabilityEstimator); ok {
		p, probErr := pe.MaxProbability(f)
		if probErr != nil {
			a.logger.Debug("Classifier probability failed", "error", probErr)
		} else {
			confidence = clamp01(p)
		}
	}

	category, subcategory := SplitLabel(label)
	return Prediction{
		Category:    category,
		Subcategory: subcategory,
		Confidence:  confidence,
	}, true
}

// CacheStats reports prediction cache counters when the wrapped model is
// cached.
func (a *Adapter) CacheStats() (CacheStats, bool) {
	cm, ok := a.model.(*CachedModel)
	if !ok {
		return CacheStats{}, false
	}
	return cm.Stats(), true
}

// Unavailable is the absent classifier. It never produces a prediction.
type Unavailable struct {
	Reason string
}

// Available always reports false.
func (Unavailable) Available() bool {
	return false
}

// Classify always reports no result.
func (Unavailable) Classify(model.TransactionInput) (Prediction, bool) {
	return Prediction{}, false
}

// Load reads the model artifact at path once. Any failure yields Unavailable
// for the life of the process; callers keep serving with rules only.
func Load(path string, logger *slog.Logger) Classifier {
	if logger == nil {
		logger = slog.Default()
	}

	if path == "" {
		logger.Info("Classifier model not configured, running with rules only")
		return Unavailable{Reason: "no model path configured"}
	}

	m, err := LoadBayesModel(path)
	if err != nil {
		if errors.Is(err, common.ErrModelNotFound) {
			logger.Warn("Classifier model not found, running with rules only", "path", path)
		} else {
			logger.Error("Failed to load classifier model, running with rules only", "path", path, "error", err)
		}
		return Unavailable{Reason: err.Error()}
	}

	logger.Info("Loaded classifier model", "path", path, "classes", len(m.Classes()))
	return NewAdapter(NewCachedModel(m, DefaultCacheSize), logger)
}

func clamp01(p float64) float64 {
	switch {
	case math.IsNaN(p), p < 0:
		return 0
	case p > 1:
		return 1
	default:
		return p
	}
}
