// Package engine implements the tiered classification of transactions:
// deterministic rules first, then the probabilistic model, then UNKNOWN.
package engine

import (
	"context"
	"log/slog"
	"runtime"
	"sync/atomic"

	"github.com/Veraticus/txcat/internal/common"
	"github.com/Veraticus/txcat/internal/ml"
	"github.com/Veraticus/txcat/internal/model"
	"github.com/Veraticus/txcat/internal/rules"
)

// RuleConfidence is the confidence reported for rule matches. Rules are
// deterministic, so this is fixed rather than measured.
const RuleConfidence = 1.0

// Config holds configuration options for the classification engine.
type Config struct {
	Logger          *slog.Logger
	ParallelWorkers int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		ParallelWorkers: runtime.NumCPU(),
	}
}

// Engine classifies transactions. It holds only read-only state after
// construction and is safe for concurrent use.
type Engine struct {
	table      *rules.Table
	classifier ml.Classifier
	logger     *slog.Logger
	workers    int
	counts     [3]atomic.Int64
}

// New creates an engine with the default configuration.
func New(table *rules.Table, classifier ml.Classifier) *Engine {
	return NewWithConfig(table, classifier, DefaultConfig())
}

// NewWithConfig creates an engine with custom configuration. A nil classifier
// is treated as unavailable.
func NewWithConfig(table *rules.Table, classifier ml.Classifier, config Config) *Engine {
	if classifier == nil {
		classifier = ml.Unavailable{Reason: "no classifier"}
	}
	if config.Logger == nil {
		config.Logger = slog.Default()
	}
	if config.ParallelWorkers <= 0 {
		config.ParallelWorkers = 1
	}
	return &Engine{
		table:      table,
		classifier: classifier,
		logger:     config.Logger,
		workers:    config.ParallelWorkers,
	}
}

// Classify runs one transaction through rules, then the model, then the
// UNKNOWN fallback. Each tier is tried at most once and a rule match always
// wins over the model.
func (e *Engine) Classify(ctx context.Context, txn model.TransactionInput) model.ClassificationResult {
	normalized := common.NormalizeDescription(txn.Description)

	if m, ok := e.table.Match(normalized); ok {
		e.record(model.MethodRules)
		e.logger.DebugContext(ctx, "Rule matched", "rule_id", m.RuleID, "description", normalized)
		return model.ClassificationResult{
			Category:    m.Category,
			Subcategory: stringPtr(m.Subcategory),
			Confidence:  RuleConfidence,
			Method:      model.MethodRules,
			RuleID:      stringPtr(m.RuleID),
		}
	}

	if e.classifier.Available() {
		if p, ok := e.classifier.Classify(txn); ok {
			e.record(model.MethodML)
			e.logger.DebugContext(ctx, "Model classified", "category", p.Category, "confidence", p.Confidence)
			return model.ClassificationResult{
				Category:    p.Category,
				Subcategory: stringPtr(p.Subcategory),
				Confidence:  p.Confidence,
				Method:      model.MethodML,
			}
		}
	}

	e.record(model.MethodFallback)
	return model.UnknownResult()
}

// ModelAvailable reports whether the probabilistic tier is loaded.
func (e *Engine) ModelAvailable() bool {
	return e.classifier.Available()
}

// Rules returns the engine's rule table.
func (e *Engine) Rules() *rules.Table {
	return e.table
}

func (e *Engine) record(m model.Method) {
	switch m {
	case model.MethodRules:
		e.counts[0].Add(1)
	case model.MethodML:
		e.counts[1].Add(1)
	case model.MethodFallback:
		e.counts[2].Add(1)
	}
}

// Stats counts classifications by method since the engine was created.
// Cache is set when the model tier memoizes predictions.
type Stats struct {
	Cache    *ml.CacheStats `json:"cache,omitempty"`
	Rules    int64          `json:"rules"`
	ML       int64          `json:"ml"`
	Fallback int64          `json:"fallback"`
}

// cacheReporter is implemented by classifiers with a prediction cache.
type cacheReporter interface {
	CacheStats() (ml.CacheStats, bool)
}

// Total returns the number of classifications.
func (s Stats) Total() int64 {
	return s.Rules + s.ML + s.Fallback
}

// Stats returns a snapshot of the method counters.
func (e *Engine) Stats() Stats {
	s := Stats{
		Rules:    e.counts[0].Load(),
		ML:       e.counts[1].Load(),
		Fallback: e.counts[2].Load(),
	}
	if cr, ok := e.classifier.(cacheReporter); ok {
		if cs, ok := cr.CacheStats(); ok {
			s.Cache = &cs
		}
	}
	return s
}

func stringPtr(s string) *string {
	return &s
}
