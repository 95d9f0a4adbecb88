package ml

import (
	"sync"
	"sync/atomic"
)

// DefaultCacheSize bounds the number of memoized predictions.
const DefaultCacheSize = 10000

// cacheEntry is a memoized prediction.
type cacheEntry struct {
	label   string
	prob    float64
	hasProb bool
}

// CacheStats is a snapshot of a CachedModel's effectiveness.
type CacheStats struct {
	Entries int   `json:"entries"`
	Hits    int64 `json:"hits"`
	Misses  int64 `json:"misses"`
}

// HitRate returns the share of lookups served from the cache.
func (s CacheStats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}

// CachedModel memoizes a Model by its exact feature record. Statements
// repeat the same merchants, and a loaded model never changes, so entries
// never expire. When full, the cache is cleared rather than evicting one
// entry at a time.
type CachedModel struct {
	model      Model
	entries    map[Features]cacheEntry
	maxEntries int
	hits       atomic.Int64
	misses     atomic.Int64
	mu         sync.RWMutex
}

// NewCachedModel wraps m with a cache of at most maxEntries predictions.
func NewCachedModel(m Model, maxEntries int) *CachedModel {
	if maxEntries <= 0 {
		maxEntries = DefaultCacheSize
	}
	return &CachedModel{
		model:      m,
		entries:    make(map[Features]cacheEntry),
		maxEntries: maxEntries,
	}
}

// get retrieves a cached prediction.
func (c *CachedModel) get(key Features) (cacheEntry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entry, ok := c.entries[key]
	return entry, ok
}

// set stores a prediction, clearing the cache first when it is full.
func (c *CachedModel) set(key Features, entry cacheEntry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.entries) >= c.maxEntries {
		c.entries = make(map[Features]cacheEntry)
	}
	c.entries[key] = entry
}

// Predict returns the cached label or asks the wrapped model. Errors are
// not cached.
func (c *CachedModel) Predict(f Features) (string, error) {
	if entry, ok := c.get(f); ok {
		c.hits.Add(1)
		return entry.label, nil
	}
	c.misses.Add(1)

	label, err := c.model.Predict(f)
	if err != nil {
		return "", err
	}

	entry := cacheEntry{label: label}
	if pe, ok := c.model.(ProbabilityEstimator); ok {
		if p, probErr := pe.MaxProbability(f); probErr == nil {
			entry.prob = p
			entry.hasProb = true
		}
	}
	c.set(f, entry)

	return label, nil
}

// MaxProbability returns the cached probability, or asks the wrapped model
// when it was not recorded. A model without probabilities yields 0.
func (c *CachedModel) MaxProbability(f Features) (float64, error) {
	if entry, ok := c.get(f); ok && entry.hasProb {
		return entry.prob, nil
	}
	pe, ok := c.model.(ProbabilityEstimator)
	if !ok {
		return 0, nil
	}
	return pe.MaxProbability(f)
}

// Stats returns the current entry count and lookup counters.
func (c *CachedModel) Stats() CacheStats {
	c.mu.RLock()
	entries := len(c.entries)
	c.mu.RUnlock()

	return CacheStats{
		Entries: entries,
		Hits:    c.hits.Load(),
		Misses:  c.misses.Load(),
	}
}
