package checker

import "github.com/formalcore/tvmc/space"

type cacheKey struct {
	entry int
	state space.StateID
}

// LatestCache is a per-subproperty, per-state cache of the most recent
// TimedValue (spec.md §4.5), invalidated wholesale on every precision
// refinement via Reset.
type LatestCache struct {
	entries map[cacheKey]TimedValue
}

// NewLatestCache returns an empty LatestCache.
func NewLatestCache() *LatestCache {
	return &LatestCache{entries: make(map[cacheKey]TimedValue)}
}

// Get returns the cached value for (entry, state), if any.
func (c *LatestCache) Get(entry int, state space.StateID) (TimedValue, bool) {
	tv, ok := c.entries[cacheKey{entry, state}]

	return tv, ok
}

// Set records the latest value for (entry, state).
func (c *LatestCache) Set(entry int, state space.StateID, tv TimedValue) {
	c.entries[cacheKey{entry, state}] = tv
}

// Reset invalidates every cached value.
func (c *LatestCache) Reset() {
	c.entries = make(map[cacheKey]TimedValue)
}
