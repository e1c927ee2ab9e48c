package checker

import (
	"github.com/google/btree"
	"github.com/formalcore/tvmc/space"
)

// historyItem orders primarily by State then by Time, so every record
// for one state sits in one contiguous run of the tree and "the last
// value strictly before time t" is a single descending seek from
// (state, t-1) that stops as soon as the state changes.
type historyItem struct {
	state space.StateID
	time  int
	value TimedValue
}

func (a historyItem) Less(than btree.Item) bool {
	b := than.(historyItem)
	if a.state != b.state {
		return a.state < b.state
	}

	return a.time < b.time
}

// History is an append-only, per-fixed-point-subproperty log of
// (time, state) -> TimedValue (spec.md §3, §4.4), indexed with a
// google/btree B-tree so "value strictly before time t" answers in
// O(log n) rather than a linear scan over every recorded round.
type History struct {
	tree *btree.BTree
}

// NewHistory returns an empty History.
func NewHistory() *History {
	return &History{tree: btree.New(32)}
}

// Record appends (or overwrites, if the same state was already recorded
// at this exact time) a settled TimedValue.
func (h *History) Record(state space.StateID, tv TimedValue) {
	h.tree.ReplaceOrInsert(historyItem{state: state, time: tv.Time, value: tv})
}

// Before returns the last recorded value for state strictly before
// time t, and whether any such record exists.
func (h *History) Before(state space.StateID, t int) (TimedValue, bool) {
	var found TimedValue
	ok := false
	pivot := historyItem{state: state, time: t - 1}
	h.tree.DescendLessOrEqual(pivot, func(item btree.Item) bool {
		it := item.(historyItem)
		if it.state != state {
			return false
		}
		found = it.value
		ok = true

		return false
	})

	return found, ok
}

// Len returns the number of recorded entries.
func (h *History) Len() int { return h.tree.Len() }
