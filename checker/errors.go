package checker

import "errors"

// Sentinel errors for the checker package.
var (
	// ErrCulpritNotFound indicates the culprit walk could not locate an
	// atomic literal before exhausting every unvisited contributing
	// child (the walk re-entered a node/entry pair it had already
	// visited, i.e. the Unknown is only reachable via a cycle).
	ErrCulpritNotFound = errors.New("checker: no acyclic culprit path found")

	// ErrEntryIndex indicates a malformed Prop referenced an entry
	// index outside its own Entries slice.
	ErrEntryIndex = errors.New("checker: entry index out of range")
)
