package driver

import (
	"errors"
	"fmt"

	"github.com/formalcore/tvmc/checker"
)

// Sentinel errors for the driver package, per spec.md §6's error
// taxonomy.
var (
	// ErrFieldNotFound indicates a culprit named a field absent from the
	// system's declared input shape, so it cannot be refined.
	ErrFieldNotFound = errors.New("driver: culprit field not found in input shape")

	// ErrResourceExhausted indicates a precision mark grew too large to
	// enumerate concretely (space.ErrMarkTooLarge), or the
	// WithMaxRefinements budget was used up, before a verdict was
	// reached.
	ErrResourceExhausted = errors.New("driver: resource exhausted before a verdict was reached")

	// ErrInternal indicates an inconsistency inside the driver: a
	// culprit path names a parent state the space has not allocated.
	// Errors surfaced by the system, space, or checker layers are
	// returned as they are, not wrapped in it.
	ErrInternal = errors.New("driver: internal error")
)

// ErrIncomplete indicates the culprit the checker last extracted has
// already been fully refined (its bit is marked in every relevant step)
// and the verdict is still Unknown: no further refinement is possible.
// It is also returned, with a nil Culprit, when the verdict is Unknown
// and the checker finds no culprit path at all.
type ErrIncomplete struct {
	Culprit *checker.Culprit
}

func (e ErrIncomplete) Error() string {
	return fmt.Sprintf("driver: incomplete, culprit already refined: %+v", e.Culprit)
}
