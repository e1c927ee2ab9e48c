// Package precision implements the precision store: the sole persistent
// record of refinement work across iterations of the abstraction
// refinement loop.
//
// A Store holds one initial-input Mark (governing System.Init) and a
// sparse map from step index to step-input Mark (governing System.Next
// at that step). Both start all-clean and only ever grow: RefineInit and
// RefineStep join a delta into the stored mark and report whether
// anything actually changed, so callers (the refinement driver) can
// detect "nothing left to refine" and escalate to Incomplete.
//
// A Store is not safe for concurrent use; it is owned exclusively by the
// session that wraps it, per the single-threaded cooperative model of
// the verification core.
package precision
