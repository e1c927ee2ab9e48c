// Package checker evaluates a flattened property.Prop over a space.Space
// using three-valued Kleene CTL semantics, and extracts a culprit —
// (state path, field, bit) — when the root settles to Unknown
// (spec.md §4.4).
//
// Each subproperty (property.Entry) is evaluated at every allocated
// state node. Least/greatest fixed-point entries are seeded to
// False/True respectively and the whole entry vector is iterated to
// quiescence at every outer time instant; settled values are recorded
// in a History (package-level, btree-backed) so the next refinement
// round can read "the value strictly before this round" where needed,
// and a LatestCache remembers the most recent TimedValue per
// (entry, state), invalidated wholesale on every precision refinement.
package checker
