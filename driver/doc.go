// Package driver runs the outer refinement loop described in spec.md
// §4.4/§5: parse a property, expand the state space, evaluate it, and
// on an Unknown verdict extract a culprit, mark the corresponding input
// bit in the precision store, re-expand and re-evaluate — until the
// verdict settles, the culprit has already been fully refined
// (Incomplete), or the configured refinement budget is exhausted.
package driver
