// Package space builds and incrementally expands the abstract state
// space of a system.System under a precision.Store: a directed graph
// with a fixed START node and dynamically allocated state nodes,
// deduplicated by meta-equality, that grows monotonically as precision
// refines (spec.md §4.3).
package space
