// Package system defines the external contract the verification core
// consumes: a system's Input/State value shapes, its init/next
// transition functions, and the FieldManipulate capability used to turn
// property atomics into concrete field/bit lookups.
//
// Everything a concrete system needs to supply is gathered behind the
// System interface; the core never depends on how a system was produced
// (hand-written, or translated from a BTOR2 description — that
// translation is explicitly out of scope, see spec.md §1). The
// systems/ subpackages of this module provide a few small, runnable
// reference systems for the scenarios of spec.md §8: a counter
// (scenarios 1-3), a divider (5) and an array-backed system (6).
package system
