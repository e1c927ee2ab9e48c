package checker

import (
	"github.com/formalcore/tvmc/bv"
	"github.com/formalcore/tvmc/space"
)

// CheckValue is a subproperty's labelling at one state: its current
// three-valued valuation, plus, for Next subproperties, the direct
// successor states whose current valuation equals it. Evaluate records
// CheckValues only for fixed-point subproperties, so NextStates is empty
// in recorded values; the culprit walks read successor valuations
// directly rather than this field.
type CheckValue struct {
	Value      bv.Bool3
	NextStates []space.StateID
}

// TimedValue is a CheckValue stamped with the logical time instant at
// which it was last (re)computed.
type TimedValue struct {
	CheckValue
	Time int
}

// Culprit is the outcome of walking an Unknown root labelling down to an
// atomic literal: the state path from START, and the literal's field and
// bit.
type Culprit struct {
	Path  []space.StateID // START implicit; Path[0] is the first non-START state
	Field string
	Bit   bv.Width
}
