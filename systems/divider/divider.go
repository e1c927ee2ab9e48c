// Package divider is a reference System for the division-by-zero
// scenario of spec.md §8 (5): q and d are read fresh from input every
// step, and the next state's q is q/d. Field widths are bv2 rather than
// the spec prose's bv8 so the accompanying test's refinement sequence
// stays small enough to hand-verify (see DESIGN.md).
package divider

import (
	"github.com/formalcore/tvmc/bv"
	"github.com/formalcore/tvmc/system"
)

// Divider recomputes q := q/d from fresh input every step, and exposes a
// possible-panic flag as a state field so it can be inspected like any
// other bit-vector.
type Divider struct{}

func shape() system.Shape {
	return system.Shape{Fields: []system.FieldSpec{
		{Name: "q", Width: 2},
		{Name: "d", Width: 2},
		{Name: "panic", Width: 1},
	}}
}

// Shape implements system.System. The input shape mirrors the q/d state
// fields directly, so refinement can mark them by name (driver's
// direct-pass-through convention).
func (Divider) Shape() (system.Shape, system.Shape) {
	return system.Shape{Fields: []system.FieldSpec{
		{Name: "q", Width: 2},
		{Name: "d", Width: 2},
	}}, shape()
}

// Init implements system.System: q, d pass straight through from input,
// with no division performed yet.
func (Divider) Init(input system.Input) (system.StateResult, error) {
	q, err := input.Scalar("q")
	if err != nil {
		return system.StateResult{}, err
	}
	d, err := input.Scalar("d")
	if err != nil {
		return system.StateResult{}, err
	}

	st := system.NewState(shape()).WithScalar("q", q).WithScalar("d", d).WithScalar("panic", bv.Known(1, 0))

	return system.StateResult{State: st}, nil
}

// Next implements system.System: q and d are reread from input (the
// prior state's q/d are discarded), then q := q/d.
func (Divider) Next(state system.State, input system.Input) (system.StateResult, error) {
	q, err := input.Scalar("q")
	if err != nil {
		return system.StateResult{}, err
	}
	d, err := input.Scalar("d")
	if err != nil {
		return system.StateResult{}, err
	}

	res := bv.UDiv(q, d)
	st := state.WithScalar("q", res.Value).WithScalar("d", d).WithScalar("panic", bool3Value(res.Panic))

	return system.StateResult{State: st, Panic: bool3Value(res.Panic)}, nil
}

func bool3Value(b bv.Bool3) bv.Value {
	switch b {
	case bv.B3True:
		return bv.Known(1, 1)
	case bv.B3False:
		return bv.Known(1, 0)
	default:
		return bv.Unknown(1)
	}
}
