// Package counter is a reference System for the 4-bit wraparound
// counter scenarios of spec.md §8 (1-3): state x:bv4, init 0, next x+1.
// Every transition is fully concrete, so these scenarios settle without
// any refinement.
package counter

import (
	"github.com/formalcore/tvmc/bv"
	"github.com/formalcore/tvmc/system"
)

// Counter is a 4-bit counter that increments by 1 on every step,
// wrapping from 15 back to 0. It ignores its input entirely.
type Counter struct{}

func shape() system.Shape {
	return system.Shape{Fields: []system.FieldSpec{{Name: "x", Width: 4}}}
}

// Shape implements system.System. The input shape is empty: Counter's
// transitions depend on nothing but its own state.
func (Counter) Shape() (system.Shape, system.Shape) {
	return system.Shape{}, shape()
}

// Init implements system.System: x starts at 0.
func (Counter) Init(system.Input) (system.StateResult, error) {
	return system.StateResult{State: system.NewState(shape()).WithScalar("x", bv.Known(4, 0))}, nil
}

// Next implements system.System: x increments by 1 each step.
func (Counter) Next(state system.State, _ system.Input) (system.StateResult, error) {
	x, err := state.Scalar("x")
	if err != nil {
		return system.StateResult{}, err
	}

	return system.StateResult{State: state.WithScalar("x", bv.Add(x, bv.Known(4, 1)))}, nil
}
