// Package arraysys is a reference System for the array write-then-read
// scenario of spec.md §8 (6): an array is written at a fixed index,
// then immediately read back at that same index. The write is performed
// once (the first transition out of the initial state); thereafter the
// system holds its result, so the property only needs to settle at that
// one transition rather than be reproved at every depth (see
// DESIGN.md). Both the written value and the index are fixed known
// constants: Array.Write is only a strong (index-replacing) update when
// its index is a singleton concretely known value (bv/array.go); a
// write at an unmarked, fully-Unknown index is a weak update that joins
// the value into every override starting from an Unknown Default,
// which recovers Unknown on readback rather than the written value.
// Keeping the index concrete is what lets the round trip resolve to
// True with zero refinements, matching the scenario's literal
// "Expected: True" (see DESIGN.md for the stale-successor edge case a
// fixed value alone does not sidestep).
package arraysys

import (
	"github.com/formalcore/tvmc/bv"
	"github.com/formalcore/tvmc/system"
)

const (
	indexWidth = 4
	elemWidth  = 2

	// writeIndex is the fixed, fully-known index the system writes to
	// and reads back from on its one transition.
	writeIndex = 5

	// writtenValue is the fixed, fully-known value the system writes on
	// its one transition.
	writtenValue = 2
)

// ArraySys writes a fixed known value at a fixed known index into a
// 16-element array, reads it back at that same index, and records
// whether the two agree.
type ArraySys struct{}

func shape() system.Shape {
	return system.Shape{Fields: []system.FieldSpec{
		{Name: "done", Width: 1},
		{Name: "a", Width: elemWidth, IsArray: true, IndexWidth: indexWidth},
		{Name: "written", Width: elemWidth},
		{Name: "readback", Width: elemWidth},
		{Name: "eq", Width: 1},
	}}
}

// Shape implements system.System. There is no input: the write's index
// and value are both package constants (see package doc).
func (ArraySys) Shape() (system.Shape, system.Shape) {
	return system.Shape{}, shape()
}

// Init implements system.System: a fresh, all-unknown array and no
// write performed yet.
func (ArraySys) Init(system.Input) (system.StateResult, error) {
	st := system.NewState(shape()).
		WithScalar("done", bv.Known(1, 0)).
		WithArray("a", bv.NewArray(indexWidth, elemWidth, bv.Unknown(elemWidth))).
		WithScalar("written", bv.Unknown(elemWidth)).
		WithScalar("readback", bv.Unknown(elemWidth)).
		WithScalar("eq", bv.Unknown(1))

	return system.StateResult{State: st}, nil
}

// Next implements system.System: on the first call it performs the
// write-then-read and sets done; every call after that self-loops.
func (ArraySys) Next(state system.State, _ system.Input) (system.StateResult, error) {
	done, err := state.Scalar("done")
	if err != nil {
		return system.StateResult{}, err
	}
	if w, ok := done.ConcreteValue(); ok && w.Bits == 1 {
		return system.StateResult{State: state}, nil
	}

	a, err := state.ArrayField("a")
	if err != nil {
		return system.StateResult{}, err
	}
	idx := bv.Known(indexWidth, writeIndex)
	val := bv.Known(elemWidth, writtenValue)

	a2, _ := a.Write(idx, val)
	readback := a2.Read(idx)

	st := state.
		WithScalar("done", bv.Known(1, 1)).
		WithArray("a", a2).
		WithScalar("written", val).
		WithScalar("readback", readback).
		WithScalar("eq", bool3Value(bv.Eq(val, readback)))

	return system.StateResult{State: st}, nil
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
