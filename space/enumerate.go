package space

import (
	"github.com/formalcore/tvmc/bv"
	"github.com/formalcore/tvmc/precision"
	"github.com/formalcore/tvmc/system"
)

// maxEnumeratedMarkBits caps the total number of marked input bits
// enumerated concretely in one Expand call, mirroring bv.Array's
// enumeration cap for the same reason: 2^k concrete assignments become
// unusable well before k reaches this bound.
const maxEnumeratedMarkBits = 20

// markedBit is one marked input bit; index is its position in the
// enumeration's assignment integer (bit i of assignment selects this
// markedBit's value).
type markedBit struct {
	field string
	bit   bv.Width
	index int
}

// enumerateInputs returns every concrete-or-partially-unknown input
// consistent with mark: every marked bit ranges over {0,1}, every
// unmarked bit stays Unknown.
func enumerateInputs(shape system.Shape, mark precision.InputMark) ([]system.Input, error) {
	var marked []markedBit
	for _, f := range shape.Fields {
		m, ok := mark[f.Name]
		if !ok {
			continue
		}
		for i := bv.Width(0); i < f.Width; i++ {
			if m.Bit(i) {
				marked = append(marked, markedBit{field: f.Name, bit: i, index: len(marked)})
			}
		}
	}
	if len(marked) > maxEnumeratedMarkBits {
		return nil, ErrMarkTooLarge
	}

	byField := make(map[string][]markedBit, len(marked))
	for _, mb := range marked {
		byField[mb.field] = append(byField[mb.field], mb)
	}

	base := system.NewState(shape)
	total := 1 << len(marked)
	out := make([]system.Input, 0, total)
	for assignment := 0; assignment < total; assignment++ {
		out = append(out, applyAssignment(base, shape, byField, assignment))
	}

	return out, nil
}

func applyAssignment(base system.State, shape system.Shape, byField map[string][]markedBit, assignment int) system.State {
	out := base
	for _, f := range shape.Fields {
		bitsForField, ok := byField[f.Name]
		if !ok {
			continue
		}
		val := bv.Unknown(f.Width)
		for _, mb := range bitsForField {
			one := (assignment>>mb.index)&1 == 1
			if one {
				val.Ones |= 1 << mb.bit
				val.Zeros &^= 1 << mb.bit
			} else {
				val.Zeros |= 1 << mb.bit
				val.Ones &^= 1 << mb.bit
			}
		}
		if f.IsArray {
			out = out.WithArray(f.Name, bv.NewArray(f.IndexWidth, f.Width, val))
		} else {
			out = out.WithScalar(f.Name, val)
		}
	}

	return out
}
