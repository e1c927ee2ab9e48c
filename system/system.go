package system

import "github.com/formalcore/tvmc/bv"

// StateResult is the outcome of applying Init or Next: the resulting
// State plus a width-1 three-valued Panic flag (⊥ = well-defined, ⊤ =
// must panic, ? = unknown), per spec.md §6.
type StateResult struct {
	State State
	Panic bv.Value
}

// Input is an alias for State: inputs and states share the same
// shaped-record representation (spec.md §6).
type Input = State

// System is the external contract a concrete transition system supplies
// to the verification core. Init/Next must be pure functions of their
// arguments: the core relies on being able to call them repeatedly
// (once per enumerated concrete input) while holding all other
// unmarked input bits unknown.
type System interface {
	// Shape returns the declared field layout of inputs and states.
	Shape() (inputShape, stateShape Shape)

	// Init computes the initial StateResult for a concrete or partially
	// unknown input.
	Init(input Input) (StateResult, error)

	// Next computes the successor StateResult of state under input.
	Next(state State, input Input) (StateResult, error)
}

// Literal is an atomic proposition over one bit of one field: "field[bit]
// == want".
type Literal struct {
	Field string
	Bit   bv.Width
	Want  bv.Bit
}

// FieldManipulate is the capability property evaluation uses to resolve
// a Literal against a concrete State, and to validate a Literal at parse
// time against a Shape.
type FieldManipulate interface {
	// Field returns the scalar value of the named field in s.
	Field(s State, name string) (bv.Value, error)

	// Literal validates that name/bit is addressable in shape and
	// returns the corresponding Literal.
	Literal(shape Shape, name string, bit bv.Width, want bv.Bit) (Literal, error)
}

// DefaultFieldManipulate is the straightforward FieldManipulate backed
// directly by Shape/State: it imposes no additional system-specific
// interpretation.
type DefaultFieldManipulate struct{}

// Field implements FieldManipulate.
func (DefaultFieldManipulate) Field(s State, name string) (bv.Value, error) {
	return s.Scalar(name)
}

// Literal implements FieldManipulate.
func (DefaultFieldManipulate) Literal(shape Shape, name string, bit bv.Width, want bv.Bit) (Literal, error) {
	spec, ok := shape.Find(name)
	if !ok {
		return Literal{}, ErrFieldNotFound
	}
	if spec.IsArray {
		return Literal{}, ErrNotArrayField
	}
	if bit >= spec.Width {
		return Literal{}, ErrBitOutOfRange
	}

	return Literal{Field: name, Bit: bit, Want: want}, nil
}

// EvalLiteral evaluates a Literal against a state using fm, returning the
// three-valued truth of "field[bit] == want".
func EvalLiteral(fm FieldManipulate, s State, lit Literal) (bv.Bool3, error) {
	val, err := fm.Field(s, lit.Field)
	if err != nil {
		return bv.B3Unknown, err
	}
	z := (val.Zeros>>lit.Bit)&1 == 1
	o := (val.Ones>>lit.Bit)&1 == 1
	bitIsOne := o && !z
	bitIsZero := z && !o

	switch {
	case lit.Want == bv.Bit1 && bitIsOne, lit.Want == bv.Bit0 && bitIsZero:
		return bv.B3True, nil
	case lit.Want == bv.Bit1 && bitIsZero, lit.Want == bv.Bit0 && bitIsOne:
		return bv.B3False, nil
	default:
		return bv.B3Unknown, nil
	}
}
