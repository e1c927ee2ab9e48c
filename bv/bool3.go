package bv

// Bool3 is a Kleene strong three-valued boolean: exactly one of True,
// False, or Unknown. It is the GUI-less, (zero,one)-free replacement for
// the split "check value" shapes noted in spec.md §9 — the model
// checker's propagation lattice uses only this flavor internally.
type Bool3 uint8

const (
	B3False Bool3 = iota
	B3True
	B3Unknown
)

func (b Bool3) String() string {
	switch b {
	case B3True:
		return "true"
	case B3False:
		return "false"
	default:
		return "unknown"
	}
}

// Not3 is Kleene negation.
func Not3(a Bool3) Bool3 {
	switch a {
	case B3True:
		return B3False
	case B3False:
		return B3True
	default:
		return B3Unknown
	}
}

// And3 is Kleene strong conjunction: false dominates, then unknown.
func And3(a, b Bool3) Bool3 {
	if a == B3False || b == B3False {
		return B3False
	}
	if a == B3Unknown || b == B3Unknown {
		return B3Unknown
	}

	return B3True
}

// Or3 is Kleene strong disjunction: true dominates, then unknown.
func Or3(a, b Bool3) Bool3 {
	if a == B3True || b == B3True {
		return B3True
	}
	if a == B3Unknown || b == B3Unknown {
		return B3Unknown
	}

	return B3False
}

// Xor3 is Kleene strong exclusive-or, expressed compositionally from
// And3/Or3/Not3 so it inherits their dominance rules rather than risking
// an inconsistent ad hoc case split.
func Xor3(a, b Bool3) Bool3 {
	return Or3(And3(a, Not3(b)), And3(Not3(a), b))
}

// Majority3 is Kleene strong majority-of-three, used by the ripple-carry
// adder in arith.go to compute a carry-out from two addend bits and a
// carry-in.
func Majority3(a, b, c Bool3) Bool3 {
	return Or3(And3(a, b), Or3(And3(b, c), And3(a, c)))
}

// FromBool lifts a concrete bool to Bool3.
func FromBool(b bool) Bool3 {
	if b {
		return B3True
	}

	return B3False
}

// Eq computes the three-valued equality of two same-width Values per
// spec.md §4.1: can-be-true iff every bit could agree, can-be-false iff
// some bit can differ.
func Eq(a, b Value) Bool3 {
	requireSameWidth(a, b)
	m := mask(a.Width)

	canAgree := ((a.Zeros & b.Zeros) | (a.Ones & b.Ones)) & m
	canDiffer := ((a.Zeros & b.Ones) | (a.Ones & b.Zeros)) & m

	trueOK := canAgree == m
	falseOK := canDiffer != 0

	switch {
	case trueOK && !falseOK:
		return B3True
	case !trueOK && falseOK:
		return B3False
	default:
		return B3Unknown
	}
}
