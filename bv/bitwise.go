package bv

// Not computes the three-valued bitwise complement. Exact (sharp).
func Not(a Value) Value {
	return Value{Width: a.Width, Zeros: a.Ones, Ones: a.Zeros}
}

// And computes the three-valued bitwise AND. Exact (sharp).
func And(a, b Value) Value {
	requireSameWidth(a, b)

	return Value{
		Width: a.Width,
		Zeros: a.Zeros | b.Zeros,
		Ones:  a.Ones & b.Ones,
	}
}

// Or computes the three-valued bitwise OR. Exact (sharp).
func Or(a, b Value) Value {
	requireSameWidth(a, b)

	return Value{
		Width: a.Width,
		Zeros: a.Zeros & b.Zeros,
		Ones:  a.Ones | b.Ones,
	}
}

// Xor computes the three-valued bitwise XOR. Exact (sharp).
func Xor(a, b Value) Value {
	requireSameWidth(a, b)

	return Value{
		Width: a.Width,
		Zeros: (a.Zeros & b.Zeros) | (a.Ones & b.Ones),
		Ones:  (a.Zeros & b.Ones) | (a.Ones & b.Zeros),
	}
}
