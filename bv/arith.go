package bv

// This file implements the arithmetic, shift, comparison, and extension
// forward operators named in spec.md §4.1. Bitwise operators (bitwise.go)
// are required to be exact; arithmetic operators here are only required
// to be sound. Add and Sub run a Kleene ripple-carry adder bit by bit, so
// low result bits can be known while higher ones are not. The other
// operators compute the exact concrete result when every input is fully
// known (cheap and exact in the common case a refined system eventually
// reaches), otherwise return the fully unknown value of the correct
// width (always sound, since Unknown's concretization is the entire word
// space); the extensions and out-of-range shift amounts are exact cases
// on their own.

// signExtend64 sign-extends the low w bits of bits into a full int64.
func signExtend64(bits uint64, w Width) int64 {
	shift := 64 - uint(w)

	return int64(bits<<shift) >> shift
}

func binaryKnown(a, b Value) (x, y uint64, ok bool) {
	wa, oka := a.ConcreteValue()
	wb, okb := b.ConcreteValue()
	if !oka || !okb {
		return 0, 0, false
	}

	return wa.Bits, wb.Bits, true
}

// bitAt extracts bit i of v as a Bool3.
func bitAt(v Value, i Width) Bool3 {
	z := (v.Zeros>>i)&1 == 1
	o := (v.Ones>>i)&1 == 1
	switch {
	case z && o:
		return B3Unknown
	case o:
		return B3True
	default:
		return B3False
	}
}

// valueFromBits reassembles a Value of the given width from per-bit
// Bool3 values, index 0 = LSB.
func valueFromBits(w Width, bits []Bool3) Value {
	out := Value{Width: w}
	for i, b := range bits {
		switch b {
		case B3True:
			out.Ones |= uint64(1) << uint(i)
		case B3False:
			out.Zeros |= uint64(1) << uint(i)
		default:
			out.Zeros |= uint64(1) << uint(i)
			out.Ones |= uint64(1) << uint(i)
		}
	}

	return out
}

// rippleAdd computes a+b+carryIn bit by bit in Kleene three-valued logic:
// sum_i = a_i XOR b_i XOR carry_i, carry_(i+1) = majority(a_i,b_i,carry_i).
// Because carry only ever flows from low bit positions to high ones, a
// run of known input bits from bit 0 up to bit k yields a known sum bit
// at k even when higher bits of either operand are unknown: this is what
// lets BackwardArith's bounded "demand bits 0..k" mark satisfy the
// marking-soundness property for Add/Sub, unlike the coarser
// all-or-nothing operators below.
func rippleAdd(a, b Value, carryIn Bool3) (sum Value, carryOut Bool3) {
	bits := make([]Bool3, a.Width)
	carry := carryIn
	for i := Width(0); i < a.Width; i++ {
		ai, bi := bitAt(a, i), bitAt(b, i)
		bits[i] = Xor3(Xor3(ai, bi), carry)
		carry = Majority3(ai, bi, carry)
	}

	return valueFromBits(a.Width, bits), carry
}

// Add computes three-valued addition via a Kleene ripple-carry adder.
func Add(a, b Value) Value {
	requireSameWidth(a, b)
	sum, _ := rippleAdd(a, b, B3False)

	return sum
}

// Sub computes three-valued subtraction as a+(^b)+1 (two's complement),
// via the same ripple-carry adder as Add.
func Sub(a, b Value) Value {
	requireSameWidth(a, b)
	sum, _ := rippleAdd(a, Not(b), B3True)

	return sum
}

// Mul computes three-valued multiplication, sound.
func Mul(a, b Value) Value {
	requireSameWidth(a, b)
	if x, y, ok := binaryKnown(a, b); ok {
		return Known(a.Width, x*y)
	}

	return Unknown(a.Width)
}

// DivRemResult is the result of a division-family operator: the three
// valued result plus whether the operation could panic (divide by a
// value whose concretization contains zero).
type DivRemResult struct {
	Value Value
	Panic Bool3
}

func dividePanicCheck(divisor Value) (wouldAlwaysPanicIfZero bool, mightBeZero bool) {
	mightBeZero = divisor.CouldBeZero()
	allKnownZero := divisor.IsFullyKnown() && divisor.Ones == 0

	return allKnownZero, mightBeZero
}

// UDiv computes unsigned division, sound; Panic reflects whether 0 is a
// member of γ(b).
func UDiv(a, b Value) DivRemResult {
	requireSameWidth(a, b)
	alwaysZero, mightBeZero := dividePanicCheck(b)
	if alwaysZero {
		return DivRemResult{Value: Unknown(a.Width), Panic: B3True}
	}
	if mightBeZero {
		return DivRemResult{Value: Unknown(a.Width), Panic: B3Unknown}
	}
	if x, y, ok := binaryKnown(a, b); ok {
		return DivRemResult{Value: Known(a.Width, x/y), Panic: B3False}
	}

	return DivRemResult{Value: Unknown(a.Width), Panic: B3False}
}

// URem computes unsigned remainder, sound; Panic as UDiv.
func URem(a, b Value) DivRemResult {
	requireSameWidth(a, b)
	alwaysZero, mightBeZero := dividePanicCheck(b)
	if alwaysZero {
		return DivRemResult{Value: Unknown(a.Width), Panic: B3True}
	}
	if mightBeZero {
		return DivRemResult{Value: Unknown(a.Width), Panic: B3Unknown}
	}
	if x, y, ok := binaryKnown(a, b); ok {
		return DivRemResult{Value: Known(a.Width, x%y), Panic: B3False}
	}

	return DivRemResult{Value: Unknown(a.Width), Panic: B3False}
}

// SDiv computes signed (two's-complement) division, sound; Panic as UDiv.
func SDiv(a, b Value) DivRemResult {
	requireSameWidth(a, b)
	alwaysZero, mightBeZero := dividePanicCheck(b)
	if alwaysZero {
		return DivRemResult{Value: Unknown(a.Width), Panic: B3True}
	}
	if mightBeZero {
		return DivRemResult{Value: Unknown(a.Width), Panic: B3Unknown}
	}
	if x, y, ok := binaryKnown(a, b); ok {
		sx, sy := signExtend64(x, a.Width), signExtend64(y, b.Width)

		return DivRemResult{Value: Known(a.Width, uint64(sx/sy)), Panic: B3False}
	}

	return DivRemResult{Value: Unknown(a.Width), Panic: B3False}
}

// SRem computes signed remainder, sound; Panic as UDiv.
func SRem(a, b Value) DivRemResult {
	requireSameWidth(a, b)
	alwaysZero, mightBeZero := dividePanicCheck(b)
	if alwaysZero {
		return DivRemResult{Value: Unknown(a.Width), Panic: B3True}
	}
	if mightBeZero {
		return DivRemResult{Value: Unknown(a.Width), Panic: B3Unknown}
	}
	if x, y, ok := binaryKnown(a, b); ok {
		sx, sy := signExtend64(x, a.Width), signExtend64(y, b.Width)

		return DivRemResult{Value: Known(a.Width, uint64(sx%sy)), Panic: B3False}
	}

	return DivRemResult{Value: Unknown(a.Width), Panic: B3False}
}

// Shl computes a logical left shift by a possibly-abstract amount, sound.
func Shl(a, amount Value) Value {
	if w, ok := amount.ConcreteValue(); ok {
		if w.Bits >= uint64(a.Width) {
			return Known(a.Width, 0)
		}
		if v, ok := a.ConcreteValue(); ok {
			return Known(a.Width, v.Bits<<w.Bits)
		}
	}

	return Unknown(a.Width)
}

// Lshr computes a logical right shift by a possibly-abstract amount, sound.
func Lshr(a, amount Value) Value {
	if w, ok := amount.ConcreteValue(); ok {
		if w.Bits >= uint64(a.Width) {
			return Known(a.Width, 0)
		}
		if v, ok := a.ConcreteValue(); ok {
			return Known(a.Width, v.Bits>>w.Bits)
		}
	}

	return Unknown(a.Width)
}

// Ashr computes an arithmetic (sign-extending) right shift by a possibly
// abstract amount, sound.
func Ashr(a, amount Value) Value {
	if w, ok := amount.ConcreteValue(); ok {
		if v, ok := a.ConcreteValue(); ok {
			shiftAmt := w.Bits
			if shiftAmt > uint64(a.Width)-1 {
				shiftAmt = uint64(a.Width) - 1
			}
			sv := signExtend64(v.Bits, a.Width)

			return Known(a.Width, uint64(sv>>shiftAmt))
		}
	}

	return Unknown(a.Width)
}

// Comparisons return Bool3, sound per Eq's definition applied to ordering.

// Ult is unsigned less-than.
func Ult(a, b Value) Bool3 {
	requireSameWidth(a, b)
	if x, y, ok := binaryKnown(a, b); ok {
		return FromBool(x < y)
	}

	return B3Unknown
}

// Ule is unsigned less-than-or-equal.
func Ule(a, b Value) Bool3 {
	requireSameWidth(a, b)
	if x, y, ok := binaryKnown(a, b); ok {
		return FromBool(x <= y)
	}

	return B3Unknown
}

// Ugt is unsigned greater-than.
func Ugt(a, b Value) Bool3 { return Ult(b, a) }

// Uge is unsigned greater-than-or-equal.
func Uge(a, b Value) Bool3 { return Ule(b, a) }

// Slt is signed less-than (two's-complement, sign bit per spec.md §4.1).
func Slt(a, b Value) Bool3 {
	requireSameWidth(a, b)
	if x, y, ok := binaryKnown(a, b); ok {
		return FromBool(signExtend64(x, a.Width) < signExtend64(y, b.Width))
	}

	return B3Unknown
}

// Sle is signed less-than-or-equal.
func Sle(a, b Value) Bool3 {
	requireSameWidth(a, b)
	if x, y, ok := binaryKnown(a, b); ok {
		return FromBool(signExtend64(x, a.Width) <= signExtend64(y, b.Width))
	}

	return B3Unknown
}

// Sgt is signed greater-than.
func Sgt(a, b Value) Bool3 { return Slt(b, a) }

// Sge is signed greater-than-or-equal.
func Sge(a, b Value) Bool3 { return Sle(b, a) }

// ZeroExtend widens a to width w>=a.Width by extending with known-zero
// bits. Exact (sharp).
func ZeroExtend(a Value, w Width) Value {
	if w < a.Width {
		panic(ErrInvalidWidth)
	}
	extra := mask(w) &^ mask(a.Width)

	return Value{Width: w, Zeros: (a.Zeros & mask(a.Width)) | extra, Ones: a.Ones & mask(a.Width)}
}

// SignExtend widens a to width w>=a.Width by replicating its sign bit.
// Exact when the sign bit of a is known; otherwise the extra bits are
// left unknown (sound, since either polarity is then possible).
func SignExtend(a Value, w Width) Value {
	if w < a.Width {
		panic(ErrInvalidWidth)
	}
	if w == a.Width {
		return a
	}
	signBit := a.Width - 1
	signKnownOne := (a.Ones>>signBit)&1 == 1 && (a.Zeros>>signBit)&1 == 0
	signKnownZero := (a.Zeros>>signBit)&1 == 1 && (a.Ones>>signBit)&1 == 0
	extra := mask(w) &^ mask(a.Width)

	out := Value{Width: w, Zeros: a.Zeros & mask(a.Width), Ones: a.Ones & mask(a.Width)}
	switch {
	case signKnownOne:
		out.Ones |= extra
	case signKnownZero:
		out.Zeros |= extra
	default:
		out.Zeros |= extra
		out.Ones |= extra
	}

	return out
}
