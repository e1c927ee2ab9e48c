package bv_test

import (
	"testing"

	"github.com/formalcore/tvmc/bv"
	"github.com/stretchr/testify/require"
)

// TestAddExactOnKnownOperands checks Add is exact (wrapping) when both
// operands are fully known.
func TestAddExactOnKnownOperands(t *testing.T) {
	a := bv.Known(4, 15)
	b := bv.Known(4, 2)
	sum := bv.Add(a, b)
	word, ok := sum.ConcreteValue()
	require.True(t, ok)
	require.Equal(t, uint64(1), word.Bits) // wraps: 15+2 = 17 mod 16 = 1
}

// TestAddUnknownOperandIsSound checks that Add does not report a fully
// known sum when one operand is fully unknown.
func TestAddUnknownOperandIsSound(t *testing.T) {
	a := bv.Unknown(4)
	b := bv.Known(4, 2)
	sum := bv.Add(a, b)
	require.False(t, sum.IsFullyKnown())
}

// TestUDivByPossiblyZero exercises spec.md §4.1's division contract:
// when zero is a member of γ(divisor), the result is fully unknown and
// Panic must not be B3False.
func TestUDivByPossiblyZero(t *testing.T) {
	q := bv.Known(8, 10)
	d := bv.Unknown(8) // contains zero
	res := bv.UDiv(q, d)
	require.False(t, res.Value.IsFullyKnown())
	require.NotEqual(t, bv.B3False, res.Panic)
}

// TestUDivByKnownNonZero checks the exact path reports no panic.
func TestUDivByKnownNonZero(t *testing.T) {
	q := bv.Known(8, 10)
	d := bv.Known(8, 3)
	res := bv.UDiv(q, d)
	require.Equal(t, bv.B3False, res.Panic)
	word, ok := res.Value.ConcreteValue()
	require.True(t, ok)
	require.Equal(t, uint64(3), word.Bits)
}

// TestUDivByKnownZero checks the always-panics path.
func TestUDivByKnownZero(t *testing.T) {
	q := bv.Known(8, 10)
	d := bv.Known(8, 0)
	res := bv.UDiv(q, d)
	require.Equal(t, bv.B3True, res.Panic)
}

// TestSDivSignExtension checks signed division on two's-complement
// operands (width 4: -8..7).
func TestSDivSignExtension(t *testing.T) {
	// -8 / 2 = -4, as unsigned 4-bit: -8 is 0b1000 (8), -4 is 0b1100 (12).
	a := bv.Known(4, 0b1000)
	b := bv.Known(4, 2)
	res := bv.SDiv(a, b)
	word, ok := res.Value.ConcreteValue()
	require.True(t, ok)
	require.Equal(t, uint64(0b1100), word.Bits)
}

// TestComparisonsKnownOperands checks Ult/Slt on known operands.
func TestComparisonsKnownOperands(t *testing.T) {
	a := bv.Known(4, 3)
	b := bv.Known(4, 5)
	require.Equal(t, bv.B3True, bv.Ult(a, b))
	require.Equal(t, bv.B3False, bv.Ugt(a, b))

	// -1 (0b1111) vs 1: unsigned -1 is large, signed -1 is less than 1.
	neg1 := bv.Known(4, 0b1111)
	one := bv.Known(4, 1)
	require.Equal(t, bv.B3False, bv.Ult(neg1, one))
	require.Equal(t, bv.B3True, bv.Slt(neg1, one))
}

// TestShiftByKnownAmount checks Shl/Lshr/Ashr on known shift amounts.
func TestShiftByKnownAmount(t *testing.T) {
	v := bv.Known(8, 0b00000001)
	shifted := bv.Shl(v, bv.Known(8, 3))
	word, ok := shifted.ConcreteValue()
	require.True(t, ok)
	require.Equal(t, uint64(0b00001000), word.Bits)

	neg := bv.Known(4, 0b1000) // -8
	ashr := bv.Ashr(neg, bv.Known(4, 1))
	word2, ok := ashr.ConcreteValue()
	require.True(t, ok)
	require.Equal(t, uint64(0b1100), word2.Bits) // -4
}

// TestZeroExtendExact checks ZeroExtend is sharp.
func TestZeroExtendExact(t *testing.T) {
	v := bv.Known(4, 0b1010)
	z := bv.ZeroExtend(v, 8)
	require.True(t, z.IsFullyKnown())
	word, _ := z.ConcreteValue()
	require.Equal(t, uint64(0b00001010), word.Bits)
}

// TestSignExtendKnownSign checks SignExtend replicates a known sign bit.
func TestSignExtendKnownSign(t *testing.T) {
	neg := bv.Known(4, 0b1000) // -8 in 4 bits
	s := bv.SignExtend(neg, 8)
	require.True(t, s.IsFullyKnown())
	word, _ := s.ConcreteValue()
	require.Equal(t, uint64(0b11111000), word.Bits)
}

// TestSignExtendUnknownSign checks SignExtend leaves the extra bits
// unknown when the sign bit itself is unknown (sound: either polarity
// remains possible).
func TestSignExtendUnknownSign(t *testing.T) {
	v := bv.Unknown(4)
	s := bv.SignExtend(v, 8)
	require.False(t, s.IsFullyKnown())
	require.Equal(t, uint64(0xF0), s.UnknownMask()&0xF0)
}
