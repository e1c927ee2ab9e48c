package system_test

import (
	"testing"

	"github.com/formalcore/tvmc/bv"
	"github.com/formalcore/tvmc/system"
	"github.com/stretchr/testify/require"
)

func counterShape() system.Shape {
	return system.Shape{Fields: []system.FieldSpec{{Name: "x", Width: 4}}}
}

// TestNewStateAllUnknown checks NewState initializes every field to
// Unknown.
func TestNewStateAllUnknown(t *testing.T) {
	s := system.NewState(counterShape())
	v, err := s.Scalar("x")
	require.NoError(t, err)
	require.False(t, v.IsFullyKnown())
}

// TestMetaEqualDistinguishesKnowledge checks MetaEqual rejects states
// whose fields differ only in how much is known, even if their
// concretizations overlap.
func TestMetaEqualDistinguishesKnowledge(t *testing.T) {
	a := system.NewState(counterShape()).WithScalar("x", bv.Known(4, 3))
	b := system.NewState(counterShape()).WithScalar("x", bv.Known(4, 3))
	require.True(t, a.MetaEqual(b))

	c := system.NewState(counterShape()).WithScalar("x", bv.Unknown(4))
	require.False(t, a.MetaEqual(c))
}

// TestMetaKeyStableAcrossCloneOrder checks MetaKey is independent of Go
// map iteration order (rebuilt states compare equal keys).
func TestMetaKeyStableAcrossCloneOrder(t *testing.T) {
	a := system.NewState(counterShape()).WithScalar("x", bv.Known(4, 7))
	b := a.Clone()
	require.Equal(t, a.MetaKey(), b.MetaKey())
}

// TestFieldNotFound checks Scalar errors on an unknown field.
func TestFieldNotFound(t *testing.T) {
	s := system.NewState(counterShape())
	_, err := s.Scalar("y")
	require.ErrorIs(t, err, system.ErrFieldNotFound)
}

// TestEvalLiteral checks three-valued literal evaluation.
func TestEvalLiteral(t *testing.T) {
	fm := system.DefaultFieldManipulate{}
	shape := counterShape()
	lit, err := fm.Literal(shape, "x", 0, bv.Bit1)
	require.NoError(t, err)

	known1 := system.NewState(shape).WithScalar("x", bv.Known(4, 1))
	val, err := system.EvalLiteral(fm, known1, lit)
	require.NoError(t, err)
	require.Equal(t, bv.B3True, val)

	known2 := system.NewState(shape).WithScalar("x", bv.Known(4, 2))
	val2, err := system.EvalLiteral(fm, known2, lit)
	require.NoError(t, err)
	require.Equal(t, bv.B3False, val2)

	unknown := system.NewState(shape) // x unknown
	val3, err := system.EvalLiteral(fm, unknown, lit)
	require.NoError(t, err)
	require.Equal(t, bv.B3Unknown, val3)
}
