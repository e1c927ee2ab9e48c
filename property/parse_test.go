package property_test

import (
	"testing"

	"github.com/formalcore/tvmc/bv"
	"github.com/formalcore/tvmc/property"
	"github.com/formalcore/tvmc/system"
	"github.com/stretchr/testify/require"
)

func shape() system.Shape {
	return system.Shape{Fields: []system.FieldSpec{{Name: "x", Width: 4}}}
}

func TestParseAtomicDefaultsToBitOne(t *testing.T) {
	p, err := property.Parse("x[0]", shape(), system.DefaultFieldManipulate{})
	require.NoError(t, err)
	root := p.Entries[p.Root]
	require.Equal(t, property.KindAtomic, root.Kind)
	require.Equal(t, bv.Bit1, root.Atomic.Want)
}

func TestParseAtomicExplicitWant(t *testing.T) {
	p, err := property.Parse("x[2]==0", shape(), system.DefaultFieldManipulate{})
	require.NoError(t, err)
	root := p.Entries[p.Root]
	require.Equal(t, property.KindAtomic, root.Kind)
	require.Equal(t, bv.Bit0, root.Atomic.Want)
	require.Equal(t, bv.Width(2), root.Atomic.Bit)
}

func TestParseNegationPushedToAtomic(t *testing.T) {
	p, err := property.Parse("!x[0]", shape(), system.DefaultFieldManipulate{})
	require.NoError(t, err)
	root := p.Entries[p.Root]
	require.Equal(t, property.KindAtomic, root.Kind)
	require.Equal(t, bv.Bit0, root.Atomic.Want)
}

func TestParseDoubleNegationCancels(t *testing.T) {
	p, err := property.Parse("!!x[0]", shape(), system.DefaultFieldManipulate{})
	require.NoError(t, err)
	root := p.Entries[p.Root]
	require.Equal(t, property.KindAtomic, root.Kind)
	require.Equal(t, bv.Bit1, root.Atomic.Want)
}

func TestParseAndOrPrecedence(t *testing.T) {
	p, err := property.Parse("x[0] && x[1] || x[2]", shape(), system.DefaultFieldManipulate{})
	require.NoError(t, err)
	root := p.Entries[p.Root]
	require.Equal(t, property.KindBiLogic, root.Kind)
	require.Equal(t, property.BiOr, root.Op)
	left := p.Entries[root.L]
	require.Equal(t, property.KindBiLogic, left.Kind)
	require.Equal(t, property.BiAnd, left.Op)
}

func TestParseEFBuildsLeastFixedPoint(t *testing.T) {
	p, err := property.Parse("EF x[0]", shape(), system.DefaultFieldManipulate{})
	require.NoError(t, err)
	root := p.Entries[p.Root]
	require.Equal(t, property.KindFixedPoint, root.Kind)
	require.Equal(t, property.Least, root.FPKind)

	body := p.Entries[root.Body]
	require.Equal(t, property.KindBiLogic, body.Kind)
	require.Equal(t, property.BiOr, body.Op)
}

func TestParseAGBuildsGreatestFixedPoint(t *testing.T) {
	p, err := property.Parse("AG x[0]", shape(), system.DefaultFieldManipulate{})
	require.NoError(t, err)
	root := p.Entries[p.Root]
	require.Equal(t, property.KindFixedPoint, root.Kind)
	require.Equal(t, property.Greatest, root.FPKind)
}

func TestParseNegationOfAXBecomesNext(t *testing.T) {
	p, err := property.Parse("!(AX x[0])", shape(), system.DefaultFieldManipulate{})
	require.NoError(t, err)
	root := p.Entries[p.Root]
	require.Equal(t, property.KindNext, root.Kind)
	child := p.Entries[root.Child]
	require.Equal(t, property.KindAtomic, child.Kind)
	require.Equal(t, bv.Bit0, child.Atomic.Want)
}

func TestParseUntilBuildsLeastFixedPoint(t *testing.T) {
	p, err := property.Parse("E[x[0] U x[1]]", shape(), system.DefaultFieldManipulate{})
	require.NoError(t, err)
	root := p.Entries[p.Root]
	require.Equal(t, property.KindFixedPoint, root.Kind)
	require.Equal(t, property.Least, root.FPKind)
}

func TestParseReleaseBuildsGreatestFixedPoint(t *testing.T) {
	p, err := property.Parse("A[x[0] R x[1]]", shape(), system.DefaultFieldManipulate{})
	require.NoError(t, err)
	root := p.Entries[p.Root]
	require.Equal(t, property.KindFixedPoint, root.Kind)
	require.Equal(t, property.Greatest, root.FPKind)
}

func TestParseNotLexable(t *testing.T) {
	_, err := property.Parse("x[0] # x[1]", shape(), system.DefaultFieldManipulate{})
	var lexErr property.ErrNotLexable
	require.ErrorAs(t, err, &lexErr)
}

func TestParseNotParseable(t *testing.T) {
	_, err := property.Parse("x[0] &&", shape(), system.DefaultFieldManipulate{})
	var parseErr property.ErrNotParseable
	require.ErrorAs(t, err, &parseErr)
}

func TestParseUnknownFieldPropagatesError(t *testing.T) {
	_, err := property.Parse("y[0]", shape(), system.DefaultFieldManipulate{})
	require.ErrorIs(t, err, system.ErrFieldNotFound)
}

func TestParseParenthesesOverridePrecedence(t *testing.T) {
	p, err := property.Parse("x[0] && (x[1] || x[2])", shape(), system.DefaultFieldManipulate{})
	require.NoError(t, err)
	root := p.Entries[p.Root]
	require.Equal(t, property.BiAnd, root.Op)
	right := p.Entries[root.R]
	require.Equal(t, property.BiOr, right.Op)
}
