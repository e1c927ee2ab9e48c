package checker_test

import (
	"context"
	"testing"

	"github.com/formalcore/tvmc/bv"
	"github.com/formalcore/tvmc/checker"
	"github.com/formalcore/tvmc/precision"
	"github.com/formalcore/tvmc/property"
	"github.com/formalcore/tvmc/space"
	"github.com/formalcore/tvmc/system"
	"github.com/stretchr/testify/require"
)

// toggler is a concrete 1-bit system that flips its single state bit on
// every step, regardless of input: x=0 -> x=1 -> x=0 -> ...
type toggler struct{}

func (toggler) Shape() (system.Shape, system.Shape) {
	return system.Shape{}, system.Shape{Fields: []system.FieldSpec{{Name: "x", Width: 1}}}
}

func (t toggler) Init(system.Input) (system.StateResult, error) {
	_, st := t.Shape()

	return system.StateResult{State: system.NewState(st).WithScalar("x", bv.Known(1, 0))}, nil
}

func (t toggler) Next(s system.State, _ system.Input) (system.StateResult, error) {
	val, err := s.Scalar("x")
	if err != nil {
		return system.StateResult{}, err
	}
	w, _ := val.ConcreteValue()
	_, st := t.Shape()

	return system.StateResult{State: system.NewState(st).WithScalar("x", bv.Known(1, 1-w.Bits))}, nil
}

func buildToggler(t *testing.T) *space.Space {
	sp := space.New()
	err := sp.Expand(context.Background(), toggler{}, precision.NewStore())
	require.NoError(t, err)

	return sp
}

func evalProp(t *testing.T, sp *space.Space, raw string) bv.Bool3 {
	_, st := toggler{}.Shape()
	p, err := property.Parse(raw, st, system.DefaultFieldManipulate{})
	require.NoError(t, err)

	c := checker.NewChecker(p, sp, system.DefaultFieldManipulate{})
	v, err := c.Evaluate(context.Background())
	require.NoError(t, err)

	return v
}

func TestEFReachesOne(t *testing.T) {
	sp := buildToggler(t)
	require.Equal(t, bv.B3True, evalProp(t, sp, "EF x[0]==1"))
}

func TestAGOneIsFalse(t *testing.T) {
	sp := buildToggler(t)
	require.Equal(t, bv.B3False, evalProp(t, sp, "AG x[0]==1"))
}

func TestNegationOfAtomic(t *testing.T) {
	sp := buildToggler(t)
	require.Equal(t, bv.B3True, evalProp(t, sp, "!(x[0]==1)"))
}

func TestAndOrCombinators(t *testing.T) {
	sp := buildToggler(t)
	require.Equal(t, bv.B3True, evalProp(t, sp, "x[0]==0 || x[0]==1"))
	require.Equal(t, bv.B3False, evalProp(t, sp, "x[0]==0 && x[0]==1"))
}

func TestExtractCulpritOnUnknownSystem(t *testing.T) {
	sp := space.New()
	// A system whose initial state's bit depends on an unmarked input
	// bit: left fully unknown, x[0]==1 is Unknown at the only initial
	// state, so EF x[0]==1 settles Unknown and a culprit must point at
	// field x bit 0.
	err := sp.Expand(context.Background(), unknownInitSystem{}, precision.NewStore())
	require.NoError(t, err)

	_, st := unknownInitSystem{}.Shape()
	p, err := property.Parse("EF x[0]==1", st, system.DefaultFieldManipulate{})
	require.NoError(t, err)

	c := checker.NewChecker(p, sp, system.DefaultFieldManipulate{})
	v, err := c.Evaluate(context.Background())
	require.NoError(t, err)
	require.Equal(t, bv.B3Unknown, v)

	culprit, err := c.ExtractCulprit()
	require.NoError(t, err)
	require.Equal(t, "x", culprit.Field)
	require.Equal(t, bv.Width(0), culprit.Bit)
}

type unknownInitSystem struct{}

func (unknownInitSystem) Shape() (system.Shape, system.Shape) {
	return system.Shape{}, system.Shape{Fields: []system.FieldSpec{{Name: "x", Width: 1}}}
}

func (s unknownInitSystem) Init(system.Input) (system.StateResult, error) {
	_, st := s.Shape()

	return system.StateResult{State: system.NewState(st)}, nil // x left Unknown
}

func (s unknownInitSystem) Next(state system.State, _ system.Input) (system.StateResult, error) {
	return system.StateResult{State: state}, nil
}
