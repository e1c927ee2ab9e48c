package driver_test

import (
	"context"
	"testing"

	"github.com/formalcore/tvmc/bv"
	"github.com/formalcore/tvmc/driver"
	"github.com/formalcore/tvmc/system"
	"github.com/stretchr/testify/require"
)

// concreteFlag is a trivial system whose single state bit is fixed at
// init time, regardless of input: x=1 always, never changes.
type concreteFlag struct{}

func (concreteFlag) Shape() (system.Shape, system.Shape) {
	sh := system.Shape{Fields: []system.FieldSpec{{Name: "x", Width: 1}}}

	return sh, sh
}

func (concreteFlag) Init(system.Input) (system.StateResult, error) {
	return system.StateResult{State: system.NewState(mustShape()).WithScalar("x", bv.Known(1, 1))}, nil
}

func (concreteFlag) Next(state system.State, _ system.Input) (system.StateResult, error) {
	return system.StateResult{State: state}, nil
}

func mustShape() system.Shape {
	return system.Shape{Fields: []system.FieldSpec{{Name: "x", Width: 1}}}
}

func TestVerifyResolvesTrueWithoutRefinement(t *testing.T) {
	s := driver.NewSession(concreteFlag{}, system.DefaultFieldManipulate{})
	res := s.Verify(context.Background(), "x[0]==1")
	require.Equal(t, driver.VerdictTrue, res.Result)
	require.Equal(t, 0, res.Stats.Refinements)
}

func TestVerifyResolvesFalseWithoutRefinement(t *testing.T) {
	s := driver.NewSession(concreteFlag{}, system.DefaultFieldManipulate{})
	res := s.Verify(context.Background(), "x[0]==0")
	require.Equal(t, driver.VerdictFalse, res.Result)
}

// passthroughInit leaves x unknown until the initial-input mark gains
// its bit through refinement: Init copies the input's x field directly
// into the initial state, and Next is an absorbing self-loop.
type passthroughInit struct{}

func (passthroughInit) Shape() (system.Shape, system.Shape) {
	sh := system.Shape{Fields: []system.FieldSpec{{Name: "x", Width: 1}}}

	return sh, sh
}

func (passthroughInit) Init(input system.Input) (system.StateResult, error) {
	v, err := input.Scalar("x")
	if err != nil {
		return system.StateResult{}, err
	}

	return system.StateResult{State: system.NewState(mustShape()).WithScalar("x", v)}, nil
}

func (passthroughInit) Next(state system.State, _ system.Input) (system.StateResult, error) {
	return system.StateResult{State: state}, nil
}

func TestVerifyRefinesInitMarkToResolveUnknown(t *testing.T) {
	s := driver.NewSession(passthroughInit{}, system.DefaultFieldManipulate{})
	res := s.Verify(context.Background(), "x[0]==1")
	require.Equal(t, driver.VerdictTrue, res.Result)
	require.Equal(t, 1, res.Stats.Refinements)
}

// twoBitPassthroughInit requires two independent initial-mark bits
// (x[0] and x[1]) to be refined before "x[0]==1 && x[1]==1" can settle,
// exercising the refinement budget.
type twoBitPassthroughInit struct{}

func twoBitShape() system.Shape {
	return system.Shape{Fields: []system.FieldSpec{{Name: "x", Width: 2}}}
}

func (twoBitPassthroughInit) Shape() (system.Shape, system.Shape) {
	sh := twoBitShape()

	return sh, sh
}

func (twoBitPassthroughInit) Init(input system.Input) (system.StateResult, error) {
	v, err := input.Scalar("x")
	if err != nil {
		return system.StateResult{}, err
	}

	return system.StateResult{State: system.NewState(twoBitShape()).WithScalar("x", v)}, nil
}

func (twoBitPassthroughInit) Next(state system.State, _ system.Input) (system.StateResult, error) {
	return system.StateResult{State: state}, nil
}

func TestVerifyMaxRefinementsExhausted(t *testing.T) {
	s := driver.NewSession(twoBitPassthroughInit{}, system.DefaultFieldManipulate{}, driver.WithMaxRefinements(1))
	res := s.Verify(context.Background(), "x[0]==1 && x[1]==1")
	require.Equal(t, driver.VerdictUnknown, res.Result)
	require.Equal(t, 1, res.Stats.Refinements)
	require.ErrorIs(t, res.Err, driver.ErrResourceExhausted)
}

func TestParseErrorSurfacesAsVerdictError(t *testing.T) {
	s := driver.NewSession(concreteFlag{}, system.DefaultFieldManipulate{})
	res := s.Verify(context.Background(), "x[0] &&")
	require.Equal(t, driver.VerdictError, res.Result)
	require.Error(t, res.Err)
}
