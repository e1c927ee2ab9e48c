package space_test

import (
	"context"
	"testing"

	"github.com/formalcore/tvmc/bv"
	"github.com/formalcore/tvmc/precision"
	"github.com/formalcore/tvmc/space"
	"github.com/formalcore/tvmc/system"
	"github.com/stretchr/testify/require"
)

// cyclicCounter is a minimal system.System: a 4-bit counter that always
// increments by 1 modulo 16, ignoring its input entirely. It exercises
// Space.Expand's cycle-closing dedup behavior.
type cyclicCounter struct{}

func (cyclicCounter) Shape() (system.Shape, system.Shape) {
	in := system.Shape{Fields: []system.FieldSpec{{Name: "in", Width: 1}}}
	st := system.Shape{Fields: []system.FieldSpec{{Name: "x", Width: 4}}}

	return in, st
}

func (c cyclicCounter) Init(system.Input) (system.StateResult, error) {
	_, stShape := c.Shape()

	return system.StateResult{State: system.NewState(stShape).WithScalar("x", bv.Known(4, 0))}, nil
}

func (c cyclicCounter) Next(s system.State, _ system.Input) (system.StateResult, error) {
	val, err := s.Scalar("x")
	if err != nil {
		return system.StateResult{}, err
	}
	w, _ := val.ConcreteValue()
	_, stShape := c.Shape()
	next := (w.Bits + 1) & 0xF

	return system.StateResult{State: system.NewState(stShape).WithScalar("x", bv.Known(4, next))}, nil
}

func TestExpandClosesCycle(t *testing.T) {
	sp := space.New()
	store := precision.NewStore()
	err := sp.Expand(context.Background(), cyclicCounter{}, store)
	require.NoError(t, err)
	require.Equal(t, 16, sp.Len(), "counter cycles through 16 distinct abstract states")

	starts := sp.StartSuccessors()
	require.Len(t, starts, 1)

	zeroID, err := starts[0].StateID()
	require.NoError(t, err)
	zeroNode := sp.Node(zeroID)
	require.NotNil(t, zeroNode)
	v, _ := zeroNode.State.Scalar("x")
	require.True(t, v.IsFullyKnown())
}

func TestExpandDeterministicUnderFixedPrecision(t *testing.T) {
	sp := space.New()
	store := precision.NewStore()
	err := sp.Expand(context.Background(), cyclicCounter{}, store)
	require.NoError(t, err)

	before := sp.Len()
	err = sp.Expand(context.Background(), cyclicCounter{}, store)
	require.NoError(t, err)
	require.Equal(t, before, sp.Len(), "re-expanding under unchanged precision allocates no new nodes")
}

func TestReopenAfterRefineReopensOnlyAffectedDepths(t *testing.T) {
	sp := space.New()
	store := precision.NewStore()
	err := sp.Expand(context.Background(), cyclicCounter{}, store)
	require.NoError(t, err)

	sp.ReopenAfterRefine(false, map[int]bool{2: true})
	for i := 1; i <= sp.Len(); i++ {
		n := sp.Node(space.StateID(i))
		if n.Depth == 2 {
			require.False(t, n.Closed)
		}
	}
}

func TestNodeIDStateIDFailsForStart(t *testing.T) {
	var start space.NodeID
	require.True(t, start.IsStart())
	_, err := start.StateID()
	require.ErrorIs(t, err, space.ErrIsStart)
}
