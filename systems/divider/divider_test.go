package divider_test

import (
	"context"
	"testing"

	"github.com/formalcore/tvmc/driver"
	"github.com/formalcore/tvmc/system"
	"github.com/formalcore/tvmc/systems/divider"
	"github.com/stretchr/testify/require"
)

// spec.md §8 scenario 5: division by zero panic. d==0 is reachable (q
// and d are unconstrained input), so "d is never 0" is refutable: the
// driver must refine d's bits until a concrete d=0 branch is
// enumerated. The culprit names "d" directly (an input-mirrored field),
// which is what this implementation's refinement can act on; see
// DESIGN.md for why the property is phrased over d rather than the
// derived panic flag.
func TestDividerReachesDivideByZero(t *testing.T) {
	s := driver.NewSession(divider.Divider{}, system.DefaultFieldManipulate{}, driver.WithMaxRefinements(16))
	res := s.Verify(context.Background(), "AG !(d[0]==0 && d[1]==0)")
	require.Equal(t, driver.VerdictFalse, res.Result)
}
