package driver

import (
	"context"
	"errors"
	"time"

	"github.com/formalcore/tvmc/bv"
	"github.com/formalcore/tvmc/checker"
	"github.com/formalcore/tvmc/precision"
	"github.com/formalcore/tvmc/property"
	"github.com/formalcore/tvmc/space"
	"github.com/formalcore/tvmc/system"
)

// Verdict is the outcome category of a Verify call.
type Verdict int

const (
	VerdictTrue Verdict = iota
	VerdictFalse
	VerdictUnknown
	VerdictCancelled
	VerdictError
)

// Stats is the resource accounting reported alongside every
// VerifyResult.
type Stats struct {
	States      int
	Refinements int
	WallTime    time.Duration
}

// VerifyResult is the outcome of a Session.Verify call.
type VerifyResult struct {
	Result  Verdict
	Culprit *checker.Culprit
	Err     error
	Stats   Stats
}

// Session owns one state space, one precision store, and the system
// under check. It is not safe for concurrent Verify calls: its space,
// precision store, and checker caches are exclusively owned by the call
// in flight (spec.md §5).
type Session struct {
	sys  system.System
	fm   system.FieldManipulate
	opts options
}

// NewSession returns a Session over sys, resolving property literals
// through fm.
func NewSession(sys system.System, fm system.FieldManipulate, opts ...Option) *Session {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	return &Session{sys: sys, fm: fm, opts: o}
}

// Verify parses raw as a CTL property and runs the refinement loop to a
// settled verdict, Incomplete, a resource limit, or ctx cancellation.
func (s *Session) Verify(ctx context.Context, raw string) VerifyResult {
	start := time.Now()
	inputShape, stateShape := s.sys.Shape()

	prop, err := property.Parse(raw, stateShape, s.fm)
	if err != nil {
		return VerifyResult{Result: VerdictError, Err: err}
	}

	sp := space.New()
	store := precision.NewStore()
	chk := checker.NewChecker(prop, sp, s.fm)

	refinements := 0
	for {
		if err := ctx.Err(); err != nil {
			return VerifyResult{Result: VerdictCancelled, Err: err, Stats: s.stats(sp, refinements, start)}
		}

		if err := sp.Expand(ctx, s.sys, store); err != nil {
			return s.fail(err, sp, refinements, start)
		}

		verdict, err := chk.Evaluate(ctx)
		if err != nil {
			return s.fail(err, sp, refinements, start)
		}

		switch verdict {
		case bv.B3True:
			return VerifyResult{Result: VerdictTrue, Stats: s.stats(sp, refinements, start)}
		case bv.B3False:
			// A definite False is reported with a witness path when
			// one can be extracted; extraction failure here just
			// means the result is reported without one.
			falseCulprit, _ := chk.ExtractFalsifyingPath(bv.B3False)

			return VerifyResult{Result: VerdictFalse, Culprit: falseCulprit, Stats: s.stats(sp, refinements, start)}
		}

		culprit, err := chk.ExtractCulprit()
		if err != nil {
			return VerifyResult{Result: VerdictUnknown, Err: ErrIncomplete{}, Stats: s.stats(sp, refinements, start)}
		}

		if s.opts.maxRefinements > 0 && refinements >= s.opts.maxRefinements {
			return VerifyResult{
				Result:  VerdictUnknown,
				Culprit: culprit,
				Err:     ErrResourceExhausted,
				Stats:   s.stats(sp, refinements, start),
			}
		}

		changed, reopenErr := s.refine(sp, store, inputShape, culprit)
		if reopenErr != nil {
			return VerifyResult{Result: VerdictError, Culprit: culprit, Err: reopenErr, Stats: s.stats(sp, refinements, start)}
		}
		if !changed {
			return VerifyResult{
				Result:  VerdictUnknown,
				Culprit: culprit,
				Err:     ErrIncomplete{Culprit: culprit},
				Stats:   s.stats(sp, refinements, start),
			}
		}

		chk.ResetCache()
		refinements++
	}
}

// refine marks culprit's field/bit in the initial-input mark (if the
// culprit's path has length 1, i.e. the atomic state is itself an
// initial state) or in the step-input mark for the step that produced
// the culprit's state, and reopens the affected part of the space.
//
// The culprit names a state field; this Session marks the
// identically-named, identically-positioned bit of the input shape,
// which requires systems to declare input shapes that mirror the state
// bits they directly influence (see DESIGN.md).
func (s *Session) refine(sp *space.Space, store *precision.Store, inputShape system.Shape, culprit *checker.Culprit) (bool, error) {
	spec, ok := inputShape.Find(culprit.Field)
	if !ok {
		return false, ErrFieldNotFound
	}

	delta := precision.InputMark{culprit.Field: bv.CleanMark(spec.Width).WithBit(culprit.Bit)}

	if len(culprit.Path) == 1 {
		changed := store.RefineInit(delta)
		if changed {
			sp.ReopenAfterRefine(true, nil)
		}

		return changed, nil
	}

	parentID := culprit.Path[len(culprit.Path)-2]
	parent := sp.Node(parentID)
	if parent == nil {
		return false, ErrInternal
	}

	changed, err := store.RefineStep(parent.Depth, delta)
	if err != nil {
		return false, err
	}
	if changed {
		sp.ReopenAfterRefine(false, map[int]bool{parent.Depth: true})
	}

	return changed, nil
}

func (s *Session) stats(sp *space.Space, refinements int, start time.Time) Stats {
	return Stats{States: sp.Len(), Refinements: refinements, WallTime: time.Since(start)}
}

func (s *Session) fail(err error, sp *space.Space, refinements int, start time.Time) VerifyResult {
	if errors.Is(err, space.ErrMarkTooLarge) {
		return VerifyResult{Result: VerdictError, Err: ErrResourceExhausted, Stats: s.stats(sp, refinements, start)}
	}

	return VerifyResult{Result: VerdictError, Err: err, Stats: s.stats(sp, refinements, start)}
}
