package precision

import (
	"sort"
	"sync"

	"github.com/formalcore/tvmc/bv"
)

// InputMark is a value shaped like the system's input: one bv.Mark per
// bit-vector field, keyed by field name. A field absent from an
// InputMark is equivalent to a CleanMark of that field's width.
type InputMark map[string]bv.Mark

// Clone returns a deep copy of m.
func (m InputMark) Clone() InputMark {
	out := make(InputMark, len(m))
	for k, v := range m {
		out[k] = v
	}

	return out
}

// Join returns the field-wise least upper bound of m and o. Fields
// present in only one operand pass through unchanged.
func (m InputMark) Join(o InputMark) InputMark {
	out := m.Clone()
	for k, v := range o {
		if cur, ok := out[k]; ok {
			out[k] = cur.Join(v)
		} else {
			out[k] = v
		}
	}

	return out
}

// IsClean reports whether every field of m is unmarked.
func (m InputMark) IsClean() bool {
	for _, v := range m {
		if !v.IsClean() {
			return false
		}
	}

	return true
}

// FieldNames returns the sorted field names of m, for deterministic
// iteration in callers that need it (e.g. the refinement driver
// reporting which fields grew).
func (m InputMark) FieldNames() []string {
	names := make([]string, 0, len(m))
	for k := range m {
		names = append(names, k)
	}
	sort.Strings(names)

	return names
}

// Option configures a Store at construction time.
type Option func(*Store)

// WithInitMark seeds the initial-input mark (default: all-clean, i.e.
// absent fields).
func WithInitMark(m InputMark) Option {
	return func(s *Store) { s.initMark = m.Clone() }
}

// Store is the precision store of spec.md §4.2: one initial-input Mark
// and a sparse step_index -> Mark map, both monotonically growing.
//
// Store is not safe for concurrent use; see package doc.
type Store struct {
	mu        sync.Mutex
	initMark  InputMark
	stepMarks map[int]InputMark
}

// NewStore returns a Store with every mark all-clean.
func NewStore(opts ...Option) *Store {
	s := &Store{
		initMark:  InputMark{},
		stepMarks: map[int]InputMark{},
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// InitMark returns a copy of the current initial-input mark.
func (s *Store) InitMark() InputMark {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.initMark.Clone()
}

// StepMark returns a copy of the current mark for the given step index,
// or an all-clean InputMark if the step has never been refined.
func (s *Store) StepMark(step int) InputMark {
	s.mu.Lock()
	defer s.mu.Unlock()
	if m, ok := s.stepMarks[step]; ok {
		return m.Clone()
	}

	return InputMark{}
}

// RefineInit joins delta into the initial-input mark and reports whether
// anything changed.
func (s *Store) RefineInit(delta InputMark) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	joined := s.initMark.Join(delta)
	changed := !markEqual(joined, s.initMark)
	s.initMark = joined

	return changed
}

// RefineStep joins delta into the mark for the given step index and
// reports whether anything changed. step must be >= 0.
func (s *Store) RefineStep(step int, delta InputMark) (bool, error) {
	if step < 0 {
		return false, ErrNegativeStep
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cur, ok := s.stepMarks[step]
	if !ok {
		cur = InputMark{}
	}
	joined := cur.Join(delta)
	changed := !markEqual(joined, cur)
	s.stepMarks[step] = joined

	return changed, nil
}

// StepCount returns how many distinct step indices have ever been
// refined (steps refined to an all-clean delta still count, matching
// spec.md's "sparse map" description literally rather than compacting
// no-op refinements away).
func (s *Store) StepCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.stepMarks)
}

func markEqual(a, b InputMark) bool {
	if len(a) != len(b) {
		return false
	}
	for k, va := range a {
		vb, ok := b[k]
		if !ok || va.Bits != vb.Bits || va.Width != vb.Width {
			return false
		}
	}

	return true
}
