package checker

import (
	"context"

	"github.com/formalcore/tvmc/bv"
	"github.com/formalcore/tvmc/property"
	"github.com/formalcore/tvmc/space"
	"github.com/formalcore/tvmc/system"
)

// Checker evaluates one property.Prop over a space.Space to quiescence,
// one outer time instant per Evaluate call, and can extract a Culprit
// when the root settles to Unknown.
type Checker struct {
	prop property.Prop
	sp   *space.Space
	fm   system.FieldManipulate

	histories []*History // indexed by entry; non-nil only for KindFixedPoint entries
	cache     *LatestCache
	time      int
	cur       [][]bv.Bool3 // cur[entry][stateID], stateID 1-based; index 0 unused
}

// NewChecker returns a Checker for prop over sp, resolving atomics via
// fm.
func NewChecker(prop property.Prop, sp *space.Space, fm system.FieldManipulate) *Checker {
	histories := make([]*History, len(prop.Entries))
	for i, e := range prop.Entries {
		if e.Kind == property.KindFixedPoint {
			histories[i] = NewHistory()
		}
	}

	return &Checker{prop: prop, sp: sp, fm: fm, histories: histories, cache: NewLatestCache()}
}

// ResetCache invalidates the latest-value cache. Call after every
// precision refinement (spec.md §4.5).
func (c *Checker) ResetCache() { c.cache.Reset() }

// Time returns the current logical time instant.
func (c *Checker) Time() int { return c.time }

type walkKey struct {
	entry int
	state space.StateID
}

// Evaluate advances the logical time instant by one and iterates every
// subproperty over every allocated node to quiescence, returning the
// root subproperty's verdict combined over every initial state via
// Kleene OR ("there exists a run from any initial state").
func (c *Checker) Evaluate(ctx context.Context) (bv.Bool3, error) {
	c.time++
	n := c.sp.Len()

	c.cur = make([][]bv.Bool3, len(c.prop.Entries))
	for i := range c.cur {
		c.cur[i] = make([]bv.Bool3, n+1)
	}

	for idx, e := range c.prop.Entries {
		if e.Kind != property.KindFixedPoint {
			continue
		}
		def := bv.B3False
		if e.FPKind == property.Greatest {
			def = bv.B3True
		}
		for sid := 1; sid <= n; sid++ {
			if tv, ok := c.histories[idx].Before(space.StateID(sid), c.time); ok {
				c.cur[idx][sid] = tv.Value
			} else {
				c.cur[idx][sid] = def
			}
		}
	}

	for {
		if err := ctx.Err(); err != nil {
			return bv.B3Unknown, err
		}
		changed := false
		for idx := range c.prop.Entries {
			for sid := 1; sid <= n; sid++ {
				nv, err := c.evalValue(idx, space.StateID(sid))
				if err != nil {
					return bv.B3Unknown, err
				}
				if nv != c.cur[idx][sid] {
					c.cur[idx][sid] = nv
					changed = true
				}
			}
		}
		if !changed {
			break
		}
	}

	for idx, e := range c.prop.Entries {
		if e.Kind != property.KindFixedPoint {
			continue
		}
		for sid := 1; sid <= n; sid++ {
			cv, err := c.checkValueAt(idx, space.StateID(sid))
			if err != nil {
				return bv.B3Unknown, err
			}
			tv := TimedValue{CheckValue: cv, Time: c.time}
			c.histories[idx].Record(space.StateID(sid), tv)
			c.cache.Set(idx, space.StateID(sid), tv)
		}
	}

	verdict := bv.B3False
	for _, succ := range c.sp.StartSuccessors() {
		sid, err := succ.StateID()
		if err != nil {
			continue
		}
		verdict = bv.Or3(verdict, c.cur[c.prop.Root][sid])
	}

	return verdict, nil
}

func (c *Checker) evalValue(idx int, sid space.StateID) (bv.Bool3, error) {
	e := c.prop.Entries[idx]
	switch e.Kind {
	case property.KindConst:
		return bv.FromBool(e.Const), nil

	case property.KindAtomic:
		node := c.sp.Node(sid)

		return system.EvalLiteral(c.fm, node.State, e.Atomic)

	case property.KindFixedVariable:
		return c.cur[e.Var][sid], nil

	case property.KindNegation:
		return bv.Not3(c.cur[e.Child][sid]), nil

	case property.KindBiLogic:
		l, r := c.cur[e.L][sid], c.cur[e.R][sid]
		if e.Op == property.BiAnd {
			return bv.And3(l, r), nil
		}

		return bv.Or3(l, r), nil

	case property.KindNext:
		node := c.sp.Node(sid)
		result := bv.B3True
		for _, succ := range node.Succs {
			ssid, err := succ.StateID()
			if err != nil {
				return bv.B3Unknown, err
			}
			result = bv.And3(result, c.cur[e.Child][ssid])
		}

		return result, nil

	case property.KindFixedPoint:
		return c.cur[e.Body][sid], nil
	}

	return bv.B3Unknown, ErrEntryIndex
}

// checkValueAt recomputes the converged value at (idx, sid) and, for
// KindNext entries, the direct successors whose value equals the
// parent's settled value (spec.md §4.4's "next_states").
func (c *Checker) checkValueAt(idx int, sid space.StateID) (CheckValue, error) {
	v, err := c.evalValue(idx, sid)
	if err != nil {
		return CheckValue{}, err
	}
	cv := CheckValue{Value: v}

	e := c.prop.Entries[idx]
	if e.Kind == property.KindNext {
		node := c.sp.Node(sid)
		for _, succ := range node.Succs {
			ssid, err := succ.StateID()
			if err != nil {
				return CheckValue{}, err
			}
			if c.cur[e.Child][ssid] == v {
				cv.NextStates = append(cv.NextStates, ssid)
			}
		}
	}

	return cv, nil
}

// ExtractCulprit walks the root subproperty down to an atomic literal
// whose Unknown valuation caused the root's Unknown verdict, starting
// from whichever initial state contributed the Unknown. Returns
// ErrCulpritNotFound if every candidate path re-enters an
// already-visited (entry, state) pair before reaching an atomic.
func (c *Checker) ExtractCulprit() (*Culprit, error) {
	for _, succ := range c.sp.StartSuccessors() {
		sid, err := succ.StateID()
		if err != nil {
			continue
		}
		if c.cur[c.prop.Root][sid] != bv.B3Unknown {
			continue
		}
		visited := map[walkKey]bool{}
		cul, err := c.walk(c.prop.Root, sid, []space.StateID{sid}, visited)
		if err == nil {
			return cul, nil
		}
	}

	return nil, ErrCulpritNotFound
}

// ExtractFalsifyingPath walks the root subproperty down to an atomic
// literal that justifies the root having settled to target (B3True or
// B3False), starting from whichever initial state contributed that
// value. Used to populate a Culprit on a definite (non-Unknown) root
// verdict, where ExtractCulprit (which only follows Unknown children)
// finds nothing. Returns ErrCulpritNotFound if every candidate path
// re-enters an already-visited (entry, state) pair before reaching an
// atomic.
func (c *Checker) ExtractFalsifyingPath(target bv.Bool3) (*Culprit, error) {
	for _, succ := range c.sp.StartSuccessors() {
		sid, err := succ.StateID()
		if err != nil {
			continue
		}
		if c.cur[c.prop.Root][sid] != target {
			continue
		}
		visited := map[walkKey]bool{}
		cul, err := c.walkValue(c.prop.Root, sid, target, []space.StateID{sid}, visited)
		if err == nil {
			return cul, nil
		}
	}

	return nil, ErrCulpritNotFound
}

// walkValue is walk generalized from "follow whichever child is
// Unknown" to "follow whichever child justifies target", so it can
// also produce a witness path for a definite True or False verdict.
func (c *Checker) walkValue(idx int, sid space.StateID, target bv.Bool3, path []space.StateID, visited map[walkKey]bool) (*Culprit, error) {
	key := walkKey{idx, sid}
	if visited[key] {
		return nil, ErrCulpritNotFound
	}
	visited[key] = true

	e := c.prop.Entries[idx]
	switch e.Kind {
	case property.KindConst:
		if bv.FromBool(e.Const) != target {
			return nil, ErrCulpritNotFound
		}
		cp := make([]space.StateID, len(path))
		copy(cp, path)

		return &Culprit{Path: cp}, nil

	case property.KindAtomic:
		if c.cur[idx][sid] != target {
			return nil, ErrCulpritNotFound
		}
		cp := make([]space.StateID, len(path))
		copy(cp, path)

		return &Culprit{Path: cp, Field: e.Atomic.Field, Bit: e.Atomic.Bit}, nil

	case property.KindFixedVariable:
		return c.walkValue(e.Var, sid, target, path, visited)

	case property.KindNegation:
		return c.walkValue(e.Child, sid, bv.Not3(target), path, visited)

	case property.KindFixedPoint:
		return c.walkValue(e.Body, sid, target, path, visited)

	case property.KindBiLogic:
		dominant := bv.B3False
		if e.Op == property.BiOr {
			dominant = bv.B3True
		}
		if target == dominant {
			if c.cur[e.L][sid] == dominant {
				if res, err := c.walkValue(e.L, sid, target, path, visited); err == nil {
					return res, nil
				}
			}
			if c.cur[e.R][sid] == dominant {
				return c.walkValue(e.R, sid, target, path, visited)
			}

			return nil, ErrCulpritNotFound
		}
		if res, err := c.walkValue(e.L, sid, target, path, visited); err == nil {
			return res, nil
		}

		return c.walkValue(e.R, sid, target, path, visited)

	case property.KindNext:
		node := c.sp.Node(sid)
		for _, succ := range node.Succs {
			ssid, err := succ.StateID()
			if err != nil {
				continue
			}
			if c.cur[e.Child][ssid] != target {
				continue
			}
			next := append(append([]space.StateID{}, path...), ssid)
			if res, err := c.walkValue(e.Child, ssid, target, next, visited); err == nil {
				return res, nil
			}
		}

		return nil, ErrCulpritNotFound
	}

	return nil, ErrCulpritNotFound
}

func (c *Checker) walk(idx int, sid space.StateID, path []space.StateID, visited map[walkKey]bool) (*Culprit, error) {
	key := walkKey{idx, sid}
	if visited[key] {
		return nil, ErrCulpritNotFound
	}
	visited[key] = true

	e := c.prop.Entries[idx]
	switch e.Kind {
	case property.KindAtomic:
		cp := make([]space.StateID, len(path))
		copy(cp, path)

		return &Culprit{Path: cp, Field: e.Atomic.Field, Bit: e.Atomic.Bit}, nil

	case property.KindFixedVariable:
		return c.walk(e.Var, sid, path, visited)

	case property.KindNegation:
		return c.walk(e.Child, sid, path, visited)

	case property.KindFixedPoint:
		return c.walk(e.Body, sid, path, visited)

	case property.KindBiLogic:
		if c.cur[e.L][sid] == bv.B3Unknown {
			if res, err := c.walk(e.L, sid, path, visited); err == nil {
				return res, nil
			}
		}
		if c.cur[e.R][sid] == bv.B3Unknown {
			return c.walk(e.R, sid, path, visited)
		}

		return nil, ErrCulpritNotFound

	case property.KindNext:
		node := c.sp.Node(sid)
		for _, succ := range node.Succs {
			ssid, err := succ.StateID()
			if err != nil {
				continue
			}
			if c.cur[e.Child][ssid] != bv.B3Unknown {
				continue
			}
			next := append(append([]space.StateID{}, path...), ssid)
			if res, err := c.walk(e.Child, ssid, next, visited); err == nil {
				return res, nil
			}
		}

		return nil, ErrCulpritNotFound
	}

	return nil, ErrCulpritNotFound
}
