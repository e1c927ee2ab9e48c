package property

import "github.com/formalcore/tvmc/system"

type flattener struct {
	entries []Entry
	shape   system.Shape
	fm      system.FieldManipulate
}

func (f *flattener) push(e Entry) int {
	f.entries = append(f.entries, e)

	return len(f.entries) - 1
}

// negate appends a Negation entry wrapping child.
func (f *flattener) negate(child int) int {
	return f.push(Entry{Kind: KindNegation, Child: child})
}

// next appends a Next (EX) entry wrapping child.
func (f *flattener) next(child int) int {
	return f.push(Entry{Kind: KindNext, Child: child})
}

// ax appends the ¬EX¬ encoding of AX over child.
func (f *flattener) ax(child int) int {
	return f.negate(f.next(f.negate(child)))
}

func (f *flattener) and(l, r int) int {
	return f.push(Entry{Kind: KindBiLogic, Op: BiAnd, L: l, R: r})
}

func (f *flattener) or(l, r int) int {
	return f.push(Entry{Kind: KindBiLogic, Op: BiOr, L: l, R: r})
}

// reserve appends a placeholder entry for a FixedPoint, to be completed
// once its body (which self-references by index) is built.
func (f *flattener) reserve() int {
	return f.push(Entry{})
}

func (f *flattener) complete(idx, body int, kind FixpointKind) {
	f.entries[idx] = Entry{Kind: KindFixedPoint, Body: body, FPKind: kind}
}

func (f *flattener) flatten(n *astNode) (int, error) {
	switch n.op {
	case astAtomic:
		lit, err := f.fm.Literal(f.shape, n.field, n.bit, n.want)
		if err != nil {
			return 0, err
		}

		return f.push(Entry{Kind: KindAtomic, Atomic: lit}), nil

	case astAnd:
		l, err := f.flatten(n.l)
		if err != nil {
			return 0, err
		}
		r, err := f.flatten(n.r)
		if err != nil {
			return 0, err
		}

		return f.and(l, r), nil

	case astOr:
		l, err := f.flatten(n.l)
		if err != nil {
			return 0, err
		}
		r, err := f.flatten(n.r)
		if err != nil {
			return 0, err
		}

		return f.or(l, r), nil

	case astEX:
		c, err := f.flatten(n.l)
		if err != nil {
			return 0, err
		}

		return f.next(c), nil

	case astAX:
		c, err := f.flatten(n.l)
		if err != nil {
			return 0, err
		}

		return f.ax(c), nil

	case astEF:
		return f.fixpoint(n.l, Least, func(p, v int) int { return f.or(p, f.next(v)) })

	case astAF:
		return f.fixpoint(n.l, Least, func(p, v int) int { return f.or(p, f.ax(v)) })

	case astEG:
		return f.fixpoint(n.l, Greatest, func(p, v int) int { return f.and(p, f.next(v)) })

	case astAG:
		return f.fixpoint(n.l, Greatest, func(p, v int) int { return f.and(p, f.ax(v)) })

	case astEU:
		return f.fixpoint2(n.l, n.r, Least, func(p, q, v int) int { return f.or(q, f.and(p, f.next(v))) })

	case astAU:
		return f.fixpoint2(n.l, n.r, Least, func(p, q, v int) int { return f.or(q, f.and(p, f.ax(v))) })

	case astER:
		return f.fixpoint2(n.l, n.r, Greatest, func(p, q, v int) int { return f.and(q, f.or(p, f.next(v))) })

	case astAR:
		return f.fixpoint2(n.l, n.r, Greatest, func(p, q, v int) int { return f.and(q, f.or(p, f.ax(v))) })
	}

	panic("property: unreachable astOp in flatten")
}

// fixpoint builds a unary fixed point μ/νZ. combine(p, Z) where p is the
// flattened form of operand and Z is the FixedVariable bound to the
// reserved FixedPoint entry.
func (f *flattener) fixpoint(operand *astNode, kind FixpointKind, combine func(p, v int) int) (int, error) {
	p, err := f.flatten(operand)
	if err != nil {
		return 0, err
	}

	fpIdx := f.reserve()
	varIdx := f.push(Entry{Kind: KindFixedVariable, Var: fpIdx})
	body := combine(p, varIdx)
	f.complete(fpIdx, body, kind)

	return fpIdx, nil
}

// fixpoint2 is fixpoint for the binary U/R operators.
func (f *flattener) fixpoint2(lOperand, rOperand *astNode, kind FixpointKind, combine func(p, q, v int) int) (int, error) {
	p, err := f.flatten(lOperand)
	if err != nil {
		return 0, err
	}
	q, err := f.flatten(rOperand)
	if err != nil {
		return 0, err
	}

	fpIdx := f.reserve()
	varIdx := f.push(Entry{Kind: KindFixedVariable, Var: fpIdx})
	body := combine(p, q, varIdx)
	f.complete(fpIdx, body, kind)

	return fpIdx, nil
}
