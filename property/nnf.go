package property

import "github.com/formalcore/tvmc/bv"

// toNNF returns the negation-normal-form tree of n (or of ¬n, when neg is
// true), pushing every negation down to atomics via De Morgan's laws and
// the CTL duality table (¬EX=AX¬, ¬AX=EX¬, ¬EU=AR¬, ¬AU=ER¬, and their
// EF/AF/EG/AG derivatives). The result contains no astNot node: a
// negated atomic is returned as an atomic with its wanted bit flipped.
func toNNF(n *astNode, neg bool) *astNode {
	switch n.op {
	case astAtomic:
		if !neg {
			return n
		}

		return &astNode{op: astAtomic, field: n.field, bit: n.bit, want: flipBit(n.want), hasWant: true}

	case astNot:
		return toNNF(n.l, !neg)

	case astAnd:
		if !neg {
			return &astNode{op: astAnd, l: toNNF(n.l, false), r: toNNF(n.r, false)}
		}

		return &astNode{op: astOr, l: toNNF(n.l, true), r: toNNF(n.r, true)}

	case astOr:
		if !neg {
			return &astNode{op: astOr, l: toNNF(n.l, false), r: toNNF(n.r, false)}
		}

		return &astNode{op: astAnd, l: toNNF(n.l, true), r: toNNF(n.r, true)}

	case astEX:
		if !neg {
			return &astNode{op: astEX, l: toNNF(n.l, false)}
		}

		return &astNode{op: astAX, l: toNNF(n.l, true)}

	case astAX:
		if !neg {
			return &astNode{op: astAX, l: toNNF(n.l, false)}
		}

		return &astNode{op: astEX, l: toNNF(n.l, true)}

	case astEF:
		if !neg {
			return &astNode{op: astEF, l: toNNF(n.l, false)}
		}

		return &astNode{op: astAG, l: toNNF(n.l, true)}

	case astAF:
		if !neg {
			return &astNode{op: astAF, l: toNNF(n.l, false)}
		}

		return &astNode{op: astEG, l: toNNF(n.l, true)}

	case astEG:
		if !neg {
			return &astNode{op: astEG, l: toNNF(n.l, false)}
		}

		return &astNode{op: astAF, l: toNNF(n.l, true)}

	case astAG:
		if !neg {
			return &astNode{op: astAG, l: toNNF(n.l, false)}
		}

		return &astNode{op: astEF, l: toNNF(n.l, true)}

	case astEU:
		if !neg {
			return &astNode{op: astEU, l: toNNF(n.l, false), r: toNNF(n.r, false)}
		}

		return &astNode{op: astAR, l: toNNF(n.l, true), r: toNNF(n.r, true)}

	case astAU:
		if !neg {
			return &astNode{op: astAU, l: toNNF(n.l, false), r: toNNF(n.r, false)}
		}

		return &astNode{op: astER, l: toNNF(n.l, true), r: toNNF(n.r, true)}

	case astER:
		if !neg {
			return &astNode{op: astER, l: toNNF(n.l, false), r: toNNF(n.r, false)}
		}

		return &astNode{op: astAU, l: toNNF(n.l, true), r: toNNF(n.r, true)}

	case astAR:
		if !neg {
			return &astNode{op: astAR, l: toNNF(n.l, false), r: toNNF(n.r, false)}
		}

		return &astNode{op: astEU, l: toNNF(n.l, true), r: toNNF(n.r, true)}
	}

	panic("property: unreachable astOp in toNNF")
}

func flipBit(b bv.Bit) bv.Bit {
	if b == bv.Bit0 {
		return bv.Bit1
	}

	return bv.Bit0
}
