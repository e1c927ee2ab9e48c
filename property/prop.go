package property

import "github.com/formalcore/tvmc/system"

// EntryKind tags the shape of one flattened Entry.
type EntryKind int

const (
	KindConst EntryKind = iota
	KindAtomic
	KindFixedVariable
	KindNegation
	KindBiLogic
	KindNext
	KindFixedPoint
)

// BiOp is the binary connective of a BiLogic entry.
type BiOp int

const (
	BiAnd BiOp = iota
	BiOr
)

// FixpointKind distinguishes least (safety-incompatible, reachability)
// fixed points from greatest (invariance) ones.
type FixpointKind int

const (
	Least FixpointKind = iota
	Greatest
)

// Entry is one node of a flattened Prop. Every CTL temporal operator is
// re-expressed, at parse time, as a least or greatest fixed point over
// the single EX-flavored Next operator (spec.md §4.4): AX is encoded as
// ¬EX¬ via two Negation entries wrapping a Next.
type Entry struct {
	Kind EntryKind

	Const  bool            // KindConst
	Atomic system.Literal  // KindAtomic
	Var    int             // KindFixedVariable: index of the enclosing FixedPoint entry
	Child  int             // KindNegation, KindNext: operand index
	Op     BiOp            // KindBiLogic
	L, R   int             // KindBiLogic: operand indices
	Body   int             // KindFixedPoint: body index (may reference Var == this entry's own index)
	FPKind FixpointKind    // KindFixedPoint
}

// Prop is a parsed, flattened CTL formula: an entry vector plus the
// index of its root.
type Prop struct {
	Entries []Entry
	Root    int
}

// Parse lexes, parses, NNF-normalizes and flattens raw against shape,
// resolving atomics through fm.
func Parse(raw string, shape system.Shape, fm system.FieldManipulate) (Prop, error) {
	tree, err := parseAST(raw)
	if err != nil {
		return Prop{}, err
	}

	nnf := toNNF(tree, false)

	fl := &flattener{shape: shape, fm: fm}
	root, err := fl.flatten(nnf)
	if err != nil {
		return Prop{}, err
	}

	return Prop{Entries: fl.entries, Root: root}, nil
}
