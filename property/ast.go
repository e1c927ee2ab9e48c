package property

import "github.com/formalcore/tvmc/bv"

// astOp tags the shape of a raw AST node, mirroring the concrete CTL
// syntax directly (before negation-normal-form pushing and flattening).
type astOp int

const (
	astAtomic astOp = iota
	astNot
	astAnd
	astOr
	astEX
	astAX
	astEF
	astAF
	astEG
	astAG
	astEU
	astAU
	astER
	astAR
)

// astNode is one node of the raw parse tree. Binary temporal operators
// (EU/AU/ER/AR) use both L and R; unary ones (Not/EX/AX/EF/AF/EG/AG)
// use only L; Atomic nodes carry no children.
type astNode struct {
	op      astOp
	l, r    *astNode
	field   string
	bit     bv.Width
	want    bv.Bit
	hasWant bool // false means the bare "field[bit]" shorthand for ==1
}
