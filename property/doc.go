// Package property parses the CTL concrete syntax of spec.md §6 into the
// flattened, single-Next, least/greatest-fixed-point normal form the
// checker evaluates.
//
// Parse runs three passes:
//
//  1. A recursive-descent parser (lexer.go, parser.go) builds a raw AST
//     mirroring the concrete syntax directly (!, &&, ||, EX/AX/EF/AF/
//     EG/AG, E[_U_]/A[_U_]/E[_R_]/A[_R_], parentheses, atomics).
//  2. A negation-normal-form pass (nnf.go) pushes every ¬ down to
//     atomics using De Morgan's laws and the standard CTL duality
//     table (¬EX=AX¬, ¬AX=EX¬, ¬EU=AR¬, ¬AU=ER¬, and their EF/AF/EG/AG
//     derivatives), so no non-atomic negation survives.
//  3. A flattening pass (flatten.go) lowers the NNF tree into a Prop: a
//     []Entry vector where every temporal operator is re-expressed as a
//     least or greatest fixed point over the single EX-flavored Next
//     operator, with AX encoded as ¬EX¬ per spec.md §4.4.
//
// Parse errors are ErrNotLexable (bad token) or ErrNotParseable
// (malformed grammar), matching the spec's error taxonomy.
package property
