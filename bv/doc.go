// Package bv implements the three-valued bit-vector abstract domain: the
// leaf library of the verification core.
//
// A Value of width W holds a pair (Zeros, Ones), each a W-bit mask
// stored in a uint64. Bit i can take value 0 iff Zeros[i]=1, can take value 1 iff
// Ones[i]=1; every well-formed Value satisfies Zeros[i]∨Ones[i]=1 for
// every bit (no bit is ever "empty" — unrepresentable values simply
// cannot be constructed through this package's API). A bit is known
// when exactly one of Zeros/Ones is set, unknown when both are set.
//
// Forward operators (Not, And, Or, Xor, Add, Sub, Mul, UDiv, SDiv, URem,
// SRem, shifts, comparisons, extensions) compute a sound over-approximation
// of every concrete combination of their inputs: for any concrete x∈γ(X),
// y∈γ(Y), the concrete result f(x,y) is always in γ(F(X,Y)). Bitwise
// operators are exact (sharp) per spec; Add and Sub resolve bit by bit
// through a ripple-carry adder; the remaining arithmetic operators are
// sound but fall back to a fully unknown result whenever either operand
// is not fully known, except where a cheaper exact case applies.
//
// Backward ("mark") operators are the image domain's dual: given a Mark
// describing which output bits are currently important (they do not
// consult the forward inputs), they return one Mark per input, sound in
// the sense that refining exactly those input bits suffices to resolve
// the demanded output bits. See backward.go.
//
// Array is the abstract-array sibling: a sparse total mapping from
// unsigned index bit-vectors to Value elements (default element plus
// explicit overrides), with Read/Write following the join/strong-update
// rules of the specification.
//
// Complexity: the bitwise operators are O(1) (single machine-word
// arithmetic); Add and Sub are O(W) (one ripple-carry step per bit).
// Array.Read is O(1) for a fully-known index and O(2^k) for an index with
// k unknown bits, capped (see array.go) to keep the sparse representation
// sparse; Array.Write additionally copies the override map on every call.
package bv
