// SPDX-License-Identifier: MIT
package bv

import "errors"

// Sentinel errors for the bv package. Callers MUST use errors.Is to branch
// on these; messages are never stringified into match logic.
var (
	// ErrInvalidWidth indicates a requested bit width is outside [1,64].
	ErrInvalidWidth = errors.New("bv: width must be in [1,64]")

	// ErrWidthMismatch indicates two operands of a binary operator have
	// different widths.
	ErrWidthMismatch = errors.New("bv: operand width mismatch")

	// ErrMalformed indicates a Value violates the no-empty-bit invariant
	// (Zeros[i]|Ones[i] must be all-ones for every bit). This signals a
	// programming bug in an operator implementation, not a user error;
	// it is returned (rather than panicking) only from the public
	// Validate helper used by tests and assertions.
	ErrMalformed = errors.New("bv: malformed three-valued value (empty bit)")

	// ErrIndexWidthTooLarge names the case of an index concretization set
	// larger than array.go's maxEnumeratedUnknownBits cap. Array.Read and
	// Array.Write do not return it: they fall back to a widened result in
	// that case (Write reports it through its precise return value).
	ErrIndexWidthTooLarge = errors.New("bv: index width exceeds array enumeration cap")
)
