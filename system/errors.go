// SPDX-License-Identifier: MIT
package system

import "errors"

// Sentinel errors for the system package.
var (
	// ErrFieldNotFound indicates FieldManipulate.Field/Literal was asked
	// for a field name the shape does not declare.
	ErrFieldNotFound = errors.New("system: field not found")

	// ErrBitOutOfRange indicates a literal referenced a bit index
	// outside the field's declared width.
	ErrBitOutOfRange = errors.New("system: bit index out of range")

	// ErrNotArrayField indicates an array-only operation was used on a
	// scalar field, or vice versa.
	ErrNotArrayField = errors.New("system: field is not an array")

	// ErrDuplicateField indicates a Shape declared the same field name
	// twice.
	ErrDuplicateField = errors.New("system: duplicate field name")
)
