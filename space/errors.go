package space

import "errors"

// Sentinel errors for the space package.
var (
	// ErrIsStart indicates NodeID.StateID was called on the START node.
	ErrIsStart = errors.New("space: node is START")

	// ErrMarkTooLarge indicates a node's input mark has too many set
	// bits to enumerate concretely.
	ErrMarkTooLarge = errors.New("space: input mark too large to enumerate")
)
