package flat

import "errors"

var (
	// ErrIndexOutOfBounds signals navigation beyond the current tree storage.
	ErrIndexOutOfBounds = errors.New("flat: index out of bounds")
	// ErrMalformed signals a violation of the structural tree invariants.
	ErrMalformed = errors.New("flat: malformed tree")
)
