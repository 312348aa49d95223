package boundary

import "errors"

var (
	// ErrInvalidHandle reports an operation on a handle that is not live:
	// never issued, already destroyed, or of the wrong kind.
	ErrInvalidHandle = errors.New("boundary: invalid or destroyed handle")

	// ErrIndexOutOfRange reports a label index outside [0, count).
	ErrIndexOutOfRange = errors.New("boundary: label index out of range")
)
