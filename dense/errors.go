package dense

import "errors"

var (
	// ErrIndexOutOfBounds signals an invalid logical index.
	ErrIndexOutOfBounds = errors.New("dense: index out of bounds")
	// ErrUnderflow signals a delete on a view with no surviving elements.
	ErrUnderflow = errors.New("dense: delete from empty view")
)
