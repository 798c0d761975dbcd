package declaration

import "errors"

// Operations wrap these with a human readable reason, e.g.
// fmt.Errorf("%w: income amount cannot be negative", ErrInvalidInput).
var (
	// ErrInvalidInput marks malformed or out-of-range values supplied by the caller.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidState marks operations attempted in the wrong lifecycle state,
	// including failed pre-validation at filing time.
	ErrInvalidState = errors.New("invalid state")
)
