package engine

import "errors"

var (
	// ErrBookFull means the relevant arena is at capacity. The caller
	// decides whether to retry, drop, or back off; engine state is
	// untouched.
	ErrBookFull = errors.New("engine: book full")

	// ErrInvalidOrder means the input failed validation before any
	// slot was reserved.
	ErrInvalidOrder = errors.New("engine: invalid order")
)

// RejectError says why AddOrder refused an order. It unwraps to one of
// the sentinel errors above.
type RejectError struct {
	Reason string
	err    error
}

func (e *RejectError) Error() string {
	return e.err.Error() + ": " + e.Reason
}

func (e *RejectError) Unwrap() error {
	return e.err
}

func reject(sentinel error, reason string) error {
	return &RejectError{Reason: reason, err: sentinel}
}
