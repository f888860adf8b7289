package booking

import (
	"errors"
	"fmt"
)

// ErrValidationBlocked signals a refused advance: the current step's
// completion rule is not satisfied. The wizard state is left untouched.
var ErrValidationBlocked = errors.New("current step is not complete")

// ErrSessionNotFound signals a missing or expired wizard session.
var ErrSessionNotFound = errors.New("booking session not found or expired")

// SubmitError wraps a failure reported by the booking persistence layer
// during finalize. The draft is left exactly as it was, so the caller can
// retry the same advance.
type SubmitError struct {
	Err error
}

func (e *SubmitError) Error() string {
	return fmt.Sprintf("booking submission failed: %v", e.Err)
}

func (e *SubmitError) Unwrap() error { return e.Err }
