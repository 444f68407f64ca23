package animator

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSettings indicates settings that cannot drive a run.
	ErrInvalidSettings = errors.New("animator: invalid settings")

	// ErrLengthMismatch indicates a final number whose length differs from the digit count.
	ErrLengthMismatch = errors.New("animator: final number length does not match digit count")
)

// PhaseError wraps a failure with the phase and frame it happened in.
type PhaseError struct {
	Phase   Phase
	Frame   int
	Wrapped error
}

func (e *PhaseError) Error() string {
	return fmt.Sprintf("animator: %s frame %d: %v", e.Phase, e.Frame, e.Wrapped)
}

func (e *PhaseError) Unwrap() error {
	return e.Wrapped
}
