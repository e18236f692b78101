package bus

import (
	"errors"
	"fmt"
)

var (
	// ErrBusFull is returned when an enqueue would exceed the configured max size.
	ErrBusFull = errors.New("message bus capacity exceeded")

	// ErrDuplicateEvent is returned by deduplicating queues when an event with
	// the same ID is already buffered.
	ErrDuplicateEvent = errors.New("event with this ID is already buffered")

	// ErrEnqueueFailed wraps unexpected internal faults during insertion.
	ErrEnqueueFailed = errors.New("failed to enqueue event")

	// ErrInvalidConfig is returned when a bus configuration fails validation.
	ErrInvalidConfig = errors.New("invalid bus configuration")
)

// EnqueueError reports a rejected enqueue with enough context for the
// producer to apply its own retry or backpressure policy. It wraps one of the
// sentinel errors above, so callers can branch with errors.Is.
type EnqueueError struct {
	Bus     string // Name of the rejecting bus
	EventID string // ID of the rejected event, if known
	Size    int    // Buffer size at the time of rejection
	MaxSize int    // Configured capacity, zero when unbounded
	Err     error  // Sentinel cause, possibly wrapped
}

// Error implements the error interface.
func (e *EnqueueError) Error() string {
	if e.EventID != "" {
		return fmt.Sprintf("bus %q: event %s: %v", e.Bus, e.EventID, e.Err)
	}
	return fmt.Sprintf("bus %q: %v", e.Bus, e.Err)
}

// Unwrap exposes the sentinel cause for errors.Is/errors.As.
func (e *EnqueueError) Unwrap() error {
	return e.Err
}
