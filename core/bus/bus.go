package bus

import "context"

// Queue is the storage contract for point-to-point delivery: each buffered
// event is handed to exactly one Dequeue call. Events are read in descending
// priority order; equal priorities dequeue in arrival order.
//
// Enqueue rejections are explicit errors so producers can apply their own
// retry policy. Dequeue and Peek never fail: an empty buffer and an
// unexpected internal fault are both reported as a missing value, because a
// failed read must not stall the consumer.
type Queue interface {
	// Enqueue buffers an event, rejecting it with an *EnqueueError wrapping
	// ErrBusFull or ErrDuplicateEvent when capacity or uniqueness is violated.
	Enqueue(ctx context.Context, event Event) error

	// Dequeue removes and returns the highest-priority, earliest-arrived
	// event. The second result is false when nothing is buffered.
	Dequeue(ctx context.Context) (*Event, bool)

	// Peek returns the event Dequeue would return next without removing it.
	Peek(ctx context.Context) (*Event, bool)

	// Size returns the number of buffered events.
	Size() int

	// IsEmpty reports whether the buffer holds no events.
	IsEmpty() bool

	// Clear discards all buffered events and any deduplication state.
	Clear()

	// Name returns the configured bus name.
	Name() string

	// Config returns the immutable construction configuration.
	Config() Config
}

// Topic is the storage contract for broadcast delivery. It shares the queue
// read ordering and capacity bound but never deduplicates, and it expires
// buffered events older than its retention window independent of consumption.
type Topic interface {
	Queue

	// Messages returns a read-only snapshot of the buffered events in
	// dequeue order. Mutating the returned slice does not affect the buffer.
	Messages(ctx context.Context) []Event

	// Close stops the retention sweeper and discards buffered events.
	// Closing an already-closed topic is a no-op.
	Close() error
}
