package bus

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"sync"

	"github.com/dmitrymomot/eventbus/core/logger"
)

// ArrayQueue is a Queue backed by an ordered slice. Enqueue performs a linear
// ordered insertion, which keeps Dequeue and Peek trivially cheap: the next
// event to read is always the first element.
//
// Prefer HeapQueue when insertion throughput under high churn matters more
// than simplicity; both backends produce identical dequeue sequences for
// identical inputs.
type ArrayQueue struct {
	cfg    Config
	logger *slog.Logger

	mu    sync.Mutex
	items []entry
	ids   map[string]struct{}
	seq   uint64
}

// NewArrayQueue creates an array-backed queue bus.
func NewArrayQueue(cfg Config, opts ...QueueOption) (*ArrayQueue, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	options := &queueOptions{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(options)
	}

	q := &ArrayQueue{
		cfg:    cfg,
		logger: options.logger,
	}
	if cfg.EnableDeduplication {
		q.ids = make(map[string]struct{})
	}

	return q, nil
}

// Enqueue buffers an event at its ordered position. It rejects the event with
// an *EnqueueError wrapping ErrBusFull when the bus is at capacity, or
// ErrDuplicateEvent when deduplication is enabled and the event ID is already
// buffered. Unexpected internal faults are wrapped into ErrEnqueueFailed
// instead of propagating as panics.
func (q *ArrayQueue) Enqueue(ctx context.Context, event Event) (err error) {
	defer func() {
		if r := recover(); r != nil {
			q.logger.ErrorContext(ctx, "unexpected fault during enqueue",
				logger.Component(q.cfg.Name), logger.ID("event_id", event.ID), slog.Any("fault", r))
			err = &EnqueueError{
				Bus:     q.cfg.Name,
				EventID: event.ID,
				Err:     fmt.Errorf("%w: %v", ErrEnqueueFailed, r),
			}
		}
	}()

	q.mu.Lock()
	defer q.mu.Unlock()

	if q.cfg.MaxSize > 0 && len(q.items) >= q.cfg.MaxSize {
		return &EnqueueError{
			Bus:     q.cfg.Name,
			EventID: event.ID,
			Size:    len(q.items),
			MaxSize: q.cfg.MaxSize,
			Err:     ErrBusFull,
		}
	}

	if q.ids != nil {
		if _, exists := q.ids[event.ID]; exists {
			return &EnqueueError{
				Bus:     q.cfg.Name,
				EventID: event.ID,
				Size:    len(q.items),
				MaxSize: q.cfg.MaxSize,
				Err:     ErrDuplicateEvent,
			}
		}
	}

	q.seq++
	e := entry{event: event, seq: q.seq}
	q.items = slices.Insert(q.items, insertionIndex(q.items, e), e)

	if q.ids != nil {
		q.ids[event.ID] = struct{}{}
	}

	return nil
}

// Dequeue removes and returns the front event. It never fails: an empty
// buffer returns a missing value, and an unexpected internal fault is logged
// and degraded to a missing value so a broken read cannot stall the consumer.
func (q *ArrayQueue) Dequeue(ctx context.Context) (ev *Event, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			q.logger.ErrorContext(ctx, "unexpected fault during dequeue",
				logger.Component(q.cfg.Name), slog.Any("fault", r))
			ev, ok = nil, false
		}
	}()

	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.items) == 0 {
		return nil, false
	}

	e := q.items[0]
	q.items = slices.Delete(q.items, 0, 1)
	if q.ids != nil {
		// The ID becomes eligible for re-insertion the moment its event leaves.
		delete(q.ids, e.event.ID)
	}

	event := e.event
	return &event, true
}

// Peek returns the front event without removing it.
func (q *ArrayQueue) Peek(ctx context.Context) (*Event, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.items) == 0 {
		return nil, false
	}

	event := q.items[0].event
	return &event, true
}

// Size returns the number of buffered events.
func (q *ArrayQueue) Size() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

// IsEmpty reports whether the buffer holds no events.
func (q *ArrayQueue) IsEmpty() bool {
	return q.Size() == 0
}

// Clear discards all buffered events and deduplication state.
func (q *ArrayQueue) Clear() {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.items = nil
	if q.ids != nil {
		q.ids = make(map[string]struct{})
	}
}

// Name returns the configured bus name.
func (q *ArrayQueue) Name() string {
	return q.cfg.Name
}

// Config returns the immutable construction configuration.
func (q *ArrayQueue) Config() Config {
	return q.cfg
}
