package bus

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/dmitrymomot/eventbus/core/logger"
	"github.com/dmitrymomot/eventbus/pkg/heap"
)

// HeapQueue is a Queue backed by a min-heap ordered by the canonical read
// order, trading the array backend's linear insertion for logarithmic
// insertion and removal. For any interleaving of calls it produces the same
// dequeue sequence as ArrayQueue.
type HeapQueue struct {
	cfg    Config
	logger *slog.Logger

	mu  sync.Mutex
	h   *heap.Heap[entry]
	ids map[string]struct{}
	seq uint64
}

// NewHeapQueue creates a heap-backed queue bus.
func NewHeapQueue(cfg Config, opts ...QueueOption) (*HeapQueue, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	options := &queueOptions{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(options)
	}

	q := &HeapQueue{
		cfg:    cfg,
		logger: options.logger,
		h:      heap.NewFunc[entry](heap.Min, compareEntries),
	}
	if cfg.EnableDeduplication {
		q.ids = make(map[string]struct{})
	}

	return q, nil
}

// Enqueue buffers an event, applying the same capacity and duplicate checks
// as ArrayQueue before pushing onto the heap.
func (q *HeapQueue) Enqueue(ctx context.Context, event Event) (err error) {
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

	if q.cfg.MaxSize > 0 && q.h.Len() >= q.cfg.MaxSize {
		return &EnqueueError{
			Bus:     q.cfg.Name,
			EventID: event.ID,
			Size:    q.h.Len(),
			MaxSize: q.cfg.MaxSize,
			Err:     ErrBusFull,
		}
	}

	if q.ids != nil {
		if _, exists := q.ids[event.ID]; exists {
			return &EnqueueError{
				Bus:     q.cfg.Name,
				EventID: event.ID,
				Size:    q.h.Len(),
				MaxSize: q.cfg.MaxSize,
				Err:     ErrDuplicateEvent,
			}
		}
	}

	q.seq++
	q.h.Push(entry{event: event, seq: q.seq})

	if q.ids != nil {
		q.ids[event.ID] = struct{}{}
	}

	return nil
}

// Dequeue removes and returns the heap root. Like the array backend, it
// degrades unexpected faults to a missing value after logging them.
func (q *HeapQueue) Dequeue(ctx context.Context) (ev *Event, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			q.logger.ErrorContext(ctx, "unexpected fault during dequeue",
				logger.Component(q.cfg.Name), slog.Any("fault", r))
			ev, ok = nil, false
		}
	}()

	q.mu.Lock()
	defer q.mu.Unlock()

	e, ok := q.h.Pop()
	if !ok {
		return nil, false
	}
	if q.ids != nil {
		delete(q.ids, e.event.ID)
	}

	event := e.event
	return &event, true
}

// Peek returns the heap root without removing it.
func (q *HeapQueue) Peek(ctx context.Context) (*Event, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	e, ok := q.h.Peek()
	if !ok {
		return nil, false
	}

	event := e.event
	return &event, true
}

// Size returns the number of buffered events.
func (q *HeapQueue) Size() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.h.Len()
}

// IsEmpty reports whether the buffer holds no events.
func (q *HeapQueue) IsEmpty() bool {
	return q.Size() == 0
}

// Clear discards all buffered events and deduplication state.
func (q *HeapQueue) Clear() {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.h.Clear()
	if q.ids != nil {
		q.ids = make(map[string]struct{})
	}
}

// Name returns the configured bus name.
func (q *HeapQueue) Name() string {
	return q.cfg.Name
}

// Config returns the immutable construction configuration.
func (q *HeapQueue) Config() Config {
	return q.cfg
}
