package bus

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dmitrymomot/eventbus/core/logger"
)

const (
	// DefaultRetentionWindow is how long a topic keeps a message, measured
	// against the message's own timestamp.
	DefaultRetentionWindow = 24 * time.Hour

	// DefaultSweepInterval is how often the retention sweeper runs.
	DefaultSweepInterval = time.Hour
)

// TopicStats provides observability counters for a topic bus.
type TopicStats struct {
	BufferedMessages int   // Current number of buffered messages
	SweptMessages    int64 // Total messages discarded by the retention sweeper
	IsRunning        bool  // Whether the retention sweeper is running
}

// ArrayTopic is a Topic backed by an ordered slice. It applies the same
// priority/arrival read order and capacity bound as ArrayQueue but never
// deduplicates, and a background sweeper discards messages older than the
// retention window whether or not anyone reads them.
//
// Callers must Close the topic when done; an unclosed topic leaks the
// sweeper goroutine.
type ArrayTopic struct {
	cfg           Config
	retention     time.Duration
	sweepInterval time.Duration
	logger        *slog.Logger

	mu    sync.Mutex
	items []entry
	seq   uint64

	cancel    context.CancelFunc
	done      chan struct{}
	closeOnce sync.Once
	swept     atomic.Int64
	running   atomic.Bool
}

// NewArrayTopic creates an array-backed topic bus and starts its retention
// sweeper. The EnableDeduplication config flag is ignored: repeated event IDs
// are normal for broadcast replays.
func NewArrayTopic(cfg Config, opts ...TopicOption) (*ArrayTopic, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	options := &topicOptions{
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		retention:     DefaultRetentionWindow,
		sweepInterval: DefaultSweepInterval,
	}
	for _, opt := range opts {
		opt(options)
	}

	ctx, cancel := context.WithCancel(context.Background())
	t := &ArrayTopic{
		cfg:           cfg,
		retention:     options.retention,
		sweepInterval: options.sweepInterval,
		logger:        options.logger,
		cancel:        cancel,
		done:          make(chan struct{}),
	}

	t.running.Store(true)
	go t.sweepLoop(ctx)

	return t, nil
}

// Enqueue buffers an event at its ordered position, rejecting it with an
// *EnqueueError wrapping ErrBusFull when the topic is at capacity. There is
// no duplicate check.
func (t *ArrayTopic) Enqueue(ctx context.Context, event Event) (err error) {
	defer func() {
		if r := recover(); r != nil {
			t.logger.ErrorContext(ctx, "unexpected fault during enqueue",
				logger.Component(t.cfg.Name), logger.ID("event_id", event.ID), slog.Any("fault", r))
			err = &EnqueueError{
				Bus:     t.cfg.Name,
				EventID: event.ID,
				Err:     fmt.Errorf("%w: %v", ErrEnqueueFailed, r),
			}
		}
	}()

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.cfg.MaxSize > 0 && len(t.items) >= t.cfg.MaxSize {
		return &EnqueueError{
			Bus:     t.cfg.Name,
			EventID: event.ID,
			Size:    len(t.items),
			MaxSize: t.cfg.MaxSize,
			Err:     ErrBusFull,
		}
	}

	t.seq++
	e := entry{event: event, seq: t.seq}
	t.items = slices.Insert(t.items, insertionIndex(t.items, e), e)

	return nil
}

// Dequeue removes and returns the front event. It never fails; an empty
// buffer returns a missing value.
func (t *ArrayTopic) Dequeue(ctx context.Context) (ev *Event, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			t.logger.ErrorContext(ctx, "unexpected fault during dequeue",
				logger.Component(t.cfg.Name), slog.Any("fault", r))
			ev, ok = nil, false
		}
	}()

	t.mu.Lock()
	defer t.mu.Unlock()

	if len(t.items) == 0 {
		return nil, false
	}

	e := t.items[0]
	t.items = slices.Delete(t.items, 0, 1)

	event := e.event
	return &event, true
}

// Peek returns the front event without removing it.
func (t *ArrayTopic) Peek(ctx context.Context) (*Event, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if len(t.items) == 0 {
		return nil, false
	}

	event := t.items[0].event
	return &event, true
}

// Messages returns a snapshot of the buffered events in dequeue order.
func (t *ArrayTopic) Messages(ctx context.Context) []Event {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]Event, len(t.items))
	for i, e := range t.items {
		out[i] = e.event
	}
	return out
}

// Size returns the number of buffered events.
func (t *ArrayTopic) Size() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.items)
}

// IsEmpty reports whether the buffer holds no events.
func (t *ArrayTopic) IsEmpty() bool {
	return t.Size() == 0
}

// Clear discards all buffered events. The retention sweeper keeps running.
func (t *ArrayTopic) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.items = nil
}

// Name returns the configured bus name.
func (t *ArrayTopic) Name() string {
	return t.cfg.Name
}

// Config returns the immutable construction configuration.
func (t *ArrayTopic) Config() Config {
	return t.cfg
}

// Stats returns current topic counters for observability and monitoring.
func (t *ArrayTopic) Stats() TopicStats {
	return TopicStats{
		BufferedMessages: t.Size(),
		SweptMessages:    t.swept.Load(),
		IsRunning:        t.running.Load(),
	}
}

// Close stops the retention sweeper and discards all buffered events.
// Subsequent calls are no-ops.
func (t *ArrayTopic) Close() error {
	t.closeOnce.Do(func() {
		t.cancel()
		<-t.done
		t.Clear()
		t.logger.Info("topic closed", logger.Component(t.cfg.Name))
	})
	return nil
}

// sweepLoop runs the periodic retention sweep until the topic is closed.
func (t *ArrayTopic) sweepLoop(ctx context.Context) {
	defer close(t.done)
	defer t.running.Store(false)

	t.logger.InfoContext(ctx, "retention sweeper started",
		logger.Component(t.cfg.Name),
		slog.Duration("retention", t.retention),
		slog.Duration("interval", t.sweepInterval))

	ticker := time.NewTicker(t.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			t.sweep()
		}
	}
}

// sweep removes every buffered message whose own timestamp has aged past the
// retention window, independent of whether anyone ever reads it.
func (t *ArrayTopic) sweep() {
	cutoff := time.Now().Add(-t.retention)

	t.mu.Lock()
	before := len(t.items)
	t.items = slices.DeleteFunc(t.items, func(e entry) bool {
		return e.event.Timestamp.Before(cutoff)
	})
	removed := before - len(t.items)
	t.mu.Unlock()

	if removed > 0 {
		t.swept.Add(int64(removed))
		t.logger.Info("expired messages swept",
			logger.Component(t.cfg.Name), slog.Int("removed", removed))
	}
}
