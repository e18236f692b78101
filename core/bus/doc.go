// Package bus provides priority-ordered in-memory message storage for
// event distribution, with point-to-point queue semantics and broadcast
// topic semantics.
//
// # Features
//
//   - Stable priority ordering: descending priority, FIFO within a priority
//   - Interchangeable queue backends: ordered-slice and binary-heap
//   - Identifier-based deduplication for queues
//   - Hard capacity bounds with explicit typed rejections
//   - Time-based retention sweeping for topics
//   - Structured logging via log/slog
//
// # Queue Semantics
//
// A queue delivers each buffered event to exactly one Dequeue call. Two
// backends implement the same Queue contract:
//
//	cfg := bus.Config{Name: "orders", MaxSize: 1000, EnableDeduplication: true}
//
//	q, err := bus.NewArrayQueue(cfg)   // linear insert, trivial dequeue
//	q, err := bus.NewHeapQueue(cfg)    // logarithmic insert and dequeue
//
//	err = q.Enqueue(ctx, bus.NewEvent(OrderPlaced{ID: "42"},
//		bus.WithPriority(bus.PriorityHigh),
//	))
//
//	if event, ok := q.Dequeue(ctx); ok {
//		process(event)
//	}
//
// Both backends produce identical dequeue sequences for identical inputs;
// pick by workload. The array backend scans for the insertion point on every
// enqueue, the heap backend pays O(log n) on both ends.
//
// # Topic Semantics
//
// A topic retains messages for broadcast-style access and ages them out
// independent of consumption:
//
//	topic, err := bus.NewArrayTopic(bus.Config{Name: "audit"},
//		bus.WithRetentionWindow(24*time.Hour),
//		bus.WithSweepInterval(time.Hour),
//	)
//	defer topic.Close() // stops the sweeper; forgetting this leaks its goroutine
//
//	snapshot := topic.Messages(ctx)
//
// Topics never deduplicate: replayed identifiers are a normal occurrence in
// broadcast distribution.
//
// # Error Handling
//
// Enqueue failures are explicit so producers can react:
//
//	if err := q.Enqueue(ctx, event); err != nil {
//		switch {
//		case errors.Is(err, bus.ErrBusFull):
//			// apply backpressure or drop
//		case errors.Is(err, bus.ErrDuplicateEvent):
//			// already buffered, safe to ignore
//		}
//	}
//
// Dequeue and Peek never return errors. An empty buffer and an unexpected
// internal fault both surface as a missing value, so a failed read cannot
// stall a consumer; faults are logged for diagnosis.
//
// # Configuration
//
// Config carries env tags for environment-based setup:
//
//	var cfg bus.Config
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//	q, err := bus.NewArrayQueue(cfg)
//
// All bus implementations are safe for concurrent use; every operation runs
// its check-then-act sequence under the bus mutex.
package bus
