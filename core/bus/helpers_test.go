package bus_test

import (
	"testing"
	"time"

	"go.uber.org/goleak"

	"github.com/dmitrymomot/eventbus/core/bus"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// baseTime anchors test timestamps so ordering assertions are deterministic.
var baseTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

type testPayload struct {
	Value string `json:"value"`
}

// testEvent builds an event with a fixed ID, priority, and timestamp offset
// in seconds from baseTime.
func testEvent(id string, priority bus.Priority, offsetSec int) bus.Event {
	return bus.NewEvent(testPayload{Value: id},
		bus.WithEventID(id),
		bus.WithPriority(priority),
		bus.WithTimestamp(baseTime.Add(time.Duration(offsetSec)*time.Second)),
	)
}

// drainIDs dequeues everything and returns the event IDs in dequeue order.
func drainIDs(t *testing.T, q bus.Queue) []string {
	t.Helper()

	var ids []string
	for {
		event, ok := q.Dequeue(t.Context())
		if !ok {
			return ids
		}
		ids = append(ids, event.ID)
	}
}
