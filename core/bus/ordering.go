package bus

import "cmp"

// entry pairs a buffered event with a monotonic per-bus sequence number.
// The sequence breaks exact timestamp ties, so every backend dequeues
// colliding timestamps in insertion order.
type entry struct {
	event Event
	seq   uint64
}

// compareEntries defines the canonical read order: descending priority,
// then ascending timestamp, then ascending sequence. A negative result means
// a dequeues before b.
func compareEntries(a, b entry) int {
	if a.event.Priority != b.event.Priority {
		return cmp.Compare(b.event.Priority, a.event.Priority)
	}
	if c := a.event.Timestamp.Compare(b.event.Timestamp); c != 0 {
		return c
	}
	return cmp.Compare(a.seq, b.seq)
}

// insertionIndex returns the position in items at which e must be inserted to
// keep the slice in canonical read order: the first position whose occupant
// sorts after e, or len(items) when no such position exists.
func insertionIndex(items []entry, e entry) int {
	for i, occupant := range items {
		if compareEntries(e, occupant) < 0 {
			return i
		}
	}
	return len(items)
}
