// Package heap provides a generic array-backed binary heap configurable as a
// min-heap or max-heap with pluggable ordering strategies.
//
// Three ordering strategies are supported:
//   - natural ordering of the element type (New, requires cmp.Ordered)
//   - a full comparison function (NewFunc)
//   - a scalar key extractor (NewKey)
//
// # Usage
//
// Natural ordering:
//
//	h := heap.New[int](heap.Min)
//	h.Push(3)
//	h.Push(1)
//	h.Push(2)
//
//	v, ok := h.Pop() // 1, true
//
// Custom comparison:
//
//	type job struct {
//		priority int
//		name     string
//	}
//
//	h := heap.NewFunc[job](heap.Max, func(a, b job) int {
//		return cmp.Compare(a.priority, b.priority)
//	})
//
// Key extractor:
//
//	h := heap.NewKey[job](heap.Min, func(j job) int { return j.priority })
//
// Pop and Peek return a second boolean result instead of failing on an empty
// heap, so callers never deal with errors:
//
//	for {
//		v, ok := h.Pop()
//		if !ok {
//			break
//		}
//		process(v)
//	}
//
// Heap instances are not safe for concurrent use; guard shared heaps with a
// mutex.
package heap
