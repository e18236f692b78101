package heap

import "cmp"

// Order determines whether the smallest or the largest element sits at the root.
type Order int

const (
	// Min keeps the smallest element (per the configured comparison) at the root.
	Min Order = iota
	// Max keeps the largest element at the root.
	Max
)

// Heap is an array-backed binary heap. The zero value is not usable; create
// instances with New, NewFunc, or NewKey.
//
// Heap is not safe for concurrent use. Callers that share a heap across
// goroutines must provide their own synchronization.
type Heap[T any] struct {
	items   []T
	compare func(a, b T) int
}

// New creates a heap ordered by the natural ordering of T.
func New[T cmp.Ordered](order Order) *Heap[T] {
	return NewFunc[T](order, cmp.Compare[T])
}

// NewFunc creates a heap ordered by the given comparison function.
// The function must return a negative value when a sorts before b,
// zero when they are equivalent, and a positive value otherwise.
// Panics if compare is nil.
func NewFunc[T any](order Order, compare func(a, b T) int) *Heap[T] {
	if compare == nil {
		panic("heap: compare function must not be nil")
	}
	if order == Max {
		natural := compare
		compare = func(a, b T) int { return natural(b, a) }
	}
	return &Heap[T]{compare: compare}
}

// NewKey creates a heap ordered by a scalar key extracted from each element.
func NewKey[T any, K cmp.Ordered](order Order, key func(T) K) *Heap[T] {
	if key == nil {
		panic("heap: key function must not be nil")
	}
	return NewFunc[T](order, func(a, b T) int {
		return cmp.Compare(key(a), key(b))
	})
}

// Push inserts an element and restores heap order by sifting it up.
func (h *Heap[T]) Push(v T) {
	h.items = append(h.items, v)
	h.siftUp(len(h.items) - 1)
}

// Pop removes and returns the root element. The second return value is false
// when the heap is empty.
func (h *Heap[T]) Pop() (T, bool) {
	var zero T
	switch len(h.items) {
	case 0:
		return zero, false
	case 1:
		root := h.items[0]
		h.items[0] = zero
		h.items = h.items[:0]
		return root, true
	}

	root := h.items[0]
	last := len(h.items) - 1
	h.items[0] = h.items[last]
	h.items[last] = zero
	h.items = h.items[:last]
	h.siftDown(0)
	return root, true
}

// Peek returns the root element without removing it. The second return value
// is false when the heap is empty.
func (h *Heap[T]) Peek() (T, bool) {
	if len(h.items) == 0 {
		var zero T
		return zero, false
	}
	return h.items[0], true
}

// Len returns the number of buffered elements.
func (h *Heap[T]) Len() int {
	return len(h.items)
}

// IsEmpty reports whether the heap holds no elements.
func (h *Heap[T]) IsEmpty() bool {
	return len(h.items) == 0
}

// Clear discards all elements while keeping the heap usable.
func (h *Heap[T]) Clear() {
	clear(h.items)
	h.items = h.items[:0]
}

// Contains reports whether an element equivalent to v (comparison result zero)
// is present. Runs a linear scan.
func (h *Heap[T]) Contains(v T) bool {
	for _, item := range h.items {
		if h.compare(item, v) == 0 {
			return true
		}
	}
	return false
}

// ToSlice returns a copy of the backing array in internal heap order.
// The result is a valid snapshot but carries no sorting guarantee.
func (h *Heap[T]) ToSlice() []T {
	out := make([]T, len(h.items))
	copy(out, h.items)
	return out
}

// ToSortedSlice returns all elements in full heap order, from root outward,
// without mutating the original heap. It drains a scratch copy, so the cost
// is O(n log n).
func (h *Heap[T]) ToSortedSlice() []T {
	scratch := &Heap[T]{
		items:   make([]T, len(h.items)),
		compare: h.compare,
	}
	copy(scratch.items, h.items)

	out := make([]T, 0, len(h.items))
	for {
		v, ok := scratch.Pop()
		if !ok {
			return out
		}
		out = append(out, v)
	}
}

// siftUp moves the element at index i toward the root until its parent no
// longer sorts after it.
func (h *Heap[T]) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if h.compare(h.items[i], h.items[parent]) >= 0 {
			return
		}
		h.items[i], h.items[parent] = h.items[parent], h.items[i]
		i = parent
	}
}

// siftDown moves the element at index i toward the leaves, always swapping
// with the child that sorts first so the root invariant is restored.
func (h *Heap[T]) siftDown(i int) {
	n := len(h.items)
	for {
		left := 2*i + 1
		if left >= n {
			return
		}
		child := left
		if right := left + 1; right < n && h.compare(h.items[right], h.items[left]) < 0 {
			child = right
		}
		if h.compare(h.items[child], h.items[i]) >= 0 {
			return
		}
		h.items[i], h.items[child] = h.items[child], h.items[i]
		i = child
	}
}
