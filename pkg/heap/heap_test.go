package heap_test

import (
	"cmp"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/eventbus/pkg/heap"
)

func drain[T any](h *heap.Heap[T]) []T {
	var out []T
	for {
		v, ok := h.Pop()
		if !ok {
			return out
		}
		out = append(out, v)
	}
}

func TestHeap_MinOrdering(t *testing.T) {
	t.Parallel()

	t.Run("pops in non-decreasing order", func(t *testing.T) {
		t.Parallel()

		h := heap.New[int](heap.Min)
		values := []int{5, 3, 8, 1, 9, 2, 7, 4, 6, 0}
		for _, v := range values {
			h.Push(v)
		}

		got := drain(h)
		assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, got)
	})

	t.Run("random inputs stay sorted", func(t *testing.T) {
		t.Parallel()

		rng := rand.New(rand.NewSource(42))
		h := heap.New[int](heap.Min)
		for range 1000 {
			h.Push(rng.Intn(100))
		}

		got := drain(h)
		require.Len(t, got, 1000)
		assert.True(t, sort.IntsAreSorted(got))
	})
}

func TestHeap_MaxOrdering(t *testing.T) {
	t.Parallel()

	h := heap.New[int](heap.Max)
	for _, v := range []int{5, 3, 8, 1, 9, 2} {
		h.Push(v)
	}

	got := drain(h)
	assert.Equal(t, []int{9, 8, 5, 3, 2, 1}, got)
}

func TestHeap_CustomComparison(t *testing.T) {
	t.Parallel()

	type job struct {
		priority int
		name     string
	}

	t.Run("comparison function", func(t *testing.T) {
		t.Parallel()

		h := heap.NewFunc[job](heap.Max, func(a, b job) int {
			return cmp.Compare(a.priority, b.priority)
		})
		h.Push(job{priority: 1, name: "low"})
		h.Push(job{priority: 9, name: "high"})
		h.Push(job{priority: 5, name: "mid"})

		v, ok := h.Pop()
		require.True(t, ok)
		assert.Equal(t, "high", v.name)

		v, ok = h.Pop()
		require.True(t, ok)
		assert.Equal(t, "mid", v.name)
	})

	t.Run("key extractor", func(t *testing.T) {
		t.Parallel()

		h := heap.NewKey[job](heap.Min, func(j job) int { return j.priority })
		h.Push(job{priority: 9, name: "high"})
		h.Push(job{priority: 1, name: "low"})

		v, ok := h.Pop()
		require.True(t, ok)
		assert.Equal(t, "low", v.name)
	})

	t.Run("nil comparison panics", func(t *testing.T) {
		t.Parallel()

		assert.Panics(t, func() { heap.NewFunc[int](heap.Min, nil) })
		assert.Panics(t, func() { heap.NewKey[int, int](heap.Min, nil) })
	})
}

func TestHeap_EmptyAccess(t *testing.T) {
	t.Parallel()

	h := heap.New[string](heap.Min)

	v, ok := h.Pop()
	assert.False(t, ok)
	assert.Empty(t, v)

	v, ok = h.Peek()
	assert.False(t, ok)
	assert.Empty(t, v)

	assert.True(t, h.IsEmpty())
	assert.Zero(t, h.Len())
}

func TestHeap_Peek(t *testing.T) {
	t.Parallel()

	h := heap.New[int](heap.Min)
	h.Push(2)
	h.Push(1)

	v, ok := h.Peek()
	require.True(t, ok)
	assert.Equal(t, 1, v)
	assert.Equal(t, 2, h.Len(), "peek must not remove the root")

	v, ok = h.Peek()
	require.True(t, ok)
	assert.Equal(t, 1, v)
}

func TestHeap_SingleElement(t *testing.T) {
	t.Parallel()

	h := heap.New[int](heap.Min)
	h.Push(42)

	v, ok := h.Pop()
	require.True(t, ok)
	assert.Equal(t, 42, v)
	assert.True(t, h.IsEmpty())
}

func TestHeap_Clear(t *testing.T) {
	t.Parallel()

	h := heap.New[int](heap.Min)
	h.Push(1)
	h.Push(2)
	h.Clear()

	assert.True(t, h.IsEmpty())

	// The heap stays usable after Clear.
	h.Push(3)
	v, ok := h.Pop()
	require.True(t, ok)
	assert.Equal(t, 3, v)
}

func TestHeap_Contains(t *testing.T) {
	t.Parallel()

	h := heap.New[int](heap.Min)
	h.Push(1)
	h.Push(2)
	h.Push(3)

	assert.True(t, h.Contains(2))
	assert.False(t, h.Contains(7))
}

func TestHeap_Snapshots(t *testing.T) {
	t.Parallel()

	t.Run("ToSlice returns a copy", func(t *testing.T) {
		t.Parallel()

		h := heap.New[int](heap.Min)
		h.Push(3)
		h.Push(1)
		h.Push(2)

		snapshot := h.ToSlice()
		require.Len(t, snapshot, 3)
		assert.ElementsMatch(t, []int{1, 2, 3}, snapshot)

		snapshot[0] = 99
		v, ok := h.Peek()
		require.True(t, ok)
		assert.Equal(t, 1, v, "mutating the snapshot must not affect the heap")
	})

	t.Run("ToSortedSlice does not mutate the heap", func(t *testing.T) {
		t.Parallel()

		h := heap.New[int](heap.Min)
		for _, v := range []int{4, 2, 5, 1, 3} {
			h.Push(v)
		}

		sorted := h.ToSortedSlice()
		assert.Equal(t, []int{1, 2, 3, 4, 5}, sorted)
		assert.Equal(t, 5, h.Len())

		// The original heap still drains in order.
		assert.Equal(t, []int{1, 2, 3, 4, 5}, drain(h))
	})

	t.Run("empty heap snapshots", func(t *testing.T) {
		t.Parallel()

		h := heap.New[int](heap.Max)
		assert.Empty(t, h.ToSlice())
		assert.Empty(t, h.ToSortedSlice())
	})
}
