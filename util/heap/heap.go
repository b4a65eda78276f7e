package heap

import (
	"cmp"
	"iter"
)

// Policy reports whether a belongs strictly above b in heap order. A min-heap
// uses a < b and a max-heap a > b.
type Policy[T any] func(a, b T) bool

// Heap is a binary heap stored in a flat slice. It is not safe for concurrent
// use.
//
// Create a Heap with NewHeap, NewHeapFunc, NewMin or NewMax. The zero value
// reports itself empty but has no policy, so it panics once a second value is
// added.
type Heap[T any] struct {
	// items[0] is unused so the parent of i is i/2 and its children are 2i
	// and 2i+1.
	items  []T
	policy Policy[T]
}

// NewHeap builds a heap ordered by policy. Any items are copied and heapified.
func NewHeap[T any](policy Policy[T], items ...T) Heap[T] {
	out := Heap[T]{
		items:  make([]T, 1, len(items)+1),
		policy: policy,
	}
	out.items = append(out.items, items...)
	for i := out.Len() / 2; i >= 1; i-- {
		out.down(i)
	}
	return out
}

// NewHeapFunc builds a heap from a three-way comparator; a is above b when
// comparator(a, b) < 0.
func NewHeapFunc[T any](comparator func(a, b T) int, items ...T) Heap[T] {
	return NewHeap(func(a, b T) bool {
		return comparator(a, b) < 0
	}, items...)
}

func NewMin[T cmp.Ordered](items ...T) Heap[T] {
	return NewHeap(func(a, b T) bool { return a < b }, items...)
}

func NewMax[T cmp.Ordered](items ...T) Heap[T] {
	return NewHeap(func(a, b T) bool { return a > b }, items...)
}

func (me *Heap[T]) Len() int {
	if len(me.items) == 0 {
		return 0
	}
	return len(me.items) - 1
}

func (me *Heap[T]) IsEmpty() bool {
	return me.Len() == 0
}

// Add inserts value and sifts it up. O(log n).
func (me *Heap[T]) Add(value T) {
	if len(me.items) == 0 {
		me.items = make([]T, 1)
	}
	me.items = append(me.items, value)
	me.up(me.Len())
}

// Peek returns the top of the heap without removing it.
func (me *Heap[T]) Peek() (out T, exists bool) {
	if me.IsEmpty() {
		return out, false
	}
	return me.items[1], true
}

// Next removes and returns the top of the heap. It returns false once the heap
// is empty, and keeps returning false until more values are added.
func (me *Heap[T]) Next() (out T, exists bool) {
	last := me.Len()
	if last == 0 {
		return out, false
	}

	out = me.items[1]
	me.items[1] = me.items[last]

	// don't keep the evicted slot reachable through the backing array
	var zero T
	me.items[last] = zero
	me.items = me.items[:last]

	me.down(1)
	return out, true
}

// Drain yields values in heap order until the heap is empty or the consumer
// stops. Values not yet yielded stay in the heap.
func (me *Heap[T]) Drain() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			value, exists := me.Next()
			if !exists || !yield(value) {
				return
			}
		}
	}
}

func (me *Heap[T]) up(idx int) {
	for idx > 1 {
		parent := parentIdx(idx)
		if !me.policy(me.items[idx], me.items[parent]) {
			return
		}
		me.swap(idx, parent)
		idx = parent
	}
}

func (me *Heap[T]) down(idx int) {
	count := me.Len()
	for {
		left := leftChildIdx(idx)
		if left > count {
			return
		}

		best := left
		if right := rightChildIdx(idx); right <= count && !me.policy(me.items[left], me.items[right]) {
			best = right
		}

		if !me.policy(me.items[best], me.items[idx]) {
			return
		}
		me.swap(idx, best)
		idx = best
	}
}

func (me *Heap[T]) swap(i, j int) {
	me.items[i], me.items[j] = me.items[j], me.items[i]
}

func parentIdx(idx int) int     { return idx / 2 }
func leftChildIdx(idx int) int  { return idx * 2 }
func rightChildIdx(idx int) int { return idx*2 + 1 }
