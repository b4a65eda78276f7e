package stream

import (
	"iter"
	"slices"

	"github.com/navijation/njheap/util/heap"
)

// TopK returns the k greatest entries of seq under compare, greatest first.
func TopK[T any](seq iter.Seq[T], k int, compare func(a, b T) int) []T {
	if k <= 0 {
		return nil
	}

	// the smallest retained entry sits on top so it can be evicted
	retained := heap.NewHeapFunc(compare)
	for value := range seq {
		if retained.Len() < k {
			retained.Add(value)
			continue
		}
		if smallest, _ := retained.Peek(); compare(value, smallest) > 0 {
			_, _ = retained.Next()
			retained.Add(value)
		}
	}

	out := slices.AppendSeq(make([]T, 0, retained.Len()), retained.Drain())
	slices.Reverse(out)
	return out
}

// Sort yields the entries of seq in policy order. The whole of seq is read
// before the first entry is yielded.
func Sort[T any](seq iter.Seq[T], policy heap.Policy[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		sorted := heap.NewHeap(policy, slices.Collect(seq)...)
		for value := range sorted.Drain() {
			if !yield(value) {
				return
			}
		}
	}
}
