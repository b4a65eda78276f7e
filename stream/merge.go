package stream

import (
	"iter"

	"github.com/navijation/njheap/util/heap"
	"github.com/pkg/errors"
)

var ErrUnsortedSource = errors.New("source is not sorted")

type MergeArgs[T any] struct {
	// Compare orders entries ascending; it must be consistent with the order
	// of every source.
	Compare func(a, b T) int
	// Unique drops entries equal to the previously yielded one. Since later
	// sources are yielded first on ties, later sources win.
	Unique bool
}

// Merge yields the entries of all sorted sources in a single sorted sequence.
// The first source error, or a source that is found to be out of order, is
// yielded as the final element.
func Merge[T any](args MergeArgs[T], srcs ...iter.Seq2[T, error]) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		mux := newSourceMux(args)

		for _, src := range srcs {
			next, stop := iter.Pull2(src)
			defer stop()

			if err := mux.AddSource(next); err != nil {
				var zero T
				yield(zero, err)
				return
			}
		}

		for {
			entry, hasNext, err := mux.NextEntry()
			if err != nil {
				yield(entry, err)
				return
			}
			if !hasNext || !yield(entry, nil) {
				return
			}
		}
	}
}

// Values lifts an infallible sequence into a merge source.
func Values[T any](seq iter.Seq[T]) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for value := range seq {
			if !yield(value, nil) {
				return
			}
		}
	}
}

// Collect gathers a fallible sequence, stopping at the first error.
func Collect[T any](seq iter.Seq2[T, error]) (out []T, _ error) {
	for value, err := range seq {
		if err != nil {
			return out, err
		}
		out = append(out, value)
	}
	return out, nil
}

type sourceCursor[T any] struct {
	current      T
	sourceNumber int
	next         func() (T, error, bool)
}

type sourceMux[T any] struct {
	args        MergeArgs[T]
	heap        heap.Heap[sourceCursor[T]]
	sourceCount int
	last        T
	lastIsSet   bool
}

func newSourceMux[T any](args MergeArgs[T]) sourceMux[T] {
	return sourceMux[T]{
		args: args,
		heap: heap.NewHeap(func(a, b sourceCursor[T]) bool {
			// pick lower entries first, and upon ties pick the later sources first
			if comp := args.Compare(a.current, b.current); comp != 0 {
				return comp < 0
			}
			return a.sourceNumber > b.sourceNumber
		}),
	}
}

func (me *sourceMux[T]) AddSource(next func() (T, error, bool)) error {
	sourceNumber := me.sourceCount
	me.sourceCount++

	value, err, exists := next()
	if err != nil {
		return errors.Wrapf(err, "failed to read source %d", sourceNumber)
	}
	if !exists {
		return nil
	}

	me.heap.Add(sourceCursor[T]{
		current:      value,
		sourceNumber: sourceNumber,
		next:         next,
	})
	return nil
}

func (me *sourceMux[T]) NextEntry() (out T, hasNext bool, _ error) {
	for {
		cursor, exists := me.heap.Next()
		if !exists {
			return out, false, nil
		}

		value, err, hasNext := cursor.next()
		if err != nil {
			return out, false, errors.Wrapf(err, "failed to read source %d", cursor.sourceNumber)
		}
		if hasNext {
			if me.args.Compare(value, cursor.current) < 0 {
				return out, false, errors.Wrapf(ErrUnsortedSource, "source %d", cursor.sourceNumber)
			}
			me.heap.Add(sourceCursor[T]{
				current:      value,
				sourceNumber: cursor.sourceNumber,
				next:         cursor.next,
			})
		}

		if me.args.Unique && me.lastIsSet && me.args.Compare(cursor.current, me.last) == 0 {
			continue
		}

		me.last = cursor.current
		me.lastIsSet = true
		return cursor.current, true, nil
	}
}
