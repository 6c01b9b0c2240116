package dolly

import "iter"

// CloneSlice clones every element of src into a new slice, preserving order.
// A nil slice stays nil; an empty slice clones to a new empty slice.
func CloneSlice[T any](src []T) []T {
	if src == nil {
		return nil
	}
	out := make([]T, 0, len(src))
	for _, v := range src {
		out = append(out, Value(v))
	}
	return out
}

// CloneSliceInto truncates *dst and refills it with clones of src.
// The capacity of *dst is reused when it is large enough, so *dst and src
// must not share a backing array. A nil src panics with ErrNilSource; an
// empty src leaves *dst empty and non-nil.
func CloneSliceInto[T any](dst *[]T, src []T) {
	if dst == nil {
		usageFault("CloneSliceInto", ErrNilDestination, dst)
	}
	if src == nil {
		usageFault("CloneSliceInto", ErrNilSource, src)
	}
	old := *dst
	out := old[:0]
	for _, v := range src {
		out = append(out, Value(v))
	}
	if len(out) < len(old) {
		clear(old[len(out):])
	}
	if out == nil {
		out = []T{}
	}
	*dst = out
}

// CloneSeq lazily clones every element yielded by seq.
func CloneSeq[T any](seq iter.Seq[T]) iter.Seq[T] {
	if seq == nil {
		usageFault("CloneSeq", ErrNilSource, seq)
	}
	return func(yield func(T) bool) {
		for v := range seq {
			if !yield(Value(v)) {
				return
			}
		}
	}
}

// CloneSeq2 lazily clones every key and value yielded by seq.
func CloneSeq2[K, V any](seq iter.Seq2[K, V]) iter.Seq2[K, V] {
	if seq == nil {
		usageFault("CloneSeq2", ErrNilSource, seq)
	}
	return func(yield func(K, V) bool) {
		for k, v := range seq {
			if !yield(Value(k), Value(v)) {
				return
			}
		}
	}
}
