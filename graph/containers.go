package graph

import "github.com/zoobzio/dolly"

// Slice clones every element of src within s, preserving order.
// A nil slice stays nil.
func Slice[T any](s *Session, src []T) []T {
	if src == nil {
		return nil
	}
	out := make([]T, 0, len(src))
	for _, v := range src {
		out = append(out, Value(s, v))
	}
	return out
}

// SliceInto truncates *dst and refills it with clones of src made within s.
func SliceInto[T any](s *Session, dst *[]T, src []T) {
	if dst == nil {
		panic(dolly.NewUsageError(dolly.ErrNilDestination, "graph.SliceInto", dst))
	}
	if src == nil {
		panic(dolly.NewUsageError(dolly.ErrNilSource, "graph.SliceInto", src))
	}
	old := *dst
	out := old[:0]
	for _, v := range src {
		out = append(out, Value(s, v))
	}
	if len(out) < len(old) {
		clear(old[len(out):])
	}
	if out == nil {
		out = []T{}
	}
	*dst = out
}

// Map clones every key and value of src within s. A nil map stays nil.
func Map[K comparable, V any](s *Session, src map[K]V) map[K]V {
	if src == nil {
		return nil
	}
	out := make(map[K]V, len(src))
	for k, v := range src {
		out[Value(s, k)] = Value(s, v)
	}
	return out
}

// MapInto clears dst and refills it with clones of src made within s.
func MapInto[K comparable, V any](s *Session, dst, src map[K]V) {
	if dst == nil {
		panic(dolly.NewUsageError(dolly.ErrNilDestination, "graph.MapInto", dst))
	}
	if src == nil {
		panic(dolly.NewUsageError(dolly.ErrNilSource, "graph.MapInto", src))
	}
	clear(dst)
	for k, v := range src {
		dst[Value(s, k)] = Value(s, v)
	}
}
