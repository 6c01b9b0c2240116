package dolly

import "iter"

// Set is an unordered set whose equality policy is a key projection:
// two elements are equal when key returns the same value for both.
// A case-insensitive string set, for instance, uses strings.ToLower.
//
// Set is not safe for concurrent mutation.
type Set[T any, K comparable] struct {
	key   func(T) K
	items map[K]T
}

// NewSet returns an empty set using key as its equality policy.
func NewSet[T any, K comparable](key func(T) K, items ...T) *Set[T, K] {
	if key == nil {
		usageFault("NewSet", ErrNilSource, key)
	}
	s := &Set[T, K]{
		key:   key,
		items: make(map[K]T, len(items)),
	}
	for _, v := range items {
		s.Add(v)
	}
	return s
}

// Identity is the key projection for sets of comparable values.
func Identity[T comparable](v T) T { return v }

// Add inserts v, replacing an equal element. It reports whether v was new.
func (s *Set[T, K]) Add(v T) bool {
	k := s.key(v)
	_, exists := s.items[k]
	s.items[k] = v
	return !exists
}

// Has reports whether an element equal to v is present.
func (s *Set[T, K]) Has(v T) bool {
	_, ok := s.items[s.key(v)]
	return ok
}

// Get returns the stored element equal to v.
func (s *Set[T, K]) Get(v T) (T, bool) {
	item, ok := s.items[s.key(v)]
	return item, ok
}

// Remove deletes the element equal to v and reports whether it was present.
func (s *Set[T, K]) Remove(v T) bool {
	k := s.key(v)
	if _, ok := s.items[k]; !ok {
		return false
	}
	delete(s.items, k)
	return true
}

// Len returns the number of elements.
func (s *Set[T, K]) Len() int { return len(s.items) }

// Clear removes every element. The key projection is kept.
func (s *Set[T, K]) Clear() { clear(s.items) }

// All iterates the elements in no particular order.
func (s *Set[T, K]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range s.items {
			if !yield(v) {
				return
			}
		}
	}
}

// CloneSet clones every element of src into a new set with the same key
// projection. Duplicates left by a clone that changes keys collapse under
// that projection.
func CloneSet[T any, K comparable](src *Set[T, K]) *Set[T, K] {
	if src == nil {
		return nil
	}
	out := &Set[T, K]{
		key:   src.key,
		items: make(map[K]T, len(src.items)),
	}
	for _, v := range src.items {
		out.Add(Value(v))
	}
	return out
}

// CloneSetInto clears dst and refills it with clones of src.
// dst keeps its own key projection.
func CloneSetInto[T any, K comparable](dst, src *Set[T, K]) {
	if dst == nil {
		usageFault("CloneSetInto", ErrNilDestination, dst)
	}
	if src == nil {
		usageFault("CloneSetInto", ErrNilSource, src)
	}
	dst.Clear()
	for _, v := range src.items {
		dst.Add(Value(v))
	}
}
