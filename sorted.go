package dolly

import (
	"iter"

	"github.com/google/btree"
)

// Sorted is a sort-ordered set backed by a B-tree. It keeps the degree and
// less function it was created with so clones are built with the same
// ordering without touching the source tree.
type Sorted[T any] struct {
	degree int
	less   btree.LessFunc[T]
	tree   *btree.BTreeG[T]
}

// NewSorted returns a sorted set ordered by less holding items.
func NewSorted[T any](degree int, less btree.LessFunc[T], items ...T) *Sorted[T] {
	if less == nil {
		usageFault("NewSorted", ErrNilSource, less)
	}
	s := &Sorted[T]{
		degree: degree,
		less:   less,
		tree:   btree.NewG(degree, less),
	}
	for _, v := range items {
		s.tree.ReplaceOrInsert(v)
	}
	return s
}

// ReplaceOrInsert adds v, replacing an equal item. It returns the replaced
// item, if any.
func (s *Sorted[T]) ReplaceOrInsert(v T) (T, bool) { return s.tree.ReplaceOrInsert(v) }

// Delete removes the item equal to v.
func (s *Sorted[T]) Delete(v T) (T, bool) { return s.tree.Delete(v) }

// Get returns the stored item equal to v.
func (s *Sorted[T]) Get(v T) (T, bool) { return s.tree.Get(v) }

// Has reports whether an item equal to v is present.
func (s *Sorted[T]) Has(v T) bool { return s.tree.Has(v) }

// Min returns the smallest item.
func (s *Sorted[T]) Min() (T, bool) { return s.tree.Min() }

// Max returns the largest item.
func (s *Sorted[T]) Max() (T, bool) { return s.tree.Max() }

// Len returns the number of items.
func (s *Sorted[T]) Len() int { return s.tree.Len() }

// Clear removes every item. Degree and less function are kept.
func (s *Sorted[T]) Clear() { s.tree.Clear(false) }

// All iterates in ascending order.
func (s *Sorted[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		s.tree.Ascend(func(item T) bool {
			return yield(item)
		})
	}
}

// Tree returns the backing tree. Mutating it mutates s.
func (s *Sorted[T]) Tree() *btree.BTreeG[T] { return s.tree }

// CloneSorted clones every item of src into a new sorted set with the same
// degree and less function. Items go in ascending order. src is only read.
//
// The clone reorders only if cloning an item changes its sort key, which is
// a caller error.
func CloneSorted[T any](src *Sorted[T]) *Sorted[T] {
	if src == nil {
		return nil
	}
	out := &Sorted[T]{
		degree: src.degree,
		less:   src.less,
		tree:   btree.NewG(src.degree, src.less),
	}
	fillBTree(out.tree, src.tree)
	return out
}

// CloneSortedInto clears dst and refills it with clones of src.
// dst keeps its own less function.
func CloneSortedInto[T any](dst, src *Sorted[T]) {
	if dst == nil {
		usageFault("CloneSortedInto", ErrNilDestination, dst)
	}
	if src == nil {
		usageFault("CloneSortedInto", ErrNilSource, src)
	}
	CloneBTreeInto(dst.tree, src.tree)
}

// CloneBTreeInto clears dst and refills it with clones of src.
// dst keeps its own less function. A bare BTreeG does not expose its less
// function, so there is no transform form; wrap trees in Sorted for that.
func CloneBTreeInto[T any](dst, src *btree.BTreeG[T]) {
	if dst == nil {
		usageFault("CloneBTreeInto", ErrNilDestination, dst)
	}
	if src == nil {
		usageFault("CloneBTreeInto", ErrNilSource, src)
	}
	dst.Clear(false)
	fillBTree(dst, src)
}

func fillBTree[T any](dst, src *btree.BTreeG[T]) {
	src.Ascend(func(item T) bool {
		dst.ReplaceOrInsert(Value(item))
		return true
	})
}

// Entry is a key-value pair for sort-ordered mappings stored in a Sorted.
// Entry clones both its key and its value.
type Entry[K, V any] struct {
	Key   K
	Value V
}

// Clone implements Cloner[Entry[K, V]].
func (e Entry[K, V]) Clone() Entry[K, V] {
	return Entry[K, V]{Key: Value(e.Key), Value: Value(e.Value)}
}

// ByKey adapts a key comparer into a less function over entries.
func ByKey[K, V any](less func(a, b K) bool) btree.LessFunc[Entry[K, V]] {
	return func(a, b Entry[K, V]) bool {
		return less(a.Key, b.Key)
	}
}

// NewSortedMap returns a sort-ordered mapping keyed by less.
func NewSortedMap[K, V any](degree int, less func(a, b K) bool) *Sorted[Entry[K, V]] {
	return NewSorted(degree, ByKey[K, V](less))
}
