package dolly

import (
	"iter"

	"github.com/gammazero/deque"
)

// Stack is a LIFO stack backed by a deque. The zero value is not usable;
// create stacks with NewStack.
type Stack[T any] struct {
	items *deque.Deque[T]
}

// NewStack returns a stack with items pushed in argument order, so the last
// argument ends up on top.
func NewStack[T any](items ...T) *Stack[T] {
	s := &Stack[T]{items: deque.New[T](len(items))}
	for _, v := range items {
		s.Push(v)
	}
	return s
}

// Push puts v on top.
func (s *Stack[T]) Push(v T) { s.items.PushBack(v) }

// Pop removes and returns the top element.
func (s *Stack[T]) Pop() (T, bool) {
	if s.items.Len() == 0 {
		var zero T
		return zero, false
	}
	return s.items.PopBack(), true
}

// Peek returns the top element without removing it.
func (s *Stack[T]) Peek() (T, bool) {
	if s.items.Len() == 0 {
		var zero T
		return zero, false
	}
	return s.items.Back(), true
}

// Len returns the number of elements.
func (s *Stack[T]) Len() int { return s.items.Len() }

// Clear removes every element.
func (s *Stack[T]) Clear() { s.items.Clear() }

// All iterates from top to bottom, the order Pop would return.
func (s *Stack[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := s.items.Len() - 1; i >= 0; i-- {
			if !yield(s.items.At(i)) {
				return
			}
		}
	}
}

// CloneStack clones src into a new stack with the same pop order.
func CloneStack[T any](src *Stack[T]) *Stack[T] {
	if src == nil {
		return nil
	}
	out := &Stack[T]{items: deque.New[T](src.Len())}
	fillStack(out, src)
	return out
}

// CloneStackInto clears dst and refills it so it pops like src.
func CloneStackInto[T any](dst, src *Stack[T]) {
	if dst == nil {
		usageFault("CloneStackInto", ErrNilDestination, dst)
	}
	if src == nil {
		usageFault("CloneStackInto", ErrNilSource, src)
	}
	dst.Clear()
	fillStack(dst, src)
}

// fillStack clones in pop order, then pushes in reverse so the clone of the
// top element ends up on top again.
func fillStack[T any](dst, src *Stack[T]) {
	popped := make([]T, 0, src.Len())
	for v := range src.All() {
		popped = append(popped, Value(v))
	}
	for i := len(popped) - 1; i >= 0; i-- {
		dst.Push(popped[i])
	}
}
