package dolly

import (
	"iter"

	"github.com/gammazero/deque"
)

// Queue is a FIFO queue backed by a deque. Create queues with NewQueue.
type Queue[T any] struct {
	items *deque.Deque[T]
}

// NewQueue returns a queue with items enqueued in argument order.
func NewQueue[T any](items ...T) *Queue[T] {
	q := &Queue[T]{items: deque.New[T](len(items))}
	for _, v := range items {
		q.Enqueue(v)
	}
	return q
}

// Enqueue appends v at the back.
func (q *Queue[T]) Enqueue(v T) { q.items.PushBack(v) }

// Dequeue removes and returns the front element.
func (q *Queue[T]) Dequeue() (T, bool) {
	if q.items.Len() == 0 {
		var zero T
		return zero, false
	}
	return q.items.PopFront(), true
}

// Peek returns the front element without removing it.
func (q *Queue[T]) Peek() (T, bool) {
	if q.items.Len() == 0 {
		var zero T
		return zero, false
	}
	return q.items.Front(), true
}

// Len returns the number of elements.
func (q *Queue[T]) Len() int { return q.items.Len() }

// Clear removes every element.
func (q *Queue[T]) Clear() { q.items.Clear() }

// All iterates from front to back, the order Dequeue would return.
func (q *Queue[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < q.items.Len(); i++ {
			if !yield(q.items.At(i)) {
				return
			}
		}
	}
}

// CloneQueue clones src into a new queue with the same dequeue order.
func CloneQueue[T any](src *Queue[T]) *Queue[T] {
	if src == nil {
		return nil
	}
	return &Queue[T]{items: CloneDeque(src.items)}
}

// CloneQueueInto clears dst and refills it with clones of src.
func CloneQueueInto[T any](dst, src *Queue[T]) {
	if dst == nil {
		usageFault("CloneQueueInto", ErrNilDestination, dst)
	}
	if src == nil {
		usageFault("CloneQueueInto", ErrNilSource, src)
	}
	CloneDequeInto(dst.items, src.items)
}

// CloneDeque clones src front to back into a new deque.
func CloneDeque[T any](src *deque.Deque[T]) *deque.Deque[T] {
	if src == nil {
		return nil
	}
	out := deque.New[T](src.Len())
	fillDeque(out, src)
	return out
}

// CloneDequeInto clears dst and refills it with clones of src.
func CloneDequeInto[T any](dst, src *deque.Deque[T]) {
	if dst == nil {
		usageFault("CloneDequeInto", ErrNilDestination, dst)
	}
	if src == nil {
		usageFault("CloneDequeInto", ErrNilSource, src)
	}
	dst.Clear()
	fillDeque(dst, src)
}

func fillDeque[T any](dst, src *deque.Deque[T]) {
	for i := 0; i < src.Len(); i++ {
		dst.PushBack(Value(src.At(i)))
	}
}
