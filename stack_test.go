package dolly_test

import (
	"container/list"
	"testing"

	"github.com/gammazero/deque"
	"github.com/zoobzio/dolly"
	"github.com/zoobzio/dolly/clonetest"
)

func TestStack_PopOrder(t *testing.T) {
	s := dolly.NewStack("A", "B")

	if top, _ := s.Peek(); top != "B" {
		t.Errorf("Peek() = %q, want B", top)
	}
	first, _ := s.Pop()
	second, _ := s.Pop()
	_, ok := s.Pop()
	if first != "B" || second != "A" || ok {
		t.Errorf("pops = %q, %q, %v; want B, A, false", first, second, ok)
	}
}

func TestCloneStack_PreservesPopOrder(t *testing.T) {
	a := &clonetest.Item{SKU: "A"}
	b := &clonetest.Item{SKU: "B"}
	original := dolly.NewStack(a, b)

	clone := dolly.CloneStack(original)

	first, _ := clone.Pop()
	second, _ := clone.Pop()
	if first.SKU != "B" || second.SKU != "A" {
		t.Errorf("clone pops %q then %q, want B then A", first.SKU, second.SKU)
	}
	if first == b || second == a {
		t.Error("stack elements should be cloned")
	}
	if original.Len() != 2 {
		t.Errorf("original.Len() = %d after popping clone", original.Len())
	}
	if top, _ := original.Pop(); top != b {
		t.Error("original pop order changed")
	}
}

func TestCloneStackInto(t *testing.T) {
	dst := dolly.NewStack(7, 8, 9)
	src := dolly.NewStack(1, 2, 3)

	dolly.CloneStackInto(dst, src)

	var got []int
	for v := range dst.All() {
		got = append(got, v)
	}
	if len(got) != 3 || got[0] != 3 || got[1] != 2 || got[2] != 1 {
		t.Errorf("dst top-to-bottom = %v, want [3 2 1]", got)
	}
}

func TestCloneStack_Nil(t *testing.T) {
	if dolly.CloneStack[int](nil) != nil {
		t.Error("CloneStack(nil) should be nil")
	}
	expectUsage(t, dolly.ErrNilDestination, func() {
		dolly.CloneStackInto(nil, dolly.NewStack(1))
	})
}

func TestCloneQueue_PreservesOrder(t *testing.T) {
	original := dolly.NewQueue(&clonetest.Item{SKU: "first"}, &clonetest.Item{SKU: "second"})

	clone := dolly.CloneQueue(original)

	head, _ := clone.Dequeue()
	next, _ := clone.Dequeue()
	if head.SKU != "first" || next.SKU != "second" {
		t.Errorf("clone dequeues %q then %q", head.SKU, next.SKU)
	}
	if orig, _ := original.Peek(); orig == head {
		t.Error("queue elements should be cloned")
	}
	if original.Len() != 2 {
		t.Errorf("original.Len() = %d", original.Len())
	}
}

func TestCloneQueueInto(t *testing.T) {
	dst := dolly.NewQueue("stale")
	src := dolly.NewQueue("x", "y")

	dolly.CloneQueueInto(dst, src)

	if dst.Len() != 2 {
		t.Fatalf("dst.Len() = %d, want 2", dst.Len())
	}
	if v, _ := dst.Dequeue(); v != "x" {
		t.Errorf("front = %q, want x", v)
	}
	if _, ok := dolly.NewQueue[int]().Dequeue(); ok {
		t.Error("Dequeue on empty queue should report false")
	}
}

func TestCloneDeque(t *testing.T) {
	original := deque.New[int]()
	original.PushBack(2)
	original.PushFront(1)
	original.PushBack(3)

	clone := dolly.CloneDeque(original)

	if clone.Len() != 3 || clone.At(0) != 1 || clone.At(2) != 3 {
		t.Errorf("clone = [%d %d %d]", clone.At(0), clone.At(1), clone.At(2))
	}
	clone.PopFront()
	if original.Len() != 3 {
		t.Error("popping clone changed the original")
	}

	if dolly.CloneDeque[int](nil) != nil {
		t.Error("CloneDeque(nil) should be nil")
	}
}

func TestCloneList(t *testing.T) {
	original := list.New()
	item := &clonetest.Item{SKU: "a"}
	original.PushBack(item)
	original.PushBack("plain")
	original.PushBack(3)

	clone := dolly.CloneList(original)

	if clone.Len() != 3 {
		t.Fatalf("clone.Len() = %d, want 3", clone.Len())
	}
	e := clone.Front()
	if got := e.Value.(*clonetest.Item); got == item || got.SKU != "a" {
		t.Errorf("first = %p %+v, want distinct clone", got, got)
	}
	if e = e.Next(); e.Value != "plain" {
		t.Errorf("second = %v, want plain", e.Value)
	}
	if e = e.Next(); e.Value != 3 {
		t.Errorf("third = %v, want 3", e.Value)
	}
}

func TestCloneListInto(t *testing.T) {
	dst := list.New()
	dst.PushBack("stale")
	src := list.New()
	src.PushBack("fresh")

	dolly.CloneListInto(dst, src)

	if dst.Len() != 1 || dst.Front().Value != "fresh" {
		t.Errorf("dst = %v (len %d)", dst.Front().Value, dst.Len())
	}
	if dolly.CloneList(nil) != nil {
		t.Error("CloneList(nil) should be nil")
	}
}
