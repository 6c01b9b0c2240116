package dolly

import "container/list"

// CloneList clones every element of src into a new list in forward order.
func CloneList(src *list.List) *list.List {
	if src == nil {
		return nil
	}
	out := list.New()
	fillList(out, src)
	return out
}

// CloneListInto clears dst and refills it with clones of src.
func CloneListInto(dst, src *list.List) {
	if dst == nil {
		usageFault("CloneListInto", ErrNilDestination, dst)
	}
	if src == nil {
		usageFault("CloneListInto", ErrNilSource, src)
	}
	dst.Init()
	fillList(dst, src)
}

func fillList(dst, src *list.List) {
	for e := src.Front(); e != nil; e = e.Next() {
		dst.PushBack(Value(e.Value))
	}
}
