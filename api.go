// Package dolly provides a deep-clone protocol for object graphs.
//
// A deep clone shares no mutable state with its source: every reference-typed
// member that can clone itself is cloned, recursively, and everything else is
// reused as an immutable value.
//
// # Contracts
//
// Three contracts cooperate:
//
//   - Cloneable: non-generic capability, CloneAny() any. Lets heterogeneous
//     containers ([]Pet, map[string]Shape) clone without knowing concrete types.
//   - Cloner[T]: typed Clone() T. Value types may simply return the receiver.
//   - Template[T]: the two-phase template, Allocate() T then Populate(target T).
//     Clone drives it.
//
// # Templates and Embedding
//
// Hierarchies are built with struct embedding. Every level owns a Populate
// method for its own type and must call the embedded level first:
//
//	type Animal struct {
//	    Name string
//	}
//
//	func (a *Animal) Populate(target *Animal) {
//	    target.Name = a.Name
//	}
//
//	type Dog struct {
//	    Animal
//	    Toys []*Toy
//	}
//
//	func (d *Dog) Allocate() *Dog { return &Dog{} }
//
//	func (d *Dog) Populate(target *Dog) {
//	    d.Animal.Populate(&target.Animal)
//	    target.Toys = dolly.CloneSlice(d.Toys)
//	}
//
//	func (d *Dog) Clone() *Dog   { return dolly.Clone(d) }
//	func (d *Dog) CloneAny() any { return d.Clone() }
//
// Skipping the embedded call silently drops the ancestor's fields. The
// clonetest package can detect that in tests.
//
// # Containers
//
// Each container shape has a transform form (source in, new container out)
// and an in-place form (CloneXxxInto) that clears an existing destination and
// refills it. Every element, and every key where there are keys, goes through
// Value: cloned when it can clone itself, reused otherwise.
//
//   - []T: CloneSlice, CloneSliceInto
//   - iter.Seq, iter.Seq2: CloneSeq, CloneSeq2
//   - map[K]V: CloneMap, CloneMapInto
//   - *orderedmap.OrderedMap: CloneOrderedMap, CloneOrderedMapInto
//   - *sync.Map: CloneSyncMap, CloneSyncMapInto
//   - *Set: CloneSet, CloneSetInto (key projection reused)
//   - *Sorted: CloneSorted, CloneSortedInto (less func reused);
//     CloneBTreeInto for a bare *btree.BTreeG
//   - *Stack: CloneStack, CloneStackInto (pop order preserved)
//   - *Queue, *deque.Deque: CloneQueue, CloneDeque and their Into forms
//   - *list.List: CloneList, CloneListInto
//
// A nil source clones to nil. An empty source clones to a new empty container.
//
// # Cycles
//
// This package does not detect cycles. Pick a canonical direction (usually
// parent owns children), clone along it, then re-wire back-references onto
// the new graph. The graph subpackage automates this with a per-invocation
// identity table.
//
// # Faults
//
// Nil sources handed to Clone, nil destinations handed to an Into form, and
// clones of the wrong type are programmer errors. They panic with a
// *UsageError wrapping one of the sentinel errors in this package.
package dolly

// Cloneable is the non-generic clone capability.
//
// CloneAny returns an independent copy of the receiver with the receiver's
// concrete type, erased to any. It must not mutate the receiver.
type Cloneable interface {
	CloneAny() any
}

// Cloner allows types to provide typed deep copy logic.
//
// The Clone method must return a deep copy where modifications to the clone
// do not affect the original value. For simple value types with no pointers,
// slices, or maps, Clone can simply return the receiver value:
//
//	func (p Point) Clone() Point { return p }
type Cloner[T any] interface {
	Clone() T
}

// Template is the two-phase clone template driven by Clone.
type Template[T any] interface {
	// Allocate returns a new, empty instance of exactly T. It copies nothing.
	Allocate() T

	// Populate copies every field of the receiver into target.
	// Collection fields should be refilled with the Into forms so containers
	// configured by Allocate survive.
	Populate(target T)
}
