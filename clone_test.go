package dolly_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/zoobzio/dolly"
	"github.com/zoobzio/dolly/clonetest"
)

// expectUsage runs fn and checks it panics with a *UsageError wrapping want.
func expectUsage(t *testing.T, want error, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Fatalf("expected panic wrapping %v", want)
		}
		err, ok := r.(error)
		if !ok {
			t.Fatalf("recovered %T (%v), want error", r, r)
		}
		var usage *dolly.UsageError
		if !errors.As(err, &usage) {
			t.Fatalf("recovered %v, want *UsageError", err)
		}
		if !errors.Is(err, want) {
			t.Errorf("recovered %v, want %v", err, want)
		}
	}()
	fn()
}

// --- Simple template ---

type record struct {
	ID   int
	Name string
}

func (r *record) Allocate() *record { return &record{} }

func (r *record) Populate(target *record) {
	target.ID = r.ID
	target.Name = r.Name
}

func TestClone_IndependentCopy(t *testing.T) {
	original := &record{ID: 1, Name: "Test"}

	clone := dolly.Clone(original)

	if clone == original {
		t.Fatal("Clone() returned the receiver")
	}
	if diff := cmp.Diff(original, clone); diff != "" {
		t.Errorf("Clone() mismatch (-original +clone):\n%s", diff)
	}

	clone.Name = "Modified"
	if original.Name != "Test" {
		t.Errorf("original.Name = %q after mutating clone, want %q", original.Name, "Test")
	}
}

func TestClone_NilSource(t *testing.T) {
	expectUsage(t, dolly.ErrNilSource, func() {
		dolly.Clone[*record](nil)
	})
}

type nilAllocator struct{ N int }

func (n *nilAllocator) Allocate() *nilAllocator  { return nil }
func (n *nilAllocator) Populate(_ *nilAllocator) {}

func TestClone_NilAllocate(t *testing.T) {
	expectUsage(t, dolly.ErrNilTarget, func() {
		dolly.Clone(&nilAllocator{N: 1})
	})
}

func TestCloneInto(t *testing.T) {
	original := &record{ID: 7, Name: "seven"}
	target := &record{ID: 99, Name: "stale"}

	dolly.CloneInto(target, original)

	if diff := cmp.Diff(original, target); diff != "" {
		t.Errorf("CloneInto() mismatch (-original +target):\n%s", diff)
	}
}

func TestCloneInto_Nil(t *testing.T) {
	t.Run("source", func(t *testing.T) {
		expectUsage(t, dolly.ErrNilSource, func() {
			dolly.CloneInto(&record{}, nil)
		})
	})
	t.Run("destination", func(t *testing.T) {
		expectUsage(t, dolly.ErrNilDestination, func() {
			dolly.CloneInto(nil, &record{})
		})
	})
}

// --- Hierarchies ---

func TestClone_DogHierarchy(t *testing.T) {
	original := clonetest.SampleDog()

	clone := original.Clone()

	clonetest.AssertComplete(t, original, clone)
	if clone.Name != "Rex" || clone.Age != 5 {
		t.Errorf("Animal level = (%q, %d), want (Rex, 5)", clone.Name, clone.Age)
	}
	if clone.Legs != 4 || clone.FurColor != "Golden" {
		t.Errorf("Mammal level = (%d, %q), want (4, Golden)", clone.Legs, clone.FurColor)
	}
	if clone.Breed != "Labrador" || !clone.Trained {
		t.Errorf("Dog level = (%q, %v), want (Labrador, true)", clone.Breed, clone.Trained)
	}
}

func TestClone_DogModifyClone(t *testing.T) {
	original := clonetest.SampleDog()
	clone := original.Clone()

	clone.Name = "Max"
	clone.Legs = 3
	clone.Breed = "Poodle"
	clone.Tags[0] = "grumpy"
	clone.Owner.Name = "Bob"

	if original.Name != "Rex" || original.Legs != 4 || original.Breed != "Labrador" {
		t.Errorf("original changed: %+v", original)
	}
	if original.Tags[0] != "friendly" {
		t.Errorf("original.Tags[0] = %q, want friendly", original.Tags[0])
	}
	if original.Owner.Name != "Alice" {
		t.Errorf("original.Owner.Name = %q, want Alice", original.Owner.Name)
	}
}

func TestClone_CatHierarchy(t *testing.T) {
	original := clonetest.SampleCat()

	clone := original.Clone()

	clonetest.AssertComplete(t, original, clone)
	want := clonetest.SampleCat()
	if diff := cmp.Diff(want, clone); diff != "" {
		t.Errorf("Clone() mismatch (-want +got):\n%s", diff)
	}
}

func TestClone_NilReferenceField(t *testing.T) {
	original := clonetest.SampleDog()
	original.Owner = nil
	original.Tags = nil

	clone := original.Clone()

	if clone.Owner != nil {
		t.Error("nil Owner should clone to nil")
	}
	if clone.Tags != nil {
		t.Error("nil Tags should clone to nil")
	}
}

func TestClone_NilContainerFields(t *testing.T) {
	t.Run("shelter", func(t *testing.T) {
		original := &clonetest.Shelter{Name: "closed"}

		clone := original.Clone()

		if clone.Animals != nil {
			t.Errorf("Animals = %#v, want nil", clone.Animals)
		}
		clonetest.AssertComplete(t, original, clone)
	})

	t.Run("drawing", func(t *testing.T) {
		original := &clonetest.Drawing{}

		clone := original.Clone()

		if clone.Shapes != nil || clone.ByName != nil {
			t.Errorf("clone = %#v, want nil Shapes and ByName", clone)
		}
		clonetest.AssertComplete(t, original, clone)
	})

	t.Run("drawing with only a map", func(t *testing.T) {
		original := &clonetest.Drawing{ByName: map[string]clonetest.Figure{"c": &clonetest.Circle{Radius: 1}}}

		clone := original.Clone()

		if clone.Shapes != nil || len(clone.ByName) != 1 {
			t.Errorf("clone = %#v", clone)
		}
		clonetest.AssertComplete(t, original, clone)
	})

	t.Run("leaf node", func(t *testing.T) {
		original := &clonetest.Node{ID: 1, Name: "leaf"}

		clone := original.Clone()

		if clone.Children != nil {
			t.Errorf("Children = %#v, want nil", clone.Children)
		}
	})
}

func TestCloneAny_PreservesType(t *testing.T) {
	var c dolly.Cloneable = clonetest.SampleCat()

	out := c.CloneAny()

	cat, ok := out.(*clonetest.Cat)
	if !ok {
		t.Fatalf("CloneAny() returned %T, want *clonetest.Cat", out)
	}
	if cat == c {
		t.Error("CloneAny() returned the receiver")
	}
	if cat.FavoriteToy != "Mouse" {
		t.Errorf("FavoriteToy = %q, want Mouse", cat.FavoriteToy)
	}
}

func TestClonePtr(t *testing.T) {
	if got := dolly.ClonePtr[int](nil); got != nil {
		t.Errorf("ClonePtr(nil) = %v, want nil", got)
	}

	n := 42
	got := dolly.ClonePtr(&n)
	if got == &n || *got != 42 {
		t.Errorf("ClonePtr(&42) = %p (%d), want distinct pointer to 42", got, *got)
	}

	owner := &clonetest.Owner{Name: "Alice"}
	ptr := &owner
	cloned := dolly.ClonePtr(ptr)
	if *cloned == owner {
		t.Error("ClonePtr should clone the Cloner behind the pointer")
	}
}
