// Package graph clones cyclic object graphs.
//
// A Session maps every original node to its clone for the duration of one
// clone invocation. In allocates the target, registers it, and only then
// populates it, so a back-edge reached during population resolves to the
// clone under construction instead of recursing forever. Each node is
// allocated exactly once; cost is O(nodes + edges).
//
//	type Person struct {
//	    Name    string
//	    Team    *Team
//	    Friends []*Person
//	}
//
//	func (p *Person) Allocate() *Person { return &Person{} }
//
//	func (p *Person) PopulateIn(s *graph.Session, target *Person) {
//	    target.Name = p.Name
//	    target.Team = graph.In(s, p.Team)
//	    target.Friends = graph.Slice(s, p.Friends)
//	}
//
//	clone := graph.Clone(ctx, alice)
//
// Identity is pointer identity, so graph templates must be pointer types.
package graph

import (
	"context"
	"fmt"
	"reflect"
	"time"

	"github.com/zoobzio/dolly"
)

// Template is the two-phase template for graph members.
type Template[T any] interface {
	// Allocate returns a new, empty instance of exactly T.
	Allocate() T

	// PopulateIn copies the receiver into target, cloning references
	// through s so shared and cyclic nodes are cloned once.
	PopulateIn(s *Session, target T)
}

// Cloneable is the non-generic graph capability for polymorphic members.
type Cloneable interface {
	CloneIn(s *Session) any
}

// Session is the identity table of one clone invocation.
// A Session is not safe for concurrent use and must not be reused across
// independent clones.
type Session struct {
	clones map[any]any
	reused int
}

// NewSession returns an empty session.
func NewSession() *Session {
	return &Session{clones: make(map[any]any)}
}

// Nodes returns the number of distinct nodes cloned so far.
func (s *Session) Nodes() int { return len(s.clones) }

// Reused returns how many times an already cloned node was handed out again,
// that is the number of shared or back edges resolved by the table.
func (s *Session) Reused() int { return s.reused }

// Lookup returns the clone registered for original, if any.
func (s *Session) Lookup(original any) (any, bool) {
	if reflect.ValueOf(original).Kind() != reflect.Pointer {
		return nil, false
	}
	c, ok := s.clones[original]
	return c, ok
}

// Register records clone as the copy of original. Hand-written CloneIn
// implementations call it before populating so back-edges find the clone.
func (s *Session) Register(original, clone any) {
	mustPointer("Register", original)
	s.clones[original] = clone
}

// Clone clones src and everything reachable from it in a fresh session.
func Clone[T Template[T]](ctx context.Context, src T) T {
	if dolly.IsNil(src) {
		panic(dolly.NewUsageError(dolly.ErrNilSource, "graph.Clone", src))
	}
	typeName := fmt.Sprintf("%T", src)
	s := NewSession()
	start := time.Now()
	emitCloneStart(ctx, typeName)

	defer func() {
		if r := recover(); r != nil {
			emitCloneComplete(ctx, typeName, s.Nodes(), s.Reused(), time.Since(start), panicError(r))
			panic(r)
		}
	}()

	out := In(s, src)
	emitCloneComplete(ctx, typeName, s.Nodes(), s.Reused(), time.Since(start), nil)
	return out
}

// In clones src within s. A nil src stays nil. A src already cloned in s
// returns the existing clone.
func In[T Template[T]](s *Session, src T) T {
	if s == nil {
		panic(dolly.NewUsageError(ErrNilSession, "graph.In", src))
	}
	if dolly.IsNil(src) {
		return src
	}
	return in[T](s, src)
}

func in[T any](s *Session, tpl Template[T]) T {
	key := any(tpl)
	mustPointer("graph.In", key)
	if c, ok := s.clones[key]; ok {
		s.reused++
		return c.(T)
	}
	target := tpl.Allocate()
	if dolly.IsNil(target) {
		panic(dolly.NewUsageError(dolly.ErrNilTarget, "Allocate", tpl))
	}
	s.clones[key] = target
	tpl.PopulateIn(s, target)
	return target
}

// Value is the session-aware clone-or-passthrough rule. Graph templates and
// graph Cloneables are memoized in s; everything else falls back to
// dolly.Value.
func Value[T any](s *Session, v T) T {
	if s == nil {
		panic(dolly.NewUsageError(ErrNilSession, "graph.Value", v))
	}
	if dolly.IsNil(v) {
		return v
	}
	switch c := any(v).(type) {
	case Template[T]:
		return in[T](s, c)
	case Cloneable:
		if prior, ok := s.Lookup(v); ok {
			s.reused++
			return prior.(T)
		}
		out, ok := c.CloneIn(s).(T)
		if !ok {
			panic(dolly.NewUsageError(dolly.ErrTypeMismatch, "CloneIn", v))
		}
		return out
	default:
		return dolly.Value(v)
	}
}

func mustPointer(op string, v any) {
	if reflect.ValueOf(v).Kind() != reflect.Pointer {
		panic(dolly.NewUsageError(ErrNotPointer, op, v))
	}
}

func panicError(r any) error {
	if err, ok := r.(error); ok {
		return err
	}
	return fmt.Errorf("panic: %v", r)
}
