package dolly

import "reflect"

// Clone runs the two-phase template on src: allocate an empty T, populate it,
// return it. The target is not visible to anyone until population completes.
// A nil src panics with ErrNilSource; use Value to propagate nil instead.
func Clone[T Template[T]](src T) T {
	if isNil(src) {
		usageFault("Clone", ErrNilSource, src)
	}
	return cloneTemplate[T](src)
}

// CloneInto populates an existing dst from src without allocating.
func CloneInto[T Template[T]](dst, src T) {
	if isNil(src) {
		usageFault("CloneInto", ErrNilSource, src)
	}
	if isNil(dst) {
		usageFault("CloneInto", ErrNilDestination, dst)
	}
	src.Populate(dst)
}

// ClonePtr clones the value behind p. A nil pointer stays nil.
func ClonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := Value(*p)
	return &v
}

func cloneTemplate[T any](tpl Template[T]) T {
	target := tpl.Allocate()
	if isNil(target) {
		usageFault("Allocate", ErrNilTarget, tpl)
	}
	tpl.Populate(target)
	return target
}

// isNil reports whether v is nil or a typed nil of a nillable kind.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}
