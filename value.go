package dolly

// Value is the clone-or-passthrough rule applied to every element and key.
//
// Resolution order:
//
//   - nil (including typed nil): returned as is
//   - Cloner[T]: Clone()
//   - Template[T]: two-phase template
//   - Cloneable: CloneAny(), asserted back to T
//   - anything else: reused unchanged
//
// Values that cannot clone themselves are treated as immutable. A Cloneable
// whose CloneAny result is not a T panics with ErrTypeMismatch.
func Value[T any](v T) T {
	if isNil(v) {
		return v
	}
	switch c := any(v).(type) {
	case Cloner[T]:
		return c.Clone()
	case Template[T]:
		return cloneTemplate[T](c)
	case Cloneable:
		out, ok := c.CloneAny().(T)
		if !ok {
			usageFault("CloneAny", ErrTypeMismatch, v)
		}
		return out
	default:
		return v
	}
}

// IsNil reports whether v is nil, including typed nil pointers, maps, slices,
// funcs, channels and interfaces.
func IsNil(v any) bool {
	return isNil(v)
}
