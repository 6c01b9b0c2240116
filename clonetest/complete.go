package clonetest

import (
	"fmt"
	"reflect"
	"testing"
)

// Complete compares original with clone field by field, descending through
// embedded levels, and describes every field the clone dropped or still
// shares with the original. An empty result means the clone looks complete
// and independent.
//
// Value fields must be deep-equal. Pointer, slice, map and interface fields
// must agree on nil-ness and must not alias the original; slices and maps
// must also keep their length, and interface values their dynamic type.
// Tag a field clone:"-" to skip it or clone:"shared" to allow aliasing.
func Complete[T any](original, clone *T) []string {
	switch {
	case original == nil || clone == nil:
		return []string{"original and clone must both be non-nil"}
	case original == clone:
		return []string{"clone is the original"}
	}

	plan := planFor[T]()
	ov := reflect.ValueOf(original).Elem()
	cv := reflect.ValueOf(clone).Elem()

	var problems []string
	for _, f := range plan.fields {
		o := ov.FieldByIndex(f.index)
		c := cv.FieldByIndex(f.index)
		switch f.mode {
		case modeValue, modeShared:
			if !reflect.DeepEqual(o.Interface(), c.Interface()) {
				problems = append(problems, fmt.Sprintf("%s: clone has %v, original has %v", f.name, c.Interface(), o.Interface()))
			}
		case modeRef:
			problems = append(problems, checkRef(f.name, o, c)...)
		}
	}
	return problems
}

// AssertComplete fails tb for every problem Complete reports.
func AssertComplete[T any](tb testing.TB, original, clone *T) {
	tb.Helper()
	problems := Complete(original, clone)
	if len(problems) == 0 {
		return
	}
	name := planFor[T]().typeName
	for _, p := range problems {
		tb.Errorf("%s: %s", name, p)
	}
}

func checkRef(name string, o, c reflect.Value) []string {
	if o.IsNil() != c.IsNil() {
		if o.IsNil() {
			return []string{name + ": original is nil but clone is not"}
		}
		return []string{name + ": dropped, clone is nil"}
	}
	if o.IsNil() {
		return nil
	}

	switch o.Kind() {
	case reflect.Pointer:
		if o.Pointer() == c.Pointer() {
			return []string{name + ": clone shares the original pointer"}
		}
	case reflect.Interface:
		return checkElem(name, o, c)
	case reflect.Map:
		if o.Pointer() == c.Pointer() {
			return []string{name + ": clone shares the original map"}
		}
		if o.Len() != c.Len() {
			return []string{fmt.Sprintf("%s: clone has %d entries, original has %d", name, c.Len(), o.Len())}
		}
		if scalar(o.Type().Elem()) && !reflect.DeepEqual(o.Interface(), c.Interface()) {
			return []string{name + ": map contents differ"}
		}
	case reflect.Slice:
		if o.Len() != c.Len() {
			return []string{fmt.Sprintf("%s: clone has %d elements, original has %d", name, c.Len(), o.Len())}
		}
		if o.Len() > 0 && o.Pointer() == c.Pointer() {
			return []string{name + ": clone shares the original backing array"}
		}
		if scalar(o.Type().Elem()) {
			if !reflect.DeepEqual(o.Interface(), c.Interface()) {
				return []string{name + ": slice contents differ"}
			}
			return nil
		}
		var problems []string
		for i := 0; i < o.Len(); i++ {
			problems = append(problems, checkElem(fmt.Sprintf("%s[%d]", name, i), o.Index(i), c.Index(i))...)
		}
		return problems
	}
	return nil
}

// checkElem compares one element of a reference container or one interface value.
func checkElem(name string, o, c reflect.Value) []string {
	if o.Kind() == reflect.Interface {
		if o.IsNil() != c.IsNil() {
			return []string{name + ": nil-ness differs"}
		}
		if o.IsNil() {
			return nil
		}
		o, c = o.Elem(), c.Elem()
		if o.Type() != c.Type() {
			return []string{fmt.Sprintf("%s: clone is %s, original is %s", name, c.Type(), o.Type())}
		}
	}
	switch o.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice:
		if !o.IsNil() && o.Pointer() == c.Pointer() {
			return []string{name + ": clone shares the original element"}
		}
	}
	return nil
}

// scalar reports whether values of t hold no references.
func scalar(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool, reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128, reflect.String:
		return true
	default:
		return false
	}
}
