package clonetest

import (
	"reflect"
	"sync"

	"github.com/zoobzio/sentinel"
)

func init() {
	sentinel.Tag("clone")
}

// fieldMode says how a field is compared between original and clone.
type fieldMode int

const (
	modeValue  fieldMode = iota // deep-equal values
	modeRef                     // same nil-ness, distinct identity
	modeShared                  // deep-equal, aliasing allowed
	modeSkip                    // not compared
)

// fieldPlan describes how to check a single field.
type fieldPlan struct {
	index []int  // reflect.Value.FieldByIndex access path
	name  string // dotted field name for messages
	mode  fieldMode
}

// typePlan holds the flattened field plans of one struct type.
type typePlan struct {
	typeName string
	fields   []fieldPlan
}

var (
	plans   = make(map[reflect.Type]*typePlan)
	plansMu sync.RWMutex
)

// planFor returns the cached plan for T or builds a new one.
func planFor[T any]() *typePlan {
	typ := reflect.TypeFor[T]()

	// Fast path: read-lock cache check
	plansMu.RLock()
	if cached, ok := plans[typ]; ok {
		plansMu.RUnlock()
		return cached
	}
	plansMu.RUnlock()

	// Slow path: build and cache with write-lock
	plansMu.Lock()
	defer plansMu.Unlock()

	// Double-check pattern
	if cached, ok := plans[typ]; ok {
		return cached
	}

	meta := sentinel.Scan[T]()
	plan := &typePlan{typeName: meta.TypeName}
	if plan.typeName == "" {
		plan.typeName = typ.String()
	}
	buildPlanRecursive(plan, typ, metadataFor(typ, &meta), nil, "")
	plans[typ] = plan
	return plan
}

// buildPlanRecursive flattens fields, descending into embedded levels and
// nested struct values.
func buildPlanRecursive(plan *typePlan, rt reflect.Type, meta sentinel.Metadata, parentIndex []int, namePrefix string) {
	for _, field := range meta.Fields {
		sf := rt.FieldByIndex(field.Index)
		if !sf.IsExported() {
			continue
		}
		fullIndex := append(append([]int{}, parentIndex...), field.Index...)
		fullName := field.Name
		if namePrefix != "" {
			fullName = namePrefix + "." + field.Name
		}

		switch sf.Tag.Get("clone") {
		case "-":
			continue
		case "shared":
			plan.fields = append(plan.fields, fieldPlan{index: fullIndex, name: fullName, mode: modeShared})
			continue
		}

		mode, nested := classify(sf.Type)
		switch {
		case mode == modeSkip:
			continue
		case nested:
			if inner := metadataFor(sf.Type, nil); len(inner.Fields) > 0 {
				buildPlanRecursive(plan, sf.Type, inner, fullIndex, fullName)
				continue
			}
		}
		plan.fields = append(plan.fields, fieldPlan{index: fullIndex, name: fullName, mode: mode})
	}
}

// classify maps a field type to its comparison mode. Struct values report
// nested so their own fields are checked one by one.
func classify(t reflect.Type) (fieldMode, bool) {
	switch t.Kind() {
	case reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return modeSkip, false
	case reflect.Pointer, reflect.Slice, reflect.Map, reflect.Interface:
		return modeRef, false
	case reflect.Struct:
		return modeValue, true
	default:
		return modeValue, false
	}
}

// metadataFor returns sentinel metadata for rt when it covers every exported
// direct field, otherwise the direct fields read from reflection.
func metadataFor(rt reflect.Type, scanned *sentinel.Metadata) sentinel.Metadata {
	if scanned == nil {
		if meta, ok := sentinel.Lookup(rt.String()); ok {
			scanned = &meta
		}
	}
	if scanned != nil && covers(rt, *scanned) {
		return *scanned
	}
	return directFields(rt)
}

// covers reports whether meta names every exported direct field of rt.
func covers(rt reflect.Type, meta sentinel.Metadata) bool {
	names := make(map[string]bool, len(meta.Fields))
	for _, f := range meta.Fields {
		if len(f.Index) == 0 || rt.FieldByIndex(f.Index).Name != f.Name {
			return false
		}
		names[f.Name] = true
	}
	for i := 0; i < rt.NumField(); i++ {
		if sf := rt.Field(i); sf.IsExported() && !names[sf.Name] {
			return false
		}
	}
	return true
}

// directFields lists the exported direct fields of rt. Promoted fields are
// reached through their embedded struct instead.
func directFields(rt reflect.Type) sentinel.Metadata {
	meta := sentinel.Metadata{TypeName: rt.Name(), PackageName: rt.PkgPath()}
	for _, sf := range reflect.VisibleFields(rt) {
		if len(sf.Index) != 1 || !sf.IsExported() {
			continue
		}
		meta.Fields = append(meta.Fields, sentinel.FieldMetadata{
			Name:        sf.Name,
			Type:        sf.Type.String(),
			ReflectType: sf.Type,
			Index:       sf.Index,
		})
	}
	return meta
}

// resetPlans clears the plan cache. Used for test isolation.
func resetPlans() {
	plansMu.Lock()
	defer plansMu.Unlock()
	plans = make(map[reflect.Type]*typePlan)
}
