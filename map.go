package dolly

import (
	"sync"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// CloneMap clones every key and value of src into a new map.
// Keys go through Value too, since a key may itself be a reference object.
// A nil map stays nil.
func CloneMap[K comparable, V any](src map[K]V) map[K]V {
	if src == nil {
		return nil
	}
	out := make(map[K]V, len(src))
	for k, v := range src {
		out[Value(k)] = Value(v)
	}
	return out
}

// CloneMapInto clears dst and refills it with clones of src.
func CloneMapInto[K comparable, V any](dst, src map[K]V) {
	if dst == nil {
		usageFault("CloneMapInto", ErrNilDestination, dst)
	}
	if src == nil {
		usageFault("CloneMapInto", ErrNilSource, src)
	}
	clear(dst)
	for k, v := range src {
		dst[Value(k)] = Value(v)
	}
}

// CloneOrderedMap clones src into a new ordered map, preserving insertion order.
func CloneOrderedMap[K comparable, V any](src *orderedmap.OrderedMap[K, V]) *orderedmap.OrderedMap[K, V] {
	if src == nil {
		return nil
	}
	out := orderedmap.New[K, V]()
	fillOrderedMap(out, src)
	return out
}

// CloneOrderedMapInto clears dst and refills it with clones of src in src's order.
func CloneOrderedMapInto[K comparable, V any](dst, src *orderedmap.OrderedMap[K, V]) {
	if dst == nil {
		usageFault("CloneOrderedMapInto", ErrNilDestination, dst)
	}
	if src == nil {
		usageFault("CloneOrderedMapInto", ErrNilSource, src)
	}
	keys := make([]K, 0, dst.Len())
	for pair := dst.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	for _, k := range keys {
		dst.Delete(k)
	}
	fillOrderedMap(dst, src)
}

func fillOrderedMap[K comparable, V any](dst, src *orderedmap.OrderedMap[K, V]) {
	for pair := src.Oldest(); pair != nil; pair = pair.Next() {
		dst.Set(Value(pair.Key), Value(pair.Value))
	}
}

// CloneSyncMap clones every entry of src into a new sync.Map.
// The source is only read, through Range, so it may be in concurrent use;
// entries written during the clone may or may not be included.
func CloneSyncMap(src *sync.Map) *sync.Map {
	if src == nil {
		return nil
	}
	out := new(sync.Map)
	fillSyncMap(out, src)
	return out
}

// CloneSyncMapInto clears dst and refills it with clones of src.
func CloneSyncMapInto(dst, src *sync.Map) {
	if dst == nil {
		usageFault("CloneSyncMapInto", ErrNilDestination, dst)
	}
	if src == nil {
		usageFault("CloneSyncMapInto", ErrNilSource, src)
	}
	dst.Clear()
	fillSyncMap(dst, src)
}

func fillSyncMap(dst, src *sync.Map) {
	src.Range(func(k, v any) bool {
		dst.Store(Value(k), Value(v))
		return true
	})
}
