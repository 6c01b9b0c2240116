package clonetest

import (
	"container/list"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
	"github.com/zoobzio/dolly"
)

// Item is a cloneable leaf stored in every container of a Catalog.
type Item struct {
	SKU   string
	Qty   int
	Notes []string
}

// Clone implements Cloner[*Item].
func (i *Item) Clone() *Item {
	return &Item{SKU: i.SKU, Qty: i.Qty, Notes: dolly.CloneSlice(i.Notes)}
}

// CloneAny implements Cloneable.
func (i *Item) CloneAny() any { return i.Clone() }

// ByQty orders items by quantity, then SKU.
func ByQty(a, b *Item) bool {
	if a.Qty != b.Qty {
		return a.Qty < b.Qty
	}
	return a.SKU < b.SKU
}

// Catalog owns one container of every supported shape. Allocate configures
// each container (less func, key projection); Populate refills them in place
// so that configuration survives the clone.
type Catalog struct {
	Items   []*Item
	BySKU   map[string]*Item
	Ordered *orderedmap.OrderedMap[string, *Item]
	Labels  *dolly.Set[string, string]
	Ranked  *dolly.Sorted[*Item]
	Undo    *dolly.Stack[*Item]
	Pending *dolly.Queue[*Item]
	History *list.List
}

// NewCatalog returns an empty, fully configured catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		Items:   []*Item{},
		BySKU:   map[string]*Item{},
		Ordered: orderedmap.New[string, *Item](),
		Labels:  dolly.NewSet[string](strings.ToLower),
		Ranked:  dolly.NewSorted[*Item](4, ByQty),
		Undo:    dolly.NewStack[*Item](),
		Pending: dolly.NewQueue[*Item](),
		History: list.New(),
	}
}

// Put stores item in every container.
func (c *Catalog) Put(item *Item) {
	c.Items = append(c.Items, item)
	c.BySKU[item.SKU] = item
	c.Ordered.Set(item.SKU, item)
	c.Labels.Add(item.SKU)
	c.Ranked.ReplaceOrInsert(item)
	c.Undo.Push(item)
	c.Pending.Enqueue(item)
	c.History.PushBack(item)
}

// Allocate implements Template[*Catalog].
func (c *Catalog) Allocate() *Catalog { return NewCatalog() }

// Populate implements Template[*Catalog].
func (c *Catalog) Populate(target *Catalog) {
	dolly.CloneSliceInto(&target.Items, c.Items)
	dolly.CloneMapInto(target.BySKU, c.BySKU)
	dolly.CloneOrderedMapInto(target.Ordered, c.Ordered)
	dolly.CloneSetInto(target.Labels, c.Labels)
	dolly.CloneSortedInto(target.Ranked, c.Ranked)
	dolly.CloneStackInto(target.Undo, c.Undo)
	dolly.CloneQueueInto(target.Pending, c.Pending)
	dolly.CloneListInto(target.History, c.History)
}

// Clone returns an independent copy of c.
func (c *Catalog) Clone() *Catalog { return dolly.Clone(c) }

// CloneAny implements Cloneable.
func (c *Catalog) CloneAny() any { return c.Clone() }

// SampleCatalog returns a catalog holding three items.
func SampleCatalog() *Catalog {
	c := NewCatalog()
	c.Put(&Item{SKU: "B-200", Qty: 7, Notes: []string{"fragile"}})
	c.Put(&Item{SKU: "A-100", Qty: 3})
	c.Put(&Item{SKU: "C-300", Qty: 12, Notes: []string{}})
	return c
}
