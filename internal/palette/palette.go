package palette

import (
	stdcolor "image/color"
	"sync"

	"github.com/dshills/palettekit/internal/color"
	"github.com/dshills/palettekit/internal/event"
)

// Collection is an ordered, duplicate-permitting sequence of packed ARGB
// color values. Create collections with New or one of the From
// constructors; the zero value is not usable.
//
// Mutations are single-writer: callers mutating a collection from
// multiple goroutines must serialize those calls. Value-keyed searches
// are safe to run concurrently with each other.
type Collection struct {
	items []color.ARGB

	// cacheMu guards every lookup access beyond a nil check.
	cacheMu sync.Mutex
	lookup  map[color.ARGB]int

	notifier *event.Notifier
}

// New creates an empty collection.
func New() *Collection {
	return &Collection{
		notifier: event.NewNotifier(),
	}
}

// FromARGB creates a collection from raw packed 32-bit values,
// preserving order.
func FromARGB(values []uint32) *Collection {
	c := New()
	c.items = make([]color.ARGB, len(values))
	for i, v := range values {
		c.items[i] = color.ARGB(v)
	}
	return c
}

// FromColorTable creates a collection by copying every entry out of an
// indexed color table.
func FromColorTable(table stdcolor.Palette) *Collection {
	c := New()
	c.items = make([]color.ARGB, len(table))
	for i, entry := range table {
		c.items[i] = color.FromColor(entry)
	}
	return c
}

// Notifier returns the collection's change notifier. Subscribe to it to
// observe structural edits.
func (c *Collection) Notifier() *event.Notifier {
	return c.notifier
}

// Len returns the number of colors in the collection.
func (c *Collection) Len() int {
	return len(c.items)
}

// At returns the color at index.
func (c *Collection) At(index int) (color.ARGB, error) {
	if index < 0 || index >= len(c.items) {
		return color.Empty, indexError(index, len(c.items))
	}
	return c.items[index], nil
}

// Values returns a copy of the collection's colors in order.
func (c *Collection) Values() []color.ARGB {
	out := make([]color.ARGB, len(c.items))
	copy(out, c.items)
	return out
}

// Insert inserts a color at index, shifting later colors up by one.
// Index may equal Len to append. A tail insert of a value not already
// present extends the lookup cache in place; any other insert discards it.
func (c *Collection) Insert(index int, value color.ARGB) error {
	length := len(c.items)
	if index < 0 || index > length {
		return indexError(index, length)
	}

	tail := index == length
	c.items = append(c.items, color.Empty)
	copy(c.items[index+1:], c.items[index:])
	c.items[index] = value

	if tail {
		c.cacheExtend(value, index)
	} else {
		c.cacheInvalidate()
	}

	c.emit(event.KindInserted, event.Change{Index: index, Value: value})
	return nil
}

// Add appends a color and returns its index.
func (c *Collection) Add(value color.ARGB) int {
	index := len(c.items)
	_ = c.Insert(index, value) // tail insert cannot fail
	return index
}

// AddRange appends each value in order. The batch is not atomic: each
// append publishes its own notifications as it lands.
func (c *Collection) AddRange(values []color.ARGB) {
	for _, v := range values {
		c.Add(v)
	}
}

// RemoveAt removes the color at index, shifting later colors down by one.
//
// If the removed value has another duplicate in the sequence, its key is
// still dropped from the lookup cache; IndexOf then reports -1 for that
// value until some other edit forces a rebuild. This mirrors the original
// behavior and is pinned by tests as current behavior, not contract.
func (c *Collection) RemoveAt(index int) error {
	if index < 0 || index >= len(c.items) {
		return indexError(index, len(c.items))
	}

	value := c.items[index]
	c.items = append(c.items[:index], c.items[index+1:]...)
	c.cacheRemove(value, index)

	c.emit(event.KindRemoved, event.Change{Index: index, Value: value})
	return nil
}

// SetAt replaces the color at index. Replacing a color with an equal
// packed value is a no-op and publishes nothing.
func (c *Collection) SetAt(index int, value color.ARGB) error {
	if index < 0 || index >= len(c.items) {
		return indexError(index, len(c.items))
	}
	old := c.items[index]
	if old == value {
		return nil
	}

	c.items[index] = value
	c.cacheReplace(old, value, index)

	c.emit(event.KindReplaced, event.Change{Index: index, Value: value})
	return nil
}

// Clear removes every color and discards the lookup cache. It publishes
// a single cleared notification carrying index -1 and the empty color.
func (c *Collection) Clear() {
	c.items = c.items[:0]
	c.cacheInvalidate()

	c.emit(event.KindCleared, event.Change{Index: event.ClearedIndex, Value: color.Empty})
}

// IndexOf returns the first-occurrence index of the exact packed value,
// or -1 if absent. The first call after a structural edit pays an O(n)
// scan to build the lookup cache; later calls are O(1).
func (c *Collection) IndexOf(value color.ARGB) int {
	return c.cacheIndexOf(value)
}

// IndexOfIgnoreAlpha returns the first index whose color matches value
// on the three non-alpha channels, or -1 if none does. This is a plain
// linear scan: it neither consults nor builds the lookup cache, and it
// is markedly slower than IndexOf on large collections.
func (c *Collection) IndexOfIgnoreAlpha(value color.ARGB) int {
	for i, item := range c.items {
		if item.EqualRGB(value) {
			return i
		}
	}
	return -1
}

// Contains reports whether the exact packed value is present.
func (c *Collection) Contains(value color.ARGB) bool {
	return c.IndexOf(value) >= 0
}

// Clone returns a deep value copy preserving order. The clone has its
// own notifier with no subscribers and rebuilds its lookup lazily.
func (c *Collection) Clone() *Collection {
	clone := New()
	clone.items = make([]color.ARGB, len(c.items))
	copy(clone.items, c.items)
	return clone
}

// Equal reports whether both collections hold the same packed values in
// the same order. Identity, lookup state, and subscribers are irrelevant.
func (c *Collection) Equal(other *Collection) bool {
	if c == other {
		return true
	}
	if other == nil || len(c.items) != len(other.items) {
		return false
	}
	for i, v := range c.items {
		if v != other.items[i] {
			return false
		}
	}
	return true
}

// Hash returns an order-insensitive XOR fold of each element's
// structural hash. Collections equal under Equal always hash equally;
// so do permutations of the same multiset of values.
func (c *Collection) Hash() uint32 {
	var fold uint32
	for _, v := range c.items {
		fold ^= mix32(uint32(v))
	}
	return fold
}

// mix32 diffuses the bits of a packed value so that near-identical
// colors do not cancel under the XOR fold.
func mix32(v uint32) uint32 {
	v ^= v >> 16
	v *= 0x45d9f3b
	v ^= v >> 16
	v *= 0x45d9f3b
	v ^= v >> 16
	return v
}

// emit publishes the specific kind for an edit, then the generic
// changed kind with the same record.
func (c *Collection) emit(kind event.Kind, ch event.Change) {
	c.notifier.Publish(kind, ch)
	c.notifier.Publish(event.KindChanged, ch)
}
