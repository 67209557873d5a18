package palette

import "github.com/dshills/palettekit/internal/color"

// The lookup cache maps each packed value present in the collection to
// its first-occurrence index. It has exactly two states: absent (nil),
// or fully built and consistent with the storage. Every transition
// happens here, under cacheMu, so concurrent searches never observe a
// partially updated map. Edits that cannot be patched incrementally
// discard the cache instead of attempting partial repair.

// cacheIndexOf returns the first-occurrence index of value, building
// the cache with a full scan if it is absent. Returns -1 when the value
// is not a key.
func (c *Collection) cacheIndexOf(value color.ARGB) int {
	c.cacheMu.Lock()
	defer c.cacheMu.Unlock()

	if c.lookup == nil {
		c.lookup = make(map[color.ARGB]int, len(c.items))
		for i, item := range c.items {
			if _, seen := c.lookup[item]; !seen {
				c.lookup[item] = i
			}
		}
	}

	index, ok := c.lookup[value]
	if !ok {
		return -1
	}
	return index
}

// cacheInvalidate discards the cache wholesale.
func (c *Collection) cacheInvalidate() {
	c.cacheMu.Lock()
	c.lookup = nil
	c.cacheMu.Unlock()
}

// cacheExtend records a tail append. Only a genuinely new key extends
// the cache in place; appending a duplicate discards it.
func (c *Collection) cacheExtend(value color.ARGB, index int) {
	c.cacheMu.Lock()
	defer c.cacheMu.Unlock()

	if c.lookup == nil {
		return
	}
	if _, exists := c.lookup[value]; exists {
		c.lookup = nil
		return
	}
	c.lookup[value] = index
}

// cacheRemove drops the removed value's key and shifts the entries that
// sat above the removed index down by one.
//
// The key is dropped even when a duplicate of the value remains in the
// sequence, so a later search reports the value absent until the cache
// rebuilds. Known limitation, kept deliberately.
func (c *Collection) cacheRemove(value color.ARGB, index int) {
	c.cacheMu.Lock()
	defer c.cacheMu.Unlock()

	if c.lookup == nil {
		return
	}
	delete(c.lookup, value)
	for k, i := range c.lookup {
		if i > index {
			c.lookup[k] = i - 1
		}
	}
}

// cacheReplace swaps the old key for the new one in a single critical
// section. The new key keeps an earlier first occurrence if it already
// has one; the old key is dropped outright, sharing cacheRemove's
// duplicate limitation.
func (c *Collection) cacheReplace(old, value color.ARGB, index int) {
	c.cacheMu.Lock()
	defer c.cacheMu.Unlock()

	if c.lookup == nil {
		return
	}
	delete(c.lookup, old)
	if existing, ok := c.lookup[value]; !ok || index < existing {
		c.lookup[value] = index
	}
}

// cacheState reports whether the cache is currently built. Test hook.
func (c *Collection) cacheState() bool {
	c.cacheMu.Lock()
	defer c.cacheMu.Unlock()
	return c.lookup != nil
}
