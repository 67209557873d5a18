package palette

import (
	"fmt"

	"github.com/dshills/palettekit/internal/color"
	"github.com/dshills/palettekit/internal/event"
)

// SortOrder selects the comparison applied by Sort.
type SortOrder int

const (
	// SortOrderBrightness orders by ascending HSL lightness.
	SortOrderBrightness SortOrder = iota

	// SortOrderHue orders by ascending HSV hue.
	SortOrderHue

	// SortOrderValue orders by ascending packed 32-bit value.
	SortOrderValue
)

// String returns a human-readable order name.
func (o SortOrder) String() string {
	switch o {
	case SortOrderBrightness:
		return "brightness"
	case SortOrderHue:
		return "hue"
	case SortOrderValue:
		return "value"
	default:
		return "unknown"
	}
}

// ParseSortOrder parses an order name as used by CLI flags and config.
func ParseSortOrder(s string) (SortOrder, error) {
	switch s {
	case "brightness":
		return SortOrderBrightness, nil
	case "hue":
		return SortOrderHue, nil
	case "value":
		return SortOrderValue, nil
	default:
		return 0, fmt.Errorf("%w: unknown sort order %q", ErrInvalidArgument, s)
	}
}

// Sort reorders the collection in place using the chosen comparison.
// The sort is not stable. Afterwards the lookup cache is discarded and
// the reorder is replayed to subscribers as one cleared notification
// followed by an inserted notification per color in final order.
func (c *Collection) Sort(order SortOrder) error {
	cmp, err := comparatorFor(order)
	if err != nil {
		return err
	}

	quicksort(c.items, 0, len(c.items)-1, cmp)
	c.cacheInvalidate()

	c.emit(event.KindCleared, event.Change{Index: event.ClearedIndex, Value: color.Empty})
	for i, v := range c.items {
		c.emit(event.KindInserted, event.Change{Index: i, Value: v})
	}
	return nil
}

// comparatorFor returns the three-way comparison for an order.
func comparatorFor(order SortOrder) (func(a, b color.ARGB) int, error) {
	switch order {
	case SortOrderBrightness:
		return compareBrightness, nil
	case SortOrderHue:
		return compareHue, nil
	case SortOrderValue:
		return compareValue, nil
	default:
		return nil, fmt.Errorf("%w: unrecognized sort order %d", ErrInvalidArgument, order)
	}
}

func compareBrightness(a, b color.ARGB) int {
	return compareFloat(a.Brightness(), b.Brightness())
}

func compareHue(a, b color.ARGB) int {
	return compareFloat(a.Hue(), b.Hue())
}

func compareValue(a, b color.ARGB) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// quicksort is an in-place partition-exchange sort: middle-element
// pivot, two-pointer Hoare partitioning with swap on crossing, recursing
// into both partitions.
func quicksort(items []color.ARGB, lo, hi int, cmp func(a, b color.ARGB) int) {
	if lo >= hi {
		return
	}

	pivot := items[lo+(hi-lo)/2]
	i, j := lo, hi
	for i <= j {
		for cmp(items[i], pivot) < 0 {
			i++
		}
		for cmp(items[j], pivot) > 0 {
			j--
		}
		if i <= j {
			items[i], items[j] = items[j], items[i]
			i++
			j--
		}
	}

	quicksort(items, lo, j, cmp)
	quicksort(items, i, hi, cmp)
}
