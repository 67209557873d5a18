package event

import "github.com/dshills/palettekit/internal/color"

// Kind identifies the category of a change notification.
// Kinds use dot notation to keep names self-describing in logs.
type Kind string

const (
	// KindInserted fires after a color is inserted at an index.
	KindInserted Kind = "palette.inserted"

	// KindRemoved fires after a color is removed from an index.
	KindRemoved Kind = "palette.removed"

	// KindReplaced fires after a color at an index is replaced with a
	// different value. Replacing a color with an equal value fires nothing.
	KindReplaced Kind = "palette.replaced"

	// KindCleared fires after the whole collection is emptied.
	// Its Change carries ClearedIndex and the empty color value.
	KindCleared Kind = "palette.cleared"

	// KindChanged fires after every structural edit, following the
	// specific kind for that edit.
	KindChanged Kind = "palette.changed"
)

// Valid reports whether k is one of the defined notification kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindInserted, KindRemoved, KindReplaced, KindCleared, KindChanged:
		return true
	default:
		return false
	}
}

// String returns the kind as a string.
func (k Kind) String() string {
	return string(k)
}

// ClearedIndex is the index carried by whole-collection notifications.
const ClearedIndex = -1

// Change describes a single edit to a collection. It is a descriptive
// record: Index is the position the edit applied to (ClearedIndex for
// whole-collection edits) and Value is the color involved.
type Change struct {
	Index int
	Value color.ARGB
}

// Handler is the interface for change subscribers.
type Handler interface {
	// Handle processes one change notification.
	Handle(ch Change) error
}

// HandlerFunc is a function adapter for Handler.
type HandlerFunc func(ch Change) error

// Handle implements the Handler interface.
func (f HandlerFunc) Handle(ch Change) error {
	return f(ch)
}

// FilterFunc is a predicate for filtering changes.
// Return true to allow delivery, false to skip it.
type FilterFunc func(ch Change) bool

// Stats contains notifier counters.
type Stats struct {
	// Published is the total number of notifications published.
	Published uint64

	// Delivered is the number of handler executions that succeeded.
	Delivered uint64

	// HandlerErrors is the number of handlers that returned errors.
	HandlerErrors uint64

	// HandlerPanics is the number of handlers that panicked.
	HandlerPanics uint64

	// ActiveSubscribers is the current number of active subscriptions.
	ActiveSubscribers int
}
