// Package palette provides the core color collection: an ordered,
// duplicate-permitting sequence of packed ARGB values with value-based
// equality, a lazily built first-occurrence lookup cache, fine-grained
// change notification, and pluggable file codecs.
//
// # Collection
//
// A Collection preserves insertion order except under explicit Sort.
// Mutations publish change notifications through the collection's
// Notifier: the specific kind (inserted, removed, replaced, cleared)
// first, then the generic changed kind.
//
// # Lookup cache
//
// IndexOf is O(1) amortized: the first value-keyed search builds a map
// from packed value to first-occurrence index, which subsequent searches
// reuse. Structural edits that cannot be patched incrementally (clear,
// non-tail insert, sort) discard the cache wholesale; it rebuilds on the
// next search. All cache access is guarded by one mutex, so concurrent
// searches always observe a fully built or fully absent cache.
//
// The ordered storage itself is not locked: callers mutating a
// collection from multiple goroutines must serialize those mutations.
// Concurrent read-only use, including IndexOf, is safe.
//
// # Codecs
//
// File formats register a Codec (see RegisterCodec), resolved by file
// extension. The concrete formats live in the format package and
// register themselves on import.
package palette
