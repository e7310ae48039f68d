// Package id defines the typed identifiers used by hyperlath and the
// strategies that mint them.
//
// What
//
//   - VertexID[T] and EdgeID[T] wrap the same raw integer representation T
//     but are distinct types: a vertex identifier can never be passed where an
//     edge identifier is expected, even when both wrap a uint32.
//   - Equality, hashing and ordering look only at the raw value, so both
//     identifier kinds are valid map keys and sort deterministically.
//   - Generator[T] is the allocation strategy capability. Three strategies
//     are provided:
//   - Counter:       monotonic, saturating; the default of core.Graph.
//   - AtomicCounter: lock-free fetch-and-increment, safe to share between
//     graphs and goroutines; wraps at the width of T.
//   - Random:        seeded uniform sampling over the whole domain of T,
//     intended for fuzz and benchmark fixtures.
//
// Overflow policy
//
//	Counter never wraps: once the maximum value of T was handed out, Next
//	returns ErrIndexOutOfBounds forever. AtomicCounter wraps modulo 2^width(T)
//	because a lock-free counter cannot refuse an increment that already
//	happened; share it only when the domain of T is comfortably larger than
//	the number of identifiers you mint.
//
// Encoding
//
//	Identifiers marshal to JSON, YAML and text as their raw scalar value, and
//	String renders "v<raw>" / "e<raw>". Parse accepts both spellings.
//
// Errors
//
//   - ErrIndexOutOfBounds  if a saturating generator is exhausted.
//   - ErrInvalidIndex      if a textual index is malformed or does not fit T.
package id
