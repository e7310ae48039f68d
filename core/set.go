package core

import (
	"slices"

	"github.com/katalvlaran/hyperlath/id"
)

// VertexSet is an unordered set of vertex identifiers.
// The zero value is not usable; create sets with NewVertexSet.
type VertexSet[T id.Index] map[id.VertexID[T]]struct{}

// NewVertexSet returns a set containing vs.
func NewVertexSet[T id.Index](vs ...id.VertexID[T]) VertexSet[T] {
	s := make(VertexSet[T], len(vs))
	for _, v := range vs {
		s[v] = struct{}{}
	}

	return s
}

// Add inserts v and reports whether it was absent.
func (s VertexSet[T]) Add(v id.VertexID[T]) bool {
	if _, ok := s[v]; ok {
		return false
	}
	s[v] = struct{}{}

	return true
}

// Remove deletes v.
func (s VertexSet[T]) Remove(v id.VertexID[T]) { delete(s, v) }

// Contains reports whether v is in the set.
func (s VertexSet[T]) Contains(v id.VertexID[T]) bool {
	_, ok := s[v]

	return ok
}

// Len returns the number of members.
func (s VertexSet[T]) Len() int { return len(s) }

// Sorted returns the members in ascending identifier order.
// Complexity: O(n log n).
func (s VertexSet[T]) Sorted() []id.VertexID[T] {
	out := make([]id.VertexID[T], 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	slices.SortFunc(out, id.VertexID[T].Compare)

	return out
}

// Equal reports whether s and o hold the same members.
func (s VertexSet[T]) Equal(o VertexSet[T]) bool {
	if len(s) != len(o) {
		return false
	}
	for v := range s {
		if _, ok := o[v]; !ok {
			return false
		}
	}

	return true
}
