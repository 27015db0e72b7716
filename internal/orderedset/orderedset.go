// Package orderedset provides a small insertion-order-preserving set
// keyed on value equality. It backs resource de-duplication (trainers,
// rooms, mobile units) and feed merging.
package orderedset

// Set keeps each value once, in first-insertion order.
type Set[T comparable] struct {
	items []T
	seen  map[T]struct{}
}

// New returns a set seeded with the given values.
func New[T comparable](values ...T) *Set[T] {
	s := &Set[T]{seen: make(map[T]struct{}, len(values))}
	for _, v := range values {
		s.Add(v)
	}
	return s
}

// Add inserts v and reports whether it was not already present.
func (s *Set[T]) Add(v T) bool {
	if s.seen == nil {
		s.seen = make(map[T]struct{})
	}
	if _, ok := s.seen[v]; ok {
		return false
	}
	s.seen[v] = struct{}{}
	s.items = append(s.items, v)
	return true
}

// Has reports whether v is in the set.
func (s *Set[T]) Has(v T) bool {
	_, ok := s.seen[v]
	return ok
}

func (s *Set[T]) Len() int {
	return len(s.items)
}

// Values returns the members in insertion order. The returned slice is
// a copy; mutating it does not affect the set.
func (s *Set[T]) Values() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// Dedup returns values with duplicates removed, preserving the first
// occurrence of each.
func Dedup[T comparable](values []T) []T {
	if len(values) < 2 {
		return values
	}
	return New(values...).Values()
}
