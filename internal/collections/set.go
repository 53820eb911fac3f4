package collections

import "fmt"

// OrderedSet is a generic set that remembers insertion order.
// Membership checks are map lookups; iteration follows the order values were first added.
type OrderedSet[T comparable] struct {
	index  map[T]struct{}
	values []T
}

// NewOrderedSet creates a new OrderedSet with the given initial values
func NewOrderedSet[T comparable](vs ...T) *OrderedSet[T] {
	s := &OrderedSet[T]{index: make(map[T]struct{}, len(vs))}
	s.Add(vs...)
	return s
}

// Add appends values not already present, keeping first-seen order
func (s *OrderedSet[T]) Add(vs ...T) {
	for _, v := range vs {
		if _, ok := s.index[v]; ok {
			continue
		}
		s.index[v] = struct{}{}
		s.values = append(s.values, v)
	}
}

// Has checks if the set contains the given value
func (s *OrderedSet[T]) Has(v T) bool {
	if s == nil {
		return false
	}
	_, ok := s.index[v]
	return ok
}

// Len returns the number of members
func (s *OrderedSet[T]) Len() int {
	if s == nil {
		return 0
	}
	return len(s.values)
}

// Members returns a copy of the values in insertion order
func (s *OrderedSet[T]) Members() []T {
	if s == nil {
		return nil
	}
	r := make([]T, len(s.values))
	copy(r, s.values)
	return r
}

// String returns a string representation of the set
func (s *OrderedSet[T]) String() string {
	return fmt.Sprintf("%v", s.Members())
}
