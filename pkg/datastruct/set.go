package datastruct

import "iter"

// OrderedSet keeps the first occurrence of each value, in insertion order.
type OrderedSet[T comparable] struct {
	index map[T]int
	vs    []T
}

// Add reports whether v was not yet in the set.
func (s *OrderedSet[T]) Add(v T) bool {
	if s.index == nil {
		s.index = make(map[T]int)
	}
	if _, ok := s.index[v]; ok {
		return false
	}
	s.index[v] = len(s.vs)
	s.vs = append(s.vs, v)
	return true
}

func (s *OrderedSet[T]) Append(vs ...T) {
	for _, v := range vs {
		s.Add(v)
	}
}

func (s *OrderedSet[T]) Has(v T) bool {
	_, ok := s.index[v]
	return ok
}

func (s *OrderedSet[T]) ToSlice() []T {
	return append([]T(nil), s.vs...)
}

func (s *OrderedSet[T]) Len() int {
	return len(s.vs)
}

func (s *OrderedSet[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range s.vs {
			if !yield(v) {
				return
			}
		}
	}
}
