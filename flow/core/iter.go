package core

import "iter"

// Values returns an iterator over the sequence from begin to end, for use
// with range-over-func. Each iteration re-traverses the sequence.
func Values[T any](s Sequence[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for c, end := s.Begin(), s.End(); !c.Equal(end); c = c.Next() {
			if !yield(c.Value()) {
				return
			}
		}
	}
}

// Backward returns an iterator over the sequence from its last element to
// its first. It panics with ErrNotBidirectional if s is forward-only.
func Backward[T any](s Sequence[T]) iter.Seq[T] {
	if s.Direction() != Bidirectional {
		panic(ErrNotBidirectional)
	}
	return func(yield func(T) bool) {
		for c, begin := s.End(), s.Begin(); !c.Equal(begin); {
			c = c.Prev()
			if !yield(c.Value()) {
				return
			}
		}
	}
}
