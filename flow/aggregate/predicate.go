package aggregate

import (
	"github.com/lguimbarda/seqflow/flow/core"
)

// The predicate scans stop on the element that decides the answer: the
// predicate is never called on anything after it.

// All reports whether every element satisfies predicate. It is true for an
// empty sequence and stops at the first element that fails.
func All[T any](predicate func(T) bool) core.Stage[T, bool] {
	return core.Terminate("all", func(s core.Sequence[T]) bool {
		for c, end := s.Begin(), s.End(); !c.Equal(end); c = c.Next() {
			if !predicate(c.Value()) {
				return false
			}
		}
		return true
	})
}

// Any reports whether some element satisfies predicate. It is false for an
// empty sequence and stops at the first element that matches.
func Any[T any](predicate func(T) bool) core.Stage[T, bool] {
	return core.Terminate("any", func(s core.Sequence[T]) bool {
		for c, end := s.Begin(), s.End(); !c.Equal(end); c = c.Next() {
			if predicate(c.Value()) {
				return true
			}
		}
		return false
	})
}

// None reports whether no element satisfies predicate. It is true for an
// empty sequence and stops at the first element that matches.
func None[T any](predicate func(T) bool) core.Stage[T, bool] {
	return core.Terminate("none", func(s core.Sequence[T]) bool {
		for c, end := s.Begin(), s.End(); !c.Equal(end); c = c.Next() {
			if predicate(c.Value()) {
				return false
			}
		}
		return true
	})
}
