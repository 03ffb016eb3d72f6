// Package aggregate provides terminal stages that reduce a sequence to a
// single value: sums, folds, counts and short-circuiting predicate scans.
package aggregate

import (
	"golang.org/x/exp/constraints"

	"github.com/lguimbarda/seqflow/flow/core"
)

// Number is the set of element types Sum can add.
type Number interface {
	constraints.Integer | constraints.Float
}

// Sum adds every element, starting from zero. An empty sequence sums to 0.
func Sum[T Number]() core.Stage[T, T] {
	return core.Terminate("sum", func(s core.Sequence[T]) T {
		var sum T
		for c, end := s.Begin(), s.End(); !c.Equal(end); c = c.Next() {
			sum += c.Value()
		}
		return sum
	})
}

// Count returns the number of elements.
func Count[T any]() core.Stage[T, int] {
	return core.Terminate("count", func(s core.Sequence[T]) int {
		n := 0
		for c, end := s.Begin(), s.End(); !c.Equal(end); c = c.Next() {
			n++
		}
		return n
	})
}

// Fold combines all elements into an accumulator that starts at initial.
// An empty sequence folds to initial.
func Fold[T, R any](initial R, folder func(acc R, item T) R) core.Stage[T, R] {
	return core.Terminate("fold", func(s core.Sequence[T]) R {
		acc := initial
		for c, end := s.Begin(), s.End(); !c.Equal(end); c = c.Next() {
			acc = folder(acc, c.Value())
		}
		return acc
	})
}

// Reduce combines all elements using the first as the initial accumulator.
// An empty sequence yields core.ErrEmpty.
func Reduce[T any](reducer func(acc, item T) T) core.Stage[T, core.Result[T]] {
	return core.Terminate("reduce", func(s core.Sequence[T]) core.Result[T] {
		c, end := s.Begin(), s.End()
		if c.Equal(end) {
			return core.Err[T](core.ErrEmpty)
		}
		acc := c.Value()
		for c = c.Next(); !c.Equal(end); c = c.Next() {
			acc = reducer(acc, c.Value())
		}
		return core.Ok(acc)
	})
}

// First returns the first element, reading nothing else.
func First[T any]() core.Stage[T, core.Result[T]] {
	return core.Terminate("first", func(s core.Sequence[T]) core.Result[T] {
		c := s.Begin()
		if c.Equal(s.End()) {
			return core.Err[T](core.ErrEmpty)
		}
		return core.Ok(c.Value())
	})
}

// Last returns the final element. Bidirectional sequences step back once
// from the end; forward-only ones are walked to the end.
func Last[T any]() core.Stage[T, core.Result[T]] {
	return core.Terminate("last", func(s core.Sequence[T]) core.Result[T] {
		c, end := s.Begin(), s.End()
		if c.Equal(end) {
			return core.Err[T](core.ErrEmpty)
		}
		if s.Direction() == core.Bidirectional {
			return core.Ok(end.Prev().Value())
		}
		last := c
		for c = c.Next(); !c.Equal(end); c = c.Next() {
			last = c
		}
		return core.Ok(last.Value())
	})
}
