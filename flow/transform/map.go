// Package transform provides adaptors that change what a sequence's
// elements are, or the order in which they are visited, without selecting
// among them.
package transform

import (
	"github.com/lguimbarda/seqflow/flow/core"
)

type mapCursor[IN, OUT any] struct {
	up core.Cursor[IN]
	fn func(IN) OUT
}

// Value recomputes fn on every call; nothing is cached.
func (c mapCursor[IN, OUT]) Value() OUT { return c.fn(c.up.Value()) }

func (c mapCursor[IN, OUT]) Next() core.Cursor[OUT] {
	return mapCursor[IN, OUT]{up: c.up.Next(), fn: c.fn}
}

func (c mapCursor[IN, OUT]) Prev() core.Cursor[OUT] {
	return mapCursor[IN, OUT]{up: c.up.Prev(), fn: c.fn}
}

func (c mapCursor[IN, OUT]) Equal(other core.Cursor[OUT]) bool {
	o, ok := other.(mapCursor[IN, OUT])
	return ok && c.up.Equal(o.up)
}

type mapSeq[IN, OUT any] struct {
	up core.Sequence[IN]
	fn func(IN) OUT
}

func (s mapSeq[IN, OUT]) Begin() core.Cursor[OUT] {
	return mapCursor[IN, OUT]{up: s.up.Begin(), fn: s.fn}
}

func (s mapSeq[IN, OUT]) End() core.Cursor[OUT] {
	return mapCursor[IN, OUT]{up: s.up.End(), fn: s.fn}
}

func (s mapSeq[IN, OUT]) Direction() core.Direction { return s.up.Direction() }

// Map applies fn to each element as it is read. fn should be pure: it runs
// again every time an element is dereferenced.
func Map[IN, OUT any](fn func(IN) OUT) core.Stage[IN, core.Sequence[OUT]] {
	return core.Adapt("map", func(s core.Sequence[IN]) core.Sequence[OUT] {
		return mapSeq[IN, OUT]{up: s, fn: fn}
	})
}

// Fuse combines two mapping functions into one so that a chain of maps
// costs a single cursor layer.
func Fuse[IN, MID, OUT any](first func(IN) MID, second func(MID) OUT) func(IN) OUT {
	return func(in IN) OUT {
		return second(first(in))
	}
}

// Indexed pairs each element with its position, counted from zero at the
// sequence's begin.
type Indexed[T any] struct {
	Index int
	Value T
}

type enumerateCursor[T any] struct {
	up core.Cursor[T]
	i  int
}

func (c enumerateCursor[T]) Value() Indexed[T] {
	return Indexed[T]{Index: c.i, Value: c.up.Value()}
}

func (c enumerateCursor[T]) Next() core.Cursor[Indexed[T]] {
	return enumerateCursor[T]{up: c.up.Next(), i: c.i + 1}
}

func (c enumerateCursor[T]) Prev() core.Cursor[Indexed[T]] {
	return enumerateCursor[T]{up: c.up.Prev(), i: c.i - 1}
}

func (c enumerateCursor[T]) Equal(other core.Cursor[Indexed[T]]) bool {
	o, ok := other.(enumerateCursor[T])
	return ok && c.up.Equal(o.up)
}

type enumerateSeq[T any] struct {
	up core.Sequence[T]
}

func (s enumerateSeq[T]) Begin() core.Cursor[Indexed[T]] {
	return enumerateCursor[T]{up: s.up.Begin()}
}

// End walks the upstream once to learn the index of its end position, so
// that stepping back from End yields correct indexes.
func (s enumerateSeq[T]) End() core.Cursor[Indexed[T]] {
	c, end := s.up.Begin(), s.up.End()
	n := 0
	for ; !c.Equal(end); c = c.Next() {
		n++
	}
	return enumerateCursor[T]{up: end, i: n}
}

func (s enumerateSeq[T]) Direction() core.Direction { return s.up.Direction() }

// Enumerate pairs every element with its index.
func Enumerate[T any]() core.Stage[T, core.Sequence[Indexed[T]]] {
	return core.Adapt("enumerate", func(s core.Sequence[T]) core.Sequence[Indexed[T]] {
		return enumerateSeq[T]{up: s}
	})
}
