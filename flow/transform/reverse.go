package transform

import (
	"github.com/lguimbarda/seqflow/flow/core"
)

// reverseCursor reports the element just before base. Keeping base one
// step past the element means reversed begin and end are exactly the
// upstream end and begin: no position before the upstream begin is ever
// formed, and an empty upstream reverses to an empty sequence.
//
// elem caches base.Prev() once it has been stepped to, so reading and then
// stepping in either direction costs a single upstream step.
type reverseCursor[T any] struct {
	base core.Cursor[T]
	elem *core.Cursor[T]
}

func newReverseCursor[T any](base core.Cursor[T]) reverseCursor[T] {
	return reverseCursor[T]{base: base, elem: new(core.Cursor[T])}
}

func (c reverseCursor[T]) at() core.Cursor[T] {
	if *c.elem == nil {
		*c.elem = c.base.Prev()
	}
	return *c.elem
}

func (c reverseCursor[T]) Value() T             { return c.at().Value() }
func (c reverseCursor[T]) Next() core.Cursor[T] { return newReverseCursor(c.at()) }

func (c reverseCursor[T]) Prev() core.Cursor[T] {
	elem := c.base
	return reverseCursor[T]{base: c.base.Next(), elem: &elem}
}

func (c reverseCursor[T]) Equal(other core.Cursor[T]) bool {
	o, ok := other.(reverseCursor[T])
	return ok && c.base.Equal(o.base)
}

type reverseSeq[T any] struct {
	up core.Sequence[T]
}

func (s reverseSeq[T]) Begin() core.Cursor[T]     { return newReverseCursor(s.up.End()) }
func (s reverseSeq[T]) End() core.Cursor[T]       { return newReverseCursor(s.up.Begin()) }
func (s reverseSeq[T]) Direction() core.Direction { return core.Bidirectional }

// Reverse visits the upstream elements from last to first. The upstream
// must be bidirectional; composing Reverse onto a forward-only sequence
// fails with core.ErrNotBidirectional before any element is read.
func Reverse[T any]() core.Stage[T, core.Sequence[T]] {
	return core.Continue("reverse", func(s core.Sequence[T]) (core.Sequence[T], error) {
		if s.Direction() != core.Bidirectional {
			return nil, core.ErrNotBidirectional
		}
		if r, ok := s.(reverseSeq[T]); ok {
			return r.up, nil
		}
		return reverseSeq[T]{up: s}, nil
	})
}
