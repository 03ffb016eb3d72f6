// Package filter provides the stateful adaptors that select which upstream
// elements a sequence exposes: predicate filtering, skipping and taking.
package filter

import (
	"github.com/lguimbarda/seqflow/flow/core"
)

// whereCursor is the position state machine of a filtered sequence. cur
// always rests on an element satisfying pred, or on one of the bounds.
// lo and hi are the upstream begin and end, cached so that stepping in
// either direction knows where to stop.
type whereCursor[T any] struct {
	cur  core.Cursor[T]
	lo   core.Cursor[T]
	hi   core.Cursor[T]
	pred func(T) bool
}

func (c whereCursor[T]) Value() T { return c.cur.Value() }

func (c whereCursor[T]) Next() core.Cursor[T] {
	c.cur = c.cur.Next()
	return c.skipAhead()
}

// Prev moves to the closest earlier element satisfying pred. It never
// steps before lo.
func (c whereCursor[T]) Prev() core.Cursor[T] {
	c.cur = c.cur.Prev()
	for !c.cur.Equal(c.lo) && !c.pred(c.cur.Value()) {
		c.cur = c.cur.Prev()
	}
	return c
}

func (c whereCursor[T]) Equal(other core.Cursor[T]) bool {
	o, ok := other.(whereCursor[T])
	return ok && c.cur.Equal(o.cur)
}

func (c whereCursor[T]) skipAhead() whereCursor[T] {
	for !c.cur.Equal(c.hi) && !c.pred(c.cur.Value()) {
		c.cur = c.cur.Next()
	}
	return c
}

type whereSeq[T any] struct {
	up   core.Sequence[T]
	pred func(T) bool
}

// Begin skips ahead to the first matching element each time it is called,
// so no predicate runs until the sequence is traversed.
func (s whereSeq[T]) Begin() core.Cursor[T] {
	lo, hi := s.up.Begin(), s.up.End()
	return whereCursor[T]{cur: lo, lo: lo, hi: hi, pred: s.pred}.skipAhead()
}

func (s whereSeq[T]) End() core.Cursor[T] {
	lo, hi := s.up.Begin(), s.up.End()
	return whereCursor[T]{cur: hi, lo: lo, hi: hi, pred: s.pred}
}

func (s whereSeq[T]) Direction() core.Direction { return s.up.Direction() }

// Where keeps only the elements that satisfy predicate, preserving their
// relative order. If nothing matches the result is empty.
// Backward traversal of the result visits the same elements in reverse.
func Where[T any](predicate func(T) bool) core.Stage[T, core.Sequence[T]] {
	return core.Adapt("where", func(s core.Sequence[T]) core.Sequence[T] {
		return whereSeq[T]{up: s, pred: predicate}
	})
}

// WhereNot keeps only the elements that do not satisfy predicate.
func WhereNot[T any](predicate func(T) bool) core.Stage[T, core.Sequence[T]] {
	return core.Adapt("where-not", func(s core.Sequence[T]) core.Sequence[T] {
		return whereSeq[T]{up: s, pred: func(v T) bool { return !predicate(v) }}
	})
}
