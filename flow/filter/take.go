package filter

import (
	"strconv"

	"github.com/lguimbarda/seqflow/flow/core"
)

// Skip and Take reuse the upstream cursors as their own: only the bounds
// move, so traversal costs nothing beyond the upstream's.

type skipSeq[T any] struct {
	up core.Sequence[T]
	n  int
}

func (s skipSeq[T]) Begin() core.Cursor[T] {
	c, _ := core.Advance(s.up.Begin(), s.up.End(), s.n)
	return c
}

func (s skipSeq[T]) End() core.Cursor[T]       { return s.up.End() }
func (s skipSeq[T]) Direction() core.Direction { return s.up.Direction() }

// Skip drops the first n elements. If n is at least the upstream length the
// result is empty; a negative n skips nothing.
func Skip[T any](n int) core.Stage[T, core.Sequence[T]] {
	n = max(n, 0)
	return core.Adapt("skip("+strconv.Itoa(n)+")", func(s core.Sequence[T]) core.Sequence[T] {
		return skipSeq[T]{up: s, n: n}
	})
}

type takeSeq[T any] struct {
	up core.Sequence[T]
	n  int
}

func (s takeSeq[T]) Begin() core.Cursor[T] { return s.up.Begin() }

func (s takeSeq[T]) End() core.Cursor[T] {
	c, _ := core.Advance(s.up.Begin(), s.up.End(), s.n)
	return c
}

func (s takeSeq[T]) Direction() core.Direction { return s.up.Direction() }

// Take keeps at most the first n elements. If n is at least the upstream
// length the whole upstream is kept; a negative n keeps nothing.
func Take[T any](n int) core.Stage[T, core.Sequence[T]] {
	n = max(n, 0)
	return core.Adapt("take("+strconv.Itoa(n)+")", func(s core.Sequence[T]) core.Sequence[T] {
		return takeSeq[T]{up: s, n: n}
	})
}

type whileSeq[T any] struct {
	up   core.Sequence[T]
	pred func(T) bool
}

func (s whileSeq[T]) Begin() core.Cursor[T] { return s.up.Begin() }

func (s whileSeq[T]) End() core.Cursor[T] {
	c, end := s.up.Begin(), s.up.End()
	for !c.Equal(end) && s.pred(c.Value()) {
		c = c.Next()
	}
	return c
}

func (s whileSeq[T]) Direction() core.Direction { return s.up.Direction() }

// TakeWhile keeps the leading elements that satisfy predicate and stops at
// the first one that does not.
func TakeWhile[T any](predicate func(T) bool) core.Stage[T, core.Sequence[T]] {
	return core.Adapt("take-while", func(s core.Sequence[T]) core.Sequence[T] {
		return whileSeq[T]{up: s, pred: predicate}
	})
}

type skipWhileSeq[T any] struct {
	up   core.Sequence[T]
	pred func(T) bool
}

func (s skipWhileSeq[T]) Begin() core.Cursor[T] {
	c, end := s.up.Begin(), s.up.End()
	for !c.Equal(end) && s.pred(c.Value()) {
		c = c.Next()
	}
	return c
}

func (s skipWhileSeq[T]) End() core.Cursor[T]       { return s.up.End() }
func (s skipWhileSeq[T]) Direction() core.Direction { return s.up.Direction() }

// SkipWhile drops the leading elements that satisfy predicate. The first
// element that does not, and everything after it, is kept.
func SkipWhile[T any](predicate func(T) bool) core.Stage[T, core.Sequence[T]] {
	return core.Adapt("skip-while", func(s core.Sequence[T]) core.Sequence[T] {
		return skipWhileSeq[T]{up: s, pred: predicate}
	})
}
