package flow

import (
	"unsafe"

	"golang.org/x/exp/constraints"

	"github.com/lguimbarda/seqflow/flow/core"
)

// FromSlice adopts a slice as a bidirectional sequence without copying it.
func FromSlice[T any](items []T) View[T] {
	return core.FromSlice(items)
}

// FromString adopts a text buffer as a bidirectional sequence of bytes.
func FromString(text string) View[byte] {
	return core.FromString(text)
}

// FromRunes adopts a text buffer as a bidirectional sequence of runes.
func FromRunes(text string) View[rune] {
	return core.FromRunes(text)
}

// From wraps any Iterable, such as a bounded.Buffer, as a sequence.
func From[T any](it Iterable[T]) View[T] {
	return core.From(it)
}

// Iterate generates seed, next(seed), ... while the predicate holds.
// The result can only be traversed forward.
func Iterate[T any](seed T, next func(T) T, while func(T) bool) View[T] {
	return core.Iterate(seed, next, while)
}

// Empty creates a sequence with no elements.
func Empty[T any]() View[T] {
	return core.FromSlice[T](nil)
}

// rangeCursor is its own element: positions of a numeric range are the
// numbers themselves.
type rangeCursor[T constraints.Integer] struct {
	v T
}

func (c rangeCursor[T]) Value() T        { return c.v }
func (c rangeCursor[T]) Next() Cursor[T] { return rangeCursor[T]{c.v + 1} }
func (c rangeCursor[T]) Prev() Cursor[T] { return rangeCursor[T]{c.v - 1} }

func (c rangeCursor[T]) Equal(other Cursor[T]) bool {
	o, ok := other.(rangeCursor[T])
	return ok && o.v == c.v
}

// maxOf returns the largest value of T.
func maxOf[T constraints.Integer]() T {
	var zero T
	if ^zero > 0 {
		return ^zero
	}
	return ^(T(1) << (unsafe.Sizeof(zero)*8 - 1))
}

// Range generates count consecutive integers starting at start, that is
// [start, start+count). A count of zero or less yields an empty sequence.
// Ranges never wrap around: when start+count would overflow T the range
// stops just before the largest value of T.
func Range[T constraints.Integer](start, count T) View[T] {
	if count < 0 {
		count = 0
	}
	end := start + count
	if end < start {
		end = maxOf[T]()
	}
	return core.NewView[T](rangeCursor[T]{start}, rangeCursor[T]{end}, core.Bidirectional)
}

// Interval generates the integers in [lo, hi). If hi < lo the sequence is
// empty.
func Interval[T constraints.Integer](lo, hi T) View[T] {
	if hi < lo {
		hi = lo
	}
	return core.NewView[T](rangeCursor[T]{lo}, rangeCursor[T]{hi}, core.Bidirectional)
}

type repeatSource[T any] struct {
	value T
}

type repeatCursor[T any] struct {
	src *repeatSource[T]
	i   int
}

func (c repeatCursor[T]) Value() T        { return c.src.value }
func (c repeatCursor[T]) Next() Cursor[T] { return repeatCursor[T]{c.src, c.i + 1} }
func (c repeatCursor[T]) Prev() Cursor[T] { return repeatCursor[T]{c.src, c.i - 1} }

func (c repeatCursor[T]) Equal(other Cursor[T]) bool {
	o, ok := other.(repeatCursor[T])
	return ok && o.src == c.src && o.i == c.i
}

// Repeat creates a sequence that yields value n times.
func Repeat[T any](value T, n int) View[T] {
	src := &repeatSource[T]{value: value}
	return core.NewView[T](repeatCursor[T]{src, 0}, repeatCursor[T]{src, max(n, 0)}, core.Bidirectional)
}
