// Package core defines the core abstractions for lazy sequence processing:
// cursors, sequences, the stages that adapt or consume them, and the single
// chaining operation that binds a stage to a sequence.
// It provides the foundational building blocks for composing pipelines that
// do no work until a terminal stage pulls values through them.
//
// NOTE: this package should have no dependencies outside the standard
// library, including other flow packages.
package core

// Cursor is a position within a Sequence. It answers the question:
// "Where is the traversal, and what is there?".
//
// Cursors are immutable values: Next and Prev return a new position and
// leave the receiver untouched, so any cursor may be kept and resumed from.
// Dereferencing or stepping a cursor past its sequence's bounds is a caller
// contract violation, not a checked error.
type Cursor[T any] interface {
	// Value returns the element at this position.
	Value() T
	// Next returns the position one step forward.
	Next() Cursor[T]
	// Prev returns the position one step backward. Cursors of a Forward
	// sequence panic with ErrNotBidirectional.
	Prev() Cursor[T]
	// Equal reports whether other is the same position. Cursors of a
	// different concrete kind are never equal.
	Equal(other Cursor[T]) bool
}

// Direction describes how a Sequence may be traversed.
type Direction uint8

const (
	// Forward sequences can only be stepped from begin towards end.
	Forward Direction = iota + 1
	// Bidirectional sequences can also be stepped backward.
	Bidirectional
)

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Bidirectional:
		return "bidirectional"
	default:
		return "unknown"
	}
}

// Iterable is anything that exposes a begin/end pair of cursors.
type Iterable[T any] interface {
	Begin() Cursor[T]
	End() Cursor[T]
}

// Sequence is an Iterable that also reports its traversal capability.
// Along with Stage, it enables building lazy processing pipelines.
// Sequence answers the question: "Which elements will be produced, in which order?".
type Sequence[T any] interface {
	Iterable[T]
	Direction() Direction
}

// directed is implemented by iterables that know their own Direction.
type directed interface {
	Direction() Direction
}

// View is the borrowing wrapper over an existing source. It holds the
// source's begin and end positions, never a copy of its elements, so the
// source must not be mutated while the view or anything derived from it is
// in use.
type View[T any] struct {
	begin Cursor[T]
	end   Cursor[T]
	dir   Direction
}

// NewView creates a View from explicit bounds.
func NewView[T any](begin, end Cursor[T], dir Direction) View[T] {
	return View[T]{begin: begin, end: end, dir: dir}
}

// From wraps any Iterable as a View, returning its positions unchanged.
// If the iterable does not report a Direction it is treated as Forward.
func From[T any](it Iterable[T]) View[T] {
	dir := Forward
	if d, ok := it.(directed); ok {
		dir = d.Direction()
	}
	return View[T]{begin: it.Begin(), end: it.End(), dir: dir}
}

func (v View[T]) Begin() Cursor[T]     { return v.begin }
func (v View[T]) End() Cursor[T]       { return v.end }
func (v View[T]) Direction() Direction { return v.dir }

// IsEmpty reports whether the sequence has no elements.
func IsEmpty[T any](s Iterable[T]) bool {
	return s.Begin().Equal(s.End())
}

// Advance steps c forward up to n times, stopping early at end. It returns
// the resulting position and the number of steps actually taken.
func Advance[T any](c, end Cursor[T], n int) (Cursor[T], int) {
	i := 0
	for ; i < n && !c.Equal(end); i++ {
		c = c.Next()
	}
	return c, i
}
