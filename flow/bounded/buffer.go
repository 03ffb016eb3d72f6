// Package bounded implements a fixed-capacity buffer. Its storage is
// allocated once, up front, and never grows: appending beyond the capacity
// fails instead.
//
// A Buffer is both a pipeline source (it is a core.Iterable) and a
// materialization target (it is a core.Sink).
package bounded

import (
	"errors"
	"fmt"

	"github.com/lguimbarda/seqflow/flow/core"
)

var (
	// ErrCapacityExceeded is returned when appending to a full Buffer.
	ErrCapacityExceeded = errors.New("bounded buffer capacity exceeded")

	// ErrOutOfRange is returned for an index outside [0, Len()).
	ErrOutOfRange = errors.New("index out of range")
)

// Buffer is a sequence of at most Cap() elements.
type Buffer[T any] struct {
	data []T // len(data) is the capacity
	size int
	// mods counts structural modifications, to catch stale cursors.
	mods uint64
}

// New creates an empty Buffer that can hold capacity elements.
func New[T any](capacity int) *Buffer[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Buffer[T]{data: make([]T, capacity)}
}

// Of creates a Buffer holding values. It fails with ErrCapacityExceeded if
// there are more values than capacity.
func Of[T any](capacity int, values ...T) (*Buffer[T], error) {
	b := New[T](capacity)
	for _, v := range values {
		if err := b.Push(v); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (b *Buffer[T]) Cap() int    { return len(b.data) }
func (b *Buffer[T]) Len() int    { return b.size }
func (b *Buffer[T]) Empty() bool { return b.size == 0 }
func (b *Buffer[T]) Full() bool  { return b.size == len(b.data) }

// At returns the element at index i.
func (b *Buffer[T]) At(i int) (T, error) {
	if i < 0 || i >= b.size {
		var zero T
		return zero, fmt.Errorf("at %d of %d: %w", i, b.size, ErrOutOfRange)
	}
	return b.data[i], nil
}

// Set replaces the element at index i. It does not invalidate cursors.
func (b *Buffer[T]) Set(i int, v T) error {
	if i < 0 || i >= b.size {
		return fmt.Errorf("set %d of %d: %w", i, b.size, ErrOutOfRange)
	}
	b.data[i] = v
	return nil
}

// Front returns the first element.
func (b *Buffer[T]) Front() (T, error) { return b.At(0) }

// Back returns the last element.
func (b *Buffer[T]) Back() (T, error) { return b.At(b.size - 1) }

// Push appends v. It fails with ErrCapacityExceeded when the buffer is full.
func (b *Buffer[T]) Push(v T) error {
	if b.size >= len(b.data) {
		return fmt.Errorf("push onto %d/%d: %w", b.size, len(b.data), ErrCapacityExceeded)
	}
	b.data[b.size] = v
	b.size++
	b.mods++
	return nil
}

// Pop removes and returns the last element. It reports false, and changes
// nothing, if the buffer is empty.
func (b *Buffer[T]) Pop() (T, bool) {
	var zero T
	if b.size == 0 {
		return zero, false
	}
	b.size--
	v := b.data[b.size]
	b.data[b.size] = zero
	b.mods++
	return v, true
}

// Erase removes the element at index i, shifting later elements down.
func (b *Buffer[T]) Erase(i int) error {
	if i < 0 || i >= b.size {
		return fmt.Errorf("erase %d of %d: %w", i, b.size, ErrOutOfRange)
	}
	copy(b.data[i:b.size], b.data[i+1:b.size])
	b.size--
	var zero T
	b.data[b.size] = zero
	b.mods++
	return nil
}

// Clear removes every element. The capacity is unchanged.
func (b *Buffer[T]) Clear() {
	clear(b.data[:b.size])
	b.size = 0
	b.mods++
}

// Slice returns a copy of the elements.
func (b *Buffer[T]) Slice() []T {
	out := make([]T, b.size)
	copy(out, b.data[:b.size])
	return out
}

// cursor records the modification count it was created under and refuses
// to be dereferenced or compared once the buffer has changed shape.
type cursor[T any] struct {
	b    *Buffer[T]
	i    int
	mods uint64
}

func (c cursor[T]) Value() T {
	if c.mods != c.b.mods {
		panic(core.ErrStaleCursor)
	}
	return c.b.data[c.i]
}

func (c cursor[T]) Next() core.Cursor[T] { return cursor[T]{c.b, c.i + 1, c.mods} }
func (c cursor[T]) Prev() core.Cursor[T] { return cursor[T]{c.b, c.i - 1, c.mods} }

func (c cursor[T]) Equal(other core.Cursor[T]) bool {
	o, ok := other.(cursor[T])
	if !ok || o.b != c.b {
		return false
	}
	if c.mods != c.b.mods || o.mods != c.b.mods {
		panic(core.ErrStaleCursor)
	}
	return o.i == c.i
}

// Begin returns a cursor on the first element.
func (b *Buffer[T]) Begin() core.Cursor[T] { return cursor[T]{b, 0, b.mods} }

// End returns the cursor one past the last element.
func (b *Buffer[T]) End() core.Cursor[T] { return cursor[T]{b, b.size, b.mods} }

// Direction reports that a Buffer can be traversed both ways.
func (b *Buffer[T]) Direction() core.Direction { return core.Bidirectional }

var (
	_ core.Sequence[int] = (*Buffer[int])(nil)
	_ core.Sink[int]     = (*Buffer[int])(nil)
)
