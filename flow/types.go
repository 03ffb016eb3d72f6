// Package flow provides lazy, composable sequence pipelines in Go.
//
// A pipeline starts from a source (a slice, a string, a numeric range, or
// any Iterable), chains adaptor stages onto it with Pipe, and ends with a
// terminal stage that pulls the elements and reduces them to a result:
//
//	evens := flow.Pipe(flow.Range(1, 10), flow.Filter(func(n int) bool { return n%2 == 0 }))
//	halves := flow.Pipe(evens, flow.Map(func(n int) int { return n / 2 }))
//	got := flow.Pipe(halves, flow.Materialize[int]()) // [1 2 3 4 5]
//
// Nothing is read from the source until the terminal stage runs, and no
// adaptor copies the elements it wraps.
//
// This package is the primary user-facing API. Most users should only
// need to import this package. The flow/core subpackage contains the
// low-level abstractions used to write new stages.
package flow

import (
	"iter"

	"github.com/lguimbarda/seqflow/flow/aggregate"
	"github.com/lguimbarda/seqflow/flow/core"
	"github.com/lguimbarda/seqflow/flow/filter"
	"github.com/lguimbarda/seqflow/flow/transform"
)

// Type aliases for core abstractions.
// These allow users to work with the framework without importing core directly.
type (
	// Cursor is an immutable position within a Sequence.
	Cursor[T any] = core.Cursor[T]

	// Iterable exposes a begin/end pair of cursors.
	Iterable[T any] = core.Iterable[T]

	// Sequence is an Iterable that reports its traversal Direction.
	Sequence[T any] = core.Sequence[T]

	// View is the borrowing wrapper over a source.
	View[T any] = core.View[T]

	// Stage is a deferred pipeline step bound to a sequence by Pipe.
	Stage[In, Out any] = core.Stage[In, Out]

	// Result carries a value or an error out of a fallible terminal stage.
	Result[T any] = core.Result[T]

	// Sink receives the elements of Into.
	Sink[T any] = core.Sink[T]

	// ComposeError reports a stage rejecting its upstream sequence.
	ComposeError = core.ComposeError

	// Direction describes how a Sequence may be traversed.
	Direction = core.Direction

	// Kind classifies a Stage as a Continuation or a Terminator.
	Kind = core.Kind
)

const (
	Forward       = core.Forward
	Bidirectional = core.Bidirectional

	Continuation = core.Continuation
	Terminator   = core.Terminator
)

var (
	// ErrNotBidirectional is the compose failure of Reverse over a
	// forward-only sequence.
	ErrNotBidirectional = core.ErrNotBidirectional

	// ErrEmpty is returned by Reduce, First and Last on an empty sequence.
	ErrEmpty = core.ErrEmpty
)

// Continuation stages.

// Map transforms each element with fn as it is read.
func Map[IN, OUT any](fn func(IN) OUT) Stage[IN, Sequence[OUT]] {
	return transform.Map(fn)
}

// Filter keeps the elements that satisfy predicate.
func Filter[T any](predicate func(T) bool) Stage[T, Sequence[T]] {
	return filter.Where(predicate)
}

// Skip drops the first n elements.
func Skip[T any](n int) Stage[T, Sequence[T]] {
	return filter.Skip[T](n)
}

// Take keeps at most the first n elements.
func Take[T any](n int) Stage[T, Sequence[T]] {
	return filter.Take[T](n)
}

// Reverse visits a bidirectional sequence from last to first.
func Reverse[T any]() Stage[T, Sequence[T]] {
	return transform.Reverse[T]()
}

// Terminal stages.

// Materialize collects every element into a new slice.
func Materialize[T any]() Stage[T, []T] {
	return core.Materialize[T]()
}

// ToSlice is an alias of Materialize.
func ToSlice[T any]() Stage[T, []T] {
	return core.ToSlice[T]()
}

// Into materializes every element into sink.
func Into[T any](sink Sink[T]) Stage[T, Result[int]] {
	return core.Into(sink)
}

// ForEach calls fn for every element.
func ForEach[T any](fn func(T)) Stage[T, struct{}] {
	return core.ForEach(fn)
}

// Sum adds every element, starting from zero.
func Sum[T aggregate.Number]() Stage[T, T] {
	return aggregate.Sum[T]()
}

// All reports whether every element satisfies predicate.
func All[T any](predicate func(T) bool) Stage[T, bool] {
	return aggregate.All(predicate)
}

// Any reports whether some element satisfies predicate.
func Any[T any](predicate func(T) bool) Stage[T, bool] {
	return aggregate.Any(predicate)
}

// None reports whether no element satisfies predicate.
func None[T any](predicate func(T) bool) Stage[T, bool] {
	return aggregate.None(predicate)
}

// Print writes every element to standard output, or as configured.
func Print[T any](opts ...aggregate.PrintOption) Stage[T, error] {
	return aggregate.Print[T](opts...)
}

// Values returns a range-over-func iterator over the sequence.
func Values[T any](s Sequence[T]) iter.Seq[T] {
	return core.Values(s)
}

// Backward returns a range-over-func iterator from last to first.
func Backward[T any](s Sequence[T]) iter.Seq[T] {
	return core.Backward(s)
}
