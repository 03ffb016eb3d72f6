package core

import (
	"errors"
	"reflect"
)

// Kind classifies a Stage. It is fixed when the stage is constructed and
// never inspected while elements are being pulled.
type Kind uint8

const (
	// Continuation stages produce another Sequence, so the pipeline goes on.
	Continuation Kind = iota + 1
	// Terminator stages consume the sequence and produce a final value or
	// side effect, ending the pipeline.
	Terminator
)

func (k Kind) String() string {
	switch k {
	case Continuation:
		return "continuation"
	case Terminator:
		return "terminator"
	default:
		return "unknown"
	}
}

// Stage is a deferred, reusable pipeline step that is bound to an upstream
// sequence only when composed with Pipe. Stages hold no upstream state.
// It answers the question: "What happens to the sequence next?".
//
// Stage is sealed: use Continue or Terminate to construct one, which makes
// every stage exactly one Kind.
type Stage[In, Out any] interface {
	Name() string
	Kind() Kind
	bind(Sequence[In]) (Out, error)
}

type continuation[In, Out any] struct {
	name string
	fn   func(Sequence[In]) (Sequence[Out], error)
}

func (c continuation[In, Out]) Name() string { return c.name }
func (c continuation[In, Out]) Kind() Kind   { return Continuation }

func (c continuation[In, Out]) bind(s Sequence[In]) (Sequence[Out], error) {
	return c.fn(s)
}

// Continue creates a Continuation stage. fn wraps the upstream sequence
// without pulling from it; an error from fn rejects the composition.
func Continue[In, Out any](name string, fn func(Sequence[In]) (Sequence[Out], error)) Stage[In, Sequence[Out]] {
	return continuation[In, Out]{name: name, fn: fn}
}

// Adapt creates a Continuation stage whose binding cannot fail.
func Adapt[In, Out any](name string, fn func(Sequence[In]) Sequence[Out]) Stage[In, Sequence[Out]] {
	return continuation[In, Out]{name: name, fn: func(s Sequence[In]) (Sequence[Out], error) {
		return fn(s), nil
	}}
}

type terminator[In, R any] struct {
	name string
	fn   func(Sequence[In]) R
}

func (t terminator[In, R]) Name() string { return t.name }
func (t terminator[In, R]) Kind() Kind   { return Terminator }

func (t terminator[In, R]) bind(s Sequence[In]) (R, error) {
	return t.fn(s), nil
}

var directedType = reflect.TypeFor[directed]()

// Terminate creates a Terminator stage. fn walks the sequence and reduces
// it to R; side-effect terminators use struct{}. Terminate panics with a
// *ComposeError wrapping ErrKindMismatch if R is itself a sequence: a stage
// that hands on a sequence is a continuation and must be built with
// Continue or Adapt.
func Terminate[In, R any](name string, fn func(Sequence[In]) R) Stage[In, R] {
	if reflect.TypeFor[R]().Implements(directedType) {
		panic(&ComposeError{Stage: name, Err: ErrKindMismatch})
	}
	return terminator[In, R]{name: name, fn: fn}
}

type composed[In, Out any] struct {
	name string
	kind Kind
	fn   func(Sequence[In]) (Out, error)
}

func (c composed[In, Out]) Name() string                     { return c.name }
func (c composed[In, Out]) Kind() Kind                       { return c.kind }
func (c composed[In, Out]) bind(s Sequence[In]) (Out, error) { return c.fn(s) }

// Then composes two stages into one that applies first and then second.
// The composed stage has the Kind of second. first must be a
// Continuation: binding the composed stage fails with ErrKindMismatch
// otherwise.
func Then[A, B, C any](first Stage[A, Sequence[B]], second Stage[B, C]) Stage[A, C] {
	return composed[A, C]{
		name: first.Name() + " | " + second.Name(),
		kind: second.Kind(),
		fn: func(s Sequence[A]) (C, error) {
			if first.Kind() != Continuation {
				var zero C
				return zero, &ComposeError{Stage: first.Name(), Err: ErrKindMismatch}
			}
			mid, err := TryPipe(s, first)
			if err != nil {
				var zero C
				return zero, err
			}
			return TryPipe(mid, second)
		},
	}
}

// Pipe binds a stage to a sequence: the single chaining operation of a
// pipeline. Continuation stages return a new lazy Sequence; Terminator
// stages traverse the sequence and return their result. Chains nest
// left to right:
//
//	flow.Pipe(flow.Pipe(flow.FromSlice(xs), flow.Skip[int](1)), flow.Sum[int]())
//
// Pipe panics with a *ComposeError if the stage rejects the sequence; use
// TryPipe to receive the error instead.
func Pipe[In, Out any](s Sequence[In], stage Stage[In, Out]) Out {
	out, err := TryPipe(s, stage)
	if err != nil {
		panic(err)
	}
	return out
}

// TryPipe is Pipe returning composition failures as a *ComposeError.
func TryPipe[In, Out any](s Sequence[In], stage Stage[In, Out]) (Out, error) {
	out, err := stage.bind(s)
	if err == nil {
		return out, nil
	}
	var zero Out
	var ce *ComposeError
	if errors.As(err, &ce) {
		return zero, err
	}
	return zero, &ComposeError{Stage: stage.Name(), Err: err}
}
