package flow

import (
	"github.com/lguimbarda/seqflow/flow/core"
)

// Pipe binds stage to s. Continuation stages return a new lazy sequence and
// Terminator stages traverse s and return their result. Pipe panics with a
// *ComposeError if the stage rejects s.
func Pipe[In, Out any](s Sequence[In], stage Stage[In, Out]) Out {
	return core.Pipe(s, stage)
}

// TryPipe is Pipe returning a composition failure instead of panicking.
func TryPipe[In, Out any](s Sequence[In], stage Stage[In, Out]) (Out, error) {
	return core.TryPipe(s, stage)
}

// Then composes two stages into one that applies first and then second.
func Then[A, B, C any](first Stage[A, Sequence[B]], second Stage[B, C]) Stage[A, C] {
	return core.Then(first, second)
}

// Chain composes continuation stages of the same element type into one.
// Stages are applied in order from left to right. If no stages are
// provided, it returns an identity stage.
func Chain[T any](stages ...Stage[T, Sequence[T]]) Stage[T, Sequence[T]] {
	if len(stages) == 0 {
		return core.Adapt("chain", func(s Sequence[T]) Sequence[T] { return s })
	}
	chain := stages[0]
	for _, st := range stages[1:] {
		chain = core.Then(chain, st)
	}
	return chain
}
