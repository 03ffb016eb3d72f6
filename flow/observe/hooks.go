// Package observe provides pass-through stages for monitoring, metrics and
// debugging of sequence pipelines. Every stage here yields exactly the
// elements of its upstream, with the same Direction and cursor equality.
package observe

import (
	"github.com/lguimbarda/seqflow/flow/core"
)

// Hooks holds typed observation callbacks for a sequence.
// All fields are optional - nil means no observation for that event.
// Hooks are invoked synchronously during traversal, so they should be fast
// to avoid slowing the pipeline.
type Hooks[T any] struct {
	OnValue func(T) // An element was dereferenced
	OnNext  func()  // A cursor stepped forward
	OnPrev  func()  // A cursor stepped backward
}

// Merge combines hook sets. They are invoked in FIFO order: hooks from
// earlier sets run before hooks from later ones.
func Merge[T any](sets ...Hooks[T]) Hooks[T] {
	var merged Hooks[T]
	for _, h := range sets {
		if h.OnValue != nil {
			prev, cur := merged.OnValue, h.OnValue
			merged.OnValue = func(v T) {
				if prev != nil {
					prev(v)
				}
				cur(v)
			}
		}
		if h.OnNext != nil {
			merged.OnNext = chain(merged.OnNext, h.OnNext)
		}
		if h.OnPrev != nil {
			merged.OnPrev = chain(merged.OnPrev, h.OnPrev)
		}
	}
	return merged
}

func chain(first, second func()) func() {
	if first == nil {
		return second
	}
	return func() {
		first()
		second()
	}
}

// NewSafeHooks wraps each hook with panic recovery.
// Use this when hooks are user-provided and panics should not crash the
// pipeline. If panicHandler is nil, panics are silently recovered.
func NewSafeHooks[T any](hooks Hooks[T], panicHandler func(any)) Hooks[T] {
	if panicHandler == nil {
		panicHandler = func(any) {} // Silent recovery
	}
	recoverWith := func() {
		if r := recover(); r != nil {
			panicHandler(r)
		}
	}

	var safe Hooks[T]
	if hooks.OnValue != nil {
		original := hooks.OnValue
		safe.OnValue = func(v T) {
			defer recoverWith()
			original(v)
		}
	}
	if hooks.OnNext != nil {
		original := hooks.OnNext
		safe.OnNext = func() {
			defer recoverWith()
			original()
		}
	}
	if hooks.OnPrev != nil {
		original := hooks.OnPrev
		safe.OnPrev = func() {
			defer recoverWith()
			original()
		}
	}
	return safe
}

type tapCursor[T any] struct {
	up    core.Cursor[T]
	hooks *Hooks[T]
}

func (c tapCursor[T]) Value() T {
	v := c.up.Value()
	if c.hooks.OnValue != nil {
		c.hooks.OnValue(v)
	}
	return v
}

func (c tapCursor[T]) Next() core.Cursor[T] {
	if c.hooks.OnNext != nil {
		c.hooks.OnNext()
	}
	return tapCursor[T]{up: c.up.Next(), hooks: c.hooks}
}

func (c tapCursor[T]) Prev() core.Cursor[T] {
	if c.hooks.OnPrev != nil {
		c.hooks.OnPrev()
	}
	return tapCursor[T]{up: c.up.Prev(), hooks: c.hooks}
}

func (c tapCursor[T]) Equal(other core.Cursor[T]) bool {
	o, ok := other.(tapCursor[T])
	return ok && c.up.Equal(o.up)
}

type tapSeq[T any] struct {
	up    core.Sequence[T]
	hooks *Hooks[T]
}

func (s tapSeq[T]) Begin() core.Cursor[T]     { return tapCursor[T]{up: s.up.Begin(), hooks: s.hooks} }
func (s tapSeq[T]) End() core.Cursor[T]       { return tapCursor[T]{up: s.up.End(), hooks: s.hooks} }
func (s tapSeq[T]) Direction() core.Direction { return s.up.Direction() }

func tap[T any](s core.Sequence[T], hooks Hooks[T]) core.Sequence[T] {
	return tapSeq[T]{up: s, hooks: &hooks}
}

// Tap passes every element through unchanged, invoking hooks as cursors
// are dereferenced and stepped.
func Tap[T any](hooks Hooks[T]) core.Stage[T, core.Sequence[T]] {
	return core.Adapt("tap", func(s core.Sequence[T]) core.Sequence[T] {
		return tap(s, hooks)
	})
}

// OnValue is Tap with only a value hook.
func OnValue[T any](fn func(T)) core.Stage[T, core.Sequence[T]] {
	return Tap(Hooks[T]{OnValue: fn})
}
