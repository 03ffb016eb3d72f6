package core

// Terminal stages are sinks that walk the sequence once and produce a final
// result, such as a slice of values, or just run it for its side effects.

// Sink receives materialized elements. A non-nil error from Push stops the
// traversal and is returned to the caller unchanged.
type Sink[T any] interface {
	Push(T) error
}

// SinkFunc adapts a function to a Sink.
type SinkFunc[T any] func(T) error

func (f SinkFunc[T]) Push(v T) error { return f(v) }

// Materialize walks the sequence once and copies every element, in
// traversal order, into a newly allocated slice. The result is never nil.
func Materialize[T any]() Stage[T, []T] {
	return Terminate("materialize", func(s Sequence[T]) []T {
		out := []T{}
		for c, end := s.Begin(), s.End(); !c.Equal(end); c = c.Next() {
			out = append(out, c.Value())
		}
		return out
	})
}

// ToSlice is an alias of Materialize.
func ToSlice[T any]() Stage[T, []T] {
	return Materialize[T]()
}

// ForEach walks the sequence once, calling fn for every element.
func ForEach[T any](fn func(T)) Stage[T, struct{}] {
	return Terminate("for-each", func(s Sequence[T]) struct{} {
		for c, end := s.Begin(), s.End(); !c.Equal(end); c = c.Next() {
			fn(c.Value())
		}
		return struct{}{}
	})
}

// Into materializes the sequence into sink, stopping at the first error.
// The Result holds the number of elements accepted, alongside the sink's
// error if it refused one.
func Into[T any](sink Sink[T]) Stage[T, Result[int]] {
	return Terminate("into", func(s Sequence[T]) Result[int] {
		n := 0
		for c, end := s.Begin(), s.End(); !c.Equal(end); c = c.Next() {
			if err := sink.Push(c.Value()); err != nil {
				return NewResult(n, err)
			}
			n++
		}
		return Ok(n)
	})
}
