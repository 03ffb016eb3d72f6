package core

type iterateSource[T any] struct {
	next  func(T) T
	while func(T) bool
}

// iterateCursor counts its steps so that two live positions can be
// compared without requiring T to be comparable.
type iterateCursor[T any] struct {
	src *iterateSource[T]
	v   T
	n   int
	end bool
}

func (c iterateCursor[T]) Value() T { return c.v }

func (c iterateCursor[T]) Next() Cursor[T] {
	return iterateCursor[T]{src: c.src, v: c.src.next(c.v), n: c.n + 1}
}

func (c iterateCursor[T]) Prev() Cursor[T] { panic(ErrNotBidirectional) }

func (c iterateCursor[T]) done() bool { return c.end || !c.src.while(c.v) }

func (c iterateCursor[T]) Equal(other Cursor[T]) bool {
	o, ok := other.(iterateCursor[T])
	if !ok || o.src != c.src {
		return false
	}
	if c.done() || o.done() {
		return c.done() && o.done()
	}
	return c.n == o.n
}

// Iterate generates seed, next(seed), next(next(seed)), ... for as long as
// while holds. The sequence is lazy and can be traversed many times, but
// only forward: there is no way to step back through next.
func Iterate[T any](seed T, next func(T) T, while func(T) bool) View[T] {
	src := &iterateSource[T]{next: next, while: while}
	return View[T]{
		begin: iterateCursor[T]{src: src, v: seed},
		end:   iterateCursor[T]{src: src, end: true},
		dir:   Forward,
	}
}
