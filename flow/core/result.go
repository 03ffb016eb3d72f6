package core

// Result carries the outcome of a terminal stage that can fail, such as
// materializing into a bounded sink. It holds either a value or an error.
type Result[T any] struct {
	value T
	err   error
}

// Ok creates a successful Result containing the given value.
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value}
}

// Err creates a failed Result.
func Err[T any](err error) Result[T] {
	return Result[T]{err: err}
}

// NewResult creates a Result with explicit control over both fields.
// A partially complete value may accompany an error.
func NewResult[T any](value T, err error) Result[T] {
	return Result[T]{value: value, err: err}
}

// Value returns the contained value. It is the zero value for a failed
// Result unless one was supplied through NewResult.
func (r Result[T]) Value() T { return r.value }

// Error returns the contained error, or nil.
func (r Result[T]) Error() error { return r.err }

// IsError reports whether the Result holds an error.
func (r Result[T]) IsError() bool { return r.err != nil }

// IsValue reports whether the Result succeeded.
func (r Result[T]) IsValue() bool { return r.err == nil }

// Get unpacks the Result into Go's usual value, error pair.
func (r Result[T]) Get() (T, error) { return r.value, r.err }
