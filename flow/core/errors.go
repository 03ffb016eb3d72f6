package core

import (
	"errors"
	"fmt"
)

var (
	// ErrNotBidirectional is raised when a stage needs to step backward over
	// a sequence that can only be traversed forward.
	ErrNotBidirectional = errors.New("sequence is not bidirectional")

	// ErrStaleCursor is raised when a cursor is used after the source it
	// borrows from was modified.
	ErrStaleCursor = errors.New("cursor used after its source was modified")

	// ErrKindMismatch is raised when a stage's Kind does not match what it
	// produces, such as a Terminator yielding a sequence or a Terminator
	// composed in front of another stage.
	ErrKindMismatch = errors.New("stage kind does not match its result")

	// ErrEmpty is returned by terminals that need at least one element.
	ErrEmpty = errors.New("sequence is empty")
)

// ComposeError reports that a stage could not be bound to its upstream
// sequence. It is raised when the pipeline is composed, before any element
// is pulled.
type ComposeError struct {
	Stage string
	Err   error
}

func (e *ComposeError) Error() string {
	return fmt.Sprintf("compose %s: %v", e.Stage, e.Err)
}

func (e *ComposeError) Unwrap() error { return e.Err }
