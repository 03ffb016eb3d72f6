package core

import "unicode/utf8"

// sliceSource identifies one adopted slice so that cursors from the same
// view compare equal only to each other.
type sliceSource[T any] struct {
	items []T
}

type sliceCursor[T any] struct {
	src *sliceSource[T]
	i   int
}

func (c sliceCursor[T]) Value() T        { return c.src.items[c.i] }
func (c sliceCursor[T]) Next() Cursor[T] { return sliceCursor[T]{c.src, c.i + 1} }
func (c sliceCursor[T]) Prev() Cursor[T] { return sliceCursor[T]{c.src, c.i - 1} }

func (c sliceCursor[T]) Equal(other Cursor[T]) bool {
	o, ok := other.(sliceCursor[T])
	return ok && o.src == c.src && o.i == c.i
}

// FromSlice adopts a slice as a bidirectional View. The slice is borrowed,
// not copied: writes to its elements are visible through the view.
func FromSlice[T any](items []T) View[T] {
	src := &sliceSource[T]{items: items}
	return View[T]{
		begin: sliceCursor[T]{src, 0},
		end:   sliceCursor[T]{src, len(items)},
		dir:   Bidirectional,
	}
}

type textSource struct {
	text string
}

type byteCursor struct {
	src *textSource
	i   int
}

func (c byteCursor) Value() byte        { return c.src.text[c.i] }
func (c byteCursor) Next() Cursor[byte] { return byteCursor{c.src, c.i + 1} }
func (c byteCursor) Prev() Cursor[byte] { return byteCursor{c.src, c.i - 1} }

func (c byteCursor) Equal(other Cursor[byte]) bool {
	o, ok := other.(byteCursor)
	return ok && o.src == c.src && o.i == c.i
}

// FromString adopts a text buffer as a bidirectional View of its bytes.
func FromString(text string) View[byte] {
	src := &textSource{text: text}
	return View[byte]{
		begin: byteCursor{src, 0},
		end:   byteCursor{src, len(text)},
		dir:   Bidirectional,
	}
}

// runeCursor sits on the byte offset where a rune starts.
type runeCursor struct {
	src *textSource
	i   int
}

func (c runeCursor) Value() rune {
	r, _ := utf8.DecodeRuneInString(c.src.text[c.i:])
	return r
}

func (c runeCursor) Next() Cursor[rune] {
	_, size := utf8.DecodeRuneInString(c.src.text[c.i:])
	return runeCursor{c.src, c.i + size}
}

func (c runeCursor) Prev() Cursor[rune] {
	_, size := utf8.DecodeLastRuneInString(c.src.text[:c.i])
	return runeCursor{c.src, c.i - size}
}

func (c runeCursor) Equal(other Cursor[rune]) bool {
	o, ok := other.(runeCursor)
	return ok && o.src == c.src && o.i == c.i
}

// FromRunes adopts a text buffer as a bidirectional View of its UTF-8
// decoded runes. Invalid encodings yield utf8.RuneError, one byte at a time.
func FromRunes(text string) View[rune] {
	src := &textSource{text: text}
	return View[rune]{
		begin: runeCursor{src, 0},
		end:   runeCursor{src, len(text)},
		dir:   Bidirectional,
	}
}
