/*
Package parser defines a backtracking token buffer and parsing primitives built on it.

Buffer lazily pulls tokens from a Producer and retains every token it has ever fetched,
so that any position returned by Mark stays valid for the whole buffer lifetime.
Cursor adds token matching on top of a Buffer; Repeat and Lookahead implement
bounded repetition and zero-width assertions.
Every failed operation restores the cursor to the position it had before the call.

Neither Buffer nor Cursor is safe for concurrent use.
*/
package parser

import "fmt"

// Pos is a position in buffered token sequence, valid only for the buffer it was obtained from.
type Pos int

// Buffer retains tokens fetched from a producer and allows to return to any earlier position.
type Buffer[T any] struct {
	producer  Producer[T]
	tokens    []T
	pos       int
	exhausted bool
}

// NewBuffer creates a buffer owning producer p.
func NewBuffer[T any](p Producer[T]) *Buffer[T] {
	return &Buffer[T]{producer: p}
}

// Mark returns current position.
func (b *Buffer[T]) Mark() Pos {
	return Pos(b.pos)
}

// Reset sets current position. Panics if pos is beyond the buffered tokens.
func (b *Buffer[T]) Reset(pos Pos) {
	if pos < 0 || int(pos) > len(b.tokens) {
		panic(fmt.Sprintf("cannot reset to position %d: %d tokens buffered", pos, len(b.tokens)))
	}

	b.pos = int(pos)
}

// Len returns the number of buffered tokens.
func (b *Buffer[T]) Len() int {
	return len(b.tokens)
}

// Peek returns the token at current position without advancing.
// Returns false if the producer is exhausted.
func (b *Buffer[T]) Peek() (T, bool) {
	for b.pos >= len(b.tokens) {
		if !b.fetch() {
			var zero T
			return zero, false
		}
	}

	return b.tokens[b.pos], true
}

// Next returns the token at current position and advances.
// Returns false and keeps position if the producer is exhausted.
func (b *Buffer[T]) Next() (T, bool) {
	t, ok := b.Peek()
	if ok {
		b.pos++
	}
	return t, ok
}

func (b *Buffer[T]) fetch() bool {
	if b.exhausted {
		return false
	}

	t, ok := b.producer.Next()
	if !ok {
		b.exhausted = true
		return false
	}

	b.tokens = append(b.tokens, t)
	return true
}
