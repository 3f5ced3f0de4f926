package parser

// Unbounded is used as Repeat upper bound when the number of repetitions is not limited.
const Unbounded = -1

// Predicate reports whether a token matches.
type Predicate[T any] func(T) bool

// Equal returns a predicate matching tokens equal to t.
func Equal[T comparable](t T) Predicate[T] {
	return func(x T) bool {
		return x == t
	}
}

// Node is a generic syntax node tagged by node kind.
type Node[K any] struct {
	Kind     K
	Children []Node[K]
}

// NewNode creates a node with no children.
func NewNode[K any](kind K) Node[K] {
	return Node[K]{Kind: kind}
}

// Cursor matches tokens fetched from a Buffer.
type Cursor[T comparable] struct {
	buffer *Buffer[T]
}

// NewCursor creates a cursor over a new buffer owning producer p.
func NewCursor[T comparable](p Producer[T]) *Cursor[T] {
	return &Cursor[T]{NewBuffer(p)}
}

// Buffer returns underlying buffer.
func (c *Cursor[T]) Buffer() *Buffer[T] {
	return c.buffer
}

func (c *Cursor[T]) Mark() Pos {
	return c.buffer.Mark()
}

func (c *Cursor[T]) Reset(pos Pos) {
	c.buffer.Reset(pos)
}

func (c *Cursor[T]) Peek() (T, bool) {
	return c.buffer.Peek()
}

// Next consumes and returns the next token whatever it is.
func (c *Cursor[T]) Next() (T, bool) {
	return c.buffer.Next()
}

// Expect consumes and returns the next token if it matches.
// Returns false and keeps position otherwise.
func (c *Cursor[T]) Expect(match Predicate[T]) (T, bool) {
	t, ok := c.buffer.Peek()
	if !ok || !match(t) {
		var zero T
		return zero, false
	}

	c.buffer.pos++
	return t, true
}

// Repeat calls f until it fails or until atMost results are collected (atMost < 0 means no limit).
// Returns collected results if there are at least atLeast of them.
// Otherwise restores position and returns false.
func Repeat[T comparable, R any](c *Cursor[T], atLeast, atMost int, f func() (R, bool)) ([]R, bool) {
	pos := c.Mark()
	var results []R
	for atMost < 0 || len(results) < atMost {
		r, ok := f()
		if !ok {
			break
		}

		results = append(results, r)
	}

	if len(results) >= atLeast {
		if results == nil {
			results = []R{}
		}
		return results, true
	}

	c.Reset(pos)
	return nil, false
}

// Lookahead calls f and restores position whatever the outcome is.
// Returns true if f success equals positive.
func Lookahead[T comparable, R any](c *Cursor[T], positive bool, f func() (R, bool)) bool {
	pos := c.Mark()
	_, ok := f()
	c.Reset(pos)
	return ok == positive
}
