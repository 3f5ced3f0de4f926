// Package queue defines a FIFO queue backed by a growing ring buffer.
package queue

const minSize = 4

// Queue holds pending items. Zero value is not usable, use New.
type Queue[T any] struct {
	items      []T
	mask       int
	head, tail int
}

// New creates a queue containing items in the given order.
func New[T any](items ...T) *Queue[T] {
	size := computeSize(len(items) + 1)
	q := &Queue[T]{items: make([]T, size), mask: size - 1, tail: len(items)}
	copy(q.items, items)
	return q
}

func (q *Queue[T]) IsEmpty() bool {
	return q.head == q.tail
}

func (q *Queue[T]) Len() int {
	return (q.tail - q.head) & q.mask
}

// Append adds an item to the queue tail.
func (q *Queue[T]) Append(item T) *Queue[T] {
	q.items[q.tail] = item
	q.tail = (q.tail + 1) & q.mask
	if q.tail == q.head {
		q.grow()
	}
	return q
}

// First removes and returns the head item, returns false if the queue is empty.
func (q *Queue[T]) First() (T, bool) {
	var zero T
	if q.head == q.tail {
		return zero, false
	}

	result := q.items[q.head]
	q.items[q.head] = zero
	q.head = (q.head + 1) & q.mask
	return result, true
}

// computeSize returns the least power of 2 not less than length and minSize.
func computeSize(length int) int {
	size := minSize
	for size < length {
		size <<= 1
	}
	return size
}

func (q *Queue[T]) grow() {
	l := len(q.items)
	items := make([]T, l<<1)
	n := copy(items, q.items[q.head:])
	copy(items[n:], q.items[:q.head])
	q.head = 0
	q.tail = l
	q.mask = len(items) - 1
	q.items = items
}
