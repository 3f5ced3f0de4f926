package parser

import "iter"

// Producer is a one-shot source of tokens.
// Next returns the next token and true, or zero value and false once the producer is exhausted.
// Buffer never calls Next again after it has returned false.
type Producer[T any] interface {
	Next() (T, bool)
}

// ProducerFunc adapts a function to Producer interface.
type ProducerFunc[T any] func() (T, bool)

func (f ProducerFunc[T]) Next() (T, bool) {
	return f()
}

// FromSlice creates a producer yielding items in order.
func FromSlice[T any](items []T) Producer[T] {
	i := 0
	return ProducerFunc[T](func() (T, bool) {
		if i >= len(items) {
			var zero T
			return zero, false
		}

		i++
		return items[i-1], true
	})
}

// FromSeq creates a producer pulling items from seq.
// stop releases the sequence and must be called if the producer is abandoned before exhaustion.
func FromSeq[T any](seq iter.Seq[T]) (p Producer[T], stop func()) {
	next, stop := iter.Pull(seq)
	return ProducerFunc[T](next), stop
}
