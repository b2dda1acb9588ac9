// Package queue provides a bounded FIFO buffer used to hold sliding
// observation windows.
package queue

import (
	"fmt"

	"github.com/thruflo/statewindow/internal/verdict"
)

// ErrInvalidMaxLength is returned by NewFixed for a non-positive capacity.
// It matches verdict.ErrInvalidArgument.
var ErrInvalidMaxLength = fmt.Errorf("%w: maxLength must be a positive integer", verdict.ErrInvalidArgument)

// Fixed is a first-in first-out buffer holding at most MaxLength items.
// Pushing onto a full queue evicts the oldest item.
//
// Fixed is not safe for concurrent use.
type Fixed[T any] struct {
	buf   []T
	start int
	len   int
}

// NewFixed creates an empty queue with the given capacity.
func NewFixed[T any](maxLength int) (*Fixed[T], error) {
	if maxLength <= 0 {
		return nil, fmt.Errorf("%w (got %d)", ErrInvalidMaxLength, maxLength)
	}
	return &Fixed[T]{buf: make([]T, maxLength)}, nil
}

// Push appends item, dropping the oldest item if the queue is full.
func (q *Fixed[T]) Push(item T) {
	if q.len < len(q.buf) {
		q.buf[(q.start+q.len)%len(q.buf)] = item
		q.len++
		return
	}
	q.buf[q.start] = item
	q.start = (q.start + 1) % len(q.buf)
}

// Snapshot returns the items oldest first in a newly allocated slice.
func (q *Fixed[T]) Snapshot() []T {
	out := make([]T, q.len)
	for i := 0; i < q.len; i++ {
		out[i] = q.buf[(q.start+i)%len(q.buf)]
	}
	return out
}

// Len returns the number of items currently held.
func (q *Fixed[T]) Len() int { return q.len }

// MaxLength returns the queue capacity.
func (q *Fixed[T]) MaxLength() int { return len(q.buf) }

// Full reports whether the queue holds MaxLength items.
func (q *Fixed[T]) Full() bool { return q.len == len(q.buf) }

// Reset empties the queue without changing its capacity.
func (q *Fixed[T]) Reset() {
	var zero T
	for i := range q.buf {
		q.buf[i] = zero
	}
	q.start = 0
	q.len = 0
}
