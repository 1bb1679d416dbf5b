package arangocorex

import (
	"sync"
)

// Very naive implementation of an unbounded FIFO queue
type queue[T any] struct {
	items  []T
	lock   sync.Mutex
	closed bool
}

func newQueue[T any]() *queue[T] {
	return &queue[T]{}
}

func (q *queue[T]) Push(item T) error {
	q.lock.Lock()
	if q.closed {
		q.lock.Unlock()
		return ErrQueueClosed
	}
	q.items = append(q.items, item)
	q.lock.Unlock()

	return nil
}

// TryNext pops the head of the queue, or reports false when the queue
// is empty or closed.
func (q *queue[T]) TryNext() (T, bool) {
	q.lock.Lock()
	if q.closed || len(q.items) == 0 {
		var empty T
		q.lock.Unlock()
		return empty, false
	}
	next := q.items[0]
	q.items = q.items[1:]
	q.lock.Unlock()

	return next, true
}

func (q *queue[T]) Len() int {
	q.lock.Lock()
	qlen := len(q.items)
	q.lock.Unlock()

	return qlen
}

// Close marks the queue closed and hands back whatever was still
// queued so the caller can fail those items.
func (q *queue[T]) Close() []T {
	q.lock.Lock()
	q.closed = true
	remaining := q.items
	q.items = nil
	q.lock.Unlock()

	return remaining
}
