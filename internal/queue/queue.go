// Package queue provides the unbounded FIFO behind AsyncModel.
//
// The queue deliberately has no capacity bound: input producers (UI
// event handlers feeding pen points) must never stall. The caller owns
// the growth risk and can watch depth via Len.
package queue

import "sync"

// Queue is an unbounded FIFO. Push never blocks; Pop blocks until an
// item arrives or the queue is closed. Safe for any number of
// concurrent pushers and poppers.
type Queue[T any] struct {
	mu     sync.Mutex
	cond   *sync.Cond
	items  []T
	head   int
	closed bool
}

// New creates an empty queue.
func New[T any]() *Queue[T] {
	q := &Queue[T]{}
	q.cond = sync.NewCond(&q.mu)
	return q
}

// Push appends v and reports whether it was accepted. Pushes after
// Close are rejected.
func (q *Queue[T]) Push(v T) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return false
	}
	q.items = append(q.items, v)
	q.cond.Signal()
	return true
}

// Pop removes and returns the oldest item, blocking while the queue is
// empty. It returns false once the queue is closed and fully drained.
func (q *Queue[T]) Pop() (T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for q.head == len(q.items) && !q.closed {
		q.cond.Wait()
	}
	var zero T
	if q.head == len(q.items) {
		return zero, false
	}
	v := q.items[q.head]
	q.items[q.head] = zero // drop the reference so it can be collected
	q.head++

	// Reclaim space: reset when drained, slide when the dead prefix
	// dominates.
	switch {
	case q.head == len(q.items):
		q.items = q.items[:0]
		q.head = 0
	case q.head >= 64 && q.head*2 >= len(q.items):
		n := copy(q.items, q.items[q.head:])
		q.items = q.items[:n]
		q.head = 0
	}
	return v, true
}

// Close rejects further pushes. Items already queued can still be
// popped; once they drain, Pop reports false. Close is idempotent.
func (q *Queue[T]) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return
	}
	q.closed = true
	q.cond.Broadcast()
}

// Len returns the number of items waiting in the queue.
func (q *Queue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items) - q.head
}
