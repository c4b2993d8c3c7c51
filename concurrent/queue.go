/**
 * Copyright (c) 2023, The Moirai Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

// Package concurrent provides a small, thread-safe, closable FIFO queue with
// a non-blocking receive. It is the kind of source the future package's Recv
// adapter consumes, but it has no dependency on futures and can be used on
// its own.
package concurrent

import (
	"errors"
	"sync"
)

// ErrQueueClosed is returned by Push to indicate the queue cannot accept the
// new element because it is closed, and by TryRecv once a closed queue has
// been drained.
var ErrQueueClosed = errors.New("queue: closed")

// A Queue is a thread-safe first-in-first-out container. The zero value is
// not usable; create one with NewQueue.
type Queue[T any] struct {
	// Guards elements and closed.
	mutex    sync.Mutex
	elements []T
	closed   bool
}

// NewQueue creates an empty open queue.
func NewQueue[T any]() *Queue[T] {
	return &Queue[T]{}
}

// Push inserts the given element at the tail of the queue. It returns
// ErrQueueClosed if the queue has been closed.
func (queue *Queue[T]) Push(element T) error {
	queue.mutex.Lock()
	defer queue.mutex.Unlock()

	if queue.closed {
		return ErrQueueClosed
	}
	queue.elements = append(queue.elements, element)
	return nil
}

// TryRecv pops one element from the head of the queue without blocking:
//
//	(v, true, nil):              an element was available.
//	(_, false, nil):             the queue is currently empty but still open.
//	(_, false, ErrQueueClosed):  the queue is closed and fully drained.
//
// Elements that were pushed before Close remain receivable after it.
func (queue *Queue[T]) TryRecv() (element T, ok bool, err error) {
	queue.mutex.Lock()
	defer queue.mutex.Unlock()

	if len(queue.elements) == 0 {
		if queue.closed {
			err = ErrQueueClosed
		}
		return
	}

	element, ok = queue.elements[0], true
	queue.elements = queue.elements[1:]
	return
}

// Empty returns true if the queue contains no elements.
func (queue *Queue[T]) Empty() bool {
	queue.mutex.Lock()
	defer queue.mutex.Unlock()
	return len(queue.elements) == 0
}

// Len returns the number of queued elements.
func (queue *Queue[T]) Len() int {
	queue.mutex.Lock()
	defer queue.mutex.Unlock()
	return len(queue.elements)
}

// Close stops the queue from accepting new elements. Elements that were
// already submitted are still available via TryRecv; once they run out,
// TryRecv reports ErrQueueClosed. Closing an already-closed queue is a
// no-op.
func (queue *Queue[T]) Close() {
	queue.mutex.Lock()
	defer queue.mutex.Unlock()
	queue.closed = true
}
