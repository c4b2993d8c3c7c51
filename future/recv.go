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

package future

import "errors"

// ErrDisconnected is the failure produced by a receive future when the
// upstream producer is gone and nothing was delivered.
var ErrDisconnected = errors.New("future: source disconnected")

// A TryReceiver is a non-blocking, single-consumer source of values. It is
// the only bridge this package assumes between a classic queue primitive and
// the poll model; no other properties of the source are relied upon.
type TryReceiver[T any] interface {
	// TryRecv attempts one non-blocking receive:
	//
	//	(v, true, nil):      a value was available.
	//	(_, false, nil):     nothing available yet.
	//	(_, false, non-nil): the source is permanently closed and drained.
	TryRecv() (value T, ok bool, err error)
}

// recv implements the Future returned by Recv.
type recv[T any] struct {
	source TryReceiver[T]
}

// Recv returns a future that completes with the next value delivered by
// source. Each poll performs exactly one non-blocking receive: an available
// value completes the future successfully, an empty source leaves it
// pending, and a closed-and-drained source fails it with ErrDisconnected.
// The future never blocks waiting on the source.
func Recv[T any](source TryReceiver[T]) Future[T, error] {
	return recv[T]{source: source}
}

// Poll implements Future.
func (f recv[T]) Poll() Poll[T, error] {
	value, ok, err := f.source.TryRecv()
	switch {
	case ok:
		return Ready(Ok[T, error](value))
	case err != nil:
		return Ready(Err[T, error](ErrDisconnected))
	default:
		return Pending[T, error](f)
	}
}

// IntoFuture implements Futurable.
func (f recv[T]) IntoFuture() Future[T, error] {
	return f
}

// recvChan implements the Future returned by RecvChan.
type recvChan[T any] struct {
	ch <-chan T
}

// RecvChan is Recv over a plain channel: a non-blocking receive per poll,
// with a closed channel reported as ErrDisconnected.
func RecvChan[T any](ch <-chan T) Future[T, error] {
	return recvChan[T]{ch: ch}
}

// Poll implements Future.
func (f recvChan[T]) Poll() Poll[T, error] {
	select {
	case value, ok := <-f.ch:
		if !ok {
			return Ready(Err[T, error](ErrDisconnected))
		}
		return Ready(Ok[T, error](value))
	default:
		return Pending[T, error](f)
	}
}

// IntoFuture implements Futurable.
func (f recvChan[T]) IntoFuture() Future[T, error] {
	return f
}
