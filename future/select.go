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

// selectFuture implements the Future returned by Select.
type selectFuture[T, E any] struct {
	a Future[T, E]
	b Future[T, E]
}

// Select races two futures of matching types and completes with the outcome
// of whichever finishes first, success or failure alike. The loser is
// dropped without ever being polled again; dropping it is the only
// cancellation there is. a is always polled before b, so when both are ready
// within the same poll, a's outcome wins. b never gets polled at all in a
// step where a completes.
func Select[T, E any](a Future[T, E], b Futurable[T, E]) Future[T, E] {
	return selectFuture[T, E]{a: a, b: b.IntoFuture()}
}

// Poll implements Future.
func (f selectFuture[T, E]) Poll() Poll[T, E] {
	pollA := f.a.Poll()
	if pollA.IsReady() {
		return pollA
	}

	pollB := f.b.Poll()
	if pollB.IsReady() {
		return pollB
	}

	return Pending[T, E](selectFuture[T, E]{a: pollA.Future(), b: pollB.Future()})
}

// IntoFuture implements Futurable.
func (f selectFuture[T, E]) IntoFuture() Future[T, E] {
	return f
}
