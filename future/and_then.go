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

// andThen implements the Future returned by AndThen. It is the first phase
// of the chain; once the first future succeeds, the chained future stands
// alone as the continuation and this wrapper disappears.
type andThen[T, U, E any] struct {
	future Future[T, E]
	fn     func(T) Futurable[U, E]
}

// AndThen returns a future that, once f succeeds, invokes fn with the
// success value to obtain a dependent second computation and drives that to
// completion. fn may return a bare Result or another Future; either is
// accepted through Futurable. A failure of f short-circuits: the failure
// value is returned as-is and fn is never invoked.
func AndThen[T, U, E any](future Future[T, E], fn func(T) Futurable[U, E]) Future[U, E] {
	return andThen[T, U, E]{future: future, fn: fn}
}

// Poll implements Future.
func (f andThen[T, U, E]) Poll() Poll[U, E] {
	poll := f.future.Poll()
	if !poll.IsReady() {
		return Pending[U, E](andThen[T, U, E]{future: poll.Future(), fn: f.fn})
	}

	result := poll.Result()
	if !result.IsOk() {
		return Ready(Err[U, E](result.Err()))
	}

	// The chained future is polled once right away; if it is still pending
	// it becomes the continuation all by itself.
	return f.fn(result.Value()).IntoFuture().Poll()
}

// IntoFuture implements Futurable.
func (f andThen[T, U, E]) IntoFuture() Future[U, E] {
	return f
}
