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

// mapFuture implements the Future returned by Map.
type mapFuture[T, U, E any] struct {
	future Future[T, E]
	fn     func(T) U
}

// Map returns a future that applies fn to the success value of f. A failure
// outcome passes through unchanged and fn is never invoked for it. While f
// is pending, fn is retained for later application.
//
// Combinators are package-level functions rather than methods because a Go
// method cannot introduce the new type parameter U.
func Map[T, U, E any](future Future[T, E], fn func(T) U) Future[U, E] {
	return mapFuture[T, U, E]{future: future, fn: fn}
}

// Poll implements Future.
func (f mapFuture[T, U, E]) Poll() Poll[U, E] {
	poll := f.future.Poll()
	if !poll.IsReady() {
		return Pending[U, E](mapFuture[T, U, E]{future: poll.Future(), fn: f.fn})
	}

	result := poll.Result()
	if !result.IsOk() {
		return Ready(Err[U, E](result.Err()))
	}
	return Ready(Ok[U, E](f.fn(result.Value())))
}

// IntoFuture implements Futurable.
func (f mapFuture[T, U, E]) IntoFuture() Future[U, E] {
	return f
}
