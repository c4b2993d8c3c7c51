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

// mapErrFuture implements the Future returned by MapErr.
type mapErrFuture[T, E, F any] struct {
	future Future[T, E]
	fn     func(E) F
}

// MapErr is the mirror of Map: it applies fn to the failure value of f,
// passing a success outcome through unchanged.
func MapErr[T, E, F any](future Future[T, E], fn func(E) F) Future[T, F] {
	return mapErrFuture[T, E, F]{future: future, fn: fn}
}

// Poll implements Future.
func (f mapErrFuture[T, E, F]) Poll() Poll[T, F] {
	poll := f.future.Poll()
	if !poll.IsReady() {
		return Pending[T, F](mapErrFuture[T, E, F]{future: poll.Future(), fn: f.fn})
	}

	result := poll.Result()
	if result.IsOk() {
		return Ready(Ok[T, F](result.Value()))
	}
	return Ready(Err[T, F](f.fn(result.Err())))
}

// IntoFuture implements Futurable.
func (f mapErrFuture[T, E, F]) IntoFuture() Future[T, F] {
	return f
}
