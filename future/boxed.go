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

// boxed implements the Future returned by Box.
type boxed[T, E any] struct {
	future Future[T, E]
}

// Box wraps a future behind an opaque handle that exposes nothing but the
// Future contract, so futures built from different concrete combinator
// types can be stored side by side under one handle type. It changes no
// behavior; the Future interface already erases the concrete type, and Box
// merely makes the erasure explicit at an API boundary.
func Box[T, E any](future Future[T, E]) Future[T, E] {
	return boxed[T, E]{future: future}
}

// Poll implements Future.
func (f boxed[T, E]) Poll() Poll[T, E] {
	poll := f.future.Poll()
	if poll.IsReady() {
		return poll
	}
	return Pending[T, E](boxed[T, E]{future: poll.Future()})
}

// IntoFuture implements Futurable.
func (f boxed[T, E]) IntoFuture() Future[T, E] {
	return f
}
