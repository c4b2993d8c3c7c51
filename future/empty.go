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

// empty implements the Future returned by Empty.
type empty[T, E any] struct{}

// Empty returns a future that never completes: every poll returns Pending.
// It is stateless and carries no owned resources, so the continuation it
// hands back is simply itself.
func Empty[T, E any]() Future[T, E] {
	return empty[T, E]{}
}

// Poll implements Future.
func (f empty[T, E]) Poll() Poll[T, E] {
	return Pending[T, E](f)
}

// IntoFuture implements Futurable.
func (f empty[T, E]) IntoFuture() Future[T, E] {
	return f
}
