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

// resolved implements the Future returned by Resolved.
type resolved[T, E any] struct {
	result Result[T, E]
}

// Resolved returns a future that is immediately ready with the given
// outcome. Its first (and only valid) poll returns Ready carrying exactly
// that outcome; in particular a failure value comes back verbatim, unaltered
// in type or content. It never returns Pending.
func Resolved[T, E any](result Result[T, E]) Future[T, E] {
	return resolved[T, E]{result: result}
}

// Poll implements Future.
func (f resolved[T, E]) Poll() Poll[T, E] {
	return Ready(f.result)
}

// IntoFuture implements Futurable.
func (f resolved[T, E]) IntoFuture() Future[T, E] {
	return f
}
