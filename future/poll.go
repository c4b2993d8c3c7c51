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

// A Poll is the result of one poll attempt: either the terminal outcome of
// the computation ("ready") or the continuation to poll next time
// ("pending"). It is the full observable surface of every Future.
type Poll[T, E any] struct {
	// Non-nil iff the poll is pending.
	next   Future[T, E]
	result Result[T, E]
}

// Ready returns a Poll indicating the computation finished with the given
// outcome.
func Ready[T, E any](result Result[T, E]) Poll[T, E] {
	return Poll[T, E]{result: result}
}

// Pending returns a Poll indicating the computation has not finished yet.
// next must be non-nil; it is the sole valid continuation of the computation
// that was polled.
func Pending[T, E any](next Future[T, E]) Poll[T, E] {
	return Poll[T, E]{next: next}
}

// IsReady reports whether the computation produced its terminal outcome.
func (poll Poll[T, E]) IsReady() bool {
	return poll.next == nil
}

// Result returns the terminal outcome. It is only meaningful when IsReady
// reports true; otherwise it returns a zero Result.
func (poll Poll[T, E]) Result() Result[T, E] {
	return poll.result
}

// Future returns the continuation of a pending computation, or nil when the
// poll is ready.
func (poll Poll[T, E]) Future() Future[T, E] {
	return poll.next
}
