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

// Package future provides a minimal, poll-based future abstraction: a
// single-shot computation that eventually produces either a success value of
// type T or a failure value of type E, advanced by repeated polling.
//
// The design is borrowed from an early revision of Rust's futures library
// [0][1], before wakers and pinning were introduced: Poll consumes the future
// and hands back either the terminal outcome or a brand-new continuation.
// There is no wake/notify mechanism in this package; when and how often to
// re-poll a pending future (spin, timer, or an outside event source) is
// entirely up to the caller.
//
// [0]: http://aturon.github.io/blog/2016/08/11/futures/
// [1]: https://aturon.github.io/blog/2016/09/07/futures-design/
package future

// A Futurable is any value that can be turned into a Future. It is the glue
// that lets combinator callbacks (e.g., the one given to AndThen) return
// either an immediate Result or a nested Future interchangeably.
//
// Every Future is trivially Futurable (IntoFuture returns the future itself)
// and every Result is Futurable (IntoFuture wraps it into a Resolved future).
type Futurable[T, E any] interface {
	// IntoFuture converts the value into a Future producing the same outcome.
	IntoFuture() Future[T, E]
}

// A Future represents a computation that eventually yields exactly one
// Result[T, E].
//
// Futures alone are inert; they must be actively polled to make progress.
// Unlike the callback-registering designs found elsewhere, a Future here is
// self-consuming: each call to Poll uses up the receiver and returns either
// the terminal outcome or the sole valid continuation to poll next time.
// This makes the single-shot lifecycle explicit and keeps composite futures
// free of shared mutable state and locking: ownership of sub-futures simply
// moves along with each returned continuation.
type Future[T, E any] interface {
	Futurable[T, E]

	// Poll attempts to advance the computation by one step. It must never
	// block and must return quickly; work that may take a while belongs on a
	// thread of its own, with a leaf future (such as Recv) bridging the
	// completion back into the poll model.
	//
	// Poll consumes the receiver. When the returned Poll is pending, the
	// continuation it carries is the only valid handle to the computation;
	// the polled value must not be used again. When it is ready, the
	// computation is over. Polling a future past its completion is a contract
	// violation with unspecified behavior; implementations are not required
	// to (and generally do not) defend against it.
	Poll() Poll[T, E]
}
