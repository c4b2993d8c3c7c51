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

import "runtime"

// BlockOn drives a future to completion on the calling goroutine by polling
// it in a loop, yielding the processor between attempts, and returns its
// outcome.
//
// It is the most naive driving cadence there is and exists for tests, demos
// and other situations where busy-polling is acceptable. Anything smarter
// (timers, event loops, pools) belongs in a layer of its own on top of the
// combinators, never inside them.
func BlockOn[T, E any](future Future[T, E]) Result[T, E] {
	for {
		poll := future.Poll()
		if poll.IsReady() {
			return poll.Result()
		}
		future = poll.Future()
		runtime.Gosched()
	}
}
