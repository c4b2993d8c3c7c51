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

package future_test

import (
	"github.com/botobag/moirai/future"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Select: race two futures for the first outcome", func() {
	It("completes with the first future's outcome when it is ready, never polling the second", func() {
		second, secondPolls := newCountdown(3, future.Ok[int, string](2))
		f := future.Select[int, string](
			future.Ok[int, string](1).IntoFuture(),
			second,
		)
		poll := f.Poll()
		Expect(poll.IsReady()).Should(BeTrue())
		Expect(poll.Result().Value()).Should(Equal(1))
		Expect(*secondPolls).Should(Equal(0))
	})

	It("completes with the second future's outcome when only it is ready", func() {
		first, _ := newCountdown(5, future.Ok[int, string](1))
		f := future.Select[int, string](first, future.Ok[int, string](2))
		poll := f.Poll()
		Expect(poll.IsReady()).Should(BeTrue())
		Expect(poll.Result().Value()).Should(Equal(2))
	})

	It("lets the first-listed future win a tie", func() {
		f := future.Select[int, string](
			future.Ok[int, string](1).IntoFuture(),
			future.Ok[int, string](2),
		)
		Expect(f.Poll().Result().Value()).Should(Equal(1))
	})

	It("completes with a failure as readily as with a success", func() {
		second, _ := newCountdown(5, future.Ok[int, string](2))
		f := future.Select[int, string](
			future.Err[int, string]("boom").IntoFuture(),
			second,
		)
		poll := f.Poll()
		Expect(poll.IsReady()).Should(BeTrue())
		Expect(poll.Result().Err()).Should(Equal("boom"))
	})

	It("stays pending while both sides are pending, advancing both", func() {
		first, firstPolls := newCountdown(2, future.Ok[int, string](1))
		second, secondPolls := newCountdown(3, future.Ok[int, string](2))
		f := future.Select[int, string](first, second)

		poll := f.Poll()
		Expect(poll.IsReady()).Should(BeFalse())
		Expect(*firstPolls).Should(Equal(1))
		Expect(*secondPolls).Should(Equal(1))

		// Nothing has changed for either side, so the continuation remains
		// pending on the next attempt too.
		poll = poll.Future().Poll()
		Expect(poll.IsReady()).Should(BeFalse())
		Expect(*firstPolls).Should(Equal(2))
		Expect(*secondPolls).Should(Equal(2))

		poll = poll.Future().Poll()
		Expect(poll.IsReady()).Should(BeTrue())
		Expect(poll.Result().Value()).Should(Equal(1))
	})
})
