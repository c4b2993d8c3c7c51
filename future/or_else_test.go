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

var _ = Describe("OrElse: chain a fallback computation on failure", func() {
	It("feeds the failure value to the fallback", func() {
		f := future.OrElse(
			future.Err[int, string]("boom").IntoFuture(),
			func(e string) future.Futurable[int, int] {
				return future.Ok[int, int](len(e))
			},
		)
		poll := f.Poll()
		Expect(poll.IsReady()).Should(BeTrue())
		Expect(poll.Result().Value()).Should(Equal(4))
	})

	It("short-circuits on success without invoking the fallback", func() {
		calls := 0
		f := future.OrElse(
			future.Ok[int, string](1).IntoFuture(),
			func(e string) future.Futurable[int, string] {
				calls++
				return future.Err[int, string](e)
			},
		)
		poll := f.Poll()
		Expect(poll.IsReady()).Should(BeTrue())
		Expect(poll.Result().Value()).Should(Equal(1))
		Expect(calls).Should(Equal(0))
	})

	It("can fail again with a re-typed failure", func() {
		f := future.OrElse(
			future.Err[int, string]("boom").IntoFuture(),
			func(e string) future.Futurable[int, int] {
				return future.Err[int, int](len(e))
			},
		)
		poll := f.Poll()
		Expect(poll.IsReady()).Should(BeTrue())
		Expect(poll.Result().IsOk()).Should(BeFalse())
		Expect(poll.Result().Err()).Should(Equal(4))
	})

	It("stays in the first phase while the first future is pending", func() {
		inner, _ := newCountdown(1, future.Err[int, string]("late"))
		f := future.OrElse(inner, func(e string) future.Futurable[int, string] {
			return future.Ok[int, string](0)
		})

		poll := f.Poll()
		Expect(poll.IsReady()).Should(BeFalse())
		poll = poll.Future().Poll()
		Expect(poll.IsReady()).Should(BeTrue())
		Expect(poll.Result().Value()).Should(Equal(0))
	})
})
