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

// The combinator surface, end to end over resolved leaves.
var _ = Describe("Combinator smoke", func() {
	It("composes every combinator over a resolved value", func() {
		base := func() future.Future[int, string] {
			return future.Ok[int, string](1).IntoFuture()
		}

		Expect(future.BlockOn(base()).Value()).Should(Equal(1))

		Expect(future.BlockOn(
			future.Map(base(), func(v int) int { return v + 1 }),
		).Value()).Should(Equal(2))

		Expect(future.BlockOn(
			future.AndThen(base(), func(v int) future.Futurable[int, string] {
				return future.Ok[int, string](v)
			}),
		).Value()).Should(Equal(1))

		Expect(future.BlockOn(
			future.OrElse(base(), func(e string) future.Futurable[int, string] {
				return future.Err[int, string](e)
			}),
		).Value()).Should(Equal(1))

		Expect(future.BlockOn(
			future.Select[int, string](base(), future.Err[int, string]("boom")),
		).Value()).Should(Equal(1))

		result := future.BlockOn(
			future.Join[int, int, string](base(), future.Err[int, string]("boom")),
		)
		Expect(result.IsOk()).Should(BeFalse())
		Expect(result.Err()).Should(Equal("boom"))
	})

	It("threads one value through a longer pipeline", func() {
		f := future.MapErr(
			future.AndThen(
				future.Map(
					future.Ok[int, string](20).IntoFuture(),
					func(v int) int { return v + 1 },
				),
				func(v int) future.Futurable[int, string] {
					return future.Map(
						future.Ok[int, string](v).IntoFuture(),
						func(v int) int { return v * 2 },
					)
				},
			),
			func(e string) string { return "unreachable: " + e },
		)
		Expect(future.BlockOn(f).Value()).Should(Equal(42))
	})
})
