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

// A Result is the terminal outcome of a completed Future: either a success
// carrying a T or a failure carrying an E. The failure arm is a caller-chosen
// type, not necessarily an error; combinators pass it through untouched
// unless explicitly transformed with MapErr or OrElse.
type Result[T, E any] struct {
	ok    bool
	value T
	err   E
}

// Ok returns a success Result carrying value.
func Ok[T, E any](value T) Result[T, E] {
	return Result[T, E]{ok: true, value: value}
}

// Err returns a failure Result carrying e.
func Err[T, E any](e E) Result[T, E] {
	return Result[T, E]{err: e}
}

// IsOk reports whether the Result is a success.
func (result Result[T, E]) IsOk() bool {
	return result.ok
}

// Value returns the success value; it is the zero value of T for a failure
// Result.
func (result Result[T, E]) Value() T {
	return result.value
}

// Err returns the failure value; it is the zero value of E for a success
// Result.
func (result Result[T, E]) Err() E {
	return result.err
}

// IntoFuture implements Futurable by wrapping the Result into a Resolved
// future, letting a bare outcome be handed to any combinator that accepts a
// future.
func (result Result[T, E]) IntoFuture() Future[T, E] {
	return Resolved(result)
}
