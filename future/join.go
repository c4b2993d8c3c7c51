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

// A Pair carries the two success values produced by Join.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Join's state is a closed set of three phases, each its own Future
// implementation: both sides still running, first side already succeeded
// (its value captured), or second side already succeeded. A side that has
// resolved is never polled again; ownership of the remaining sub-future
// moves along with each phase transition.

// joinBoth is the phase in which neither side has resolved.
type joinBoth[A, B, E any] struct {
	a Future[A, E]
	b Future[B, E]
}

// joinFirstDone is the phase in which the first side has already succeeded.
type joinFirstDone[A, B, E any] struct {
	first A
	b     Future[B, E]
}

// joinSecondDone is the phase in which the second side has already
// succeeded.
type joinSecondDone[A, B, E any] struct {
	a      Future[A, E]
	second B
}

// Join returns a future that waits for both a and b and completes
// successfully with the Pair of their values. The first failure observed on
// either side completes the join with that failure at once; the other side
// is discarded without further polling, even if it resolved in the same
// step.
func Join[A, B, E any](a Future[A, E], b Futurable[B, E]) Future[Pair[A, B], E] {
	return joinBoth[A, B, E]{a: a, b: b.IntoFuture()}
}

// Poll implements Future.
func (f joinBoth[A, B, E]) Poll() Poll[Pair[A, B], E] {
	pollA := f.a.Poll()
	if pollA.IsReady() {
		resultA := pollA.Result()
		if !resultA.IsOk() {
			return Ready(Err[Pair[A, B], E](resultA.Err()))
		}

		pollB := f.b.Poll()
		if !pollB.IsReady() {
			return Pending[Pair[A, B], E](joinFirstDone[A, B, E]{
				first: resultA.Value(),
				b:     pollB.Future(),
			})
		}

		resultB := pollB.Result()
		if !resultB.IsOk() {
			return Ready(Err[Pair[A, B], E](resultB.Err()))
		}
		return Ready(Ok[Pair[A, B], E](Pair[A, B]{
			First:  resultA.Value(),
			Second: resultB.Value(),
		}))
	}

	pollB := f.b.Poll()
	if !pollB.IsReady() {
		return Pending[Pair[A, B], E](joinBoth[A, B, E]{
			a: pollA.Future(),
			b: pollB.Future(),
		})
	}

	resultB := pollB.Result()
	if !resultB.IsOk() {
		return Ready(Err[Pair[A, B], E](resultB.Err()))
	}
	return Pending[Pair[A, B], E](joinSecondDone[A, B, E]{
		a:      pollA.Future(),
		second: resultB.Value(),
	})
}

// IntoFuture implements Futurable.
func (f joinBoth[A, B, E]) IntoFuture() Future[Pair[A, B], E] {
	return f
}

// Poll implements Future.
func (f joinFirstDone[A, B, E]) Poll() Poll[Pair[A, B], E] {
	pollB := f.b.Poll()
	if !pollB.IsReady() {
		return Pending[Pair[A, B], E](joinFirstDone[A, B, E]{
			first: f.first,
			b:     pollB.Future(),
		})
	}

	resultB := pollB.Result()
	if !resultB.IsOk() {
		return Ready(Err[Pair[A, B], E](resultB.Err()))
	}
	return Ready(Ok[Pair[A, B], E](Pair[A, B]{
		First:  f.first,
		Second: resultB.Value(),
	}))
}

// IntoFuture implements Futurable.
func (f joinFirstDone[A, B, E]) IntoFuture() Future[Pair[A, B], E] {
	return f
}

// Poll implements Future.
func (f joinSecondDone[A, B, E]) Poll() Poll[Pair[A, B], E] {
	pollA := f.a.Poll()
	if !pollA.IsReady() {
		return Pending[Pair[A, B], E](joinSecondDone[A, B, E]{
			a:      pollA.Future(),
			second: f.second,
		})
	}

	resultA := pollA.Result()
	if !resultA.IsOk() {
		return Ready(Err[Pair[A, B], E](resultA.Err()))
	}
	return Ready(Ok[Pair[A, B], E](Pair[A, B]{
		First:  resultA.Value(),
		Second: f.second,
	}))
}

// IntoFuture implements Futurable.
func (f joinSecondDone[A, B, E]) IntoFuture() Future[Pair[A, B], E] {
	return f
}
