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

// Package cell provides AtomicCell, a mutable slot whose contents can be
// borrowed by at most one owner at a time without locking.
package cell

import "sync/atomic"

// An AtomicCell holds a value of type T behind an atomic in-use flag.
// Borrowing the cell grants exclusive access to the value until the borrow
// is released; a second borrower is refused rather than blocked. Create one
// with NewAtomicCell.
type AtomicCell[T any] struct {
	inUse atomic.Bool
	data  T
}

// NewAtomicCell creates a cell holding value.
func NewAtomicCell[T any](value T) *AtomicCell[T] {
	return &AtomicCell[T]{data: value}
}

// Borrow attempts to take exclusive access to the cell's contents. It
// returns (borrow, true) on success; the caller must call Release on the
// borrow when done. It returns (nil, false) if the cell is currently
// borrowed by someone else. Borrow never blocks.
func (cell *AtomicCell[T]) Borrow() (*CellBorrow[T], bool) {
	if !cell.inUse.CompareAndSwap(false, true) {
		return nil, false
	}
	return &CellBorrow[T]{cell: cell}, true
}

// A CellBorrow is the exclusive access granted by Borrow. It must be
// released exactly once.
type CellBorrow[T any] struct {
	cell *AtomicCell[T]
}

// Get returns a pointer to the borrowed value. The pointer must not be used
// after Release.
func (borrow *CellBorrow[T]) Get() *T {
	return &borrow.cell.data
}

// Release gives the borrow back, making the cell available to the next
// borrower.
func (borrow *CellBorrow[T]) Release() {
	borrow.cell.inUse.Store(false)
	borrow.cell = nil
}
