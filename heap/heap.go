// Copyright (C) 2022 Sneller, Inc.
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

// package heap implements a generic min-heap over a slice, plus a thin
// Min wrapper around it for callers that would rather hold a value than
// thread a comparison function through every call.
package heap

// FixSlice restores the min-heap invariant for x[index] after its key
// has changed, using less to compare elements.
func FixSlice[T any](x []T, index int, less func(x, y T) bool) {
	siftDown(x, index, less)
	siftUp(x, index, less)
}

// PopSlice removes and returns the smallest element of x according to
// less, updating x in place.
func PopSlice[T any](x *[]T, less func(x, y T) bool) T {
	ret := (*x)[0]
	(*x)[0], *x = (*x)[len(*x)-1], (*x)[:len(*x)-1]
	if len(*x) > 0 {
		siftDown(*x, 0, less)
	}
	return ret
}

// PushSlice appends item to x and restores the min-heap invariant.
func PushSlice[T any](x *[]T, item T, less func(x, y T) bool) {
	*x = append(*x, item)
	siftUp(*x, len(*x)-1, less)
}

// OrderSlice heapifies x in place according to less.
func OrderSlice[T any](x []T, less func(x, y T) bool) {
	for i := len(x) - 1; i >= 0; i-- {
		siftDown(x, i, less)
		siftUp(x, i, less)
	}
}

func siftUp[T any](x []T, index int, less func(x, y T) bool) {
	for index > 0 {
		p := (index - 1) / 2
		if less(x[p], x[index]) {
			break
		}
		x[p], x[index] = x[index], x[p]
		index = p
	}
}

func siftDown[T any](x []T, index int, less func(x, y T) bool) {
	for {
		left := (index * 2) + 1
		right := left + 1
		if left >= len(x) {
			break
		}
		c := left
		if len(x) > right && less(x[right], x[left]) {
			c = right
		}
		if less(x[index], x[c]) {
			break
		}
		x[c], x[index] = x[index], x[c]
		index = c
	}
}

// Min is a min-heap of T ordered by less. It exists so call sites that
// pop-and-push in a loop (the tree solver's per-node merge) don't have
// to carry the comparison function and the backing slice as two
// separate values.
type Min[T any] struct {
	data []T
	less func(x, y T) bool
}

// NewMinCap returns an empty Min heap with the given backing capacity
// pre-allocated.
func NewMinCap[T any](less func(x, y T) bool, capacity int) *Min[T] {
	return &Min[T]{data: make([]T, 0, capacity), less: less}
}

// Len returns the number of elements currently in h.
func (h *Min[T]) Len() int { return len(h.data) }

// Push adds item to h.
func (h *Min[T]) Push(item T) { PushSlice(&h.data, item, h.less) }

// Pop removes and returns the smallest element of h. It panics if h is
// empty; callers must check Len first.
func (h *Min[T]) Pop() T { return PopSlice(&h.data, h.less) }

// Reset empties h while keeping its backing array, so it can be reused
// across many merge nodes without reallocating.
func (h *Min[T]) Reset() { h.data = h.data[:0] }
