// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heap

import (
	"fmt"
	"slices"

	"cloudeng.io/datastructures/errkind"
)

// resolve maps a possibly negative index onto the heap's slots.
func (h *Heap[T]) resolve(i int) (int, error) {
	n := len(h.values)
	idx := i
	if idx < 0 {
		idx += n
	}
	if idx < 0 || idx >= n {
		return 0, &errkind.IndexError{Index: i, Last: n - 1}
	}
	return idx, nil
}

// Insert adds v to the heap.
func (h *Heap[T]) Insert(v T) {
	h.values = append(h.values, v)
	h.array().up(len(h.values) - 1)
}

// Pop removes and returns the value at slot i. Negative indices count
// back from the last slot, so Pop(-1) removes the last slot.
func (h *Heap[T]) Pop(i int) (T, error) {
	idx, err := h.resolve(i)
	if err != nil {
		var zero T
		return zero, err
	}
	n := len(h.values) - 1
	v := h.values[idx]
	if idx != n {
		a := h.array()
		a.swap(idx, n)
		a.s = a.s[:n]
		a.fix(idx)
	}
	var zero T
	h.values[n] = zero
	h.values = h.values[:n]
	return v, nil
}

// RemoveRoot removes and returns the root, ie. the largest value of a max
// heap or the smallest of a min heap.
func (h *Heap[T]) RemoveRoot() (T, error) {
	return h.Pop(0)
}

// Delete removes the value at slot i.
func (h *Heap[T]) Delete(i int) error {
	_, err := h.Pop(i)
	return err
}

// Remove removes the first slot, in array order, that holds v.
func (h *Heap[T]) Remove(v T) error {
	idx := slices.Index(h.values, v)
	if idx < 0 {
		return fmt.Errorf("%w: %v", errkind.ErrNotFound, v)
	}
	_, err := h.Pop(idx)
	return err
}

// Replace overwrites the value at slot i with v and moves it to
// the position required by the heap property.
func (h *Heap[T]) Replace(i int, v T) error {
	idx, err := h.resolve(i)
	if err != nil {
		return err
	}
	h.values[idx] = v
	h.array().fix(idx)
	return nil
}

// KeyChange changes the key held at slot i to v. It is equivalent
// to Replace.
func (h *Heap[T]) KeyChange(i int, v T) error {
	return h.Replace(i, v)
}

// Merge adds all of the values in other to h and restores the heap
// property using h's mode. other is not modified.
func (h *Heap[T]) Merge(other *Heap[T]) *Heap[T] {
	if other == nil || len(other.values) == 0 {
		return h
	}
	h.values = append(h.values, other.values...)
	h.Heapify()
	return h
}

// SiftUp moves the value at slot i towards the root for as long as it
// dominates its parent and returns its final slot.
func (h *Heap[T]) SiftUp(i int) (int, error) {
	idx, err := h.resolve(i)
	if err != nil {
		return 0, err
	}
	return h.array().up(idx), nil
}

// SiftDown moves the value at slot i away from the root for as long as
// one of its children dominates it and returns its final slot.
func (h *Heap[T]) SiftDown(i int) (int, error) {
	idx, err := h.resolve(i)
	if err != nil {
		return 0, err
	}
	j, _ := h.array().down(idx, len(h.values))
	return j, nil
}
