// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package heap provides an array backed binary heap that can be
// reconfigured between max and min ordering.
//
// The heap stores only values; the tree structure is implied by slice
// position, with the children of slot i at 2i+1 and 2i+2. Node views
// of that structure are available via Nodes but are recomputed on
// every call rather than maintained.
package heap

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"cloudeng.io/datastructures/errkind"
)

// Heap represents a binary heap in either Max or Min mode.
type Heap[T Ordered] struct {
	values    []T
	mode      Mode
	dominates func(a, b T) bool
	callback  func(iv, jv T, i, j int)
}

// New creates a new, empty unless WithData is specified, heap with the
// specified mode.
func New[T Ordered](mode Mode, opts ...Option[T]) (*Heap[T], error) {
	if !mode.valid() {
		return nil, fmt.Errorf("%w: %v", errkind.ErrInvalidMode, mode)
	}
	var o options[T]
	for _, fn := range opts {
		fn(&o)
	}
	h := &Heap[T]{
		mode:      mode,
		dominates: dominance[T](mode),
		callback:  o.callback,
	}
	if o.values != nil {
		h.values = o.values
		h.Heapify()
		return h, nil
	}
	h.values = make([]T, 0, o.sliceCap)
	return h, nil
}

// Generate creates a max heap (if isMax is true) or a min heap from a copy
// of the supplied values.
func Generate[T Ordered](values []T, isMax bool) *Heap[T] {
	mode := Max
	if !isMax {
		mode = Min
	}
	h, _ := New(mode, WithData(slices.Clone(values)))
	return h
}

// GenerateWithMode is like Generate except that the mode is specified as
// any value accepted by ModeOf.
func GenerateWithMode[T Ordered](values []T, mode any) (*Heap[T], error) {
	m, err := ModeOf(mode)
	if err != nil {
		return nil, err
	}
	return New(m, WithData(slices.Clone(values)))
}

func (h *Heap[T]) array() array[T] {
	return array[T]{s: h.values, dominates: h.dominates, callback: h.callback}
}

// Mode returns the heap's current mode.
func (h *Heap[T]) Mode() Mode {
	return h.mode
}

// Len returns the number of values in the heap.
func (h *Heap[T]) Len() int {
	return len(h.values)
}

// IsEmpty returns true if the heap contains no values.
func (h *Heap[T]) IsEmpty() bool {
	return len(h.values) == 0
}

// Values returns a copy of the heap's values in array order.
func (h *Heap[T]) Values() []T {
	return slices.Clone(h.values)
}

// All returns an iterator over the heap's slots in array order.
func (h *Heap[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range h.values {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Heapify restores the heap property for the current mode over all of
// the heap's values. It returns true if any values were moved.
func (h *Heap[T]) Heapify() bool {
	return h.array().heapify()
}

func (h *Heap[T]) setMode(m Mode) *Heap[T] {
	h.mode = m
	h.dominates = dominance[T](m)
	h.Heapify()
	return h
}

// MaxHeap reconfigures the heap as a max heap.
func (h *Heap[T]) MaxHeap() *Heap[T] {
	return h.setMode(Max)
}

// MinHeap reconfigures the heap as a min heap.
func (h *Heap[T]) MinHeap() *Heap[T] {
	return h.setMode(Min)
}

// CheckHeap returns true if the heap's values satisfy the heap property
// for its current mode. The heap is not modified.
func (h *Heap[T]) CheckHeap() bool {
	valid, _ := Check(h.values, h.mode)
	return valid
}

func (h *Heap[T]) peek(m Mode) (T, error) {
	var zero T
	if h.mode != m {
		return zero, fmt.Errorf("%w: %v value of a %v heap", errkind.ErrUnsupported, strings.ToLower(m.String()), h.mode)
	}
	if len(h.values) == 0 {
		return zero, errkind.NewIndexError(0, 0)
	}
	return h.values[0], nil
}

// Max returns the largest value in a max heap. It returns
// errkind.ErrUnsupported for a min heap.
func (h *Heap[T]) Max() (T, error) {
	return h.peek(Max)
}

// Min returns the smallest value in a min heap. It returns
// errkind.ErrUnsupported for a max heap.
func (h *Heap[T]) Min() (T, error) {
	return h.peek(Min)
}

// String returns a representation of the heap that lists every node
// in array order along with the values of its children.
func (h *Heap[T]) String() string {
	out := &strings.Builder{}
	out.WriteString("Heap(")
	for i, n := range h.Nodes() {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(n.String())
	}
	out.WriteString(")")
	return out.String()
}

// Heapify reorders values into a heap for the specified mode in place.
// It returns true if any values were moved.
func Heapify[T Ordered](values []T, mode Mode) (bool, error) {
	if !mode.valid() {
		return false, fmt.Errorf("%w: %v", errkind.ErrInvalidMode, mode)
	}
	return array[T]{s: values, dominates: dominance[T](mode)}.heapify(), nil
}

// Check returns true if values already satisfies the heap property for
// the specified mode. It heapifies a copy of values and reports whether
// any value had to be moved; values itself is not modified.
func Check[T Ordered](values []T, mode Mode) (bool, error) {
	changed, err := Heapify(slices.Clone(values), mode)
	if err != nil {
		return false, err
	}
	return !changed, nil
}
