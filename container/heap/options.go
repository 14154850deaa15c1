// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heap

type options[T Ordered] struct {
	sliceCap int
	values   []T
	callback func(iv, jv T, i, j int)
}

// Option represents the options that can be passed to New.
type Option[T Ordered] func(*options[T])

// WithSliceCap sets the initial capacity of the slice used to hold values.
func WithSliceCap[T Ordered](n int) Option[T] {
	return func(o *options[T]) {
		o.sliceCap = n
	}
}

// WithData sets the initial data for the heap. The heap takes ownership
// of the supplied slice and heapifies it in place.
func WithData[T Ordered](values []T) Option[T] {
	return func(o *options[T]) {
		o.values = values
	}
}

// WithCallback provides a callback function that is called after every
// swap with the values and indices of the elements that have changed
// location. Note that is not sufficient to track removal of items and hence
// any applications that requires such tracking should do so explicitly.
func WithCallback[T Ordered](fn func(iv, jv T, i, j int)) Option[T] {
	return func(o *options[T]) {
		o.callback = fn
	}
}
