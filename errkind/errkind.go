// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package errkind defines the errors returned by the heap and list
// containers. Callers should test for them using errors.Is, or errors.As
// in the case of IndexError.
package errkind

import (
	"fmt"

	"cloudeng.io/errors"
)

var (
	// ErrInvalidMode is returned when a heap mode is neither Max nor Min.
	ErrInvalidMode = errors.New("invalid heap mode")

	// ErrTypeMismatch is returned when a construction parameter is not
	// of the expected type, eg. a max/min flag that is not a boolean.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrIndexOutOfRange is returned when an index exceeds the bounds of
	// a container. The concrete error is always an *IndexError.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrUnsupported is returned for an operation that is not supported by
	// the container's current configuration, eg. reading the minimum of a
	// max heap.
	ErrUnsupported = errors.New("unsupported operation")

	// ErrNotFound is returned when a value to be removed is not present.
	ErrNotFound = errors.New("not found")

	// ErrZeroStep is returned for slice or step operations with a step of 0.
	ErrZeroStep = errors.New("step cannot be zero")
)

// IndexError records an out of range index along with the last valid
// index of the container at the time of the access. Last is -1 for an
// empty container.
type IndexError struct {
	Index int
	Last  int
}

// NewIndexError returns an *IndexError for the supplied index and
// container length.
func NewIndexError(index, length int) error {
	return &IndexError{Index: index, Last: length - 1}
}

// Error implements error.
func (ie *IndexError) Error() string {
	if ie.Last < 0 {
		return fmt.Sprintf("%v: %v: container is empty", ErrIndexOutOfRange, ie.Index)
	}
	return fmt.Sprintf("%v: %v: last index: %v", ErrIndexOutOfRange, ie.Index, ie.Last)
}

// Is supports errors.Is, an IndexError matches ErrIndexOutOfRange.
func (ie *IndexError) Is(target error) bool {
	return target == ErrIndexOutOfRange
}

// CheckIndex returns an *IndexError if i is not in [0, length).
func CheckIndex(i, length int) error {
	if i < 0 || i >= length {
		return NewIndexError(i, length)
	}
	return nil
}
