// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heap

import (
	"fmt"
	"strings"

	"cloudeng.io/datastructures/errkind"
)

// Ordered represents the set of types that can be stored in a Heap.
type Ordered interface {
	~string | ~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Mode determines whether a heap keeps its largest (Max) or smallest (Min)
// value at the root.
type Mode int

// Values for Mode.
const (
	Max Mode = iota
	Min
)

func (m Mode) valid() bool {
	return m == Max || m == Min
}

func (m Mode) String() string {
	switch m {
	case Max:
		return "Max"
	case Min:
		return "Min"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode parses "max" or "min", case insensitively.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "max":
		return Max, nil
	case "min":
		return Min, nil
	}
	return Max, fmt.Errorf("%w: %q, must be one of 'max' or 'min'", errkind.ErrInvalidMode, s)
}

// ModeOf determines a Mode from a loosely typed value: a bool (true for
// Max), a Mode or a string accepted by ParseMode. Any other type results
// in errkind.ErrTypeMismatch.
func ModeOf(v any) (Mode, error) {
	switch m := v.(type) {
	case bool:
		if m {
			return Max, nil
		}
		return Min, nil
	case Mode:
		if !m.valid() {
			return Max, fmt.Errorf("%w: %v", errkind.ErrInvalidMode, m)
		}
		return m, nil
	case string:
		return ParseMode(m)
	}
	return Max, fmt.Errorf("%w: max/min flag must be a boolean, not %T", errkind.ErrTypeMismatch, v)
}

// dominance returns the strict ordering for the mode: a dominates b if
// a must be closer to the root than b.
func dominance[T Ordered](m Mode) func(a, b T) bool {
	if m == Min {
		return func(a, b T) bool { return a < b }
	}
	return func(a, b T) bool { return a > b }
}
