// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package list

import (
	"cloudeng.io/datastructures/errkind"
)

func abs(i int) int {
	if i < 0 {
		return -i
	}
	return i
}

// Step decimates the list in place, keeping the first node and every
// abs(step)'th node thereafter. The nodes that are skipped are unlinked
// from the list.
func (l *LinkedList[T]) Step(step int) error {
	if step == 0 {
		return errkind.ErrZeroStep
	}
	if l.head == nil {
		return nil
	}
	k := abs(step)
	kept, i := l.head, 0
	for n := l.head.child; n != nil; n = n.child {
		if i++; i%k == 0 {
			kept.child = n
			kept = n
		}
	}
	kept.child = nil
	return nil
}

// Slice returns a new list, which shares no nodes with the original,
// containing the values between start and end taken every abs(step)'th
// value. Negative values of start and end count back from the end of
// the list.
//
// If step is positive and start <= end the values are those in
// [start, end). If step is negative or start > end the values are taken
// in reverse order starting at the larger of start and end and stopping
// before the smaller of the two, ie. the values at hi, hi-1, ..., lo+1.
func (l *LinkedList[T]) Slice(start, end, step int) (*LinkedList[T], error) {
	if step == 0 {
		return nil, errkind.ErrZeroStep
	}
	n := l.Len()
	if start < 0 {
		start += n
	}
	if end < 0 {
		end += n
	}
	lo, hi := min(start, end), max(start, end)
	reverse := step < 0 || start > end
	from, to := lo, hi
	if reverse {
		from, to = lo+1, hi+1
	}
	if lo < 0 {
		return nil, &errkind.IndexError{Index: lo, Last: n - 1}
	}
	if to > n {
		return nil, &errkind.IndexError{Index: hi, Last: n - 1}
	}
	out := &LinkedList[T]{}
	var tail *Node[T]
	i := 0
	for c := l.head; c != nil && i < to; c = c.child {
		if i >= from {
			nc := &Node[T]{Value: c.Value}
			if tail == nil {
				out.head = nc
			} else {
				tail.child = nc
			}
			tail = nc
		}
		i++
	}
	if reverse {
		out.Reverse()
	}
	if err := out.Step(step); err != nil {
		return nil, err
	}
	return out, nil
}
