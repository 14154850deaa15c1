// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heap

// array provides the sift primitives over a slice for a given dominance
// ordering. It holds no state of its own beyond the slice header.
type array[T Ordered] struct {
	s         []T
	dominates func(a, b T) bool
	callback  func(iv, jv T, i, j int)
}

func (a array[T]) swap(i, j int) {
	a.s[i], a.s[j] = a.s[j], a.s[i]
	if a.callback != nil {
		a.callback(a.s[i], a.s[j], i, j)
	}
}

func (a array[T]) less(i, j int) bool {
	return a.dominates(a.s[i], a.s[j])
}

// up moves the element at j towards the root until its parent is no
// longer strictly dominated by it. It returns the element's final index.
func (a array[T]) up(j int) int {
	for {
		i := (j - 1) / 2 // parent
		if i == j || !a.less(j, i) {
			break
		}
		a.swap(i, j)
		j = i
	}
	return j
}

// down moves the element at i0 away from the root, within the first n
// elements, until neither child strictly dominates it. It returns the
// element's final index and whether it moved.
func (a array[T]) down(i0, n int) (int, bool) {
	i := i0
	for {
		j1 := 2*i + 1
		if j1 >= n || j1 < 0 { // j1 < 0 after int overflow
			break
		}
		j := j1 // left child
		if j2 := j1 + 1; j2 < n && a.less(j2, j1) {
			j = j2 // right child
		}
		if !a.less(j, i) {
			break
		}
		a.swap(i, j)
		i = j
	}
	return i, i > i0
}

// fix restores the heap property after the element at i has changed.
func (a array[T]) fix(i int) int {
	if j, moved := a.down(i, len(a.s)); moved {
		return j
	}
	return a.up(i)
}

// heapify builds a heap bottom up, starting at n/2 and finishing at the
// root. It returns true if any element was moved.
func (a array[T]) heapify() bool {
	n := len(a.s)
	changed := false
	for i := n / 2; i >= 0; i-- {
		if _, moved := a.down(i, n); moved {
			changed = true
		}
	}
	return changed
}
