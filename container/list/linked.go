// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package list provides a singly linked list that supports indexing,
// slicing with arbitrary steps, in-place decimation and reversal.
package list

import (
	"fmt"
	"iter"
	"strings"

	"cloudeng.io/datastructures/errkind"
)

// LinkedList provides a singly linked list. The zero value is an
// empty list. The length is not cached, Len and any indexed operation
// traverse the list.
type LinkedList[T any] struct {
	head *Node[T]
}

// Generate creates a new list containing values in order.
func Generate[T any](values ...T) *LinkedList[T] {
	return FromSeq(func(yield func(T) bool) {
		for _, v := range values {
			if !yield(v) {
				return
			}
		}
	})
}

// FromSeq creates a new list from the values returned by seq.
func FromSeq[T any](seq iter.Seq[T]) *LinkedList[T] {
	l := &LinkedList[T]{}
	var tail *Node[T]
	for v := range seq {
		n := &Node[T]{Value: v}
		if tail == nil {
			l.head = n
		} else {
			tail.child = n
		}
		tail = n
	}
	return l
}

// Head returns the first node in the list, or nil for an empty list.
func (l *LinkedList[T]) Head() *Node[T] {
	return l.head
}

// Nodes returns an iterator over the nodes in the list, starting at the
// head each time it is ranged over. A node's child is read before the
// node is yielded so the caller may relink the yielded node.
func (l *LinkedList[T]) Nodes() iter.Seq[*Node[T]] {
	return func(yield func(*Node[T]) bool) {
		for n := l.head; n != nil; {
			next := n.child
			if !yield(n) {
				return
			}
			n = next
		}
	}
}

// Values returns an iterator over the values in the list.
func (l *LinkedList[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head; n != nil; n = n.child {
			if !yield(n.Value) {
				return
			}
		}
	}
}

// Len returns the number of nodes in the list.
func (l *LinkedList[T]) Len() int {
	c := 0
	for n := l.head; n != nil; n = n.child {
		c++
	}
	return c
}

func (l *LinkedList[T]) resolve(i int) (int, int, error) {
	n := l.Len()
	idx := i
	if idx < 0 {
		idx += n
	}
	if idx < 0 || idx >= n {
		return 0, n, &errkind.IndexError{Index: i, Last: n - 1}
	}
	return idx, n, nil
}

func (l *LinkedList[T]) nth(idx int) *Node[T] {
	n := l.head
	for ; idx > 0; idx-- {
		n = n.child
	}
	return n
}

// Index returns the i'th node in the list. Negative indices count back
// from the end of the list, so -1 is the last node.
func (l *LinkedList[T]) Index(i int) (*Node[T], error) {
	idx, _, err := l.resolve(i)
	if err != nil {
		return nil, err
	}
	return l.nth(idx), nil
}

// Get returns the value of the i'th node as per Index.
func (l *LinkedList[T]) Get(i int) (T, error) {
	n, err := l.Index(i)
	if err != nil {
		var zero T
		return zero, err
	}
	return n.Value, nil
}

// Insert inserts v immediately after the i'th node as per Index, so
// Insert(v, -1) appends to the list. Inserting into an empty list
// with an index of 0 or -1 creates its first node.
func (l *LinkedList[T]) Insert(v T, i int) error {
	if l.head == nil && (i == 0 || i == -1) {
		l.head = &Node[T]{Value: v}
		return nil
	}
	prev, err := l.Index(i)
	if err != nil {
		return err
	}
	prev.child = &Node[T]{Value: v, child: prev.child}
	return nil
}

// Prepend adds v to the front of the list.
func (l *LinkedList[T]) Prepend(v T) {
	l.head = &Node[T]{Value: v, child: l.head}
}

// Append adds v to the end of the list.
func (l *LinkedList[T]) Append(v T) {
	n := &Node[T]{Value: v}
	if l.head == nil {
		l.head = n
		return
	}
	tail := l.head
	for tail.child != nil {
		tail = tail.child
	}
	tail.child = n
}

// Delete truncates the list so that it ends immediately before the
// i'th node; Delete(0) empties the list. Negative indices are resolved
// as per Index.
func (l *LinkedList[T]) Delete(i int) error {
	if i == 0 {
		l.head = nil
		return nil
	}
	idx, _, err := l.resolve(i)
	if err != nil {
		return err
	}
	if idx == 0 {
		l.head = nil
		return nil
	}
	l.nth(idx - 1).child = nil
	return nil
}

// Reverse reverses the list in place.
func (l *LinkedList[T]) Reverse() {
	var prev *Node[T]
	for n := l.head; n != nil; {
		next := n.child
		n.child = prev
		prev, n = n, next
	}
	l.head = prev
}

// Copy returns a copy of the list that shares no nodes with the original.
func (l *LinkedList[T]) Copy() *LinkedList[T] {
	return &LinkedList[T]{head: l.head.copyChain()}
}

func (l *LinkedList[T]) String() string {
	out := &strings.Builder{}
	out.WriteString("LinkedList(")
	for n := l.head; n != nil; n = n.child {
		fmt.Fprintf(out, "%v", n.Value)
		if n.child != nil {
			out.WriteString(", ")
		}
	}
	out.WriteString(")")
	return out.String()
}
