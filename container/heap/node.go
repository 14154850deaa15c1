// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heap

import (
	"fmt"
	"iter"
	"strings"
)

// Node is a view of a single heap slot and its children. Nodes are
// derived from slice positions and are stale as soon as the heap is
// modified.
type Node[T Ordered] struct {
	Index       int
	Value       T
	Left, Right *Node[T]
}

func (n *Node[T]) String() string {
	out := &strings.Builder{}
	fmt.Fprintf(out, "Node(value=%v", n.Value)
	if n.Left != nil {
		fmt.Fprintf(out, ", left=%v", n.Left.Value)
	}
	if n.Right != nil {
		fmt.Fprintf(out, ", right=%v", n.Right.Value)
	}
	out.WriteString(")")
	return out.String()
}

// ChildrenOf returns the indices of the left and right children of
// slot i in a heap of n values. An index of -1 is returned for a child
// that is out of range.
func ChildrenOf(n, i int) (left, right int) {
	left, right = 2*i+1, 2*i+2
	if left >= n || left < 0 {
		left = -1
	}
	if right >= n || right < 0 {
		right = -1
	}
	return
}

// ParentOf returns the index of the parent of slot i, or -1 for the root.
func ParentOf(i int) int {
	if i <= 0 {
		return -1
	}
	return (i - 1) / 2
}

// Nodes returns a freshly computed view of every slot in the heap with
// its Left and Right children set from their array positions.
func (h *Heap[T]) Nodes() []*Node[T] {
	return project(h.values)
}

func project[T Ordered](values []T) []*Node[T] {
	nodes := make([]*Node[T], len(values))
	for i, v := range values {
		nodes[i] = &Node[T]{Index: i, Value: v}
	}
	for i, n := range nodes {
		l, r := ChildrenOf(len(nodes), i)
		if l >= 0 {
			n.Left = nodes[l]
		}
		if r >= 0 {
			n.Right = nodes[r]
		}
	}
	return nodes
}

// DepthFirst returns an iterator that visits the heap in pre-order,
// ie. each node before its left and then right sub-trees.
func (h *Heap[T]) DepthFirst() iter.Seq[T] {
	return func(yield func(T) bool) {
		if len(h.values) == 0 {
			return
		}
		stack := []int{0}
		for len(stack) > 0 {
			i := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(h.values[i]) {
				return
			}
			l, r := ChildrenOf(len(h.values), i)
			if r >= 0 {
				stack = append(stack, r)
			}
			if l >= 0 {
				stack = append(stack, l)
			}
		}
	}
}
