// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package list

import "fmt"

// Node is a single element of a LinkedList. Each node owns the link
// to the node that follows it, its child.
type Node[T any] struct {
	Value T
	child *Node[T]
}

// Child returns the node that follows n, or nil if n is the last node.
func (n *Node[T]) Child() *Node[T] {
	return n.child
}

// IsLast returns true if n has no child.
func (n *Node[T]) IsLast() bool {
	return n.child == nil
}

func (n *Node[T]) String() string {
	if n.child == nil {
		return fmt.Sprintf("Node(%v)", n.Value)
	}
	return fmt.Sprintf("Node(%v, %v)", n.Value, n.child.Value)
}

// copyChain returns a copy of the chain that starts at n, with freshly
// allocated nodes.
func (n *Node[T]) copyChain() *Node[T] {
	var head, tail *Node[T]
	for ; n != nil; n = n.child {
		c := &Node[T]{Value: n.Value}
		if head == nil {
			head = c
		} else {
			tail.child = c
		}
		tail = c
	}
	return head
}
