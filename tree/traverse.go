// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package tree

import (
	"iter"
	"slices"
)

// Preorder returns a sequence with the IDs of the nodes
// of the tree,
// each node visited before its children.
//
// Each call returns a new, independent sequence
// that starts at the root.
func (t *Tree) Preorder() iter.Seq[int] {
	return t.preorderFrom(t.root)
}

func (t *Tree) preorderFrom(id int) iter.Seq[int] {
	return func(yield func(int) bool) {
		if t.node(id) == nil {
			return
		}
		stack := []int{id}
		for len(stack) > 0 {
			n := t.nodes[stack[len(stack)-1]]
			stack = stack[:len(stack)-1]
			if !yield(n.id) {
				return
			}
			for _, c := range slices.Backward(n.children) {
				stack = append(stack, c)
			}
		}
	}
}

// Postorder returns a sequence with the IDs of the nodes
// of the tree,
// each node visited after all of its children.
//
// Each call returns a new, independent sequence
// that starts at the root.
func (t *Tree) Postorder() iter.Seq[int] {
	return func(yield func(int) bool) {
		if t.node(t.root) == nil {
			return
		}

		type frame struct {
			id   int
			next int
		}
		stack := []frame{{id: t.root}}
		for len(stack) > 0 {
			f := &stack[len(stack)-1]
			n := t.nodes[f.id]
			if f.next < len(n.children) {
				c := n.children[f.next]
				f.next++
				stack = append(stack, frame{id: c})
				continue
			}
			stack = stack[:len(stack)-1]
			if !yield(n.id) {
				return
			}
		}
	}
}
