// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package tree implements rooted phylogenetic trees
// as read from placement files.
//
// Nodes are stored in an arena
// and identified by an integer ID.
// Node IDs are stable:
// rerooting or pruning a tree
// never changes the ID of a surviving node.
package tree

import "slices"

// A Tree is a rooted, ordered, non-binary tree.
type Tree struct {
	nodes []*node
	root  int
}

type node struct {
	id       int
	parent   int
	children []int

	label Label

	length float64
	hasLen bool

	// edge is the edge identifier
	// read with the node.
	// It is not changed by SetRoot.
	edge int
}

// New creates a tree with a single root node
// with the given label.
func New(root Label) *Tree {
	t := &Tree{}
	t.root = t.add(-1, root)
	return t
}

// Add adds a new node as the last child of the indicated parent.
// It returns the ID of the new node.
// It panics if the parent is not a node of the tree.
func (t *Tree) Add(parent int, l Label) int {
	p := t.node(parent)
	if p == nil {
		panic("tree: adding a child to an undefined node")
	}
	return t.add(parent, l)
}

func (t *Tree) add(parent int, l Label) int {
	n := &node{
		id:     len(t.nodes),
		parent: parent,
		label:  l,
		edge:   -1,
	}
	t.nodes = append(t.nodes, n)
	if parent >= 0 {
		p := t.nodes[parent]
		p.children = append(p.children, n.id)
	}
	return n.id
}

func (t *Tree) node(id int) *node {
	if id < 0 || id >= len(t.nodes) {
		return nil
	}
	return t.nodes[id]
}

// Root returns the ID of the root node.
func (t *Tree) Root() int {
	return t.root
}

// IsRoot returns true if the node is the root of the tree.
func (t *Tree) IsRoot(id int) bool {
	return id == t.root
}

// IsTerm returns true if the node is a terminal
// (i.e., a leaf).
func (t *Tree) IsTerm(id int) bool {
	n := t.node(id)
	if n == nil {
		return false
	}
	return len(n.children) == 0
}

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int {
	n := 0
	for range t.Preorder() {
		n++
	}
	return n
}

// Nodes returns the IDs of the nodes of the tree
// in preorder.
func (t *Tree) Nodes() []int {
	var ids []int
	for id := range t.Preorder() {
		ids = append(ids, id)
	}
	return ids
}

// Children returns the IDs of the children of a node.
func (t *Tree) Children(id int) []int {
	n := t.node(id)
	if n == nil {
		return nil
	}
	return slices.Clone(n.children)
}

// Parent returns the ID of the parent of a node.
// The parent of the root is -1.
func (t *Tree) Parent(id int) int {
	n := t.node(id)
	if n == nil {
		return -1
	}
	return n.parent
}

// Label returns the label of a node.
func (t *Tree) Label(id int) Label {
	n := t.node(id)
	if n == nil {
		return Label{Branch: -1}
	}
	return n.label
}

// SetLabel sets the label of a node.
func (t *Tree) SetLabel(id int, l Label) {
	n := t.node(id)
	if n == nil {
		return
	}
	n.label = l
}

// Length returns the length of the branch
// that connects the node to its parent.
// If the length is undefined it returns false.
func (t *Tree) Length(id int) (float64, bool) {
	n := t.node(id)
	if n == nil {
		return 0, false
	}
	return n.length, n.hasLen
}

// SetLength sets the length of the branch of a node.
func (t *Tree) SetLength(id int, length float64) {
	n := t.node(id)
	if n == nil {
		return
	}
	n.length = length
	n.hasLen = true
}

// Edge returns the edge identifier of a node,
// as read from the placement tree.
// If the node has no edge identifier,
// it returns false.
func (t *Tree) Edge(id int) (int, bool) {
	n := t.node(id)
	if n == nil || n.edge < 0 {
		return -1, false
	}
	return n.edge, true
}

// SetEdge sets the edge identifier of a node.
// A negative value removes the edge identifier.
func (t *Tree) SetEdge(id, edge int) {
	n := t.node(id)
	if n == nil {
		return
	}
	if edge < 0 {
		edge = -1
	}
	n.edge = edge
}

// Terms returns the IDs of the terminals of the tree
// in preorder.
func (t *Tree) Terms() []int {
	return t.TermsOf(t.root)
}

// TermsOf returns the IDs of the terminals
// descendant of the given node,
// in preorder.
// If the node is a terminal,
// it returns the node itself.
func (t *Tree) TermsOf(id int) []int {
	if t.node(id) == nil {
		return nil
	}
	var terms []int
	for n := range t.preorderFrom(id) {
		if t.IsTerm(n) {
			terms = append(terms, n)
		}
	}
	return terms
}

// Prune removes all descendants of a node,
// so the node becomes a terminal.
func (t *Tree) Prune(id int) {
	n := t.node(id)
	if n == nil {
		return
	}
	for _, c := range n.children {
		t.detach(c)
	}
	n.children = nil
}

// detach removes a subtree from the arena.
func (t *Tree) detach(id int) {
	stack := []int{id}
	for len(stack) > 0 {
		n := t.nodes[stack[len(stack)-1]]
		stack = stack[:len(stack)-1]
		stack = append(stack, n.children...)
		n.children = nil
		n.parent = -1
		t.nodes[n.id] = nil
	}
}

// SetRoot sets the indicated node as the root of the tree.
// The parent and child relations along the path
// between the old root and the new root
// are reversed,
// and each reversed branch keeps its length.
// The new root takes the length of the old root.
// Edge identifiers always stay with their nodes.
// Any other subtree is kept unchanged.
func (t *Tree) SetRoot(id int) {
	x := t.node(id)
	if x == nil || id == t.root {
		return
	}

	// path from the new root to the old root
	path := []int{id}
	for p := x.parent; p >= 0; p = t.nodes[p].parent {
		path = append(path, p)
	}

	old := t.nodes[t.root]
	rootLen, rootHasLen := old.length, old.hasLen

	for i := len(path) - 1; i > 0; i-- {
		p := t.nodes[path[i]]
		c := t.nodes[path[i-1]]

		p.children = slices.DeleteFunc(p.children, func(v int) bool { return v == c.id })
		c.children = append(c.children, p.id)
		p.parent = c.id

		p.length, p.hasLen = c.length, c.hasLen
	}

	x.parent = -1
	x.length, x.hasLen = rootLen, rootHasLen
	t.root = id
}
