// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package label

import (
	"github.com/js-arias/placetax/taxonomy"
	"github.com/js-arias/placetax/tree"
)

// Names of the superkingdoms used for rerooting.
const (
	Archaea   = "Archaea"
	Bacteria  = "Bacteria"
	Eukaryota = "Eukaryota"
)

func isSuperkingdom(l tree.Label, name string) bool {
	return l.Rank == string(taxonomy.Superkingdom) && l.Name == name
}

// Reroot sets the root of a labeled tree
// between the superkingdoms.
//
// The nodes are visited in preorder.
// The first node with two children
// in which one child is labeled as Archaea
// and the other as Eukaryota
// is set as the root.
// If a node has a child labeled as Bacteria
// and the other as Archaea,
// the Bacteria child is set as the root.
// The Archaea-Eukaryota split is checked first
// at each node.
//
// If no split is found,
// the first node labeled as Bacteria
// is set as the root.
//
// It returns the new root
// and true if the tree was rerooted.
// If there is no valid root
// the tree is unchanged.
func Reroot(t *tree.Tree) (int, bool) {
	id, ok := superkingdomSplit(t)
	if !ok {
		id, ok = firstBacteria(t)
	}
	if !ok {
		return t.Root(), false
	}
	t.SetRoot(id)
	return id, true
}

func superkingdomSplit(t *tree.Tree) (int, bool) {
	for id := range t.Preorder() {
		children := t.Children(id)
		if len(children) != 2 {
			continue
		}
		a, b := t.Label(children[0]), t.Label(children[1])

		if (isSuperkingdom(a, Archaea) && isSuperkingdom(b, Eukaryota)) ||
			(isSuperkingdom(b, Archaea) && isSuperkingdom(a, Eukaryota)) {
			return id, true
		}
		if isSuperkingdom(a, Bacteria) && isSuperkingdom(b, Archaea) {
			return children[0], true
		}
		if isSuperkingdom(b, Bacteria) && isSuperkingdom(a, Archaea) {
			return children[1], true
		}
	}
	return -1, false
}

func firstBacteria(t *tree.Tree) (int, bool) {
	for id := range t.Preorder() {
		if isSuperkingdom(t.Label(id), Bacteria) {
			return id, true
		}
	}
	return -1, false
}
