// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package label

import (
	"github.com/js-arias/placetax/taxonomy"
	"github.com/js-arias/placetax/tree"
)

// Trim removes the descendants of each node
// labeled at the given rank,
// so those nodes become terminals.
// It returns the number of trimmed nodes.
func Trim(t *tree.Tree, rank taxonomy.Rank) int {
	var trim []int
	for id := range t.Preorder() {
		if t.IsTerm(id) {
			continue
		}
		if t.Label(id).Rank == string(rank) {
			trim = append(trim, id)
		}
	}

	n := 0
	for _, id := range trim {
		// descendant of an already trimmed node
		if !t.IsRoot(id) && t.Parent(id) < 0 {
			continue
		}
		t.Prune(id)
		n++
	}
	return n
}
