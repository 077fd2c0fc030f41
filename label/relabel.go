// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package label

import (
	"github.com/js-arias/placetax/taxonomy"
	"github.com/js-arias/placetax/tree"
	"go.uber.org/zap"
)

// rankNames is the set of names found at each rank
// in the terminals of a node.
type rankNames []map[string]bool

func newRankNames() rankNames {
	rn := make(rankNames, len(taxonomy.Ranks()))
	for i := range rn {
		rn[i] = make(map[string]bool)
	}
	return rn
}

func (rn rankNames) addLineage(lin Lineage) {
	for r, name := range lin {
		i := r.Index()
		if i < 0 {
			continue
		}
		rn[i][name] = true
	}
}

func (rn rankNames) merge(o rankNames) {
	for i, names := range o {
		for n := range names {
			rn[i][n] = true
		}
	}
}

// Relabel sets the labels of the internal nodes of a tree
// using the lineages of its terminals.
//
// The nodes are visited in postorder.
// If all the children of a node share the same label
// (ignoring the branch index)
// the node takes that label,
// and the rank is removed from the labels of the children.
// Otherwise the node is labeled
// with the most specific rank
// in which all of its terminals
// share the same name.
// If there is no such rank
// the node keeps its current name.
//
// Each internal node receives a new branch index.
func (lb *Labeler) Relabel(t *tree.Tree, lins map[int]Lineage) {
	log := lb.logger()
	ranks := taxonomy.Ranks()

	sets := make(map[int]rankNames)
	for id := range t.Postorder() {
		children := t.Children(id)
		if len(children) == 0 {
			rn := newRankNames()
			if lin, ok := lins[id]; ok {
				rn.addLineage(lin)
			}
			sets[id] = rn
			continue
		}

		rn := newRankNames()
		keys := make(map[tree.Label]bool)
		for _, c := range children {
			keys[t.Label(c).Key()] = true
			rn.merge(sets[c])
			delete(sets, c)
		}
		sets[id] = rn

		branch := lb.Branch
		lb.Branch++

		if len(keys) == 1 {
			k := t.Label(children[0]).Key()
			l := tree.Label{Name: k.Name, Rank: k.Rank, Branch: branch}
			log.Debug("label from children", zap.String("from", t.Label(id).String()), zap.String("to", l.String()))
			t.SetLabel(id, l)
			for _, c := range children {
				cl := t.Label(c)
				cl.Rank = ""
				t.SetLabel(c, cl)
			}
			continue
		}

		l := t.Label(id)
		l.Branch = branch
		for i := len(ranks) - 1; i >= 0; i-- {
			if len(rn[i]) != 1 {
				continue
			}
			for name := range rn[i] {
				l = tree.Label{Name: name, Rank: string(ranks[i]), Branch: branch}
			}
			break
		}
		log.Debug("label from terminals", zap.String("from", t.Label(id).String()), zap.String("to", l.String()))
		t.SetLabel(id, l)
	}
}
