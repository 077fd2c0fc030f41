// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package label implements the taxonomic labeling
// of the nodes of a phylogenetic tree.
//
// Each terminal of the tree is expected to have
// an NCBI taxonomic ID in square brackets
// as part of its name
// (e.g., "Escherichia coli[562]").
// Each internal node is named with the most specific
// taxonomic name shared by its descendants.
package label

import (
	"errors"
	"regexp"
	"strconv"

	"github.com/js-arias/placetax/taxonomy"
	"github.com/js-arias/placetax/tree"
	"go.uber.org/zap"
)

// A Lineage is a map of the ranks of a taxon
// to the scientific name at that rank.
type Lineage map[taxonomy.Rank]string

var taxIDPattern = regexp.MustCompile(`\[(\d+)\]`)

// TaxID returns the taxonomic ID embedded in a name.
func TaxID(name string) (int64, bool) {
	m := taxIDPattern.FindStringSubmatch(name)
	if m == nil {
		return 0, false
	}
	id, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// maxDepth is the maximum number of taxa
// visited in a lineage.
const maxDepth = 256

// A Labeler assigns taxonomic labels
// to the nodes of a tree.
type Labeler struct {
	// Resolver is the taxonomy used
	// to build the lineages.
	Resolver taxonomy.Resolver

	// Branch is the next branch index
	// assigned to an internal node.
	Branch int

	// Logger for the labeling process.
	// If nil, no messages will be logged.
	Logger *zap.Logger
}

func (lb *Labeler) logger() *zap.Logger {
	if lb.Logger == nil {
		return zap.NewNop()
	}
	return lb.Logger
}

// Lineage returns the lineage of a taxonomic ID.
// The taxonomy is walked toward the root
// keeping the first name found
// for each rank used for labels.
// The walk ends before a taxon
// whose parent is the root,
// and after a taxon
// whose parent is the cellular organisms taxon.
func (lb *Labeler) Lineage(id int64) (Lineage, error) {
	tx, err := lb.Resolver.Taxon(id)
	if err != nil {
		return nil, err
	}

	lin := make(Lineage)
	for i := 0; i < maxDepth; i++ {
		// children of the root (e.g., Viruses)
		// are not part of the lineage
		if tx.ID == taxonomy.Root || tx.Parent == taxonomy.Root {
			break
		}
		if tx.Rank.Index() >= 0 {
			if _, ok := lin[tx.Rank]; !ok {
				lin[tx.Rank] = tx.Name
			}
		}
		if tx.Parent == taxonomy.CellularOrganisms {
			break
		}

		p, err := lb.Resolver.Taxon(tx.Parent)
		if err != nil {
			lb.logger().Warn("incomplete lineage",
				zap.Int64("taxid", id),
				zap.Int64("parent", tx.Parent),
				zap.Error(err),
			)
			break
		}
		tx = p
	}
	return lin, nil
}

// Lineages returns the lineages of the terminals of a tree,
// indexed by node ID.
// Terminals without a taxonomic ID in their name,
// or with an unknown taxonomic ID,
// are ignored.
func (lb *Labeler) Lineages(t *tree.Tree) map[int]Lineage {
	log := lb.logger()

	lins := make(map[int]Lineage)
	for _, id := range t.Terms() {
		name := t.Label(id).Name
		tid, ok := TaxID(name)
		if !ok {
			log.Debug("no taxid", zap.String("term", name))
			continue
		}
		lin, err := lb.Lineage(tid)
		if errors.Is(err, taxonomy.ErrNotFound) {
			log.Debug("unknown taxid", zap.String("term", name), zap.Int64("taxid", tid))
			continue
		}
		if err != nil {
			log.Warn("unable to resolve taxid", zap.String("term", name), zap.Int64("taxid", tid), zap.Error(err))
			continue
		}
		lins[id] = lin
	}
	return lins
}

// Label builds the lineages of the terminals of a tree
// and relabels its internal nodes.
func (lb *Labeler) Label(t *tree.Tree) {
	lins := lb.Lineages(t)
	lb.Relabel(t, lins)
}
