// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package jplace

import (
	"fmt"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// EdgeStat is a summary of the placements
// in an edge of the tree.
type EdgeStat struct {
	Edge int

	// Number of placement vectors in the edge.
	Placements int

	// Number of distinct sequence names
	// placed in the edge.
	Names int

	// Mean and maximum likelihood weight ratio
	// of the placement vectors.
	// They are zero if the file does not define
	// the like_weight_ratio field.
	MeanLWR float64
	MaxLWR  float64
}

// Stats returns a summary of the placements
// for each edge with placements,
// sorted by edge.
func (f *File) Stats() ([]EdgeStat, error) {
	pl, err := f.Placements()
	if err != nil {
		return nil, err
	}

	edgePos := f.Field(EdgeField)
	lwrPos := f.Field(LWRField)

	count := make(map[int]int)
	lwr := make(map[int][]float64)
	for i, p := range f.Records {
		for _, v := range p.P {
			e, err := edgeValue(v, edgePos)
			if err != nil {
				return nil, fmt.Errorf("jplace: placement %d: %v", i, err)
			}
			count[e]++
			if lwrPos >= 0 && lwrPos < len(v) {
				lwr[e] = append(lwr[e], v[lwrPos])
			}
		}
	}

	edges := pl.Edges()
	st := make([]EdgeStat, 0, len(edges))
	for _, e := range edges {
		es := EdgeStat{
			Edge:       e,
			Placements: count[e],
			Names:      len(pl[e]),
		}
		if v := lwr[e]; len(v) > 0 {
			es.MeanLWR = stat.Mean(v, nil)
			es.MaxLWR = floats.Max(v)
		}
		st = append(st, es)
	}
	slices.SortFunc(st, func(a, b EdgeStat) int { return a.Edge - b.Edge })
	return st, nil
}
