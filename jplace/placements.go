// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package jplace

import (
	"fmt"
	"math"
	"slices"
)

// Placements is a map of edge identifiers
// to the names of the sequences
// placed on that edge.
type Placements map[int]map[string]bool

// Add adds a sequence name to an edge.
func (pl Placements) Add(edge int, name string) {
	s, ok := pl[edge]
	if !ok {
		s = make(map[string]bool)
		pl[edge] = s
	}
	s[name] = true
}

// Names returns the names of the sequences
// placed in an edge.
func (pl Placements) Names(edge int) []string {
	s := pl[edge]
	names := make([]string, 0, len(s))
	for n := range s {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// Edges returns the edges with placed sequences.
func (pl Placements) Edges() []int {
	edges := make([]int, 0, len(pl))
	for e := range pl {
		edges = append(edges, e)
	}
	slices.Sort(edges)
	return edges
}

// Placements returns the placed sequences
// for each edge of the tree.
//
// Every edge of a placement receives
// all the names of the placement.
//
// Only placements with names with multiplicity ("nm")
// are supported.
// If a placement with single names ("n") is found
// it returns ErrSingleInsertion.
func (f *File) Placements() (Placements, error) {
	pos := f.Field(EdgeField)
	if pos < 0 {
		return nil, fmt.Errorf("jplace: field %q not defined", EdgeField)
	}

	pl := make(Placements)
	for i, p := range f.Records {
		names, err := p.Names()
		if err != nil {
			return nil, fmt.Errorf("jplace: placement %d: %w", i, err)
		}
		for _, v := range p.P {
			edge, err := edgeValue(v, pos)
			if err != nil {
				return nil, fmt.Errorf("jplace: placement %d: %v", i, err)
			}
			if _, ok := pl[edge]; !ok {
				pl[edge] = make(map[string]bool)
			}
			for _, n := range names {
				pl.Add(edge, n)
			}
		}
	}
	return pl, nil
}

func edgeValue(v []float64, pos int) (int, error) {
	if pos >= len(v) {
		return 0, fmt.Errorf("placement vector %v without field %q", v, EdgeField)
	}
	e := v[pos]
	if e < 0 || e != math.Trunc(e) {
		return 0, fmt.Errorf("invalid edge %v", e)
	}
	return int(e), nil
}
