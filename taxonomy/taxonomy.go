// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package taxonomy implements access
// to a taxonomy of NCBI taxonomic IDs.
//
// A taxonomy is accessed through a Resolver,
// that returns the rank,
// scientific name,
// and parent ID of a taxon.
package taxonomy

import (
	"errors"
	"slices"
	"strings"
)

// Well known taxonomic IDs.
const (
	// Root is the ID of the root of the NCBI taxonomy.
	Root int64 = 1

	// CellularOrganisms is the ID of the "cellular organisms" taxon.
	CellularOrganisms int64 = 131567
)

// ErrNotFound is returned by a Resolver
// when a taxonomic ID is not defined.
var ErrNotFound = errors.New("taxon not found")

// A Taxon is a taxon in a taxonomy.
type Taxon struct {
	ID     int64
	Parent int64
	Rank   Rank
	Name   string
}

// A Resolver returns the taxon
// with a given taxonomic ID.
type Resolver interface {
	Taxon(id int64) (Taxon, error)
}

// Rank is a taxonomic rank.
type Rank string

// Ranks used for taxonomic labels.
const (
	Superkingdom Rank = "superkingdom"
	Phylum       Rank = "phylum"
	Class        Rank = "class"
	Order        Rank = "order"
	Family       Rank = "family"
	Genus        Rank = "genus"
	Species      Rank = "species"
	Subspecies   Rank = "subspecies"
)

var ranks = []Rank{
	Superkingdom,
	Phylum,
	Class,
	Order,
	Family,
	Genus,
	Species,
	Subspecies,
}

// Ranks returns the ranks used for taxonomic labels,
// ordered from the least to the most specific.
func Ranks() []Rank {
	return slices.Clone(ranks)
}

// ParseRank returns a rank from a string.
// The string can be prefixed with "r_".
// If the string is not one of the ranks
// used for taxonomic labels,
// it returns false.
func ParseRank(s string) (Rank, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.TrimPrefix(s, "r_")
	r := Rank(s)
	if !slices.Contains(ranks, r) {
		return "", false
	}
	return r, true
}

// Index returns the position of the rank
// in the list of ranks used for taxonomic labels.
// If the rank is not in the list,
// it returns -1.
func (r Rank) Index() int {
	return slices.Index(ranks, r)
}
