// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package jplace implements reading of jplace files
// with phylogenetic placements,
// and the mapping of placed sequences
// to the nodes of a tree.
//
// The jplace format is described in
// Matsen et al. (2012) PLoS ONE 7: e31009.
package jplace

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/js-arias/placetax/tree"
)

// ErrSingleInsertion is returned when a placement
// uses single names ("n") instead of names with multiplicity ("nm").
var ErrSingleInsertion = errors.New("single insertion placements are not supported")

// EdgeField is the field of a placement vector
// that contains the edge identifier.
const EdgeField = "edge_num"

// LWRField is the field of a placement vector
// that contains the likelihood weight ratio.
const LWRField = "like_weight_ratio"

// A File is a jplace file.
type File struct {
	// Tree is the reference tree
	// in Newick format
	// with edge identifiers.
	Tree string `json:"tree"`

	// Fields are the names of the values
	// of each placement vector.
	Fields []string `json:"fields"`

	// Records are the placements of the file.
	Records []Placement `json:"placements"`

	Version  int             `json:"version"`
	Metadata json.RawMessage `json:"metadata,omitempty"`
}

// A Placement is a set of locations in the tree
// for one or more sequences.
type Placement struct {
	// P are the placement vectors.
	P [][]float64 `json:"p"`

	// NM are the sequence names
	// with its multiplicity.
	NM [][]any `json:"nm,omitempty"`

	// N are single sequence names.
	N json.RawMessage `json:"n,omitempty"`
}

// Read reads a jplace file.
func Read(r io.Reader) (*File, error) {
	var f File
	dec := json.NewDecoder(r)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("jplace: %v", err)
	}
	if f.Tree == "" {
		return nil, fmt.Errorf("jplace: undefined tree")
	}
	return &f, nil
}

// ReadFile reads a jplace file
// from a file.
func ReadFile(name string) (*File, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	jf, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("on file %q: %v", name, err)
	}
	return jf, nil
}

// ParseTree returns the reference tree of the file.
func (f *File) ParseTree() (*tree.Tree, error) {
	return tree.ParseString(f.Tree)
}

// Field returns the position of a field
// in the placement vectors.
// It returns -1 if the field is not defined.
func (f *File) Field(name string) int {
	return slices.Index(f.Fields, name)
}

// Names returns the names of the sequences
// of a placement.
// The names are cleaned
// so they can be used in a Newick file.
func (p Placement) Names() ([]string, error) {
	if len(p.N) > 0 {
		return nil, ErrSingleInsertion
	}
	names := make([]string, 0, len(p.NM))
	for _, nm := range p.NM {
		if len(nm) == 0 {
			return nil, fmt.Errorf("empty name")
		}
		s, ok := nm[0].(string)
		if !ok {
			return nil, fmt.Errorf("invalid name %v", nm[0])
		}
		names = append(names, Clean(s))
	}
	return names, nil
}

// Clean returns a version of a name
// without spaces, colons, or square brackets.
func Clean(name string) string {
	r := strings.NewReplacer(" ", "_", ":", "_", "[", "_", "]", "_")
	return r.Replace(name)
}
