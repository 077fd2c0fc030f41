// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package jplace

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/js-arias/placetax/tree"
)

// A Pair is a placed sequence
// and the name of the node of the tree
// in which the sequence was placed.
type Pair struct {
	Node string
	Seq  string
}

// NodeName returns the name of a node
// as used in a mapping.
// It is the cleaned label of the node
// followed by its edge identifier.
func NodeName(t *tree.Tree, id int) string {
	name := Clean(t.Label(id).String())
	if e, ok := t.Edge(id); ok {
		name += "{" + strconv.Itoa(e) + "}"
	}
	return name
}

// Map returns the pairs of node names and placed sequences,
// for each node with an edge identifier
// with placed sequences.
// Nodes are visited in postorder,
// and the sequences of a node are sorted by name.
func Map(t *tree.Tree, pl Placements) []Pair {
	var pairs []Pair
	for id := range t.Postorder() {
		e, ok := t.Edge(id)
		if !ok {
			continue
		}
		if _, ok := pl[e]; !ok {
			continue
		}
		node := NodeName(t, id)
		for _, s := range pl.Names(e) {
			pairs = append(pairs, Pair{Node: node, Seq: s})
		}
	}
	return pairs
}

// WriteMapping writes a mapping
// as a tab-delimited file
// without header.
func WriteMapping(w io.Writer, pairs []Pair) error {
	tab := csv.NewWriter(w)
	tab.Comma = '\t'

	for _, p := range pairs {
		row := []string{
			p.Node,
			p.Seq,
		}
		if err := tab.Write(row); err != nil {
			return fmt.Errorf("when writing data: %v", err)
		}
	}

	tab.Flush()
	if err := tab.Error(); err != nil {
		return fmt.Errorf("when writing data: %v", err)
	}
	return nil
}

// ReadMapping reads a mapping
// from a tab-delimited file.
// Lines starting with '#' are ignored.
func ReadMapping(r io.Reader) ([]Pair, error) {
	tab := csv.NewReader(r)
	tab.Comma = '\t'
	tab.Comment = '#'
	tab.FieldsPerRecord = -1

	var pairs []Pair
	for {
		row, err := tab.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		ln, _ := tab.FieldPos(0)
		if err != nil {
			return nil, fmt.Errorf("on row %d: %v", ln, err)
		}
		if len(row) < 2 {
			return nil, fmt.Errorf("on row %d: expecting 2 fields, got %d", ln, len(row))
		}
		pairs = append(pairs, Pair{Node: row[0], Seq: row[1]})
	}
	return pairs, nil
}
