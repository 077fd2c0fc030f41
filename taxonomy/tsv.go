// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package taxonomy

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
)

// Taxonomy is an in-memory taxonomy.
type Taxonomy struct {
	taxa map[int64]Taxon
}

// New creates a new empty taxonomy.
func New() *Taxonomy {
	return &Taxonomy{
		taxa: make(map[int64]Taxon),
	}
}

// Add adds a taxon to the taxonomy.
// If the taxon is already defined,
// it will be replaced.
func (tx *Taxonomy) Add(t Taxon) {
	t.Name = strings.Join(strings.Fields(t.Name), " ")
	t.Rank = Rank(strings.ToLower(strings.TrimSpace(string(t.Rank))))
	tx.taxa[t.ID] = t
}

// IDs returns the taxonomic IDs defined in the taxonomy.
func (tx *Taxonomy) IDs() []int64 {
	ids := make([]int64, 0, len(tx.taxa))
	for id := range tx.taxa {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Taxon returns the taxon with the given ID.
func (tx *Taxonomy) Taxon(id int64) (Taxon, error) {
	t, ok := tx.taxa[id]
	if !ok {
		return Taxon{}, fmt.Errorf("taxon %d: %w", id, ErrNotFound)
	}
	return t, nil
}

var header = []string{
	"taxid",
	"parent",
	"rank",
	"name",
}

// ReadTSV reads a taxonomy from a TSV file.
//
// The TSV file must contain the following fields:
//
//   - taxid, the NCBI taxonomic ID of the taxon
//   - parent, the taxonomic ID of the parent
//   - rank, the rank of the taxon
//   - name, the scientific name of the taxon
//
// Here is an example file:
//
//	# NCBI taxonomy
//	taxid	parent	rank	name
//	1	1	no rank	root
//	2	131567	superkingdom	Bacteria
//	1224	2	phylum	Proteobacteria
//	131567	1	no rank	cellular organisms
func ReadTSV(r io.Reader) (*Taxonomy, error) {
	tab := csv.NewReader(r)
	tab.Comma = '\t'
	tab.Comment = '#'

	head, err := tab.Read()
	if err != nil {
		return nil, fmt.Errorf("while reading header: %v", err)
	}
	fields := make(map[string]int, len(head))
	for i, h := range head {
		h = strings.ToLower(h)
		fields[h] = i
	}
	for _, h := range header {
		if _, ok := fields[h]; !ok {
			return nil, fmt.Errorf("expecting field %q", h)
		}
	}

	tx := New()
	for {
		row, err := tab.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		ln, _ := tab.FieldPos(0)
		if err != nil {
			return nil, fmt.Errorf("on row %d: %v", ln, err)
		}

		f := "taxid"
		id, err := strconv.ParseInt(row[fields[f]], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("on row %d: field %q: %v", ln, f, err)
		}

		f = "parent"
		parent, err := strconv.ParseInt(row[fields[f]], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("on row %d: field %q: %v", ln, f, err)
		}

		f = "name"
		name := row[fields[f]]
		if name == "" {
			return nil, fmt.Errorf("on row %d: field %q: empty name", ln, f)
		}

		f = "rank"
		tx.Add(Taxon{
			ID:     id,
			Parent: parent,
			Rank:   Rank(row[fields[f]]),
			Name:   name,
		})
	}
	return tx, nil
}

// TSV writes a taxonomy as a TSV file.
func (tx *Taxonomy) TSV(w io.Writer) error {
	tab := csv.NewWriter(w)
	tab.Comma = '\t'
	tab.UseCRLF = true

	if err := tab.Write(header); err != nil {
		return fmt.Errorf("unable to write header: %v", err)
	}

	for _, id := range tx.IDs() {
		t := tx.taxa[id]
		row := []string{
			strconv.FormatInt(t.ID, 10),
			strconv.FormatInt(t.Parent, 10),
			string(t.Rank),
			t.Name,
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
