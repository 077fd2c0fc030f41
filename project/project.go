// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package project implements reading and writing
// of placetax project files.
//
// A placetax project is a tab-delimited file (TSV)
// used to store the different data files
// used and produced by placetax commands.
package project

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
)

// Dataset is a keyword to identify
// the type of a dataset file in a project.
type Dataset string

// Valid dataset types.
const (
	// File with phylogenetic placements
	// in jplace format.
	Placements Dataset = "jplace"

	// File with a taxonomy
	// in the form of a TSV file.
	Taxonomy Dataset = "taxonomy"

	// SQLite database with the NCBI taxonomy.
	TaxDB Dataset = "taxdb"

	// File for the relabeled tree
	// in Newick format.
	Tree Dataset = "tree"

	// File for the mapping of placed sequences
	// to the nodes of the relabeled tree.
	Mapping Dataset = "mapping"
)

// Datasets returns the valid dataset keywords.
func Datasets() []Dataset {
	return []Dataset{Placements, Taxonomy, TaxDB, Tree, Mapping}
}

// ParseDataset returns the dataset
// for a keyword.
func ParseDataset(s string) (Dataset, bool) {
	set := Dataset(strings.ToLower(strings.TrimSpace(s)))
	if !slices.Contains(Datasets(), set) {
		return "", false
	}
	return set, true
}

// A Project is a set of paths
// indexed by dataset,
// stored in a project file.
type Project struct {
	name  string
	paths map[Dataset]string
}

// New creates a new empty project.
func New() *Project {
	return &Project{paths: make(map[Dataset]string)}
}

// Read reads a project file.
func Read(name string) (*Project, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	p, err := ReadTSV(f)
	if err != nil {
		return nil, fmt.Errorf("on file %q: %v", name, err)
	}
	p.name = name
	return p, nil
}

var header = []string{
	"dataset",
	"path",
}

// ReadTSV reads a project from a TSV file.
//
// The TSV must contain the following fields:
//
//   - dataset, for the kind of file
//   - path, for the path of the file
//
// Here is an example file:
//
//	# placetax project files
//	dataset	path
//	jplace	placements.jplace
//	taxdb	taxonomy.sqlite
//	tree	tree.nwk
//	mapping	mapping.tab
//
// Rows with an empty dataset or path are ignored.
// Unknown datasets are an error.
func ReadTSV(r io.Reader) (*Project, error) {
	tsv := csv.NewReader(r)
	tsv.Comma = '\t'
	tsv.Comment = '#'

	head, err := tsv.Read()
	if err != nil {
		return nil, fmt.Errorf("header: %v", err)
	}
	fields := make(map[string]int, len(head))
	for i, h := range head {
		fields[strings.ToLower(h)] = i
	}
	for _, h := range header {
		if _, ok := fields[h]; !ok {
			return nil, fmt.Errorf("expecting field %q", h)
		}
	}

	p := New()
	for {
		row, err := tsv.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		ln, _ := tsv.FieldPos(0)
		if err != nil {
			return nil, fmt.Errorf("on row %d: %v", ln, err)
		}

		kw := row[fields["dataset"]]
		path := strings.TrimSpace(row[fields["path"]])
		if strings.TrimSpace(kw) == "" || path == "" {
			continue
		}
		set, ok := ParseDataset(kw)
		if !ok {
			return nil, fmt.Errorf("on row %d: unknown dataset %q", ln, kw)
		}
		if prev, dup := p.paths[set]; dup && prev != path {
			return nil, fmt.Errorf("on row %d: dataset %q already defined as %q", ln, set, prev)
		}
		p.paths[set] = path
	}
	return p, nil
}

// Add sets the path of a dataset
// and returns the previous path.
// An empty path removes the dataset.
func (p *Project) Add(set Dataset, path string) string {
	prev := p.paths[set]
	if path == "" {
		delete(p.paths, set)
		return prev
	}
	p.paths[set] = path
	return prev
}

// Path returns the path of the given dataset.
func (p *Project) Path(set Dataset) string {
	return p.paths[set]
}

// Sets returns the datasets defined on a project,
// sorted by keyword.
func (p *Project) Sets() []Dataset {
	sets := make([]Dataset, 0, len(p.paths))
	for s := range p.paths {
		sets = append(sets, s)
	}
	slices.Sort(sets)
	return sets
}

// Name returns the project file name.
func (p *Project) Name() string {
	return p.name
}

// SetName sets the project file name.
func (p *Project) SetName(name string) {
	p.name = name
}

// Write writes a project into its project file.
func (p *Project) Write() (err error) {
	if p.name == "" {
		return errors.New("undefined project file name")
	}
	f, err := os.Create(p.name)
	if err != nil {
		return err
	}
	defer func() {
		e := f.Close()
		if e != nil && err == nil {
			err = e
		}
	}()

	if err := p.TSV(f); err != nil {
		return fmt.Errorf("on file %q: %v", p.name, err)
	}
	return nil
}

// TSV writes a project as a TSV file.
func (p *Project) TSV(w io.Writer) error {
	fmt.Fprintf(w, "# placetax project files\n")
	tsv := csv.NewWriter(w)
	tsv.Comma = '\t'
	tsv.UseCRLF = true

	if err := tsv.Write(header); err != nil {
		return fmt.Errorf("while writing header: %v", err)
	}
	for _, s := range p.Sets() {
		if err := tsv.Write([]string{string(s), p.paths[s]}); err != nil {
			return err
		}
	}

	tsv.Flush()
	if err := tsv.Error(); err != nil {
		return fmt.Errorf("while writing data: %v", err)
	}
	return nil
}
