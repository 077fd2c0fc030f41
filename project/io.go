// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package project

import (
	"fmt"
	"os"

	"github.com/js-arias/placetax/jplace"
	"github.com/js-arias/placetax/taxonomy"
	"github.com/js-arias/placetax/tree"
)

// Placements reads a jplace file
// as defined in a project.
func (p *Project) Placements() (*jplace.File, error) {
	name := p.Path(Placements)
	if name == "" {
		return nil, fmt.Errorf("placements not defined in project %q", p.name)
	}
	return jplace.ReadFile(name)
}

// Resolver opens the taxonomy defined in a project.
// If the project defines a taxonomy database,
// it will be used,
// otherwise the taxonomy TSV file will be used.
//
// The returned function must be called
// to release the taxonomy.
func (p *Project) Resolver() (taxonomy.Resolver, func() error, error) {
	if name := p.Path(TaxDB); name != "" {
		db, err := taxonomy.OpenDB(name)
		if err != nil {
			return nil, nil, err
		}
		return taxonomy.NewCache(db), db.Close, nil
	}

	name := p.Path(Taxonomy)
	if name == "" {
		return nil, nil, fmt.Errorf("taxonomy not defined in project %q", p.name)
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	tx, err := taxonomy.ReadTSV(f)
	if err != nil {
		return nil, nil, fmt.Errorf("on file %q: %v", name, err)
	}
	return tx, func() error { return nil }, nil
}

// Tree reads the relabeled tree
// as defined in a project.
func (p *Project) Tree() (*tree.Tree, error) {
	name := p.Path(Tree)
	if name == "" {
		return nil, fmt.Errorf("tree not defined in project %q", p.name)
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	t, err := tree.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("on file %q: %v", name, err)
	}
	return t, nil
}

// Mapping reads the mapping of placed sequences
// as defined in a project.
func (p *Project) Mapping() ([]jplace.Pair, error) {
	name := p.Path(Mapping)
	if name == "" {
		return nil, fmt.Errorf("mapping not defined in project %q", p.name)
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	pairs, err := jplace.ReadMapping(f)
	if err != nil {
		return nil, fmt.Errorf("on file %q: %v", name, err)
	}
	return pairs, nil
}
