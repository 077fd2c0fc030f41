// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package prj implements a command to print
// the basic information of a project.
package prj

import (
	"fmt"
	"io"

	"github.com/js-arias/command"
	"github.com/js-arias/placetax/project"
	"github.com/js-arias/placetax/taxonomy"
)

var Command = &command.Command{
	Usage: "prj <project-file>",
	Short: "print information about a project",
	Long: `
Command prj reads a PlaceTax project and prints the information of the
different project elements into the standard output.

The argument of the command is the name of the project file.
	`,
	Run: run,
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}

	if p.Path(project.Placements) != "" {
		if err := readPlacements(c.Stdout(), p); err != nil {
			return err
		}
	}
	if p.Path(project.TaxDB) != "" || p.Path(project.Taxonomy) != "" {
		if err := readTaxonomy(c.Stdout(), p); err != nil {
			return err
		}
	}
	if p.Path(project.Tree) != "" {
		if err := readTree(c.Stdout(), p); err != nil {
			return err
		}
	}
	if p.Path(project.Mapping) != "" {
		if err := readMapping(c.Stdout(), p); err != nil {
			return err
		}
	}
	return nil
}

func readPlacements(w io.Writer, p *project.Project) error {
	jp, err := p.Placements()
	if err != nil {
		return err
	}
	t, err := jp.ParseTree()
	if err != nil {
		return fmt.Errorf("on file %q: %v", p.Path(project.Placements), err)
	}

	fmt.Fprintf(w, "Placements:\n")
	fmt.Fprintf(w, "\tfile: %s\n", p.Path(project.Placements))
	fmt.Fprintf(w, "\tversion: %d\n", jp.Version)
	fmt.Fprintf(w, "\ttree nodes: %d\n", t.Len())
	fmt.Fprintf(w, "\ttree terminals: %d\n", len(t.Terms()))
	fmt.Fprintf(w, "\tplacements: %d\n", len(jp.Records))

	pl, err := jp.Placements()
	if err != nil {
		fmt.Fprintf(w, "\tunsupported placements: %v\n", err)
	} else {
		seqs := make(map[string]bool)
		for _, e := range pl.Edges() {
			for _, s := range pl.Names(e) {
				seqs[s] = true
			}
		}
		fmt.Fprintf(w, "\tedges with placements: %d\n", len(pl))
		fmt.Fprintf(w, "\tsequences: %d\n", len(seqs))
	}
	fmt.Fprintf(w, "\n")
	return nil
}

func readTaxonomy(w io.Writer, p *project.Project) error {
	r, closeTax, err := p.Resolver()
	if err != nil {
		return err
	}
	defer closeTax()

	fmt.Fprintf(w, "Taxonomy:\n")
	if name := p.Path(project.TaxDB); name != "" {
		fmt.Fprintf(w, "\tdatabase: %s\n", name)
	}
	if name := p.Path(project.Taxonomy); name != "" {
		fmt.Fprintf(w, "\tfile: %s\n", name)
	}
	if tx, ok := r.(*taxonomy.Taxonomy); ok {
		fmt.Fprintf(w, "\ttaxa: %d\n", len(tx.IDs()))
	}
	fmt.Fprintf(w, "\n")
	return nil
}

func readTree(w io.Writer, p *project.Project) error {
	t, err := p.Tree()
	if err != nil {
		return err
	}

	ranked := 0
	for _, id := range t.Nodes() {
		if t.IsTerm(id) {
			continue
		}
		if t.Label(id).Rank != "" {
			ranked++
		}
	}

	fmt.Fprintf(w, "Labeled tree:\n")
	fmt.Fprintf(w, "\tfile: %s\n", p.Path(project.Tree))
	fmt.Fprintf(w, "\tnodes: %d\n", t.Len())
	fmt.Fprintf(w, "\tterminals: %d\n", len(t.Terms()))
	fmt.Fprintf(w, "\tranked nodes: %d\n", ranked)
	fmt.Fprintf(w, "\troot: %s\n", t.Label(t.Root()))
	fmt.Fprintf(w, "\n")
	return nil
}

func readMapping(w io.Writer, p *project.Project) error {
	pairs, err := p.Mapping()
	if err != nil {
		return err
	}

	nodes := make(map[string]bool)
	for _, pr := range pairs {
		nodes[pr.Node] = true
	}

	fmt.Fprintf(w, "Mapping:\n")
	fmt.Fprintf(w, "\tfile: %s\n", p.Path(project.Mapping))
	fmt.Fprintf(w, "\tpairs: %d\n", len(pairs))
	fmt.Fprintf(w, "\tnodes: %d\n", len(nodes))
	fmt.Fprintf(w, "\n")
	return nil
}
