// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package stats implements a command to print
// a summary of the placements of each edge.
package stats

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/js-arias/command"
	"github.com/js-arias/placetax/jplace"
	"github.com/js-arias/placetax/project"
	"github.com/js-arias/placetax/tree"
)

var Command = &command.Command{
	Usage: "stats [--tree] <project-file>",
	Short: "print a summary of the placements",
	Long: `
Command stats reads the placement file of a PlaceTax project and prints, for
each edge with placements, the number of placements, the number of distinct
sequences, and the mean and maximum likelihood weight ratio of the
placements.

The argument of the command is the name of the project file.

If the flag --tree is set, the label of the node of the labeled tree that
holds each edge will be printed too.

The output is a tab-delimited table sorted by edge.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var withTree bool

func setFlags(c *command.Command) {
	c.Flags().BoolVar(&withTree, "tree", false, "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}
	jp, err := p.Placements()
	if err != nil {
		return err
	}
	st, err := jp.Stats()
	if err != nil {
		return fmt.Errorf("on file %q: %v", p.Path(project.Placements), err)
	}

	var nodes map[int]string
	if withTree {
		t, err := p.Tree()
		if err != nil {
			return err
		}
		nodes = edgeNodes(t)
	}

	return writeStats(c.Stdout(), st, nodes)
}

func edgeNodes(t *tree.Tree) map[int]string {
	nodes := make(map[int]string)
	for _, id := range t.Nodes() {
		e, ok := t.Edge(id)
		if !ok {
			continue
		}
		nodes[e] = jplace.NodeName(t, id)
	}
	return nodes
}

func writeStats(w io.Writer, st []jplace.EdgeStat, nodes map[int]string) error {
	tsv := csv.NewWriter(w)
	tsv.Comma = '\t'
	tsv.UseCRLF = true

	header := []string{"edge", "placements", "sequences", "mean-lwr", "max-lwr"}
	if nodes != nil {
		header = append(header, "node")
	}
	if err := tsv.Write(header); err != nil {
		return err
	}

	for _, s := range st {
		row := []string{
			strconv.Itoa(s.Edge),
			strconv.Itoa(s.Placements),
			strconv.Itoa(s.Names),
			strconv.FormatFloat(s.MeanLWR, 'f', 4, 64),
			strconv.FormatFloat(s.MaxLWR, 'f', 4, 64),
		}
		if nodes != nil {
			row = append(row, nodes[s.Edge])
		}
		if err := tsv.Write(row); err != nil {
			return err
		}
	}

	tsv.Flush()
	if err := tsv.Error(); err != nil {
		return fmt.Errorf("while writing data: %v", err)
	}
	return nil
}
