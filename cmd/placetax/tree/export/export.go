// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package export implements a command to export
// a labeled tree as a time tree.
package export

import (
	"fmt"
	"os"
	"strings"

	"github.com/js-arias/command"
	"github.com/js-arias/placetax/jplace"
	"github.com/js-arias/placetax/project"
	"github.com/js-arias/placetax/tree"
	"github.com/js-arias/timetree"
)

var Command = &command.Command{
	Usage: `export [--name <tree-name>] [--age <value>]
	[-o|--output <file>] <project-file>`,
	Short: "export a labeled tree as a time tree",
	Long: `
Command export reads the labeled tree from a PlaceTax project and writes it
as a tab-delimited time tree file, that can be used by PhyGeo.

The argument of the command is the name of the project file.

Terminal names are cleaned (spaces, colons, and square brackets are replaced
by underscores). Internal node labels and edge identifiers are not exported.

Branch lengths are interpreted as million years. By default, the age of the
root will be calculated from the largest branch length between any terminal
and the root. To set a different root age, use the flag --age, with a value
in million years.

The flag --name sets the name of the tree. By default it is 'placetax'.

By default, the tree is printed in the standard output. Use the flag
--output, or -o, to write the tree in a file.
	`,
	SetFlags: setFlags,
	Run:      run,
}

// millionYears is the number of years in a million years.
const millionYears = 1_000_000

var treeName string
var rootAge float64
var output string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&treeName, "name", "placetax", "")
	c.Flags().Float64Var(&rootAge, "age", 0, "")
	c.Flags().StringVar(&output, "output", "", "")
	c.Flags().StringVar(&output, "o", "", "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}
	t, err := p.Tree()
	if err != nil {
		return err
	}

	tc, err := timeTree(t)
	if err != nil {
		return err
	}

	if output == "" {
		return tc.TSV(c.Stdout())
	}
	return writeTrees(output, tc)
}

func timeTree(t *tree.Tree) (*timetree.Collection, error) {
	for _, id := range t.Nodes() {
		t.SetEdge(id, -1)
		if t.IsTerm(id) {
			t.SetLabel(id, tree.Name(jplace.Clean(t.Label(id).String())))
			continue
		}
		t.SetLabel(id, tree.Name(""))
	}

	tc, err := timetree.Newick(strings.NewReader(t.String()), treeName, int64(rootAge*millionYears))
	if err != nil {
		return nil, fmt.Errorf("when exporting tree %q: %v", treeName, err)
	}
	return tc, nil
}

func writeTrees(name string, tc *timetree.Collection) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		e := f.Close()
		if e != nil && err == nil {
			err = e
		}
	}()

	if err := tc.TSV(f); err != nil {
		return fmt.Errorf("while writing to %q: %v", name, err)
	}
	return nil
}

