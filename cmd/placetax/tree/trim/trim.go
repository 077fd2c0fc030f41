// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package trim implements a command to trim
// a labeled tree at a given rank.
package trim

import (
	"fmt"
	"io"
	"os"

	"github.com/js-arias/command"
	"github.com/js-arias/placetax/label"
	"github.com/js-arias/placetax/project"
	"github.com/js-arias/placetax/taxonomy"
	"github.com/js-arias/placetax/tree"
)

var Command = &command.Command{
	Usage: `trim --rank <rank> [--placements]
	[-o|--output <file>] [--leaves <file>] <project-file>`,
	Short: "trim a labeled tree at a rank",
	Long: `
Command trim reads the labeled tree from a PlaceTax project and removes the
descendants of each node labeled with the given rank, so those nodes become
terminals.

The argument of the command is the name of the project file.

The flag --rank is required, and sets the rank used to trim the tree (for
example 'phylum').

By default the labeled tree of the project is trimmed. If the flag
--placements is set, the reference tree of the placement file will be
trimmed instead. Its nodes must be already labeled with ranks.

By default, the trimmed tree is printed in the standard output in newick
format. Use the flag --output, or -o, to write the tree in a file.

If the flag --leaves is set, the labels of the terminals of the trimmed tree
will be written in the indicated file, one per line.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var rankFlag string
var fromPlacements bool
var output string
var leavesFile string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&rankFlag, "rank", "", "")
	c.Flags().BoolVar(&fromPlacements, "placements", false, "")
	c.Flags().StringVar(&output, "output", "", "")
	c.Flags().StringVar(&output, "o", "", "")
	c.Flags().StringVar(&leavesFile, "leaves", "", "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}
	if rankFlag == "" {
		return c.UsageError("expecting --rank flag")
	}
	rank, ok := taxonomy.ParseRank(rankFlag)
	if !ok {
		return c.UsageError(fmt.Sprintf("unknown rank %q", rankFlag))
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}
	t, err := readTree(p)
	if err != nil {
		return err
	}

	label.Trim(t, rank)

	if output == "" {
		if err := t.Newick(c.Stdout()); err != nil {
			return err
		}
	} else if err := writeFile(output, t, writeTree); err != nil {
		return err
	}

	if leavesFile != "" {
		if err := writeFile(leavesFile, t, writeLeaves); err != nil {
			return err
		}
	}
	return nil
}

func readTree(p *project.Project) (*tree.Tree, error) {
	if !fromPlacements {
		return p.Tree()
	}

	jp, err := p.Placements()
	if err != nil {
		return nil, err
	}
	t, err := jp.ParseTree()
	if err != nil {
		return nil, fmt.Errorf("on file %q: %v", p.Path(project.Placements), err)
	}
	return t, nil
}

func writeTree(w io.Writer, t *tree.Tree) error {
	return t.Newick(w)
}

func writeLeaves(w io.Writer, t *tree.Tree) error {
	for _, id := range t.Terms() {
		if _, err := fmt.Fprintf(w, "%s\n", t.Label(id)); err != nil {
			return err
		}
	}
	return nil
}

func writeFile(name string, t *tree.Tree, fn func(io.Writer, *tree.Tree) error) (err error) {
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

	if err := fn(f, t); err != nil {
		return fmt.Errorf("while writing to %q: %v", name, err)
	}
	return nil
}
