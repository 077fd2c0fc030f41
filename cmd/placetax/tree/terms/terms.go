// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package terms implements a command to print
// the list of the terminals in the labeled tree of a project.
package terms

import (
	"fmt"

	"github.com/js-arias/command"
	"github.com/js-arias/placetax/project"
	"golang.org/x/exp/slices"
)

var Command = &command.Command{
	Usage: "terms [--placements] <project-file>",
	Short: "print a list of tree terminals",
	Long: `
Command terms reads the labeled tree from a PlaceTax project and prints the
name of the terminals in the standard output, sorted by name.

The argument of the command is the name of the project file.

By default the terminals of the labeled tree are printed. If the flag
--placements is set, the terminals of the reference tree of the placement
file will be printed.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var fromPlacements bool

func setFlags(c *command.Command) {
	c.Flags().BoolVar(&fromPlacements, "placements", false, "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}

	ls, err := makeTermList(p)
	if err != nil {
		return err
	}
	for _, term := range ls {
		fmt.Fprintf(c.Stdout(), "%s\n", term)
	}
	return nil
}

func makeTermList(p *project.Project) ([]string, error) {
	var names []string
	if fromPlacements {
		jp, err := p.Placements()
		if err != nil {
			return nil, err
		}
		t, err := jp.ParseTree()
		if err != nil {
			return nil, fmt.Errorf("on file %q: %v", p.Path(project.Placements), err)
		}
		for _, id := range t.Terms() {
			names = append(names, t.Label(id).String())
		}
	} else {
		t, err := p.Tree()
		if err != nil {
			return nil, err
		}
		for _, id := range t.Terms() {
			names = append(names, t.Label(id).String())
		}
	}

	slices.Sort(names)
	return slices.Compact(names), nil
}
