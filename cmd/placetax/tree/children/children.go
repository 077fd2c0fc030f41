// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package children implements a command to print
// the children of a node of a labeled tree.
package children

import (
	"fmt"
	"io"
	"regexp"

	"github.com/js-arias/command"
	"github.com/js-arias/placetax/project"
	"github.com/js-arias/placetax/tree"
)

var Command = &command.Command{
	Usage: "children [--regexp] <project-file> <node>",
	Short: "print the children of a node",
	Long: `
Command children reads the labeled tree from a PlaceTax project and prints
the labels of the children of a node. It is intended to help explore the
tree.

The first argument of the command is the name of the project file. The second
argument is the full label of the node, for example 'Bacillota r_phylum b_12'.

If the flag --regexp is set, the second argument is used as a regular
expression, and the children of all nodes with a matching label will be
printed.

Nodes are searched in preorder.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var useRegexp bool

func setFlags(c *command.Command) {
	c.Flags().BoolVar(&useRegexp, "regexp", false, "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 2 {
		return c.UsageError("expecting project file and node")
	}

	match := func(s string) bool { return s == args[1] }
	if useRegexp {
		re, err := regexp.Compile(args[1])
		if err != nil {
			return c.UsageError(fmt.Sprintf("invalid regular expression %q: %v", args[1], err))
		}
		match = re.MatchString
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}
	t, err := p.Tree()
	if err != nil {
		return err
	}

	n := printChildren(c.Stdout(), t, match)
	if n == 0 {
		return fmt.Errorf("node %q not found", args[1])
	}
	return nil
}

func printChildren(w io.Writer, t *tree.Tree, match func(string) bool) int {
	n := 0
	for id := range t.Preorder() {
		name := t.Label(id).String()
		if !match(name) {
			continue
		}
		n++
		fmt.Fprintf(w, "Children for %s:\n", name)
		for _, c := range t.Children(id) {
			fmt.Fprintf(w, "\t%s\n", t.Label(c))
		}
	}
	return n
}
