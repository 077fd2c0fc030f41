// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// PlaceTax is a tool to label phylogenetic placement trees
// with taxonomic names.
package main

import (
	"github.com/js-arias/command"
	"github.com/js-arias/placetax/cmd/placetax/jplace"
	"github.com/js-arias/placetax/cmd/placetax/prj"
	"github.com/js-arias/placetax/cmd/placetax/rename"
	"github.com/js-arias/placetax/cmd/placetax/tree"
)

var app = &command.Command{
	Usage: "placetax <command> [<argument>...]",
	Short: "a tool to label placement trees with taxonomic names",
}

func init() {
	app.Add(jplace.Command)
	app.Add(prj.Command)
	app.Add(rename.Command)
	app.Add(tree.Command)
}

func main() {
	app.Main()
}
