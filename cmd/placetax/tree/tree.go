// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package tree is a metapackage for commands
// that dealt with labeled trees.
package tree

import (
	"github.com/js-arias/command"
	"github.com/js-arias/placetax/cmd/placetax/tree/children"
	"github.com/js-arias/placetax/cmd/placetax/tree/export"
	"github.com/js-arias/placetax/cmd/placetax/tree/terms"
	"github.com/js-arias/placetax/cmd/placetax/tree/trim"
)

var Command = &command.Command{
	Usage: "tree <command> [<argument>...]",
	Short: "commands for labeled trees",
}

func init() {
	Command.Add(children.Command)
	Command.Add(export.Command)
	Command.Add(terms.Command)
	Command.Add(trim.Command)
}
