// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package jplace is a metapackage for commands
// that dealt with placement files.
package jplace

import (
	"github.com/js-arias/command"
	"github.com/js-arias/placetax/cmd/placetax/jplace/stats"
)

var Command = &command.Command{
	Usage: "jplace <command> [<argument>...]",
	Short: "commands for placement files",
}

func init() {
	Command.Add(stats.Command)
}
