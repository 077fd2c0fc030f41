// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package rename implements a command to label
// the nodes of a placement tree
// with taxonomic names.
package rename

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/js-arias/command"
	"github.com/js-arias/placetax/jplace"
	"github.com/js-arias/placetax/label"
	"github.com/js-arias/placetax/project"
	"github.com/js-arias/placetax/tree"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var Command = &command.Command{
	Usage: `rename [--jplace <file>] [--taxonomy <file>] [--taxdb <file>]
	[--tree <file>] [--mapping <file>]
	[--no-reroot] [--verbose] <project-file>`,
	Short: "label a placement tree with taxonomic names",
	Long: `
Command rename reads the reference tree of a placement file, labels its nodes
with taxonomic names, and maps the placed sequences to the labeled nodes.

The argument of the command is the name of the project file. If no project
file exists, a new project will be created.

The terminals of the tree must include a taxonomic ID between square brackets
(for example 'Escherichia_coli[562]'). The lineage of each terminal is read
from the taxonomy of the project. Each internal node is labeled with the
name shared by its children or, otherwise, with the most specific rank in
which all of its terminals share the same name. Each internal node receives
a unique branch index, so labels are in the form
'<name> r_<rank> b_<branch>'.

By default, the tree is rerooted at the split between the superkingdoms
(Archaea and Eukaryota, or Bacteria and Archaea). If there is no such split,
the first node labeled as Bacteria is used as the root. Use the flag
--no-reroot to keep the root of the placement file.

Only placements with multiplicities ("nm" field) are supported. If any
placement uses single insertion names ("n" field) the command fails before
writing any file.

The flags --jplace, --taxonomy, and --taxdb set the placement file, the
taxonomy file, and the taxonomy database of the project. If a taxonomy
database is defined, it is used instead of the taxonomy file.

The labeled tree is written in newick format in the tree file of the
project, or 'tree.nwk' if it is not defined. The mapping of the placed
sequences is written in the mapping file of the project, or 'mapping.tab' if
it is not defined. Use the flags --tree and --mapping to set different
output files.

Use the flag --verbose to print details of the labeling process in the
standard error.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var jplaceFile string
var taxFile string
var taxDB string
var treeFile string
var mappingFile string
var noReroot bool
var verbose bool

func setFlags(c *command.Command) {
	c.Flags().StringVar(&jplaceFile, "jplace", "", "")
	c.Flags().StringVar(&taxFile, "taxonomy", "", "")
	c.Flags().StringVar(&taxDB, "taxdb", "", "")
	c.Flags().StringVar(&treeFile, "tree", "", "")
	c.Flags().StringVar(&mappingFile, "mapping", "", "")
	c.Flags().BoolVar(&noReroot, "no-reroot", false, "")
	c.Flags().BoolVar(&verbose, "verbose", false, "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}

	p, err := openProject(args[0])
	if err != nil {
		return err
	}
	if jplaceFile != "" {
		p.Add(project.Placements, jplaceFile)
	}
	if taxFile != "" {
		p.Add(project.Taxonomy, taxFile)
	}
	if taxDB != "" {
		p.Add(project.TaxDB, taxDB)
	}

	log := newLogger(c.Stderr(), verbose)
	defer log.Sync()

	jp, err := p.Placements()
	if err != nil {
		return err
	}
	t, err := jp.ParseTree()
	if err != nil {
		return err
	}
	pl, err := jp.Placements()
	if err != nil {
		return fmt.Errorf("on file %q: %v", p.Path(project.Placements), err)
	}
	log.Info("placements read",
		zap.Int("nodes", t.Len()),
		zap.Int("edges", len(pl)),
	)

	r, closeTax, err := p.Resolver()
	if err != nil {
		return err
	}
	defer closeTax()

	lb := &label.Labeler{
		Resolver: r,
		Logger:   log,
	}
	lb.Label(t)

	if !noReroot {
		root, ok := label.Reroot(t)
		if ok {
			log.Info("tree rerooted", zap.String("root", t.Label(root).String()))
		} else {
			log.Warn("no superkingdom split found: root unchanged")
		}
	}

	if treeFile == "" {
		treeFile = p.Path(project.Tree)
		if treeFile == "" {
			treeFile = "tree.nwk"
		}
	}
	if err := writeTree(treeFile, t); err != nil {
		return err
	}

	if mappingFile == "" {
		mappingFile = p.Path(project.Mapping)
		if mappingFile == "" {
			mappingFile = "mapping.tab"
		}
	}
	pairs := jplace.Map(t, pl)
	if err := writeMapping(mappingFile, pairs); err != nil {
		return err
	}
	log.Info("sequences mapped", zap.Int("pairs", len(pairs)))

	p.Add(project.Tree, treeFile)
	p.Add(project.Mapping, mappingFile)
	if err := p.Write(); err != nil {
		return err
	}
	return nil
}

func openProject(name string) (*project.Project, error) {
	p, err := project.Read(name)
	if errors.Is(err, os.ErrNotExist) {
		p := project.New()
		p.SetName(name)
		return p, nil
	}
	if err != nil {
		return nil, fmt.Errorf("unable to open project %q: %v", name, err)
	}
	return p, nil
}

func newLogger(w io.Writer, verbose bool) *zap.Logger {
	level := zapcore.WarnLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.TimeKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(cfg), zapcore.AddSync(w), level)
	return zap.New(core)
}

func writeTree(name string, t *tree.Tree) (err error) {
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

	if err := t.Newick(f); err != nil {
		return fmt.Errorf("while writing to %q: %v", name, err)
	}
	return nil
}

func writeMapping(name string, pairs []jplace.Pair) (err error) {
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

	if err := jplace.WriteMapping(f, pairs); err != nil {
		return fmt.Errorf("while writing to %q: %v", name, err)
	}
	return nil
}
