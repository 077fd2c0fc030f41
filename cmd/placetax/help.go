// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package main

import "github.com/js-arias/command"

func init() {
	app.Add(mappingFilesGuide)
	app.Add(projectsGuide)
	app.Add(taxonomyFilesGuide)
}

var projectsGuide = &command.Command{
	Usage: "project-files",
	Short: "about project files",
	Long: `
PlaceTax reads and writes several files. To reduce the burden of keeping track
of many files, a single project file is used to hold the reference of all files
used in the analysis. This guide explains the structure of the file, but most
of the time, the best way to edit or view this file is by using placetax
commands.

A project file is a tab-delimited file with the following fields:

	- dataset  for the kind of file
	- path     for the path of the file

Here is an example file:

	# placetax project files
	dataset	path
	jplace	placements.jplace
	taxdb	taxonomy.sqlite
	tree	tree.nwk
	mapping	mapping.tab

The valid file types are:

- Phylogenetic placements. Defined by the dataset keyword "jplace". This file
  contains a reference tree with edge annotations and the placements of the
  query sequences, in jplace format. Only placements with multiplicities
  ("nm" field) are supported.
- Taxonomy files. Defined by the dataset keyword "taxonomy". This file
  contains a taxonomy in the form of a tab-delimited file. See the guide
  'placetax help taxonomy-files'.
- Taxonomy databases. Defined by the dataset keyword "taxdb". This is an
  SQLite database with the NCBI taxonomy dump tables. If defined, it is used
  instead of the taxonomy file.
- Relabeled trees. Defined by the dataset keyword "tree". This file contains
  the reference tree, with its nodes labeled with taxonomic names, in newick
  format. It is produced by the command 'placetax rename'.
- Mapping files. Defined by the dataset keyword "mapping". This file contains
  the assignation of the placed sequences to the nodes of the relabeled tree.
  It is produced by the command 'placetax rename'. See the guide
  'placetax help mapping-files'.
	`,
}

var taxonomyFilesGuide = &command.Command{
	Usage: "taxonomy-files",
	Short: "about taxonomy files",
	Long: `
The terminals of a reference tree are linked to a taxonomy using a taxonomic
ID between square brackets in the terminal name (for example
'Escherichia_coli[562]').

The taxonomy can be given as a tab-delimited file with the following fields:

	- taxid   the numeric ID of the taxon
	- parent  the numeric ID of the parent taxon
	- rank    the rank of the taxon
	- name    the scientific name of the taxon

Here is an example file:

	# taxonomy
	taxid	parent	rank	name
	2	131567	superkingdom	Bacteria
	1224	2	phylum	Pseudomonadota
	1236	1224	class	Gammaproteobacteria

Lines starting with '#' are ignored. Ranks not used for labels (for example
'no rank' or 'clade') are accepted and skipped when building the lineages.

Alternatively, the taxonomy can be given as an SQLite database with the tables
of the NCBI taxonomy dump: 'nodes' (with columns tax_id, parent_tax_id and
rank) and 'names' (with columns tax_id, name_txt and name_class). Only names
with the name class 'scientific name' are used.

The ranks used for labels are, from the more inclusive: superkingdom, phylum,
class, order, family, genus, species, and subspecies.
	`,
}

var mappingFilesGuide = &command.Command{
	Usage: "mapping-files",
	Short: "about mapping files",
	Long: `
A mapping file assigns each placed sequence to a node of the relabeled tree.
It is a tab-delimited file without header, and with the following fields:

	- node      the label of the node, followed by the edge number of the
	            placement file between curly brackets
	- sequence  the name of the placed sequence

Here is an example file:

	Pseudomonadota_r_phylum_b_4{12}	seq1
	Pseudomonadota_r_phylum_b_4{12}	seq7
	Escherichia_coli_562_{3}	seq2

Node labels use the format '<name> r_<rank> b_<branch>', in which the rank
and branch parts are optional. Spaces, colons, and square brackets are
replaced by underscores. The rows are ordered as the nodes are found in a
postorder traversal of the tree, and sequence names are sorted inside each
node.
	`,
}
