// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package jplace_test

import (
	"reflect"
	"testing"

	"github.com/js-arias/placetax/jplace"
	"github.com/js-arias/placetax/label"
	"github.com/js-arias/placetax/taxonomy"
	"github.com/js-arias/placetax/tree"
)

const enterobacteria = `{
	"tree": "((E[562]:1{0},K[573]:1{1}):1{2},B[1423]:1{3}):0{4};",
	"fields": ["edge_num", "likelihood", "like_weight_ratio"],
	"placements": [
		{"p": [[0, -10, 0.9]], "nm": [["a", 1]]},
		{"p": [[2, -11, 0.6], [2, -12, 0.4]], "nm": [["c", 2], ["b", 1]]}
	],
	"version": 3
}`

func bacteria() *taxonomy.Taxonomy {
	taxa := []taxonomy.Taxon{
		{ID: 2, Parent: 131567, Rank: taxonomy.Superkingdom, Name: "Bacteria"},
		{ID: 1224, Parent: 2, Rank: taxonomy.Phylum, Name: "Pseudomonadota"},
		{ID: 543, Parent: 1224, Rank: taxonomy.Family, Name: "Enterobacteriaceae"},
		{ID: 561, Parent: 543, Rank: taxonomy.Genus, Name: "Escherichia"},
		{ID: 562, Parent: 561, Rank: taxonomy.Species, Name: "Escherichia coli"},
		{ID: 570, Parent: 543, Rank: taxonomy.Genus, Name: "Klebsiella"},
		{ID: 573, Parent: 570, Rank: taxonomy.Species, Name: "Klebsiella pneumoniae"},
		{ID: 1239, Parent: 2, Rank: taxonomy.Phylum, Name: "Bacillota"},
		{ID: 186817, Parent: 1239, Rank: taxonomy.Family, Name: "Bacillaceae"},
		{ID: 1423, Parent: 186817, Rank: taxonomy.Species, Name: "Bacillus subtilis"},
	}
	tx := taxonomy.New()
	for _, t := range taxa {
		tx.Add(t)
	}
	return tx
}

func TestRelabelAndMap(t *testing.T) {
	f := readBlob(t, enterobacteria)
	tr, err := f.ParseTree()
	if err != nil {
		t.Fatalf("unable to parse tree: %v", err)
	}
	pl, err := f.Placements()
	if err != nil {
		t.Fatalf("unable to read placements: %v", err)
	}

	lb := &label.Labeler{Resolver: bacteria()}
	lb.Label(tr)
	label.Reroot(tr)

	want := []jplace.Pair{
		{Node: "E_562_{0}", Seq: "a"},
		{Node: "Enterobacteriaceae_r_family_b_0{2}", Seq: "b"},
		{Node: "Enterobacteriaceae_r_family_b_0{2}", Seq: "c"},
	}
	got := jplace.Map(tr, pl)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("mapping: got %v, want %v", got, want)
	}

	wantTree := "(('E[562]':1{0},'K[573]':1{1})'Enterobacteriaceae r_family b_0':1{2},'B[1423]':1{3})'Bacteria r_superkingdom b_1':0{4};"
	if s := tr.String(); s != wantTree {
		t.Errorf("tree: got %q, want %q", s, wantTree)
	}
}

func TestMapAfterReroot(t *testing.T) {
	tx := taxonomy.New()
	for _, tax := range []taxonomy.Taxon{
		{ID: 2, Parent: 131567, Rank: taxonomy.Superkingdom, Name: "Bacteria"},
		{ID: 10, Parent: 2, Rank: taxonomy.Species, Name: "Bacterium one"},
		{ID: 11, Parent: 2, Rank: taxonomy.Species, Name: "Bacterium two"},
		{ID: 2157, Parent: 131567, Rank: taxonomy.Superkingdom, Name: "Archaea"},
		{ID: 20, Parent: 2157, Rank: taxonomy.Species, Name: "Archaeon one"},
		{ID: 21, Parent: 2157, Rank: taxonomy.Species, Name: "Archaeon two"},
	} {
		tx.Add(tax)
	}

	tr := parseTree(t, "(((B1[10]{0},B2[11]{1}){2},(A1[20]{3},A2[21]{4}){5}){6},C{7}){8};")
	pl := jplace.Placements{}
	pl.Add(2, "seqX")
	pl.Add(8, "seqR")

	lb := &label.Labeler{Resolver: tx}
	lb.Label(tr)

	want := []jplace.Pair{
		{Node: "Bacteria_r_superkingdom_b_0{2}", Seq: "seqX"},
		{Node: "b_3{8}", Seq: "seqR"},
	}
	if got := jplace.Map(tr, pl); !reflect.DeepEqual(got, want) {
		t.Errorf("mapping before reroot: got %v, want %v", got, want)
	}

	root, ok := label.Reroot(tr)
	if !ok {
		t.Fatalf("reroot: tree not rerooted")
	}
	if got := tr.Label(root).String(); got != "Bacteria r_superkingdom b_0" {
		t.Errorf("reroot: got root %q, want %q", got, "Bacteria r_superkingdom b_0")
	}

	// same pairs, in the postorder of the rerooted tree
	want = []jplace.Pair{
		{Node: "b_3{8}", Seq: "seqR"},
		{Node: "Bacteria_r_superkingdom_b_0{2}", Seq: "seqX"},
	}
	if got := jplace.Map(tr, pl); !reflect.DeepEqual(got, want) {
		t.Errorf("mapping after reroot: got %v, want %v", got, want)
	}
}

func parseTree(t testing.TB, s string) *tree.Tree {
	t.Helper()

	tr, err := tree.ParseString(s)
	if err != nil {
		t.Fatalf("unable to parse tree: %v", err)
	}
	return tr
}
