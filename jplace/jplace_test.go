// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package jplace_test

import (
	"bytes"
	"errors"
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/js-arias/placetax/jplace"
	"github.com/js-arias/placetax/tree"
)

const blob = `{
  "tree": "((A[2]:1{0},B[3]:1{1})N1:1{2},(C[4]:1{3},D[5]:1{4})N2:1{5}){6};",
  "placements": [
    {"p": [[0, -100.5, 0.75, 0.1, 0.2], [2, -101.0, 0.25, 0.1, 0.3]], "nm": [["read 1", 1], ["read:2", 3]]},
    {"p": [[0, -90.0, 1.0, 0.1, 0.2]], "nm": [["read[3]", 1]]},
    {"p": [[5, -80.0, 0.5, 0.1, 0.2]], "nm": [["read 1", 1]]}
  ],
  "metadata": {"invocation": "pplacer -c ref.refpkg reads.fasta"},
  "version": 3,
  "fields": ["edge_num", "likelihood", "like_weight_ratio", "distal_length", "pendant_length"]
}`

func readBlob(t testing.TB, s string) *jplace.File {
	t.Helper()

	f, err := jplace.Read(strings.NewReader(s))
	if err != nil {
		t.Fatalf("unable to read jplace: %v", err)
	}
	return f
}

func TestRead(t *testing.T) {
	f := readBlob(t, blob)

	if f.Version != 3 {
		t.Errorf("version: got %d, want %d", f.Version, 3)
	}
	if got := f.Field(jplace.EdgeField); got != 0 {
		t.Errorf("field %q: got %d, want %d", jplace.EdgeField, got, 0)
	}
	if got := f.Field("post_prob"); got != -1 {
		t.Errorf("field %q: got %d, want %d", "post_prob", got, -1)
	}

	tr, err := f.ParseTree()
	if err != nil {
		t.Fatalf("unable to parse tree: %v", err)
	}
	if got := len(tr.Terms()); got != 4 {
		t.Errorf("terms: got %d, want %d", got, 4)
	}
}

func TestReadError(t *testing.T) {
	tests := map[string]string{
		"invalid json": `{"tree": `,
		"no tree":      `{"placements": [], "fields": ["edge_num"]}`,
	}
	for name, in := range tests {
		if _, err := jplace.Read(strings.NewReader(in)); err == nil {
			t.Errorf("%s: expecting error", name)
		}
	}
}

func TestPlacements(t *testing.T) {
	f := readBlob(t, blob)

	pl, err := f.Placements()
	if err != nil {
		t.Fatalf("unable to get placements: %v", err)
	}

	want := jplace.Placements{
		0: {"read_1": true, "read_2": true, "read_3_": true},
		2: {"read_1": true, "read_2": true},
		5: {"read_1": true},
	}
	if diff := cmp.Diff(want, pl); diff != "" {
		t.Errorf("placements: mismatch (-want +got):\n%s", diff)
	}

	if got, w := pl.Edges(), []int{0, 2, 5}; !reflect.DeepEqual(got, w) {
		t.Errorf("edges: got %v, want %v", got, w)
	}
	if got, w := pl.Names(0), []string{"read_1", "read_2", "read_3_"}; !reflect.DeepEqual(got, w) {
		t.Errorf("names: got %v, want %v", got, w)
	}
}

func TestPlacementsFieldOrder(t *testing.T) {
	s := `{
	  "tree": "(A:1{0},B:1{1}){2};",
	  "placements": [{"p": [[-10.0, 1]], "nm": [["x", 1]]}, {"p": [[-11.0, 1]], "nm": [["y", 1]]}],
	  "version": 3,
	  "fields": ["likelihood", "edge_num"]
	}`
	pl, err := readBlob(t, s).Placements()
	if err != nil {
		t.Fatalf("unable to get placements: %v", err)
	}
	want := jplace.Placements{1: {"x": true, "y": true}}
	if !reflect.DeepEqual(pl, want) {
		t.Errorf("placements: got %v, want %v", pl, want)
	}
}

func TestPlacementsError(t *testing.T) {
	single := `{
	  "tree": "(A:1{0},B:1{1}){2};",
	  "placements": [{"p": [[0, 1]], "nm": [["x", 1]]}, {"p": [[1, 1]], "n": ["y"]}],
	  "version": 3,
	  "fields": ["edge_num", "like_weight_ratio"]
	}`
	if _, err := readBlob(t, single).Placements(); !errors.Is(err, jplace.ErrSingleInsertion) {
		t.Errorf("single insertion: got error %v, want %v", err, jplace.ErrSingleInsertion)
	}

	tests := map[string]string{
		"no edge field": `{"tree": "(A,B);", "placements": [{"p": [[0]], "nm": [["x", 1]]}], "fields": ["likelihood"]}`,
		"short vector":  `{"tree": "(A,B);", "placements": [{"p": [[0]], "nm": [["x", 1]]}], "fields": ["likelihood", "edge_num"]}`,
		"bad edge":      `{"tree": "(A,B);", "placements": [{"p": [[1.5]], "nm": [["x", 1]]}], "fields": ["edge_num"]}`,
		"bad name":      `{"tree": "(A,B);", "placements": [{"p": [[1]], "nm": [[3, 1]]}], "fields": ["edge_num"]}`,
	}
	for name, in := range tests {
		if _, err := readBlob(t, in).Placements(); err == nil {
			t.Errorf("%s: expecting error", name)
		}
	}
}

func TestMap(t *testing.T) {
	tr, err := tree.ParseString("((A[2]:1{0},'B x[3]':1{7})N1:1{2},C[4]:1{3}){6};")
	if err != nil {
		t.Fatalf("unable to parse tree: %v", err)
	}
	pl := jplace.Placements{
		7:  {"seqX": true},
		42: {"seqY": true},
	}

	got := jplace.Map(tr, pl)
	want := []jplace.Pair{{Node: "B_x_3_{7}", Seq: "seqX"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("map: got %v, want %v", got, want)
	}
}

func TestMapPostorder(t *testing.T) {
	f := readBlob(t, blob)
	tr, err := f.ParseTree()
	if err != nil {
		t.Fatalf("unable to parse tree: %v", err)
	}
	pl, err := f.Placements()
	if err != nil {
		t.Fatalf("unable to get placements: %v", err)
	}

	for id := range tr.Preorder() {
		if tr.Label(id).Name == "N1" {
			tr.SetLabel(id, tree.Label{Name: "Bacteria", Rank: "superkingdom", Branch: 2})
		}
	}

	want := []jplace.Pair{
		{Node: "A_2_{0}", Seq: "read_1"},
		{Node: "A_2_{0}", Seq: "read_2"},
		{Node: "A_2_{0}", Seq: "read_3_"},
		{Node: "Bacteria_r_superkingdom_b_2{2}", Seq: "read_1"},
		{Node: "Bacteria_r_superkingdom_b_2{2}", Seq: "read_2"},
		{Node: "N2{5}", Seq: "read_1"},
	}
	pairs := jplace.Map(tr, pl)
	if diff := cmp.Diff(want, pairs); diff != "" {
		t.Errorf("map: mismatch (-want +got):\n%s", diff)
	}

	var w bytes.Buffer
	if err := jplace.WriteMapping(&w, pairs); err != nil {
		t.Fatalf("unable to write mapping: %v", err)
	}
	if !strings.HasPrefix(w.String(), "A_2_{0}\tread_1\n") {
		t.Errorf("mapping output: got %q", w.String())
	}

	np, err := jplace.ReadMapping(strings.NewReader("# node\tsequence\n" + w.String()))
	if err != nil {
		t.Fatalf("unable to read mapping: %v", err)
	}
	if !reflect.DeepEqual(np, pairs) {
		t.Errorf("read mapping: got %v, want %v", np, pairs)
	}
}

func TestStats(t *testing.T) {
	f := readBlob(t, blob)

	st, err := f.Stats()
	if err != nil {
		t.Fatalf("unable to get stats: %v", err)
	}
	want := []jplace.EdgeStat{
		{Edge: 0, Placements: 2, Names: 3, MeanLWR: 0.875, MaxLWR: 1},
		{Edge: 2, Placements: 1, Names: 2, MeanLWR: 0.25, MaxLWR: 0.25},
		{Edge: 5, Placements: 1, Names: 1, MeanLWR: 0.5, MaxLWR: 0.5},
	}
	if len(st) != len(want) {
		t.Fatalf("stats: got %d edges, want %d", len(st), len(want))
	}
	for i, w := range want {
		g := st[i]
		if g.Edge != w.Edge || g.Placements != w.Placements || g.Names != w.Names {
			t.Errorf("stats %d: got %+v, want %+v", i, g, w)
		}
		if math.Abs(g.MeanLWR-w.MeanLWR) > 1e-9 || math.Abs(g.MaxLWR-w.MaxLWR) > 1e-9 {
			t.Errorf("stats %d: lwr: got %.3f %.3f, want %.3f %.3f", i, g.MeanLWR, g.MaxLWR, w.MeanLWR, w.MaxLWR)
		}
	}
}
