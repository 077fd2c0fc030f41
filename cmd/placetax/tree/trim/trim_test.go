// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package trim

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/js-arias/placetax/label"
	"github.com/js-arias/placetax/project"
	"github.com/js-arias/placetax/taxonomy"
)

const placements = `{
	"tree": "((A[1]:1{0},B[2]:1{1})'Bacillota r_phylum b_0':1{2},(C[3]:1{3},D[4]:1{4})'Pseudomonadota r_phylum b_1':1{5})'Bacteria r_superkingdom b_2'{6};",
	"fields": ["edge_num"],
	"placements": [],
	"version": 3
}`

func TestTrimPlacements(t *testing.T) {
	dir := t.TempDir()
	jf := filepath.Join(dir, "placements.jplace")
	if err := os.WriteFile(jf, []byte(placements), 0o644); err != nil {
		t.Fatalf("unable to write placements: %v", err)
	}
	p := project.New()
	p.SetName(filepath.Join(dir, "project.tab"))
	p.Add(project.Placements, jf)

	fromPlacements = true
	defer func() { fromPlacements = false }()

	tr, err := readTree(p)
	if err != nil {
		t.Fatalf("unable to read tree: %v", err)
	}
	if n := label.Trim(tr, taxonomy.Phylum); n != 2 {
		t.Errorf("trim: got %d trimmed nodes, want %d", n, 2)
	}

	var b strings.Builder
	if err := writeLeaves(&b, tr); err != nil {
		t.Fatalf("unable to write leaves: %v", err)
	}
	want := "Bacillota r_phylum b_0\nPseudomonadota r_phylum b_1\n"
	if got := b.String(); got != want {
		t.Errorf("leaves: got %q, want %q", got, want)
	}

	// the labeled tree is not defined in the project
	fromPlacements = false
	if _, err := readTree(p); err == nil {
		t.Errorf("labeled tree: expecting error")
	}
}
