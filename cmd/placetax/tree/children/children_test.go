// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package children

import (
	"regexp"
	"strings"
	"testing"

	"github.com/js-arias/placetax/tree"
)

func TestPrintChildren(t *testing.T) {
	tr, err := tree.ParseString("((A,B)'Bacillota r_phylum b_0',(C,D)'Pseudomonadota r_phylum b_1')'Bacteria r_superkingdom b_2';")
	if err != nil {
		t.Fatalf("unable to parse tree: %v", err)
	}

	var b strings.Builder
	n := printChildren(&b, tr, func(s string) bool { return s == "Bacillota r_phylum b_0" })
	want := "Children for Bacillota r_phylum b_0:\n\tA\n\tB\n"
	if n != 1 || b.String() != want {
		t.Errorf("children: got %d nodes %q, want %d nodes %q", n, b.String(), 1, want)
	}

	b.Reset()
	re := regexp.MustCompile(`r_phylum`)
	n = printChildren(&b, tr, re.MatchString)
	want = "Children for Bacillota r_phylum b_0:\n\tA\n\tB\nChildren for Pseudomonadota r_phylum b_1:\n\tC\n\tD\n"
	if n != 2 || b.String() != want {
		t.Errorf("children regexp: got %d nodes %q, want %d nodes %q", n, b.String(), 2, want)
	}

	if n := printChildren(&b, tr, func(s string) bool { return s == "Archaea" }); n != 0 {
		t.Errorf("children: got %d nodes, want %d", n, 0)
	}
}
