// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package tree_test

import (
	"testing"

	"github.com/js-arias/placetax/tree"
)

func TestLabel(t *testing.T) {
	tests := []struct {
		s string
		l tree.Label
	}{
		{"Proteobacteria r_phylum b_12", tree.Label{Name: "Proteobacteria", Rank: "phylum", Branch: 12}},
		{"Escherichia coli r_species", tree.Label{Name: "Escherichia coli", Rank: "species", Branch: -1}},
		{"Escherichia coli[562] b_0", tree.Label{Name: "Escherichia coli[562]", Branch: 0}},
		{"seq1[562]", tree.Label{Name: "seq1[562]", Branch: -1}},
		{"b_3", tree.Label{Branch: 3}},
		{"", tree.Label{Branch: -1}},
	}

	for _, test := range tests {
		l := tree.ParseLabel(test.s)
		if l != test.l {
			t.Errorf("parse %q: got %+v, want %+v", test.s, l, test.l)
		}
		if s := test.l.String(); s != test.s {
			t.Errorf("string %+v: got %q, want %q", test.l, s, test.s)
		}
	}

	l := tree.Label{Name: "Archaea", Rank: "superkingdom", Branch: 4}
	if k := l.Key(); k.Branch != -1 || k.Name != l.Name || k.Rank != l.Rank {
		t.Errorf("key: got %+v", k)
	}
}
