// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package tree

import (
	"strconv"
	"strings"
)

// A Label is the name of a node.
//
// When written,
// a label is encoded as
//
//	<name> [r_<rank>] [b_<branch>]
//
// with the fields separated by spaces.
type Label struct {
	// Name is either a scientific name
	// or the original token of a terminal.
	Name string

	// Rank is the taxonomic rank of the name.
	// An empty rank means that the label has no rank.
	Rank string

	// Branch is a unique index assigned to a node.
	// A negative value means that the label has no branch index.
	Branch int
}

// Name returns a label without rank or branch index.
func Name(name string) Label {
	return Label{Name: name, Branch: -1}
}

// Key returns the label without the branch index.
func (l Label) Key() Label {
	l.Branch = -1
	return l
}

// String returns the encoded label.
func (l Label) String() string {
	var b strings.Builder
	b.WriteString(l.Name)
	if l.Rank != "" {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString("r_")
		b.WriteString(l.Rank)
	}
	if l.Branch >= 0 {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString("b_")
		b.WriteString(strconv.Itoa(l.Branch))
	}
	return b.String()
}

// ParseLabel decodes a label.
// Rank and branch tags are only recognized
// at the end of the label.
func ParseLabel(s string) Label {
	l := Label{Branch: -1}
	fields := strings.Fields(s)

	if n := len(fields); n > 0 {
		if v, ok := strings.CutPrefix(fields[n-1], "b_"); ok {
			if b, err := strconv.Atoi(v); err == nil && b >= 0 {
				l.Branch = b
				fields = fields[:n-1]
			}
		}
	}
	if n := len(fields); n > 0 {
		if v, ok := strings.CutPrefix(fields[n-1], "r_"); ok && isWord(v) {
			l.Rank = v
			fields = fields[:n-1]
		}
	}

	// keep the original spacing of the name
	if len(fields) == len(strings.Fields(s)) {
		l.Name = strings.TrimSpace(s)
		return l
	}
	l.Name = strings.Join(fields, " ")
	return l
}

func isWord(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			continue
		}
		return false
	}
	return true
}
