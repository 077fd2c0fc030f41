// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package tree

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

// Parse reads a tree in Newick (parenthetical) format.
//
// Node names can be quoted,
// and can be followed by a branch length
// and an edge identifier in curly braces,
// as in the trees of jplace files,
// for example:
//
//	((A:0.1{0},B:0.2{1}):0.3{2},C:0.4{3}){4};
//
// An edge identifier at the end of a name
// (e.g., 'A[562]{0}')
// is also accepted.
func Parse(r io.Reader) (*Tree, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return ParseString(string(b))
}

// ParseString reads a tree in Newick format
// from a string.
func ParseString(s string) (*Tree, error) {
	p := &parser{src: s}
	t := &Tree{}
	p.t = t

	p.skipSpace()
	if p.pos >= len(p.src) {
		return nil, fmt.Errorf("newick: empty tree")
	}
	root, err := p.subtree(-1)
	if err != nil {
		return nil, err
	}
	t.root = root

	p.skipSpace()
	if p.peek() != ';' {
		return nil, p.errorf("expecting ';'")
	}
	return t, nil
}

type parser struct {
	src string
	pos int
	t   *Tree
}

func (p *parser) peek() byte {
	if p.pos >= len(p.src) {
		return 0
	}
	return p.src[p.pos]
}

func (p *parser) skipSpace() {
	for p.pos < len(p.src) {
		switch p.src[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.pos++
		default:
			return
		}
	}
}

func (p *parser) errorf(format string, args ...any) error {
	end := p.pos + 20
	if end > len(p.src) {
		end = len(p.src)
	}
	start := p.pos
	if start > len(p.src) {
		start = len(p.src)
	}
	return fmt.Errorf("newick: at byte %d: %s: near %q", p.pos, fmt.Sprintf(format, args...), p.src[start:end])
}

func (p *parser) subtree(parent int) (int, error) {
	p.skipSpace()
	id := p.t.add(parent, Label{Branch: -1})

	if p.peek() == '(' {
		p.pos++
		for {
			if _, err := p.subtree(id); err != nil {
				return 0, err
			}
			p.skipSpace()
			c := p.peek()
			p.pos++
			if c == ',' {
				continue
			}
			if c == ')' {
				break
			}
			p.pos--
			return 0, p.errorf("expecting ',' or ')'")
		}
	}

	if err := p.tail(id); err != nil {
		return 0, err
	}
	return id, nil
}

var nameEdge = regexp.MustCompile(`^(.*)\{(\d+)\}$`)

// tail reads the name, length, and edge identifier
// of a node.
func (p *parser) tail(id int) error {
	n := p.t.nodes[id]

	p.skipSpace()
	var name string
	switch c := p.peek(); c {
	case '\'', '"':
		s, err := p.quoted(c)
		if err != nil {
			return err
		}
		name = s
	default:
		start := p.pos
		for p.pos < len(p.src) && !strings.ContainsRune("(),:;{", rune(p.src[p.pos])) {
			p.pos++
		}
		name = strings.TrimSpace(p.src[start:p.pos])
	}
	if m := nameEdge.FindStringSubmatch(name); m != nil {
		e, err := strconv.Atoi(m[2])
		if err != nil {
			return p.errorf("invalid edge %q", m[2])
		}
		n.edge = e
		name = strings.TrimSpace(m[1])
	}
	n.label = ParseLabel(name)

	for {
		p.skipSpace()
		switch p.peek() {
		case ':':
			if n.hasLen {
				return p.errorf("duplicated branch length")
			}
			p.pos++
			p.skipSpace()
			start := p.pos
			for p.pos < len(p.src) && strings.ContainsRune("0123456789.-+eE", rune(p.src[p.pos])) {
				p.pos++
			}
			v, err := strconv.ParseFloat(p.src[start:p.pos], 64)
			if err != nil {
				p.pos = start
				return p.errorf("invalid branch length")
			}
			n.length = v
			n.hasLen = true
		case '{':
			p.pos++
			start := p.pos
			for p.pos < len(p.src) && p.src[p.pos] >= '0' && p.src[p.pos] <= '9' {
				p.pos++
			}
			if p.peek() != '}' || start == p.pos {
				p.pos = start - 1
				return p.errorf("invalid edge annotation")
			}
			e, err := strconv.Atoi(p.src[start:p.pos])
			if err != nil {
				p.pos = start - 1
				return p.errorf("invalid edge annotation")
			}
			p.pos++
			n.edge = e
		default:
			return nil
		}
	}
}

// quoted reads a quoted name.
// A doubled quote inside the name
// is read as a single quote.
func (p *parser) quoted(q byte) (string, error) {
	start := p.pos
	p.pos++
	var b strings.Builder
	for {
		if p.pos >= len(p.src) {
			p.pos = start
			return "", p.errorf("unterminated quoted name")
		}
		c := p.src[p.pos]
		p.pos++
		if c != q {
			b.WriteByte(c)
			continue
		}
		if p.peek() == q {
			b.WriteByte(q)
			p.pos++
			continue
		}
		return b.String(), nil
	}
}

// Newick writes a tree in Newick format.
func (t *Tree) Newick(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if t.node(t.root) != nil {
		t.writeNode(bw, t.root)
	}
	fmt.Fprintf(bw, ";\n")
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("while writing tree: %v", err)
	}
	return nil
}

// String returns the tree in Newick format.
func (t *Tree) String() string {
	var b strings.Builder
	t.Newick(&b)
	return strings.TrimSpace(b.String())
}

func (t *Tree) writeNode(w *bufio.Writer, id int) {
	n := t.nodes[id]
	if len(n.children) > 0 {
		w.WriteByte('(')
		for i, c := range n.children {
			if i > 0 {
				w.WriteByte(',')
			}
			t.writeNode(w, c)
		}
		w.WriteByte(')')
	}
	w.WriteString(quote(n.label.String()))
	if n.hasLen {
		w.WriteByte(':')
		w.WriteString(strconv.FormatFloat(n.length, 'g', -1, 64))
	}
	if n.edge >= 0 {
		fmt.Fprintf(w, "{%d}", n.edge)
	}
}

func quote(name string) string {
	if !strings.ContainsAny(name, " \t\n()[]{}:;,'\"") {
		return name
	}
	return "'" + strings.ReplaceAll(name, "'", "''") + "'"
}
