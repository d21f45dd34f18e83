// Package tree parses labeled-bracket constituency trees, as found in the
// SentenceParse column of the corpus:
//
//	(ROOT (S (NP (DT The) (NN cat)) (VP (MD will) (VP (VB sleep)))))
//
// A leaf is a node without children; its Label holds the token.
package tree

import (
	"errors"
	"fmt"
	"strings"
)

var ErrSyntax = errors.New("tree: syntax error")

type Tree struct {
	Label    string
	Children []*Tree
}

// TaggedWord is a token with the label of its parent node.
type TaggedWord struct {
	Word string `json:"word"`
	Tag  string `json:"tag"`
}

func (t *Tree) IsLeaf() bool {
	return len(t.Children) == 0
}

// IsPreterminal reports whether t has exactly one child and that child is a
// leaf, e.g. (MD will).
func (t *Tree) IsPreterminal() bool {
	return len(t.Children) == 1 && t.Children[0].IsLeaf()
}

// Leaves returns the tokens of t from left to right.
func (t *Tree) Leaves() []string {
	var leaves []string
	t.walk(func(n *Tree) {
		if n.IsLeaf() {
			leaves = append(leaves, n.Label)
		}
	})
	return leaves
}

// Pos returns each token paired with the label of the node directly above it.
func (t *Tree) Pos() []TaggedWord {
	var pairs []TaggedWord
	t.walk(func(n *Tree) {
		for _, c := range n.Children {
			if c.IsLeaf() {
				pairs = append(pairs, TaggedWord{Word: c.Label, Tag: n.Label})
			}
		}
	})
	return pairs
}

// Subtrees returns all constituents of t in pre-order, t included. Leaves
// are not constituents.
func (t *Tree) Subtrees() []*Tree {
	var subtrees []*Tree
	t.walk(func(n *Tree) {
		if !n.IsLeaf() {
			subtrees = append(subtrees, n)
		}
	})
	return subtrees
}

// Contains reports whether word is one of the leaves of t.
func (t *Tree) Contains(word string) bool {
	for _, l := range t.Leaves() {
		if l == word {
			return true
		}
	}
	return false
}

func (t *Tree) walk(fn func(*Tree)) {
	fn(t)
	for _, c := range t.Children {
		c.walk(fn)
	}
}

// String returns the bracketed form of t on a single line.
func (t *Tree) String() string {
	if t == nil {
		return ""
	}

	var sb strings.Builder
	t.write(&sb)
	return sb.String()
}

func (t *Tree) write(sb *strings.Builder) {
	if t.IsLeaf() {
		sb.WriteString(t.Label)
		return
	}

	sb.WriteByte('(')
	sb.WriteString(t.Label)
	for i, c := range t.Children {
		if i > 0 || t.Label != "" {
			sb.WriteByte(' ')
		}
		c.write(sb)
	}
	sb.WriteByte(')')
}

// Parse reads a single bracketed tree. The root label may be empty, as in
// the "( (S ...))" form of Penn Treebank files.
func Parse(s string) (*Tree, error) {
	p := &parser{tokens: tokenize(s)}
	if len(p.tokens) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrSyntax)
	}

	t, err := p.node()
	if err != nil {
		return nil, err
	}

	if p.pos != len(p.tokens) {
		return nil, fmt.Errorf("%w: unexpected %q after tree", ErrSyntax, p.tokens[p.pos])
	}

	return t, nil
}

func tokenize(s string) []string {
	var tokens []string
	var cur strings.Builder

	flush := func() {
		if cur.Len() > 0 {
			tokens = append(tokens, cur.String())
			cur.Reset()
		}
	}

	for _, r := range s {
		switch r {
		case '(', ')':
			flush()
			tokens = append(tokens, string(r))
		case ' ', '\t', '\n', '\r':
			flush()
		default:
			cur.WriteRune(r)
		}
	}
	flush()

	return tokens
}

type parser struct {
	tokens []string
	pos    int
}

func (p *parser) next() (string, bool) {
	if p.pos >= len(p.tokens) {
		return "", false
	}
	tok := p.tokens[p.pos]
	p.pos++
	return tok, true
}

func (p *parser) peek() (string, bool) {
	if p.pos >= len(p.tokens) {
		return "", false
	}
	return p.tokens[p.pos], true
}

func (p *parser) node() (*Tree, error) {
	tok, ok := p.next()
	if !ok {
		return nil, fmt.Errorf("%w: unexpected end of input", ErrSyntax)
	}
	if tok != "(" {
		return nil, fmt.Errorf("%w: expected '(' got %q", ErrSyntax, tok)
	}

	t := &Tree{}
	if tok, ok := p.peek(); ok && tok != "(" && tok != ")" {
		t.Label = tok
		p.pos++
	}

	for {
		tok, ok := p.peek()
		if !ok {
			return nil, fmt.Errorf("%w: unbalanced parentheses", ErrSyntax)
		}

		switch tok {
		case ")":
			p.pos++
			if len(t.Children) == 0 {
				return nil, fmt.Errorf("%w: empty constituent %q", ErrSyntax, t.Label)
			}
			return t, nil
		case "(":
			child, err := p.node()
			if err != nil {
				return nil, err
			}
			t.Children = append(t.Children, child)
		default:
			p.pos++
			t.Children = append(t.Children, &Tree{Label: tok})
		}
	}
}
