package render

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/propnl/formula"
	"github.com/npillmayer/propnl/lexicon"
)

// Lookup maps proposition letters to descriptions. Lookups are read-only for
// the renderer.
type Lookup interface {
	Phrase(letter rune) (string, bool)
}

// MapLookup is a Lookup backed by a map.
type MapLookup map[rune]string

// Phrase is part of interface Lookup.
func (m MapLookup) Phrase(letter rune) (string, bool) {
	p, ok := m[letter]
	return p, ok
}

// Render phrases formula f as natural language. lookup may be nil, in which
// case every proposition is rendered by its label. If lex is nil, the
// default lexicon is used.
func Render(f formula.Node, lookup Lookup, lex *lexicon.Lexicon) string {
	if lex == nil {
		lex = lexicon.Default
	}
	var b strings.Builder
	r := renderer{b: &b, lookup: lookup, lex: lex}
	r.node(f)
	T().Debugf("rendered %s as %q", f, b.String())
	return b.String()
}

// Sentence renders f like Render, but capitalizes the first letter and
// terminates the text with a full stop.
func Sentence(f formula.Node, lookup Lookup, lex *lexicon.Lexicon) string {
	text := Render(f, lookup, lex)
	first, size := utf8.DecodeRuneInString(text)
	if size == 0 {
		return text
	}
	return string(unicode.ToUpper(first)) + text[size:] + "."
}

type renderer struct {
	b      *strings.Builder
	lookup Lookup
	lex    *lexicon.Lexicon
}

func (r renderer) node(f formula.Node) {
	switch n := f.(type) {
	case formula.Var:
		r.variable(n.Letter)
	case formula.Not:
		r.b.WriteString(r.lex.Not)
		r.b.WriteByte(' ')
		r.node(n.Child)
	case formula.Bin:
		r.binary(n)
	default:
		panic(fmt.Sprintf("invalid formula node type %T", f))
	}
}

func (r renderer) variable(letter rune) {
	if r.lookup != nil {
		if p, ok := r.lookup.Phrase(letter); ok && p != "" {
			r.b.WriteString(p)
			return
		}
	}
	r.b.WriteString(r.lex.Label(letter))
}

func (r renderer) binary(n formula.Bin) {
	switch n.Op {
	case formula.And:
		r.infix(n, r.lex.And)
	case formula.Or:
		r.infix(n, r.lex.Or)
	case formula.Iff:
		r.infix(n, r.lex.Iff)
	case formula.Implies:
		r.b.WriteString(r.lex.If)
		r.b.WriteByte(' ')
		r.node(n.Left)
		r.b.WriteString(", ")
		r.b.WriteString(r.lex.Then)
		r.b.WriteByte(' ')
		r.node(n.Right)
	default:
		panic(fmt.Sprintf("invalid connective %v", n.Op))
	}
}

func (r renderer) infix(n formula.Bin, keyword string) {
	r.node(n.Left)
	r.b.WriteByte(' ')
	r.b.WriteString(keyword)
	r.b.WriteByte(' ')
	r.node(n.Right)
}
