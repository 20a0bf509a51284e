package encode

import (
	"fmt"
	"strings"

	"github.com/npillmayer/propnl/lexicon"
)

// ErrorKind classifies encoding errors.
type ErrorKind int

// Kinds of encoding errors
const (
	MalformedConditional ErrorKind = iota + 1 // "if … then …" without two sides
	EmptyPhrase                               // a clause without any words
	SymbolsExhausted                          // more than 26 distinct phrases
)

func (k ErrorKind) String() string {
	switch k {
	case MalformedConditional:
		return "malformed conditional"
	case EmptyPhrase:
		return "empty phrase"
	case SymbolsExhausted:
		return "no proposition letters left"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// EncodeError is returned for sentences which cannot be encoded. Text is the
// part of the sentence in question.
type EncodeError struct {
	Kind ErrorKind
	Text string
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("propnl/encode: %s in %q", e.Kind, e.Text)
}

// Encoding is the result of encoding a sentence.
type Encoding struct {
	Formula string   // e.g. "P → (Q ∧ ¬R)"
	Mapping *Mapping // phrases of the sentence and their letters
}

// Encoder encodes normalized sentences, using the keywords of a lexicon.
// Encoders hold no state between calls and may be shared.
type Encoder struct {
	lex *lexicon.Lexicon
}

// NewEncoder creates an encoder for a lexicon. If lex is nil, the default
// lexicon is used.
func NewEncoder(lex *lexicon.Lexicon) *Encoder {
	if lex == nil {
		lex = lexicon.Default
	}
	return &Encoder{lex: lex}
}

// Encode encodes a normalized sentence with a fresh mapping.
func (enc *Encoder) Encode(text string) (Encoding, error) {
	return enc.EncodeWith(text, nil)
}

// EncodeWith encodes a normalized sentence, continuing the letter assignment
// of seed. Phrases already in seed keep their letters. seed itself is not
// modified; the mapping of the result is a copy. seed may be nil.
func (enc *Encoder) EncodeWith(text string, seed *Mapping) (Encoding, error) {
	var m *Mapping
	if seed == nil {
		m = NewMapping()
	} else {
		m = seed.Clone()
	}
	c := encoding{lex: enc.lex, mapping: m}
	f, err := c.sentence(text)
	if err != nil {
		T().Debugf("cannot encode %q: %v", text, err)
		return Encoding{}, err
	}
	T().Infof("encoded %q as %s", text, f)
	return Encoding{Formula: f, Mapping: m}, nil
}

// encoding carries the state of one call to EncodeWith.
type encoding struct {
	lex     *lexicon.Lexicon
	mapping *Mapping
}

func (c encoding) sentence(text string) (string, error) {
	ifKw, thenKw := c.lex.If+" ", " "+c.lex.Then+" "
	if !strings.HasPrefix(text, ifKw) || !strings.Contains(text, thenKw) {
		return c.expression(text)
	}
	sides := strings.Split(strings.TrimPrefix(text, ifKw), thenKw)
	if len(sides) != 2 || strings.TrimSpace(sides[0]) == "" || strings.TrimSpace(sides[1]) == "" {
		return "", &EncodeError{Kind: MalformedConditional, Text: text}
	}
	left, err := c.expression(sides[0])
	if err != nil {
		return "", err
	}
	right, err := c.expression(sides[1])
	if err != nil {
		return "", err
	}
	return left + " → " + right, nil
}

func (c encoding) expression(text string) (string, error) {
	if and := " " + c.lex.And + " "; strings.Contains(text, and) {
		return c.join(strings.Split(text, and), " ∧ ")
	}
	if or := " " + c.lex.Or + " "; strings.Contains(text, or) {
		return c.join(strings.Split(text, or), " ∨ ")
	}
	return c.atom(text)
}

func (c encoding) join(parts []string, connective string) (string, error) {
	atoms := make([]string, len(parts))
	for i, part := range parts {
		a, err := c.atom(part)
		if err != nil {
			return "", err
		}
		atoms[i] = a
	}
	return "(" + strings.Join(atoms, connective) + ")", nil
}

func (c encoding) atom(text string) (string, error) {
	phrase := strings.TrimSpace(text)
	negated := false
	if not := c.lex.Not + " "; strings.HasPrefix(phrase, not) {
		negated = true
		phrase = strings.TrimSpace(strings.TrimPrefix(phrase, not))
	}
	if phrase == "" {
		return "", &EncodeError{Kind: EmptyPhrase, Text: text}
	}
	l, err := c.mapping.symbolFor(phrase)
	if err != nil {
		return "", err
	}
	if negated {
		return "¬" + string(l), nil
	}
	return string(l), nil
}
