package propnl

import (
	"errors"
	"strings"

	"github.com/npillmayer/propnl/encode"
	"github.com/npillmayer/propnl/formula"
	"github.com/npillmayer/propnl/lexicon"
	"github.com/npillmayer/propnl/render"
)

// ErrEmptyInput is returned for blank sentences and formulas.
var ErrEmptyInput = errors.New("propnl: input is empty")

// Translator translates sentences to formulas and vice versa.
// A Translator holds no state between calls and may be shared.
type Translator struct {
	lex     *lexicon.Lexicon
	encoder *encode.Encoder
}

// Option configures a Translator.
type Option func(*Translator)

// WithLexicon sets the lexicon for both directions of translation.
func WithLexicon(lex *lexicon.Lexicon) Option {
	return func(t *Translator) {
		if lex != nil {
			t.lex = lex
		}
	}
}

// NewTranslator creates a Translator. Without options, the default lexicon
// is used.
func NewTranslator(opts ...Option) *Translator {
	t := &Translator{lex: lexicon.Default}
	for _, opt := range opts {
		opt(t)
	}
	t.encoder = encode.NewEncoder(t.lex)
	return t
}

// Lexicon returns the lexicon t has been configured with.
func (t *Translator) Lexicon() *lexicon.Lexicon {
	return t.lex
}

// ToFormula normalizes and encodes a sentence. The mapping of the result
// holds the phrases of the sentence with their letters.
func (t *Translator) ToFormula(sentence string) (encode.Encoding, error) {
	return t.ToFormulaWith(sentence, nil)
}

// ToFormulaWith works like ToFormula, but continues the letter assignment
// of mapping m, which is not modified.
func (t *Translator) ToFormulaWith(sentence string, m *encode.Mapping) (encode.Encoding, error) {
	text := encode.Normalize(sentence)
	if text == "" {
		return encode.Encoding{}, ErrEmptyInput
	}
	CT().Debugf("normalized %q to %q", sentence, text)
	return t.encoder.EncodeWith(text, m)
}

// ToSentence parses a formula and renders it as natural language, taking
// descriptions of the propositions from lookup. lookup may be nil.
// An *encode.Mapping may serve as lookup.
func (t *Translator) ToSentence(f string, lookup render.Lookup) (string, error) {
	tree, err := t.Parse(f)
	if err != nil {
		return "", err
	}
	return render.Render(tree, lookup, t.lex), nil
}

// Parse parses a formula. Errors are either *token.SyntaxError or
// *formula.ParseError, or ErrEmptyInput for a blank formula.
func (t *Translator) Parse(f string) (formula.Node, error) {
	if strings.TrimSpace(f) == "" {
		return nil, ErrEmptyInput
	}
	return formula.ParseString(f)
}

// Variables returns the proposition letters of a formula, in ascending
// order. Clients use it to find out which descriptions a call to ToSentence
// will need.
func (t *Translator) Variables(f string) ([]rune, error) {
	tree, err := t.Parse(f)
	if err != nil {
		return nil, err
	}
	return formula.CollectVariables(tree), nil
}
