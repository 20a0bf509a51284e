package token

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// Kind is the type of a token.
type Kind int

// Token kinds. Values start at 1, the zero Kind is not a valid token.
const (
	Variable Kind = iota + 1 // atomic proposition A–Z
	Not                      // ¬
	And                      // ∧
	Or                       // ∨
	Implies                  // →
	Iff                      // ↔
	LParen                   // (
	RParen                   // )
)

const kindname = "VARNOTANDORIMPLIESIFFLPARENRPAREN"

var kindindex = [...]uint8{0, 3, 6, 9, 11, 18, 21, 27, 33}

func (k Kind) String() string {
	if k < Variable || k > RParen {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindname[kindindex[k-1]:kindindex[k]]
}

// Symbol returns the canonical logical notation of a connective or bracket.
// For Variable it returns the empty string, as variables print as their letter.
func (k Kind) Symbol() string {
	switch k {
	case Not:
		return "¬"
	case And:
		return "∧"
	case Or:
		return "∨"
	case Implies:
		return "→"
	case Iff:
		return "↔"
	case LParen:
		return "("
	case RParen:
		return ")"
	}
	return ""
}

// Token is a single lexical unit of a formula. Only tokens of kind Variable
// carry a Letter.
type Token struct {
	Kind   Kind
	Letter rune
}

// Var creates a variable token for letter l.
func Var(l rune) Token {
	return Token{Kind: Variable, Letter: l}
}

// Op creates a token for a connective or a bracket.
func Op(k Kind) Token {
	return Token{Kind: k}
}

func (t Token) String() string {
	if t.Kind == Variable {
		return string(t.Letter)
	}
	if s := t.Kind.Symbol(); s != "" {
		return s
	}
	return t.Kind.String()
}

// Letters is the table of runes valid as atomic propositions.
// Letters outside of A–Z, even if upper case, are not accepted.
var Letters = rangetable.New([]rune("ABCDEFGHIJKLMNOPQRSTUVWXYZ")...)

// IsLetter returns true if r may stand for an atomic proposition.
func IsLetter(r rune) bool {
	return unicode.Is(Letters, r)
}

// SyntaxError is returned by Tokenize for characters which cannot start a
// token.
type SyntaxError struct {
	Char rune // the offending character
	Pos  int  // code-point offset of Char in the input, starting at 0
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("propnl/token: unexpected character %q at position %d", e.Char, e.Pos)
}

// Tokenize splits a formula into tokens, in source order. Empty input (or
// input consisting of whitespace only) results in an empty slice.
// If an illegal character is found, a *SyntaxError is returned together with
// a nil slice.
func Tokenize(formula string) ([]Token, error) {
	input := []rune(formula)
	tokens := make([]Token, 0, len(input))
	for i := 0; i < len(input); {
		r := input[i]
		switch {
		case unicode.IsSpace(r):
			i++
			continue
		case IsLetter(r):
			tokens = append(tokens, Var(r))
		case r == '(':
			tokens = append(tokens, Op(LParen))
		case r == ')':
			tokens = append(tokens, Op(RParen))
		case r == '¬' || r == '~':
			tokens = append(tokens, Op(Not))
		case r == '∧' || r == '^':
			tokens = append(tokens, Op(And))
		case r == '∨' || r == 'v':
			tokens = append(tokens, Op(Or))
		case r == '→':
			tokens = append(tokens, Op(Implies))
		case r == '↔':
			tokens = append(tokens, Op(Iff))
		case r == '-' && lookahead(input, i, ">"):
			tokens = append(tokens, Op(Implies))
			i += 2
			continue
		case r == '<' && lookahead(input, i, "->"):
			tokens = append(tokens, Op(Iff))
			i += 3
			continue
		default:
			T().Debugf("tokenizer stopped at %q, position %d", r, i)
			return nil, &SyntaxError{Char: r, Pos: i}
		}
		i++
	}
	T().Debugf("tokenized %q into %d token(s)", formula, len(tokens))
	return tokens, nil
}

// lookahead checks if the runes following position i match s.
func lookahead(input []rune, i int, s string) bool {
	ahead := []rune(s)
	if i+len(ahead) >= len(input) {
		return false
	}
	for j, r := range ahead {
		if input[i+1+j] != r {
			return false
		}
	}
	return true
}

// Format writes a token sequence in canonical notation, separating tokens by
// a single space.
func Format(tokens []Token) string {
	var b strings.Builder
	for i, t := range tokens {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(t.String())
	}
	return b.String()
}
