package formula

import (
	"fmt"

	"github.com/npillmayer/propnl/token"
)

// MaxDepth is the maximum nesting of groups and negations the parser will
// accept. Deeper input results in a ParseError of kind TooDeep.
const MaxDepth = 512

// ErrorKind classifies parse errors.
type ErrorKind int

// Kinds of parse errors
const (
	UnexpectedToken   ErrorKind = iota + 1 // token cannot start or continue a formula
	UnexpectedEnd                          // input ended where a formula was expected
	UnterminatedGroup                      // '(' without matching ')'
	TrailingTokens                         // tokens left after a complete formula
	TooDeep                                // nesting exceeds MaxDepth
)

func (k ErrorKind) String() string {
	switch k {
	case UnexpectedToken:
		return "unexpected token"
	case UnexpectedEnd:
		return "unexpected end of input"
	case UnterminatedGroup:
		return "unterminated group"
	case TrailingTokens:
		return "trailing tokens"
	case TooDeep:
		return "formula nested too deeply"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// ParseError is returned by Parse for token sequences which do not form a
// formula. Pos is the index of Token in the token sequence. For errors of
// kind UnexpectedEnd, Token is the zero Token and Pos is the length of the
// token sequence.
type ParseError struct {
	Kind  ErrorKind
	Token token.Token
	Pos   int
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case UnexpectedEnd:
		return fmt.Sprintf("propnl/formula: %s", e.Kind)
	case UnterminatedGroup:
		if e.Token.Kind == 0 {
			return fmt.Sprintf("propnl/formula: %s, missing ')' at end of input", e.Kind)
		}
		return fmt.Sprintf("propnl/formula: %s, expected ')' but found %q at token %d",
			e.Kind, e.Token.String(), e.Pos)
	}
	return fmt.Sprintf("propnl/formula: %s %q at token %d", e.Kind, e.Token.String(), e.Pos)
}

// Parse parses a sequence of tokens into a formula tree.
// The complete sequence must form exactly one formula.
func Parse(tokens []token.Token) (Node, error) {
	p := borrowParser(tokens)
	defer p.releaseIntoPool()
	f, err := p.parseBinary(0)
	if err != nil {
		T().Debugf("parse failed: %v", err)
		return nil, err
	}
	if p.pos < len(p.tokens) {
		return nil, p.errorAt(TrailingTokens)
	}
	T().Debugf("parsed %s", f)
	return f, nil
}

// ParseString tokenizes and parses a formula. Tokenizer errors are passed
// through as *token.SyntaxError.
func ParseString(s string) (Node, error) {
	tokens, err := token.Tokenize(s)
	if err != nil {
		return nil, err
	}
	return Parse(tokens)
}

// --- Recursive descent -----------------------------------------------------

// parser is a cursor over a token sequence. Parsers are pooled, see pool.go.
type parser struct {
	tokens []token.Token
	pos    int // index of the next token to read
	depth  int // current nesting of groups and negations
}

// Binary levels from lowest to highest binding priority.
var levels = [...]struct {
	kind token.Kind
	op   Op
}{
	{token.Iff, Iff},
	{token.Implies, Implies},
	{token.Or, Or},
	{token.And, And},
}

func (p *parser) at(k token.Kind) bool {
	return p.pos < len(p.tokens) && p.tokens[p.pos].Kind == k
}

func (p *parser) errorAt(kind ErrorKind) *ParseError {
	if p.pos >= len(p.tokens) {
		return &ParseError{Kind: kind, Pos: len(p.tokens)}
	}
	return &ParseError{Kind: kind, Token: p.tokens[p.pos], Pos: p.pos}
}

// parseBinary parses  level (OP level)*  and folds the operands to the left.
func (p *parser) parseBinary(level int) (Node, error) {
	if level == len(levels) {
		return p.parseNot()
	}
	left, err := p.parseBinary(level + 1)
	if err != nil {
		return nil, err
	}
	for p.at(levels[level].kind) {
		p.pos++
		right, err := p.parseBinary(level + 1)
		if err != nil {
			return nil, err
		}
		left = Bin{Op: levels[level].op, Left: left, Right: right}
	}
	return left, nil
}

func (p *parser) parseNot() (Node, error) {
	if !p.at(token.Not) {
		return p.parsePrimary()
	}
	if err := p.enter(); err != nil {
		return nil, err
	}
	p.pos++
	child, err := p.parseNot()
	p.depth--
	if err != nil {
		return nil, err
	}
	return Not{Child: child}, nil
}

func (p *parser) parsePrimary() (Node, error) {
	if p.pos >= len(p.tokens) {
		return nil, p.errorAt(UnexpectedEnd)
	}
	t := p.tokens[p.pos]
	switch t.Kind {
	case token.Variable:
		p.pos++
		return Var{Letter: t.Letter}, nil
	case token.LParen:
		if err := p.enter(); err != nil {
			return nil, err
		}
		p.pos++
		f, err := p.parseBinary(0)
		p.depth--
		if err != nil {
			return nil, err
		}
		if !p.at(token.RParen) {
			return nil, p.errorAt(UnterminatedGroup)
		}
		p.pos++
		return f, nil
	}
	return nil, p.errorAt(UnexpectedToken)
}

func (p *parser) enter() error {
	if p.depth >= MaxDepth {
		return p.errorAt(TooDeep)
	}
	p.depth++
	return nil
}
