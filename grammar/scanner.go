package grammar

import (
	"github.com/npillmayer/gorgo/lr/scanner"
	"github.com/npillmayer/propnl/token"
)

// Scanner implements the scanner.Tokenizer interface for a sequence of
// formula tokens.
type Scanner struct {
	tokens []token.Token
	pos    int
}

// NewScanner creates a scanner reading from a token sequence.
func NewScanner(tokens []token.Token) *Scanner {
	return &Scanner{tokens: tokens}
}

// NextToken returns the next token, with its grammar terminal value as the
// first return value and the token itself as the second.
// Positions are token indices, every token has length 1.
func (sc *Scanner) NextToken(expected []int) (int, interface{}, uint64, uint64) {
	if sc.pos >= len(sc.tokens) {
		return scanner.EOF, "", uint64(sc.pos), 0
	}
	t := sc.tokens[sc.pos]
	sc.pos++
	T().Debugf("scanned token %s", t)
	return tokval(t.Kind), t, uint64(sc.pos - 1), 1
}

// SetErrorHandler sets an error handler function, which receives an error
// and may try some error repair strategy.
//
// Token sequences are never invalid on a lexical level, so this does nothing.
func (sc *Scanner) SetErrorHandler(h func(error)) {
}

// Terminal values are shifted to stay clear of values reserved by the
// scanner package (EOF and friends).
const tokvalOffset = 1000

func tokval(k token.Kind) int {
	return tokvalOffset + int(k)
}

func term(k token.Kind) (string, int) {
	return ":" + k.String(), tokval(k)
}
