package grammar

import (
	"sync"

	"github.com/npillmayer/gorgo/lr"
	"github.com/npillmayer/gorgo/lr/earley"
	"github.com/npillmayer/propnl/token"
)

// --- Initialization --------------------------------------------------------

var globalFormulaGrammar *lr.LRAnalysis

var initGrammar sync.Once

func getParser() *earley.Parser {
	initGrammar.Do(func() {
		globalFormulaGrammar = NewFormulaGrammar()
	})
	parser := earley.NewParser(globalFormulaGrammar)
	if parser == nil {
		panic("could not create formula grammar parser")
	}
	return parser
}

// NewFormulaGrammar creates the grammar for propositional formulas. It is
// usually not called by clients directly, but rather used transparently with
// a call to Accepts.
func NewFormulaGrammar() *lr.LRAnalysis {
	b := lr.NewGrammarBuilder("Propositional Formula")
	b.LHS("Iff").N("Iff").T(term(token.Iff)).N("Implies").End()
	b.LHS("Iff").N("Implies").End()
	b.LHS("Implies").N("Implies").T(term(token.Implies)).N("Or").End()
	b.LHS("Implies").N("Or").End()
	b.LHS("Or").N("Or").T(term(token.Or)).N("And").End()
	b.LHS("Or").N("And").End()
	b.LHS("And").N("And").T(term(token.And)).N("Not").End()
	b.LHS("And").N("Not").End()
	b.LHS("Not").T(term(token.Not)).N("Not").End()
	b.LHS("Not").N("Primary").End()
	b.LHS("Primary").T(term(token.Variable)).End()
	b.LHS("Primary").T(term(token.LParen)).N("Iff").T(term(token.RParen)).End()
	g, err := b.Grammar()
	if err != nil {
		panic(err)
	}
	return lr.Analysis(g)
}

// Accepts reports whether a token sequence is a well-formed formula.
// An empty sequence is not.
func Accepts(tokens []token.Token) (bool, error) {
	parser := getParser()
	accept, err := parser.Parse(NewScanner(tokens), nil)
	T().Debugf("grammar accepts %q: %v", token.Format(tokens), accept)
	return accept, err
}

// AcceptsString tokenizes a formula and checks it with Accepts. Tokenizer
// errors are returned as *token.SyntaxError.
func AcceptsString(formula string) (bool, error) {
	tokens, err := token.Tokenize(formula)
	if err != nil {
		return false, err
	}
	return Accepts(tokens)
}
