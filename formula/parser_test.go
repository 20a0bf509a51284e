package formula

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/npillmayer/propnl/token"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
)

func v(l rune) Node { return Var{Letter: l} }

func TestParseShapes(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	inputs := []struct {
		text     string
		expected Node
	}{
		{"P", v('P')},
		{"(P)", v('P')},
		{"((P))", v('P')},
		{"¬¬A", Not{Not{v('A')}}},
		{"~~~A", Not{Not{Not{v('A')}}}},
		{"A ∨ B ∧ C", Bin{Or, v('A'), Bin{And, v('B'), v('C')}}},
		{"A ∧ B ∨ C", Bin{Or, Bin{And, v('A'), v('B')}, v('C')}},
		{"A ∧ B ∧ C", Bin{And, Bin{And, v('A'), v('B')}, v('C')}},
		{"A -> B -> C", Bin{Implies, Bin{Implies, v('A'), v('B')}, v('C')}},
		{"A <-> B -> C", Bin{Iff, v('A'), Bin{Implies, v('B'), v('C')}}},
		{"A -> B v C", Bin{Implies, v('A'), Bin{Or, v('B'), v('C')}}},
		{"¬A ∧ B", Bin{And, Not{v('A')}, v('B')}},
		{"¬(A ∧ B)", Not{Bin{And, v('A'), v('B')}}},
		{"A ∧ (B ∨ C)", Bin{And, v('A'), Bin{Or, v('B'), v('C')}}},
		{"P → Q", Bin{Implies, v('P'), v('Q')}},
		{"(P ∧ Q) ↔ ¬R", Bin{Iff, Bin{And, v('P'), v('Q')}, Not{v('R')}}},
	}
	for _, input := range inputs {
		f, err := ParseString(input.text)
		if err != nil {
			t.Errorf("could not parse %q: %v", input.text, err)
			continue
		}
		if !Equal(f, input.expected) {
			t.Errorf("for %q expected %s, got %s", input.text, input.expected, f)
		}
	}
}

func TestParseErrors(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	inputs := []struct {
		text string
		kind ErrorKind
		pos  int
	}{
		{"", UnexpectedEnd, 0},
		{"(A ∧ B", UnterminatedGroup, 4},
		{"(A B)", UnterminatedGroup, 2},
		{"A ∧", UnexpectedEnd, 2},
		{"¬", UnexpectedEnd, 1},
		{"∧ A", UnexpectedToken, 0},
		{"A ∨ )", UnexpectedToken, 2},
		{"()", UnexpectedToken, 1},
		{"A B", TrailingTokens, 1},
		{"(A) )", TrailingTokens, 3},
		{"A ∧ B C ∨ D", TrailingTokens, 3},
	}
	for _, input := range inputs {
		f, err := ParseString(input.text)
		if f != nil {
			t.Errorf("expected no formula for %q, got %s", input.text, f)
		}
		var perr *ParseError
		if !errors.As(err, &perr) {
			t.Errorf("expected parse error for %q, got %v", input.text, err)
			continue
		}
		if perr.Kind != input.kind || perr.Pos != input.pos {
			t.Errorf("for %q expected %s at %d, got %s at %d", input.text,
				input.kind, input.pos, perr.Kind, perr.Pos)
		}
	}
}

func TestParseSyntaxErrorPassesThrough(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	_, err := ParseString("A # B")
	var serr *token.SyntaxError
	if !errors.As(err, &serr) {
		t.Fatalf("expected syntax error, got %v", err)
	}
	if serr.Char != '#' {
		t.Errorf("expected syntax error to cite '#', cites %q", serr.Char)
	}
}

func TestParseTooDeep(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	for _, text := range []string{
		strings.Repeat("(", 100000) + "P" + strings.Repeat(")", 100000),
		strings.Repeat("¬", 100000) + "P",
		strings.Repeat("(P ∧ ", 10000) + "P" + strings.Repeat(")", 10000),
	} {
		_, err := ParseString(text)
		var perr *ParseError
		if !errors.As(err, &perr) || perr.Kind != TooDeep {
			t.Errorf("expected error of kind %s, got %v", TooDeep, err)
		}
	}
	text := strings.Repeat("(", MaxDepth) + "P" + strings.Repeat(")", MaxDepth)
	if _, err := ParseString(text); err != nil {
		t.Errorf("nesting of %d levels should be accepted, got %v", MaxDepth, err)
	}
}

func TestParseLongChain(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	text := "P" + strings.Repeat(" ∧ P", 5000)
	f, err := ParseString(text)
	if err != nil {
		t.Fatal(err)
	}
	if d := Depth(f); d != 5001 {
		t.Errorf("expected left-folded chain of depth 5001, got %d", d)
	}
}

func TestStringReparses(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	for _, text := range []string{
		"A ∨ B ∧ C", "¬(A -> B) <-> ~C", "A ∧ B ∧ C ∧ D", "((P))", "¬¬P v Q",
	} {
		f, err := ParseString(text)
		if err != nil {
			t.Fatal(err)
		}
		g, err := ParseString(f.String())
		if err != nil {
			t.Fatalf("cannot re-parse %q: %v", f.String(), err)
		}
		if !Equal(f, g) {
			t.Errorf("re-parse of %q yields %s", f.String(), g)
		}
	}
}

func ExampleParseString() {
	f, err := ParseString("A ∨ B ∧ ~C -> D")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(f)
	_, err = ParseString("(A ∧ B")
	fmt.Println(err)
	// Output:
	// ((A ∨ (B ∧ ¬C)) → D)
	// propnl/formula: unterminated group, missing ')' at end of input
}
