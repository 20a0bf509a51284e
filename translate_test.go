package propnl

import (
	"errors"
	"fmt"
	"testing"

	"github.com/npillmayer/propnl/encode"
	"github.com/npillmayer/propnl/formula"
	"github.com/npillmayer/propnl/lexicon"
	"github.com/npillmayer/propnl/render"
	"github.com/npillmayer/propnl/token"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestRoundTrip(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	tr := NewTranslator()
	e, err := tr.ToFormula("If it rains then the ground is wet")
	if err != nil {
		t.Fatal(err)
	}
	if e.Formula != "P → Q" {
		t.Errorf("expected formula 'P → Q', got %q", e.Formula)
	}
	if p, _ := e.Mapping.Phrase('P'); p != "it rains" {
		t.Errorf("expected P = it rains, got %q", p)
	}
	if p, _ := e.Mapping.Phrase('Q'); p != "the ground is wet" {
		t.Errorf("expected Q = the ground is wet, got %q", p)
	}
	tree, err := tr.Parse(e.Formula)
	if err != nil {
		t.Fatal(err)
	}
	expected := formula.Bin{Op: formula.Implies, Left: formula.Var{Letter: 'P'}, Right: formula.Var{Letter: 'Q'}}
	if !formula.Equal(tree, expected) {
		t.Errorf("expected %s, got %s", expected, tree)
	}
	s, err := tr.ToSentence(e.Formula, e.Mapping)
	if err != nil {
		t.Fatal(err)
	}
	if s != "if it rains, then the ground is wet" {
		t.Errorf("unexpected rendering %q", s)
	}
}

func TestRoundTripShapes(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	inputs := []struct {
		sentence, expected string
	}{
		{"The sky is blue and the grass is green.", "the sky is blue and the grass is green"},
		{"It rains, or it snows!", "it rains or it snows"},
		{"Not it rains.", "not it rains"},
		{"If it rains and it is cold, then not it is warm", "if it rains and it is cold, then not it is warm"},
	}
	tr := NewTranslator()
	for _, input := range inputs {
		e, err := tr.ToFormula(input.sentence)
		if err != nil {
			t.Fatal(err)
		}
		s, err := tr.ToSentence(e.Formula, e.Mapping)
		if err != nil {
			t.Fatalf("cannot render %q: %v", e.Formula, err)
		}
		if s != input.expected {
			t.Errorf("for %q expected %q, got %q", input.sentence, input.expected, s)
		}
	}
}

func TestTranslatorErrors(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	tr := NewTranslator()
	if _, err := tr.ToFormula(" ?! "); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("expected ErrEmptyInput, got %v", err)
	}
	if _, err := tr.ToSentence("  ", nil); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("expected ErrEmptyInput, got %v", err)
	}
	var serr *token.SyntaxError
	if _, err := tr.ToSentence("A # B", nil); !errors.As(err, &serr) {
		t.Errorf("expected syntax error, got %v", err)
	}
	var perr *formula.ParseError
	if _, err := tr.ToSentence("(A ∧ B", nil); !errors.As(err, &perr) || perr.Kind != formula.UnterminatedGroup {
		t.Errorf("expected unterminated group, got %v", err)
	}
	var eerr *encode.EncodeError
	if _, err := tr.ToFormula("If then it rains."); !errors.As(err, &eerr) || eerr.Kind != encode.MalformedConditional {
		t.Errorf("expected malformed conditional, got %v", err)
	}
}

func TestVariables(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	vars, err := NewTranslator().Variables("(S ∨ P) -> ~S")
	if err != nil {
		t.Fatal(err)
	}
	if string(vars) != "PS" {
		t.Errorf("expected variables PS, got %q", string(vars))
	}
}

func TestPortugueseTranslator(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	tr := NewTranslator(WithLexicon(lexicon.Portuguese))
	e, err := tr.ToFormula("Se chove, então o chão fica molhado.")
	if err != nil {
		t.Fatal(err)
	}
	s, err := tr.ToSentence(e.Formula, e.Mapping)
	if err != nil {
		t.Fatal(err)
	}
	if s != "se chove, então o chão fica molhado" {
		t.Errorf("unexpected rendering %q", s)
	}
}

func ExampleTranslator_ToSentence() {
	tr := NewTranslator()
	vars, _ := tr.Variables("P -> Q v ~R")
	fmt.Println(string(vars))
	lookup := render.MapLookup{'P': "the alarm rings", 'Q': "we leave"}
	s, err := tr.ToSentence("P -> Q v ~R", lookup)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(s)
	// Output:
	// PQR
	// if the alarm rings, then we leave or not proposition R
}
