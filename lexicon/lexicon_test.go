package lexicon

import (
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"golang.org/x/text/language"
)

func TestSelect(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	inputs := map[string]*Lexicon{
		"en":    English,
		"en-GB": English,
		"pt":    Portuguese,
		"pt-BR": Portuguese,
		"pt-PT": Portuguese,
		"ja":    English,
	}
	for name, expected := range inputs {
		if lex := Select(language.MustParse(name)); lex != expected {
			t.Errorf("for %s expected %v, got %v", name, expected, lex)
		}
	}
}

func TestParse(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	lex, err := Parse("pt-BR")
	if err != nil {
		t.Fatal(err)
	}
	if lex != Portuguese {
		t.Errorf("expected Portuguese lexicon, got %v", lex)
	}
	if _, err = Parse("no such language!"); err == nil {
		t.Error("expected error for malformed language name")
	}
}

func TestFromEnvironment(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	lex := FromEnvironment()
	if lex != English && lex != Portuguese {
		t.Errorf("expected a built-in lexicon, got %v", lex)
	}
}

func TestLabel(t *testing.T) {
	if l := English.Label('P'); l != "proposition P" {
		t.Errorf("unexpected label %q", l)
	}
	if l := Portuguese.Label('Q'); l != "proposição Q" {
		t.Errorf("unexpected label %q", l)
	}
}
