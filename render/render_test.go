package render

import (
	"fmt"
	"testing"

	"github.com/npillmayer/propnl/formula"
	"github.com/npillmayer/propnl/lexicon"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

var weather = MapLookup{
	'P': "it rains",
	'Q': "the ground is wet",
	'R': "the sun shines",
}

func TestRender(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	inputs := map[string]string{
		"P":          "it rains",
		"¬P":         "not it rains",
		"¬¬P":        "not not it rains",
		"P ∧ R":      "it rains and the sun shines",
		"P ∨ R":      "it rains or the sun shines",
		"P → Q":      "if it rains, then the ground is wet",
		"P ↔ Q":      "it rains if and only if the ground is wet",
		"P ∧ ¬R → Q": "if it rains and not the sun shines, then the ground is wet",
		"Z":          "proposition Z",
		"P ∨ X":      "it rains or proposition X",
	}
	for text, expected := range inputs {
		f, err := formula.ParseString(text)
		if err != nil {
			t.Fatal(err)
		}
		if got := Render(f, weather, lexicon.English); got != expected {
			t.Errorf("for %q expected %q, got %q", text, expected, got)
		}
	}
}

func TestRenderFallbacks(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	f, err := formula.ParseString("A ∧ B")
	if err != nil {
		t.Fatal(err)
	}
	if got := Render(f, nil, nil); got != "proposition A and proposition B" {
		t.Errorf("unexpected rendering without lookup: %q", got)
	}
	empty := MapLookup{'A': "", 'B': "it snows"}
	if got := Render(f, empty, nil); got != "proposition A and it snows" {
		t.Errorf("empty description should fall back to label, got %q", got)
	}
}

// Grouping is not visible in rendered text.
func TestRenderIsLossy(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	f1, _ := formula.ParseString("A ∧ (B ∨ C)")
	f2, _ := formula.ParseString("(A ∧ B) ∨ C")
	lookup := MapLookup{'A': "a", 'B': "b", 'C': "c"}
	r1, r2 := Render(f1, lookup, nil), Render(f2, lookup, nil)
	if r1 != r2 || r1 != "a and b or c" {
		t.Errorf("expected both to render as 'a and b or c', got %q and %q", r1, r2)
	}
}

func TestRenderPortuguese(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	f, err := formula.ParseString("~P -> (Q <-> R)")
	if err != nil {
		t.Fatal(err)
	}
	lookup := MapLookup{'P': "chove", 'Q': "o chão está seco"}
	expected := "se não chove, então o chão está seco se e somente se proposição R"
	if got := Render(f, lookup, lexicon.Portuguese); got != expected {
		t.Errorf("expected %q, got %q", expected, got)
	}
}

func ExampleSentence() {
	f, err := formula.ParseString("P -> Q")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(Sentence(f, weather, lexicon.English))
	// Output: If it rains, then the ground is wet.
}
