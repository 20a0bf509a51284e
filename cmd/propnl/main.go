/*
Command propnl translates between sentences and propositional formulas.

Usage

   propnl [-lang en|pt|auto] [-v] encode <sentence>
   propnl [-lang en|pt|auto] [-v] render <formula> [L=description ...]
   propnl [-v] check <formula>

"encode" prints the formula for a sentence, followed by the legend of
proposition letters. "render" prints a formula as a sentence; descriptions of
proposition letters are given as further arguments, e.g. P="it rains".
Letters without description are listed on stderr. "check" reports whether a
formula is well-formed, as seen by both the parser and the grammar
recognizer.

The default language is English; "auto" selects the language from the
user's locale.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/propnl"
	"github.com/npillmayer/propnl/formula"
	"github.com/npillmayer/propnl/grammar"
	"github.com/npillmayer/propnl/lexicon"
	"github.com/npillmayer/propnl/render"
	"github.com/npillmayer/propnl/token"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

var logger = log.New(os.Stderr, "propnl: ", 0)

// flag: verbose output ?
var verbose bool

func main() {
	flag.BoolVar(&verbose, "v", false, "verbose output")
	lang := flag.String("lang", "en", "language of sentences: en, pt or auto")
	flag.Usage = usage
	flag.Parse()
	gtrace.CoreTracer = gologadapter.New()
	if verbose {
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	} else {
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	}
	if flag.NArg() < 2 {
		usage()
		os.Exit(2)
	}
	lex, err := selectLexicon(*lang)
	if err != nil {
		logger.Fatal(err)
	}
	tr := propnl.NewTranslator(propnl.WithLexicon(lex))
	args := flag.Args()
	switch args[0] {
	case "encode":
		err = encode(tr, strings.Join(args[1:], " "))
	case "render":
		err = renderFormula(tr, args[1], args[2:])
	case "check":
		err = check(args[1])
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		logger.Fatal(err)
	}
}

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(),
		"usage: propnl [-lang en|pt|auto] [-v] encode|render|check <input> ...\n")
	flag.PrintDefaults()
}

func selectLexicon(lang string) (*lexicon.Lexicon, error) {
	if lang == "auto" {
		return lexicon.FromEnvironment(), nil
	}
	return lexicon.Parse(lang)
}

func encode(tr *propnl.Translator, sentence string) error {
	e, err := tr.ToFormula(sentence)
	if err != nil {
		return err
	}
	fmt.Println(e.Formula)
	fmt.Println()
	fmt.Print(e.Mapping)
	return nil
}

func renderFormula(tr *propnl.Translator, f string, descriptions []string) error {
	tree, err := tr.Parse(f)
	if err != nil {
		return err
	}
	lookup, err := parseDescriptions(descriptions)
	if err != nil {
		return err
	}
	for _, l := range formula.CollectVariables(tree) {
		if _, ok := lookup[l]; !ok {
			logger.Printf("no description for %c", l)
		}
	}
	fmt.Println(render.Sentence(tree, lookup, tr.Lexicon()))
	return nil
}

// parseDescriptions reads arguments of the form L=description.
func parseDescriptions(args []string) (render.MapLookup, error) {
	lookup := make(render.MapLookup, len(args))
	for _, arg := range args {
		kv := strings.SplitN(arg, "=", 2)
		l, size := utf8.DecodeRuneInString(kv[0])
		if len(kv) != 2 || size != len(kv[0]) || !token.IsLetter(l) {
			return nil, fmt.Errorf("malformed description %q, expected L=description", arg)
		}
		lookup[l] = strings.TrimSpace(kv[1])
	}
	return lookup, nil
}

func check(f string) error {
	_, perr := formula.ParseString(f)
	accept, gerr := grammar.AcceptsString(f)
	if perr != nil {
		fmt.Printf("parser:  %v\n", perr)
	} else {
		fmt.Println("parser:  well-formed")
	}
	switch {
	case gerr != nil && !accept:
		fmt.Printf("grammar: %v\n", gerr)
	case accept:
		fmt.Println("grammar: well-formed")
	default:
		fmt.Println("grammar: not well-formed")
	}
	if perr != nil {
		os.Exit(1)
	}
	return nil
}
