package lexicon

import (
	"fmt"

	jj "github.com/cloudfoundry/jibber_jabber"
	"golang.org/x/text/language"
)

// Lexicon is a set of connective keywords for one language.
// Keywords are lowercase and carry no surrounding spaces.
type Lexicon struct {
	Tag         language.Tag // language of the keywords
	If          string       // opens a conditional: "if"
	Then        string       // separates antecedent and consequent: "then"
	And         string       // conjunction: "and"
	Or          string       // disjunction: "or"
	Not         string       // negation prefix: "not"
	Iff         string       // biconditional: "if and only if"
	Proposition string       // label for propositions without description
}

// English is the default lexicon.
var English = &Lexicon{
	Tag:         language.English,
	If:          "if",
	Then:        "then",
	And:         "and",
	Or:          "or",
	Not:         "not",
	Iff:         "if and only if",
	Proposition: "proposition",
}

// Portuguese is a lexicon for Portuguese sentences.
var Portuguese = &Lexicon{
	Tag:         language.Portuguese,
	If:          "se",
	Then:        "então",
	And:         "e",
	Or:          "ou",
	Not:         "não",
	Iff:         "se e somente se",
	Proposition: "proposição",
}

// Default is the lexicon used if no other one is configured.
var Default = English

var builtin = []*Lexicon{English, Portuguese}

// The first language is used as fallback.
var matcher = language.NewMatcher([]language.Tag{
	language.English,
	language.Portuguese,
})

func (lex *Lexicon) String() string {
	return fmt.Sprintf("lexicon(%s)", lex.Tag)
}

// Label returns the fallback description for a proposition letter, as used
// when no description has been supplied, e.g. "proposition P".
func (lex *Lexicon) Label(letter rune) string {
	return lex.Proposition + " " + string(letter)
}

// Select returns the built-in lexicon best matching a language tag. If no
// lexicon matches with at least low confidence, English is returned.
func Select(tag language.Tag) *Lexicon {
	_, index, confidence := matcher.Match(tag)
	if confidence == language.No {
		T().Debugf("no lexicon for %v, using %v", tag, Default)
		return Default
	}
	return builtin[index]
}

// Parse selects a lexicon for a BCP 47 language name like "en" or "pt-BR".
func Parse(name string) (*Lexicon, error) {
	tag, err := language.Parse(name)
	if err != nil {
		return nil, fmt.Errorf("propnl/lexicon: %w", err)
	}
	return Select(tag), nil
}

// FromEnvironment selects a lexicon for the user's locale. If the locale
// cannot be detected, the default lexicon is returned.
func FromEnvironment() *Lexicon {
	userLocale, err := jj.DetectIETF()
	if err != nil {
		T().Errorf(err.Error())
		userLocale = "en-US"
		T().Infof("lexicon sets default user locale %v", userLocale)
	} else {
		T().Infof("lexicon detected user locale %v", userLocale)
	}
	return Select(language.Make(userLocale))
}
