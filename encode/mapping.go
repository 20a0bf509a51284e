package encode

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/npillmayer/propnl/token"
)

// Letters assigned to phrases, in order of assignment.
const letters = "PQRSTUVWXYZABCDEFGHIJKLMNO"

// Mapping associates phrases with proposition letters. Iteration is in order
// of assignment. A Mapping is a render.Lookup for the inverse direction.
//
// Mappings returned by the encoder are not changed afterwards.
type Mapping struct {
	symbols *linkedhashmap.Map // phrase → letter
	phrases map[rune]string    // letter → phrase
}

// NewMapping creates an empty mapping.
func NewMapping() *Mapping {
	return &Mapping{
		symbols: linkedhashmap.New(),
		phrases: make(map[rune]string),
	}
}

// Add assigns letter to phrase. It is used by clients to prepare a mapping
// before encoding; letter must be in A–Z and neither letter nor phrase may be
// assigned already.
func (m *Mapping) Add(phrase string, letter rune) error {
	if !token.IsLetter(letter) {
		return fmt.Errorf("propnl/encode: %q is not a proposition letter", letter)
	}
	if p, ok := m.phrases[letter]; ok {
		return fmt.Errorf("propnl/encode: letter %c already stands for %q", letter, p)
	}
	if l, ok := m.Symbol(phrase); ok {
		return fmt.Errorf("propnl/encode: phrase %q already has letter %c", phrase, l)
	}
	m.put(phrase, letter)
	return nil
}

// Len returns the number of phrases in the mapping.
func (m *Mapping) Len() int {
	return m.symbols.Size()
}

// Symbol returns the letter assigned to phrase.
func (m *Mapping) Symbol(phrase string) (rune, bool) {
	l, ok := m.symbols.Get(phrase)
	if !ok {
		return 0, false
	}
	return l.(rune), true
}

// Phrase returns the phrase a letter stands for. Phrase makes a Mapping
// usable as a render.Lookup.
func (m *Mapping) Phrase(letter rune) (string, bool) {
	p, ok := m.phrases[letter]
	return p, ok
}

// Phrases returns all phrases in order of assignment.
func (m *Mapping) Phrases() []string {
	phrases := make([]string, 0, m.Len())
	for _, k := range m.symbols.Keys() {
		phrases = append(phrases, k.(string))
	}
	return phrases
}

// Each calls f for every phrase and its letter, in order of assignment.
func (m *Mapping) Each(f func(phrase string, letter rune)) {
	m.symbols.Each(func(k, v interface{}) {
		f(k.(string), v.(rune))
	})
}

// Clone returns an independent copy of m.
func (m *Mapping) Clone() *Mapping {
	c := NewMapping()
	m.Each(func(phrase string, letter rune) {
		c.put(phrase, letter)
	})
	return c
}

// String returns the mapping as a legend, one line "P = phrase" per entry.
func (m *Mapping) String() string {
	var b strings.Builder
	m.Each(func(phrase string, letter rune) {
		b.WriteRune(letter)
		b.WriteString(" = ")
		b.WriteString(phrase)
		b.WriteByte('\n')
	})
	return b.String()
}

func (m *Mapping) put(phrase string, letter rune) {
	m.symbols.Put(phrase, letter)
	m.phrases[letter] = phrase
}

// symbolFor returns the letter for phrase, assigning the next free letter
// on first occurrence.
func (m *Mapping) symbolFor(phrase string) (rune, error) {
	if l, ok := m.Symbol(phrase); ok {
		return l, nil
	}
	for _, l := range letters {
		if _, used := m.phrases[l]; !used {
			m.put(phrase, l)
			T().Debugf("assigned %c to %q", l, phrase)
			return l, nil
		}
	}
	return 0, &EncodeError{Kind: SymbolsExhausted, Text: phrase}
}
