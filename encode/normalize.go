package encode

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// punctuation is removed from sentences wherever it occurs.
var punctuation = strings.NewReplacer(".", "", ",", "", "!", "", "?", "")

// Normalize prepares a sentence for encoding: it is put into Unicode NFC,
// lowercased, stripped of the characters . , ! and ? and trimmed of leading
// and trailing white space.
func Normalize(text string) string {
	text = norm.NFC.String(text)
	text = cases.Lower(language.Und).String(text)
	text = punctuation.Replace(text)
	return strings.TrimSpace(text)
}
