package matching

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize folds a procedure name for comparison: accents removed,
// lowercased, surrounding whitespace trimmed. Spreadsheet rows and extracted
// exam names go through the same fold so "Dosagem de Glicose" and
// "DOSAGEM DE GLICOSE " compare equal.
func Normalize(s string) string {
	folded, _, err := transform.String(stripAccents, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(strings.TrimSpace(folded))
}

// SignificantWords returns the normalized words of s longer than two runes.
// Short connective words ("de", "e", "do") carry no matching signal in
// Portuguese exam names.
func SignificantWords(s string) []string {
	var words []string
	for _, w := range strings.Fields(Normalize(s)) {
		if len([]rune(w)) > 2 {
			words = append(words, w)
		}
	}
	return words
}
