package analytics

import (
	"strings"

	"github.com/dtnitsch/mr-verify/models"
)

type Analytics struct{}

// commonWords are skipped by `top --skip-common`. Words never contain
// apostrophes here, so contractions split into their letter runs.
var commonWords = map[string]struct{}{
	"a": {}, "about": {}, "after": {}, "all": {}, "also": {}, "am": {}, "an": {},
	"and": {}, "any": {}, "are": {}, "as": {}, "at": {},

	"be": {}, "been": {}, "before": {}, "but": {}, "by": {},

	"can": {}, "could": {}, "did": {}, "do": {}, "does": {}, "down": {},

	"for": {}, "from": {}, "had": {}, "has": {}, "have": {}, "he": {}, "her": {},
	"him": {}, "his": {}, "how": {},

	"i": {}, "if": {}, "in": {}, "into": {}, "is": {}, "it": {}, "its": {},

	"me": {}, "more": {}, "my": {}, "no": {}, "not": {}, "now": {},

	"of": {}, "on": {}, "one": {}, "or": {}, "our": {}, "out": {},

	"s": {}, "said": {}, "she": {}, "so": {}, "some": {},

	"t": {}, "than": {}, "that": {}, "the": {}, "their": {}, "them": {},
	"then": {}, "there": {}, "these": {}, "they": {}, "this": {}, "to": {},

	"up": {}, "upon": {}, "us": {},

	"very": {}, "was": {}, "we": {}, "were": {}, "what": {}, "when": {},
	"which": {}, "who": {}, "will": {}, "with": {}, "would": {},

	"you": {}, "your": {},
}

// IsStopword checks if a word is a common stopword. The check ignores case.
func IsStopword(word string) bool {
	_, exists := commonWords[strings.ToLower(word)]
	return exists
}

func isLetter(r rune) bool {
	return ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z')
}

// Tokenize splits text into maximal runs of ASCII letters. Every other
// character, including digits, punctuation and non-ASCII letters, separates
// words. Case is preserved.
func Tokenize(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return !isLetter(r)
	})
}

// WordFrequency counts every word of text. Keys keep first-occurrence order.
func (a *Analytics) WordFrequency(text string) *models.Counts {
	frequencies := models.NewCounts()
	for _, word := range Tokenize(text) {
		frequencies.Add(word, 1)
	}
	return frequencies
}
