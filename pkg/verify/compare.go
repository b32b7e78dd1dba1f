package verify

import (
	"github.com/dtnitsch/mr-verify/models"
)

// Options tunes the comparison.
type Options struct {
	// Bidirectional also fails on words that only appear in the claimed
	// results. Those are checked after every ground-truth word has matched.
	Bidirectional bool
}

// Compare checks every ground-truth word, in first-occurrence order, against
// the claimed counts and stops at the first divergence.
func Compare(truth, claimed *models.Counts, opts Options) models.Outcome {
	for _, word := range truth.Keys() {
		expected, _ := truth.Get(word)

		actual, ok := claimed.Get(word)
		if !ok {
			return models.MismatchOutcome(word, expected, nil)
		}
		if actual != expected {
			return models.MismatchOutcome(word, expected, &actual)
		}
	}

	if opts.Bidirectional {
		for _, word := range claimed.Keys() {
			if _, ok := truth.Get(word); ok {
				continue
			}
			actual, _ := claimed.Get(word)
			return models.MismatchOutcome(word, 0, &actual)
		}
	}

	return models.SuccessOutcome()
}
