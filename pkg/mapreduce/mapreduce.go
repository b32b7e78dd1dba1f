package mapreduce

import (
	"github.com/dtnitsch/mr-verify/models"
	"github.com/dtnitsch/mr-verify/pkg/analytics"
)

// Map generates a word frequency map for a single document's content.
func Map(content string, a *analytics.Analytics) *models.Counts {
	return a.WordFrequency(content)
}

// Reduce sums a slice of per-document frequency maps into the ground truth.
// Words keep the order in which they were first seen across the slice.
func Reduce(intermediate []*models.Counts) *models.Counts {
	finalResults := models.NewCounts()

	for _, counts := range intermediate {
		for _, word := range counts.Keys() {
			n, _ := counts.Get(word)
			finalResults.Add(word, n)
		}
	}

	return finalResults
}

// Merge overlays claimed counts in order. A word present in more than one
// input takes the value from the last one; values are never summed.
func Merge(claimed []*models.Counts) *models.Counts {
	merged := models.NewCounts()

	for _, counts := range claimed {
		for _, word := range counts.Keys() {
			n, _ := counts.Get(word)
			merged.Set(word, n)
		}
	}

	return merged
}
