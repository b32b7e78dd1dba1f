package mapreduce

import (
	"fmt"
	"io"
	"sort"

	"github.com/dtnitsch/mr-verify/models"
	"github.com/dtnitsch/mr-verify/pkg/analytics"
)

type kv struct {
	Key   string
	Value int
}

// ranked sorts words by count, descending. Ties keep first-occurrence order.
func ranked(counts *models.Counts, skipCommon bool) []kv {
	ss := make([]kv, 0, counts.Len())
	for _, k := range counts.Keys() {
		if skipCommon && analytics.IsStopword(k) {
			continue
		}
		v, _ := counts.Get(k)
		ss = append(ss, kv{k, v})
	}

	sort.SliceStable(ss, func(i, j int) bool {
		return ss[i].Value > ss[j].Value
	})
	return ss
}

// TopKeywords returns the top N words as "word:count" strings
// (e.g., "whale:1153").
func TopKeywords(counts *models.Counts, n int, skipCommon bool) []string {
	ss := ranked(counts, skipCommon)

	limit := n
	if len(ss) < n {
		limit = len(ss)
	}
	if limit < 0 {
		limit = 0
	}

	keywords := make([]string, limit)
	for i := 0; i < limit; i++ {
		keywords[i] = fmt.Sprintf("%s:%d", ss[i].Key, ss[i].Value)
	}

	return keywords
}

// PrintTopKeywords writes the top N words to w in a numbered list format.
func PrintTopKeywords(w io.Writer, counts *models.Counts, n int, skipCommon bool) {
	for i, kv := range ranked(counts, skipCommon) {
		if i >= n {
			break
		}
		fmt.Fprintf(w, "%d. %s: %d\n", i+1, kv.Key, kv.Value)
	}
}
