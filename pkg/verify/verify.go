// Package verify recomputes word counts from source documents and checks
// them against reduced results.
package verify

import (
	"fmt"
	"unicode/utf8"

	"github.com/dtnitsch/mr-verify/models"
	"github.com/dtnitsch/mr-verify/pkg/analytics"
	"github.com/dtnitsch/mr-verify/pkg/mapreduce"
	"github.com/dtnitsch/mr-verify/pkg/parser"
	"github.com/dtnitsch/mr-verify/pkg/results"
	"github.com/dtnitsch/mr-verify/pkg/storage"
)

// SourceSummary describes one source document after tokenizing.
type SourceSummary struct {
	Name      string
	SizeBytes int
	Words     int
	Text      string
}

// Result is everything a run produced. The mappings are only needed by the
// report and are dropped once it is written.
type Result struct {
	Outcome     models.Outcome
	Sources     []SourceSummary
	ResultFiles int
	Truth       *models.Counts
	Claimed     *models.Counts
}

// Verifier recomputes the ground truth from Sources and checks it against
// the reduced records in Results.
type Verifier struct {
	Sources storage.Source
	Results storage.Source
	Parser  *parser.Parser
	Options Options
}

// GroundTruth reads and tokenizes every source document, in discovery order.
func (v *Verifier) GroundTruth() (*models.Counts, []SourceSummary, error) {
	docs, err := v.Sources.Documents()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read source documents: %w", err)
	}

	p := v.Parser
	if p == nil {
		p = &parser.Parser{}
	}
	a := &analytics.Analytics{}

	partials := make([]*models.Counts, 0, len(docs))
	summaries := make([]SourceSummary, 0, len(docs))
	for _, doc := range docs {
		if !utf8.Valid(doc.Content) {
			return nil, nil, fmt.Errorf("%s: %w", doc.Name, storage.ErrNotText)
		}

		text, err := p.Decode(doc)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to decode %s: %w", doc.Name, err)
		}

		counts := mapreduce.Map(text, a)
		partials = append(partials, counts)
		summaries = append(summaries, SourceSummary{
			Name:      doc.Name,
			SizeBytes: len(doc.Content),
			Words:     counts.Total(),
			Text:      text,
		})
	}

	return mapreduce.Reduce(partials), summaries, nil
}

// Run builds both mappings and compares them. The returned error is only
// set for fatal problems (unreadable input, malformed records); a mismatch
// is reported through Result.Outcome.
func (v *Verifier) Run() (*Result, error) {
	truth, summaries, err := v.GroundTruth()
	if err != nil {
		return nil, err
	}

	claimed, resultFiles, err := results.LoadFrom(v.Results)
	if err != nil {
		return nil, err
	}

	return &Result{
		Outcome:     Compare(truth, claimed, v.Options),
		Sources:     summaries,
		ResultFiles: resultFiles,
		Truth:       truth,
		Claimed:     claimed,
	}, nil
}
