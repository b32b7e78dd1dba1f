package manifest

import (
	"fmt"
	"time"

	"github.com/dtnitsch/mr-verify/pkg/mapreduce"
	"github.com/dtnitsch/mr-verify/pkg/storage"
	"github.com/dtnitsch/mr-verify/pkg/verify"
	"gopkg.in/yaml.v3"
)

// topWords is how many ground-truth words a report lists.
const topWords = 25

// Inputs names what a run was pointed at.
type Inputs struct {
	Sources      string
	Results      string
	SourceFormat string
	Strict       bool
	Fingerprint  string
}

// Build turns a verification result into a report. languages maps source
// names to detected language codes and may be nil.
func Build(in Inputs, res *verify.Result, languages map[string]string) *RunReport {
	report := &RunReport{
		GeneratedAt:  time.Now().Format(time.RFC3339),
		Sources:      in.Sources,
		Results:      in.Results,
		SourceFormat: in.SourceFormat,
		Strict:       in.Strict,
		Fingerprint:  in.Fingerprint,
		Verdict:      "success",
		Message:      res.Outcome.String(),
		Stats: Stats{
			SourceFiles:   len(res.Sources),
			ResultFiles:   res.ResultFiles,
			DistinctWords: res.Truth.Len(),
			TotalWords:    res.Truth.Total(),
			ClaimedWords:  res.Claimed.Len(),
		},
		TopWords: mapreduce.TopKeywords(res.Truth, topWords, false),
	}

	if m := res.Outcome.Mismatch; m != nil {
		report.Verdict = "mismatch"
		report.Mismatch = &MismatchReport{Word: m.Word, Expected: m.Expected, Actual: m.Actual}
	}

	for _, src := range res.Sources {
		report.SourceFiles = append(report.SourceFiles, SourceReport{
			Name:      src.Name,
			SizeBytes: src.SizeBytes,
			Words:     src.Words,
			Language:  languages[src.Name],
		})
	}

	return report
}

// Save writes the report as YAML to path.
func Save(report *RunReport, path string, s *storage.Storage) error {
	data, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("error marshalling report: %w", err)
	}

	if err := s.SaveFile(path, data); err != nil {
		return fmt.Errorf("error saving report: %w", err)
	}

	return nil
}
