package db

import (
	"fmt"
	"strings"

	dbpkg "github.com/dtnitsch/mr-verify/pkg/db"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

// RunsAction lists recorded verification runs
func RunsAction(c *cli.Context) error {
	database, err := dbpkg.Open(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	runs, err := database.ListRuns(c.Int("limit"), c.Bool("failed"))
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}

	w := c.App.Writer
	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs found")
		return nil
	}

	fmt.Fprintf(w, "%-6s %-20s %-8s %-8s %-10s %-9s %-30s\n",
		"ID", "Created", "Sources", "Results", "Words", "Verdict", "Mismatch")
	fmt.Fprintln(w, strings.Repeat("-", 100))

	for _, r := range runs {
		mismatch := ""
		if r.MismatchWord.Valid {
			actual := "None"
			if r.ActualCount.Valid {
				actual = fmt.Sprintf("%d", r.ActualCount.Int64)
			}
			mismatch = fmt.Sprintf("%s %d != %s", r.MismatchWord.String, r.ExpectedCount.Int64, actual)
		}
		fmt.Fprintf(w, "%-6d %-20s %-8d %-8d %-10d %-9s %-30s\n",
			r.RunID,
			r.CreatedAt.Format("2006-01-02 15:04:05"),
			r.SourceFiles,
			r.ResultFiles,
			r.DistinctWords,
			r.Verdict,
			mismatch,
		)
	}

	fmt.Fprintf(w, "\nTotal: %d runs\n", len(runs))
	fmt.Fprintf(w, "\nTip: Use 'mr-verify run <id>' to see details\n")

	return nil
}

type runDetails struct {
	RunID        int64          `yaml:"run_id"`
	Created      string         `yaml:"created"`
	Sources      string         `yaml:"sources"`
	Results      string         `yaml:"results"`
	SourceFormat string         `yaml:"source_format"`
	Strict       bool           `yaml:"strict"`
	Verdict      string         `yaml:"verdict"`
	Mismatch     *runMismatch   `yaml:"mismatch,omitempty"`
	Stats        runStats       `yaml:"stats"`
	Fingerprint  string         `yaml:"fingerprint,omitempty"`
	SourceFiles  []runSourceRow `yaml:"source_files,omitempty"`
}

type runMismatch struct {
	Word     string `yaml:"word"`
	Expected int64  `yaml:"expected"`
	Actual   *int64 `yaml:"actual"`
}

type runStats struct {
	SourceFiles   int `yaml:"source_files"`
	ResultFiles   int `yaml:"result_files"`
	DistinctWords int `yaml:"distinct_words"`
	TotalWords    int `yaml:"total_words"`
	ClaimedWords  int `yaml:"claimed_words"`
}

type runSourceRow struct {
	Name      string `yaml:"name"`
	SizeBytes int64  `yaml:"size_bytes"`
	Words     int    `yaml:"words"`
	Language  string `yaml:"language,omitempty"`
}

// RunAction shows details for a specific run as YAML
func RunAction(c *cli.Context) error {
	database, err := dbpkg.Open(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	runID, err := GetRunIDOrLatest(c, database)
	if err != nil {
		return err
	}

	run, err := database.GetRunByID(runID)
	if err != nil {
		return fmt.Errorf("failed to get run: %w", err)
	}

	sources, err := database.GetRunSources(runID)
	if err != nil {
		return fmt.Errorf("failed to get run sources: %w", err)
	}

	details := runDetails{
		RunID:        run.RunID,
		Created:      run.CreatedAt.Format("2006-01-02 15:04:05"),
		Sources:      run.SourcesPattern,
		Results:      run.ResultsPattern,
		SourceFormat: run.SourceFormat,
		Strict:       run.Strict,
		Verdict:      run.Verdict,
		Fingerprint:  run.Fingerprint,
		Stats: runStats{
			SourceFiles:   run.SourceFiles,
			ResultFiles:   run.ResultFiles,
			DistinctWords: run.DistinctWords,
			TotalWords:    run.TotalWords,
			ClaimedWords:  run.ClaimedWords,
		},
	}
	if run.MismatchWord.Valid {
		details.Mismatch = &runMismatch{Word: run.MismatchWord.String, Expected: run.ExpectedCount.Int64}
		if run.ActualCount.Valid {
			actual := run.ActualCount.Int64
			details.Mismatch.Actual = &actual
		}
	}
	for _, s := range sources {
		details.SourceFiles = append(details.SourceFiles, runSourceRow{
			Name:      s.Name,
			SizeBytes: s.SizeBytes,
			Words:     s.WordCount,
			Language:  s.Language,
		})
	}

	yamlBytes, err := yaml.Marshal(details)
	if err != nil {
		return fmt.Errorf("failed to marshal run: %w", err)
	}

	fmt.Fprintf(c.App.Writer, "# Run: %d\n", runID)
	fmt.Fprint(c.App.Writer, string(yamlBytes))
	return nil
}
