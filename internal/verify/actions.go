package verify

import (
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/dtnitsch/mr-verify/internal/common"
	"github.com/dtnitsch/mr-verify/models"
	dbpkg "github.com/dtnitsch/mr-verify/pkg/db"
	"github.com/dtnitsch/mr-verify/pkg/detector"
	"github.com/dtnitsch/mr-verify/pkg/manifest"
	"github.com/dtnitsch/mr-verify/pkg/mapreduce"
	"github.com/dtnitsch/mr-verify/pkg/parser"
	"github.com/dtnitsch/mr-verify/pkg/storage"
	verifypkg "github.com/dtnitsch/mr-verify/pkg/verify"
	"github.com/urfave/cli/v2"
)

const (
	exitMismatch = 1
	exitFatal    = 2
)

func newLogger(c *cli.Context) *slog.Logger {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	return slog.New(slog.NewJSONHandler(c.App.ErrWriter, &slog.HandlerOptions{Level: logLevel}))
}

// ResolveConfig loads --config if given, then applies explicitly set flags.
func ResolveConfig(c *cli.Context) (*models.VerifyConfig, error) {
	config := models.DefaultConfig()
	if path := c.String("config"); path != "" {
		var err error
		config, err = models.LoadConfig(path)
		if err != nil {
			return nil, err
		}
	}

	if c.IsSet("sources") {
		config.Sources = c.String("sources")
	}
	if c.IsSet("results") {
		config.Results = c.String("results")
	}
	if c.IsSet("source-format") {
		config.SourceFormat = c.String("source-format")
	}
	if c.IsSet("strict") {
		config.Strict = c.Bool("strict")
	}
	if c.IsSet("report") {
		config.Report = c.String("report")
	}
	if c.IsSet("detect-language") {
		config.DetectLanguage = c.Bool("detect-language")
	}
	if c.IsSet("record") {
		config.Record = c.Bool("record")
	}
	if c.IsSet("db") {
		config.DBPath = c.String("db")
	}

	return config, nil
}

// VerifyAction recomputes the ground truth and checks the reduced results.
// It prints exactly one verdict line to stdout. A mismatch exits 1; bad
// input exits 2 without a verdict.
func VerifyAction(c *cli.Context) error {
	logger := newLogger(c)
	startTime := time.Now()

	config, err := ResolveConfig(c)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		return cli.Exit("", exitFatal)
	}

	format, err := models.ParseSourceFormat(config.SourceFormat)
	if err != nil {
		logger.Error("invalid source format", "error", err)
		return cli.Exit("", exitFatal)
	}

	// Read every input up front so that each file is opened exactly once
	sourceDocs, err := storage.NewGlobSource(config.Sources).Documents()
	if err != nil {
		logger.Error("failed to read source documents", "error", err, "pattern", config.Sources)
		return cli.Exit("", exitFatal)
	}
	resultDocs, err := storage.NewGlobSource(config.Results).Documents()
	if err != nil {
		logger.Error("failed to read result files", "error", err, "pattern", config.Results)
		return cli.Exit("", exitFatal)
	}
	if len(sourceDocs) == 0 {
		logger.Warn("no source documents matched", "pattern", config.Sources)
	}

	v := &verifypkg.Verifier{
		Sources: storage.MemorySource(sourceDocs),
		Results: storage.MemorySource(resultDocs),
		Parser:  &parser.Parser{Format: format},
		Options: verifypkg.Options{Bidirectional: config.Strict},
	}

	res, err := v.Run()
	if err != nil {
		logger.Error("verification aborted", "error", err)
		return cli.Exit("", exitFatal)
	}

	fmt.Fprintln(c.App.Writer, res.Outcome.String())

	logger.Info("verification finished",
		"verdict", verdict(res.Outcome),
		"source_files", len(sourceDocs),
		"result_files", len(resultDocs),
		"distinct_words", res.Truth.Len(),
		"duration", time.Since(startTime).String(),
	)

	if config.Report != "" || config.Record {
		fingerprint := common.Fingerprint(sourceDocs, resultDocs)
		languages := detectLanguages(config, res, logger)

		if config.Report != "" {
			report := manifest.Build(manifest.Inputs{
				Sources:      config.Sources,
				Results:      config.Results,
				SourceFormat: format.String(),
				Strict:       config.Strict,
				Fingerprint:  fingerprint,
			}, res, languages)
			if err := manifest.Save(report, config.Report, &storage.Storage{}); err != nil {
				logger.Warn("failed to write report", "error", err, "path", config.Report)
			} else {
				logger.Info("report written", "path", config.Report)
			}
		}

		if config.Record {
			runID, err := recordRun(config, format, fingerprint, res, languages)
			if err != nil {
				logger.Warn("failed to record run", "error", err)
			} else {
				logger.Info("run recorded", "run_id", runID)
			}
		}
	}

	if !res.Outcome.Success {
		return cli.Exit("", exitMismatch)
	}
	return nil
}

func verdict(o models.Outcome) string {
	if o.Success {
		return dbpkg.VerdictSuccess
	}
	return dbpkg.VerdictMismatch
}

func detectLanguages(config *models.VerifyConfig, res *verifypkg.Result, logger *slog.Logger) map[string]string {
	if !config.DetectLanguage {
		return nil
	}

	d := detector.NewDetector()
	languages := make(map[string]string, len(res.Sources))
	for _, src := range res.Sources {
		lang := d.Language(src.Text)
		languages[src.Name] = lang
		logger.Debug("detected language", "source", src.Name, "language", lang)
	}
	return languages
}

func recordRun(config *models.VerifyConfig, format models.SourceFormat, fingerprint string, res *verifypkg.Result, languages map[string]string) (int64, error) {
	database, err := dbpkg.Open(config.DBPath)
	if err != nil {
		return 0, fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	run := &dbpkg.Run{
		SourcesPattern: config.Sources,
		ResultsPattern: config.Results,
		SourceFormat:   format.String(),
		Strict:         config.Strict,
		SourceFiles:    len(res.Sources),
		ResultFiles:    res.ResultFiles,
		DistinctWords:  res.Truth.Len(),
		TotalWords:     res.Truth.Total(),
		ClaimedWords:   res.Claimed.Len(),
		Verdict:        verdict(res.Outcome),
		Fingerprint:    fingerprint,
	}
	if m := res.Outcome.Mismatch; m != nil {
		run.MismatchWord = dbpkg.NewNullString(m.Word)
		run.ExpectedCount = sql.NullInt64{Int64: int64(m.Expected), Valid: true}
		if m.Actual != nil {
			run.ActualCount = sql.NullInt64{Int64: int64(*m.Actual), Valid: true}
		}
	}

	sources := make([]dbpkg.RunSource, len(res.Sources))
	for i, src := range res.Sources {
		sources[i] = dbpkg.RunSource{
			Name:      src.Name,
			SizeBytes: int64(src.SizeBytes),
			WordCount: src.Words,
			Language:  languages[src.Name],
		}
	}

	return database.InsertRun(run, sources)
}

// TopAction prints the most frequent ground-truth words.
func TopAction(c *cli.Context) error {
	logger := newLogger(c)

	config, err := ResolveConfig(c)
	if err != nil {
		return cli.Exit(err.Error(), exitFatal)
	}
	format, err := models.ParseSourceFormat(config.SourceFormat)
	if err != nil {
		return cli.Exit(err.Error(), exitFatal)
	}

	v := &verifypkg.Verifier{
		Sources: storage.NewGlobSource(config.Sources),
		Parser:  &parser.Parser{Format: format},
	}
	truth, summaries, err := v.GroundTruth()
	if err != nil {
		return cli.Exit(err.Error(), exitFatal)
	}
	logger.Info("ground truth built", "source_files", len(summaries), "distinct_words", truth.Len(), "total_words", truth.Total())

	mapreduce.PrintTopKeywords(c.App.Writer, truth, c.Int("n"), c.Bool("skip-common"))
	return nil
}
