package db

import (
	"database/sql"
	"fmt"
	"time"
)

const (
	VerdictSuccess  = "success"
	VerdictMismatch = "mismatch"
)

// Run is one recorded verification.
type Run struct {
	RunID          int64
	CreatedAt      time.Time
	SourcesPattern string
	ResultsPattern string
	SourceFormat   string
	Strict         bool
	SourceFiles    int
	ResultFiles    int
	DistinctWords  int
	TotalWords     int
	ClaimedWords   int
	Verdict        string
	MismatchWord   sql.NullString
	ExpectedCount  sql.NullInt64
	ActualCount    sql.NullInt64
	Fingerprint    string
}

// RunSource is a source document seen by a run.
type RunSource struct {
	Name      string
	SizeBytes int64
	WordCount int
	Language  string
}

// InsertRun stores a run and its sources in one transaction and returns
// the new run_id.
func (db *DB) InsertRun(run *Run, sources []RunSource) (int64, error) {
	tx, err := db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	result, err := tx.Exec(`
		INSERT INTO runs (sources_pattern, results_pattern, source_format, strict,
		                  source_files, result_files, distinct_words, total_words, claimed_words,
		                  verdict, mismatch_word, expected_count, actual_count, fingerprint)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, run.SourcesPattern, run.ResultsPattern, run.SourceFormat, run.Strict,
		run.SourceFiles, run.ResultFiles, run.DistinctWords, run.TotalWords, run.ClaimedWords,
		run.Verdict, run.MismatchWord, run.ExpectedCount, run.ActualCount, run.Fingerprint)
	if err != nil {
		return 0, fmt.Errorf("failed to insert run: %w", err)
	}

	runID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get run ID: %w", err)
	}

	for _, s := range sources {
		_, err := tx.Exec(`
			INSERT INTO run_sources (run_id, name, size_bytes, word_count, language)
			VALUES (?, ?, ?, ?, ?)
		`, runID, s.Name, s.SizeBytes, s.WordCount, NewNullString(s.Language))
		if err != nil {
			return 0, fmt.Errorf("failed to insert run source %s: %w", s.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit run: %w", err)
	}

	return runID, nil
}

const runColumns = `
	run_id, created_at, sources_pattern, results_pattern, source_format, strict,
	source_files, result_files, distinct_words, total_words, claimed_words,
	verdict, mismatch_word, expected_count, actual_count, fingerprint`

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(row scanner) (*Run, error) {
	var r Run
	var fingerprint sql.NullString
	err := row.Scan(&r.RunID, &r.CreatedAt, &r.SourcesPattern, &r.ResultsPattern,
		&r.SourceFormat, &r.Strict, &r.SourceFiles, &r.ResultFiles, &r.DistinctWords,
		&r.TotalWords, &r.ClaimedWords, &r.Verdict, &r.MismatchWord, &r.ExpectedCount,
		&r.ActualCount, &fingerprint)
	if err != nil {
		return nil, err
	}
	r.Fingerprint = fingerprint.String
	return &r, nil
}

// GetRunByID retrieves a run by its ID
func (db *DB) GetRunByID(runID int64) (*Run, error) {
	run, err := scanRun(db.QueryRow("SELECT"+runColumns+" FROM runs WHERE run_id = ?", runID))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("run %d not found", runID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	return run, nil
}

// ListRuns retrieves runs ordered by most recent first. A non-positive
// limit returns all runs.
func (db *DB) ListRuns(limit int, failedOnly bool) ([]Run, error) {
	query := "SELECT" + runColumns + " FROM runs"
	var args []any
	if failedOnly {
		query += " WHERE verdict = ?"
		args = append(args, VerdictMismatch)
	}
	query += " ORDER BY created_at DESC, run_id DESC"
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", limit)
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, *run)
	}

	return runs, rows.Err()
}

// GetRunSources retrieves the source documents of a run in insertion order
func (db *DB) GetRunSources(runID int64) ([]RunSource, error) {
	rows, err := db.Query(`
		SELECT name, size_bytes, word_count, language
		FROM run_sources
		WHERE run_id = ?
		ORDER BY id
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to get run sources: %w", err)
	}
	defer rows.Close()

	var sources []RunSource
	for rows.Next() {
		var s RunSource
		var language sql.NullString
		if err := rows.Scan(&s.Name, &s.SizeBytes, &s.WordCount, &language); err != nil {
			return nil, fmt.Errorf("failed to scan run source: %w", err)
		}
		s.Language = language.String
		sources = append(sources, s)
	}

	return sources, rows.Err()
}

// NewNullString returns a NULL for an empty string.
func NewNullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
