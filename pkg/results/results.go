// Package results loads reduced-output files ("word count" lines) into a
// single claimed frequency map.
package results

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/dtnitsch/mr-verify/models"
	"github.com/dtnitsch/mr-verify/pkg/mapreduce"
	"github.com/dtnitsch/mr-verify/pkg/storage"
)

// ErrMalformedRecord is matched by every MalformedRecordError.
var ErrMalformedRecord = errors.New("malformed record")

// MalformedRecordError identifies a reduced-output line that is not
// "<word> <count>".
type MalformedRecordError struct {
	File   string
	Line   int
	Text   string
	Reason string
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("%s:%d: malformed record %q: %s", e.File, e.Line, e.Text, e.Reason)
}

func (e *MalformedRecordError) Is(target error) bool {
	return target == ErrMalformedRecord
}

// ParseRecord splits a line into word and count. The fields must be
// separated by exactly one space.
func ParseRecord(line string) (models.Record, error) {
	fields := strings.Split(line, " ")
	if len(fields) != 2 {
		return models.Record{}, fmt.Errorf("want 2 space-separated fields, got %d", len(fields))
	}

	count, err := strconv.Atoi(fields[1])
	if err != nil {
		return models.Record{}, fmt.Errorf("count %q is not an integer", fields[1])
	}

	return models.Record{Word: fields[0], Count: count}, nil
}

// Parse reads the records of one file in line order. Blank lines are
// skipped. name is only used to build errors.
func Parse(name string, content []byte) ([]models.Record, error) {
	if !utf8.Valid(content) {
		return nil, fmt.Errorf("%s: %w", name, storage.ErrNotText)
	}

	var records []models.Record

	scanner := bufio.NewScanner(bytes.NewReader(content))
	scanner.Buffer(make([]byte, 0, 64*1024), len(content)+1)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if line == "" {
			continue
		}

		record, err := ParseRecord(line)
		if err != nil {
			return nil, &MalformedRecordError{File: name, Line: lineNum, Text: line, Reason: err.Error()}
		}
		records = append(records, record)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", name, err)
	}

	return records, nil
}

// Load merges the records of docs, in order, into the claimed map.
// Later records overwrite earlier ones for the same word.
func Load(docs []storage.Document) (*models.Counts, error) {
	perFile := make([]*models.Counts, 0, len(docs))
	for _, doc := range docs {
		records, err := Parse(doc.Name, doc.Content)
		if err != nil {
			return nil, err
		}

		counts := models.NewCounts()
		for _, r := range records {
			counts.Set(r.Word, r.Count)
		}
		perFile = append(perFile, counts)
	}

	return mapreduce.Merge(perFile), nil
}

// LoadFrom discovers the reduced-output files of src and loads them.
func LoadFrom(src storage.Source) (*models.Counts, int, error) {
	docs, err := src.Documents()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read result files: %w", err)
	}

	claimed, err := Load(docs)
	if err != nil {
		return nil, 0, err
	}
	return claimed, len(docs), nil
}
