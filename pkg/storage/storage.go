package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// ErrNotText is returned for a document whose content is not valid UTF-8.
var ErrNotText = errors.New("not valid UTF-8 text")

type Storage struct{}

// Document is one discovered input file.
type Document struct {
	Name    string
	Content []byte
}

// Source provides a set of documents in a stable order.
type Source interface {
	Documents() ([]Document, error)
}

func (s *Storage) SaveFile(filePath string, content []byte) error {
	if dir := filepath.Dir(filePath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("error creating directory: %w", err)
		}
	}

	if err := os.WriteFile(filePath, content, 0644); err != nil {
		return fmt.Errorf("error saving file: %w", err)
	}

	return nil
}

// ReadFile reads a whole file. The handle is released before returning.
func (s *Storage) ReadFile(filePath string) ([]byte, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading file: %w", err)
	}
	return data, nil
}

// Glob returns the regular files matching pattern in sorted order.
func (s *Storage) Glob(pattern string) ([]string, error) {
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}

	files := matches[:0]
	for _, m := range matches {
		info, err := os.Stat(m)
		if err != nil {
			return nil, fmt.Errorf("error getting file stats: %w", err)
		}
		if info.IsDir() {
			continue
		}
		files = append(files, m)
	}

	sort.Strings(files)
	return files, nil
}

// GlobSource discovers documents on disk by a glob pattern.
type GlobSource struct {
	Pattern string
	storage Storage
}

// NewGlobSource returns a GlobSource for pattern. The pattern is only
// checked when Documents is called.
func NewGlobSource(pattern string) *GlobSource {
	return &GlobSource{Pattern: pattern}
}

// Documents reads every matching file, one at a time, in sorted name order.
func (g *GlobSource) Documents() ([]Document, error) {
	files, err := g.storage.Glob(g.Pattern)
	if err != nil {
		return nil, err
	}

	docs := make([]Document, 0, len(files))
	for _, fn := range files {
		data, err := g.storage.ReadFile(fn)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", fn, err)
		}
		docs = append(docs, Document{Name: fn, Content: data})
	}

	return docs, nil
}

// MemorySource serves fixed documents, in the order given.
type MemorySource []Document

func (m MemorySource) Documents() ([]Document, error) {
	return m, nil
}

// NewMemorySource builds a MemorySource from contents, naming each doc-<n>.
func NewMemorySource(contents ...string) MemorySource {
	docs := make(MemorySource, len(contents))
	for i, c := range contents {
		docs[i] = Document{Name: fmt.Sprintf("doc-%d", i), Content: []byte(c)}
	}
	return docs
}
