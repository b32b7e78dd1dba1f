package verify

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/dtnitsch/mr-verify/models"
	"github.com/dtnitsch/mr-verify/pkg/parser"
	"github.com/dtnitsch/mr-verify/pkg/results"
	"github.com/dtnitsch/mr-verify/pkg/storage"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, sources, reduced storage.Source, opts Options) models.Outcome {
	t.Helper()
	v := &Verifier{Sources: sources, Results: reduced, Options: opts}
	res, err := v.Run()
	require.NoError(t, err)
	return res.Outcome
}

func TestRun_Examples(t *testing.T) {
	tests := []struct {
		name    string
		docs    []string
		reduced []string
		want    string
	}{
		{
			name:    "all words match",
			docs:    []string{"the cat sat"},
			reduced: []string{"the 1\ncat 1\nsat 1\n"},
			want:    "success",
		},
		{
			name:    "count differs",
			docs:    []string{"cat cat dog"},
			reduced: []string{"cat 2\ndog 2\n"},
			want:    "incorrect dog 1 is not equivalent to dog 2",
		},
		{
			name:    "no records",
			docs:    []string{"fox"},
			reduced: []string{""},
			want:    "incorrect fox 1 is not equivalent to fox None",
		},
		{
			name:    "no result files",
			docs:    []string{"fox"},
			reduced: nil,
			want:    "incorrect fox 1 is not equivalent to fox None",
		},
		{
			name:    "counts summed across documents",
			docs:    []string{"the cat", "the dog"},
			reduced: []string{"the 2\ncat 1\n", "dog 1\n"},
			want:    "success",
		},
		{
			name:    "no documents",
			docs:    nil,
			reduced: []string{"ghost 3\n"},
			want:    "success",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome := run(t, storage.NewMemorySource(tt.docs...), storage.NewMemorySource(tt.reduced...), Options{})
			require.Equal(t, tt.want, outcome.String())
		})
	}
}

func TestRun_MalformedIsFatal(t *testing.T) {
	v := &Verifier{
		Sources: storage.NewMemorySource("the cat"),
		Results: storage.NewMemorySource("the 1\nbadline\n"),
	}

	res, err := v.Run()
	require.Nil(t, res)
	require.True(t, errors.Is(err, results.ErrMalformedRecord))
}

func TestRun_ReportsFirstMismatchInOccurrenceOrder(t *testing.T) {
	// "zebra" is seen first, so it is reported even though "apple" is also wrong.
	outcome := run(t,
		storage.NewMemorySource("zebra apple zebra"),
		storage.NewMemorySource("apple 5\nzebra 1\n"),
		Options{})

	require.NotNil(t, outcome.Mismatch)
	require.Equal(t, "zebra", outcome.Mismatch.Word)
	require.Equal(t, 2, outcome.Mismatch.Expected)
	require.Equal(t, 1, *outcome.Mismatch.Actual)
}

func TestRun_LastResultFileWins(t *testing.T) {
	outcome := run(t,
		storage.NewMemorySource("dog dog"),
		storage.NewMemorySource("dog 1\n", "dog 2\n"),
		Options{})
	require.True(t, outcome.Success)

	outcome = run(t,
		storage.NewMemorySource("dog dog"),
		storage.NewMemorySource("dog 2\n", "dog 1\n"),
		Options{})
	require.Equal(t, "incorrect dog 2 is not equivalent to dog 1", outcome.String())
}

func TestRun_Idempotent(t *testing.T) {
	sources := storage.NewMemorySource("It was the best of times, it was the worst of times")
	reduced := storage.NewMemorySource("It 1\nwas 2\nthe 2\nbest 1\nof 2\ntimes 2\nit 1\nworst 0\n")

	first := run(t, sources, reduced, Options{})
	second := run(t, sources, reduced, Options{})
	require.Equal(t, first, second)
	require.Equal(t, "incorrect worst 1 is not equivalent to worst 0", first.String())
}

func TestRun_FromDisk(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"pg-1.txt":        "Call me Ishmael. Some years ago--never mind how long",
		"pg-2.txt":        "Ishmael, 1851.",
		"reduce_result_0": "Call 1\nme 1\nIshmael 2\nSome 1\n",
		"reduce_result_1": "years 1\nago 1\nnever 1\nmind 1\nhow 1\nlong 1\n\n",
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	}

	v := &Verifier{
		Sources: storage.NewGlobSource(filepath.Join(dir, "pg*")),
		Results: storage.NewGlobSource(filepath.Join(dir, "reduce*")),
		Parser:  &parser.Parser{},
	}
	res, err := v.Run()
	require.NoError(t, err)
	require.True(t, res.Outcome.Success, res.Outcome.String())
	require.Len(t, res.Sources, 2)
	require.Equal(t, 2, res.ResultFiles)
	require.Equal(t, 10, res.Sources[0].Words)
}

func TestRun_InvalidUTF8IsFatal(t *testing.T) {
	tests := []struct {
		name    string
		sources storage.Source
		reduced storage.Source
	}{
		{
			name:    "source document",
			sources: storage.NewMemorySource("ab\xffcd"),
			reduced: storage.NewMemorySource("ab 1\ncd 1\n"),
		},
		{
			name:    "result file",
			sources: storage.NewMemorySource("ab cd"),
			reduced: storage.NewMemorySource("ab 1\n", "cd\xfe 1\n"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &Verifier{Sources: tt.sources, Results: tt.reduced}
			res, err := v.Run()
			require.Nil(t, res)
			require.True(t, errors.Is(err, storage.ErrNotText))
		})
	}
}

func TestRun_UnreadableSourceIsFatal(t *testing.T) {
	v := &Verifier{
		Sources: storage.NewGlobSource("["),
		Results: storage.MemorySource{},
	}
	_, err := v.Run()
	require.Error(t, err)
}
