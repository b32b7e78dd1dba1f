package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

// runApp runs the CLI and returns stdout and the exit code.
func runApp(t *testing.T, args ...string) (string, int) {
	t.Helper()

	app := newApp()
	var stdout, stderr bytes.Buffer
	app.Writer = &stdout
	app.ErrWriter = &stderr
	app.ExitErrHandler = func(*cli.Context, error) {}

	err := app.Run(append([]string{"mr-verify"}, args...))
	if err == nil {
		return stdout.String(), 0
	}

	var exitErr cli.ExitCoder
	if errors.As(err, &exitErr) {
		return stdout.String(), exitErr.ExitCode()
	}
	t.Fatalf("unexpected error: %v (stderr: %s)", err, stderr.String())
	return "", -1
}

func writeInputs(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	}
	return dir
}

func globs(dir string) []string {
	return []string{
		"--sources", filepath.Join(dir, "pg*"),
		"--results", filepath.Join(dir, "reduce*"),
		"--quiet",
	}
}

func TestVerify_Success(t *testing.T) {
	dir := writeInputs(t, map[string]string{
		"pg-1.txt":        "the cat sat",
		"reduce_result_0": "the 1\ncat 1\nsat 1\n",
	})

	out, code := runApp(t, append([]string{"verify"}, globs(dir)...)...)
	require.Equal(t, "success\n", out)
	require.Equal(t, 0, code)
}

func TestVerify_DefaultAction(t *testing.T) {
	dir := writeInputs(t, map[string]string{
		"pg-1.txt":        "cat cat dog",
		"reduce_result_0": "cat 2\ndog 2\n",
	})

	out, code := runApp(t, globs(dir)...)
	require.Equal(t, "incorrect dog 1 is not equivalent to dog 2\n", out)
	require.Equal(t, 1, code)
}

func TestVerify_MissingWord(t *testing.T) {
	dir := writeInputs(t, map[string]string{
		"pg-1.txt":        "fox",
		"reduce_result_0": "",
	})

	out, code := runApp(t, append([]string{"verify"}, globs(dir)...)...)
	require.Equal(t, "incorrect fox 1 is not equivalent to fox None\n", out)
	require.Equal(t, 1, code)
}

func TestVerify_MalformedRecord(t *testing.T) {
	dir := writeInputs(t, map[string]string{
		"pg-1.txt":        "fox",
		"reduce_result_0": "badline\n",
	})

	out, code := runApp(t, append([]string{"verify"}, globs(dir)...)...)
	require.Empty(t, out)
	require.Equal(t, 2, code)
}

func TestVerify_InvalidUTF8Source(t *testing.T) {
	dir := writeInputs(t, map[string]string{
		"pg-1.txt":        "ab\xffcd",
		"reduce_result_0": "ab 1\ncd 1\n",
	})

	out, code := runApp(t, append([]string{"verify"}, globs(dir)...)...)
	require.Empty(t, out)
	require.Equal(t, 2, code)
}

func TestVerify_Strict(t *testing.T) {
	dir := writeInputs(t, map[string]string{
		"pg-1.txt":        "fox",
		"reduce_result_0": "fox 1\nwolf 3\n",
	})

	out, code := runApp(t, append([]string{"verify"}, globs(dir)...)...)
	require.Equal(t, "success\n", out)
	require.Equal(t, 0, code)

	out, code = runApp(t, append([]string{"verify", "--strict"}, globs(dir)...)...)
	require.Equal(t, "incorrect wolf 0 is not equivalent to wolf 3\n", out)
	require.Equal(t, 1, code)
}

func TestVerify_ConfigFileAndReport(t *testing.T) {
	dir := writeInputs(t, map[string]string{
		"pg-1.html":       "<html><body><p>Call me <b>Ishmael</b></p><script>var x;</script></body></html>",
		"reduce_result_0": "Call 1\nme 1\nIshmael 1\n",
	})
	report := filepath.Join(dir, "out", "report.yaml")
	config := filepath.Join(dir, "verify.yaml")
	require.NoError(t, os.WriteFile(config, []byte(strings.Join([]string{
		"sources: " + filepath.Join(dir, "pg*"),
		"results: " + filepath.Join(dir, "reduce*"),
		"source_format: html",
		"report: " + report,
	}, "\n")), 0644))

	out, code := runApp(t, "verify", "--config", config, "--quiet")
	require.Equal(t, "success\n", out)
	require.Equal(t, 0, code)

	data, err := os.ReadFile(report)
	require.NoError(t, err)
	var parsed map[string]any
	require.NoError(t, yaml.Unmarshal(data, &parsed))
	require.Equal(t, "success", parsed["verdict"])
	require.Equal(t, "html", parsed["source_format"])
}

func TestVerify_RecordAndListRuns(t *testing.T) {
	dir := writeInputs(t, map[string]string{
		"pg-1.txt":        "cat cat dog",
		"reduce_result_0": "cat 2\n",
	})
	dbPath := filepath.Join(dir, "history.db")

	_, code := runApp(t, append([]string{"verify", "--record", "--db", dbPath}, globs(dir)...)...)
	require.Equal(t, 1, code)

	out, code := runApp(t, "runs", "--db", dbPath)
	require.Equal(t, 0, code)
	require.Contains(t, out, "mismatch")
	require.Contains(t, out, "dog 1 != None")

	out, code = runApp(t, "run", "--db", dbPath)
	require.Equal(t, 0, code)
	require.Contains(t, out, "# Run: 1")
	require.Contains(t, out, "word: dog")
}

func TestTop(t *testing.T) {
	dir := writeInputs(t, map[string]string{
		"pg-1.txt": "the whale, the sea; the whale!",
	})

	out, code := runApp(t, "top", "--sources", filepath.Join(dir, "pg*"), "-n", "2", "--quiet")
	require.Equal(t, 0, code)
	require.Equal(t, "1. the: 3\n2. whale: 2\n", out)

	out, _ = runApp(t, "top", "--sources", filepath.Join(dir, "pg*"), "--skip-common", "--quiet")
	require.Equal(t, "1. whale: 2\n2. sea: 1\n", out)
}

func TestQuickstart(t *testing.T) {
	out, code := runApp(t, "quickstart")
	require.Equal(t, 0, code)
	require.Contains(t, out, "mr-verify verify")
}
