package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sharpswift/internal/translate"
	"sharpswift/internal/version"
)

const fooCS = "using System;\nnamespace Bar {\n    class Foo {\n        int x;\n    }\n}\n"

const fooSwift = translate.Header +
	"include DNSwift;\n" +
	"\n" +
	"class Foo {\n" +
	"    var x: Int\n" +
	"}\n"

func execute(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(append([]string{"--color", "off"}, args...))
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func emptyConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sharpswift.toml")
	require.NoError(t, os.WriteFile(path, nil, 0o600))
	return path
}

func TestConvertWritesSwiftFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "Foo.cs")
	require.NoError(t, os.WriteFile(in, []byte(fooCS), 0o600))

	_, stderr, err := execute(t, "", "--config", emptyConfig(t), "convert", "--no-cache", "--ui", "off", in)
	require.NoError(t, err)
	assert.Contains(t, stderr, "Done.")

	got, err := os.ReadFile(filepath.Join(dir, "Foo.swift"))
	require.NoError(t, err)
	assert.Equal(t, fooSwift, string(got))
}

func TestConvertStdout(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "Foo.cs")
	require.NoError(t, os.WriteFile(in, []byte(fooCS), 0o600))

	stdout, _, err := execute(t, "", "--config", emptyConfig(t), "convert", "--no-cache", "--stdout", "--input", in)
	require.NoError(t, err)
	assert.Equal(t, fooSwift, stdout)
	_, statErr := os.Stat(filepath.Join(dir, "Foo.swift"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestConvertStdin(t *testing.T) {
	stdout, _, err := execute(t, fooCS, "--config", emptyConfig(t), "convert", "--no-cache", "-")
	require.NoError(t, err)
	assert.Equal(t, fooSwift, stdout)
}

func TestConvertReportsFailure(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "Loose.cs")
	require.NoError(t, os.WriteFile(in, []byte("class Loose {}\n"), 0o600))

	_, stderr, err := execute(t, "", "--config", emptyConfig(t), "convert", "--no-cache", "--ui", "off", in)
	require.ErrorIs(t, err, errFailed)
	assert.Contains(t, stderr, "TRN2001")
}

func TestConvertJSONSummary(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Foo.cs"), []byte(fooCS), 0o600))

	stdout, _, err := execute(t, "", "--config", emptyConfig(t), "convert", "--no-cache", "--format", "json", dir)
	require.NoError(t, err)

	var summary batchSummary
	require.NoError(t, json.Unmarshal([]byte(stdout), &summary))
	require.Len(t, summary.Files, 1)
	assert.Equal(t, "done", summary.Files[0].Status)
	assert.Equal(t, []string{"include DNSwift;"}, summary.Files[0].Includes)
	assert.False(t, summary.Files[0].Warnings)
	assert.Zero(t, summary.Failed)
}

func TestConvertJSONSummaryFlagsWarnings(t *testing.T) {
	dir := t.TempDir()
	src := "using Newtonsoft.Json;\nnamespace Bar { class Foo { void M() { goto done; } } }\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Foo.cs"), []byte(src), 0o600))

	stdout, _, err := execute(t, "", "--config", emptyConfig(t), "convert", "--no-cache", "--format", "json", dir)
	require.NoError(t, err)

	var summary batchSummary
	require.NoError(t, json.Unmarshal([]byte(stdout), &summary))
	require.Len(t, summary.Files, 1)
	assert.True(t, summary.Files[0].Warnings)
	assert.Equal(t, []string{"include DNSwift;"}, summary.Files[0].Includes)
	assert.NotEmpty(t, summary.Files[0].Diagnostics)
}

func TestConvertRejectsUnknownFormat(t *testing.T) {
	_, _, err := execute(t, "", "--config", emptyConfig(t), "convert", "--format", "yaml", "x.cs")
	require.Error(t, err)
}

func TestIndentCheck(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Foo.swift")
	require.NoError(t, os.WriteFile(path, []byte("class Foo {\nvar x: Int\n}\n"), 0o600))

	stdout, _, err := execute(t, "", "--config", emptyConfig(t), "indent", "--check", path)
	require.Error(t, err)
	assert.Contains(t, stdout, path)

	_, _, err = execute(t, "", "--config", emptyConfig(t), "indent", path)
	require.NoError(t, err)
	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "class Foo {\n    var x: Int\n}\n", string(got))

	_, _, err = execute(t, "", "--config", emptyConfig(t), "indent", "--check", path)
	require.NoError(t, err)
}

func TestVersionJSON(t *testing.T) {
	stdout, _, err := execute(t, "", "version", "--format", "json")
	require.NoError(t, err)
	var info versionInfo
	require.NoError(t, json.Unmarshal([]byte(stdout), &info))
	assert.Equal(t, version.Version, info.Version)
	assert.NotEmpty(t, info.GoVersion)
}

func TestQuietVerboseConflict(t *testing.T) {
	_, _, err := execute(t, "", "--quiet", "--verbose", "version")
	require.Error(t, err)
}
