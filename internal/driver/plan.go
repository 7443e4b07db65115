package driver

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
)

const (
	sourceExt = ".cs"
	targetExt = ".swift"
)

// Job is one input file and the path its translation is written to.
type Job struct {
	Input  string
	Output string
}

// ErrNoInput is returned by Plan when the input path is empty.
var ErrNoInput = errors.New("no input file or directory given")

// Plan resolves the CLI input and output arguments into jobs.
//
// A directory input converts every .cs file in it (and below it when
// recursive is set). Each output goes next to its input with a .swift
// extension, or into the output directory when output does not end in
// .swift. A file input must end in .cs; its output defaults to the same
// name with .swift, and an existing directory output receives the file.
// Surrounding double quotes are trimmed from both paths.
func Plan(input, output string, recursive bool) ([]Job, error) {
	input, output = trimQuotes(input), trimQuotes(output)
	if input == "" {
		return nil, errors.WithHint(ErrNoInput, "pass a .cs file or a directory, e.g. `sharpswift convert src/`")
	}
	info, err := os.Stat(input)
	if err != nil {
		return nil, errors.Wrapf(err, "input %s", input)
	}

	if !info.IsDir() {
		if !IsSource(input) {
			return nil, errors.WithHint(errors.Newf("input %s is not a %s file", input, sourceExt),
				"only C# sources can be converted")
		}
		out := output
		switch {
		case out == "":
			out = swiftName(input)
		case isDir(out) || !strings.HasSuffix(out, targetExt):
			out = filepath.Join(out, swiftName(filepath.Base(input)))
		}
		return []Job{{Input: input, Output: out}}, nil
	}

	files, err := ListSources(input, recursive)
	if err != nil {
		return nil, err
	}
	jobs := make([]Job, 0, len(files))
	for _, file := range files {
		jobs = append(jobs, DirJob(input, file, output))
	}
	return jobs, nil
}

// DirJob is the job for one file found under the input directory root.
func DirJob(root, file, output string) Job {
	out := output
	switch {
	case out == "":
		out = swiftName(file)
	case !strings.HasSuffix(out, targetExt):
		rel, err := filepath.Rel(root, file)
		if err != nil || strings.HasPrefix(rel, "..") {
			rel = filepath.Base(file)
		}
		out = filepath.Join(out, swiftName(rel))
	}
	return Job{Input: file, Output: out}
}

// IsSource reports whether path names a C# source file.
func IsSource(path string) bool {
	return strings.EqualFold(filepath.Ext(path), sourceExt)
}

// ListSources returns the sorted .cs files of dir.
func ListSources(dir string, recursive bool) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != dir && !recursive {
				return filepath.SkipDir
			}
			return nil
		}
		if IsSource(path) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "list %s", dir)
	}
	// Сортируем для детерминированного порядка
	sort.Strings(files)
	return files, nil
}

func swiftName(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + targetExt
}

func trimQuotes(s string) string {
	return strings.Trim(strings.TrimSpace(s), `"`)
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// collisions maps the index of every job whose output is already claimed
// by an earlier job to the input of that earlier job.
func collisions(jobs []Job) map[int]string {
	owners := make(map[string]int, len(jobs))
	out := make(map[int]string)
	for i, job := range jobs {
		key := filepath.Clean(job.Output)
		if abs, err := filepath.Abs(key); err == nil {
			key = abs
		}
		if first, ok := owners[key]; ok {
			out[i] = jobs[first].Input
			continue
		}
		owners[key] = i
	}
	return out
}
