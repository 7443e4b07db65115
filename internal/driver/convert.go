package driver

import (
	"context"
	"fmt"
	"time"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap/zapcore"

	"sharpswift/internal/csharp"
	"sharpswift/internal/diag"
	"sharpswift/internal/indent"
	"sharpswift/internal/logging"
	"sharpswift/internal/pipeline"
	"sharpswift/internal/source"
	"sharpswift/internal/syntax"
	"sharpswift/internal/translate"
)

// ErrStrict is returned in strict mode when a file needed passthrough
// comments or contained syntax errors.
var ErrStrict = errors.New("file contains constructs without a Swift mapping")

// Result of converting one file. A failed file carries Err; the other files
// of a batch are not affected.
type Result struct {
	Input  string
	Output string
	FileID source.FileID
	Text   string
	// Includes lists the directive lines emitted after the header.
	Includes []string
	Bag      *diag.Bag
	Err      error
	Cached   bool
	Timings  pipeline.Timings
}

// Failed reports whether the file produced no usable output.
func (r *Result) Failed() bool { return r.Err != nil }

// ConvertFile converts a file already present in fs. It performs no I/O
// apart from reading the cache.
func ConvertFile(ctx context.Context, fs *source.FileSet, id source.FileID, opts Options) *Result {
	file := fs.Get(id)
	res := &Result{FileID: id, Bag: diag.NewBag(opts.MaxDiagnostics)}
	if file == nil {
		res.Err = errors.Newf("unknown file id %d", id)
		return res
	}
	res.Input = file.Path

	key := cacheKey(file, opts)
	if opts.Cache != nil && opts.Fingerprint != "" {
		if entry, ok := opts.Cache.Lookup(key); ok {
			res.Text = entry.Text
			res.Includes = entry.Includes
			res.Cached = true
			entry.restore(res.Bag, id)
			res.Err = strictError(res.Bag, opts)
			return res
		}
	}

	reporter := diag.NewDedupReporter(diag.NewBagReporter(res.Bag))

	start := time.Now()
	cu, err := csharp.Parse(ctx, file, reporter)
	res.Timings.Add(pipeline.StageParse, time.Since(start))
	if err != nil {
		res.Err = err
		return res
	}
	if logging.Logger.Desugar().Core().Enabled(zapcore.DebugLevel) {
		nodes, unknown := countNodes(cu)
		logging.Logger.Debugw("parsed", "file", file.Path, "nodes", nodes, "unknown", unknown)
	}

	start = time.Now()
	topts := opts.Translate
	topts.Reporter = reporter
	unit, err := translate.Translate(cu, topts)
	res.Timings.Add(pipeline.StageTranslate, time.Since(start))
	if err != nil {
		res.Err = errors.Wrapf(err, "%s", file.Path)
		return res
	}
	res.Text = unit.String()
	res.Includes = unit.Directives.Lines()

	if opts.ApplyIndentation {
		start = time.Now()
		text, bad := indent.Apply(res.Text, opts.Indent)
		res.Timings.Add(pipeline.StageIndent, time.Since(start))
		res.Text = text
		if bad != nil {
			diag.ReportWarning(reporter, diag.MalformedLiteralOrComment, source.Span{File: id},
				fmt.Sprintf("generated output: %s; the rest of the file is left unindented", bad)).Emit()
		}
	}

	if opts.Cache != nil && opts.Fingerprint != "" {
		// a cache write failure only costs the next run some time
		_ = opts.Cache.Store(key, newCacheEntry(res))
	}
	res.Err = strictError(res.Bag, opts)
	return res
}

// countNodes reports the tree size and how many nodes will pass through.
func countNodes(cu *syntax.CompilationUnit) (nodes, unknown int) {
	syntax.Inspect(cu, func(n syntax.Node) bool {
		nodes++
		if n.Kind() == syntax.KindUnknown {
			unknown++
		}
		return true
	})
	return nodes, unknown
}

func strictError(bag *diag.Bag, opts Options) error {
	if !opts.Strict {
		return nil
	}
	n := bag.Count(diag.UnsupportedConstruct) + bag.Count(diag.ParseSyntaxError)
	if n == 0 {
		return nil
	}
	return errors.WithHint(
		errors.Wrapf(ErrStrict, "%d unsupported or unparsable constructs", n),
		"run without --strict to keep them as comments in the output",
	)
}

// ConvertSource converts an in-memory C# text. It is the pure entry point
// used by the stdin mode and tests.
func ConvertSource(ctx context.Context, name string, content []byte, opts Options) (*Result, *source.FileSet) {
	fs := source.NewFileSet()
	id := fs.AddBytes(name, content)
	return ConvertFile(ctx, fs, id, opts), fs
}
