package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"sharpswift/internal/diag"
	"sharpswift/internal/driver"
	"sharpswift/internal/logging"
	"sharpswift/internal/observ"
	"sharpswift/internal/pipeline"
	"sharpswift/internal/source"
	"sharpswift/internal/ui"
)

type convertFlags struct {
	input     string
	output    string
	noIndent  bool
	recursive bool
	stdout    bool
	strict    bool
	jobs      int
	noCache   bool
	ui        string
	format    string
	diags     string
}

func newConvertCmd(a *app) *cobra.Command {
	var f convertFlags
	cmd := &cobra.Command{
		Use:   "convert [flags] <input.cs|directory|-> [output]",
		Short: "Convert C# files to Swift",
		Long: `Convert a C# file, or every .cs file of a directory, to Swift.
The output defaults to the input path with a .swift extension; an output path
that does not end in .swift is treated as a directory. "-" reads from stdin.`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runConvert(cmd, args, f)
		},
	}
	fl := cmd.Flags()
	fl.StringVar(&f.input, "input", "", "input file or directory (overrides the first argument)")
	fl.StringVar(&f.output, "output", "", "output file or directory (overrides the second argument)")
	fl.BoolVar(&f.noIndent, "noindent", false, "skip the indentation pass")
	fl.BoolVar(&f.recursive, "recursive", false, "descend into subdirectories")
	fl.BoolVar(&f.stdout, "stdout", false, "print the translation instead of writing files")
	fl.BoolVar(&f.strict, "strict", false, "fail files that contain constructs without a Swift mapping")
	fl.IntVar(&f.jobs, "jobs", 0, "max parallel workers (0=auto)")
	fl.BoolVar(&f.noCache, "no-cache", false, "disable the translation cache")
	fl.StringVar(&f.ui, "ui", "auto", "progress UI (auto|on|off)")
	fl.StringVar(&f.format, "format", "text", "summary format (text|json)")
	fl.StringVar(&f.diags, "diagnostics", "short", "diagnostic layout (short|context)")
	return cmd
}

func (a *app) runConvert(cmd *cobra.Command, args []string, f convertFlags) error {
	timer := observ.NewTimer()
	input, output := positional(args, 0), positional(args, 1)
	if f.input != "" {
		input = f.input
	}
	if f.output != "" {
		output = f.output
	}
	switch f.format {
	case "text", "json":
	default:
		return errors.Newf("unsupported format %q (must be text or json)", f.format)
	}
	switch f.diags {
	case "short", "context":
	default:
		return errors.Newf("unsupported diagnostics layout %q (must be short or context)", f.diags)
	}
	mode, err := readUIMode(f.ui)
	if err != nil {
		return err
	}

	opts := driver.OptionsFromConfig(a.cfg)
	opts.MaxDiagnostics = a.flags.maxDiagnostics
	if f.noIndent {
		opts.ApplyIndentation = false
	}
	if f.strict {
		opts.Strict = true
	}
	if f.jobs > 0 {
		opts.Jobs = f.jobs
	}
	if a.cfg.Driver.Cache && !f.noCache {
		cache, err := driver.OpenDiskCache("sharpswift")
		if err != nil {
			logging.Logger.Warnw("translation cache disabled", "error", err)
		} else {
			opts.Cache = cache
		}
	}

	if input == "-" {
		return a.convertStdin(cmd, opts, f.diags)
	}

	endPlan := timer.Begin("plan")
	jobs, err := driver.Plan(input, output, f.recursive)
	if err != nil {
		return err
	}
	endPlan(fmt.Sprintf("%d files", len(jobs)))
	if len(jobs) == 0 {
		logging.Logger.Warnw("no .cs files found", "input", input)
		return nil
	}

	opts.DryRun = f.stdout
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	var batch *driver.Batch
	if !f.stdout && !a.flags.quiet && f.format == "text" && shouldUseTUI(mode) {
		batch, err = ui.RunBatch(ctx, "converting", jobs, opts, cmd.OutOrStdout())
	} else {
		batch, err = driver.ConvertPaths(ctx, jobs, opts)
	}
	if batch == nil {
		return err
	}
	for _, stage := range pipeline.Stages {
		if batch.Timings.Has(stage) {
			timer.Record(string(stage), batch.Timings.Duration(stage), "")
		}
	}

	if f.stdout {
		for _, r := range batch.Results {
			if !r.Failed() {
				fmt.Fprint(cmd.OutOrStdout(), r.Text)
			}
		}
	}
	a.report(cmd.ErrOrStderr(), batch, f, cmd.OutOrStdout(), timer)
	if err != nil {
		return err
	}
	if batch.Failed() > 0 {
		return errFailed
	}
	if !a.flags.quiet && f.format == "text" && !f.stdout {
		fmt.Fprintln(cmd.ErrOrStderr(), "Done.")
	}
	return nil
}

func (a *app) convertStdin(cmd *cobra.Command, opts driver.Options, layout string) error {
	content, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return errors.Wrap(err, "read stdin")
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	res, fs := driver.ConvertSource(ctx, "<stdin>", content, opts)
	if res.Bag.Len() > 0 && !a.flags.quiet {
		fmt.Fprintln(cmd.ErrOrStderr(), formatDiagnostics(res.Bag, fs, layout))
	}
	if res.Err != nil {
		return res.Err
	}
	_, err = io.WriteString(cmd.OutOrStdout(), res.Text)
	return err
}

func positional(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}

type fileSummary struct {
	Input       string   `json:"input"`
	Output      string   `json:"output,omitempty"`
	Status      string   `json:"status"`
	Error       string   `json:"error,omitempty"`
	Warnings    bool     `json:"warnings"`
	Includes    []string `json:"includes,omitempty"`
	Diagnostics []string `json:"diagnostics,omitempty"`
}

type batchSummary struct {
	Files   []fileSummary  `json:"files"`
	Failed  int            `json:"failed"`
	Timings *observ.Report `json:"timings,omitempty"`
}

func formatDiagnostics(bag *diag.Bag, fs *source.FileSet, layout string) string {
	bag.Sort()
	var text string
	if layout == "context" {
		text = diag.FormatContext(bag.Items(), fs)
	} else {
		text = diag.FormatShort(bag.Items(), fs, true)
	}
	if n := bag.Dropped(); n > 0 {
		text += fmt.Sprintf("\n... %d more diagnostics not shown (--max-diagnostics)", n)
	}
	return text
}

// report prints diagnostics and failures; with --format json the summary
// goes to out as one JSON document instead.
func (a *app) report(errOut io.Writer, batch *driver.Batch, f convertFlags, out io.Writer, timer *observ.Timer) {
	asJSON := f.format == "json"
	summary := batchSummary{Failed: batch.Failed()}
	for _, r := range batch.Results {
		text := formatDiagnostics(r.Bag, batch.FileSet, f.diags)
		item := fileSummary{
			Input:    r.Input,
			Output:   r.Output,
			Status:   string(pipeline.StatusDone),
			Warnings: r.Bag.HasWarnings(),
			Includes: r.Includes,
		}
		switch {
		case r.Failed():
			item.Status = string(pipeline.StatusError)
			item.Error = r.Err.Error()
		case r.Cached:
			item.Status = string(pipeline.StatusCached)
		}
		if text != "" {
			item.Diagnostics = strings.Split(text, "\n")
		}
		summary.Files = append(summary.Files, item)

		if asJSON {
			continue
		}
		if text != "" && !a.flags.quiet {
			fmt.Fprintln(errOut, text)
		}
		if r.Failed() && !r.Bag.HasErrors() {
			printError(errOut, r.Err)
		}
	}
	if a.flags.timings {
		if asJSON {
			rep := timer.Report()
			summary.Timings = &rep
		} else {
			fmt.Fprint(errOut, timer.Summary())
		}
	}
	if asJSON {
		writeJSON(out, summary)
	}
}
