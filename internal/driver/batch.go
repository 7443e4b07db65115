package driver

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/cockroachdb/errors"
	"golang.org/x/sync/errgroup"

	"sharpswift/internal/diag"
	"sharpswift/internal/logging"
	"sharpswift/internal/pipeline"
	"sharpswift/internal/source"
)

// Batch is the outcome of ConvertPaths.
type Batch struct {
	FileSet *source.FileSet
	Results []*Result // same order as the jobs
	Timings pipeline.Timings
}

// Failed returns the number of failed files.
func (b *Batch) Failed() int {
	n := 0
	for _, r := range b.Results {
		if r.Failed() {
			n++
		}
	}
	return n
}

// ConvertPaths converts jobs in parallel and writes their outputs unless
// opts.DryRun is set. Per-file failures (load, parse, translate, write,
// output collision) are recorded on the file's Result; the returned error
// is non-nil only when ctx is cancelled.
func ConvertPaths(ctx context.Context, jobs []Job, opts Options) (*Batch, error) {
	batch := &Batch{FileSet: source.NewFileSet(), Results: make([]*Result, len(jobs))}
	if len(jobs) == 0 {
		return batch, nil
	}
	progress := opts.Progress
	if progress == nil {
		progress = pipeline.FuncSink(nil)
	}

	// FileSet is not safe for concurrent writes: load everything first.
	ids := make([]source.FileID, len(jobs))
	loadErrs := make([]error, len(jobs))
	for i, job := range jobs {
		progress.OnEvent(pipeline.Event{File: job.Input, Stage: pipeline.StageLoad, Status: pipeline.StatusQueued})
		start := time.Now()
		id, err := batch.FileSet.Load(job.Input)
		if err != nil {
			// empty placeholder so diagnostics can still name the path
			loadErrs[i] = err
			ids[i] = batch.FileSet.AddVirtual(job.Input, nil)
			continue
		}
		ids[i] = id
		batch.Timings.Add(pipeline.StageLoad, time.Since(start))
	}
	clash := collisions(jobs)

	jobsN := opts.Jobs
	if jobsN <= 0 {
		jobsN = runtime.GOMAXPROCS(0)
	}

	// Результаты: индексы уникальны для каждой горутины, мьютекс не нужен
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobsN, len(jobs)))
	for i, job := range jobs {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			batch.Results[i] = convertJob(gctx, batch.FileSet, job, ids[i], loadErrs[i], clash, i, opts, progress)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		for i, job := range jobs {
			if batch.Results[i] == nil {
				batch.Results[i] = &Result{Input: job.Input, Output: job.Output, Bag: diag.NewBag(opts.MaxDiagnostics), Err: err}
			}
		}
		return batch, err
	}
	for _, r := range batch.Results {
		batch.Timings.Merge(r.Timings)
	}
	return batch, nil
}

func convertJob(ctx context.Context, fs *source.FileSet, job Job, id source.FileID, loadErr error,
	clash map[int]string, idx int, opts Options, progress pipeline.ProgressSink) *Result {
	start := time.Now()
	fail := func(res *Result, stage pipeline.Stage) *Result {
		logging.Logger.Warnw("conversion failed", "file", job.Input, "error", res.Err)
		progress.OnEvent(pipeline.Event{File: job.Input, Stage: stage, Status: pipeline.StatusError, Err: res.Err, Elapsed: time.Since(start)})
		return res
	}

	if loadErr != nil {
		res := &Result{Input: job.Input, Output: job.Output, FileID: id, Bag: diag.NewBag(opts.MaxDiagnostics)}
		res.Err = errors.Wrapf(loadErr, "load %s", job.Input)
		res.Bag.Add(diag.NewError(diag.IOLoadFile, source.Span{File: id}, "failed to load file: "+loadErr.Error()))
		return fail(res, pipeline.StageLoad)
	}
	if first, ok := clash[idx]; ok {
		res := &Result{Input: job.Input, Output: job.Output, FileID: id, Bag: diag.NewBag(opts.MaxDiagnostics)}
		res.Err = errors.Newf("output %s is already written by another input", job.Output)
		res.Bag.Add(diag.NewError(diag.IOOutputCollision, source.Span{File: id},
			"output "+job.Output+" collides with the output of an earlier input").
			WithNote(source.Span{File: id}, "first claimed by "+first))
		return fail(res, pipeline.StageWrite)
	}

	logging.Logger.Infof("Parsing file %s", job.Input)
	progress.OnEvent(pipeline.Event{File: job.Input, Stage: pipeline.StageParse, Status: pipeline.StatusWorking})

	res := ConvertFile(ctx, fs, id, opts)
	res.Input, res.Output = job.Input, job.Output
	if res.Err != nil {
		return fail(res, pipeline.StageTranslate)
	}

	if !opts.DryRun {
		progress.OnEvent(pipeline.Event{File: job.Input, Stage: pipeline.StageWrite, Status: pipeline.StatusWorking})
		wstart := time.Now()
		if err := writeOutput(job.Output, res.Text); err != nil {
			res.Err = err
			res.Bag.Add(diag.NewError(diag.IOWriteFile, source.Span{File: id}, err.Error()))
			return fail(res, pipeline.StageWrite)
		}
		res.Timings.Add(pipeline.StageWrite, time.Since(wstart))
	}

	status := pipeline.StatusDone
	if res.Cached {
		status = pipeline.StatusCached
		logging.Logger.Debugw("served from cache", "file", job.Input)
	}
	logging.Logger.Debugw("converted", "file", job.Input, "output", job.Output, "diagnostics", res.Bag.Len())
	progress.OnEvent(pipeline.Event{File: job.Input, Stage: pipeline.StageWrite, Status: status, Elapsed: time.Since(start)})
	return res
}

func writeOutput(path, text string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrapf(err, "create %s", dir)
		}
	}
	// #nosec G306 -- generated sources are meant to be readable
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return errors.Wrapf(err, "write %s", path)
	}
	return nil
}
