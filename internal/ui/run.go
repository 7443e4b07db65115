package ui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"sharpswift/internal/driver"
	"sharpswift/internal/pipeline"
)

type batchOutcome struct {
	batch *driver.Batch
	err   error
}

// RunBatch converts jobs while rendering progress to out.
func RunBatch(ctx context.Context, title string, jobs []driver.Job, opts driver.Options, out io.Writer) (*driver.Batch, error) {
	events := make(chan pipeline.Event, 256)
	outcomeCh := make(chan batchOutcome, 1)

	files := make([]string, len(jobs))
	for i, job := range jobs {
		files[i] = job.Input
	}

	go func() {
		optsCopy := opts
		optsCopy.Progress = pipeline.ChannelSink{Ch: events}
		batch, err := driver.ConvertPaths(ctx, jobs, optsCopy)
		outcomeCh <- batchOutcome{batch: batch, err: err}
		close(events)
	}()

	program := tea.NewProgram(NewProgressModel(title, files, events), tea.WithOutput(out), tea.WithInput(nil))
	_, uiErr := program.Run()
	// the view may quit early (Ctrl+C, UI error); workers must never block on a full channel
	go func() {
		for range events {
		}
	}()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.batch, uiErr
	}
	return outcome.batch, outcome.err
}
