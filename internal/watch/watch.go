// Package watch re-converts C# files as they change on disk.
package watch

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/fsnotify/fsnotify"

	"sharpswift/internal/driver"
	"sharpswift/internal/logging"
)

// DefaultDebounce groups the bursts of events editors produce on save.
const DefaultDebounce = 150 * time.Millisecond

// Callback receives every batch converted by the watcher.
type Callback func(*driver.Batch)

// Config describes what to watch.
type Config struct {
	Root      string
	Output    string // same meaning as the convert output argument
	Recursive bool
	Debounce  time.Duration
	Options   driver.Options
}

// Watch converts changed .cs files under cfg.Root until ctx is cancelled.
// New directories are added to the watch list when Recursive is set.
func Watch(ctx context.Context, cfg Config, cb Callback) error {
	if cfg.Debounce <= 0 {
		cfg.Debounce = DefaultDebounce
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "create watcher")
	}
	defer w.Close()

	if err := addDirs(w, cfg.Root, cfg.Recursive); err != nil {
		return errors.Wrapf(err, "watch %s", cfg.Root)
	}
	logging.Logger.Infow("watcher: started", "root", cfg.Root)

	pending := make(map[string]struct{})
	var timer *time.Timer
	var fire <-chan time.Time
	schedule := func() {
		if timer == nil {
			timer = time.NewTimer(cfg.Debounce)
			fire = timer.C
			return
		}
		timer.Reset(cfg.Debounce)
	}

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			logging.Logger.Infow("watcher: stopped")
			return nil

		case <-fire:
			timer, fire = nil, nil
			flush(ctx, cfg, pending, cb)
			pending = make(map[string]struct{})

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ev.Op&fsnotify.Create != 0 && cfg.Recursive {
				if info, statErr := os.Stat(ev.Name); statErr == nil && info.IsDir() {
					if addErr := addDirs(w, ev.Name, true); addErr != nil {
						logging.Logger.Warnw("watcher: add new dir failed", "path", ev.Name, "error", addErr)
					}
					for _, file := range sources(ev.Name) {
						pending[file] = struct{}{}
					}
					schedule()
					continue
				}
			}
			if !driver.IsSource(ev.Name) {
				continue
			}
			switch {
			case ev.Op&(fsnotify.Create|fsnotify.Write) != 0:
				pending[ev.Name] = struct{}{}
				schedule()
			case ev.Op&(fsnotify.Remove|fsnotify.Rename) != 0:
				// the generated .swift file is left in place
				delete(pending, ev.Name)
				logging.Logger.Debugw("watcher: source removed", "path", ev.Name)
			}

		case watchErr, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logging.Logger.Errorw("watcher: error", "error", watchErr)
		}
	}
}

func flush(ctx context.Context, cfg Config, pending map[string]struct{}, cb Callback) {
	if len(pending) == 0 {
		return
	}
	files := make([]string, 0, len(pending))
	for file := range pending {
		files = append(files, file)
	}
	sort.Strings(files)

	jobs := make([]driver.Job, 0, len(files))
	for _, file := range files {
		jobs = append(jobs, driver.DirJob(cfg.Root, file, cfg.Output))
	}
	batch, err := driver.ConvertPaths(ctx, jobs, cfg.Options)
	if err != nil {
		logging.Logger.Warnw("watcher: batch interrupted", "error", err)
	}
	if cb != nil && batch != nil {
		cb(batch)
	}
}

func addDirs(w *fsnotify.Watcher, root string, recursive bool) error {
	if !recursive {
		return w.Add(root)
	}
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return w.Add(path)
		}
		return nil
	})
}

func sources(dir string) []string {
	files, err := driver.ListSources(dir, true)
	if err != nil {
		return nil
	}
	return files
}
