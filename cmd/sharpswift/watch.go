package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"sharpswift/internal/diag"
	"sharpswift/internal/driver"
	"sharpswift/internal/logging"
	"sharpswift/internal/watch"
)

func newWatchCmd(a *app) *cobra.Command {
	var (
		output    string
		recursive bool
		noIndent  bool
	)
	cmd := &cobra.Command{
		Use:   "watch [flags] <dir>",
		Short: "Convert .cs files of a directory whenever they change",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := driver.OptionsFromConfig(a.cfg)
			opts.MaxDiagnostics = a.flags.maxDiagnostics
			if noIndent {
				opts.ApplyIndentation = false
			}
			parent := cmd.Context()
			if parent == nil {
				parent = context.Background()
			}
			ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
			defer stop()

			errOut := cmd.ErrOrStderr()
			cb := func(b *driver.Batch) {
				for _, r := range b.Results {
					if text := diag.FormatShort(r.Bag.Items(), b.FileSet, true); text != "" {
						fmt.Fprintln(errOut, text)
					}
					if r.Failed() && !r.Bag.HasErrors() {
						printError(errOut, r.Err)
					}
				}
				logging.Logger.Infow("watcher: converted", "files", len(b.Results), "failed", b.Failed())
			}
			return watch.Watch(ctx, watch.Config{
				Root:      args[0],
				Output:    output,
				Recursive: recursive,
				Options:   opts,
			}, cb)
		},
	}
	cmd.Flags().StringVar(&output, "output", "", "output directory (default: next to the sources)")
	cmd.Flags().BoolVar(&recursive, "recursive", false, "watch subdirectories too")
	cmd.Flags().BoolVar(&noIndent, "noindent", false, "skip the indentation pass")
	return cmd
}
