package main

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"sharpswift/internal/driver"
	"sharpswift/internal/indent"
	"sharpswift/internal/logging"
)

func newIndentCmd(a *app) *cobra.Command {
	var check bool
	cmd := &cobra.Command{
		Use:   "indent [flags] <file.swift>...",
		Short: "Re-indent Swift files in place",
		Long:  `Re-indent Swift files by brace depth. With --check nothing is written and the command fails when a file would change.`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runIndent(cmd, args, check)
		},
	}
	cmd.Flags().BoolVar(&check, "check", false, "only report files whose indentation would change")
	return cmd
}

func (a *app) runIndent(cmd *cobra.Command, paths []string, check bool) error {
	opts := driver.OptionsFromConfig(a.cfg).Indent
	changed, failed := 0, 0
	for _, path := range paths {
		content, err := os.ReadFile(path)
		if err != nil {
			printError(cmd.ErrOrStderr(), errors.Wrapf(err, "read %s", path))
			failed++
			continue
		}
		out, bad := indent.Apply(string(content), opts)
		if bad != nil {
			logging.Logger.Warnw("unterminated literal or comment", "path", path, "detail", bad.String())
		}
		if out == string(content) {
			continue
		}
		changed++
		if check {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", path)
			continue
		}
		if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
			printError(cmd.ErrOrStderr(), errors.Wrapf(err, "write %s", path))
			failed++
			continue
		}
		logging.Logger.Infow("re-indented", "path", path)
	}
	if failed > 0 {
		return errFailed
	}
	if check && changed > 0 {
		return errors.WithHint(errors.Newf("%d file(s) need re-indenting", changed), "run without --check to rewrite them")
	}
	return nil
}
