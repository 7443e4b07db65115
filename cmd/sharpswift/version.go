package main

import (
	"fmt"
	"runtime"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"sharpswift/internal/version"
)

type versionInfo struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit,omitempty"`
	BuildDate string `json:"build_date,omitempty"`
	GoVersion string `json:"go_version"`
}

func newVersionCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			info := versionInfo{
				Version:   version.Version,
				GitCommit: version.GitCommit,
				BuildDate: version.BuildDate,
				GoVersion: runtime.Version(),
			}
			out := cmd.OutOrStdout()
			switch format {
			case "json":
				writeJSON(out, info)
			case "pretty", "":
				fmt.Fprintf(out, "sharpswift %s\n", version.Pretty())
				if c := version.Short(); c != "" {
					fmt.Fprintf(out, "  commit: %s\n", c)
				}
				if info.BuildDate != "" {
					fmt.Fprintf(out, "  built:  %s\n", info.BuildDate)
				}
				fmt.Fprintf(out, "  go:     %s\n", info.GoVersion)
			default:
				return errors.Newf("unsupported format %q (must be pretty or json)", format)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", "pretty", "output format (pretty|json)")
	return cmd
}
