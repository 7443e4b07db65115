package main

import (
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"sharpswift/internal/config"
	"sharpswift/internal/logging"
	"sharpswift/internal/prof"
	"sharpswift/internal/version"
)

// errFailed signals that per-file problems were already reported.
var errFailed = errors.New("conversion failed")

type globalFlags struct {
	configPath     string
	color          string
	quiet          bool
	verbose        bool
	timings        bool
	logJSON        bool
	maxDiagnostics int
	profile        prof.Options
}

type app struct {
	flags   globalFlags
	cfg     *config.Config
	profile *prof.Session
}

func newRootCmd() *cobra.Command {
	return (&app{}).rootCmd()
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "sharpswift",
		Short:         "Translate C# sources into Swift",
		Long:          `sharpswift converts C# classes, members, statements and expressions into Swift source and re-indents the result`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	// Глобальные флаги
	pf := root.PersistentFlags()
	pf.StringVar(&a.flags.configPath, "config", "", "path to sharpswift.toml (default: nearest one above the working directory)")
	pf.StringVar(&a.flags.color, "color", "auto", "colorize output (auto|on|off)")
	pf.BoolVar(&a.flags.quiet, "quiet", false, "suppress non-essential output")
	pf.BoolVar(&a.flags.verbose, "verbose", false, "log debug details")
	pf.BoolVar(&a.flags.timings, "timings", false, "show timing information")
	pf.BoolVar(&a.flags.logJSON, "log-json", false, "emit logs as JSON")
	pf.IntVar(&a.flags.maxDiagnostics, "max-diagnostics", 100, "maximum number of diagnostics kept per file")
	pf.StringVar(&a.flags.profile.CPU, "cpu-profile", "", "write a CPU profile to the given file")
	pf.StringVar(&a.flags.profile.Mem, "mem-profile", "", "write a heap profile to the given file")
	pf.StringVar(&a.flags.profile.Trace, "exec-trace", "", "write a runtime execution trace to the given file")

	root.AddCommand(newConvertCmd(a))
	root.AddCommand(newIndentCmd(a))
	root.AddCommand(newWatchCmd(a))
	root.AddCommand(newVersionCmd())
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	switch a.flags.color {
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	case "auto", "":
		color.NoColor = !isTerminal(os.Stdout)
	default:
		return errors.Newf("invalid --color value %q (expected auto|on|off)", a.flags.color)
	}
	if a.flags.quiet && a.flags.verbose {
		return errors.New("--quiet and --verbose cannot be used together")
	}
	if err := logging.Initialize(logging.Options{
		JSON:    a.flags.logJSON,
		Verbose: a.flags.verbose,
		Quiet:   a.flags.quiet,
		Output:  cmd.ErrOrStderr(),
	}); err != nil {
		return err
	}

	wd, err := os.Getwd()
	if err != nil {
		return errors.Wrap(err, "working directory")
	}
	cfg, err := config.Resolve(a.flags.configPath, wd)
	if err != nil {
		return err
	}
	if cfg.Path != "" {
		logging.Logger.Debugw("config loaded", "path", cfg.Path)
	}
	a.cfg = cfg

	if a.flags.profile.Enabled() {
		session, err := prof.Start(a.flags.profile)
		if err != nil {
			return err
		}
		a.profile = session
	}
	return nil
}

// main builds the command tree and exits with status 1 on any error.
func main() {
	a := &app{}
	err := a.rootCmd().Execute()
	if stopErr := a.profile.Stop(); stopErr != nil && err == nil {
		err = stopErr
	}
	logging.Sync()
	if err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}
}

func printError(w io.Writer, err error) {
	if errors.Is(err, errFailed) {
		return
	}
	fmt.Fprintf(w, "%s %v\n", color.New(color.FgRed, color.Bold).Sprint("error:"), err)
	for _, hint := range errors.GetAllHints(err) {
		fmt.Fprintf(w, "%s %s\n", color.New(color.FgCyan).Sprint("hint:"), hint)
	}
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
