// Package driver runs conversions: it loads C# files, parses them, calls the
// translator and the indentation normalizer, and writes .swift files.
package driver

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/vmihailenco/msgpack/v5"

	"sharpswift/internal/config"
	"sharpswift/internal/indent"
	"sharpswift/internal/pipeline"
	"sharpswift/internal/translate"
	"sharpswift/internal/version"
)

// Options control a conversion run.
type Options struct {
	// Translate.Reporter is ignored; every file gets its own bag.
	Translate        translate.Options
	Indent           indent.Options
	ApplyIndentation bool
	// Strict fails a file that needed a passthrough comment or had syntax errors.
	Strict         bool
	MaxDiagnostics int

	Jobs     int  // <= 0 means GOMAXPROCS
	DryRun   bool // convert but do not write outputs
	Cache    *DiskCache
	Progress pipeline.ProgressSink

	// Fingerprint identifies the settings above that change output; part
	// of every cache key.
	Fingerprint string
}

// DefaultOptions mirrors config.Default.
func DefaultOptions() Options {
	return OptionsFromConfig(config.Default())
}

// OptionsFromConfig builds driver options from a loaded config. The cache
// is left nil; callers open it when cfg.Driver.Cache is set.
func OptionsFromConfig(cfg *config.Config) Options {
	opts := Options{
		Translate: translate.Options{
			Types:          translate.DefaultTypeMap().WithOverrides(cfg.Types),
			Namespaces:     translate.DefaultNamespaceMap().WithOverrides(cfg.Namespaces),
			BaselineImport: cfg.Translate.BaselineImport,
		},
		Indent: indent.Options{
			IndentWidth: cfg.Output.IndentWidth,
			UseTabs:     cfg.Output.IndentStyle == config.IndentTabs,
		},
		ApplyIndentation: cfg.Output.ApplyIndentation,
		Strict:           cfg.Translate.Strict,
		Jobs:             cfg.Driver.Jobs,
	}
	opts.Fingerprint = fingerprint(cfg)
	return opts
}

type fingerprintInput struct {
	Version    string
	Output     config.OutputConfig
	Translate  config.TranslateConfig
	Types      map[string]string
	Namespaces map[string]string
}

func fingerprint(cfg *config.Config) string {
	h := sha256.New()
	enc := msgpack.NewEncoder(h)
	enc.SetSortMapKeys(true)
	// hash.Hash never fails to write
	_ = enc.Encode(fingerprintInput{
		Version:    version.Version,
		Output:     cfg.Output,
		Translate:  cfg.Translate,
		Types:      cfg.Types,
		Namespaces: cfg.Namespaces,
	})
	return hex.EncodeToString(h.Sum(nil))
}
