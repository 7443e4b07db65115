// Package config loads sharpswift.toml.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// FileName is the name looked up by Find.
const FileName = "sharpswift.toml"

// Indent styles.
const (
	IndentSpaces = "spaces"
	IndentTabs   = "tabs"
)

// Config is the merged configuration. Zero-valued sections are filled by
// Default; fields not present in the file keep their defaults.
type Config struct {
	Output     OutputConfig      `toml:"output"`
	Translate  TranslateConfig   `toml:"translate"`
	Types      map[string]string `toml:"types"`
	Namespaces map[string]string `toml:"namespaces"`
	Driver     DriverConfig      `toml:"driver"`

	// Path of the file the config came from; empty for defaults.
	Path string `toml:"-"`
}

type OutputConfig struct {
	ApplyIndentation bool   `toml:"apply_indentation"`
	IndentStyle      string `toml:"indent_style"`
	IndentWidth      int    `toml:"indent_width"`
}

func (c *OutputConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.IndentStyle, validation.Required, validation.In(IndentSpaces, IndentTabs)),
		validation.Field(&c.IndentWidth, validation.Required, validation.Min(1), validation.Max(16)),
	)
}

type TranslateConfig struct {
	Strict         bool   `toml:"strict"`
	BaselineImport string `toml:"baseline_import"`
}

func (c *TranslateConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.BaselineImport, validation.By(identifier)),
	)
}

type DriverConfig struct {
	Jobs  int  `toml:"jobs"`
	Cache bool `toml:"cache"`
}

func (c *DriverConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Jobs, validation.Min(0), validation.Max(1024)),
	)
}

// Validate checks every section.
func (c *Config) Validate() error {
	if err := c.Output.Validate(); err != nil {
		return errors.Wrap(err, "output")
	}
	if err := c.Translate.Validate(); err != nil {
		return errors.Wrap(err, "translate")
	}
	if err := c.Driver.Validate(); err != nil {
		return errors.Wrap(err, "driver")
	}
	for from, to := range c.Types {
		if strings.TrimSpace(from) == "" || strings.TrimSpace(to) == "" {
			return errors.Newf("types: empty mapping %q = %q", from, to)
		}
	}
	for from, to := range c.Namespaces {
		if err := identifier(from); err != nil {
			return errors.Wrapf(err, "namespaces: key %q", from)
		}
		if strings.TrimSpace(to) == "" {
			return errors.Newf("namespaces: empty target for %q", from)
		}
	}
	return nil
}

// identifier accepts dotted names such as System.Collections.
func identifier(value any) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	for _, part := range strings.Split(s, ".") {
		if part == "" {
			return errors.New("must be a dotted identifier")
		}
		for i, r := range part {
			letter := r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r > 0x7f
			if !letter && (i == 0 || r < '0' || r > '9') {
				return errors.New("must be a dotted identifier")
			}
		}
	}
	return nil
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			ApplyIndentation: true,
			IndentStyle:      IndentSpaces,
			IndentWidth:      4,
		},
		Translate: TranslateConfig{BaselineImport: "DNSwift"},
		Driver:    DriverConfig{Cache: true},
	}
}

// Find walks up from startDir looking for sharpswift.toml.
func Find(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, errors.Wrap(err, "failed to resolve start directory")
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, errors.Wrapf(err, "failed to stat %q", candidate)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load reads and validates one config file on top of Default.
func Load(path string) (*Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, errors.Wrapf(err, "%s: failed to parse TOML", path)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, errors.WithHint(
			errors.Newf("%s: unknown key %s", path, undecoded[0]),
			"known sections are [output], [translate], [types], [namespaces] and [driver]",
		)
	}
	if meta.IsDefined("output", "indent_style") {
		cfg.Output.IndentStyle = strings.ToLower(strings.TrimSpace(cfg.Output.IndentStyle))
	}
	if meta.IsDefined("translate", "baseline_import") {
		cfg.Translate.BaselineImport = strings.TrimSpace(cfg.Translate.BaselineImport)
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}
	cfg.Path = path
	return cfg, nil
}

// Resolve loads the explicit path when given, otherwise the nearest
// sharpswift.toml above startDir, otherwise the defaults.
func Resolve(explicit, startDir string) (*Config, error) {
	if explicit != "" {
		return Load(explicit)
	}
	path, ok, err := Find(startDir)
	if err != nil {
		return nil, err
	}
	if !ok {
		return Default(), nil
	}
	return Load(path)
}
