// Package logging holds the process-wide zap logger.
package logging

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Logger is safe to use before Initialize: it starts as a no-op.
	Logger *zap.SugaredLogger
	// JSONOutput is set when Initialize selected the JSON encoder.
	JSONOutput bool
)

func init() {
	Logger = zap.NewNop().Sugar()
}

// Options controls Initialize.
type Options struct {
	JSON    bool
	Verbose bool // debug level instead of info
	Quiet   bool // warnings and errors only
	Output  io.Writer
}

// Initialize replaces the global logger. Logs go to stderr by default so
// that converted text written to stdout stays clean.
func Initialize(opts Options) error {
	JSONOutput = opts.JSON

	level := zap.NewAtomicLevelAt(levelFor(opts))
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	var enc zapcore.Encoder
	if opts.JSON {
		cfg := zap.NewProductionEncoderConfig()
		cfg.EncodeTime = zapcore.ISO8601TimeEncoder
		enc = zapcore.NewJSONEncoder(cfg)
	} else {
		// human-readable: level and message only
		cfg := zapcore.EncoderConfig{
			MessageKey:       "msg",
			LevelKey:         "level",
			EncodeLevel:      zapcore.CapitalColorLevelEncoder,
			ConsoleSeparator: " ",
		}
		if _, ok := out.(*os.File); !ok {
			cfg.EncodeLevel = zapcore.CapitalLevelEncoder
		}
		enc = zapcore.NewConsoleEncoder(cfg)
	}

	Logger = zap.New(zapcore.NewCore(enc, zapcore.AddSync(out), level)).Sugar()
	return nil
}

func levelFor(opts Options) zapcore.Level {
	switch {
	case opts.Verbose:
		return zap.DebugLevel
	case opts.Quiet:
		return zap.WarnLevel
	default:
		return zap.InfoLevel
	}
}

// Sync flushes buffered entries; errors from syncing a terminal are ignored.
func Sync() {
	_ = Logger.Sync()
}
