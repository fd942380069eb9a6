package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options selects the logger implementation and its output.
type Options struct {
	Level   string // debug, info, warn, error (default info)
	Format  string // text, json (default text)
	Backend string // slog, zap (default slog)
	Output  io.Writer
}

// New builds a Logger from opts. The slog backend is the default.
func New(opts Options) (Logger, error) {
	w := opts.Output
	if w == nil {
		w = os.Stderr
	}

	switch strings.ToLower(opts.Backend) {
	case "", "slog":
		return newSlog(opts, w), nil

	case "zap":
		encCfg := zap.NewProductionEncoderConfig()
		encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
		var enc zapcore.Encoder
		if strings.ToLower(opts.Format) == "json" {
			enc = zapcore.NewJSONEncoder(encCfg)
		} else {
			enc = zapcore.NewConsoleEncoder(encCfg)
		}
		core := zapcore.NewCore(enc, zapcore.AddSync(w), parseZapLevel(opts.Level))
		return NewZapLogger(zap.New(core)), nil

	default:
		return nil, fmt.Errorf("unknown log backend %q", opts.Backend)
	}
}

func parseZapLevel(level string) zapcore.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// Discard returns a logger that drops everything.
func Discard() Logger {
	return NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}
