// Package logger builds the zap logger used by the CLI.
package logger

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures New.
type Options struct {
	// Level is a zap level name: debug, info, warn, error.
	Level string
	// File, when set, receives JSON logs rotated by lumberjack.
	File string
}

// New returns a sugared logger writing human-readable lines to stderr and,
// if opt.File is set, JSON lines to a rotated file.
func New(opt Options) (*zap.SugaredLogger, error) {
	atom := zap.NewAtomicLevel()
	if opt.Level != "" {
		if err := atom.UnmarshalText([]byte(opt.Level)); err != nil {
			return nil, errors.Wrapf(err, "log level %q", opt.Level)
		}
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = ""
	encCfg.CallerKey = ""

	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.Lock(os.Stderr), atom),
	}

	if opt.File != "" {
		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
			zapcore.AddSync(newRotator(opt.File)),
			atom,
		))
	}

	return zap.New(zapcore.NewTee(cores...)).Sugar(), nil
}

func newRotator(file string) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:   filepath.Clean(file),
		MaxSize:    10, // megabytes
		MaxBackups: 10,
		MaxAge:     5, // days
	}
}
