// SPDX-License-Identifier: EPL-2.0

// Package logging builds the structured logger used by the command line tool.
package logging

import (
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ErrInvalidLevel is returned for a level name zap does not know.
var ErrInvalidLevel = errors.New("invalid log level")

type settings struct {
	level      zapcore.Level
	out        zapcore.WriteSyncer
	callerSkip int
}

// Option configures New.
type Option func(*settings) error

// WithLevel sets the minimum level by name: debug, info, warn, error,
// dpanic, panic or fatal. The empty name means info.
func WithLevel(name string) Option {
	return func(s *settings) error {
		if name == "" {
			s.level = zapcore.InfoLevel
			return nil
		}

		level, err := zapcore.ParseLevel(name)
		if err != nil {
			return fmt.Errorf("%w: %q", ErrInvalidLevel, name)
		}
		s.level = level
		return nil
	}
}

// WithOutput sends log lines to w instead of standard error.
func WithOutput(w io.Writer) Option {
	return func(s *settings) error {
		s.out = zapcore.AddSync(w)
		return nil
	}
}

// WithCallerSkip skips extra stack frames when reporting the caller.
func WithCallerSkip(skip int) Option {
	return func(s *settings) error {
		s.callerSkip = skip
		return nil
	}
}

// New returns a JSON logger with zap's production encoder settings.
func New(opts ...Option) (*zap.Logger, error) {
	s := settings{
		level: zapcore.InfoLevel,
		out:   zapcore.Lock(os.Stderr),
	}
	for _, opt := range opts {
		if err := opt(&s); err != nil {
			return nil, err
		}
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		s.out,
		zap.NewAtomicLevelAt(s.level),
	)

	return zap.New(core, zap.AddCaller(), zap.AddCallerSkip(s.callerSkip)), nil
}
