// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger that adds
// convenience constructors and context-aware helpers used by the safety
// rules host process.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) are available directly on *Logger.
//
// [Config] is the logging section of the safety rules configuration file.
// The configuration core only carries it; [New] turns it into a logger.
package logger

import (
	"context"
	"io"
	"os"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is a thin wrapper around zerolog.Logger.
// Embedding zerolog.Logger exposes the full zerolog API while allowing the
// application to add helper methods without modifying the upstream type.
type Logger struct {
	zerolog.Logger
}

// NewLogger constructs a *Logger for the given role label
// (e.g. "safety-rules").
//
// The logger is configured with:
//   - level Debug;
//   - a "role" field set to role;
//   - a timestamp field added to every log entry;
//   - a "func" caller field that records the fully-qualified function name
//     (instead of the default file:line format) for easier log navigation.
//
// Output is written to os.Stdout in JSON format.
func NewLogger(role string) *Logger {
	configureCaller()

	return &Logger{newZerolog(os.Stdout, role).Level(zerolog.DebugLevel)}
}

// New constructs a *Logger for role from cfg, writing to w.
//
// When cfg.IsAsync is set, entries pass through a non-blocking ring buffer
// of cfg.ChanSize entries; entries are dropped rather than blocking the
// caller when the buffer is full. The returned io.Closer flushes and stops
// the buffer and must be closed before the process exits. For synchronous
// loggers it is a no-op.
//
// New lowers the zerolog global level to Trace, which caps every logger,
// so that cfg.Level alone decides what is written.
func New(role string, cfg Config, w io.Writer) (*Logger, io.Closer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	level, _ := cfg.ParseLevel()
	zerolog.SetGlobalLevel(zerolog.TraceLevel)
	configureCaller()

	out, closer := cfg.writer(w)
	logger := newZerolog(out, role).Level(level)

	return &Logger{logger}, closer, nil
}

func newZerolog(w io.Writer, role string) zerolog.Logger {
	return zerolog.New(w).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()
}

func configureCaller() {
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name() // return function name
	}
	zerolog.CallerFieldName = "func"
}

// Nop returns a *Logger that discards all log output.
// It is intended for use in tests and other contexts where logging is
// undesirable or would produce noise.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// WithContext attaches the logger to ctx so that [FromContext] returns it.
func (l *Logger) WithContext(ctx context.Context) context.Context {
	return l.Logger.WithContext(ctx)
}

// FromContext extracts the zerolog.Logger stored in ctx by zerolog's log.Ctx
// helper and returns it as a *Logger.
//
// If no logger has been attached to ctx, zerolog returns its global logger,
// so this function never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
