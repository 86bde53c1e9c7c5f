// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog for the algo-sync server, the periodic sync
// worker and the algosyncctl CLI.
//
// *Logger embeds zerolog.Logger, so the full zerolog API is available.
// Request- and run-scoped loggers travel in the context and are recovered
// with FromContext or FromRequest.
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Logger struct {
	zerolog.Logger
}

// NewLogger builds the JSON logger used by long-running processes. Every
// entry carries role, a timestamp and the calling function under "func".
func NewLogger(role string) *Logger {
	return newJSONLogger(role, os.Stdout)
}

func newJSONLogger(role string, w io.Writer) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerFieldName = "func"
	zerolog.CallerMarshalFunc = func(pc uintptr, _ string, _ int) string {
		return runtime.FuncForPC(pc).Name()
	}

	return &Logger{zerolog.New(w).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()}
}

// NewConsoleLogger builds a human-readable logger for command-line tools.
// Debug entries are dropped unless verbose is set.
func NewConsoleLogger(role string, w io.Writer, verbose bool) *Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	return &Logger{zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly}).
		Level(level).
		With().
		Str("role", role).
		Timestamp().
		Logger()}
}

// Nop discards everything. Used in tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a copy that can be enriched without touching the
// receiver.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// WithUserID returns a child logger tagged with user_id.
func (l *Logger) WithUserID(userID int64) *Logger {
	return &Logger{l.With().Int64("user_id", userID).Logger()}
}

// WithComponent returns a child logger tagged with component.
func (l *Logger) WithComponent(name string) *Logger {
	return &Logger{l.With().Str("component", name).Logger()}
}

// FromRequest returns the logger attached to the request context.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext returns the logger attached to ctx. Without one, zerolog's
// default context logger is returned, so the result is never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
