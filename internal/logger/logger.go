// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog for the health-vault server and portal.
// Handlers and services do not hold a logger of their own for a request:
// they take the one the trace middleware stored in the context via
// FromContext or FromRequest.
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// portalLogFile lives next to the portal executable.
const portalLogFile = "logs"

type Logger struct {
	zerolog.Logger
}

// NewLogger writes JSON to stdout. Entries carry the role, a timestamp and
// the calling function under "func".
func NewLogger(role string) *Logger {
	return newLogger(os.Stdout, role)
}

// NewClientLogger keeps log output off the terminal the portal draws on.
func NewClientLogger(role string) *Logger {
	exe, err := os.Executable()
	if err != nil {
		return NewFileLogger(role, portalLogFile)
	}
	return NewFileLogger(role, filepath.Join(filepath.Dir(exe), portalLogFile))
}

// NewFileLogger appends to path, or falls back to stdout when path cannot
// be opened.
func NewFileLogger(role, path string) *Logger {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return newLogger(os.Stdout, role)
	}
	return newLogger(f, role)
}

func newLogger(w io.Writer, role string) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerFieldName = "func"
	zerolog.CallerMarshalFunc = func(pc uintptr, _ string, _ int) string {
		return runtime.FuncForPC(pc).Name()
	}

	return &Logger{zerolog.New(w).With().Str("role", role).Timestamp().Caller().Logger()}
}

func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger copies l so fields can be added without touching l.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

func (l *Logger) WithContext(ctx context.Context) context.Context {
	return l.Logger.WithContext(ctx)
}

func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext never returns nil: without an attached logger zerolog hands
// out its default one.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
