// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog.Logger with the constructors and
// context helpers used by the trustme server and client.
//
// Secrets never reach the log: master passwords, verifiers, derived keys,
// TOTP secrets and bearer tokens must not be passed to any field helper.
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

// ClientLogFileName is created next to the client executable.
const ClientLogFileName = "trustme-client.log"

// Logger embeds zerolog.Logger so the full zerolog API is available directly.
type Logger struct {
	zerolog.Logger
}

// NewLogger returns a JSON logger writing to stdout with "role", "time" and
// "func" (caller function name) fields on every entry.
func NewLogger(role string) *Logger {
	return newLogger(os.Stdout, role)
}

// NewClientLogger is like [NewLogger] but writes to [ClientLogFileName] in the
// executable's directory, so log lines do not interleave with CLI output.
// It falls back to stderr when the file cannot be opened.
func NewClientLogger(role string) *Logger {
	var out io.Writer = os.Stderr

	if execPath, err := os.Executable(); err == nil {
		logPath := filepath.Join(filepath.Dir(execPath), ClientLogFileName)
		if f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600); err == nil {
			out = f
		}
	}

	return newLogger(out, role)
}

func newLogger(w io.Writer, role string) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"

	logger := zerolog.New(w).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// Nop returns a *Logger that discards all output. Used in tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a copy that can be enriched without touching the
// receiver.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// FromRequest returns the request-scoped logger attached by the trace-id
// middleware.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext returns the logger stored in ctx. Without one, zerolog's
// default logger is returned, so the result is never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
