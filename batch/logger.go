// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: ambient logging convention grounded on moby-moby's go.mod
// dependency on github.com/sirupsen/logrus.

package batch

import (
	"github.com/sirupsen/logrus"
)

// ProgressFunc is invoked once per completed task in Phase 3, plus a final
// call with 100 (spec §6, progress_cb).
type ProgressFunc func(percent int)

// Logger is the log_cb contract from spec §6: a sink for human-readable
// status and error lines, invoked only from Phase 3 (single-threaded, so
// implementations need no re-entrancy guard).
type Logger interface {
	Logf(format string, args ...any)
}

// LogrusLogger adapts a *logrus.Logger to the Logger interface. It is the
// default used by cmd/pxlz77.
type LogrusLogger struct {
	Logger *logrus.Logger
}

// NewLogrusLogger returns a LogrusLogger wrapping a fresh, text-formatted
// *logrus.Logger writing to its default output (os.Stderr).
func NewLogrusLogger() *LogrusLogger {
	l := logrus.New()
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return &LogrusLogger{Logger: l}
}

func (l *LogrusLogger) Logf(format string, args ...any) {
	l.Logger.Infof(format, args...)
}

// NopLogger discards every message. Useful for tests and for callers that
// only care about progress.
type NopLogger struct{}

func (NopLogger) Logf(string, ...any) {}
