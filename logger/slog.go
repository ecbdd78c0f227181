//
// Copyright (c) 2018
// Mainflux
//
// SPDX-License-Identifier: Apache-2.0
//

package logger

import (
	"io"
	"log/slog"
)

var _ Logger = (*slogLogger)(nil)

type slogLogger struct {
	s *slog.Logger
}

// NewSlog returns a Logger backed by log/slog, a second backend alongside
// the go-kit/log one above — the way the original crate this codec was
// ported from offers a choice between tracing/log/defmt.
func NewSlog(out io.Writer) Logger {
	return &slogLogger{s: slog.New(slog.NewJSONHandler(out, nil))}
}

func (l slogLogger) Info(msg string) {
	l.s.Info(msg)
}

func (l slogLogger) Warn(msg string) {
	l.s.Warn(msg)
}

func (l slogLogger) Error(msg string) {
	l.s.Error(msg)
}
