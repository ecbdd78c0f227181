// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

//go:build metrics

// Package smppmetrics is an optional, build-tagged Prometheus
// instrumentation layer for pkg/smpp/framer. It is never required by the
// core decode/encode paths — spec.md's feature list does not call for
// metrics at all — but it extends the teacher's pervasive Prometheus use
// (e.g. lora/api/metrics.go) to this module's one natural seam: the
// framer's per-command event hook.
package smppmetrics

import (
	"github.com/absmach/smpp/pkg/smpp/framer"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// CommandsFramed counts commands the framer successfully decoded, by
	// command-id.
	CommandsFramed = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "smpp",
		Subsystem: "framer",
		Name:      "commands_framed_total",
		Help:      "Number of commands successfully framed off the wire, by command id.",
	}, []string{"command_id"})

	// DecodeErrors counts framing/decode failures.
	DecodeErrors = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "smpp",
		Subsystem: "framer",
		Name:      "decode_errors_total",
		Help:      "Number of commands that failed to frame or decode.",
	})
)

func init() {
	prometheus.MustRegister(CommandsFramed, DecodeErrors)
}

// Hook returns a framer.Event callback suitable for framer.Reader.OnEvent
// that records CommandsFramed/DecodeErrors.
func Hook() func(framer.Event) {
	return func(ev framer.Event) {
		if ev.Err != nil {
			DecodeErrors.Inc()
			return
		}
		CommandsFramed.WithLabelValues(ev.ID.String()).Inc()
	}
}
