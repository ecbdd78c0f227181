// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package framer implements spec.md §4.8's stream framer: length-prefix
// reassembly of Commands out of a byte-oriented transport, in either
// direction. It never looks inside a command's body — that is
// pkg/smpp/command's job — it only knows how to find the next
// command_length-delimited slice.
package framer

// Config is the framer's only runtime knob, loaded the way the teacher's
// consumers/notifiers/smpp/config.go loads transmitter settings.
type Config struct {
	// MaxCommandLength rejects any command_length above this many bytes
	// (spec.md §4.8 step 3's MaxLength check) before the framer commits
	// to buffering that much data.
	MaxCommandLength uint32 `env:"SMPP_FRAMER_MAX_COMMAND_LENGTH" envDefault:"65536"`
}
