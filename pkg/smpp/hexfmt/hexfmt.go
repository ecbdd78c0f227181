// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package hexfmt renders raw command/TLV bytes for humans: a colourised
// hex-and-ASCII dump (spec.md §6's "pretty-hex-fmt" feature) and a
// printable-ASCII-only rendering ("char-fmt"). No other package in this
// repository imports it; the codec packages never do.
package hexfmt

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

const bytesPerLine = 16

// Pretty writes a classic hexdump -C style rendering of b to w: an
// offset column, hex byte columns colourised by fatih/color the way the
// teacher's cli/utils.go colourises its own CLI output, and a trailing
// ASCII gutter.
func Pretty(w io.Writer, b []byte) {
	offset := color.New(color.FgBlue)
	hex := color.New(color.FgYellow)

	for i := 0; i < len(b); i += bytesPerLine {
		end := i + bytesPerLine
		if end > len(b) {
			end = len(b)
		}
		line := b[i:end]

		fmt.Fprint(w, offset.Sprintf("%08x  ", i))
		for j := 0; j < bytesPerLine; j++ {
			if j < len(line) {
				fmt.Fprint(w, hex.Sprintf("%02x ", line[j]))
			} else {
				fmt.Fprint(w, "   ")
			}
			if j == 7 {
				fmt.Fprint(w, " ")
			}
		}
		fmt.Fprintf(w, " |%s|\n", Chars(line))
	}
}

// Chars renders b as printable ASCII, substituting '.' for every byte
// outside the 0x20-0x7e printable range.
func Chars(b []byte) string {
	out := make([]byte, len(b))
	for i, c := range b {
		if c >= 0x20 && c < 0x7f {
			out[i] = c
		} else {
			out[i] = '.'
		}
	}
	return string(out)
}
