// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package hexfmt_test

import (
	"bytes"
	"testing"

	"github.com/absmach/smpp/pkg/smpp/hexfmt"
	"github.com/stretchr/testify/assert"
)

func TestCharsSubstitutesNonPrintable(t *testing.T) {
	got := hexfmt.Chars([]byte{'h', 'i', 0x00, 0x7f, 'x'})
	assert.Equal(t, "hi..x", got)
}

func TestPrettyWritesOneLinePerSixteenBytes(t *testing.T) {
	var buf bytes.Buffer
	hexfmt.Pretty(&buf, make([]byte, 20))
	lines := bytes.Count(buf.Bytes(), []byte("\n"))
	assert.Equal(t, 2, lines)
}
