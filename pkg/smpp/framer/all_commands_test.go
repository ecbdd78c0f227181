// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package framer_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/absmach/smpp/pkg/smpp/framer"
	"github.com/absmach/smpp/pkg/smpp/smpptest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAllCommandsRoundTripThroughFramer mirrors rusmpp-core's
// framez::tests::encode_decode: every command smpptest.TestCommands
// returns is written through one Writer and must come back byte-for-byte
// equal, in order, through one Reader sharing the same stream.
func TestAllCommandsRoundTripThroughFramer(t *testing.T) {
	cmds := smpptest.TestCommands()

	var buf bytes.Buffer
	w := framer.NewWriter(&buf)
	for _, cmd := range cmds {
		require.NoError(t, w.WriteCommand(cmd))
	}

	r := framer.NewReader(&buf, framer.Config{MaxCommandLength: 1 << 20})
	for i, want := range cmds {
		got, err := r.ReadCommand()
		require.NoError(t, err, "command %d (%s)", i, want.ID)
		assert.Equal(t, want, got, "command %d (%s)", i, want.ID)
	}

	_, err := r.ReadCommand()
	assert.Equal(t, io.EOF, err)
}
