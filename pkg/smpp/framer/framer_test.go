// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package framer_test

import (
	"bufio"
	"bytes"
	"io"
	"testing"

	"github.com/absmach/smpp/pkg/smpp/command"
	"github.com/absmach/smpp/pkg/smpp/framer"
	"github.com/absmach/smpp/pkg/smpp/pdu"
	"github.com/absmach/smpp/pkg/smpp/smpperr"
	"github.com/stretchr/testify/assert"
)

func enquireLink(seq uint32) command.Command {
	return command.Command{ID: command.IDEnquireLink, Status: command.StatusOK, Seq: seq, Body: pdu.Empty{}}
}

func TestWriterThenReaderRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	w := framer.NewWriter(&buf)
	assert.NoError(t, w.WriteCommand(enquireLink(1)))
	assert.NoError(t, w.WriteCommand(enquireLink(2)))

	r := framer.NewReader(&buf, framer.Config{MaxCommandLength: 65536})
	first, err := r.ReadCommand()
	assert.NoError(t, err)
	assert.Equal(t, enquireLink(1), first)

	second, err := r.ReadCommand()
	assert.NoError(t, err)
	assert.Equal(t, enquireLink(2), second)

	_, err = r.ReadCommand()
	assert.Equal(t, io.EOF, err)
}

// TestTwoCommandsPlusTrailingBytes covers scenario S6: a reader fed two
// commands followed by 3 stray trailing bytes reads both commands cleanly
// and then reports an error on the short trailer rather than silently
// dropping it.
func TestTwoCommandsPlusTrailingBytes(t *testing.T) {
	var buf bytes.Buffer
	w := framer.NewWriter(&buf)
	assert.NoError(t, w.WriteCommand(enquireLink(1)))
	assert.NoError(t, w.WriteCommand(enquireLink(2)))
	buf.Write([]byte{0xAA, 0xBB, 0xCC})

	r := framer.NewReader(&buf, framer.Config{MaxCommandLength: 65536})
	first, err := r.ReadCommand()
	assert.NoError(t, err)
	assert.Equal(t, enquireLink(1), first)

	second, err := r.ReadCommand()
	assert.NoError(t, err)
	assert.Equal(t, enquireLink(2), second)

	_, err = r.ReadCommand()
	assert.Error(t, err)
	assert.NotEqual(t, io.EOF, err)
}

func TestReaderRejectsBelowMinLength(t *testing.T) {
	buf := bytes.NewBuffer([]byte{0x00, 0x00, 0x00, 0x0F})
	r := framer.NewReader(buf, framer.Config{MaxCommandLength: 65536})
	_, err := r.ReadCommand()
	assert.Error(t, err)
	kind, ok := smpperr.KindOf(err)
	assert.True(t, ok)
	assert.Equal(t, smpperr.MinLength, kind)
}

func TestReaderRejectsAboveMaxLength(t *testing.T) {
	buf := bytes.NewBuffer([]byte{0x00, 0x01, 0x00, 0x00})
	r := framer.NewReader(buf, framer.Config{MaxCommandLength: 256})
	_, err := r.ReadCommand()
	assert.Error(t, err)
	kind, ok := smpperr.KindOf(err)
	assert.True(t, ok)
	assert.Equal(t, smpperr.MaxLength, kind)
}

func TestSplitFuncTokenizesStream(t *testing.T) {
	var buf bytes.Buffer
	w := framer.NewWriter(&buf)
	assert.NoError(t, w.WriteCommand(enquireLink(1)))
	assert.NoError(t, w.WriteCommand(enquireLink(2)))

	scanner := bufio.NewScanner(&buf)
	scanner.Split(framer.SplitFunc(65536))

	var tokens [][]byte
	for scanner.Scan() {
		tok := append([]byte(nil), scanner.Bytes()...)
		tokens = append(tokens, tok)
	}
	assert.NoError(t, scanner.Err())
	assert.Len(t, tokens, 2)

	cmd, err := command.Decode(tokens[0], len(tokens[0]))
	assert.NoError(t, err)
	assert.Equal(t, enquireLink(1), cmd)
}

func TestSplitFuncReportsBufferTooSmall(t *testing.T) {
	var buf bytes.Buffer
	w := framer.NewWriter(&buf)
	assert.NoError(t, w.WriteCommand(enquireLink(1)))

	scanner := bufio.NewScanner(&buf)
	scanner.Split(framer.SplitFunc(8))

	scanner.Scan()
	assert.Error(t, scanner.Err())
	kind, ok := smpperr.KindOf(scanner.Err())
	assert.True(t, ok)
	assert.Equal(t, smpperr.BufferTooSmall, kind)
}
