// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package framer

import (
	"bufio"
	"io"

	"github.com/absmach/smpp/pkg/smpp/command"
	"github.com/absmach/smpp/pkg/smpp/ioutil"
	"github.com/absmach/smpp/pkg/smpp/smpperr"
)

const (
	lengthPrefixSize = 4
	minCommandLength = 16
)

// Reader reassembles Commands out of a byte stream (spec.md §4.8's decode
// FSM). It holds no buffer of its own beyond what bufio.Reader already
// does — each command's body is allocated fresh at its known length,
// so an over-long command is reported as MaxLength by the MaxCommandLength
// check, never as a fixed-capacity overrun (see SplitFunc for an adapter
// where a caller-owned fixed buffer is involved).
type Reader struct {
	r       *bufio.Reader
	cfg     Config
	OnEvent func(Event)
}

// Event is the instrumentation hook point pkg/smpp/smppmetrics wires
// into; the pure framer never constructs one itself beyond calling
// OnEvent when set.
type Event struct {
	ID  command.ID
	Err error
}

// NewReader returns a Reader pulling bytes from r, enforcing cfg's
// MaxCommandLength.
func NewReader(r io.Reader, cfg Config) *Reader {
	return &Reader{r: bufio.NewReader(r), cfg: cfg}
}

// ReadCommand implements spec.md §4.8's decode FSM: read the 4-byte
// length prefix, validate it, read the remaining command_length-4 bytes,
// and decode. Returns io.EOF only when the stream ends cleanly before any
// bytes of the next command have been read; an end-of-stream in the
// middle of a command surfaces as a wrapped UnexpectedEOF.
func (fr *Reader) ReadCommand() (command.Command, error) {
	var lenBuf [lengthPrefixSize]byte
	if _, err := io.ReadFull(fr.r, lenBuf[:]); err != nil {
		if err == io.EOF {
			return command.Command{}, io.EOF
		}
		return command.Command{}, smpperr.New(smpperr.UnexpectedEOF, "framer: reading length prefix: %v", err)
	}
	length, _, _ := ioutil.GetUint32(lenBuf[:])

	if err := checkLength(length, fr.cfg.MaxCommandLength); err != nil {
		fr.emit(0, err)
		return command.Command{}, err
	}

	body := make([]byte, length)
	copy(body, lenBuf[:])
	if _, err := io.ReadFull(fr.r, body[lengthPrefixSize:]); err != nil {
		wrapped := smpperr.New(smpperr.UnexpectedEOF, "framer: reading %d-byte command body: %v", length-lengthPrefixSize, err)
		fr.emit(0, wrapped)
		return command.Command{}, wrapped
	}

	cmd, err := command.Decode(body, int(length))
	fr.emit(cmd.ID, err)
	if err != nil {
		return command.Command{}, err
	}
	return cmd, nil
}

func (fr *Reader) emit(id command.ID, err error) {
	if fr.OnEvent != nil {
		fr.OnEvent(Event{ID: id, Err: err})
	}
}

// checkLength implements spec.md §4.8 step 3's three rejections.
func checkLength(length uint32, max uint32) error {
	if length < minCommandLength {
		return smpperr.New(smpperr.MinLength, "framer: command_length %d below %d-byte header minimum", length, minCommandLength)
	}
	if max > 0 && length > max {
		return smpperr.New(smpperr.MaxLength, "framer: command_length %d exceeds configured maximum %d", length, max)
	}
	return nil
}

// Writer emits Commands onto a byte stream (spec.md §4.8's encode side):
// compute cmd.Length(), write it, done — Command.Encode already writes
// its own length prefix (spec.md §4.6's command_length field).
type Writer struct {
	w io.Writer
}

// NewWriter returns a Writer that writes commands to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// WriteCommand encodes cmd and writes it to the underlying stream.
func (fw *Writer) WriteCommand(cmd command.Command) error {
	buf := make([]byte, cmd.Length())
	cmd.Encode(buf)
	_, err := fw.w.Write(buf)
	return err
}

// SplitFunc returns a bufio.SplitFunc that tokenizes a byte stream into
// raw command_length-delimited slices (header + body, undecoded),
// letting a caller drive a bufio.Scanner directly instead of a Reader.
// This is the second I/O adapter SPEC_FULL.md's ambient-stack section
// calls for: the same FSM expressed against bufio's pull-based token
// model rather than Reader's push-based ReadCommand. max is the
// scanner's configured buffer capacity (via Scanner.Buffer); a
// command_length exceeding it surfaces as BufferTooSmall, matching
// spec.md §4.8 step 3's third rejection.
func SplitFunc(max int) bufio.SplitFunc {
	return func(data []byte, atEOF bool) (advance int, token []byte, err error) {
		if len(data) < lengthPrefixSize {
			if atEOF && len(data) > 0 {
				return 0, nil, smpperr.New(smpperr.UnexpectedEOF, "framer: %d trailing bytes, short of a length prefix", len(data))
			}
			return 0, nil, nil
		}
		length, _, _ := ioutil.GetUint32(data[:lengthPrefixSize])
		if length < minCommandLength {
			return 0, nil, smpperr.New(smpperr.MinLength, "framer: command_length %d below %d-byte header minimum", length, minCommandLength)
		}
		if max > 0 && int(length) > max {
			return 0, nil, smpperr.New(smpperr.BufferTooSmall, "framer: command_length %d exceeds scanner buffer capacity %d", length, max)
		}
		if len(data) < int(length) {
			if atEOF {
				return 0, nil, smpperr.New(smpperr.UnexpectedEOF, "framer: stream ended mid-command: have %d of %d bytes", len(data), length)
			}
			return 0, nil, nil
		}
		return int(length), data[:length], nil
	}
}
