//
// corvid - a headless chess engine
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Package transport implements the byte-oriented wire protocol spec §6
// describes: an 8-field incoming packet (six FEN fields plus both sides'
// remaining clock time) and a UCI move-string outgoing reply. It has no
// opinion on the underlying connection — any io.Reader/io.Writer works,
// including a net.Conn from the driver.
package transport

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

// ErrMalformedPacket is returned when an incoming packet doesn't have
// exactly 8 space-delimited fields or its time fields aren't integers
// (spec §7 "Transport read/write failure" sibling case).
var ErrMalformedPacket = fmt.Errorf("transport: malformed packet")

// Packet is one decoded incoming request (spec §6 "Transport packet
// (incoming)").
type Packet struct {
	FEN            string
	WhiteTimeLeft  time.Duration
	BlackTimeLeft  time.Duration
}

// ReadPacket reads one newline-terminated, space-delimited packet from r.
func ReadPacket(r *bufio.Reader) (Packet, error) {
	line, err := r.ReadString('\n')
	if err != nil && line == "" {
		return Packet{}, err
	}
	return ParsePacket(line)
}

// ParsePacket decodes a single packet line: 6 FEN fields, whiteTimeLeftMs,
// blackTimeLeftMs.
func ParsePacket(line string) (Packet, error) {
	fields := strings.Fields(line)
	if len(fields) != 8 {
		return Packet{}, fmt.Errorf("%w: expected 8 fields, got %d", ErrMalformedPacket, len(fields))
	}

	fen := strings.Join(fields[:6], " ")

	whiteMs, err := strconv.Atoi(fields[6])
	if err != nil {
		return Packet{}, fmt.Errorf("%w: bad whiteTimeLeftMs %q", ErrMalformedPacket, fields[6])
	}
	blackMs, err := strconv.Atoi(fields[7])
	if err != nil {
		return Packet{}, fmt.Errorf("%w: bad blackTimeLeftMs %q", ErrMalformedPacket, fields[7])
	}

	return Packet{
		FEN:           fen,
		WhiteTimeLeft: time.Duration(whiteMs) * time.Millisecond,
		BlackTimeLeft: time.Duration(blackMs) * time.Millisecond,
	}, nil
}

// WriteReply writes the chosen move's UCI string with no trailing newline
// (spec §6 "Transport reply (outgoing)").
func WriteReply(w io.Writer, uciMove string) error {
	_, err := io.WriteString(w, uciMove)
	return err
}
