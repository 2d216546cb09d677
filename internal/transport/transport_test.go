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

package transport

import (
	"bufio"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParsePacketRoundTrip(t *testing.T) {
	line := "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1 12000 11500"
	p, err := ParsePacket(line)
	require.NoError(t, err)
	require.Equal(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", p.FEN)
	require.Equal(t, 12*time.Second, p.WhiteTimeLeft)
	require.Equal(t, 11500*time.Millisecond, p.BlackTimeLeft)
}

func TestParsePacketRejectsWrongFieldCount(t *testing.T) {
	_, err := ParsePacket("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1 12000")
	require.ErrorIs(t, err, ErrMalformedPacket)
}

func TestParsePacketRejectsNonIntegerClock(t *testing.T) {
	_, err := ParsePacket("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1 soon 11500")
	require.ErrorIs(t, err, ErrMalformedPacket)
}

func TestReadPacketFromReader(t *testing.T) {
	line := "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1 1000 2000\n"
	r := bufio.NewReader(strings.NewReader(line))
	p, err := ReadPacket(r)
	require.NoError(t, err)
	require.Equal(t, time.Second, p.WhiteTimeLeft)
	require.Equal(t, 2*time.Second, p.BlackTimeLeft)
}

func TestWriteReplyHasNoTrailingNewline(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, WriteReply(&sb, "e2e4"))
	require.Equal(t, "e2e4", sb.String())
}
