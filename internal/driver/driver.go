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

// Package driver wires the opening book, search, and transport
// collaborators together into the process spec §4/§6 describes: read one
// packet, look up the book, otherwise search, then reply with a move.
package driver

import (
	"bufio"
	"errors"
	"io"
	"time"

	"golang.org/x/sync/semaphore"

	"corvid/internal/book"
	"corvid/internal/config"
	"corvid/internal/logging"
	"corvid/internal/movegen"
	"corvid/internal/position"
	"corvid/internal/search"
	"corvid/internal/transport"
	"corvid/internal/transpositiontable"
)

// Driver runs one game session over a single connection, enforcing the
// single-threaded search constraint (spec §5) with a weighted semaphore
// even though the transport read loop and a future pondering feature
// could otherwise run concurrently.
type Driver struct {
	book        *book.Book
	search      *search.Search
	searchGuard *semaphore.Weighted
}

// New creates a Driver. bk may be nil (no opening book configured).
func New(bk *book.Book) *Driver {
	return &Driver{
		book:        bk,
		search:      search.NewSearch(transpositiontable.New(config.Settings.Search.TtSizeMB)),
		searchGuard: semaphore.NewWeighted(1),
	}
}

// ErrMalformedFEN is surfaced to the caller so it can terminate the game
// session per spec §7 ("Malformed FEN — propagate to driver; terminate
// the current game. Do not attempt recovery.").
var ErrMalformedFEN = position.ErrMalformedFEN

// RunSession services packets from rw until it returns an error or the
// connection closes; each packet is answered with exactly one move reply
// (spec §6 "Transport reply (outgoing)").
func (d *Driver) RunSession(rw io.ReadWriter) error {
	log := logging.GetTransportLog()
	reader := bufio.NewReader(rw)

	for {
		packet, err := transport.ReadPacket(reader)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			log.Errorf("transport read failed: %v", err)
			return err
		}

		move, err := d.HandlePacket(packet.FEN, packet.WhiteTimeLeft, packet.BlackTimeLeft)
		if err != nil {
			return err
		}

		if err := transport.WriteReply(rw, move); err != nil {
			log.Errorf("transport write failed: %v", err)
			return err
		}
	}
}

// HandlePacket parses fen, consults the opening book, and otherwise runs
// a time-bounded search, returning the chosen move's UCI string. A book
// move that is not a legal move in the position is logged and the search
// runs instead.
func (d *Driver) HandlePacket(fen string, whiteTimeLeft, blackTimeLeft time.Duration) (string, error) {
	p, err := position.FromFEN(fen)
	if err != nil {
		return "", err
	}

	if d.book != nil {
		if uci, ok := d.book.Lookup(p.ZobristKey()); ok {
			for _, sm := range movegen.LegalMoves(p) {
				if sm.Move.StringUci() == uci {
					return uci, nil
				}
			}
			logging.GetLog().Warningf("%v: %q", book.ErrMalformedBookMove, uci)
		}
	}

	remaining := whiteTimeLeft
	if !config.Settings.Transport.SideIsWhite {
		remaining = blackTimeLeft
	}
	budget := search.TimeForMove(remaining)

	if !d.searchGuard.TryAcquire(1) {
		return "", errors.New("driver: search already running")
	}
	defer d.searchGuard.Release(1)

	result := d.search.FindBestMove(p, budget)
	return result.Move.StringUci(), nil
}
