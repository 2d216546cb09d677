/*
 * corvid - a headless chess engine
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Command corvid is a headless chess engine: it dials or listens for a
// transport connection, plays one game per session using the book/search
// collaborators, and replies with chosen moves (spec §4/§6).
package main

import (
	"flag"
	"fmt"
	"net"
	"os"

	"github.com/pkg/profile"

	"corvid/internal/book"
	"corvid/internal/config"
	"corvid/internal/driver"
	"corvid/internal/logging"
)

func main() {
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	listenAddr := flag.String("listen", "", "address to listen on (overrides config Transport.Address); if empty, dials Transport.Address instead")
	bookPath := flag.String("bookfile", "", "path to an opening book file (overrides config Book.Path)")
	cpuProfile := flag.Bool("profile", false, "write a CPU profile of this run to ./cpu.pprof")
	flag.Parse()

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	config.ConfFile = *configFile
	config.Setup()
	if *bookPath != "" {
		config.Settings.Book.Path = *bookPath
		config.Settings.Book.Enabled = true
	}

	log := logging.GetLog()

	var bk *book.Book
	if config.Settings.Book.Enabled && config.Settings.Book.Path != "" {
		loaded, err := book.LoadShards([]string{config.Settings.Book.Path})
		if err != nil {
			log.Errorf("opening book disabled: %v", err)
		} else {
			bk = loaded
			log.Infof("opening book loaded: %d entries", bk.NumberOfEntries())
		}
	}

	d := driver.New(bk)

	addr := config.Settings.Transport.Address
	if *listenAddr != "" {
		if err := serve(d, *listenAddr); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	conn, err := net.Dial("tcp", addr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer conn.Close()
	if err := d.RunSession(conn); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// serve accepts one connection at a time on addr and runs a session on
// each — the core stays single-threaded per spec §5, so sessions are
// handled sequentially rather than one goroutine per connection.
func serve(d *driver.Driver, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	defer ln.Close()

	for {
		conn, err := ln.Accept()
		if err != nil {
			return err
		}
		func() {
			defer conn.Close()
			if err := d.RunSession(conn); err != nil {
				fmt.Fprintln(os.Stderr, err)
			}
		}()
	}
}
