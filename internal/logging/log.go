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

// Package logging wraps "github.com/op/go-logging" so every package in
// corvid gets a consistently formatted logger in one line, the way the
// teacher's own logging helper does.
package logging

import (
	"log"
	"os"

	"github.com/op/go-logging"

	"corvid/internal/config"
)

var (
	standardLog   *logging.Logger
	searchLog     *logging.Logger
	transportLog  *logging.Logger

	standardFormat = logging.MustStringFormatter(
		`%{time:15:04:05.000} %{shortpkg:-8.8s}:%{shortfile:-14.14s} %{level:-7.7s}:  %{message}`)
)

func init() {
	standardLog = logging.MustGetLogger("standard")
	searchLog = logging.MustGetLogger("search")
	transportLog = logging.MustGetLogger("transport")
}

func backend(level int) logging.Backend {
	raw := logging.NewLogBackend(os.Stdout, "", log.Lmsgprefix)
	formatted := logging.NewBackendFormatter(raw, standardFormat)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.Level(level), "")
	return leveled
}

// GetLog returns the standard logger, configured from config.Settings.Log.
func GetLog() *logging.Logger {
	standardLog.SetBackend(backend(config.Settings.Log.Level))
	return standardLog
}

// GetSearchLog returns the logger used for search progress/statistics.
func GetSearchLog() *logging.Logger {
	searchLog.SetBackend(backend(config.Settings.Log.Level))
	return searchLog
}

// GetTransportLog returns the logger used for transport packet tracing.
func GetTransportLog() *logging.Logger {
	transportLog.SetBackend(backend(config.Settings.Log.Level))
	return transportLog
}
