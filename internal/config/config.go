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

// Package config holds globally available configuration, read from a TOML
// file with defaults applied when the file is absent or incomplete (spec
// §6 "Configuration collaborator").
package config

import (
	"log"

	"github.com/BurntSushi/toml"
)

// ConfFile is the path to the config file, relative to the working
// directory unless overridden by a command-line flag.
var ConfFile = "./config.toml"

// Settings is the global configuration, populated by Setup.
var Settings Conf

var initialized = false

// Conf is the top-level configuration shape: one section per collaborator
// spec §6 names, plus the ambient Log section.
type Conf struct {
	Log       LogConfig
	Search    SearchConfig
	Book      BookConfig
	Transport TransportConfig
}

// LogConfig controls the ambient logger (internal/logging).
type LogConfig struct {
	Level int // go-logging level: 0=CRITICAL .. 5=DEBUG
}

// Setup decodes ConfFile into Settings, falling back to defaults for
// anything the file doesn't set or if the file is missing entirely.
func Setup() {
	if initialized {
		return
	}
	Settings = defaults()
	if _, err := toml.DecodeFile(ConfFile, &Settings); err != nil {
		log.Printf("config: %s not found or unreadable, using defaults (%v)", ConfFile, err)
	}
	initialized = true
}

func defaults() Conf {
	return Conf{
		Log: LogConfig{Level: 4},
		Search: SearchConfig{
			TtSizeMB:      64,
			MaxDepth:      64,
			TimeBudgetCurve: defaultTimeBudgetCurve(),
		},
		Book: BookConfig{
			Enabled: false,
		},
		Transport: TransportConfig{
			Address:      "localhost:5050",
			SideIsWhite:  true,
		},
	}
}
