// Copyright 2025 The randomname Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the randomname CLI, msgpack server and REPL.

randomname builds random human readable phrases such as "brave-otter" by
sampling one word per category from hierarchical word lists. Categories are
addressed by '/' separated paths with short aliases, so "a/colors" and
"adjectives/colors" name the same list.

# Usage

Print an adjective-noun name:

	randomname get

Pick the categories of each word:

	randomname generate a/colors n/cats --sep _ -n 5

Mix literal words in:

	randomname generate release a/ n/ --literals

List categories and search words:

	randomname available n
	randomname search 'ca*' nouns

Start the msgpack server, reloading lists when they change:

	randomname serve --watch

# Configuration

Settings live in config.toml under ~/.config/randomname and can be
overridden by RANDOMNAME_* environment variables:

	[lists]
	sources = ["common", "~/words"]
	blacklist = "~/words/.blacklist"

	[generate]
	separator = "-"
	template = ["adjectives/", "nouns/"]

# IPC Protocol

The server reads msgpack requests from stdin and writes responses to stdout:

	{"id": "req1", "action": "generate", "t": ["a/", "n/"], "n": 2}
	{"id": "req1", "r": ["calm-river", "fuzzy-bagel"], "c": 2, "t": 37}

See package server for every action.
*/
package main

import (
	"os"
)

const (
	Version = "0.3.0"
	AppName = "randomname"
	gh      = "https://github.com/bastiangx/randomname"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
