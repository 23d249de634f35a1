// Copyright (C) 2022 Sneller, Inc.
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package main

import (
	"flag"
	"os"

	"github.com/bortoz/antihash/birthday"
	"github.com/bortoz/antihash/internal/diagnostics"
	"github.com/bortoz/antihash/lift"
)

func runBirthday(args []string) {
	fs := flag.NewFlagSet("birthday", flag.ExitOnError)
	var out outputOptions
	fs.BoolVar(&out.reverse, "reverse", false, "reverse each output string")
	fs.BoolVar(&out.uppercase, "uppercase", false, "uppercase each output string after reversing")
	fs.BoolVar(&out.verbose, "v", false, "log solver progress to stderr")
	fs.BoolVar(&out.verbose, "verbose", false, "log solver progress to stderr")
	fs.Parse(args)

	pairTokens, words := splitDoubleDash(fs.Args())
	pairs, err := parsePairs(pairTokens, 32)
	if err != nil {
		exit(err)
	}
	alphabet, err := alphabetFrom(words)
	if err != nil {
		exit(err)
	}

	diag := diagnostics.New(os.Stderr, out.verbose)
	diag.LogCPUFeatures()
	diag.Log("lift.start", map[string]any{"hashes": len(pairs)})

	s1, s2, err := lift.Chain(pairs, alphabet, birthday.Find)
	if err != nil {
		diag.Log("lift.exhausted", map[string]any{"error": err.Error()})
		printCollision("", "", false, out)
		return
	}
	diag.Log("lift.done", nil)
	printCollision(s1, s2, true, out)
}
