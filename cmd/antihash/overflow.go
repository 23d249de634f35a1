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

	"github.com/bortoz/antihash/internal/diagnostics"
	"github.com/bortoz/antihash/overflow"
)

func runOverflow(args []string) {
	fs := flag.NewFlagSet("overflow", flag.ExitOnError)
	length := fs.Int("length", 1024, "string length, rounded up to the next power of two")
	var out outputOptions
	fs.BoolVar(&out.reverse, "reverse", false, "reverse each output string")
	fs.BoolVar(&out.uppercase, "uppercase", false, "uppercase each output string after reversing")
	fs.BoolVar(&out.verbose, "v", false, "log solver progress to stderr")
	fs.BoolVar(&out.verbose, "verbose", false, "log solver progress to stderr")
	fs.Parse(args)

	diag := diagnostics.New(os.Stderr, out.verbose)
	diag.LogCPUFeatures()
	diag.Log("overflow.start", map[string]any{"length": *length})

	s1, s2 := overflow.Find(*length)
	diag.Log("overflow.done", map[string]any{"length": len(s1)})
	printCollision(s1, s2, true, out)
}
