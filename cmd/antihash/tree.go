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
	"github.com/bortoz/antihash/lift"
	"github.com/bortoz/antihash/polyhash"
	"github.com/bortoz/antihash/tree"
)

func runTree(args []string) {
	fs := flag.NewFlagSet("tree", flag.ExitOnError)
	cluster := fs.Int("c", tree.DefaultClusterSize, "cluster size: representatives retained per tree node")
	dumpPath := fs.String("dump-tree", "", "write a zstd-compressed dump of the winning reconstruction (single (B, M) only)")
	var out outputOptions
	fs.BoolVar(&out.reverse, "reverse", false, "reverse each output string")
	fs.BoolVar(&out.uppercase, "uppercase", false, "uppercase each output string after reversing")
	fs.BoolVar(&out.verbose, "v", false, "log solver progress to stderr")
	fs.BoolVar(&out.verbose, "verbose", false, "log solver progress to stderr")
	fs.Parse(args)

	pairTokens, words := splitDoubleDash(fs.Args())
	pairs, err := parsePairs(pairTokens, 64)
	if err != nil {
		exit(err)
	}
	alphabet, err := alphabetFrom(words)
	if err != nil {
		exit(err)
	}
	if *dumpPath != "" && len(pairs) != 1 {
		exitf("--dump-tree is only supported for a single (base, module) pair, got %d", len(pairs))
	}

	diag := diagnostics.New(os.Stderr, out.verbose)
	diag.LogCPUFeatures()
	diag.Log("lift.start", map[string]any{"hashes": len(pairs), "cluster": *cluster})

	backend := func(base, module uint64, a polyhash.Alphabet) (string, string, bool) {
		return tree.Find(base, module, a, *cluster)
	}
	s1, s2, err := lift.Chain(pairs, alphabet, backend)
	if err != nil {
		diag.Log("lift.exhausted", map[string]any{"error": err.Error()})
		printCollision("", "", false, out)
		return
	}
	diag.Log("lift.done", nil)

	if *dumpPath != "" {
		if err := dumpTree(*dumpPath, s1, s2, alphabet.Width()); err != nil {
			exit(err)
		}
	}
	printCollision(s1, s2, true, out)
}

// dumpTree slices the winning strings back into their equal-width
// positions and writes them via internal/diagnostics. It re-derives
// positions from the output rather than threading the solver's
// internal arena through the CLI, since this is a write-only diagnostic.
func dumpTree(path, s1, s2 string, width int) error {
	n := len(s1) / width
	positions := make([]diagnostics.TreePosition, n)
	for i := 0; i < n; i++ {
		positions[i] = diagnostics.TreePosition{
			Index: i,
			WordA: s1[i*width : (i+1)*width],
			WordB: s2[i*width : (i+1)*width],
		}
	}
	return diagnostics.DumpTree(path, positions)
}
