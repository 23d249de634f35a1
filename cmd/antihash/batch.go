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
	"fmt"
	"os"

	"github.com/bortoz/antihash/internal/batch"
	"github.com/bortoz/antihash/internal/diagnostics"
)

func runBatch(args []string) {
	fs := flag.NewFlagSet("batch", flag.ExitOnError)
	path := fs.String("f", "", "path to a YAML job list")
	var out outputOptions
	fs.BoolVar(&out.reverse, "reverse", false, "reverse each output string")
	fs.BoolVar(&out.uppercase, "uppercase", false, "uppercase each output string after reversing")
	fs.BoolVar(&out.verbose, "v", false, "log solver progress to stderr")
	fs.BoolVar(&out.verbose, "verbose", false, "log solver progress to stderr")
	fs.Parse(args)

	if *path == "" {
		exitf("batch: -f <jobs.yaml> is required")
	}

	jobs, err := batch.Load(*path)
	if err != nil {
		exit(err)
	}

	diag := diagnostics.New(os.Stderr, out.verbose)
	diag.LogCPUFeatures()
	diag.Log("batch.start", map[string]any{"jobs": len(jobs)})

	results := batch.Run(jobs)

	failed := false
	for _, r := range results {
		if r.Err != nil {
			failed = true
			fmt.Printf("%s: %v\n", r.Job.Name, r.Err)
			continue
		}
		if !r.Found {
			fmt.Printf("%s: Collision not found\n", r.Job.Name)
			continue
		}
		fmt.Printf("%s: %s\n", r.Job.Name, transform(r.S1, out))
		fmt.Printf("%s: %s\n", r.Job.Name, transform(r.S2, out))
	}
	diag.Log("batch.done", map[string]any{"failed": failed})

	if failed {
		os.Exit(1)
	}
}
