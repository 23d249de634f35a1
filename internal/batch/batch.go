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

// Package batch runs a list of solver jobs loaded from a YAML file
// through the same solver entry points the CLI uses for a single
// invocation, continuing past per-job validation errors.
package batch

import (
	"fmt"
	"os"

	"sigs.k8s.io/yaml"

	"github.com/bortoz/antihash/birthday"
	"github.com/bortoz/antihash/lift"
	"github.com/bortoz/antihash/overflow"
	"github.com/bortoz/antihash/polyhash"
	"github.com/bortoz/antihash/tree"
)

// Job describes one solver invocation read from a batch file.
type Job struct {
	Name     string   `json:"name"`
	Kind     string   `json:"kind"` // "overflow" | "birthday" | "tree"
	Length   int      `json:"length,omitempty"`
	Bases    []uint64 `json:"bases,omitempty"`
	Modules  []uint64 `json:"modules,omitempty"`
	Alphabet []string `json:"alphabet,omitempty"`
	Cluster  int      `json:"cluster,omitempty"`
}

// Result is the outcome of running a single Job.
type Result struct {
	Job   Job
	S1    string
	S2    string
	Found bool
	Err   error // non-nil only for argument-validation failures
}

// Load parses a YAML list of Jobs from path.
func Load(path string) ([]Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("batch: reading %q: %w", path, err)
	}
	var jobs []Job
	if err := yaml.Unmarshal(data, &jobs); err != nil {
		return nil, fmt.Errorf("batch: parsing %q: %w", path, err)
	}
	return jobs, nil
}

// Run executes every job in order, collecting one Result per job. A job
// that fails argument validation is reported with Err set and does not
// abort the remaining jobs.
func Run(jobs []Job) []Result {
	results := make([]Result, len(jobs))
	for i, j := range jobs {
		results[i] = runOne(j)
	}
	return results
}

func runOne(j Job) Result {
	alphabet := polyhash.Default()
	if len(j.Alphabet) > 0 {
		alphabet = polyhash.Alphabet(j.Alphabet)
	}
	if err := alphabet.Validate(); err != nil {
		return Result{Job: j, Err: fmt.Errorf("job %q: %w", j.Name, err)}
	}

	switch j.Kind {
	case "overflow":
		length := j.Length
		if length <= 0 {
			length = 1024
		}
		s1, s2 := overflow.Find(length)
		return Result{Job: j, S1: s1, S2: s2, Found: true}

	case "birthday":
		pairs, err := pairsFrom(j)
		if err != nil {
			return Result{Job: j, Err: err}
		}
		s1, s2, err := lift.Chain(pairs, alphabet, birthday.Find)
		if err != nil {
			return Result{Job: j, Found: false}
		}
		return Result{Job: j, S1: s1, S2: s2, Found: true}

	case "tree":
		pairs, err := pairsFrom(j)
		if err != nil {
			return Result{Job: j, Err: err}
		}
		cluster := j.Cluster
		if cluster <= 0 {
			cluster = tree.DefaultClusterSize
		}
		backend := func(base, module uint64, a polyhash.Alphabet) (string, string, bool) {
			return tree.Find(base, module, a, cluster)
		}
		s1, s2, err := lift.Chain(pairs, alphabet, backend)
		if err != nil {
			return Result{Job: j, Found: false}
		}
		return Result{Job: j, S1: s1, S2: s2, Found: true}

	default:
		return Result{Job: j, Err: fmt.Errorf("job %q: unknown kind %q", j.Name, j.Kind)}
	}
}

func pairsFrom(j Job) ([]lift.Pair, error) {
	if len(j.Bases) == 0 || len(j.Bases) != len(j.Modules) {
		return nil, fmt.Errorf("job %q: bases and modules must be equal-length and non-empty", j.Name)
	}
	pairs := make([]lift.Pair, len(j.Bases))
	for i := range j.Bases {
		pairs[i] = lift.Pair{Base: j.Bases[i], Module: j.Modules[i]}
	}
	return pairs, nil
}
