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

package batch

import (
	"testing"

	"github.com/bortoz/antihash/internal/rng"
	"github.com/bortoz/antihash/internal/seed"
	"github.com/bortoz/antihash/polyhash"
)

func TestRunReportsOneResultPerJobInOrder(t *testing.T) {
	defer rng.UseForTest(seed.Rand(t.Name()))()

	jobs := []Job{
		{Name: "overflow-job", Kind: "overflow", Length: 8},
		{Name: "birthday-job", Kind: "birthday", Bases: []uint64{9973}, Modules: []uint64{1000000007}},
		{Name: "bad-width-job", Kind: "birthday", Bases: []uint64{9973}, Modules: []uint64{1000000007}, Alphabet: []string{"ab", "c"}},
	}
	results := Run(jobs)
	if len(results) != len(jobs) {
		t.Fatalf("len(results) = %d, want %d", len(results), len(jobs))
	}

	if results[0].Job.Name != "overflow-job" || !results[0].Found || results[0].Err != nil {
		t.Fatalf("overflow job result = %+v", results[0])
	}
	if len(results[0].S1) != 8 || len(results[0].S2) != 8 {
		t.Fatalf("overflow job strings have unexpected length: %q %q", results[0].S1, results[0].S2)
	}

	if results[1].Job.Name != "birthday-job" || !results[1].Found || results[1].Err != nil {
		t.Fatalf("birthday job result = %+v", results[1])
	}
	if polyhash.Mod(9973, 1000000007, results[1].S1) != polyhash.Mod(9973, 1000000007, results[1].S2) {
		t.Fatal("birthday job strings do not collide")
	}

	if results[2].Err == nil {
		t.Fatal("expected a validation error for a width-mismatched alphabet")
	}
}
