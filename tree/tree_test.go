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

package tree

import (
	"testing"

	"github.com/bortoz/antihash/internal/rng"
	"github.com/bortoz/antihash/internal/seed"
	"github.com/bortoz/antihash/polyhash"
)

func TestFindSingleHashDefaultAlphabet(t *testing.T) {
	defer rng.UseForTest(seed.Rand(t.Name()))()

	s1, s2, ok := Find(9973, 1000000007, polyhash.Default(), DefaultClusterSize)
	if !ok {
		t.Fatal("expected a collision")
	}
	if s1 == s2 {
		t.Fatal("s1 and s2 must be distinct")
	}
	if len(s1) != len(s2) {
		t.Fatal("s1 and s2 must have equal length")
	}
	if polyhash.Mod(9973, 1000000007, s1) != polyhash.Mod(9973, 1000000007, s2) {
		t.Fatal("s1 and s2 do not collide")
	}
}

func TestFindSmallAlphabetSmallModule(t *testing.T) {
	defer rng.UseForTest(seed.Rand(t.Name()))()

	alphabet := polyhash.Alphabet{"a", "b", "c"}
	s1, s2, ok := Find(131, 1009, alphabet, 4096)
	if !ok {
		t.Fatal("expected a collision")
	}
	if s1 == s2 {
		t.Fatal("s1 and s2 must be distinct")
	}
	if len(s1) != len(s2) {
		t.Fatal("s1 and s2 must have equal length")
	}
	if polyhash.Mod(131, 1009, s1) != polyhash.Mod(131, 1009, s2) {
		t.Fatal("s1 and s2 do not collide")
	}
	for _, s := range []string{s1, s2} {
		for i := 0; i < len(s); i++ {
			c := s[i : i+1]
			if c != "a" && c != "b" && c != "c" {
				t.Fatalf("%q at offset %d is not drawn from %v", c, i, alphabet)
			}
		}
	}
}

func TestDedupBySumKeepsFirstOfEqualRuns(t *testing.T) {
	leaves := []node{
		newLeaf(u128(5), 0, "x", "y"),
		newLeaf(u128(5), 0, "p", "q"),
		newLeaf(u128(7), 0, "m", "n"),
	}
	got := dedupBySum(leaves)
	if len(got) != 2 {
		t.Fatalf("len(got) = %d, want 2", len(got))
	}
	if got[0].wordA != "x" || got[0].wordB != "y" {
		t.Fatalf("first entry of a duplicate run should survive, got %+v", got[0])
	}
	if got[1].sum.cmp(u128(7)) != 0 {
		t.Fatalf("second entry sum = %+v, want 7", got[1].sum)
	}
}
