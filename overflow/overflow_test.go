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

package overflow

import (
	"math/bits"
	"testing"

	"github.com/bortoz/antihash/polyhash"
)

func TestFindLength1024(t *testing.T) {
	s1, s2 := Find(1024)
	if len(s1) != 1024 || len(s2) != 1024 {
		t.Fatalf("len(s1)=%d len(s2)=%d, want 1024", len(s1), len(s2))
	}
	if s1 == s2 {
		t.Fatal("s1 and s2 must be distinct")
	}
	for _, base := range []uint64{9973, 3, 5, 1_000_003} {
		if base%2 == 0 {
			t.Fatalf("test base %d must be odd", base)
		}
		h1 := polyhash.Wrap64(base, s1)
		h2 := polyhash.Wrap64(base, s2)
		if h1 != h2 {
			t.Errorf("base=%d: hash(s1)=%d != hash(s2)=%d", base, h1, h2)
		}
	}
}

func TestFindRoundsUpToPowerOfTwo(t *testing.T) {
	for _, length := range []int{1, 2, 3, 5, 9, 100, 1000} {
		s1, s2 := Find(length)
		if len(s1) != len(s2) {
			t.Fatalf("length %d: len mismatch", length)
		}
		n := len(s1)
		if n&(n-1) != 0 {
			t.Fatalf("length %d rounded to %d, not a power of two", length, n)
		}
		if n < length {
			t.Fatalf("length %d rounded down to %d", length, n)
		}
	}
}

func TestFindAlphabetIsAB(t *testing.T) {
	s1, s2 := Find(64)
	for i := 0; i < len(s1); i++ {
		if s1[i] != 'a' && s1[i] != 'b' {
			t.Fatalf("s1[%d] = %q, want 'a' or 'b'", i, s1[i])
		}
		if s2[i] != 'a' && s2[i] != 'b' {
			t.Fatalf("s2[%d] = %q, want 'a' or 'b'", i, s2[i])
		}
	}
}

func TestFindEvenAtEveryPowerOfTwoLength(t *testing.T) {
	// For n = 2^k the hash difference is +-(1-B)(1-B^2)...(1-B^(n/2)),
	// which for odd B has at least 1 + sum_{j=1}^{k-1} (j+2) factors of
	// two. That bound reaches 64, i.e. a full mod-2^64 collision, at
	// k = 10 (n = 1024); shorter lengths only cancel the low bits.
	for k := 1; k <= 12; k++ {
		n := 1 << k
		s1, s2 := Find(n)
		want := min(64, 1+(k-1)*k/2+2*(k-1))
		d := polyhash.Wrap64(9973, s1) - polyhash.Wrap64(9973, s2)
		if got := bits.TrailingZeros64(d); got < want {
			t.Errorf("n=%d: hash difference has %d trailing zero bits, want at least %d", n, got, want)
		}
	}
}
