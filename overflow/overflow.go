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

// Package overflow builds the deterministic Thue-Morse complementary
// pair that collides under any polynomial hash taken modulo 2^64 with
// an odd base, for power-of-two string lengths of 1024 or more.
package overflow

import (
	"math/bits"

	"github.com/bortoz/antihash/ints"
)

// Find rounds length up to the next power of two n and returns two
// strings of length n over {'a','b'} whose polynomial hash difference
// telescopes to (1-B)(1-B^2)...(1-B^(n/2)) up to sign. For odd B and
// n >= 1024 that product is divisible by 2^64, so the pair collides
// under mod-2^64 hashing; for shorter n only the low-order bits of the
// two hashes agree. It always succeeds.
func Find(length int) (s1, s2 string) {
	n := ints.NextPow2(length)
	b1 := make([]byte, n)
	b2 := make([]byte, n)
	for i := 0; i < n; i++ {
		p := byte(bits.OnesCount(uint(i)) % 2)
		b1[i] = 'a' + p
		b2[i] = 'b' - p
	}
	return string(b1), string(b2)
}
