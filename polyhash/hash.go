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

// Package polyhash implements the polynomial rolling hash
//
//	H(s) = (s[0]*B^(n-1) + s[1]*B^(n-2) + ... + s[n-1]) mod M
//
// that every solver in this module is trying to break, plus the
// equal-width Alphabet type shared by all three.
package polyhash

import "math/bits"

// Mod computes H(s) with every addition and multiplication reduced
// modulo module. Characters contribute their numeric codepoint. module
// may be as large as the full uint64 range (the tree solver accepts
// 64-bit moduli), so the inner multiply is carried out with a 128-bit
// intermediate rather than plain uint64 arithmetic.
func Mod(base, module uint64, s string) uint64 {
	var h uint64
	for i := 0; i < len(s); i++ {
		h = addMod(mulMod(h, base, module), uint64(s[i]), module)
	}
	return h
}

// Wrap64 computes H(s) with arithmetic performed modulo 2^64, i.e. with
// plain unsigned wraparound. It exists so the overflow solver's
// guarantee ("collides under mod 2^64 for any odd base") can be checked
// directly, without the caller hand-rolling the wrapping multiply/add.
func Wrap64(base uint64, s string) uint64 {
	var h uint64
	for i := 0; i < len(s); i++ {
		h = h*base + uint64(s[i])
	}
	return h
}

// Pow computes base^exp mod module using binary exponentiation.
func Pow(base uint64, exp int, module uint64) uint64 {
	result := uint64(1) % module
	b := base % module
	for exp > 0 {
		if exp&1 != 0 {
			result = mulMod(result, b, module)
		}
		b = mulMod(b, b, module)
		exp >>= 1
	}
	return result
}

// Diff computes ((H(a) - H(b)) mod module) directly, character by
// character, rather than computing H(a) and H(b) separately and
// subtracting; a and b must have equal length. The result is a
// canonical nonnegative representative in [0, module).
func Diff(base, module uint64, a, b string) uint64 {
	var h uint64
	for i := 0; i < len(a); i++ {
		h = mulMod(h, base, module)
		if a[i] >= b[i] {
			h = addMod(h, uint64(a[i]-b[i]), module)
		} else {
			h = addMod(h, module-uint64(b[i]-a[i])%module, module)
		}
	}
	return h
}

// MulMod returns a*b mod m, reducing a 128-bit intermediate product so
// it never overflows uint64 regardless of how large m is.
func MulMod(a, b, m uint64) uint64 { return mulMod(a, b, m) }

// mulMod returns a*b mod m without overflowing uint64, for any m in
// [1, 2^64). Since a, b < m after reduction, the 128-bit product a*b is
// always < m^2 <= m*2^64, which guarantees the high limb of the product
// is strictly less than m and bits.Div64 never panics.
func mulMod(a, b, m uint64) uint64 {
	a %= m
	b %= m
	hi, lo := bits.Mul64(a, b)
	if hi == 0 {
		return lo % m
	}
	_, r := bits.Div64(hi, lo, m)
	return r
}

// addMod returns a+b mod m, where a and b may each independently be as
// large as 2^64-1 (not just < m), without overflowing uint64.
func addMod(a, b, m uint64) uint64 {
	sum, carry := bits.Add64(a, b, 0)
	if carry == 0 {
		if sum >= m {
			sum %= m
		}
		return sum
	}
	_, r := bits.Div64(carry, sum, m)
	return r
}
