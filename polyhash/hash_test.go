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

package polyhash

import (
	"math/big"
	"testing"
)

func refMod(base, module uint64, s string) uint64 {
	b := new(big.Int)
	m := new(big.Int).SetUint64(module)
	h := new(big.Int)
	for i := 0; i < len(s); i++ {
		h.Mul(h, b.SetUint64(base))
		h.Add(h, big.NewInt(int64(s[i])))
		h.Mod(h, m)
	}
	return h.Uint64()
}

func TestModMatchesBigInt(t *testing.T) {
	cases := []struct {
		base, module uint64
		s            string
	}{
		{9973, 1000000007, "hello world"},
		{11173, 1000000009, "antihash"},
		{1 << 63, (1 << 63) + 123456789, "large base and modulus"},
		{18446744073709551557, 18446744073709551615, "near the top of uint64"},
	}
	for _, c := range cases {
		got := Mod(c.base, c.module, c.s)
		want := refMod(c.base, c.module, c.s)
		if got != want {
			t.Errorf("Mod(%d,%d,%q) = %d, want %d", c.base, c.module, c.s, got, want)
		}
	}
}

func TestWrap64MatchesManualWraparound(t *testing.T) {
	s := "thuemorse"
	base := uint64(9973)
	var want uint64
	for i := 0; i < len(s); i++ {
		want = want*base + uint64(s[i])
	}
	if got := Wrap64(base, s); got != want {
		t.Errorf("Wrap64 = %d, want %d", got, want)
	}
}

func TestDiffMatchesModSubtraction(t *testing.T) {
	cases := []struct {
		base, module uint64
		a, b         string
	}{
		{9973, 1000000007, "hello", "world"},
		{11173, 1000000009, "abcdef", "ghijkl"},
		{18446744073709551557, 18446744073709551615, "zz", "aa"},
	}
	for _, c := range cases {
		got := Diff(c.base, c.module, c.a, c.b)
		ha, hb := Mod(c.base, c.module, c.a), Mod(c.base, c.module, c.b)
		diff := new(big.Int).Sub(new(big.Int).SetUint64(ha), new(big.Int).SetUint64(hb))
		diff.Mod(diff, new(big.Int).SetUint64(c.module))
		want := diff.Uint64()
		if got != want {
			t.Errorf("Diff(%d,%d,%q,%q) = %d, want %d", c.base, c.module, c.a, c.b, got, want)
		}
	}
}

func TestPowMatchesBigInt(t *testing.T) {
	base, exp, module := uint64(9973), 1000, uint64(1000000007)
	want := new(big.Int).Exp(big.NewInt(int64(base)), big.NewInt(int64(exp)), big.NewInt(int64(module))).Uint64()
	if got := Pow(base, exp, module); got != want {
		t.Errorf("Pow(%d,%d,%d) = %d, want %d", base, exp, module, got, want)
	}
}
