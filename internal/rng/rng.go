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

// Package rng provides the package-level pseudo-random generator shared
// by the birthday and tree solvers. Per the design, seeding comes from
// the host and is not user-controllable; no solver requires CSPRNG
// properties once seeded.
package rng

import (
	"crypto/rand"
	"encoding/binary"
	"math/big"
	mrand "math/rand"
)

// global is seeded once, at package initialization, from crypto/rand. The solvers are
// single-threaded and synchronous (no suspension points), so a package
// level *mrand.Rand needs no locking.
var global = mrand.New(mrand.NewSource(seedFromHost()))

func seedFromHost() int64 {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// crypto/rand failing is effectively unreachable on any
		// supported platform; fall back to a weaker but still
		// host-derived seed rather than panicking.
		return big.NewInt(0).SetBytes([]byte(err.Error())).Int64()
	}
	return int64(binary.LittleEndian.Uint64(buf[:]))
}

// Intn returns a non-negative pseudo-random int in [0, n).
func Intn(n int) int { return global.Intn(n) }

// UseForTest swaps the shared generator for r and returns a function
// that restores the previous one. It exists so tests can seed
// reproducible draws (see internal/seed) without the production
// solvers taking a seed argument; production code never calls it.
func UseForTest(r *mrand.Rand) (restore func()) {
	prev := global
	global = r
	return func() { global = prev }
}
