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

// Package seed derives reproducible pseudo-random generators for tests.
// Production code always seeds from the host (see internal/rng); tests
// that need a stable, repeatable sequence derive one here instead of
// threading a seed argument through the solver API.
package seed

import (
	"crypto/sha256"
	"io"
	"math/rand"

	"golang.org/x/crypto/hkdf"
)

// Rand derives a deterministic *rand.Rand from label, suitable for
// reproducible test fixtures. The same label always yields the same
// sequence of draws.
func Rand(label string) *rand.Rand {
	kdf := hkdf.New(sha256.New, []byte(label), []byte("antihash-test-fixture"), nil)
	var seedBytes [8]byte
	if _, err := io.ReadFull(kdf, seedBytes[:]); err != nil {
		panic("seed: hkdf read failed: " + err.Error())
	}
	var s int64
	for _, b := range seedBytes {
		s = s<<8 | int64(b)
	}
	return rand.New(rand.NewSource(s))
}
