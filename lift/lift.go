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

// Package lift chains a single-hash solver (birthday or tree) across an
// ordered list of (base, module) pairs, each round collapsing the
// alphabet to the previous round's winning pair so the final strings
// collide under every hash in the list simultaneously.
package lift

import (
	"fmt"

	"github.com/bortoz/antihash/polyhash"
)

// Pair is one (base, module) hash the chain must collide under.
type Pair struct {
	Base, Module uint64
}

// Backend is a single-hash solver: birthday.Find or tree.Find adapted to
// this common shape.
type Backend func(base, module uint64, alphabet polyhash.Alphabet) (s1, s2 string, ok bool)

// Chain runs backend once per pair in order, starting from alphabet and
// re-seeding the alphabet with each round's (s1, s2) before the next.
// It fails fast: the first round that exhausts its search aborts the
// whole chain and reports which pair failed.
func Chain(pairs []Pair, alphabet polyhash.Alphabet, backend Backend) (s1, s2 string, err error) {
	if len(pairs) == 0 {
		return "", "", fmt.Errorf("lift: at least one (base, module) pair is required")
	}
	a := alphabet
	for i, p := range pairs {
		r1, r2, ok := backend(p.Base, p.Module, a)
		if !ok {
			return "", "", fmt.Errorf("lift: no collision found for pair %d (base=%d, module=%d)", i, p.Base, p.Module)
		}
		s1, s2 = r1, r2
		a = polyhash.Alphabet{s1, s2}
	}
	return s1, s2, nil
}
