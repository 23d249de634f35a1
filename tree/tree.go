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

// Package tree implements the Schroeppel-Shamir-style k-way merge
// collision search: a single (B, M) pair, arbitrarily wide, solved by
// building a perfect binary tree of per-position signed contributions
// and merging cluster lists bottom-up until a zero-sum node appears.
package tree

import (
	"sort"

	"github.com/bortoz/antihash/internal/rng"
	"github.com/bortoz/antihash/ints"
	"github.com/bortoz/antihash/polyhash"
)

// DefaultClusterSize is the number of representatives retained per
// tree node when the caller doesn't override it.
const DefaultClusterSize = 100000

// MaxClusterSize bounds how many representatives a cluster list may
// hold. The solver's working set is roughly 2n*C nodes, each a few
// dozen bytes; this keeps a caller-supplied C from pushing that past
// the resource model's "must fit in RAM" ceiling.
const MaxClusterSize = 2_000_000

const (
	minLevels = 3
	maxLevels = 11
)

// arena owns every cluster list the solver builds for one (base,
// module) attempt: levels[i] is the node list living at index i of the
// implicit perfect binary tree, leaves occupying [n, 2n).
type arena struct {
	base, module uint64
	clusterSize  int
	alphabet     polyhash.Alphabet
	wordLen      int

	n      int
	levels [][]node
}

func newArena(base, module uint64, clusterSize int, alphabet polyhash.Alphabet) *arena {
	return &arena{
		base:        base,
		module:      module,
		clusterSize: clusterSize,
		alphabet:    alphabet,
		wordLen:     alphabet.Width(),
	}
}

// initLeaves builds T[n+i] for every position i in [0, n), the
// distinct-pair contribution lists sorted and deduplicated by sum.
func (a *arena) initLeaves(n int) {
	a.n = n
	a.levels = make([][]node, 2*n)

	potStep := polyhash.Pow(a.base, a.wordLen, a.module)
	pot := uint64(1) % a.module
	for i := n - 1; i >= 0; i-- {
		leaves := make([]node, 0, len(a.alphabet)*(len(a.alphabet)-1))
		for x := range a.alphabet {
			for y := range a.alphabet {
				if x == y {
					continue
				}
				d := polyhash.Diff(a.base, a.module, a.alphabet[x], a.alphabet[y])
				sum := polyhash.MulMod(d, pot, a.module)
				leaves = append(leaves, newLeaf(u128(sum), i, a.alphabet[x], a.alphabet[y]))
			}
		}
		sort.Slice(leaves, func(x, y int) bool { return leaves[x].sum.less(leaves[y].sum) })
		a.levels[n+i] = dedupBySum(leaves)

		pot = polyhash.MulMod(pot, potStep, a.module)
	}
}

// dedupBySum keeps the first of any run of consecutive equal-sum
// entries in a sum-sorted list, matching the Rust reference's
// PartialEq-on-sum dedup.
func dedupBySum(sorted []node) []node {
	if len(sorted) == 0 {
		return sorted
	}
	out := sorted[:1]
	for _, n := range sorted[1:] {
		if n.sum != out[len(out)-1].sum {
			out = append(out, n)
		}
	}
	return out
}

// Find searches tree sizes n = 2^p for p in [3, 11] for two strings of
// length n*w that collide under (base, module), drawing words from
// alphabet. It returns ok=false only once every size has been tried
// and none produced a collision.
func Find(base, module uint64, alphabet polyhash.Alphabet, clusterSize int) (s1, s2 string, ok bool) {
	if clusterSize <= 0 {
		clusterSize = DefaultClusterSize
	}
	clusterSize = ints.Clamp(clusterSize, 1, MaxClusterSize)
	for p := minLevels; p <= maxLevels; p++ {
		n := 1 << p
		a := newArena(base, module, clusterSize, alphabet)
		a.initLeaves(n)

		root, pos, zero := a.solve(p)
		if !zero {
			continue
		}
		return a.reconstruct(root, pos)
	}
	return "", "", false
}

// solve runs the bottom-up merge for a tree of height p and returns the
// arena index and position of a zero-sum node the moment one appears.
func (a *arena) solve(p int) (root, pos int, found bool) {
	for level := p; level >= 1; level-- {
		if winner, wpos, zero := a.mergeLevel(level - 1); zero {
			return winner, wpos, zero
		}
	}
	return 0, 0, false
}

// reconstruct walks the winning node in BFS order, tracking the swap
// bit, and assembles the two equal-length collision strings. Positions
// the winning subtree never touches (the zero-sum node can live above
// the leaves) are filled with the same random alphabet word on both
// sides, contributing nothing to the hash difference.
func (a *arena) reconstruct(rootIdx, rootPos int) (s1, s2 string, ok bool) {
	wordsA := make([]string, a.n)
	wordsB := make([]string, a.n)
	touched := make([]bool, a.n)

	type frame struct {
		arenaIdx int
		pos      int
		swap     bool
	}
	queue := []frame{{arenaIdx: rootIdx, pos: rootPos, swap: false}}
	for len(queue) > 0 {
		f := queue[0]
		queue = queue[1:]
		nd := a.levels[f.arenaIdx][f.pos]
		if nd.isLeaf {
			wa, wb := nd.wordA, nd.wordB
			if f.swap {
				wa, wb = wb, wa
			}
			wordsA[nd.idx], wordsB[nd.idx] = wa, wb
			touched[nd.idx] = true
			continue
		}
		queue = append(queue,
			frame{arenaIdx: 2 * nd.idx, pos: nd.posLeft, swap: f.swap != nd.revLeft},
			frame{arenaIdx: 2*nd.idx + 1, pos: nd.posRight, swap: f.swap != nd.revRight},
		)
	}

	for i := 0; i < a.n; i++ {
		if touched[i] {
			continue
		}
		w := a.alphabet[rng.Intn(len(a.alphabet))]
		wordsA[i], wordsB[i] = w, w
	}

	var sb1, sb2 []byte
	for i := 0; i < a.n; i++ {
		sb1 = append(sb1, wordsA[i]...)
		sb2 = append(sb2, wordsB[i]...)
	}
	return string(sb1), string(sb2), true
}
