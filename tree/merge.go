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
	"sort"

	"github.com/bortoz/antihash/heap"
)

// candidate is one entry waiting in a node's merge heap: a combination
// of a position in the left child's cluster list and a position in the
// right child's, tagged with which stream produced it.
type candidate struct {
	sum      uint128
	pl, pr   int
	sumPhase bool // true: sum stream (x+y); false: difference stream (|x-y|)
}

func lessCandidate(a, b candidate) bool { return a.sum.less(b.sum) }

type frontierKey struct {
	pl, pr   int
	sumPhase bool
}

// mergeLevel builds level p' (arena indices [z, 2z)) from its already
// built children at [2z, 4z), returning the arena index and position of
// a zero-sum node the moment one turns up.
func (a *arena) mergeLevel(p int) (winner, pos int, found bool) {
	z := 1 << p
	// Re-sort the children range so sibling pairs are scanned in a
	// consistent orientation. This permutes which cluster list sits at
	// which arena index; it never touches the idx baked into the nodes
	// themselves, which is what reconstruction actually relies on.
	children := a.levels[2*z : 4*z]
	sort.Slice(children, func(i, j int) bool {
		return children[i][0].sum.less(children[j][0].sum)
	})

	for i := z; i < 2*z; i++ {
		result, zeroPos, zero := a.mergeNode(i, 2*i, 2*i+1)
		a.levels[i] = result
		if zero {
			return i, zeroPos, true
		}
	}
	return 0, 0, false
}

// mergeNode merges the cluster lists at arena indices l and r into the
// list for the new internal node at index i, returning that list and
// the position of a zero-sum combination if one was produced.
func (a *arena) mergeNode(i, l, r int) (result []node, zeroPos int, found bool) {
	left, right := a.levels[l], a.levels[r]
	if len(left) == 0 || len(right) == 0 {
		return nil, 0, false
	}

	h := heap.NewMinCap(lessCandidate, 3*a.clusterSize)
	seen := make(map[frontierKey]bool, 5*a.clusterSize)

	calcSum := func(pl, pr int) uint128 { return left[pl].sum.add(right[pr].sum) }
	calcDiff := func(pl, pr int) uint128 { return absDiff(left[pl].sum, right[pr].sum) }

	pr := 0
	for pl := 0; pl < len(left); pl++ {
		for pr+1 < len(right) && calcDiff(pl, pr+1).less(calcDiff(pl, pr)) {
			pr++
		}
		h.Push(candidate{sum: calcDiff(pl, pr), pl: pl, pr: pr, sumPhase: false})
		seen[frontierKey{pl, pr, false}] = true
	}
	h.Push(candidate{sum: calcSum(0, 0), pl: 0, pr: 0, sumPhase: true})

	push := func(pl, pr int, sumPhase bool, sum uint128) {
		key := frontierKey{pl, pr, sumPhase}
		if seen[key] {
			return
		}
		seen[key] = true
		h.Push(candidate{sum: sum, pl: pl, pr: pr, sumPhase: sumPhase})
	}

	hasLast := false
	var lastSum uint128

	for len(result) < a.clusterSize && h.Len() > 0 {
		c := h.Pop()
		if c.sumPhase {
			if !hasLast || c.sum != lastSum {
				result = append(result, newInternal(c.sum, i, c.pl, c.pr, false, false))
				lastSum, hasLast = c.sum, true
			}
			if c.pl+1 < len(left) {
				push(c.pl+1, c.pr, true, calcSum(c.pl+1, c.pr))
			}
			if c.pr+1 < len(right) {
				push(c.pl, c.pr+1, true, calcSum(c.pl, c.pr+1))
			}
			if c.pl+1 < len(left) && c.pr+1 < len(right) {
				push(c.pl+1, c.pr+1, true, calcSum(c.pl+1, c.pr+1))
			}
		} else {
			revLeft, revRight := true, false
			if left[c.pl].sum.cmp(right[c.pr].sum) > 0 {
				revLeft, revRight = false, true
			}
			if !hasLast || c.sum != lastSum {
				result = append(result, newInternal(c.sum, i, c.pl, c.pr, revLeft, revRight))
				lastSum, hasLast = c.sum, true
			}
			if c.pr > 0 {
				push(c.pl, c.pr-1, false, calcDiff(c.pl, c.pr-1))
			}
			if c.pr+1 < len(right) {
				push(c.pl, c.pr+1, false, calcDiff(c.pl, c.pr+1))
			}
		}
		if c.sum.isZero() {
			return result, len(result) - 1, true
		}
	}
	return result, 0, false
}
